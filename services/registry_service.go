// services/registry_service.go
package services

import (
	"fmt"
	"log"
	"time"

	"token-analytics-system/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RegistryService struct {
	Store RegistryStore
}

func NewRegistryService(store RegistryStore) *RegistryService {
	return &RegistryService{Store: store}
}

type connectWalletRequest struct {
	WalletAddress string `json:"walletAddress"`
	Email         string `json:"email"`
}

// ConnectWallet registers a wallet for early access. Repeat connections from
// the same wallet are a successful idempotent outcome, not a conflict.
func (s *RegistryService) ConnectWallet(c *fiber.Ctx) error {
	var req connectWalletRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if req.WalletAddress == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Wallet address is required",
		})
	}

	user, created, err := s.Store.Upsert(req.WalletAddress, req.Email)
	if err != nil {
		log.Printf("❌ [REGISTRY] Error connecting wallet %s: %v", req.WalletAddress, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error processing wallet connection",
		})
	}

	if !created {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success":       true,
			"message":       "Wallet already registered for early access",
			"isEarlyAccess": true,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":       true,
		"message":       "Wallet connected and early access requested successfully",
		"isEarlyAccess": true,
		"user": fiber.Map{
			"id":            user.ID,
			"walletAddress": user.WalletAddress,
			"joinedAt":      user.JoinedAt.Format(time.RFC3339),
		},
	})
}

// GetWalletStatus reports whether a wallet is on the early-access list.
// An unknown wallet is a normal 200 outcome.
func (s *RegistryService) GetWalletStatus(c *fiber.Ctx) error {
	address := c.Params("address")
	if address == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Wallet address is required",
		})
	}

	user, found, err := s.Store.FindByWallet(address)
	if err != nil {
		log.Printf("❌ [REGISTRY] Error checking wallet status for %s: %v", address, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error checking wallet status",
		})
	}

	if !found {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success":       true,
			"isEarlyAccess": false,
			"message":       "Wallet not registered for early access",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":       true,
		"isEarlyAccess": true,
		"message":       "Wallet is registered for early access",
		"joinedAt":      user.JoinedAt.Format(time.RFC3339),
	})
}

// GetEarlyAccessUsers lists every registration for the admin page, most
// recent first.
func (s *RegistryService) GetEarlyAccessUsers(c *fiber.Ctx) error {
	users, err := s.Store.ListAll()
	if err != nil {
		log.Printf("❌ [REGISTRY] Error fetching early access users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error fetching early access users",
		})
	}

	out := make([]fiber.Map, len(users))
	for i, u := range users {
		out[i] = fiber.Map{
			"id":                 u.ID,
			"walletAddress":      u.WalletAddress,
			"joinedAt":           u.JoinedAt.Format(time.RFC3339),
			"hasRequestedAccess": u.HasRequestedAccess,
			"email":              u.EmailOrDefault(),
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"count":   len(out),
		"users":   out,
	})
}

// ExportEarlyAccessUsers renders the registry to CSV and uploads it to R2.
func (s *RegistryService) ExportEarlyAccessUsers(c *fiber.Ctx) error {
	if !utils.R2Enabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false,
			"message": "Export storage is not configured",
		})
	}

	users, err := s.Store.ListAll()
	if err != nil {
		log.Printf("❌ [REGISTRY] Error fetching users for export: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error exporting early access users",
		})
	}

	data, err := utils.EarlyAccessCSV(users)
	if err != nil {
		log.Printf("❌ [REGISTRY] Error rendering export CSV: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error exporting early access users",
		})
	}

	key := fmt.Sprintf("exports/early-access-%s.csv", uuid.New().String())
	url, err := utils.UploadBytesToR2(data, key, "text/csv")
	if err != nil {
		log.Printf("❌ [REGISTRY] Error uploading export to R2: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error exporting early access users",
		})
	}

	log.Printf("✅ [REGISTRY] Exported %d early access user(s) to %s", len(users), key)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"count":   len(users),
		"url":     url,
	})
}
