// handlers/wallet.go
package handlers

import (
	"token-analytics-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupWalletRoutes(app *fiber.App, registryService *services.RegistryService) {
	// 🔓 Public funnel routes
	app.Post("/api/wallet/connect", registryService.ConnectWallet)
	app.Get("/api/wallet/status/:address", registryService.GetWalletStatus)

	// Admin listing page
	app.Get("/api/admin/early-access-users", registryService.GetEarlyAccessUsers)
	app.Post("/api/admin/early-access-users/export", registryService.ExportEarlyAccessUsers)
}
