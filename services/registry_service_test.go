package services

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistryTestApp() (*fiber.App, *MemoryRegistryStore) {
	store := NewMemoryRegistryStore()
	service := NewRegistryService(store)

	app := fiber.New()
	app.Post("/api/wallet/connect", service.ConnectWallet)
	app.Get("/api/wallet/status/:address", service.GetWalletStatus)
	app.Get("/api/admin/early-access-users", service.GetEarlyAccessUsers)
	app.Post("/api/admin/early-access-users/export", service.ExportEarlyAccessUsers)
	return app, store
}

func postJSON(t *testing.T, app *fiber.App, path string, body map[string]interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp, decodeBody(t, resp)
}

func getJSON(t *testing.T, app *fiber.App, path string) (*http.Response, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp, decodeBody(t, resp)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestConnectWalletCreatesNewRegistration(t *testing.T) {
	app, _ := newRegistryTestApp()

	resp, body := postJSON(t, app, "/api/wallet/connect", map[string]interface{}{
		"walletAddress": "WALLET_A",
	})

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, true, body["isEarlyAccess"])
	assert.Equal(t, "Wallet connected and early access requested successfully", body["message"])

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), user["id"])
	assert.Equal(t, "WALLET_A", user["walletAddress"])
	assert.NotEmpty(t, user["joinedAt"])
}

func TestConnectWalletRepeatIsUpdateNotConflict(t *testing.T) {
	app, store := newRegistryTestApp()

	resp, _ := postJSON(t, app, "/api/wallet/connect", map[string]interface{}{
		"walletAddress": "WALLET_A",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	first, found, err := store.FindByWallet("WALLET_A")
	require.NoError(t, err)
	require.True(t, found)

	resp, body := postJSON(t, app, "/api/wallet/connect", map[string]interface{}{
		"walletAddress": "WALLET_A",
		"email":         "a@x.com",
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, true, body["isEarlyAccess"])
	assert.Equal(t, "Wallet already registered for early access", body["message"])
	assert.NotContains(t, body, "user")

	// id and joinedAt frozen, email picked up
	second, found, err := store.FindByWallet("WALLET_A")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.JoinedAt, second.JoinedAt)
	require.NotNil(t, second.Email)
	assert.Equal(t, "a@x.com", *second.Email)
}

func TestConnectWalletMissingAddressIsRejected(t *testing.T) {
	app, _ := newRegistryTestApp()

	resp, body := postJSON(t, app, "/api/wallet/connect", map[string]interface{}{
		"email": "a@x.com",
	})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Wallet address is required", body["message"])
}

func TestWalletStatusUnknownWalletIsSuccess(t *testing.T) {
	app, _ := newRegistryTestApp()

	resp, body := getJSON(t, app, "/api/wallet/status/NEVER_SEEN")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, false, body["isEarlyAccess"])
	assert.Equal(t, "Wallet not registered for early access", body["message"])
	assert.NotContains(t, body, "joinedAt")
}

func TestWalletStatusKnownWallet(t *testing.T) {
	app, _ := newRegistryTestApp()

	_, _ = postJSON(t, app, "/api/wallet/connect", map[string]interface{}{
		"walletAddress": "WALLET_A",
	})

	resp, body := getJSON(t, app, "/api/wallet/status/WALLET_A")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, true, body["isEarlyAccess"])
	assert.NotEmpty(t, body["joinedAt"])
}

func TestEarlyAccessUsersListing(t *testing.T) {
	app, _ := newRegistryTestApp()

	_, _ = postJSON(t, app, "/api/wallet/connect", map[string]interface{}{
		"walletAddress": "WALLET_A",
	})
	_, _ = postJSON(t, app, "/api/wallet/connect", map[string]interface{}{
		"walletAddress": "WALLET_B",
		"email":         "b@x.com",
	})

	resp, body := getJSON(t, app, "/api/admin/early-access-users")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["count"])

	users, ok := body["users"].([]interface{})
	require.True(t, ok)
	require.Len(t, users, 2)

	for _, raw := range users {
		u := raw.(map[string]interface{})
		assert.Equal(t, true, u["hasRequestedAccess"])
		switch u["walletAddress"] {
		case "WALLET_A":
			assert.Equal(t, "Not provided", u["email"])
		case "WALLET_B":
			assert.Equal(t, "b@x.com", u["email"])
		default:
			t.Fatalf("unexpected wallet in listing: %v", u["walletAddress"])
		}
	}
}

func TestExportWithoutStorageConfigured(t *testing.T) {
	app, _ := newRegistryTestApp()

	req := httptest.NewRequest("POST", "/api/admin/early-access-users/export", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	body := decodeBody(t, resp)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}
