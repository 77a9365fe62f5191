// handlers/tokens.go
package handlers

import (
	"token-analytics-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupTokenRoutes(app *fiber.App, marketService *services.MarketService) {
	// Trending snapshot for the landing page ticker; ?timeframe=6h|12h|24h
	app.Get("/api/tokens/trending", marketService.GetTrendingTokens)

	// Raw DexScreener passthrough
	app.Get("/api/tokens/solana", marketService.GetSolanaTokens)
}
