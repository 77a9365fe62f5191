// services/classifier.go
package services

import (
	"strings"

	"token-analytics-system/models"
)

// DetermineNetwork resolves a coin's native chain label from its provider id
// and ticker symbol. Exact table match first (id, then symbol), then naming
// heuristics for meme coins the table doesn't cover, else "Multi-chain".
func DetermineNetwork(coinID, symbol string) string {
	id := strings.ToLower(coinID)
	sym := strings.ToLower(symbol)

	if network, ok := models.NetworkByIdentifier[id]; ok {
		return network
	}
	if network, ok := models.NetworkByIdentifier[sym]; ok {
		return network
	}

	// Most meme coins live on Ethereum
	if strings.Contains(id, "shib") || strings.Contains(id, "floki") || strings.Contains(id, "elon") ||
		(strings.Contains(id, "doge") && !strings.Contains(id, "solana")) || strings.Contains(id, "pepe") {
		return "Ethereum"
	}

	// Solana-based tokens often carry these in their ids
	if strings.Contains(id, "sol") || strings.Contains(id, "bonk") ||
		strings.Contains(id, "samo") || strings.Contains(id, "wif") {
		return "Solana"
	}

	return "Multi-chain"
}
