package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineNetwork(t *testing.T) {
	cases := []struct {
		name   string
		coinID string
		symbol string
		want   string
	}{
		{"id match", "bitcoin", "btc", "Bitcoin"},
		{"symbol match when id unknown", "some-wrapper", "eth", "Ethereum"},
		{"id wins over symbol", "binancecoin", "bnb", "BSC"},
		{"case insensitive", "Bitcoin", "BTC", "Bitcoin"},
		{"stablecoin on ethereum", "tether-gold-x", "usdt", "Ethereum"},
		{"shib heuristic", "baby-shib-rocket", "bsr", "Ethereum"},
		{"floki heuristic", "flokimoon", "flm", "Ethereum"},
		{"elon heuristic", "dogelon-mars-clone", "xyz", "Ethereum"},
		{"pepe heuristic", "pepecoin2", "pp2", "Ethereum"},
		{"doge without solana", "dogechain-token", "dc", "Ethereum"},
		{"doge with solana goes solana", "doge-on-solana", "dos", "Solana"},
		{"sol heuristic", "solblaze", "blze", "Solana"},
		{"bonk heuristic", "superbonk", "sbonk", "Solana"},
		{"wif heuristic", "catwifbag", "cwb", "Solana"},
		{"unknown", "obscure-token", "obt", "Multi-chain"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetermineNetwork(tc.coinID, tc.symbol))
		})
	}
}
