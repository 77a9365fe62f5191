// services/market_service.go
package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"token-analytics-system/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
)

// How many entries the trending snapshot carries. The provider is queried
// wider than this so a few decode-hostile rows can't shrink the batch.
const (
	trendingCount   = 30
	marketsPageSize = 100
)

type MarketService struct {
	Gecko *CoinGeckoClient
	Dex   *DexScreenerClient

	// Short-TTL snapshot cache; zero TTL disables it and every request
	// re-runs the primary fetch and fallback from scratch.
	CacheTTL time.Duration

	mu       sync.Mutex
	cached   []models.TokenPair
	cachedAt time.Time
}

func NewMarketService(gecko *CoinGeckoClient, dex *DexScreenerClient, cacheTTL time.Duration) *MarketService {
	return &MarketService{
		Gecko:    gecko,
		Dex:      dex,
		CacheTTL: cacheTTL,
	}
}

// GetTrendingTokens serves the trending snapshot. Upstream unavailability is
// absorbed by the backup dataset; this endpoint never returns empty pairs
// because CoinGecko is down.
func (s *MarketService) GetTrendingTokens(c *fiber.Ctx) error {
	timeframe := normalizeTimeframe(c.Query("timeframe", "24h"))

	pairs, err := s.TrendingSnapshot(c.UserContext(), timeframe)
	if err != nil {
		log.Printf("❌ [MARKET] Error building trending snapshot: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch token data",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"pairs":   pairs,
	})
}

// GetSolanaTokens proxies the DexScreener Solana token list as-is.
func (s *MarketService) GetSolanaTokens(c *fiber.Ctx) error {
	body, err := s.Dex.FetchSolanaTokens(c.UserContext())
	if err != nil {
		log.Printf("❌ [MARKET] Error fetching Solana tokens: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch token data from DexScreener",
		})
	}

	c.Set("Content-Type", "application/json")
	return c.Status(fiber.StatusOK).Send(body)
}

// TrendingSnapshot returns the current batch, from cache when fresh.
// Every entry carries all three timeframe buckets, so the timeframe only
// selects what the caller reads; the batch itself is timeframe-independent.
func (s *MarketService) TrendingSnapshot(ctx context.Context, timeframe string) ([]models.TokenPair, error) {
	if pairs, ok := s.cachedSnapshot(); ok {
		return pairs, nil
	}

	pairs := s.freshSnapshot(ctx)
	s.storeSnapshot(pairs)
	return pairs, nil
}

// RefreshSnapshot re-fetches and caches the batch; used by the pre-warm job.
func (s *MarketService) RefreshSnapshot(ctx context.Context) {
	s.storeSnapshot(s.freshSnapshot(ctx))
}

// freshSnapshot runs the primary path once, no retries; any failure falls
// through to the backup dataset.
func (s *MarketService) freshSnapshot(ctx context.Context) []models.TokenPair {
	coins, err := s.Gecko.FetchTopMarkets(ctx, marketsPageSize)
	if err != nil {
		log.Printf("⚠️ [MARKET] CoinGecko unavailable, serving backup dataset: %v", err)
		return backupPairs()
	}

	log.Println("✅ [MARKET] CoinGecko request successful, returning real-time data")
	return normalizeCoins(coins)
}

func (s *MarketService) cachedSnapshot() ([]models.TokenPair, bool) {
	if s.CacheTTL <= 0 {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached == nil || time.Since(s.cachedAt) > s.CacheTTL {
		return nil, false
	}
	out := make([]models.TokenPair, len(s.cached))
	copy(out, s.cached)
	return out, true
}

func (s *MarketService) storeSnapshot(pairs []models.TokenPair) {
	if s.CacheTTL <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = pairs
	s.cachedAt = time.Now()
}

// normalizeCoins maps provider rows into the display shape. Upstream only
// measures 24h, so the 6h/12h buckets are linear estimates and liquidity is
// approximated from volume.
func normalizeCoins(coins []CoinMarket) []models.TokenPair {
	if len(coins) > trendingCount {
		coins = coins[:trendingCount]
	}

	pairs := make([]models.TokenPair, len(coins))
	for i, coin := range coins {
		network := DetermineNetwork(coin.ID, coin.Symbol)

		change := 0.0
		if coin.PriceChangePercentage24h != nil {
			change = *coin.PriceChangePercentage24h
		}

		pairs[i] = models.TokenPair{
			ID: strconv.Itoa(i),
			BaseToken: models.BaseToken{
				Name:   coin.Name,
				Symbol: strings.ToUpper(coin.Symbol),
			},
			ChainID:     slug.Make(network),
			ChainName:   network,
			PriceUsd:    formatAmount(coin.CurrentPrice),
			PriceChange: estimateChange(change),
			Volume:      estimateVolume(coin.TotalVolume),
			Liquidity:   models.Liquidity{USD: formatAmount(coin.TotalVolume / 5)},
			FDV:         formatAmount(coin.MarketCap),
			PairAddress: coin.ID,
			URL:         fmt.Sprintf("https://www.coingecko.com/en/coins/%s", coin.ID),
		}
	}
	return pairs
}

// backupPairs synthesizes the fixed dataset through the same estimation math
// as the live path, so both are structurally indistinguishable.
func backupPairs() []models.TokenPair {
	pairs := make([]models.TokenPair, len(models.BackupTokens))
	for i, token := range models.BackupTokens {
		price, _ := strconv.ParseFloat(token.Price, 64)
		change, _ := strconv.ParseFloat(token.Change, 64)
		volume, _ := strconv.ParseFloat(token.Volume, 64)

		pairs[i] = models.TokenPair{
			ID: strconv.Itoa(i),
			BaseToken: models.BaseToken{
				Name:   token.Name,
				Symbol: token.Symbol,
			},
			ChainID:   slug.Make(token.Network),
			ChainName: token.Network,
			PriceUsd:  token.Price,
			PriceChange: models.PriceChange{
				H24: token.Change,
				H6:  fmt.Sprintf("%.2f", change/4),
				H12: fmt.Sprintf("%.2f", change/2),
			},
			Volume:      estimateVolume(volume),
			Liquidity:   models.Liquidity{USD: formatAmount(volume / 5)},
			FDV:         formatAmount(price * 1_000_000_000),
			PairAddress: fmt.Sprintf("%sUSDT", token.Symbol),
			URL:         fmt.Sprintf("https://www.binance.com/en/trade/%s_USDT", token.Symbol),
		}
	}
	return pairs
}

// estimateChange derives the shorter buckets from the measured 24h figure.
// The 24h value keeps an explicit sign prefix for display.
func estimateChange(h24 float64) models.PriceChange {
	formatted := fmt.Sprintf("%.2f", h24)
	if h24 >= 0 {
		formatted = "+" + formatted
	}
	return models.PriceChange{
		H24: formatted,
		H6:  fmt.Sprintf("%.2f", h24/4),
		H12: fmt.Sprintf("%.2f", h24/2),
	}
}

func estimateVolume(h24 float64) models.VolumeSet {
	return models.VolumeSet{
		H24: formatAmount(h24),
		H6:  formatAmount(h24 / 4),
		H12: formatAmount(h24 / 2),
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// normalizeTimeframe maps caller timeframes onto the buckets the snapshot
// actually carries. "7d" is accepted from the UI but has no independent
// upstream data, so it is served from the 24h-derived batch.
func normalizeTimeframe(tf string) string {
	switch tf {
	case "6h", "12h", "24h":
		return tf
	case "7d":
		return "24h"
	default:
		return "24h"
	}
}
