// services/coingecko_client.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const defaultCoinGeckoURL = "https://api.coingecko.com/api/v3"

// Upstream request budget; a slow provider falls through to the backup
// dataset instead of stalling the landing page.
const coinGeckoTimeout = 8 * time.Second

type CoinGeckoClient struct {
	BaseURL string
	Client  *http.Client
}

// CoinMarket is one row of the CoinGecko /coins/markets response, reduced to
// the fields the snapshot needs.
type CoinMarket struct {
	ID           string  `json:"id"`
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	CurrentPrice float64 `json:"current_price"`
	MarketCap    float64 `json:"market_cap"`
	TotalVolume  float64 `json:"total_volume"`
	// Nullable upstream for freshly listed coins
	PriceChangePercentage24h *float64 `json:"price_change_percentage_24h"`
}

func NewCoinGeckoClient(baseURL string) *CoinGeckoClient {
	if baseURL == "" {
		baseURL = defaultCoinGeckoURL
	}
	return &CoinGeckoClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: coinGeckoTimeout,
		},
	}
}

// FetchTopMarkets returns the top coins by market cap with 24h figures.
// Any failure (transport, timeout, non-2xx, decode) is returned to the
// caller, which absorbs it by serving the backup dataset.
func (c *CoinGeckoClient) FetchTopMarkets(ctx context.Context, perPage int) ([]CoinMarket, error) {
	url := fmt.Sprintf("%s/coins/markets?vs_currency=usd&order=market_cap_desc&per_page=%d&page=1&sparkline=false&price_change_percentage=24h",
		c.BaseURL, perPage)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create CoinGecko request: %w", err)
	}
	// CoinGecko rejects requests without a browser-looking UA
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call CoinGecko: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Printf("⚠️ [COINGECKO] /coins/markets returned %d: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("CoinGecko responded with status %d", resp.StatusCode)
	}

	var coins []CoinMarket
	if err := json.NewDecoder(resp.Body).Decode(&coins); err != nil {
		return nil, fmt.Errorf("failed to decode CoinGecko response: %w", err)
	}

	return coins, nil
}
