// services/dexscreener_client.go
package services

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"token-analytics-system/utils"
)

const defaultDexScreenerURL = "https://api.dexscreener.com"

type DexScreenerClient struct {
	BaseURL string
	Client  *http.Client
}

func NewDexScreenerClient(baseURL string) *DexScreenerClient {
	if baseURL == "" {
		baseURL = defaultDexScreenerURL
	}
	return &DexScreenerClient{
		BaseURL: baseURL,
		Client:  utils.HTTPClient,
	}
}

// FetchSolanaTokens returns the raw DexScreener Solana token list. The body
// is passed through untouched; there is no fallback for this endpoint.
func (c *DexScreenerClient) FetchSolanaTokens(ctx context.Context) ([]byte, error) {
	url := fmt.Sprintf("%s/latest/dex/tokens/solana", c.BaseURL)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create DexScreener request: %w", err)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call DexScreener: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("DexScreener responded with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read DexScreener response: %w", err)
	}

	return body, nil
}
