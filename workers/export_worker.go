package workers

import (
	"context"
	"fmt"
	"log"
	"time"

	"token-analytics-system/services"
	"token-analytics-system/utils"
)

// PollRegistryExports periodically snapshots the early-access registry to R2
// so the marketing team always has a recent CSV even if nobody hits the
// on-demand export endpoint. Failed uploads are retried on the next tick.
func PollRegistryExports(ctx context.Context, store services.RegistryStore, interval time.Duration) {
	log.Printf("Starting registry export worker (every %s)...", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Registry export worker stopped.")
			return
		case <-ticker.C:
			users, err := store.ListAll()
			if err != nil {
				log.Printf("❌ [EXPORT] Failed to read registry: %v", err)
				continue
			}

			data, err := utils.EarlyAccessCSV(users)
			if err != nil {
				log.Printf("❌ [EXPORT] Failed to render CSV: %v", err)
				continue
			}

			key := fmt.Sprintf("exports/early-access-%s.csv", time.Now().UTC().Format("20060102T150405Z"))
			if _, err := utils.UploadBytesToR2(data, key, "text/csv"); err != nil {
				log.Printf("❌ [EXPORT] Failed to upload registry snapshot: %v", err)
				continue
			}

			log.Printf("✅ [EXPORT] Uploaded registry snapshot (%d user(s)) to %s", len(users), key)
		}
	}
}
