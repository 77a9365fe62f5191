// services/scheduler.go
package services

import (
	"context"
	"log"

	"github.com/go-co-op/gocron/v2"
)

// StartSnapshotScheduler pre-warms the trending snapshot cache on the cache
// TTL interval so landing-page requests are served warm. No-op when the
// cache is disabled.
func (s *MarketService) StartSnapshotScheduler() {
	if s.CacheTTL <= 0 {
		return
	}

	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(s.CacheTTL),
		gocron.NewTask(func() {
			s.RefreshSnapshot(context.Background())
			log.Println("🔄 [MARKET] Trending snapshot cache refreshed")
		}),
	)
}
