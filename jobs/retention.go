package jobs

import (
	"os"
	"strconv"
	"time"

	"gplus/task"
)

// StartRetentionScheduler runs the push-bet retention purge on a fixed
// interval, configurable via PUSHBET_RETENTION_INTERVAL_MINUTES.
func StartRetentionScheduler() {
	interval := 60 * time.Minute
	if v := os.Getenv("PUSHBET_RETENTION_INTERVAL_MINUTES"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			interval = time.Duration(parsed) * time.Minute
		}
	}

	ticker := time.NewTicker(interval)
	go func() {
		for {
			<-ticker.C
			tasks.CleanupSettledPushBets()
		}
	}()
}
