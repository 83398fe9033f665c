package tasks

import (
	"os"
	"strconv"
	"time"

	"gplus/database"
	"gplus/models"

	"github.com/rs/zerolog/log"
)

const defaultRetentionDays = 90

// CleanupSettledPushBets purges settled ledger rows older than the
// configured retention window. Running and unsettled wagers are never
// touched; the upstream may still re-deliver them.
func CleanupSettledPushBets() {
	days := defaultRetentionDays
	if v := os.Getenv("PUSHBET_RETENTION_DAYS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			days = parsed
		}
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	result := database.DB.
		Where("status = ? AND created_at < ?", "SETTLED", cutoff).
		Delete(&models.PushBet{})

	if result.Error != nil {
		log.Error().Err(result.Error).Msg("failed to delete old push bets")
		return
	}
	if result.RowsAffected > 0 {
		log.Info().
			Int64("deleted", result.RowsAffected).
			Int("retention_days", days).
			Msg("purged settled push bets")
	}
}
