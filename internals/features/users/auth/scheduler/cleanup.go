package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"communityhub_backend/internals/features/users/auth/repository"
)

// StartBlacklistCleanupScheduler purges expired token_blacklist rows once a
// day so the table does not grow with every logout forever.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		// retention in days, env-overridable (default: 7)
		retentionDays := 7
		if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil {
				retentionDays = parsed
			}
		}

		repo := repository.NewAuthRepository(db)

		for {
			log.Println("[CLEANUP] Purging expired token_blacklist rows...")

			deleteBefore := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)
			deleted, err := repo.CleanupExpiredBlacklist(deleteBefore, 100)
			if err != nil {
				log.Printf("[CLEANUP ERROR] Failed to purge expired tokens: %v", err)
			} else if deleted > 0 {
				log.Printf("[CLEANUP] %d expired tokens removed", deleted)
			} else {
				log.Println("[CLEANUP] Nothing eligible for removal")
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
