// internals/features/users/auth/scheduler/cleanup.go
package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "schoolku_backend/internals/features/users/auth/model"
)

// StartTokenCleanupScheduler menghapus blacklist & refresh token yang
// sudah expired tiap jam. Jalan di goroutine sendiri.
func StartTokenCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			res := db.Unscoped().
				Where("expired_at < ?", now).
				Delete(&authModel.TokenBlacklistModel{})
			if res.Error != nil {
				log.Println("[ERROR] Cleanup blacklist gagal:", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[INFO] Cleanup blacklist: %d token dihapus", res.RowsAffected)
			}

			res = db.Unscoped().
				Where("expires_at < ?", now).
				Delete(&authModel.RefreshTokenModel{})
			if res.Error != nil {
				log.Println("[ERROR] Cleanup refresh token gagal:", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[INFO] Cleanup refresh token: %d token dihapus", res.RowsAffected)
			}
		}
	}()
}
