package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"hrbuddy_backend/internals/configs"
	"hrbuddy_backend/internals/features/attendance/service"
)

// StartAutoAbsentScheduler fires the absence sweep once per day at
// SWEEP_HOUR:SWEEP_MINUTE (default 23:59) in the app timezone. The ticker
// checks every minute; the sweep itself is idempotent, so an extra trigger
// is harmless.
func StartAutoAbsentScheduler(db *gorm.DB) {
	hour := configs.GetEnvInt("SWEEP_HOUR", 23)
	minute := configs.GetEnvInt("SWEEP_MINUTE", 59)

	go func() {
		log.Printf("[SWEEP] Auto-absent scheduler started: daily at %02d:%02d %s", hour, minute, configs.AppTimezone)

		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now().In(configs.AppLocation())
			if now.Hour() == hour && now.Minute() == minute {
				if err := service.SweepAbsencesForToday(db); err != nil {
					log.Printf("[ERROR] Auto-absent sweep: %v", err)
				}
			}
		}
	}()
}

// RunAutoAbsentNow triggers the sweep immediately. Exposed through the admin
// cron endpoint for operational re-runs; a manual trigger produces the same
// end state as the scheduled one.
func RunAutoAbsentNow(db *gorm.DB) error {
	log.Println("[SWEEP] Running auto-absent manually...")
	return service.SweepAbsencesForToday(db)
}
