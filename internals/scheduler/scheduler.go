package scheduler

import (
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	assetService "bursary_backend/internals/features/assets/service"
	feeService "bursary_backend/internals/features/finance/fees/service"
	authRepo "bursary_backend/internals/features/users/auth/repository"
)

func scheduleOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Start registers the recurring maintenance jobs and kicks off the cron
// loop. The returned cron can be stopped on shutdown.
//
// Schedules are overridable per job so staging can run them more often.
func Start(db *gorm.DB) *cron.Cron {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	tokenSchedule := scheduleOrDefault("TOKEN_CLEANUP_SCHEDULE", "30 2 * * *")
	if _, err := c.AddFunc(tokenSchedule, func() { runTokenCleanup(db) }); err != nil {
		log.Fatalf("[SCHEDULER] failed to register token cleanup: %v", err)
	}

	scholarshipSchedule := scheduleOrDefault("SCHOLARSHIP_EXPIRY_SCHEDULE", "0 3 * * *")
	if _, err := c.AddFunc(scholarshipSchedule, func() { runScholarshipExpiry(db) }); err != nil {
		log.Fatalf("[SCHEDULER] failed to register scholarship expiry: %v", err)
	}

	// First day of each month, after the nightly jobs.
	depreciationSchedule := scheduleOrDefault("DEPRECIATION_POSTING_SCHEDULE", "0 4 1 * *")
	if _, err := c.AddFunc(depreciationSchedule, func() { runDepreciationPosting(db) }); err != nil {
		log.Fatalf("[SCHEDULER] failed to register depreciation posting: %v", err)
	}

	log.Printf("[SCHEDULER] started tokens=%q scholarships=%q depreciation=%q",
		tokenSchedule, scholarshipSchedule, depreciationSchedule)
	c.Start()
	return c
}

func runTokenCleanup(db *gorm.DB) {
	if n, err := authRepo.CleanupExpiredBlacklist(db); err != nil {
		log.Printf("[SCHEDULER] blacklist cleanup failed: %v", err)
	} else if n > 0 {
		log.Printf("[SCHEDULER] removed %d expired blacklist entries", n)
	}

	if n, err := authRepo.CleanupExpiredRefreshTokens(db); err != nil {
		log.Printf("[SCHEDULER] refresh token cleanup failed: %v", err)
	} else if n > 0 {
		log.Printf("[SCHEDULER] removed %d expired refresh tokens", n)
	}
}

func runScholarshipExpiry(db *gorm.DB) {
	n, err := feeService.ExpireScholarships(db)
	if err != nil {
		log.Printf("[SCHEDULER] scholarship expiry failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("[SCHEDULER] marked %d scholarships expired", n)
	}
}

func runDepreciationPosting(db *gorm.DB) {
	asOf := time.Now().UTC()
	n, err := assetService.PostDepreciation(db, asOf)
	if err != nil {
		log.Printf("[SCHEDULER] depreciation posting failed: %v", err)
		return
	}
	log.Printf("[SCHEDULER] refreshed depreciation for %d assets as of %s",
		n, asOf.Format("2006-01-02"))
}
