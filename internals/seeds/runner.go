package seeds

import (
	"log"

	"gorm.io/gorm"

	finance "bursary_backend/internals/seeds/finance"
	user "bursary_backend/internals/seeds/users"
)

// RunAllSeeds is invoked on boot when SEED_ON_BOOT=true. Every seeder is
// idempotent, rows that already exist are skipped.
func RunAllSeeds(db *gorm.DB) {
	log.Println("[SEED] Running seeds...")

	user.SeedAdminUser(db)
	finance.SeedFeeCategories(db)
	finance.SeedExpenseCategories(db)

	log.Println("[SEED] Seeds finished")
}
