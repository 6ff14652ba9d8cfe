package user

import (
	"log"
	"os"

	"gorm.io/gorm"

	"bursary_backend/internals/constants"
	authService "bursary_backend/internals/features/users/auth/service"
	"bursary_backend/internals/features/users/user/model"
)

// SeedAdminUser creates the bootstrap admin account when no admin exists.
// Credentials come from SEED_ADMIN_* so production never ships a default
// password.
func SeedAdminUser(db *gorm.DB) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("[SEED] SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var existing model.UserModel
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("[SEED] Admin '%s' already exists, skipping", email)
		return
	}

	hashed, err := authService.HashPassword(password)
	if err != nil {
		log.Printf("[SEED] Failed to hash admin password: %v", err)
		return
	}

	name := os.Getenv("SEED_ADMIN_NAME")
	if name == "" {
		name = "System Administrator"
	}

	admin := model.UserModel{
		FullName: name,
		Email:    email,
		Password: hashed,
		Role:     constants.RoleAdmin,
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[SEED] Failed to create admin '%s': %v", email, err)
		return
	}
	log.Printf("[SEED] Admin '%s' created", email)
}
