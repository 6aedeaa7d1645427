package seeds

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"hrbuddy_backend/internals/configs"
	authHelper "hrbuddy_backend/internals/features/users/auth/helper"
	userModel "hrbuddy_backend/internals/features/users/user/model"
)

// SeedAdmin creates the admin account from ADMIN_* env vars if it does not
// exist yet. Idempotent across restarts.
func SeedAdmin(db *gorm.DB) {
	if configs.AdminEmail == "" || configs.AdminPassword == "" {
		log.Println("⚠️ ADMIN_EMAIL / ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var existing userModel.UserModel
	err := db.First(&existing, "email = ?", configs.AdminEmail).Error
	if err == nil {
		log.Println("[SEED] Admin user already exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] Admin seed lookup failed: %v", err)
		return
	}

	passwordHash, err := authHelper.HashPassword(configs.AdminPassword)
	if err != nil {
		log.Printf("[ERROR] Admin seed hash failed: %v", err)
		return
	}

	admin := userModel.UserModel{
		FullName:      configs.AdminName,
		Email:         configs.AdminEmail,
		Password:      passwordHash,
		Role:          "admin",
		DateOfJoining: time.Now(),
		LeaveBalance:  0,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[ERROR] Admin seed create failed: %v", err)
		return
	}

	log.Printf("[SEED] Admin user created: %s", configs.AdminEmail)
}
