package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string

	// SMTP settings for leave-status notifications
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	// Admin seed credentials
	AdminName     string
	AdminEmail    string
	AdminPassword string

	// Single timezone for all calendar-date comparisons (attendance,
	// leave, sweep trigger). Defaults to the HR office timezone.
	AppTimezone string

	appLocation *time.Location
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system ENV")
	} else {
		log.Println("✅ .env file loaded")
	}

	JWTSecret = GetEnv("JWT_SECRET")

	SMTPHost = GetEnv("SMTP_HOST", "smtp.gmail.com")
	SMTPPort = GetEnvInt("SMTP_PORT", 587)
	SMTPUser = GetEnv("MAIL_USER")
	SMTPPassword = GetEnv("MAIL_PASS")
	SMTPFrom = GetEnv("MAIL_FROM", SMTPUser)

	AdminName = GetEnv("ADMIN_NAME", "HR Admin")
	AdminEmail = GetEnv("ADMIN_EMAIL")
	AdminPassword = GetEnv("ADMIN_PASSWORD")

	AppTimezone = GetEnv("APP_TIMEZONE", "Asia/Kolkata")
	loc, err := time.LoadLocation(AppTimezone)
	if err != nil {
		log.Printf("❌ Invalid APP_TIMEZONE %q, falling back to UTC: %v", AppTimezone, err)
		loc = time.UTC
	}
	appLocation = loc

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	} else {
		log.Println("✅ JWT_SECRET loaded.")
	}
	if SMTPUser == "" {
		log.Println("⚠️ MAIL_USER not set, leave notifications disabled")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// AppLocation returns the fixed timezone every date comparison uses.
// Safe before LoadEnv: falls back to UTC.
func AppLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}
	return appLocation
}
