package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret     string
	DeploymentEnv string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	MailFrom string

	AppBaseURL    string
	GitHubAPIBase string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, falling back to system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running on Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	DeploymentEnv = GetEnv("DEPLOYMENT_ENV", "development")

	SMTPHost = GetEnv("SMTP_HOST")
	SMTPPort = GetEnv("SMTP_PORT", "587")
	SMTPUser = GetEnv("SMTP_USER")
	SMTPPass = GetEnv("SMTP_PASS")
	MailFrom = GetEnv("MAIL_FROM", "no-reply@communityhub.app")

	AppBaseURL = GetEnv("APP_BASE_URL", "http://localhost:3000")
	GitHubAPIBase = GetEnv("GITHUB_API_BASE", "https://api.github.com")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	} else {
		log.Println("✅ JWT_SECRET loaded.")
	}
	if SMTPHost == "" {
		log.Println("⚠️ SMTP_HOST is not set; check-in emails will fail to send")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// IsProduction drives the Secure flag on auth cookies.
func IsProduction() bool {
	return DeploymentEnv == "production"
}
