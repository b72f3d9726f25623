package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret            string
	PaystackSecretKey    string
	PaystackPublicKey    string
	PaystackBaseURL      string
	BootstrapSetupSecret string
	SendgridAPIKey       string
	DefaultFromEmail     string
	DefaultFromName      string
	AcademyName          string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	PaystackSecretKey = GetEnv("PAYSTACK_SECRET_KEY")
	PaystackPublicKey = GetEnv("PAYSTACK_PUBLIC_KEY")
	PaystackBaseURL = GetEnv("PAYSTACK_BASE_URL", "https://api.paystack.co")
	BootstrapSetupSecret = GetEnv("BOOTSTRAP_SETUP_SECRET")
	SendgridAPIKey = GetEnv("SENDGRID_API_KEY")
	DefaultFromEmail = GetEnv("DEFAULT_FROM_EMAIL", "noreply@academyku.app")
	DefaultFromName = GetEnv("DEFAULT_FROM_NAME", "AcademyKu")
	AcademyName = GetEnv("ACADEMY_NAME", "AcademyKu Training Institute")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	if PaystackSecretKey == "" {
		log.Println("❌ PAYSTACK_SECRET_KEY belum diset! Endpoint payment akan menolak request.")
	} else {
		log.Println("✅ PAYSTACK_SECRET_KEY berhasil dimuat.")
	}

	if BootstrapSetupSecret == "" {
		log.Println("⚠️ BOOTSTRAP_SETUP_SECRET kosong — bootstrap-admin dinonaktifkan.")
	}

	if SendgridAPIKey == "" {
		log.Println("⚠️ SENDGRID_API_KEY kosong — email hanya dicetak ke console.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
