package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret           string
	CronSecret          string
	XenditSecretKey     string
	XenditCallbackToken string
	MidtransServerKey   string
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
	CronSecret = GetEnv("CRON_SECRET")
	XenditSecretKey = GetEnv("XENDIT_SECRET_KEY")
	XenditCallbackToken = GetEnv("XENDIT_CALLBACK_TOKEN")
	MidtransServerKey = GetEnv("MIDTRANS_SERVER_KEY")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	}
	if CronSecret == "" {
		log.Println("❌ CRON_SECRET belum diset! Endpoint cron akan menolak semua request.")
	}
	if XenditSecretKey == "" {
		log.Println("⚠️ XENDIT_SECRET_KEY belum diset, pengecekan status pembayaran akan selalu PENDING.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
