package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver  string
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	// Seed credentials for the admin user; no hard-coded pair in code.
	AdminMobile   string
	AdminPassword string

	// UPI payee for the payment-request QR.
	UPIPayeeID   string
	UPIPayeeName string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBSource:      getEnv("DB_SOURCE", "foodiewe.db"),
		Port:          getEnv("PORT", "8000"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		JWTTTL:        24 * time.Hour,
		AdminMobile:   os.Getenv("ADMIN_MOBILE"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		UPIPayeeID:    getEnv("UPI_PAYEE_ID", ""),
		UPIPayeeName:  getEnv("UPI_PAYEE_NAME", "FoodieWe"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
