package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	StripeKey string

	EmailSender string
	Password    string // SMTP Password

	AdminWebhookURL string // Optional webhook pinged on new instructor applications

	CartItemTTLDays int // Cart rows older than this are purged by the scheduler
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "5000"),
		JWTKey:    getEnv("ACCESS_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		StripeKey: getEnv("PAYMENT_KEY", ""),

		EmailSender: getEnv("EMAIL_SENDER", ""),
		Password:    getEnv("EMAIL_PASSWORD", ""),

		AdminWebhookURL: getEnv("ADMIN_WEBHOOK_URL", ""),

		CartItemTTLDays: getEnvInt("CART_ITEM_TTL_DAYS", 7),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default ACCESS_KEY. Update it in your environment.")
	}
	if AppConfig.StripeKey == "" {
		log.Println("Warning: PAYMENT_KEY not set. Payment intents will fail.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
