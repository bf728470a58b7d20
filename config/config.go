package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port     string
	DBDriver string // postgres (default) or sqlite for local development
	DBHost   string
	DBUser   string
	DBPass   string
	DBName   string
	DBPort   string

	EmailSender string
	Password    string // SMTP Password

	BranchCode string // default branch code stamped on new accounts
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	// Initialize AppConfig with values from environment variables
	AppConfig = &Config{
		Port:     getEnv("PORT", "3000"),
		DBDriver: getEnv("DB_DRIVER", "postgres"),
		DBHost:   getEnv("DB_HOST", "localhost"),
		DBUser:   getEnv("DB_USER", "postgres"),
		DBPass:   getEnv("DB_PASSWORD", ""),
		DBName:   getEnv("DB_NAME", "bankflow.db"),
		DBPort:   getEnv("DB_PORT", "5432"),

		EmailSender: getEnv("EMAIL_SENDER", "defaultSecret"),
		Password:    getEnv("PASSWORD", "defaultSecret"),

		BranchCode: getEnv("BRANCH_CODE", "MAIN001"),
	}

	// Validate critical configuration
	if AppConfig.DBName == "bankflow.db" {
		log.Println("Warning: Using default DBName. Update it in your environment.")
	}
	if AppConfig.EmailSender == "defaultSecret" {
		log.Println("Warning: EMAIL_SENDER not configured. Welcome emails will fail to send.")
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
