package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv            string
	Port              string
	AdminPassword     string
	AdminPasswordHash string
	WhatsAppNumber    string
	OwnerEmail        string
	JWTSecret         string
	JWTExpiry         string
	MenuStorage       string
	MenuFile          string
	MenuSlot          string
	MaxImageSize      int64
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	maxImageSize, _ := strconv.ParseInt(os.Getenv("MAX_IMAGE_SIZE"), 10, 64)
	if maxImageSize == 0 {
		maxImageSize = 2 * 1024 * 1024
	}

	AppConfig = &Config{
		AppEnv:            getEnv("APP_ENV", "development"),
		Port:              getEnv("APP_PORT", getEnv("PORT", "8082")),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "Rudi123574"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		WhatsAppNumber:    getEnv("WHATSAPP_NUMBER", "6281312357574"),
		OwnerEmail:        getEnv("OWNER_EMAIL", ""),
		JWTSecret:         getEnv("JWT_SECRET", "secret"),
		JWTExpiry:         getEnv("JWT_EXPIRY", "24h"),
		MenuStorage:       getEnv("MENU_STORAGE", "file"),
		MenuFile:          getEnv("MENU_FILE", "./data/dapur_mama_menu.json"),
		MenuSlot:          getEnv("MENU_SLOT", "dapurMamaMenu"),
		MaxImageSize:      maxImageSize,
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
