package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
	AppEnv     string

	// EmailJS-style transactional email service
	EmailServiceID     string
	EmailPublicKey     string
	EmailAdminTemplate string
	EmailReplyTemplate string

	// Manual payment confirmation channel
	WhatsAppNumber string
	SupportEmail   string
	StoreName      string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		AppPort:    os.Getenv("APP_PORT"),
		AppEnv:     os.Getenv("APP_ENV"),

		EmailServiceID:     os.Getenv("EMAIL_SERVICE_ID"),
		EmailPublicKey:     os.Getenv("EMAIL_PUBLIC_KEY"),
		EmailAdminTemplate: os.Getenv("EMAIL_ADMIN_TEMPLATE"),
		EmailReplyTemplate: os.Getenv("EMAIL_REPLY_TEMPLATE"),

		WhatsAppNumber: os.Getenv("WHATSAPP_NUMBER"),
		SupportEmail:   os.Getenv("SUPPORT_EMAIL"),
		StoreName:      os.Getenv("STORE_NAME"),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	if cfg.StoreName == "" {
		cfg.StoreName = "DigiPasal"
	}

	return cfg
}
