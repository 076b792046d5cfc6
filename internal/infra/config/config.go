package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	DatabaseURL string

	// Google Sheets appointment store
	GoogleSheetID         string
	GoogleSheetRange      string
	GoogleCredentialsFile string

	// Business identity
	BusinessTimezone string
	BusinessAddress  string

	// Email transport (plain SMTP relay)
	SMTPHost string
	SMTPPort string
	SMTPFrom string

	// WhatsApp gateway. Empty URL disables the chat channel.
	WhatsAppWebhookURL   string
	WhatsAppWebhookToken string

	// Optional ops notifications over Telegram. Empty token disables them.
	TelegramToken   string
	AdminTelegramID int64

	LogLevel    string
	Environment string

	CronSpec24h   string
	CronSpec12h   string
	CronSpec15min string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	cfg.GoogleSheetID = os.Getenv("GOOGLE_SHEET_ID")
	if cfg.GoogleSheetID == "" {
		return nil, fmt.Errorf("GOOGLE_SHEET_ID is not set")
	}

	cfg.GoogleSheetRange = os.Getenv("GOOGLE_SHEET_RANGE")
	if cfg.GoogleSheetRange == "" {
		cfg.GoogleSheetRange = "CLIENTES!A:J"
	}

	cfg.GoogleCredentialsFile = os.Getenv("GOOGLE_CREDENTIALS_FILE")
	if cfg.GoogleCredentialsFile == "" {
		return nil, fmt.Errorf("GOOGLE_CREDENTIALS_FILE is not set")
	}

	cfg.BusinessTimezone = os.Getenv("BUSINESS_TIMEZONE")
	if cfg.BusinessTimezone == "" {
		cfg.BusinessTimezone = "America/Bogota"
	}

	cfg.BusinessAddress = os.Getenv("BUSINESS_ADDRESS")
	if cfg.BusinessAddress == "" {
		return nil, fmt.Errorf("BUSINESS_ADDRESS is not set")
	}

	cfg.SMTPHost = os.Getenv("SMTP_HOST")
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("SMTP_HOST is not set")
	}
	cfg.SMTPPort = os.Getenv("SMTP_PORT")
	if cfg.SMTPPort == "" {
		cfg.SMTPPort = "25"
	}
	cfg.SMTPFrom = os.Getenv("SMTP_FROM")
	if cfg.SMTPFrom == "" {
		cfg.SMTPFrom = "no-reply@citas.local"
	}

	cfg.WhatsAppWebhookURL = os.Getenv("WHATSAPP_WEBHOOK_URL")
	cfg.WhatsAppWebhookToken = os.Getenv("WHATSAPP_WEBHOOK_TOKEN")

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if cfg.TelegramToken != "" {
		adminIDStr := os.Getenv("ADMIN_TELEGRAM_ID")
		if adminIDStr == "" {
			return nil, fmt.Errorf("ADMIN_TELEGRAM_ID is not set (required when TELEGRAM_TOKEN is set)")
		}
		var err error
		cfg.AdminTelegramID, err = strconv.ParseInt(adminIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ADMIN_TELEGRAM_ID: %w", err)
		}
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.CronSpec24h = os.Getenv("CRON_SPEC_24H")
	if cfg.CronSpec24h == "" {
		cfg.CronSpec24h = "0 * * * *" // Default: hourly (window is 2h wide)
	}
	cfg.CronSpec12h = os.Getenv("CRON_SPEC_12H")
	if cfg.CronSpec12h == "" {
		cfg.CronSpec12h = "30 * * * *" // Default: hourly, offset from the 24h poll
	}
	cfg.CronSpec15min = os.Getenv("CRON_SPEC_15MIN")
	if cfg.CronSpec15min == "" {
		cfg.CronSpec15min = "*/5 * * * *" // Default: every 5 minutes (window is 10min wide)
	}

	return cfg, nil
}
