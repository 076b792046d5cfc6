package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"appointment_reminder_bot/internal/app"
	"appointment_reminder_bot/internal/domain/notify"
	"appointment_reminder_bot/internal/domain/reminder"
	"appointment_reminder_bot/internal/infra/config"
	idb "appointment_reminder_bot/internal/infra/database"
	"appointment_reminder_bot/internal/infra/email"
	"appointment_reminder_bot/internal/infra/logger"
	"appointment_reminder_bot/internal/infra/scheduler"
	"appointment_reminder_bot/internal/infra/sheets"
	"appointment_reminder_bot/internal/infra/telegram"
	"appointment_reminder_bot/internal/infra/whatsapp"

	"gopkg.in/telebot.v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg)
	log := logger.Get()
	log.Infof("Appointment reminder bot starting. LogLevel: %s, Environment: %s", cfg.LogLevel, cfg.Environment)

	location, err := time.LoadLocation(cfg.BusinessTimezone)
	if err != nil {
		log.Warnf("Invalid BUSINESS_TIMEZONE %q, falling back to UTC: %v", cfg.BusinessTimezone, err)
		location = time.UTC
	}

	// Sent-reminder ledger storage
	db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to database: %v", err)
	}
	defer db.Close()
	log.Info("Database connection established successfully.")

	ledger := idb.NewPostgresLedgerRepository(db)

	// Appointment store (Google Sheets, read-only)
	sheetsClient, err := sheets.NewClient(context.Background(), cfg.GoogleCredentialsFile, cfg.GoogleSheetID, cfg.GoogleSheetRange, log)
	if err != nil {
		log.Fatalf("FATAL: Could not create Google Sheets client: %v", err)
	}
	log.Infof("Google Sheets client initialized (range %s).", cfg.GoogleSheetRange)

	// Outbound transports
	emailSender := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom, cfg.BusinessAddress)

	var chatSender reminder.Messenger
	if cfg.WhatsAppWebhookURL != "" {
		chatSender = whatsapp.NewWebhookSender(cfg.WhatsAppWebhookURL, cfg.WhatsAppWebhookToken)
		log.Info("WhatsApp webhook sender initialized.")
	} else {
		chatSender = whatsapp.NewNoopSender()
		log.Warn("WHATSAPP_WEBHOOK_URL not set; WhatsApp channel disabled.")
	}

	// Optional ops notifications to an admin Telegram chat
	var opsNotifier notify.OpsNotifier = telegram.NoopNotifier{}
	if cfg.TelegramToken != "" {
		bot, err := telebot.NewBot(telebot.Settings{Token: cfg.TelegramToken})
		if err != nil {
			log.Fatalf("FATAL: Could not create Telegram bot: %v", err)
		}
		opsNotifier = telegram.NewTelebotNotifier(bot, cfg.AdminTelegramID)
		log.Infof("Telegram ops notifier initialized (admin chat %d).", cfg.AdminTelegramID)
	} else {
		log.Info("TELEGRAM_TOKEN not set; ops notifications disabled.")
	}

	formatter := reminder.Formatter{BusinessAddress: cfg.BusinessAddress}
	reminderService := app.NewReminderServiceImpl(sheetsClient, ledger, emailSender, chatSender, formatter, location, log)
	log.Info("Reminder service initialized.")

	reminderScheduler := scheduler.NewReminderScheduler(
		reminderService,
		opsNotifier,
		log,
		location,
		cfg.CronSpec24h,
		cfg.CronSpec12h,
		cfg.CronSpec15min,
	)
	reminderScheduler.Start()

	log.Info("Application setup complete. Scheduler is running.")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down application...")
	reminderScheduler.Stop()
	log.Info("Application shut down gracefully.")
}
