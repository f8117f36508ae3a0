package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App          AppConfig
	Database     DatabaseConfig
	Session      SessionConfig
	Stripe       StripeConfig
	RateLimit    RateLimitConfig
	Notification NotificationConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	ExpiryHours int
}

type StripeConfig struct {
	SecretKey            string
	WebhookSecret        string
	DemoMode             bool
	BaseURL              string
	SessionExpiryMinutes int
}

type RateLimitConfig struct {
	CheckoutMax           int
	CheckoutWindowMinutes int
}

// NotificationConfig covers the Telegram admin channel and outbound email.
// Empty credentials disable the channel without failing startup.
type NotificationConfig struct {
	TelegramBotToken string
	TelegramChatID   int64
	ResendAPIKey     string
	FromEmail        string
	ContactEmail     string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("LOG_PATH", "logs/")
	// Demo mode is the default so the service runs without live payment keys.
	viper.SetDefault("STRIPE_DEMO_MODE", true)
	viper.SetDefault("STRIPE_SESSION_EXPIRY_MINUTES", 30)
	viper.SetDefault("CHECKOUT_RATE_LIMIT_MAX", 60)
	viper.SetDefault("CHECKOUT_RATE_LIMIT_WINDOW_MINUTES", 10)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Stripe: StripeConfig{
			SecretKey:            viper.GetString("STRIPE_SECRET_KEY"),
			WebhookSecret:        viper.GetString("STRIPE_WEBHOOK_SECRET"),
			DemoMode:             viper.GetBool("STRIPE_DEMO_MODE"),
			BaseURL:              viper.GetString("BASE_URL"),
			SessionExpiryMinutes: viper.GetInt("STRIPE_SESSION_EXPIRY_MINUTES"),
		},
		RateLimit: RateLimitConfig{
			CheckoutMax:           viper.GetInt("CHECKOUT_RATE_LIMIT_MAX"),
			CheckoutWindowMinutes: viper.GetInt("CHECKOUT_RATE_LIMIT_WINDOW_MINUTES"),
		},
		Notification: NotificationConfig{
			TelegramBotToken: viper.GetString("TELEGRAM_BOT_TOKEN"),
			TelegramChatID:   viper.GetInt64("TELEGRAM_CHAT_ID"),
			ResendAPIKey:     viper.GetString("RESEND_API_KEY"),
			FromEmail:        viper.GetString("FROM_EMAIL"),
			ContactEmail:     viper.GetString("CONTACT_EMAIL"),
		},
	}

	return config, nil
}
