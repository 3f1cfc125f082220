package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB       int    `mapstructure:"REDIS_SESSION_DB"`
	RedisAuthDB          int    `mapstructure:"REDIS_AUTH_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Institution settings.
	EmailDomain      string `mapstructure:"EMAIL_DOMAIN"`
	BookingRefPrefix string `mapstructure:"BOOKING_REF_PREFIX"`

	// Booking wizard behavior.
	ConfirmDelayMS       int `mapstructure:"CONFIRM_DELAY_MS"`
	ReminderLeadMinutes  int `mapstructure:"REMINDER_LEAD_MINUTES"`
	WizardSessionTTLMins int `mapstructure:"WIZARD_SESSION_TTL_MINS"`

	// Live chat availability window (hours, 24h clock, Mon-Fri).
	ChatOpenHour   int `mapstructure:"CHAT_OPEN_HOUR"`
	ChatCloseHour  int `mapstructure:"CHAT_CLOSE_HOUR"`
	ChatReplyDelay int `mapstructure:"CHAT_REPLY_DELAY_MS"`

	// Firebase Cloud Messaging.
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "campuscare")
	viper.SetDefault("EMAIL_DOMAIN", "campus.edu")
	viper.SetDefault("BOOKING_REF_PREFIX", "CC")
	viper.SetDefault("CONFIRM_DELAY_MS", 1500)
	viper.SetDefault("REMINDER_LEAD_MINUTES", 60)
	viper.SetDefault("WIZARD_SESSION_TTL_MINS", 30)
	viper.SetDefault("CHAT_OPEN_HOUR", 9)
	viper.SetDefault("CHAT_CLOSE_HOUR", 18)
	viper.SetDefault("CHAT_REPLY_DELAY_MS", 800)
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "serviceAccountKey.json")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
