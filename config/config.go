package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB    int    `mapstructure:"REDIS_CACHE_DB"`
	RedisReminderDB int    `mapstructure:"REDIS_REMINDER_DB"`

	// External collaborators.
	GoogleAPIKey string `mapstructure:"GOOGLE_API_KEY"`
	StripeKey    string `mapstructure:"STRIPE_KEY"`
	JWTSecret    string `mapstructure:"JWT_SECRET"`
	SalonAddress string `mapstructure:"SALON_ADDRESS"`

	// Scheduling policy. Times are "HH:MM", hours are "HH:MM-HH:MM" with
	// "closed" for days off.
	SlotStepMinutes   int     `mapstructure:"SLOT_STEP_MINUTES"`
	SafetyMarginMin   int     `mapstructure:"SAFETY_MARGIN_MINUTES"`
	FullDayStart      string  `mapstructure:"FULL_DAY_START"`
	DepositPercent    int     `mapstructure:"DEPOSIT_PERCENT"`
	Currency          string  `mapstructure:"CURRENCY"`
	BlockingStatuses  string  `mapstructure:"BLOCKING_STATUSES"`
	TravelThresholdKm float64 `mapstructure:"TRAVEL_THRESHOLD_KM"`
	TravelBaseFee     float64 `mapstructure:"TRAVEL_BASE_FEE"`
	TravelPerKmRate   float64 `mapstructure:"TRAVEL_PER_KM_RATE"`

	HoursMonday    string `mapstructure:"HOURS_MONDAY"`
	HoursTuesday   string `mapstructure:"HOURS_TUESDAY"`
	HoursWednesday string `mapstructure:"HOURS_WEDNESDAY"`
	HoursThursday  string `mapstructure:"HOURS_THURSDAY"`
	HoursFriday    string `mapstructure:"HOURS_FRIDAY"`
	HoursSaturday  string `mapstructure:"HOURS_SATURDAY"`
	HoursSunday    string `mapstructure:"HOURS_SUNDAY"`
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
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "glowdesk")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_REMINDER_DB", 1)
	viper.SetDefault("GOOGLE_API_KEY", "")
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("SALON_ADDRESS", "")

	viper.SetDefault("SLOT_STEP_MINUTES", 30)
	viper.SetDefault("SAFETY_MARGIN_MINUTES", 10)
	viper.SetDefault("FULL_DAY_START", "09:00")
	viper.SetDefault("DEPOSIT_PERCENT", 30)
	viper.SetDefault("CURRENCY", "EUR")
	viper.SetDefault("BLOCKING_STATUSES", "pending,awaiting_deposit,confirmed")
	viper.SetDefault("TRAVEL_THRESHOLD_KM", 8.0)
	viper.SetDefault("TRAVEL_BASE_FEE", 10.0)
	viper.SetDefault("TRAVEL_PER_KM_RATE", 1.10)

	viper.SetDefault("HOURS_MONDAY", "09:00-18:00")
	viper.SetDefault("HOURS_TUESDAY", "09:00-18:00")
	viper.SetDefault("HOURS_WEDNESDAY", "09:00-18:00")
	viper.SetDefault("HOURS_THURSDAY", "09:00-18:00")
	viper.SetDefault("HOURS_FRIDAY", "09:00-18:00")
	viper.SetDefault("HOURS_SATURDAY", "09:00-13:00")
	viper.SetDefault("HOURS_SUNDAY", "closed")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// BlockingStatusList parses the comma-separated BLOCKING_STATUSES value.
// An empty value returns nil, leaving the engine on its built-in set.
func (c Config) BlockingStatusList() []string {
	var out []string
	for _, s := range strings.Split(c.BlockingStatuses, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
