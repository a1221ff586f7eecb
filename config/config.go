package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Scheduling configuration.
	Timezone               string `mapstructure:"TIMEZONE"`
	WorkStartHour          int    `mapstructure:"WORK_START_HOUR"`
	WorkEndHour            int    `mapstructure:"WORK_END_HOUR"`
	SlotStepMinutes        int    `mapstructure:"SLOT_STEP_MINUTES"`
	DefaultDurationMinutes int    `mapstructure:"DEFAULT_DURATION_MINUTES"`
	DefaultParticipants    string `mapstructure:"DEFAULT_PARTICIPANTS"`
	RequesterName          string `mapstructure:"REQUESTER_NAME"`
	SeedDemoCalendars      bool   `mapstructure:"SEED_DEMO_CALENDARS"`

	// Availability persistence backend: "memory" or "mongo".
	AvailabilityBackend string `mapstructure:"AVAILABILITY_BACKEND"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB       int    `mapstructure:"REDIS_SESSION_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`
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
	viper.SetDefault("TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("WORK_START_HOUR", 9)
	viper.SetDefault("WORK_END_HOUR", 18)
	viper.SetDefault("SLOT_STEP_MINUTES", 30)
	viper.SetDefault("DEFAULT_DURATION_MINUTES", 30)
	viper.SetDefault("DEFAULT_PARTICIPANTS", "Priya,Alex")
	viper.SetDefault("REQUESTER_NAME", "You")
	viper.SetDefault("SEED_DEMO_CALENDARS", true)
	viper.SetDefault("AVAILABILITY_BACKEND", "memory")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 1)

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

// Location resolves the configured timezone, falling back to UTC.
func Location() *time.Location {
	loc, err := time.LoadLocation(AppConfig.Timezone)
	if err != nil {
		log.Printf("invalid TIMEZONE %q, falling back to UTC", AppConfig.Timezone)
		return time.UTC
	}
	return loc
}

// FallbackParticipants returns the configured default participant list.
func FallbackParticipants() []string {
	raw := strings.Split(AppConfig.DefaultParticipants, ",")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
