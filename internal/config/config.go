package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/scholarduty/duty-backend-go/internal/pkg/validator"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Duty     DutyConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// DutyConfig holds the attendance policy knobs
type DutyConfig struct {
	Timezone           string
	GraceMinutes       int
	PenaltyThreshold   int
	MorningSweepHour   int
	MorningSweepMinute int
	EveningSweepHour   int
	EveningSweepMinute int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "scholar_duty"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	// Duty policy configuration
	graceMinutes, err := strconv.Atoi(getEnv("DUTY_GRACE_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid DUTY_GRACE_MINUTES: %w", err)
	}

	penaltyThreshold, err := strconv.Atoi(getEnv("PENALTY_THRESHOLD", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid PENALTY_THRESHOLD: %w", err)
	}

	morningHour, morningMinute, ok := validator.IsValidTimeOfDay(getEnv("MORNING_SWEEP_AT", "13:00"))
	if !ok {
		return nil, fmt.Errorf("invalid MORNING_SWEEP_AT: expected HH:MM")
	}

	eveningHour, eveningMinute, ok := validator.IsValidTimeOfDay(getEnv("EVENING_SWEEP_AT", "18:00"))
	if !ok {
		return nil, fmt.Errorf("invalid EVENING_SWEEP_AT: expected HH:MM")
	}

	config.Duty = DutyConfig{
		Timezone:           getEnv("DUTY_TIMEZONE", "Asia/Manila"),
		GraceMinutes:       graceMinutes,
		PenaltyThreshold:   penaltyThreshold,
		MorningSweepHour:   morningHour,
		MorningSweepMinute: morningMinute,
		EveningSweepHour:   eveningHour,
		EveningSweepMinute: eveningMinute,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Duty.GraceMinutes < 0 {
		return fmt.Errorf("DUTY_GRACE_MINUTES must not be negative")
	}
	if c.Duty.PenaltyThreshold < 1 {
		return fmt.Errorf("PENALTY_THRESHOLD must be at least 1")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
