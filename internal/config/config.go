package config

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"library-lending/internal/domain"
)

// Config holds all configuration for our application
type Config struct {
	Database Database `mapstructure:"database"`
	Lending  Lending  `mapstructure:"lending"`
	Reminder Reminder `mapstructure:"reminder"`
	Logging  Logging  `mapstructure:"logging"`
}

type Database struct {
	Path        string `mapstructure:"DATABASE_PATH"`
	BusyTimeout int    `mapstructure:"DATABASE_BUSY_TIMEOUT_MS"`
}

type Lending struct {
	BookPeriodDays int    `mapstructure:"BOOK_PERIOD_DAYS"`
	BookFinePerDay string `mapstructure:"BOOK_FINE_PER_DAY"`
	CDPeriodDays   int    `mapstructure:"CD_PERIOD_DAYS"`
	CDFinePerDay   string `mapstructure:"CD_FINE_PER_DAY"`
}

type Reminder struct {
	Schedule string `mapstructure:"REMINDER_SCHEDULE"`
	Timezone string `mapstructure:"REMINDER_TIMEZONE"`
}

type Logging struct {
	Level string `mapstructure:"LOG_LEVEL"`
}

// Load reads configuration from environment variables and files
func Load() (*Config, error) {
	// Set defaults
	viper.SetDefault("DATABASE_PATH", "library.db")
	viper.SetDefault("DATABASE_BUSY_TIMEOUT_MS", 5000)
	viper.SetDefault("BOOK_PERIOD_DAYS", 28)
	viper.SetDefault("BOOK_FINE_PER_DAY", "10.0")
	viper.SetDefault("CD_PERIOD_DAYS", 7)
	viper.SetDefault("CD_FINE_PER_DAY", "20.0")
	viper.SetDefault("REMINDER_SCHEDULE", "0 0 9 * * *")
	viper.SetDefault("REMINDER_TIMEZONE", "Local")
	viper.SetDefault("LOG_LEVEL", "info")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read from .env file (optional)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Don't fail if .env file doesn't exist
	_ = viper.ReadInConfig()

	config := Config{
		Database: Database{
			Path:        viper.GetString("DATABASE_PATH"),
			BusyTimeout: viper.GetInt("DATABASE_BUSY_TIMEOUT_MS"),
		},
		Lending: Lending{
			BookPeriodDays: viper.GetInt("BOOK_PERIOD_DAYS"),
			BookFinePerDay: viper.GetString("BOOK_FINE_PER_DAY"),
			CDPeriodDays:   viper.GetInt("CD_PERIOD_DAYS"),
			CDFinePerDay:   viper.GetString("CD_FINE_PER_DAY"),
		},
		Reminder: Reminder{
			Schedule: viper.GetString("REMINDER_SCHEDULE"),
			Timezone: viper.GetString("REMINDER_TIMEZONE"),
		},
		Logging: Logging{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}

	if c.Lending.BookPeriodDays <= 0 {
		return fmt.Errorf("BOOK_PERIOD_DAYS must be greater than 0")
	}

	if c.Lending.CDPeriodDays <= 0 {
		return fmt.Errorf("CD_PERIOD_DAYS must be greater than 0")
	}

	if _, err := decimal.NewFromString(c.Lending.BookFinePerDay); err != nil {
		return fmt.Errorf("BOOK_FINE_PER_DAY must be a valid decimal: %w", err)
	}

	if _, err := decimal.NewFromString(c.Lending.CDFinePerDay); err != nil {
		return fmt.Errorf("CD_FINE_PER_DAY must be a valid decimal: %w", err)
	}

	if c.Reminder.Schedule == "" {
		return fmt.Errorf("REMINDER_SCHEDULE is required")
	}

	return nil
}

// DSN returns the sqlite connection string for the configured database file.
func (c *Config) DSN() string {
	return fmt.Sprintf("file:%s?_busy_timeout=%d&_foreign_keys=1", c.Database.Path, c.Database.BusyTimeout)
}

// Policy builds the immutable lending policy from the configured values.
func (c *Config) Policy() domain.Policy {
	bookRate, _ := decimal.NewFromString(c.Lending.BookFinePerDay)
	cdRate, _ := decimal.NewFromString(c.Lending.CDFinePerDay)
	return domain.NewPolicy(map[domain.MediaKind]domain.PolicyEntry{
		domain.KindBook: {BorrowPeriodDays: c.Lending.BookPeriodDays, FinePerDay: bookRate},
		domain.KindCD:   {BorrowPeriodDays: c.Lending.CDPeriodDays, FinePerDay: cdRate},
	})
}
