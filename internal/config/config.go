// Package config loads runtime settings from dotenv files and the process environment
// and builds the structured logger shared by the request handlers.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvDefaultCurrency         = "ORDERING_DEFAULT_CURRENCY"
	EnvDefaultPhoneCountryCode = "ORDERING_DEFAULT_PHONE_COUNTRY_CODE"
	EnvLogLevel                = "ORDERING_LOG_LEVEL"
	EnvLogFormat               = "ORDERING_LOG_FORMAT"
)

const (
	DefaultCurrency         = "USD"
	DefaultPhoneCountryCode = "+1"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = LogFormatText

	LogFormatText = "text"
	LogFormatJSON = "json"
)

type Config struct {
	DefaultCurrency         string `validate:"required,len=3,alpha"`
	DefaultPhoneCountryCode string `validate:"required,startswith=+,min=2,max=5"`
	LogLevel                string `validate:"required,oneof=debug info warn error"`
	LogFormat               string `validate:"required,oneof=text json"`
}

// Load reads envFiles in order, then the process environment. Variables already present
// in the environment win over dotenv values, and a file that does not exist is skipped.
// Empty variables fall back to their defaults.
//
// Example:
//
//	cfg, err := config.Load(".env")
//	if err != nil {
//	    return err
//	}
//	logger := config.NewLogger(cfg, os.Stderr)
func Load(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	cfg := Config{
		DefaultCurrency:         strings.ToUpper(getenv(EnvDefaultCurrency, DefaultCurrency)),
		DefaultPhoneCountryCode: getenv(EnvDefaultPhoneCountryCode, DefaultPhoneCountryCode),
		LogLevel:                strings.ToLower(getenv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:               strings.ToLower(getenv(EnvLogFormat, DefaultLogFormat)),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against its struct tag.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("config", err)
	}
	return nil
}

// Defaults returns the fallbacks the command handlers apply to incomplete commands.
func (c Config) Defaults() commands.Defaults {
	return commands.Defaults{
		Currency:         c.DefaultCurrency,
		PhoneCountryCode: c.DefaultPhoneCountryCode,
	}
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
