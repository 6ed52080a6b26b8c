package config_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"ordering/internal/config"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	config.EnvDefaultCurrency,
	config.EnvDefaultPhoneCountryCode,
	config.EnvLogLevel,
	config.EnvLogFormat,
}

// unsetAll clears every key for the duration of the test; t.Setenv restores the
// previous values afterwards.
func unsetAll(t *testing.T) {
	t.Helper()
	for _, key := range allKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetAll(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, config.Config{
		DefaultCurrency:         "USD",
		DefaultPhoneCountryCode: "+1",
		LogLevel:                "info",
		LogFormat:               "text",
	}, cfg)
	assert.Equal(t, "USD", cfg.Defaults().Currency)
	assert.Equal(t, "+1", cfg.Defaults().PhoneCountryCode)
}

func TestLoad_Environment(t *testing.T) {
	unsetAll(t)
	t.Setenv(config.EnvDefaultCurrency, "eur")
	t.Setenv(config.EnvDefaultPhoneCountryCode, "+44")
	t.Setenv(config.EnvLogLevel, "DEBUG")
	t.Setenv(config.EnvLogFormat, "json")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "EUR", cfg.DefaultCurrency)
	assert.Equal(t, "+44", cfg.DefaultPhoneCountryCode)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_DotEnvFile(t *testing.T) {
	unsetAll(t)
	t.Setenv(config.EnvLogLevel, "warn")

	path := filepath.Join(t.TempDir(), ".env")
	content := config.EnvDefaultCurrency + "=GBP\n" + config.EnvLogLevel + "=error\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"), path)

	require.NoError(t, err)
	assert.Equal(t, "GBP", cfg.DefaultCurrency)
	assert.Equal(t, "warn", cfg.LogLevel, "process environment wins over the file")
}

func TestLoad_Invalid(t *testing.T) {
	testCases := map[string]string{
		config.EnvDefaultCurrency:         "DOLLARS",
		config.EnvDefaultPhoneCountryCode: "44",
		config.EnvLogLevel:                "verbose",
		config.EnvLogFormat:               "xml",
	}

	for key, value := range testCases {
		t.Run(key, func(t *testing.T) {
			unsetAll(t)
			t.Setenv(key, value)

			_, err := config.Load()

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("json format respects the level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := config.NewLogger(config.Config{LogLevel: "warn", LogFormat: "json"}, &buf)

		logger.Info("hidden")
		logger.With("component", "test").Warn("shown", "key", "value")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "shown", entry["msg"])
		assert.Equal(t, "test", entry["component"])
		assert.Equal(t, "value", entry["key"])
	})

	t.Run("text format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := config.NewLogger(config.Config{LogLevel: "debug", LogFormat: "text"}, &buf)

		logger.Debug("visible")

		assert.Contains(t, buf.String(), "msg=visible")
	})
}
