// Package config reads the configuration of the backend from the
// environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds the configuration of the backend.
type Config struct {
	GinMode   string
	LogFormat string // "human" or "json". Empty selects by gin mode
	LogLevel  string // zerolog level, overrides the default for the gin mode

	APIURL string
	Port   string

	DBDriver string // DriverSQLite or DriverPostgres
	DBDSN    string // File path for SQLite, connection string for Postgres

	CORSAllowOrigins string // Space separated list of origins
	EnablePprof      bool
	RateLimit        string // ulule/limiter formatted rate, e.g. "100-M". Empty disables rate limiting

	VoucherNumberRetries int
	SuggestLookbackDays  int
	DefaultCurrency      string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_FORMAT", "")
	v.SetDefault("LOG_LEVEL", "")
	v.SetDefault("API_URL", "http://localhost:8080")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DB_DSN", "data/ledger.db")
	v.SetDefault("CORS_ALLOW_ORIGINS", "")
	v.SetDefault("ENABLE_PPROF", false)
	v.SetDefault("RATE_LIMIT", "")
	v.SetDefault("VOUCHER_NUMBER_RETRIES", 3)
	v.SetDefault("SUGGEST_LOOKBACK_DAYS", 90)
	v.SetDefault("DEFAULT_CURRENCY", "EUR")
}

// Load reads the configuration. Values from the environment take precedence
// over values from a .env file in the working directory.
func Load() (Config, error) {
	// A missing .env file is fine, the environment alone is enough
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded configuration from .env")
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := Config{
		GinMode:              v.GetString("GIN_MODE"),
		LogFormat:            v.GetString("LOG_FORMAT"),
		LogLevel:             v.GetString("LOG_LEVEL"),
		APIURL:               v.GetString("API_URL"),
		Port:                 v.GetString("PORT"),
		DBDriver:             v.GetString("DB_DRIVER"),
		DBDSN:                v.GetString("DB_DSN"),
		CORSAllowOrigins:     v.GetString("CORS_ALLOW_ORIGINS"),
		EnablePprof:          v.GetBool("ENABLE_PPROF"),
		RateLimit:            v.GetString("RATE_LIMIT"),
		VoucherNumberRetries: v.GetInt("VOUCHER_NUMBER_RETRIES"),
		SuggestLookbackDays:  v.GetInt("SUGGEST_LOOKBACK_DAYS"),
		DefaultCurrency:      v.GetString("DEFAULT_CURRENCY"),
	}

	return cfg, cfg.Validate()
}

// Validate checks the configuration for values the backend cannot work with.
func (c Config) Validate() error {
	if c.DBDriver != DriverSQLite && c.DBDriver != DriverPostgres {
		return fmt.Errorf("%w: DB_DRIVER must be '%s' or '%s', not '%s'", ErrInvalidConfig, DriverSQLite, DriverPostgres, c.DBDriver)
	}

	if c.DBDSN == "" {
		return fmt.Errorf("%w: DB_DSN must be set", ErrInvalidConfig)
	}

	if c.VoucherNumberRetries < 1 {
		return fmt.Errorf("%w: VOUCHER_NUMBER_RETRIES must be at least 1", ErrInvalidConfig)
	}

	if c.SuggestLookbackDays < 0 {
		return fmt.Errorf("%w: SUGGEST_LOOKBACK_DAYS must not be negative", ErrInvalidConfig)
	}

	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: API_URL '%s' is not a valid URL", ErrInvalidConfig, c.APIURL)
	}

	if c.RateLimit != "" {
		if _, err := limiter.NewRateFromFormatted(c.RateLimit); err != nil {
			return fmt.Errorf("%w: RATE_LIMIT: %w", ErrInvalidConfig, err)
		}
	}

	if len(c.DefaultCurrency) != 3 {
		return fmt.Errorf("%w: DEFAULT_CURRENCY must be an ISO 4217 code", ErrInvalidConfig)
	}

	return nil
}

// URL returns the parsed API_URL.
func (c Config) URL() (*url.URL, error) {
	return url.Parse(c.APIURL)
}
