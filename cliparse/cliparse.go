package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/widgetyy/widget"
)

const (
	DefaultPort            = 3318
	DefaultBaseURL         = "http://localhost:3318"
	DefaultDeadlineRefresh = time.Second
	DefaultPeriodRefresh   = time.Minute
)

type Config struct {
	Port       int
	BaseURL    string
	Timezone   string
	ConfigFile string
	EnvFile    string

	DefaultTitle    string
	DefaultTime     string
	DeadlineRefresh time.Duration
	PeriodRefresh   time.Duration

	// Resolved from Timezone
	Location *time.Location
}

// WidgetDefaults returns the fallbacks used for deadline query parameters
func (c Config) WidgetDefaults() widget.Defaults {
	return widget.Defaults{
		Title:    c.DefaultTitle,
		Time:     c.DefaultTime,
		Location: c.Location,
	}
}

// ParseFlags reads flags, then environment (.env included), then the YAML
// config file, then built-in defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("widgetyy", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.BaseURL, "b", "", "Public base URL used in sitemap and embed links")
	fs.StringVar(&cfg.Timezone, "tz", "", "IANA timezone for calendar boundaries (default: local)")
	fs.StringVar(&cfg.ConfigFile, "c", "", "YAML config file")
	fs.StringVar(&cfg.EnvFile, "env", ".env", "dotenv file to load if present")
	fs.StringVar(&cfg.DefaultTitle, "title", "", "Default deadline title")
	fs.StringVar(&cfg.DefaultTime, "time", "", "Default deadline time (HH:MM)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.EnvFile != "" {
		// Does not override variables already set
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", cfg.EnvFile, err)
		}
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		}
	}
	envFallback(&cfg.BaseURL, "BASE_URL")
	envFallback(&cfg.Timezone, "WIDGETYY_TZ")
	envFallback(&cfg.ConfigFile, "WIDGETYY_CONFIG")
	envFallback(&cfg.DefaultTitle, "WIDGETYY_DEFAULT_TITLE")
	envFallback(&cfg.DefaultTime, "WIDGETYY_DEFAULT_TIME")

	// Then the config file
	if cfg.ConfigFile != "" {
		file, err := LoadFile(cfg.ConfigFile)
		if err != nil {
			return Config{}, err
		}
		file.applyTo(&cfg)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envFallback(dst *string, key string) {
	if *dst == "" {
		*dst = os.Getenv(key)
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.DefaultTitle == "" {
		cfg.DefaultTitle = widget.DefaultTitle
	}
	if cfg.DefaultTime == "" {
		cfg.DefaultTime = widget.DefaultTime
	}
	if cfg.DeadlineRefresh == 0 {
		cfg.DeadlineRefresh = DefaultDeadlineRefresh
	}
	if cfg.PeriodRefresh == 0 {
		cfg.PeriodRefresh = DefaultPeriodRefresh
	}
}

func validate(cfg *Config) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("port %d out of range", cfg.Port)
	}
	if _, err := time.Parse("15:04", cfg.DefaultTime); err != nil {
		return fmt.Errorf("default time %q must be HH:MM", cfg.DefaultTime)
	}
	if cfg.DeadlineRefresh < 0 || cfg.PeriodRefresh < 0 {
		return errors.New("refresh intervals must be positive")
	}

	loc, err := widget.LoadLocation(cfg.Timezone)
	if err != nil {
		return err
	}
	cfg.Location = loc
	return nil
}
