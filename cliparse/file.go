package cliparse

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML config file layout
type FileConfig struct {
	Port     int    `yaml:"port"`
	BaseURL  string `yaml:"base_url"`
	Timezone string `yaml:"timezone"`

	Widgets struct {
		DefaultTitle           string `yaml:"default_title"`
		DefaultTime            string `yaml:"default_time"`
		DeadlineRefreshSeconds int    `yaml:"deadline_refresh_seconds"`
		PeriodRefreshSeconds   int    `yaml:"period_refresh_seconds"`
	} `yaml:"widgets"`
}

// LoadFile reads a YAML config file
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig

	raw, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fc, fmt.Errorf("parse config yaml: %w", err)
	}
	return fc, nil
}

// applyTo fills only the fields flags and env left empty
func (fc FileConfig) applyTo(cfg *Config) {
	if cfg.Port == 0 {
		cfg.Port = fc.Port
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = fc.BaseURL
	}
	if cfg.Timezone == "" {
		cfg.Timezone = fc.Timezone
	}
	if cfg.DefaultTitle == "" {
		cfg.DefaultTitle = fc.Widgets.DefaultTitle
	}
	if cfg.DefaultTime == "" {
		cfg.DefaultTime = fc.Widgets.DefaultTime
	}
	if fc.Widgets.DeadlineRefreshSeconds != 0 {
		cfg.DeadlineRefresh = time.Duration(fc.Widgets.DeadlineRefreshSeconds) * time.Second
	}
	if fc.Widgets.PeriodRefreshSeconds != 0 {
		cfg.PeriodRefresh = time.Duration(fc.Widgets.PeriodRefreshSeconds) * time.Second
	}
}
