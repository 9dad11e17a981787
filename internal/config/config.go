package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/jubams/ramadan-tracker/internal/engine"
)

// Config holds runtime configuration for a tracker session.
// Values come from .rt.yaml, RT_* env vars, and CLI flags.
type Config struct {
	AnchorDate string `mapstructure:"anchor_date"`
	PeriodDays int    `mapstructure:"period_days"`
	HijriYear  int    `mapstructure:"hijri_year"`
	DBPath     string `mapstructure:"db_path"`
	Language   string `mapstructure:"language"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	def := engine.DefaultPeriod()
	viper.SetDefault("anchor_date", def.Start.Format("2006-01-02"))
	viper.SetDefault("period_days", def.Days)
	viper.SetDefault("hijri_year", def.HijriYear)
	viper.SetDefault("db_path", "")
	viper.SetDefault("language", "en")

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}

// Period resolves the configured observance window.
func (c Config) Period() (engine.Period, error) {
	start, err := time.ParseInLocation("2006-01-02", c.AnchorDate, time.Local)
	if err != nil {
		return engine.Period{}, fmt.Errorf("parse anchor_date %q: %w", c.AnchorDate, err)
	}
	days := c.PeriodDays
	if days <= 0 {
		days = engine.DefaultPeriodDays
	}
	return engine.Period{Start: start, Days: days, HijriYear: c.HijriYear}, nil
}
