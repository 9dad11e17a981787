package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/jubams/ramadan-tracker/internal/engine"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg := Load()
	def := engine.DefaultPeriod()

	if cfg.AnchorDate != def.Start.Format("2006-01-02") {
		t.Errorf("anchor_date=%q, want %q", cfg.AnchorDate, def.Start.Format("2006-01-02"))
	}
	if cfg.PeriodDays != def.Days {
		t.Errorf("period_days=%d, want %d", cfg.PeriodDays, def.Days)
	}
	if cfg.HijriYear != def.HijriYear {
		t.Errorf("hijri_year=%d, want %d", cfg.HijriYear, def.HijriYear)
	}
	if cfg.DBPath != "" {
		t.Errorf("db_path=%q, want empty", cfg.DBPath)
	}
	if cfg.Language != "en" {
		t.Errorf("language=%q, want \"en\"", cfg.Language)
	}
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("anchor_date", "2027-02-08")
	viper.Set("period_days", 29)
	viper.Set("hijri_year", 1448)
	viper.Set("language", "ar")

	cfg := Load()
	if cfg.AnchorDate != "2027-02-08" || cfg.PeriodDays != 29 || cfg.HijriYear != 1448 || cfg.Language != "ar" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestConfigPeriod(t *testing.T) {
	cfg := Config{AnchorDate: "2026-02-18", PeriodDays: 30, HijriYear: 1447}

	p, err := cfg.Period()
	if err != nil {
		t.Fatalf("Period: %v", err)
	}
	want := time.Date(2026, time.February, 18, 0, 0, 0, 0, time.Local)
	if !p.Start.Equal(want) {
		t.Errorf("start=%v, want %v", p.Start, want)
	}
	if p.Days != 30 || p.HijriYear != 1447 {
		t.Errorf("period=%+v", p)
	}
}

func TestConfigPeriodDefaultsDays(t *testing.T) {
	cfg := Config{AnchorDate: "2026-02-18"}

	p, err := cfg.Period()
	if err != nil {
		t.Fatalf("Period: %v", err)
	}
	if p.Days != engine.DefaultPeriodDays {
		t.Errorf("days=%d, want %d", p.Days, engine.DefaultPeriodDays)
	}
}

func TestConfigPeriodBadAnchor(t *testing.T) {
	cfg := Config{AnchorDate: "18/02/2026"}
	if _, err := cfg.Period(); err == nil {
		t.Fatal("expected error for malformed anchor_date")
	}
}
