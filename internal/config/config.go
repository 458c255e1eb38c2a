// Package config builds runtime configuration from Viper and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/fbarros/fatura/internal/engine"
)

// DefaultDatabasePath is used when no database path is configured.
const DefaultDatabasePath = "~/.local/share/fatura/fatura.db"

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// DatabasePath resolves the SQLite database location, preferring the
// configured value over the default.
func DatabasePath() string {
	path := viper.GetString("database.path")
	if path == "" {
		path = DefaultDatabasePath
	}
	return ExpandPath(path)
}

// LoadAnalysis builds the analysis engine configuration. It starts from the
// built-in defaults and applies any overrides found in Viper, so a config
// file can replace the whole taxonomy or just tune a single threshold.
func LoadAnalysis() (engine.Config, error) {
	cfg := engine.DefaultConfig()

	if viper.IsSet("analysis.categories") {
		var categories []engine.CategoryConfig
		if err := viper.UnmarshalKey("analysis.categories", &categories); err != nil {
			return engine.Config{}, fmt.Errorf("parsing analysis.categories: %w", err)
		}
		cfg.Categories = categories
	}
	if viper.IsSet("analysis.fallback") {
		var fallback engine.CategoryConfig
		if err := viper.UnmarshalKey("analysis.fallback", &fallback); err != nil {
			return engine.Config{}, fmt.Errorf("parsing analysis.fallback: %w", err)
		}
		cfg.Fallback = fallback
	}
	if viper.IsSet("analysis.subscriptions") {
		var profiles []engine.SubscriptionProfile
		if err := viper.UnmarshalKey("analysis.subscriptions", &profiles); err != nil {
			return engine.Config{}, fmt.Errorf("parsing analysis.subscriptions: %w", err)
		}
		cfg.Subscriptions = profiles
	}
	if viper.IsSet("analysis.charge_keywords") {
		cfg.ChargeKeywords = viper.GetStringSlice("analysis.charge_keywords")
	}
	if v := viper.GetFloat64("analysis.high_value_multiplier"); v > 0 {
		cfg.HighValueMultiplier = v
	}
	if v := viper.GetFloat64("analysis.high_value_floor"); v > 0 {
		cfg.HighValueFloor = v
	}
	if v := viper.GetInt("analysis.recurrence_prefix"); v > 0 {
		cfg.RecurrencePrefix = v
	}
	if v := viper.GetInt("analysis.recurrence_cap"); v > 0 {
		cfg.RecurrenceCap = v
	}
	if v := viper.GetInt("analysis.classified_cap"); v > 0 {
		cfg.ClassifiedCap = v
	}

	return cfg, nil
}
