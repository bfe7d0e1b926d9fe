// Package config loads cmdmatch settings from layered sources: the embedded
// defaults, a user TOML file and CMDMATCH_* environment variables, later
// layers overriding earlier ones.
package config

import (
	"github.com/arthur-debert/cmdmatch/pkg/errors"
	"github.com/arthur-debert/cmdmatch/pkg/rules"
	"github.com/arthur-debert/cmdmatch/pkg/style"
)

// Config is the complete cmdmatch configuration
type Config struct {
	Prompt    string      `koanf:"prompt"`
	RulesFile string      `koanf:"rules_file"`
	Format    string      `koanf:"format"`
	Log       LogConfig   `koanf:"log"`
	Guards    GuardConfig `koanf:"guards"`
}

// LogConfig controls the rotating log file
type LogConfig struct {
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
}

// GuardConfig holds settings for the named guard kinds of rule files
type GuardConfig struct {
	FlagPosition string `koanf:"flag_position"`
}

// Validate checks values that the rest of the program relies on
func (c *Config) Validate() error {
	if _, err := style.ParseFormat(c.Format); err != nil {
		return errors.Wrapf(err, errors.ErrConfigValid, "invalid format %q", c.Format).
			WithDetail("key", "format")
	}

	switch c.Guards.FlagPosition {
	case rules.FlagsAnywhere, rules.FlagsLeading:
	default:
		return errors.Newf(errors.ErrConfigValid, "invalid guards.flag_position %q", c.Guards.FlagPosition).
			WithDetail("key", "guards.flag_position").
			WithDetail("allowed", []string{rules.FlagsAnywhere, rules.FlagsLeading})
	}

	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return errors.New(errors.ErrConfigValid, "log rotation limits cannot be negative").
			WithDetail("key", "log")
	}
	return nil
}
