// Test Type: Unit Test
// Description: Tests for layered configuration loading

package config

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/cmdmatch/pkg/errors"
	"github.com/arthur-debert/cmdmatch/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	testutil.NewTestEnvironment(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "$ ", cfg.Prompt)
	assert.Equal(t, "", cfg.RulesFile)
	assert.Equal(t, "auto", cfg.Format)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
	assert.Equal(t, 3, cfg.Log.MaxBackups)
	assert.Equal(t, 28, cfg.Log.MaxAgeDays)
	assert.Equal(t, "anywhere", cfg.Guards.FlagPosition)

	assert.Equal(t, cfg, Default())
}

func TestLoad_UserFileAtDefaultPath(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	path := env.WriteConfig(`
prompt = "> "
[guards]
flag_position = "leading"
`)
	require.Equal(t, path, DefaultPath())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "> ", cfg.Prompt)
	assert.Equal(t, "leading", cfg.Guards.FlagPosition)
	assert.Equal(t, "auto", cfg.Format, "unset keys keep their defaults")
}

func TestLoad_ExplicitFile(t *testing.T) {
	testutil.NewTestEnvironment(t)
	path := testutil.WriteFile(t, t.TempDir(), "custom.toml", `
rules_file = "/etc/cmdmatch/rules.yaml"
format = "json"
[log]
file = "-"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/etc/cmdmatch/rules.yaml", cfg.RulesFile)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "-", cfg.Log.File)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	testutil.NewTestEnvironment(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_BadToml(t *testing.T) {
	testutil.NewTestEnvironment(t)
	path := testutil.WriteFile(t, t.TempDir(), "bad.toml", "prompt = ")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoad_EnvOverrides(t *testing.T) {
	testutil.NewTestEnvironment(t)
	t.Setenv("CMDMATCH_PROMPT", "cmd> ")
	t.Setenv("CMDMATCH_GUARDS__FLAG_POSITION", "leading")
	t.Setenv("CMDMATCH_LOG__MAX_SIZE_MB", "42")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "cmd> ", cfg.Prompt)
	assert.Equal(t, "leading", cfg.Guards.FlagPosition)
	assert.Equal(t, 42, cfg.Log.MaxSizeMB)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad_format", func(c *Config) { c.Format = "html" }},
		{"bad_flag_position", func(c *Config) { c.Guards.FlagPosition = "middle" }},
		{"negative_rotation", func(c *Config) { c.Log.MaxBackups = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			require.NoError(t, cfg.Validate())

			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
		})
	}
}

func TestLoad_InvalidEnvValue(t *testing.T) {
	testutil.NewTestEnvironment(t)
	t.Setenv("CMDMATCH_FORMAT", "html")

	_, err := Load("")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestDefaultContent(t *testing.T) {
	assert.Contains(t, DefaultContent(), "flag_position")
}
