// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Isolate tests from the user's XDG directories

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

// TestEnvironment points the XDG base directories at a temp directory for
// the lifetime of a test
type TestEnvironment struct {
	Root        string
	ConfigHome  string
	StateHome   string
	DataHome    string
	CacheHome   string
	ConfigDir   string // ConfigHome/cmdmatch

	t *testing.T
}

// NewTestEnvironment creates an isolated environment. xdg is reloaded
// after the environment variables are restored.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		Root:       root,
		ConfigHome: filepath.Join(root, "config"),
		StateHome:  filepath.Join(root, "state"),
		DataHome:   filepath.Join(root, "data"),
		CacheHome:  filepath.Join(root, "cache"),
		t:          t,
	}
	env.ConfigDir = filepath.Join(env.ConfigHome, "cmdmatch")

	// Registered before Setenv so it runs after the variables are restored
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv("XDG_DATA_HOME", env.DataHome)
	t.Setenv("XDG_CACHE_HOME", env.CacheHome)
	xdg.Reload()

	return env
}

// WithoutLogFile disables the rotating log file for the test
func (env *TestEnvironment) WithoutLogFile() *TestEnvironment {
	env.t.Setenv("CMDMATCH_LOG__FILE", "-")
	return env
}

// WriteConfig writes content as the user's config file and returns its path
func (env *TestEnvironment) WriteConfig(content string) string {
	env.t.Helper()
	return WriteFile(env.t, env.ConfigDir, "config.toml", content)
}

// WriteFile writes content to dir/name, creating dir if needed, and
// returns the full path
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
