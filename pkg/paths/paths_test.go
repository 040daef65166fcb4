package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	assert.Equal(t, dir, ConfigDir())
	assert.Equal(t, filepath.Join(dir, RulesFileName), RulesPath())
	assert.Equal(t, filepath.Join(dir, TreeFileName), TreePath())
}

func TestStateDir(t *testing.T) {
	t.Run("explicit override wins", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(EnvStateDir, dir)
		assert.Equal(t, filepath.Join(dir, LogFileName), LogFilePath())
	})

	t.Run("XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv(EnvStateDir, "")
		t.Setenv("XDG_STATE_HOME", "/custom/state")
		assert.Equal(t, "/custom/state/invtweaks/invtweaks.log", LogFilePath())
	})
}

func TestSettingsPathPrefersYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	assert.Equal(t, filepath.Join(dir, SettingsFileName), SettingsPath())

	yamlPath := filepath.Join(dir, SettingsYAMLFileName)
	require.NoError(t, os.WriteFile(yamlPath, []byte("capacity: 36\n"), 0644))
	assert.Equal(t, yamlPath, SettingsPath())
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty stays empty", "", ""},
		{"absolute untouched", "/etc/rules.txt", "/etc/rules.txt"},
		{"relative joins config dir", "rules.txt", filepath.Join(dir, "rules.txt")},
		{"home expanded", "~/rules.txt", filepath.Join(home, "rules.txt")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.in))
		})
	}
}
