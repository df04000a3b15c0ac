package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultBytesPerLine, cfg.Hex.BytesPerLine)
	require.Equal(t, DefaultPageLines, cfg.Hex.PageLines)
	require.False(t, cfg.Backup)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	require.Equal(t, DefaultBytesPerLine, cfg.Hex.BytesPerLine)
}

func TestLoad_Full(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg, err := Load(writeConfig(t, `
profile_dirs: [~/profiles, /opt/mrdf]
default_profile: physics
backup: true
log:
  enabled: true
  dir: /tmp/mrdf-logs
  level: DEBUG
hex:
  bytes_per_line: 8
`))
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(home, "profiles"), "/opt/mrdf"}, cfg.ProfileDirs)
	require.Equal(t, "physics", cfg.DefaultProfile)
	require.True(t, cfg.Backup)
	require.Equal(t, 8, cfg.Hex.BytesPerLine)
	require.Equal(t, DefaultPageLines, cfg.Hex.PageLines)

	opts := cfg.LoggerOptions()
	require.True(t, opts.Enabled)
	require.Equal(t, "debug", opts.Level)
	require.Equal(t, "/tmp/mrdf-logs", opts.LogDir)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"wide lines": "hex: {bytes_per_line: 65}",
		"negative":   "hex: {page_lines: -1}",
		"bad level":  "log: {level: chatty}",
		"bad yaml":   "profile_dirs: [unterminated",
		"wrong type": "backup: {nested: true}",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			require.Error(t, err)
		})
	}
}
