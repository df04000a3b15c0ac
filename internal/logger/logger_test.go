package logger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInit_Disabled(t *testing.T) {
	require.NoError(t, Init(Options{}))
	Info("dropped", "k", 1)
}

func TestInit_WritesJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(Options{Enabled: true, LogDir: dir, Level: "debug"}))
	t.Cleanup(func() { _ = Init(Options{}) })

	Debug("opened file", "session", "abc", "size", 512)
	Sync()

	data, err := os.ReadFile(filepath.Join(dir, FileName(time.Now())))
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"opened file"`)
	require.Contains(t, string(data), `"session":"abc"`)
}

func TestInit_BadLevel(t *testing.T) {
	require.Error(t, Init(Options{Enabled: true, LogDir: t.TempDir(), Level: "loud"}))
}

func TestCleanOldLogs(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	old := FileName(now.AddDate(0, 0, -45))
	recent := FileName(now.AddDate(0, 0, -3))
	for _, n := range []string{old, recent, "other.log", "mrdfkit-garbage.log"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), nil, 0o644))
	}

	cleanOldLogs(dir, now)

	_, err := os.Stat(filepath.Join(dir, old))
	require.True(t, os.IsNotExist(err))
	for _, n := range []string{recent, "other.log", "mrdfkit-garbage.log"} {
		_, err := os.Stat(filepath.Join(dir, n))
		require.NoError(t, err, n)
	}
}
