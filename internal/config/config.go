// Package config loads the mrdfkit YAML configuration.
//
//	profile_dirs: [~/.mrdfkit/profiles]
//	default_profile: stats
//	backup: true
//	log: {enabled: true, dir: ~/.mrdfkit/logs, level: debug}
//	hex: {bytes_per_line: 16, page_lines: 64}
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vuuvv/errors"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/mrdfkit/internal/logger"
)

const (
	DefaultBytesPerLine = 16
	DefaultPageLines    = 64
	maxBytesPerLine     = 64
)

type Log struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
	Level   string `yaml:"level"`
}

type Hex struct {
	BytesPerLine int `yaml:"bytes_per_line"`
	PageLines    int `yaml:"page_lines"`
}

// Config is the user configuration shared by the CLI and the explorer.
type Config struct {
	ProfileDirs    []string `yaml:"profile_dirs"`
	DefaultProfile string   `yaml:"default_profile"`
	Backup         bool     `yaml:"backup"`
	Log            Log      `yaml:"log"`
	Hex            Hex      `yaml:"hex"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Hex: Hex{BytesPerLine: DefaultBytesPerLine, PageLines: DefaultPageLines},
	}
}

// DefaultPath returns ~/.mrdfkit/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WithStack(err)
	}
	return filepath.Join(home, ".mrdfkit", "config.yaml"), nil
}

// Load reads path. A missing file yields Default; an empty path means DefaultPath.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	err = yaml.NewDecoder(f).Decode(cfg)
	if err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Setup(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Setup fills defaults, expands ~ in paths and validates ranges.
func (c *Config) Setup() error {
	if c.Hex.BytesPerLine == 0 {
		c.Hex.BytesPerLine = DefaultBytesPerLine
	}
	if c.Hex.PageLines == 0 {
		c.Hex.PageLines = DefaultPageLines
	}
	if c.Hex.BytesPerLine < 1 || c.Hex.BytesPerLine > maxBytesPerLine {
		return errors.Errorf("hex.bytes_per_line must be between 1 and %d, got %d", maxBytesPerLine, c.Hex.BytesPerLine)
	}
	if c.Hex.PageLines < 1 {
		return errors.Errorf("hex.page_lines must be at least 1, got %d", c.Hex.PageLines)
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return errors.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	for i, d := range c.ProfileDirs {
		c.ProfileDirs[i] = expandHome(d)
	}
	c.Log.Dir = expandHome(c.Log.Dir)
	return nil
}

// LoggerOptions converts the log section for logger.Init.
func (c *Config) LoggerOptions() logger.Options {
	return logger.Options{Enabled: c.Log.Enabled, LogDir: c.Log.Dir, Level: strings.ToLower(c.Log.Level)}
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
