package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/julianstephens/awawa/internal/constants"
	"github.com/julianstephens/awawa/internal/countdown"
)

// Config is the optional TOML configuration file. Every key may be omitted.
type Config struct {
	Target        string `toml:"target" json:"target"`                   // "2006-01-02 15:04:05", local time
	AssetsDir     string `toml:"assets_dir,omitempty" json:"assets_dir"` // root for /images and /icons, relative to the file
	MovieNightURL string `toml:"movie_night_url" json:"movie_night_url"` // overrides the built-in link
	LogDir        string `toml:"log_dir" json:"log_dir"`                 // enables the log file
	Debug         bool   `toml:"debug" json:"debug"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Target:    constants.DefaultTarget,
		AssetsDir: constants.DefaultAssetsDir,
	}
}

// Load reads the TOML file at path over the defaults. A missing file is not
// an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	path, err := expandHome(path)
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	// Only a path written in the file is relative to the file
	if md.IsDefined("assets_dir") && cfg.AssetsDir != "" && !filepath.IsAbs(cfg.AssetsDir) {
		cfg.AssetsDir = filepath.Join(filepath.Dir(path), cfg.AssetsDir)
	}
	if cfg.LogDir != "" {
		if cfg.LogDir, err = expandHome(cfg.LogDir); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// Validate checks values that can only be verified after parsing
func (c Config) Validate() error {
	if _, err := c.TargetTime(); err != nil {
		return err
	}
	if c.MovieNightURL != "" && !strings.HasPrefix(c.MovieNightURL, "https://") && !strings.HasPrefix(c.MovieNightURL, "http://") {
		return fmt.Errorf("movie_night_url must be an http(s) URL, got %q", c.MovieNightURL)
	}
	return nil
}

// TargetTime parses the countdown target in local time
func (c Config) TargetTime() (time.Time, error) {
	target := c.Target
	if target == "" {
		target = constants.DefaultTarget
	}
	return countdown.ParseTarget(target, time.Local)
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
