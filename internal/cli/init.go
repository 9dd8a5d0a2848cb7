package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/julianstephens/awawa/internal/config"
)

type InitCmd struct {
	Force bool `help:"Overwrite an existing config file."`
}

func (c *InitCmd) Run(ctx *Context) error {
	path := ctx.ConfigPath
	if path == "" {
		return fmt.Errorf("no config path given")
	}

	if _, err := os.Stat(path); err == nil && !c.Force {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}
	defer f.Close()

	// Leave assets_dir out so the default keeps resolving against the
	// working directory rather than the config directory
	cfg := config.Default()
	cfg.AssetsDir = ""
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(ctx.out(), "Initialized awawa config at: %s\n", path)
	return nil
}
