package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/awawa/internal/cli"
	"github.com/julianstephens/awawa/internal/config"
	"github.com/julianstephens/awawa/internal/constants"
	"github.com/julianstephens/awawa/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"${config_path}"`
	Assets  string `help:"Directory holding images/ and icons/ (overrides config)." type:"path"`
	Target  string `help:"Countdown target, \"YYYY-MM-DD hh:mm:ss\" local time (overrides config)."`
	Debug   bool   `help:"Enable debug logging."`

	Init       cli.InitCmd      `cmd:"" help:"Write a default config file."`
	Tui        cli.TuiCmd       `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Countdown  cli.CountdownCmd `cmd:"" help:"Print the time left until the target."`
	Validate   cli.ValidateCmd  `cmd:"" help:"Check the built-in content for conflicts."`
	Doctor     cli.DoctorCmd    `cmd:"" help:"Run health checks on config, assets and the system."`
	DebugTools cli.DebugCmd     `cmd:"" name:"debug" help:"Debugging utilities."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("A little countdown and keepsake box for the two of us"),
		kong.UsageOnError(),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if CLI.Assets != "" {
		cfg.AssetsDir = CLI.Assets
	}
	if CLI.Target != "" {
		cfg.Target = CLI.Target
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	// Stderr is left alone while the TUI owns the terminal
	if err := logger.Init(logger.Config{
		Debug:  cfg.Debug,
		LogDir: cfg.LogDir,
		Stderr: ctx.Command() != "tui",
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("config loaded", "path", CLI.Config, "target", cfg.Target, "assets", cfg.AssetsDir)

	err = ctx.Run(cli.NewContext(cfg, CLI.Config))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
