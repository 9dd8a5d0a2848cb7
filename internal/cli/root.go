package cli

import (
	"io"
	"os"
	"time"

	"github.com/julianstephens/awawa/internal/assets"
	"github.com/julianstephens/awawa/internal/config"
	"github.com/julianstephens/awawa/internal/content"
)

type Context struct {
	Config     config.Config
	ConfigPath string
	Catalog    content.Catalog
	Loader     *assets.Loader

	// Target is zero when the configured literal does not parse; TargetErr
	// then holds the reason. Only doctor runs with a bad target.
	Target    time.Time
	TargetErr error

	Clock func() time.Time
	Out   io.Writer
}

// NewContext builds the shared command context from the effective config
func NewContext(cfg config.Config, configPath string) *Context {
	ctx := &Context{
		Config:     cfg,
		ConfigPath: configPath,
		Catalog:    content.Default().WithMovieURL(cfg.MovieNightURL),
		Loader:     assets.NewDirLoader(cfg.AssetsDir),
		Clock:      time.Now,
		Out:        os.Stdout,
	}
	ctx.Target, ctx.TargetErr = cfg.TargetTime()
	return ctx
}

func (ctx *Context) now() time.Time {
	if ctx.Clock == nil {
		return time.Now()
	}
	return ctx.Clock()
}

func (ctx *Context) out() io.Writer {
	if ctx.Out == nil {
		return os.Stdout
	}
	return ctx.Out
}
