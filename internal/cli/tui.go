package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/awawa/internal/launcher"
	"github.com/julianstephens/awawa/internal/logger"
	"github.com/julianstephens/awawa/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if ctx.TargetErr != nil {
		return ctx.TargetErr
	}

	logger.Info("starting tui",
		"target", ctx.Target.Format("2006-01-02 15:04:05 MST"),
		"assets", ctx.Config.AssetsDir,
	)

	model := tui.NewModel(tui.Deps{
		Catalog: ctx.Catalog,
		Target:  ctx.Target,
		Loader:  ctx.Loader,
		Opener:  launcher.NewBrowser(),
		Copier:  launcher.Clipboard{},
		Clock:   ctx.Clock,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
