package cli

import (
	"fmt"

	"github.com/julianstephens/awawa/internal/constants"
	"github.com/julianstephens/awawa/internal/countdown"
)

type CountdownCmd struct {
	JSON bool `help:"Print machine-readable JSON."`
}

func (cmd *CountdownCmd) Run(ctx *Context) error {
	if ctx.TargetErr != nil {
		return ctx.TargetErr
	}

	d := countdown.Remaining(ctx.Target, ctx.now())

	if cmd.JSON {
		output := map[string]any{
			"target":  ctx.Target.Format(constants.TargetFormat),
			"days":    d.Days,
			"hours":   d.Hours,
			"minutes": d.Minutes,
			"seconds": d.Seconds,
		}
		return printJSON(ctx, output)
	}

	fmt.Fprintf(ctx.out(), "We will meet in: %d days, %d hours, %d minutes, %d seconds\n",
		d.Days, d.Hours, d.Minutes, d.Seconds)
	fmt.Fprintf(ctx.out(), "%s ♥\n", ctx.Target.Format(constants.TargetLabelFormat))
	return nil
}
