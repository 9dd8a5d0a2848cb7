package cli

import (
	"fmt"

	"github.com/julianstephens/awawa/internal/validation"
)

type ValidateCmd struct {
	Strict bool `help:"Exit non-zero when conflicts are found."`
}

func (cmd *ValidateCmd) Run(ctx *Context) error {
	fmt.Fprintln(ctx.out(), "Validating content...")

	result := validation.New().ValidateCatalog(ctx.Catalog)

	fmt.Fprintln(ctx.out())
	fmt.Fprintln(ctx.out(), result.FormatReport())

	if cmd.Strict && result.HasConflicts() {
		return fmt.Errorf("found %d conflict(s)", len(result.Conflicts))
	}
	return nil
}
