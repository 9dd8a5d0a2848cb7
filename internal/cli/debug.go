package cli

import (
	"encoding/json"
	"fmt"
)

type DebugCmd struct {
	ConfigPath *DebugConfigPathCmd `cmd:"" help:"Show config file path."`
	DumpConfig *DebugDumpConfigCmd `cmd:"" help:"Dump the effective config as JSON."`
	DumpAssets *DebugDumpAssetsCmd `cmd:"" help:"Dump every referenced asset and whether it loads."`
}

type DebugConfigPathCmd struct{}

func (cmd *DebugConfigPathCmd) Run(ctx *Context) error {
	// Output in machine-readable format
	output := map[string]string{
		"path": ctx.ConfigPath,
	}
	return printJSON(ctx, output)
}

type DebugDumpConfigCmd struct{}

func (cmd *DebugDumpConfigCmd) Run(ctx *Context) error {
	return printJSON(ctx, ctx.Config)
}

type assetStatus struct {
	Ref    string `json:"ref"`
	Format string `json:"format,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Error  string `json:"error,omitempty"`
}

type DebugDumpAssetsCmd struct{}

func (cmd *DebugDumpAssetsCmd) Run(ctx *Context) error {
	refs := ctx.Catalog.AssetRefs()
	statuses := make([]assetStatus, 0, len(refs))
	for _, ref := range refs {
		st := assetStatus{Ref: ref}
		img, err := ctx.Loader.Load(ref)
		if err != nil {
			st.Error = err.Error()
		} else {
			st.Format = img.Format
			st.Width = img.Width()
			st.Height = img.Height()
		}
		statuses = append(statuses, st)
	}
	return printJSON(ctx, statuses)
}

func printJSON(ctx *Context, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(ctx.out(), string(jsonBytes))
	return nil
}
