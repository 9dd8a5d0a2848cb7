package cli

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/awawa/internal/config"
	"github.com/julianstephens/awawa/internal/constants"
	"github.com/julianstephens/awawa/internal/content"
	"github.com/julianstephens/awawa/internal/models"
)

func setupTestContext(t *testing.T) (*Context, *bytes.Buffer) {
	t.Helper()
	tempDir := t.TempDir()

	cfg := config.Default()
	cfg.AssetsDir = tempDir

	ctx := NewContext(cfg, filepath.Join(tempDir, "config.toml"))
	ctx.Clock = func() time.Time {
		return time.Date(2025, 4, 1, 21, 28, 15, 0, time.Local)
	}
	var out bytes.Buffer
	ctx.Out = &out
	return ctx, &out
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
}

func TestNewContext_BadTarget(t *testing.T) {
	cfg := config.Default()
	cfg.Target = "next tuesday"
	ctx := NewContext(cfg, "")
	if ctx.TargetErr == nil {
		t.Fatal("expected target error")
	}

	if err := (&CountdownCmd{}).Run(ctx); err == nil {
		t.Error("countdown should fail with a bad target")
	}
	if err := (&TuiCmd{}).Run(ctx); err == nil {
		t.Error("tui should fail with a bad target")
	}
}

func TestNewContext_MovieURLOverride(t *testing.T) {
	cfg := config.Default()
	cfg.MovieNightURL = "https://example.com/watch"
	ctx := NewContext(cfg, "")

	for _, idea := range ctx.Catalog.DateIdeas {
		if mn, ok := idea.(models.MovieNight); ok && mn.URL != cfg.MovieNightURL {
			t.Errorf("Movie Night URL = %q, want %q", mn.URL, cfg.MovieNightURL)
		}
	}
}

func TestCountdownCmd(t *testing.T) {
	ctx, out := setupTestContext(t)

	if err := (&CountdownCmd{}).Run(ctx); err != nil {
		t.Fatalf("countdown failed: %v", err)
	}
	if !strings.Contains(out.String(), "2 days, 2 hours, 31 minutes, 45 seconds") {
		t.Errorf("unexpected output: %s", out.String())
	}
	if !strings.Contains(out.String(), "April 4, 2025 ♥") {
		t.Errorf("missing target date: %s", out.String())
	}
}

func TestCountdownCmd_JSON(t *testing.T) {
	ctx, out := setupTestContext(t)

	if err := (&CountdownCmd{JSON: true}).Run(ctx); err != nil {
		t.Fatalf("countdown failed: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if got["days"] != float64(2) || got["seconds"] != float64(45) {
		t.Errorf("unexpected values: %v", got)
	}
}

func TestValidateCmd(t *testing.T) {
	ctx, out := setupTestContext(t)

	if err := (&ValidateCmd{Strict: true}).Run(ctx); err != nil {
		t.Fatalf("default content should validate: %v", err)
	}
	if !strings.Contains(out.String(), "No conflicts detected.") {
		t.Errorf("unexpected report: %s", out.String())
	}

	ctx.Catalog.Tabs = ctx.Catalog.Tabs[:2]
	if err := (&ValidateCmd{}).Run(ctx); err != nil {
		t.Errorf("non-strict validate should not fail: %v", err)
	}
	if err := (&ValidateCmd{Strict: true}).Run(ctx); err == nil {
		t.Error("strict validate should fail on conflicts")
	}
}

func TestDoctorCmd_MissingAssetsIsWarning(t *testing.T) {
	ctx, out := setupTestContext(t)

	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Errorf("missing assets should only warn: %v", err)
	}
	if !strings.Contains(out.String(), "Assets present: WARNING") {
		t.Errorf("expected asset warning:\n%s", out.String())
	}
}

func TestDoctorCmd_AllAssetsPresent(t *testing.T) {
	ctx, out := setupTestContext(t)
	for _, ref := range ctx.Catalog.AssetRefs() {
		writePNG(t, filepath.Join(ctx.Config.AssetsDir, strings.TrimPrefix(ref, "/")))
	}

	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Errorf("doctor failed: %v", err)
	}
	if !strings.Contains(out.String(), "✓ Assets present: OK") {
		t.Errorf("expected assets OK:\n%s", out.String())
	}
}

func TestDoctorCmd_BadConfig(t *testing.T) {
	ctx, out := setupTestContext(t)
	ctx.Config.Target = "soon"

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Error("doctor should fail on an invalid config")
	}
	if !strings.Contains(out.String(), "❌ Config: FAIL") {
		t.Errorf("expected config failure:\n%s", out.String())
	}
}

func TestInitCmd(t *testing.T) {
	ctx, out := setupTestContext(t)

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if !strings.Contains(out.String(), ctx.ConfigPath) {
		t.Errorf("expected path in output: %s", out.String())
	}

	cfg, err := config.Load(ctx.ConfigPath)
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if cfg.Target != config.Default().Target {
		t.Errorf("Target = %q, want default", cfg.Target)
	}
	if cfg.AssetsDir != constants.DefaultAssetsDir {
		t.Errorf("AssetsDir = %q after init, want %q", cfg.AssetsDir, constants.DefaultAssetsDir)
	}

	if err := (&InitCmd{}).Run(ctx); err == nil {
		t.Error("init should refuse to overwrite")
	}
	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Errorf("init --force failed: %v", err)
	}
}

func TestDebugConfigPathCmd(t *testing.T) {
	ctx, out := setupTestContext(t)

	if err := (&DebugConfigPathCmd{}).Run(ctx); err != nil {
		t.Fatalf("debug config-path failed: %v", err)
	}

	var got map[string]string
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got["path"] != ctx.ConfigPath {
		t.Errorf("path = %q, want %q", got["path"], ctx.ConfigPath)
	}
}

func TestDebugDumpAssetsCmd(t *testing.T) {
	ctx, out := setupTestContext(t)
	ctx.Catalog = content.Catalog{
		Shell:    models.Shell{IconRef: "/icons/cat.png"},
		Memories: []models.Memory{{Title: "gone", ImageRef: "/images/gone.png"}},
	}
	writePNG(t, filepath.Join(ctx.Config.AssetsDir, "icons", "cat.png"))

	if err := (&DebugDumpAssetsCmd{}).Run(ctx); err != nil {
		t.Fatalf("debug dump-assets failed: %v", err)
	}

	var got []assetStatus
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d assets, want 2", len(got))
	}
	if got[0].Format != "png" || got[0].Width != 2 || got[0].Error != "" {
		t.Errorf("icon status = %+v", got[0])
	}
	if got[1].Error == "" {
		t.Errorf("missing image should report an error: %+v", got[1])
	}
}
