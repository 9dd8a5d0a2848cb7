package cli

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"github.com/julianstephens/awawa/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	out := ctx.out()
	fmt.Fprintln(out, "Running diagnostics...")
	fmt.Fprintln(out)

	hasError := false

	// Check 1: Config valid
	if err := ctx.Config.Validate(); err != nil {
		fmt.Fprintf(out, "❌ Config: FAIL\n")
		fmt.Fprintf(out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(out, "✓ Config: OK\n")
	}

	// Check 2: Assets present (warning only, missing images fall back)
	if err := checkAssets(ctx); err != nil {
		fmt.Fprintf(out, "⚠ Assets present: WARNING\n")
		fmt.Fprintf(out, "   %v\n", err)
	} else {
		fmt.Fprintf(out, "✓ Assets present: OK\n")
	}

	// Check 3: Content validation
	if err := checkValidation(ctx); err != nil {
		fmt.Fprintf(out, "❌ Content validation: FAIL\n")
		fmt.Fprintf(out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(out, "✓ Content validation: OK\n")
	}

	// Check 4: Browser launcher (warning only)
	if err := checkBrowser(); err != nil {
		fmt.Fprintf(out, "⚠ Browser launcher: WARNING\n")
		fmt.Fprintf(out, "   %v\n", err)
	} else {
		fmt.Fprintf(out, "✓ Browser launcher: OK\n")
	}

	// Check 5: Clipboard (warning only)
	if clipboard.Unsupported {
		fmt.Fprintf(out, "⚠ Clipboard: WARNING\n")
		fmt.Fprintf(out, "   no clipboard utility found, copying links will fail\n")
	} else {
		fmt.Fprintf(out, "✓ Clipboard: OK\n")
	}

	// Check 6: Clock/timezone sanity
	if note, err := checkClockTimezone(ctx.now()); err != nil {
		fmt.Fprintf(out, "❌ Clock/timezone: FAIL\n")
		fmt.Fprintf(out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(out, "✓ Clock/timezone: OK\n")
		if note != "" {
			fmt.Fprintf(out, "   Note: %s\n", note)
		}
	}

	fmt.Fprintln(out)
	if hasError {
		fmt.Fprintln(out, "Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Fprintln(out, "All diagnostics passed!")
	return nil
}

func checkAssets(ctx *Context) error {
	var missing []string
	for _, ref := range ctx.Catalog.AssetRefs() {
		if err := ctx.Loader.Stat(ref); err != nil {
			missing = append(missing, ref)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%d asset(s) missing under %s: %s",
			len(missing), ctx.Config.AssetsDir, strings.Join(missing, ", "))
	}
	return nil
}

func checkValidation(ctx *Context) error {
	result := validation.New().ValidateCatalog(ctx.Catalog)
	if result.HasConflicts() {
		return errors.New(result.FormatReport())
	}
	return nil
}

func checkBrowser() error {
	var name string
	switch runtime.GOOS {
	case "darwin":
		name = "open"
	case "windows":
		name = "rundll32"
	default:
		name = "xdg-open"
	}
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%s not found, Movie Night links cannot be opened", name)
	}
	return nil
}

func checkClockTimezone(now time.Time) (string, error) {
	// Check if time is in a reasonable range (after 2020 and before 2100)
	if now.Year() < 2020 || now.Year() > 2100 {
		return "", fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	// The countdown target is read in local time
	_, offset := now.Zone()
	if offset == 0 && now.Location() == time.UTC {
		return "timezone is UTC, the countdown target is read as UTC", nil
	}
	return "", nil
}
