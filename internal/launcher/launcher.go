package launcher

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
)

// Opener opens an outbound link outside the terminal
type Opener interface {
	Open(link string) error
}

// Copier places text on the system clipboard
type Copier interface {
	Copy(text string) error
}

// Browser opens links in the user's default browser. The browser is started
// as a fresh process with only the URL, so no referrer or opener is shared.
type Browser struct {
	// command builds the launch command; replaced in tests
	command func(link string) *exec.Cmd
}

// NewBrowser returns an Opener for the current platform
func NewBrowser() *Browser {
	return &Browser{command: browserCommand}
}

func (b *Browser) Open(link string) error {
	if err := checkLink(link); err != nil {
		return err
	}
	cmd := b.command(link)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", link, err)
	}
	// Reap the launcher process without blocking the UI
	go func() { _ = cmd.Wait() }()
	return nil
}

func browserCommand(link string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", link)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", link)
	default:
		return exec.Command("xdg-open", link)
	}
}

// checkLink only lets absolute http(s) URLs reach the OS launcher
func checkLink(link string) error {
	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("invalid link %q: %w", link, err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("refusing to open non-http link %q", link)
	}
	if u.Host == "" {
		return fmt.Errorf("link %q has no host", link)
	}
	return nil
}

// Clipboard copies through the system clipboard
type Clipboard struct{}

func (Clipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not available on this system")
	}
	return clipboard.WriteAll(text)
}
