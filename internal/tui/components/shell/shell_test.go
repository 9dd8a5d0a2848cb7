package shell

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/julianstephens/awawa/internal/content"
)

func TestHeaderAndFooter(t *testing.T) {
	s := content.Default().Shell

	header := ansi.Strip(Header(s, 80))
	for _, want := range []string{"🐱 AwaWa 🐱", "I miss you and I'm hungry"} {
		if !strings.Contains(header, want) {
			t.Errorf("header missing %q:\n%s", want, header)
		}
	}

	footer := ansi.Strip(Footer(s, 0))
	for _, want := range []string{"Made just for you, Kenji", "Can't wait to see you laew!"} {
		if !strings.Contains(footer, want) {
			t.Errorf("footer missing %q:\n%s", want, footer)
		}
	}
}
