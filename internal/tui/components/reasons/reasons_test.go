package reasons

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/julianstephens/awawa/internal/models"
)

func testReasons(n int) []models.Reason {
	rs := make([]models.Reason, n)
	for i := range rs {
		rs[i] = models.Reason{Text: fmt.Sprintf("reason %d", i)}
	}
	return rs
}

// clearFor builds the message the pending tick would deliver
func clearFor(m Model) clearMsg {
	return clearMsg{token: m.token}
}

func TestActivate_StaleClearIgnored(t *testing.T) {
	m := New(testReasons(8))

	if cmd := m.Activate(2); cmd == nil {
		t.Fatal("Activate should schedule a clear")
	}
	clear2 := clearFor(m)

	m.Activate(5)
	clear5 := clearFor(m)

	m, _ = m.Update(clear2)
	if idx, ok := m.Active(); !ok || idx != 5 {
		t.Fatalf("Active = %d,%v after stale clear, want 5,true", idx, ok)
	}

	m, _ = m.Update(clear5)
	if _, ok := m.Active(); ok {
		t.Error("current clear should empty the highlight")
	}
}

func TestActivate_OutOfRange(t *testing.T) {
	m := New(testReasons(3))
	if cmd := m.Activate(3); cmd != nil {
		t.Error("out-of-range index should not schedule a clear")
	}
	if cmd := m.Activate(-1); cmd != nil {
		t.Error("negative index should not schedule a clear")
	}
	if _, ok := m.Active(); ok {
		t.Error("nothing should be active")
	}
}

func TestKeys(t *testing.T) {
	m := New(testReasons(3))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should schedule a clear")
	}
	if idx, ok := m.Active(); !ok || idx != 1 {
		t.Errorf("Active = %d,%v, want 1,true", idx, ok)
	}
}

func TestView_Subtitle(t *testing.T) {
	m := New(testReasons(2))
	m.SetSubtitle("In case you don't know")

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "In case you don't know") {
		t.Fatalf("subtitle missing:\n%s", out)
	}
	if strings.Index(out, "In case you don't know") > strings.Index(out, "reason 0") {
		t.Error("subtitle should render above the list")
	}
}
