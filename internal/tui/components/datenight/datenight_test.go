package datenight

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/ansi"

	"github.com/julianstephens/awawa/internal/models"
)

const movieURL = "https://rave.io/?openRaveId=test"

type fakeOpener struct {
	opened []string
	err    error
}

func (f *fakeOpener) Open(link string) error {
	f.opened = append(f.opened, link)
	return f.err
}

type fakeCopier struct {
	copied []string
}

func (f *fakeCopier) Copy(text string) error {
	f.copied = append(f.copied, text)
	return nil
}

func testIdeas() []models.DateIdea {
	return []models.DateIdea{
		models.MovieNight{Description: "watch together", URL: movieURL},
		models.GameNight{Description: "play together"},
		models.OtherIdea{Name: "Virtual Dinner", Description: "eat together"},
	}
}

func testGames() []models.Game {
	return []models.Game{
		{Name: "Chess", Description: "classic", Icon: "♟"},
		{Name: "Gartic Phone", Description: "draw", Icon: "🎨"},
	}
}

func newTestModel() (Model, *fakeOpener, *fakeCopier) {
	o := &fakeOpener{}
	c := &fakeCopier{}
	return New(testIdeas(), testGames(), o, c), o, c
}

func TestActivate_MovieNightOpensLink(t *testing.T) {
	m, opener, _ := newTestModel()

	cmd := m.Activate(0)
	if cmd == nil {
		t.Fatal("Movie Night should return an open command")
	}
	if m.PopupVisible() {
		t.Error("Movie Night must not change section state")
	}
	if len(opener.opened) != 0 {
		t.Error("link should only open when the command runs")
	}

	msg, ok := cmd().(LinkOpenedMsg)
	if !ok {
		t.Fatalf("expected LinkOpenedMsg, got %T", msg)
	}
	if msg.URL != movieURL || msg.Err != nil {
		t.Errorf("LinkOpenedMsg = %+v", msg)
	}
	if len(opener.opened) != 1 || opener.opened[0] != movieURL {
		t.Errorf("opened = %v, want [%s]", opener.opened, movieURL)
	}
}

func TestActivate_OpenErrorReported(t *testing.T) {
	o := &fakeOpener{err: errors.New("no browser")}
	m := New(testIdeas(), testGames(), o, nil)

	msg := m.Activate(0)().(LinkOpenedMsg)
	if msg.Err == nil {
		t.Error("open failure should be reported")
	}
}

func TestActivate_GameNightOpensPopup(t *testing.T) {
	m, opener, _ := newTestModel()

	m.Activate(1)
	if !m.PopupVisible() {
		t.Fatal("Game Night should open the popup")
	}
	if len(opener.opened) != 0 {
		t.Error("Game Night must not open links")
	}
	if m.Overlay(80, 24) == "" {
		t.Error("open popup should render an overlay")
	}
}

func TestActivate_OtherIdeaDoesNothing(t *testing.T) {
	m, _, _ := newTestModel()
	if cmd := m.Activate(2); cmd != nil {
		t.Error("Other ideas are informational only")
	}
	if m.PopupVisible() {
		t.Error("Other ideas must not open the popup")
	}
}

func TestSelectGame_ClosesWithoutPanic(t *testing.T) {
	for _, i := range []int{0, 1, -1, 99} {
		m, _, _ := newTestModel()
		m.Activate(1)
		m.SelectGame(i)
		if m.PopupVisible() {
			t.Errorf("SelectGame(%d) should close the popup", i)
		}
	}
}

func TestPopup_EscCloses(t *testing.T) {
	m, _, _ := newTestModel()
	m.Activate(1)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.PopupVisible() {
		t.Error("esc should close the popup")
	}
}

func TestPopup_FormFinishCloses(t *testing.T) {
	for _, state := range []huh.FormState{huh.StateCompleted, huh.StateAborted} {
		m, _, _ := newTestModel()
		m.Activate(1)
		m.form.State = state

		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		if m.PopupVisible() {
			t.Errorf("form state %v should close the popup", state)
		}
	}
}

// runCmd executes cmd and flattens batches. Commands that block, such as
// cursor blinks, are dropped after a short wait.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var msgs []tea.Msg
			for _, c := range batch {
				msgs = append(msgs, runCmd(c)...)
			}
			return msgs
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

func TestPopup_EnterCompletesThroughForm(t *testing.T) {
	m, _, _ := newTestModel()
	m.Activate(1)
	choice := m.choice

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.PopupVisible() {
		t.Fatal("enter alone should not close the popup before the form advances")
	}

	// Feed the form's own messages back until it submits
	pending := []tea.Cmd{cmd}
	for step := 0; step < 10 && m.PopupVisible(); step++ {
		var next []tea.Cmd
		for _, c := range pending {
			for _, msg := range runCmd(c) {
				var nc tea.Cmd
				m, nc = m.Update(msg)
				next = append(next, nc)
			}
		}
		pending = next
	}

	if m.PopupVisible() {
		t.Fatal("choosing a game should complete the form and close the popup")
	}
	if *choice != 1 {
		t.Errorf("chosen game = %d, want 1", *choice)
	}
}

func TestOverlay_ListsGameDescriptions(t *testing.T) {
	m, _, _ := newTestModel()
	m.Activate(1)

	out := ansi.Strip(m.Overlay(80, 24))
	for _, want := range []string{"Chess: classic", "Gartic Phone: draw"} {
		if !strings.Contains(out, want) {
			t.Errorf("popup missing %q:\n%s", want, out)
		}
	}
}

func TestPopup_CapturesKeys(t *testing.T) {
	m, opener, _ := newTestModel()
	m.Activate(1)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	if len(opener.opened) != 0 {
		t.Error("keys must not reach the idea list while the popup is open")
	}
	if !m.PopupVisible() {
		t.Error("popup should still be open")
	}
}

func TestCopy_MovieNightOnly(t *testing.T) {
	m, _, copier := newTestModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	if cmd == nil {
		t.Fatal("y on Movie Night should copy")
	}
	if msg := cmd().(LinkCopiedMsg); msg.Err != nil || msg.URL != movieURL {
		t.Errorf("LinkCopiedMsg = %+v", msg)
	}
	if len(copier.copied) != 1 {
		t.Errorf("copied = %v", copier.copied)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}); cmd != nil {
		t.Error("y on Game Night should do nothing")
	}
}

func TestView_MovieTitleIsHyperlink(t *testing.T) {
	m, _, _ := newTestModel()
	out := m.View()
	if !strings.Contains(out, ansi.SetHyperlink(movieURL)) {
		t.Error("Movie Night title should carry an OSC 8 hyperlink")
	}
	plain := ansi.Strip(out)
	for _, want := range []string{"Movie Night", "Game Night", "Virtual Dinner"} {
		if !strings.Contains(plain, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_Subtitle(t *testing.T) {
	m, _, _ := newTestModel()
	if strings.Contains(ansi.Strip(m.View()), "apart") {
		t.Error("no subtitle set, none expected")
	}

	m.SetSubtitle("Let's spend quality time together, even when we're apart.")
	if !strings.Contains(ansi.Strip(m.View()), "even when we're apart.") {
		t.Error("view should show the subtitle under the title")
	}
}
