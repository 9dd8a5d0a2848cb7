package validation

import (
	"fmt"
	"strings"

	"github.com/julianstephens/awawa/internal/constants"
	"github.com/julianstephens/awawa/internal/content"
	"github.com/julianstephens/awawa/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictMissingTab        ConflictType = "missing_tab"
	ConflictDuplicateTab      ConflictType = "duplicate_tab"
	ConflictDuplicateNoteID   ConflictType = "duplicate_note_id"
	ConflictEmptyField        ConflictType = "empty_field"
	ConflictMissingDateIdea   ConflictType = "missing_date_idea"
	ConflictInvalidLink       ConflictType = "invalid_link"
	ConflictNoGames           ConflictType = "no_games"
	ConflictDuplicateCategory ConflictType = "duplicate_category"
)

// Conflict represents a detected problem in the content catalog
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

func (vr *ValidationResult) add(t ConflictType, items []string, format string, args ...any) {
	vr.Conflicts = append(vr.Conflicts, Conflict{
		Type:        t,
		Description: fmt.Sprintf(format, args...),
		Items:       items,
	})
}

// RequiredTabs are the sections the router knows how to render
var RequiredTabs = []constants.TabID{
	constants.TabCountdown,
	constants.TabMemories,
	constants.TabNotes,
	constants.TabReasons,
	constants.TabDate,
}

// Validator checks a content catalog for problems that would break a section
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateCatalog runs every catalog check
func (v *Validator) ValidateCatalog(c content.Catalog) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}
	v.validateTabs(c.Tabs, &result)
	v.validateMemories(c.Memories, &result)
	v.validateNotes(c.Notes, &result)
	v.validateReasons(c.Reasons, &result)
	v.validateDateIdeas(c.DateIdeas, c.Games, &result)
	return result
}

func (v *Validator) validateTabs(tabs []models.Tab, result *ValidationResult) {
	seen := make(map[constants.TabID]int)
	for _, tab := range tabs {
		seen[tab.ID]++
		if strings.TrimSpace(tab.Label) == "" {
			result.add(ConflictEmptyField, []string{string(tab.ID)}, "Tab %q has no label", tab.ID)
		}
	}
	for id, n := range seen {
		if n > 1 {
			result.add(ConflictDuplicateTab, []string{string(id)}, "Tab %q appears %d times", id, n)
		}
	}
	for _, id := range RequiredTabs {
		if seen[id] == 0 {
			result.add(ConflictMissingTab, []string{string(id)}, "Tab %q is missing", id)
		}
	}
}

func (v *Validator) validateMemories(memories []models.Memory, result *ValidationResult) {
	for i, m := range memories {
		if strings.TrimSpace(m.Title) == "" {
			result.add(ConflictEmptyField, nil, "Memory #%d has no title", i+1)
		}
		if strings.TrimSpace(m.ImageRef) == "" {
			result.add(ConflictEmptyField, []string{m.Title}, "Memory %q has no image reference", m.Title)
		}
	}
}

func (v *Validator) validateNotes(notes []models.Note, result *ValidationResult) {
	ids := make(map[string][]string)
	for _, n := range notes {
		if n.ID == "" {
			result.add(ConflictEmptyField, []string{n.Title}, "Note %q has no id", n.Title)
			continue
		}
		ids[n.ID] = append(ids[n.ID], n.Title)
	}
	for id, titles := range ids {
		if len(titles) > 1 {
			result.add(ConflictDuplicateNoteID, titles, "Note id %q is shared by %d notes", id, len(titles))
		}
	}
}

func (v *Validator) validateReasons(reasons []models.Reason, result *ValidationResult) {
	for i, r := range reasons {
		if strings.TrimSpace(r.Text) == "" {
			result.add(ConflictEmptyField, nil, "Reason #%d is empty", i+1)
		}
	}
}

func (v *Validator) validateDateIdeas(ideas []models.DateIdea, games []models.Game, result *ValidationResult) {
	var hasMovie, hasGame bool
	categories := make(map[string]int)
	for _, idea := range ideas {
		categories[idea.Category()]++
		switch idea := idea.(type) {
		case models.MovieNight:
			hasMovie = true
			if !strings.HasPrefix(idea.URL, "https://") && !strings.HasPrefix(idea.URL, "http://") {
				result.add(ConflictInvalidLink, []string{idea.URL}, "Movie Night link %q is not an http(s) URL", idea.URL)
			}
		case models.GameNight:
			hasGame = true
			if len(games) == 0 {
				result.add(ConflictNoGames, nil, "Game Night has no games to choose from")
			}
		case models.OtherIdea:
			if strings.TrimSpace(idea.Name) == "" {
				result.add(ConflictEmptyField, nil, "Date idea %q has no category name", idea.Description)
			}
		}
	}
	for category, n := range categories {
		if n > 1 {
			result.add(ConflictDuplicateCategory, []string{category}, "Date idea %q appears %d times", category, n)
		}
	}
	if !hasMovie {
		result.add(ConflictMissingDateIdea, []string{"Movie Night"}, "No Movie Night card")
	}
	if !hasGame {
		result.add(ConflictMissingDateIdea, []string{"Game Night"}, "No Game Night card")
	}
}
