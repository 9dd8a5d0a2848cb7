package content

import (
	"github.com/julianstephens/awawa/internal/constants"
	"github.com/julianstephens/awawa/internal/models"
)

// Catalog is the full, read-only content of the page. Slice order is
// display order.
type Catalog struct {
	Shell     models.Shell
	Tabs      []models.Tab
	Memories  []models.Memory
	Notes     []models.Note
	Reasons   []models.Reason
	DateIdeas []models.DateIdea
	Games     []models.Game
}

// Default returns the built-in catalog
func Default() Catalog {
	return Catalog{
		Shell: models.Shell{
			Title:     "AwaWa",
			Subtitle:  "I miss you and I'm hungry",
			IconRef:   "/icons/cat.png",
			IconGlyph: "🐱",
			Footer: []string{
				"Made just for you, Kenji",
				"Can't wait to see you laew!",
			},
		},
		Tabs: []models.Tab{
			{ID: constants.TabCountdown, Label: "Countdown", Icon: "⏰"},
			{ID: constants.TabMemories, Label: "Memories", Icon: "📸"},
			{ID: constants.TabNotes, Label: "Love Notes", Icon: "💌", Subtitle: "Click to open"},
			{ID: constants.TabReasons, Label: "Reasons", Icon: "💝", Subtitle: "In case you don't know"},
			{ID: constants.TabDate, Label: "Date Night", Icon: "🎬", Subtitle: "Let's spend quality time together, even when we're apart."},
		},
		Memories: []models.Memory{
			{
				Title:       "Our First Date",
				Description: "Do you remember what happened on our first date?",
				ImageRef:    "/images/IMG_4229.JPG",
			},
			{
				Title:       "That Perfect Sunset",
				Description: "Every sunset with you is always perfect actually...",
				ImageRef:    "/images/IMG_4230.JPG",
			},
			{
				Title:       "Our first trip together",
				Description: "Going places with you makes me the happiest girl.",
				ImageRef:    "/images/IMG_2819_Original.jpg",
			},
			{
				Title:       "Late Night Calls",
				Description: "Falling asleep knowing you're there is the best.",
				ImageRef:    "/images/IMG_1490_Original.jpg",
			},
		},
		Notes: []models.Note{
			{
				ID:      "note1",
				Title:   "Open When You Miss Me",
				Content: "Wow, thought you'd never open this one. lol JK",
			},
			{
				ID:      "note2",
				Title:   "Open When You Need Motivation",
				Content: "You are stronger than you know. I believe in you and all that you can accomplish. Keep going, my love. I'm cheering for you and ofc I will give you the best head! ♥",
			},
			{
				ID:      "note3",
				Title:   "Open When You Feel Alone",
				Content: "I'm with you always, no matter the distance between us. I'll always be here supporting you. I can also send you nudes. ♥",
			},
		},
		Reasons: []models.Reason{
			{Text: "Your kindness knows no bounds"},
			{Text: "The way you talk about things you love"},
			{Text: "How you always know exactly what to say to make me feel better"},
			{Text: "Your determination and passion for everything you do"},
			{Text: "The sound of your voice that feels like home"},
			{Text: "Your patience"},
			{Text: "The way you make even ordinary moments feel magical"},
		},
		DateIdeas: []models.DateIdea{
			models.MovieNight{
				Description: "Let's watch a movie together!",
				URL:         constants.MovieNightURL,
			},
			models.GameNight{
				Description: "Choose from our collection of fun games to play together! 🎮",
			},
			models.OtherIdea{
				Name:        "Quiz Night",
				Description: "Let's create a quiz all about us! Let's see how well you know our relationship 💝",
			},
		},
		Games: []models.Game{
			{Name: "Lipreading", Description: "Can you read my lips? 👄", Icon: "👄"},
			{Name: "Would You Rather?", Description: "Make some tough choices! 🤔", Icon: "🤔"},
			{Name: "Story Builder", Description: "Let's create a story together! 📖", Icon: "📖"},
			{Name: "Charades", Description: "Time to act it out! 🎭", Icon: "🎭"},
			{Name: "Draw & Guess", Description: "Can you guess what I'm drawing? 🎨", Icon: "🎨"},
			{Name: "Truth or Dare", Description: "Let's spice things up! 🌶️", Icon: "🌶️"},
		},
	}
}

// WithMovieURL returns a copy of the catalog whose Movie Night card links to
// url. An empty url leaves the catalog unchanged.
func (c Catalog) WithMovieURL(url string) Catalog {
	if url == "" {
		return c
	}
	ideas := make([]models.DateIdea, len(c.DateIdeas))
	for i, idea := range c.DateIdeas {
		if mn, ok := idea.(models.MovieNight); ok {
			mn.URL = url
			idea = mn
		}
		ideas[i] = idea
	}
	c.DateIdeas = ideas
	return c
}

// Tab looks up a tab by id
func (c Catalog) Tab(id constants.TabID) (models.Tab, bool) {
	for _, t := range c.Tabs {
		if t.ID == id {
			return t, true
		}
	}
	return models.Tab{}, false
}

// AssetRefs lists every asset path the catalog references, header icon first
func (c Catalog) AssetRefs() []string {
	refs := []string{c.Shell.IconRef}
	for _, m := range c.Memories {
		refs = append(refs, m.ImageRef)
	}
	return refs
}
