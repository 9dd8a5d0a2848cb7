package models

import "github.com/julianstephens/awawa/internal/constants"

// Tab is one entry of the tab bar
type Tab struct {
	ID       constants.TabID
	Label    string
	Icon     string
	Subtitle string // shown under the section title
}

// Memory is a gallery card backed by an image asset
type Memory struct {
	Title       string
	Description string
	ImageRef    string // asset path, e.g. "/images/IMG_4229.JPG"
}

// Note is an "open when" letter; ID is the toggle key
type Note struct {
	ID      string
	Title   string
	Content string
}

type Reason struct {
	Text string
}

type Game struct {
	Name        string
	Description string
	Icon        string
}

// Shell holds the static header and footer copy
type Shell struct {
	Title     string
	Subtitle  string
	IconRef   string
	IconGlyph string
	Footer    []string
}
