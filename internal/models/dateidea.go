package models

// DateIdea is a closed set of date-night cards. Only the types in this
// file implement it.
type DateIdea interface {
	Category() string
	Summary() string
	isDateIdea()
}

// MovieNight links out to a shared watch party
type MovieNight struct {
	Description string
	URL         string
}

// GameNight opens the game picker
type GameNight struct {
	Description string
}

// OtherIdea is informational only
type OtherIdea struct {
	Name        string
	Description string
}

func (MovieNight) Category() string { return "Movie Night" }
func (m MovieNight) Summary() string { return m.Description }
func (MovieNight) isDateIdea() {}
func (GameNight) Category() string { return "Game Night" }
func (g GameNight) Summary() string { return g.Description }
func (GameNight) isDateIdea() {}
func (o OtherIdea) Category() string { return o.Name }
func (o OtherIdea) Summary() string { return o.Description }
func (OtherIdea) isDateIdea() {}
