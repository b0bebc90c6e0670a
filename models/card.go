package models

import "fmt"

// Rank is a card's rank label. Note that a suit's second and third habit
// both carry rank "10": only two rank labels exist below Jack. Card ids
// stay distinct regardless, so the collision is cosmetic.
type Rank string

const (
	RankAce   Rank = "A"
	RankKing  Rank = "K"
	RankQueen Rank = "Q"
	RankJack  Rank = "J"
	RankTen   Rank = "10"
)

// Card is a derived, read-only projection of a goal for deck display and
// weekly drawing. Cards are rebuilt from goals on demand and are never the
// source of truth; mutating one has no persisted effect.
type Card struct {
	ID    string `json:"id"`
	Suit  Suit   `json:"suit"`
	Rank  Rank   `json:"rank"`
	Title string `json:"title"`

	// Strategic fields (K/Q only).
	Due  string `json:"due,omitempty"`
	Mins int    `json:"mins,omitempty"`

	// Habit fields (J/10 only).
	Cadence  Cadence `json:"cadence,omitempty"`
	Duration int     `json:"duration,omitempty"`
}

// AceCardID returns the stable id for a suit's Ace card.
func AceCardID(s Suit) string { return "A-" + string(s) }

// StrategicCardID returns the stable id for a strategic slot's card.
func StrategicCardID(s Suit, slot int) string {
	if slot == 0 {
		return "K-" + string(s)
	}
	return "Q-" + string(s)
}

// HabitCardID returns the stable id for a habit card. The index is the
// habit's position in the suit's selection order.
func HabitCardID(s Suit, index int) string {
	return fmt.Sprintf("H-%s-%d", s, index)
}
