package models

// Suit is one of the four fixed life domains.
type Suit string

const (
	SuitSpades   Suit = "spades"   // career
	SuitClubs    Suit = "clubs"    // health
	SuitHearts   Suit = "hearts"   // relationships
	SuitDiamonds Suit = "diamonds" // finances
)

// Suits returns the four suits in their fixed display and processing order.
func Suits() []Suit {
	return []Suit{SuitSpades, SuitClubs, SuitHearts, SuitDiamonds}
}

// ValidSuit reports whether s is one of the four known suits.
func ValidSuit(s Suit) bool {
	switch s {
	case SuitSpades, SuitClubs, SuitHearts, SuitDiamonds:
		return true
	}
	return false
}

// SuitMeta carries display metadata for a suit.
type SuitMeta struct {
	Icon string
	Name string
}

var suitMeta = map[Suit]SuitMeta{
	SuitSpades:   {Icon: "♠", Name: "Spades"},
	SuitClubs:    {Icon: "♣", Name: "Clubs"},
	SuitHearts:   {Icon: "♥", Name: "Hearts"},
	SuitDiamonds: {Icon: "♦", Name: "Diamonds"},
}

// MetaFor returns display metadata for a suit. Unknown suits get a
// placeholder so rendering never panics on stale data.
func MetaFor(s Suit) SuitMeta {
	if m, ok := suitMeta[s]; ok {
		return m
	}
	return SuitMeta{Icon: "?", Name: string(s)}
}
