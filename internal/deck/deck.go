// Package deck derives the flat card list from the three goal collections.
// The deck is fully derived state: recomputed from goals on demand, never
// patched incrementally.
package deck

import "github.com/josephgoksu/solventdeck/models"

// Build returns the current deck as a pure function of the goal collections.
// Ordering is deterministic: suits in fixed order, and within a suit Ace,
// King, Queen, then habits in selection order. A card exists iff its backing
// goal has a non-empty title.
//
// The second and subsequent habits share rank "10"; their ids stay distinct.
func Build(st *models.State) []models.Card {
	deck := make([]models.Card, 0, 20)
	for _, s := range models.Suits() {
		if ace := st.Aces[s]; ace != nil && ace.Title != "" {
			deck = append(deck, models.Card{
				ID:    models.AceCardID(s),
				Suit:  s,
				Rank:  models.RankAce,
				Title: ace.Title,
			})
		}

		for i, row := range st.Strategics[s] {
			if row.Title == "" {
				continue
			}
			rank := models.RankKing
			if i != 0 {
				rank = models.RankQueen
			}
			mins := row.Mins
			if mins == 0 {
				mins = 60
			}
			deck = append(deck, models.Card{
				ID:    models.StrategicCardID(s, i),
				Suit:  s,
				Rank:  rank,
				Title: row.Title,
				Due:   row.Due,
				Mins:  mins,
			})
		}

		for j, h := range st.Habits[s] {
			rank := models.RankTen
			if j == 0 {
				rank = models.RankJack
			}
			deck = append(deck, models.Card{
				ID:       models.HabitCardID(s, j),
				Suit:     s,
				Rank:     rank,
				Title:    h.Title,
				Cadence:  h.Cadence,
				Duration: h.Duration,
			})
		}
	}
	return deck
}

// Rebuild recomputes the deck and refreshes the cached copy on the state.
// Callers that only need the cards should prefer Build.
func Rebuild(st *models.State) []models.Card {
	st.Deck = Build(st)
	return st.Deck
}

// Find resolves a card id against a deck. Returns false when the id is
// dangling (its backing goal was edited or removed).
func Find(deck []models.Card, id string) (models.Card, bool) {
	for _, c := range deck {
		if c.ID == id {
			return c, true
		}
	}
	return models.Card{}, false
}

// Pool returns the drawable subset of a deck: every non-Ace card. Aces are
// identity goals and never enter the weekly draw.
func Pool(deck []models.Card) []models.Card {
	pool := make([]models.Card, 0, len(deck))
	for _, c := range deck {
		if c.Rank != models.RankAce {
			pool = append(pool, c)
		}
	}
	return pool
}
