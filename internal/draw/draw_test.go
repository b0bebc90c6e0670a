package draw

import (
	"math/rand"
	"testing"
	"time"

	"github.com/josephgoksu/solventdeck/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullDeck() []models.Card {
	var cards []models.Card
	for _, s := range models.Suits() {
		cards = append(cards,
			models.Card{ID: models.AceCardID(s), Suit: s, Rank: models.RankAce, Title: "ace " + string(s)},
			models.Card{ID: models.StrategicCardID(s, 0), Suit: s, Rank: models.RankKing, Title: "king " + string(s), Mins: 60},
			models.Card{ID: models.StrategicCardID(s, 1), Suit: s, Rank: models.RankQueen, Title: "queen " + string(s), Mins: 60},
			models.Card{ID: models.HabitCardID(s, 0), Suit: s, Rank: models.RankJack, Title: "habit " + string(s), Cadence: models.CadenceDaily, Duration: 20},
		)
	}
	return cards
}

func monday() time.Time {
	return time.Date(2024, time.January, 3, 10, 0, 0, 0, time.Local) // Wednesday of week starting 2024-01-01
}

func TestWeekly_BalanceCoversEverySuit(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		d, err := Weekly(fullDeck(), 4, true, rng, monday())
		require.NoError(t, err)
		require.Len(t, d.Selected, 4)

		suitsSeen := map[models.Suit]bool{}
		for _, id := range d.Selected {
			for _, c := range fullDeck() {
				if c.ID == id {
					suitsSeen[c.Suit] = true
				}
			}
		}
		assert.Len(t, suitsSeen, 4, "seed %d: one card per suit", seed)
	}
}

func TestWeekly_NoDuplicatesNoAces(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		d, err := Weekly(fullDeck(), 5, false, rng, monday())
		require.NoError(t, err)

		seen := map[string]bool{}
		for _, id := range d.Selected {
			assert.False(t, seen[id], "seed %d: duplicate id %s", seed, id)
			seen[id] = true
			assert.NotEqual(t, byte('A'), id[0], "seed %d: ace drawn: %s", seed, id)
		}
	}
}

func TestWeekly_WeekStartIsMonday(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	d, err := Weekly(fullDeck(), 3, true, rng, monday())
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", d.WeekStart)
}

func TestWeekly_EmptyPool(t *testing.T) {
	aceOnly := []models.Card{{ID: "A-spades", Suit: models.SuitSpades, Rank: models.RankAce, Title: "ace"}}
	rng := rand.New(rand.NewSource(1))

	_, err := Weekly(aceOnly, 4, true, rng, monday())
	assert.ErrorIs(t, err, ErrEmptyPool)

	_, err = Weekly(nil, 4, true, rng, monday())
	assert.ErrorIs(t, err, ErrEmptyPool)
}

func TestWeekly_PoolSmallerThanCount(t *testing.T) {
	small := []models.Card{
		{ID: "K-spades", Suit: models.SuitSpades, Rank: models.RankKing, Title: "king"},
		{ID: "J-clubs", Suit: models.SuitClubs, Rank: models.RankJack, Title: "jack"},
	}
	rng := rand.New(rand.NewSource(3))
	d, err := Weekly(small, 5, true, rng, monday())
	require.NoError(t, err)
	assert.Len(t, d.Selected, 2, "never exceeds pool size")
}

func TestWeekly_CountBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := Weekly(fullDeck(), 2, true, rng, monday())
	assert.Error(t, err)
	_, err = Weekly(fullDeck(), 6, true, rng, monday())
	assert.Error(t, err)
}

func TestWeekly_DeterministicUnderSeed(t *testing.T) {
	a, err := Weekly(fullDeck(), 4, true, rand.New(rand.NewSource(42)), monday())
	require.NoError(t, err)
	b, err := Weekly(fullDeck(), 4, true, rand.New(rand.NewSource(42)), monday())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
