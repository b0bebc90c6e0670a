package deck

import (
	"testing"

	"github.com/josephgoksu/solventdeck/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateWithGoals() *models.State {
	st := models.DefaultState()
	st.Aces[models.SuitSpades] = &models.Ace{Title: "Lead the field", Metrics: []string{"2 papers"}}
	st.Strategics[models.SuitSpades] = []models.Strategic{
		{Title: "Finish the review", Due: "2024-06-01", Mins: 90},
		{Title: "Launch the course"},
	}
	st.Habits[models.SuitSpades] = []models.Habit{
		{Title: "Write 300 words", Cadence: models.CadenceDaily, Duration: 25},
		{Title: "Research sprints", Cadence: models.CadenceTwiceWeekly, Duration: 45},
		{Title: "Read one paper", Cadence: models.CadenceWeekly, Duration: 30},
	}
	st.Habits[models.SuitClubs] = []models.Habit{
		{Title: "10k steps", Cadence: models.CadenceDaily, Duration: 40},
	}
	return st
}

func TestBuild_OrderingAndIDs(t *testing.T) {
	st := stateWithGoals()
	cards := Build(st)

	require.Len(t, cards, 7)
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	assert.Equal(t, []string{"A-spades", "K-spades", "Q-spades", "H-spades-0", "H-spades-1", "H-spades-2", "H-clubs-0"}, ids)
}

func TestBuild_EmptyTitlesEmitNoCards(t *testing.T) {
	st := models.DefaultState()
	assert.Empty(t, Build(st))

	st.Strategics[models.SuitHearts][1] = models.Strategic{Title: "Partner ritual"}
	cards := Build(st)
	require.Len(t, cards, 1)
	assert.Equal(t, "Q-hearts", cards[0].ID)
	assert.Equal(t, models.RankQueen, cards[0].Rank)
}

func TestBuild_StrategicDefaultMins(t *testing.T) {
	st := stateWithGoals()
	cards := Build(st)
	var queen models.Card
	for _, c := range cards {
		if c.ID == "Q-spades" {
			queen = c
		}
	}
	assert.Equal(t, 60, queen.Mins, "unset mins defaults to 60")
}

func TestBuild_ThirdHabitSharesRankTen(t *testing.T) {
	st := stateWithGoals()
	cards := Build(st)

	var habits []models.Card
	for _, c := range cards {
		if c.Suit == models.SuitSpades && (c.Rank == models.RankJack || c.Rank == models.RankTen) {
			habits = append(habits, c)
		}
	}
	require.Len(t, habits, 3)
	assert.Equal(t, models.RankJack, habits[0].Rank)
	assert.Equal(t, models.RankTen, habits[1].Rank)
	assert.Equal(t, models.RankTen, habits[2].Rank)
	// Rank label collides but ids stay distinct.
	assert.NotEqual(t, habits[1].ID, habits[2].ID)
}

func TestBuild_Deterministic(t *testing.T) {
	st := stateWithGoals()
	assert.Equal(t, Build(st), Build(st))
}

func TestRebuild_RefreshesCache(t *testing.T) {
	st := stateWithGoals()
	cards := Rebuild(st)
	assert.Equal(t, cards, st.Deck)

	st.Aces[models.SuitSpades].Title = ""
	Rebuild(st)
	for _, c := range st.Deck {
		assert.NotEqual(t, "A-spades", c.ID)
	}
}

func TestPool_ExcludesAces(t *testing.T) {
	st := stateWithGoals()
	pool := Pool(Build(st))
	for _, c := range pool {
		assert.NotEqual(t, models.RankAce, c.Rank)
	}
	assert.Len(t, pool, 6)
}

func TestFind(t *testing.T) {
	cards := Build(stateWithGoals())
	c, ok := Find(cards, "K-spades")
	require.True(t, ok)
	assert.Equal(t, "Finish the review", c.Title)

	_, ok = Find(cards, "K-diamonds")
	assert.False(t, ok)
}
