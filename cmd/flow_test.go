package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephgoksu/solventdeck/models"
)

func TestSeedBuildsFullDeck(t *testing.T) {
	setupTestDeck(t)
	require.NoError(t, runCmd(t, "seed", "--yes"))

	st := readTestState(t)
	// 4 aces, 8 strategics, 12 habits
	assert.Len(t, st.Deck, 24)
	assert.Equal(t, "Lead solvency psychology as a field", st.Aces[models.SuitSpades].Title)
	assert.Empty(t, st.Draw.Selected)
	assert.Empty(t, st.Plan.Tasks)
}

func TestDrawThenGenerate(t *testing.T) {
	setupTestDeck(t)
	require.NoError(t, runCmd(t, "seed", "--yes"))
	require.NoError(t, runCmd(t, "draw", "--count", "4"))

	st := readTestState(t)
	require.Len(t, st.Draw.Selected, 4)
	assert.NotEmpty(t, st.Draw.WeekStart)

	require.NoError(t, runCmd(t, "plan", "generate"))
	st = readTestState(t)
	assert.Equal(t, st.Draw.WeekStart, st.Plan.WeekStart)
	assert.NotEmpty(t, st.Plan.Tasks)
	for _, task := range st.Plan.Tasks {
		assert.Equal(t, models.StatusPlanned, task.Status)
	}
}

func TestDrawWithEmptyDeckFails(t *testing.T) {
	setupTestDeck(t)
	err := runCmd(t, "draw", "--count", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to draw")
}

func TestGenerateWithoutDrawFails(t *testing.T) {
	setupTestDeck(t)
	require.NoError(t, runCmd(t, "seed", "--yes"))
	err := runCmd(t, "plan", "generate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no cards drawn")
}

func TestGoalEditorsRebuildDeck(t *testing.T) {
	setupTestDeck(t)

	require.NoError(t, runCmd(t, "ace", "set", "spades", "Lead the field"))
	require.NoError(t, runCmd(t, "strategic", "set", "spades", "1", "Ship the book", "--due", "2026-12-01", "--mins", "90"))
	require.NoError(t, runCmd(t, "habit", "add", "spades", "Write 300 words", "--cadence", "daily", "--duration", "25"))

	st := readTestState(t)
	require.Len(t, st.Deck, 3)
	assert.Equal(t, "A-spades", st.Deck[0].ID)
	assert.Equal(t, "K-spades", st.Deck[1].ID)
	assert.Equal(t, "H-spades-0", st.Deck[2].ID)
	assert.Equal(t, 90, st.Deck[1].Mins)

	require.NoError(t, runCmd(t, "ace", "clear", "spades"))
	st = readTestState(t)
	require.Len(t, st.Deck, 2)
	assert.Equal(t, "K-spades", st.Deck[0].ID)
}

func TestHabitLimitAndDuplicates(t *testing.T) {
	setupTestDeck(t)
	require.NoError(t, runCmd(t, "habit", "add", "clubs", "--template", "1"))
	require.NoError(t, runCmd(t, "habit", "add", "clubs", "--template", "2"))
	require.NoError(t, runCmd(t, "habit", "add", "clubs", "--template", "3"))

	err := runCmd(t, "habit", "add", "clubs", "--template", "4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "remove one first")

	require.NoError(t, runCmd(t, "habit", "remove", "clubs", "3"))
	err = runCmd(t, "habit", "add", "clubs", "--template", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestDoneToggleRecordsHistory(t *testing.T) {
	dir := setupTestDeck(t)
	st := models.DefaultState()
	st.Plan = models.Plan{WeekStart: "2024-01-01", Tasks: []models.Task{
		{ID: "t-K-spades-WED", CardID: "K-spades", Date: "2024-01-03", Title: "Ship the book — milestone",
			Suit: models.SuitSpades, Rank: models.RankKing, Duration: 90, Status: models.StatusPlanned},
	}}
	writeTestState(t, st)

	require.NoError(t, runCmd(t, "done", "t-K-spades-WED"))
	loaded := readTestState(t)
	assert.Equal(t, models.StatusDone, loaded.Plan.Tasks[0].Status)

	// Toggling off is always allowed.
	require.NoError(t, runCmd(t, "done", "t-K-spades-WED"))
	loaded = readTestState(t)
	assert.Equal(t, models.StatusPlanned, loaded.Plan.Tasks[0].Status)

	_, err := os.Stat(filepath.Join(dir, "history.db"))
	assert.NoError(t, err, "completion log created alongside the state file")
}

func TestDeleteTaskThenUndo(t *testing.T) {
	setupTestDeck(t)
	st := models.DefaultState()
	st.Plan = models.Plan{WeekStart: "2024-01-01", Tasks: []models.Task{
		{ID: "t-a", Date: "2024-01-01", Title: "first", Suit: models.SuitSpades, Rank: models.RankJack, Duration: 20, Status: models.StatusPlanned},
		{ID: "t-b", Date: "2024-01-02", Title: "second", Suit: models.SuitClubs, Rank: models.RankJack, Duration: 20, Status: models.StatusPlanned},
	}}
	writeTestState(t, st)

	require.NoError(t, runCmd(t, "delete", "task", "t-a"))
	loaded := readTestState(t)
	require.Len(t, loaded.Plan.Tasks, 1)
	require.NotNil(t, loaded.Undo)
	assert.Equal(t, models.UndoTask, loaded.Undo.Kind)

	require.NoError(t, runCmd(t, "undo"))
	loaded = readTestState(t)
	require.Len(t, loaded.Plan.Tasks, 2)
	assert.Equal(t, "t-a", loaded.Plan.Tasks[0].ID, "restored at original index")
	assert.Nil(t, loaded.Undo)
}

func TestDeleteCardCascadeThenUndo(t *testing.T) {
	setupTestDeck(t)
	require.NoError(t, runCmd(t, "ace", "set", "hearts", "Family culture"))
	require.NoError(t, runCmd(t, "habit", "add", "hearts", "Call a mentor", "--cadence", "weekly", "--duration", "20"))

	st := readTestState(t)
	st.Draw = models.Draw{WeekStart: "2024-01-01", Selected: []string{"H-hearts-0"}}
	writeTestState(t, st)
	require.NoError(t, runCmd(t, "plan", "generate"))

	require.NoError(t, runCmd(t, "delete", "card", "H-hearts-0", "--cascade"))
	loaded := readTestState(t)
	assert.Empty(t, loaded.Habits[models.SuitHearts])
	assert.Empty(t, loaded.Plan.Tasks)
	require.NotNil(t, loaded.Undo)
	assert.Equal(t, models.UndoCard, loaded.Undo.Kind)

	require.NoError(t, runCmd(t, "undo"))
	loaded = readTestState(t)
	require.Len(t, loaded.Habits[models.SuitHearts], 1)
	require.Len(t, loaded.Plan.Tasks, 1)
}

func TestSettingsCapacity(t *testing.T) {
	setupTestDeck(t)
	require.NoError(t, runCmd(t, "settings", "capacity", "12"))
	assert.Equal(t, 12, readTestState(t).Settings.WeeklyCapacityHours)

	err := runCmd(t, "settings", "capacity", "200")
	require.Error(t, err)
}

func TestExportShape(t *testing.T) {
	dir := setupTestDeck(t)
	require.NoError(t, runCmd(t, "seed", "--yes"))

	out := filepath.Join(dir, "export.json")
	require.NoError(t, runCmd(t, "export", "-o", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Contains(t, doc, "state")

	var st models.State
	require.NoError(t, json.Unmarshal(doc["state"], &st))
	assert.Equal(t, "Lead solvency psychology as a field", st.Aces[models.SuitSpades].Title)
}
