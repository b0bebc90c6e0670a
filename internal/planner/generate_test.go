package planner

import (
	"testing"
	"time"

	"github.com/josephgoksu/solventdeck/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planState() *models.State {
	st := models.DefaultState()
	st.Strategics[models.SuitSpades][0] = models.Strategic{Title: "Finish the review", Mins: 90}
	st.Habits[models.SuitClubs] = []models.Habit{
		{Title: "10k steps", Cadence: models.CadenceDaily, Duration: 40},
	}
	st.Habits[models.SuitHearts] = []models.Habit{
		{Title: "Call a mentor", Cadence: models.CadenceTwiceWeekly, Duration: 20},
	}
	st.Habits[models.SuitDiamonds] = []models.Habit{
		{Title: "Review budget", Cadence: models.CadenceWeekly, Duration: 20},
	}
	st.Draw = models.Draw{
		WeekStart: "2024-01-01",
		Selected:  []string{"K-spades", "H-clubs-0", "H-hearts-0", "H-diamonds-0"},
	}
	return st
}

func testNow() time.Time {
	return time.Date(2024, time.January, 3, 9, 0, 0, 0, time.Local)
}

func TestGenerate_KingAndDailyHabit(t *testing.T) {
	st := models.DefaultState()
	st.Strategics[models.SuitSpades][0] = models.Strategic{Title: "Finish the review", Mins: 90}
	st.Habits[models.SuitClubs] = []models.Habit{
		{Title: "10k steps", Cadence: models.CadenceDaily, Duration: 40},
	}
	st.Draw = models.Draw{WeekStart: "2024-01-01", Selected: []string{"K-spades", "H-clubs-0"}}

	plan, err := Generate(st, testNow())
	require.NoError(t, err)
	require.Len(t, plan.Tasks, 6, "one milestone plus five daily occurrences")

	milestone := plan.Tasks[0]
	assert.Equal(t, "t-K-spades-WED", milestone.ID)
	assert.Equal(t, "2024-01-03", milestone.Date, "weekStart + 2 days")
	assert.Equal(t, "Finish the review — milestone", milestone.Title)
	assert.Equal(t, 90, milestone.Duration)
	assert.Equal(t, models.StatusPlanned, milestone.Status)

	wantDates := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"}
	for i, task := range plan.Tasks[1:] {
		assert.Equal(t, wantDates[i], task.Date)
		assert.Equal(t, "10k steps", task.Title)
		assert.Equal(t, 40, task.Duration)
	}
}

func TestGenerate_CadenceOffsets(t *testing.T) {
	st := planState()
	plan, err := Generate(st, testNow())
	require.NoError(t, err)

	dates := map[string][]string{}
	for _, task := range plan.Tasks {
		dates[task.Title] = append(dates[task.Title], task.Date)
	}
	assert.Equal(t, []string{"2024-01-02", "2024-01-05"}, dates["Call a mentor"], "2x lands Tue and Fri")
	assert.Equal(t, []string{"2024-01-03"}, dates["Review budget"], "weekly lands Wed")
}

func TestGenerate_UnknownCadenceFallsBackToWeekly(t *testing.T) {
	st := models.DefaultState()
	st.Habits[models.SuitSpades] = []models.Habit{{Title: "Odd habit", Cadence: "fortnightly", Duration: 15}}
	st.Draw = models.Draw{WeekStart: "2024-01-01", Selected: []string{"H-spades-0"}}

	plan, err := Generate(st, testNow())
	require.NoError(t, err)
	require.Len(t, plan.Tasks, 1)
	assert.Equal(t, "2024-01-03", plan.Tasks[0].Date)
}

func TestGenerate_EmptySelection(t *testing.T) {
	st := models.DefaultState()
	st.Plan = models.Plan{WeekStart: "2023-12-25", Tasks: []models.Task{{ID: "keep"}}}

	_, err := Generate(st, testNow())
	assert.ErrorIs(t, err, ErrEmptySelection)
	// The existing plan is untouched on failure.
	assert.Equal(t, "2023-12-25", st.Plan.WeekStart)
	require.Len(t, st.Plan.Tasks, 1)
}

func TestGenerate_DanglingSelectionSkipped(t *testing.T) {
	st := planState()
	st.Draw.Selected = append(st.Draw.Selected, "K-hearts") // no such goal

	plan, err := Generate(st, testNow())
	require.NoError(t, err)
	for _, task := range plan.Tasks {
		assert.NotEqual(t, "t-K-hearts-WED", task.ID)
	}
}

func TestGenerate_ReplacesManualEdits(t *testing.T) {
	st := planState()
	plan, err := Generate(st, testNow())
	require.NoError(t, err)
	st.Plan = plan

	require.NoError(t, EditTitle(&st.Plan, "t-K-spades-WED", "renamed by hand"))
	_, err = ToggleDone(&st.Plan, "t-H-clubs-0-0")
	require.NoError(t, err)

	regenerated, err := Generate(st, testNow())
	require.NoError(t, err)
	st.Plan = regenerated

	milestone := st.Plan.Tasks[0]
	assert.Equal(t, "Finish the review — milestone", milestone.Title, "regeneration discards edits")
	for _, task := range st.Plan.Tasks {
		assert.Equal(t, models.StatusPlanned, task.Status)
	}
}

func TestGenerate_DefaultDurations(t *testing.T) {
	st := models.DefaultState()
	st.Strategics[models.SuitSpades][1] = models.Strategic{Title: "No mins set"}
	st.Habits[models.SuitClubs] = []models.Habit{{Title: "No duration", Cadence: models.CadenceWeekly}}
	st.Draw = models.Draw{WeekStart: "2024-01-01", Selected: []string{"Q-spades", "H-clubs-0"}}

	plan, err := Generate(st, testNow())
	require.NoError(t, err)
	require.Len(t, plan.Tasks, 2)
	assert.Equal(t, 60, plan.Tasks[0].Duration)
	assert.Equal(t, 20, plan.Tasks[1].Duration)
}

func TestGenerate_WeekStartFallback(t *testing.T) {
	st := models.DefaultState()
	st.Habits[models.SuitSpades] = []models.Habit{{Title: "h", Cadence: models.CadenceWeekly, Duration: 10}}
	st.Draw = models.Draw{Selected: []string{"H-spades-0"}} // no weekStart recorded

	plan, err := Generate(st, testNow())
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", plan.WeekStart, "falls back to Monday of the current week")
}
