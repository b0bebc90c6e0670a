package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/josephgoksu/solventdeck/models"
)

func stateWithTasks(capacityHours int, tasks ...models.Task) *models.State {
	st := models.DefaultState()
	st.Settings.WeeklyCapacityHours = capacityHours
	st.Plan.Tasks = tasks
	return st
}

func task(suit models.Suit, duration int) models.Task {
	return models.Task{
		ID: "t-x", Date: "2024-01-01", Title: "x",
		Suit: suit, Rank: models.RankJack, Duration: duration,
		Status: models.StatusPlanned,
	}
}

func TestSummarize_Totals(t *testing.T) {
	st := stateWithTasks(8,
		task(models.SuitSpades, 90),
		task(models.SuitClubs, 45),
	)
	s := Summarize(st)
	assert.Equal(t, 135, s.TotalMinutes)
	assert.InDelta(t, 2.3, s.TotalHours, 0.001)
	assert.Equal(t, 28, s.UsagePercent) // 135/480
	assert.Equal(t, 1, s.Counts[models.SuitSpades])
	assert.Equal(t, 0, s.Counts[models.SuitHearts])
}

func TestSummarize_UsageLevels(t *testing.T) {
	cases := []struct {
		name    string
		minutes int
		level   string
	}{
		{"ok below 70", 300, UsageOK},     // 62%
		{"warn at 70", 340, UsageWarn},    // 71%
		{"high at 90", 440, UsageHigh},    // 92%
		{"high at 100", 480, UsageHigh},   // 100%
		{"over capacity", 600, UsageHigh}, // 125%
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := stateWithTasks(8, task(models.SuitSpades, tc.minutes))
			assert.Equal(t, tc.level, Summarize(st).Level)
		})
	}
}

func TestSummarize_Hints(t *testing.T) {
	// Heavy week wins over every other hint.
	st := stateWithTasks(8, task(models.SuitSpades, 460)) // 96%
	assert.Contains(t, Summarize(st).Hint, "heavy")

	// Light week suggests adding a habit.
	st = stateWithTasks(8, task(models.SuitSpades, 60)) // 13%
	assert.Contains(t, Summarize(st).Hint, "capacity left")

	// Mid usage with one dominant suit flags the imbalance.
	st = stateWithTasks(8,
		task(models.SuitSpades, 80), task(models.SuitSpades, 80),
		task(models.SuitSpades, 80), task(models.SuitSpades, 40),
	) // 58%, spades 4 vs others 0
	assert.Contains(t, Summarize(st).Hint, "dominates")

	// Mid usage, balanced suits.
	st = stateWithTasks(8,
		task(models.SuitSpades, 70), task(models.SuitClubs, 70),
		task(models.SuitHearts, 70), task(models.SuitDiamonds, 70),
	) // 58%
	assert.Contains(t, Summarize(st).Hint, "balanced")
}

func TestRenderSummary_ContainsPills(t *testing.T) {
	st := stateWithTasks(8, task(models.SuitClubs, 60))
	out := RenderSummary(Summarize(st))
	assert.Contains(t, out, "Weekly Summary")
	assert.Contains(t, out, "60m")
	assert.Contains(t, out, "♣")
}
