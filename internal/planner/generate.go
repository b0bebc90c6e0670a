// Package planner expands the weekly draw into dated tasks and implements
// the in-place plan mutations: move, copy, inline edits, done toggling,
// and deletion of tasks or whole cards.
package planner

import (
	"errors"
	"fmt"
	"time"

	"github.com/josephgoksu/solventdeck/internal/dateutil"
	"github.com/josephgoksu/solventdeck/internal/deck"
	"github.com/josephgoksu/solventdeck/models"
)

// ErrEmptySelection signals that no cards were drawn for this week. The
// caller leaves the plan untouched and redirects to the draw screen.
var ErrEmptySelection = errors.New("no cards selected for this week")

// Default task durations in minutes when the backing card carries none.
const (
	defaultStrategicMins = 60
	defaultHabitMins     = 20
)

// milestoneOffset is the weekday offset for strategic milestones
// (Monday=0, so 2 is Wednesday). Weekly habits land on the same day.
const milestoneOffset = 2

// cadenceOffsets maps a cadence to weekday offsets from the week start.
// Unrecognized cadences fall back to the weekly default.
func cadenceOffsets(c models.Cadence) []int {
	switch c {
	case models.CadenceDaily:
		return []int{0, 1, 2, 3, 4} // weekdays only
	case models.CadenceTwiceWeekly:
		return []int{1, 4} // Tuesday and Friday
	default:
		return []int{milestoneOffset}
	}
}

// MilestoneTaskID derives the stable id for a strategic card's weekly
// milestone, so regeneration on the same draw yields the same ids.
func MilestoneTaskID(cardID string) string {
	return "t-" + cardID + "-WED"
}

// HabitTaskID derives the stable id for one habit occurrence.
func HabitTaskID(cardID string, offset int) string {
	return fmt.Sprintf("t-%s-%d", cardID, offset)
}

// Generate expands the current draw into this week's plan. The deck is
// rebuilt first so selections resolve against fresh cards; dangling ids are
// skipped silently. The returned plan replaces any existing one wholesale:
// manual edits, reschedules, copies, and completions are discarded.
func Generate(st *models.State, now time.Time) (models.Plan, error) {
	cards := deck.Rebuild(st)

	weekStart := st.Draw.WeekStart
	if weekStart == "" {
		weekStart = dateutil.FormatLocal(dateutil.StartOfWeek(now))
	}
	if len(st.Draw.Selected) == 0 {
		return models.Plan{}, ErrEmptySelection
	}

	start := dateutil.ParseLocal(weekStart)
	tasks := make([]models.Task, 0, len(st.Draw.Selected)*5)

	for _, id := range st.Draw.Selected {
		c, ok := deck.Find(cards, id)
		if !ok {
			continue
		}
		switch c.Rank {
		case models.RankKing, models.RankQueen:
			mins := c.Mins
			if mins == 0 {
				mins = defaultStrategicMins
			}
			tasks = append(tasks, models.Task{
				ID:       MilestoneTaskID(c.ID),
				CardID:   c.ID,
				Date:     dateutil.FormatLocal(dateutil.AddDays(start, milestoneOffset)),
				Title:    c.Title + " — milestone",
				Suit:     c.Suit,
				Rank:     c.Rank,
				Duration: mins,
				Status:   models.StatusPlanned,
			})
		default:
			mins := c.Duration
			if mins == 0 {
				mins = defaultHabitMins
			}
			for _, offset := range cadenceOffsets(c.Cadence) {
				tasks = append(tasks, models.Task{
					ID:       HabitTaskID(c.ID, offset),
					CardID:   c.ID,
					Date:     dateutil.FormatLocal(dateutil.AddDays(start, offset)),
					Title:    c.Title,
					Suit:     c.Suit,
					Rank:     c.Rank,
					Duration: mins,
					Status:   models.StatusPlanned,
				})
			}
		}
	}

	return models.Plan{WeekStart: weekStart, Tasks: tasks}, nil
}
