package planner

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/josephgoksu/solventdeck/internal/deck"
	"github.com/josephgoksu/solventdeck/models"
)

// Sentinel errors for plan mutations. Invalid-input conditions are
// recovered locally by the caller (the prior value is kept).
var (
	ErrTaskNotFound    = errors.New("task not found in the current plan")
	ErrCardNotFound    = errors.New("card not found in the deck")
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrInvalidDuration = errors.New("duration must be a positive number of minutes")
)

// NewCopyID mints a globally unique id for a copied task: time-based with
// a random suffix, so it can never collide with generator-derived ids.
func NewCopyID(now time.Time) string {
	return fmt.Sprintf("t-%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}

func findTask(p *models.Plan, id string) (int, bool) {
	for i := range p.Tasks {
		if p.Tasks[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// MoveTask reschedules a task to a new local date in place. The id does
// not change.
func MoveTask(p *models.Plan, id, date string) error {
	i, ok := findTask(p, id)
	if !ok {
		return ErrTaskNotFound
	}
	p.Tasks[i].Date = date
	return nil
}

// CopyTask clones a task onto a target date with a freshly minted id and
// status reset to planned. The original is untouched; the clone is
// appended to the task list.
func CopyTask(p *models.Plan, id, date string, now time.Time) (models.Task, error) {
	i, ok := findTask(p, id)
	if !ok {
		return models.Task{}, ErrTaskNotFound
	}
	clone := p.Tasks[i]
	clone.ID = NewCopyID(now)
	clone.Date = date
	clone.Status = models.StatusPlanned
	p.Tasks = append(p.Tasks, clone)
	return clone, nil
}

// EditTitle commits an inline title edit. Input is trimmed; an empty
// result is rejected and the prior title retained.
func EditTitle(p *models.Plan, id, title string) error {
	i, ok := findTask(p, id)
	if !ok {
		return ErrTaskNotFound
	}
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return ErrEmptyTitle
	}
	p.Tasks[i].Title = trimmed
	return nil
}

// EditDuration commits an inline duration edit. Non-numeric or
// non-positive input is rejected; valid values are clamped to
// [MinTaskMinutes, MaxTaskMinutes].
func EditDuration(p *models.Plan, id, raw string) error {
	i, ok := findTask(p, id)
	if !ok {
		return ErrTaskNotFound
	}
	val, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || val <= 0 {
		return ErrInvalidDuration
	}
	if val < models.MinTaskMinutes {
		val = models.MinTaskMinutes
	}
	if val > models.MaxTaskMinutes {
		val = models.MaxTaskMinutes
	}
	p.Tasks[i].Duration = val
	return nil
}

// ToggleDone flips a task between planned and done. No other field
// changes. Returns the task's new state.
func ToggleDone(p *models.Plan, id string) (models.Task, error) {
	i, ok := findTask(p, id)
	if !ok {
		return models.Task{}, ErrTaskNotFound
	}
	if p.Tasks[i].Status == models.StatusDone {
		p.Tasks[i].Status = models.StatusPlanned
	} else {
		p.Tasks[i].Status = models.StatusDone
	}
	return p.Tasks[i], nil
}

// DeleteTask removes a task immediately and returns an undo record
// holding the exact removed item and its original index.
func DeleteTask(p *models.Plan, id string) (*models.UndoRecord, error) {
	i, ok := findTask(p, id)
	if !ok {
		return nil, ErrTaskNotFound
	}
	removed := p.Tasks[i]
	p.Tasks = append(p.Tasks[:i], p.Tasks[i+1:]...)
	return &models.UndoRecord{
		Kind:      models.UndoTask,
		Task:      &removed,
		TaskIndex: i,
	}, nil
}

// RestoreTask re-inserts a deleted task at its original index, clamped to
// the current list length if the list has shrunk further.
func RestoreTask(p *models.Plan, rec *models.UndoRecord) {
	if rec == nil || rec.Task == nil {
		return
	}
	idx := rec.TaskIndex
	if idx > len(p.Tasks) {
		idx = len(p.Tasks)
	}
	p.Tasks = append(p.Tasks[:idx], append([]models.Task{*rec.Task}, p.Tasks[idx:]...)...)
}

// DeleteCard removes a card's backing goal and either cascade-deletes or
// detaches (clears the card reference on) its dependent tasks. The
// returned record restores both the goal and, when cascaded, the captured
// tasks. The deck cache is rebuilt before resolving and after removal.
func DeleteCard(st *models.State, cardID string, cascade bool) (*models.UndoRecord, error) {
	cards := deck.Rebuild(st)
	c, ok := deck.Find(cards, cardID)
	if !ok {
		return nil, ErrCardNotFound
	}

	rec := &models.UndoRecord{Kind: models.UndoCard, Card: &c}

	switch c.Rank {
	case models.RankAce:
		snapshot := *st.Aces[c.Suit]
		rec.Ace = &snapshot
		st.Aces[c.Suit] = &models.Ace{Metrics: []string{}}
	case models.RankKing, models.RankQueen:
		slot := 0
		if c.Rank == models.RankQueen {
			slot = 1
		}
		snapshot := st.Strategics[c.Suit][slot]
		rec.Strategic = &snapshot
		rec.SlotIndex = slot
		st.Strategics[c.Suit][slot] = models.Strategic{}
	default:
		idx, err := habitIndexFromID(cardID)
		if err != nil || idx >= len(st.Habits[c.Suit]) {
			return nil, ErrCardNotFound
		}
		snapshot := st.Habits[c.Suit][idx]
		rec.Habit = &snapshot
		rec.SlotIndex = idx
		st.Habits[c.Suit] = append(st.Habits[c.Suit][:idx], st.Habits[c.Suit][idx+1:]...)
	}

	if cascade {
		kept := st.Plan.Tasks[:0:0]
		for _, t := range st.Plan.Tasks {
			if t.CardID == cardID {
				rec.Cascaded = append(rec.Cascaded, t)
			} else {
				kept = append(kept, t)
			}
		}
		st.Plan.Tasks = kept
	} else {
		for i := range st.Plan.Tasks {
			if st.Plan.Tasks[i].CardID == cardID {
				st.Plan.Tasks[i].CardID = ""
			}
		}
	}

	deck.Rebuild(st)
	return rec, nil
}

// RestoreCard undoes a card deletion: the goal is put back and any
// cascade-deleted tasks are re-concatenated. Order among re-attached tasks
// is not guaranteed to match the original interleaving.
func RestoreCard(st *models.State, rec *models.UndoRecord) {
	if rec == nil || rec.Card == nil {
		return
	}
	suit := rec.Card.Suit
	switch {
	case rec.Ace != nil:
		snapshot := *rec.Ace
		st.Aces[suit] = &snapshot
	case rec.Strategic != nil:
		st.Strategics[suit][rec.SlotIndex] = *rec.Strategic
	case rec.Habit != nil:
		idx := rec.SlotIndex
		if idx > len(st.Habits[suit]) {
			idx = len(st.Habits[suit])
		}
		habits := st.Habits[suit]
		st.Habits[suit] = append(habits[:idx], append([]models.Habit{*rec.Habit}, habits[idx:]...)...)
	}
	if len(rec.Cascaded) > 0 {
		st.Plan.Tasks = append(st.Plan.Tasks, rec.Cascaded...)
	}
	deck.Rebuild(st)
}

// TasksFor returns the tasks referencing a card, used to report cascade
// scope before the user confirms.
func TasksFor(p *models.Plan, cardID string) []models.Task {
	var out []models.Task
	for _, t := range p.Tasks {
		if t.CardID == cardID {
			out = append(out, t)
		}
	}
	return out
}

// TasksOn returns the tasks dated on a given day, in plan order.
func TasksOn(p *models.Plan, date string) []models.Task {
	var out []models.Task
	for _, t := range p.Tasks {
		if t.Date == date {
			out = append(out, t)
		}
	}
	return out
}

func habitIndexFromID(cardID string) (int, error) {
	parts := strings.Split(cardID, "-")
	if len(parts) != 3 || parts[0] != "H" {
		return 0, fmt.Errorf("not a habit card id: %s", cardID)
	}
	return strconv.Atoi(parts[2])
}
