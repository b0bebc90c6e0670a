package models

import "time"

// CurrentSchemaVersion is written into every saved state document. Loading
// tolerates older or absent versions by filling defaults field by field.
const CurrentSchemaVersion = 1

// User identifies whose deck this is. Display only.
type User struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Settings holds user-tunable planning knobs.
type Settings struct {
	WeeklyCapacityHours int `json:"weeklyCapacityHours" validate:"min=1,max=80"`
}

// UndoKind discriminates what the undo buffer holds.
type UndoKind string

const (
	UndoTask UndoKind = "task"
	UndoCard UndoKind = "card"
)

// UndoRecord is the single-slot, time-bounded record of the most recent
// deletion. A second deletion overwrites it; there is no redo stack.
type UndoRecord struct {
	Kind      UndoKind `json:"kind"`
	ExpiresAt string   `json:"expiresAt"` // RFC 3339

	// Task deletion: the removed task and its original index.
	Task      *Task `json:"task,omitempty"`
	TaskIndex int   `json:"taskIndex,omitempty"`

	// Card deletion: the removed card, its backing goal snapshot, and any
	// cascade-deleted tasks to re-concatenate on undo.
	Card      *Card      `json:"card,omitempty"`
	Ace       *Ace       `json:"ace,omitempty"`
	Strategic *Strategic `json:"strategic,omitempty"`
	SlotIndex int        `json:"slotIndex,omitempty"`
	Habit     *Habit     `json:"habit,omitempty"`
	Cascaded  []Task     `json:"cascaded,omitempty"`
}

// Expired reports whether the undo window has closed as of now.
func (r *UndoRecord) Expired(now time.Time) bool {
	deadline, err := time.Parse(time.RFC3339, r.ExpiresAt)
	if err != nil {
		return true
	}
	return now.After(deadline)
}

// State is the whole persisted document. Goals (aces, strategics, habits)
// are the source of truth; Deck is a derived cache kept only for display.
type State struct {
	SchemaVersion int      `json:"schemaVersion"`
	User          User     `json:"user"`
	Settings      Settings `json:"settings"`

	Aces       map[Suit]*Ace        `json:"aces"`
	Strategics map[Suit][]Strategic `json:"strategics"`
	Habits     map[Suit][]Habit     `json:"habits"`

	Deck []Card `json:"deck"`
	Draw Draw   `json:"draw"`
	Plan Plan   `json:"plan"`

	Undo *UndoRecord `json:"undo,omitempty" yaml:"undo,omitempty" toml:"undo,omitempty"`
}

// DefaultState returns the hardcoded default document used when no blob
// exists or the stored one cannot be read.
func DefaultState() *State {
	st := &State{
		SchemaVersion: CurrentSchemaVersion,
		Settings:      Settings{WeeklyCapacityHours: 8},
		Aces:          make(map[Suit]*Ace, 4),
		Strategics:    make(map[Suit][]Strategic, 4),
		Habits:        make(map[Suit][]Habit, 4),
		Deck:          []Card{},
		Draw:          Draw{Selected: []string{}},
		Plan:          Plan{Tasks: []Task{}},
	}
	for _, s := range Suits() {
		st.Aces[s] = &Ace{Metrics: []string{}}
		st.Strategics[s] = make([]Strategic, StrategicSlots)
		st.Habits[s] = []Habit{}
	}
	return st
}

// Normalize repairs structural gaps after unmarshaling an older or partial
// blob: missing suit entries, wrong strategic slot counts, nil slices.
// It never touches user data that is present.
func (st *State) Normalize() {
	if st.SchemaVersion == 0 {
		st.SchemaVersion = CurrentSchemaVersion
	}
	if st.Settings.WeeklyCapacityHours <= 0 {
		st.Settings.WeeklyCapacityHours = 8
	}
	if st.Aces == nil {
		st.Aces = make(map[Suit]*Ace, 4)
	}
	if st.Strategics == nil {
		st.Strategics = make(map[Suit][]Strategic, 4)
	}
	if st.Habits == nil {
		st.Habits = make(map[Suit][]Habit, 4)
	}
	for _, s := range Suits() {
		if st.Aces[s] == nil {
			st.Aces[s] = &Ace{Metrics: []string{}}
		}
		for len(st.Strategics[s]) < StrategicSlots {
			st.Strategics[s] = append(st.Strategics[s], Strategic{})
		}
		if st.Habits[s] == nil {
			st.Habits[s] = []Habit{}
		}
	}
	if st.Deck == nil {
		st.Deck = []Card{}
	}
	if st.Draw.Selected == nil {
		st.Draw.Selected = []string{}
	}
	if st.Plan.Tasks == nil {
		st.Plan.Tasks = []Task{}
	}
}
