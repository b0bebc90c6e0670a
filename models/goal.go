package models

// Cadence is a habit's recurrence pattern. The wire values match the
// persisted state blob: "2x" means twice weekly (Tuesday and Friday).
type Cadence string

const (
	CadenceDaily       Cadence = "daily"
	CadenceTwiceWeekly Cadence = "2x"
	CadenceWeekly      Cadence = "weekly"
)

// Label returns a human-readable cadence description.
func (c Cadence) Label() string {
	switch c {
	case CadenceDaily:
		return "Daily"
	case CadenceTwiceWeekly:
		return "Tue/Fri"
	default:
		return "Weekly"
	}
}

// Ace is the identity-level goal for a suit. At most one per suit.
type Ace struct {
	Title   string   `json:"title" yaml:"title" toml:"title"`
	Metrics []string `json:"metrics" yaml:"metrics" toml:"metrics"`
}

// Strategic is a King or Queen slot: a project that advances the Ace.
// Due is a local date string ("YYYY-MM-DD") or empty.
type Strategic struct {
	Title string `json:"title" yaml:"title" toml:"title"`
	Due   string `json:"due" yaml:"due" toml:"due" validate:"omitempty,datetime=2006-01-02"`
	Mins  int    `json:"mins,omitempty" yaml:"mins,omitempty" toml:"mins,omitempty" validate:"omitempty,min=15,max=240"`
}

// Habit is a recurring practice picked from the per-suit template catalog.
type Habit struct {
	Title    string  `json:"title" yaml:"title" toml:"title" validate:"required"`
	Cadence  Cadence `json:"cadence" yaml:"cadence" toml:"cadence" validate:"required,oneof=daily 2x weekly"`
	Duration int     `json:"duration" yaml:"duration" toml:"duration" validate:"required,min=1,max=240"`
}

// StrategicSlots is the fixed number of strategic slots per suit
// (index 0 = King, index 1 = Queen).
const StrategicSlots = 2

// MaxHabitsPerSuit bounds how many habits a suit may carry.
const MaxHabitsPerSuit = 3
