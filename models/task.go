package models

// TaskStatus represents the possible statuses of a planned task.
type TaskStatus string

const (
	StatusPlanned TaskStatus = "planned"
	StatusDone    TaskStatus = "done"
)

// Task is a dated unit of work derived from a card. Tasks are independent
// entities after generation: editing one does not write back to the
// originating card or goal.
type Task struct {
	ID   string `json:"id" validate:"required"`
	Date string `json:"date" validate:"required,datetime=2006-01-02"`

	// CardID references the card this task was generated from. Cleared
	// when the card is deleted with detach; empty for orphaned copies.
	CardID string `json:"cardId,omitempty"`

	Title    string     `json:"title" validate:"required"`
	Suit     Suit       `json:"suit" validate:"required"`
	Rank     Rank       `json:"rank" validate:"required"`
	Duration int        `json:"duration" validate:"required,min=1,max=240"`
	Status   TaskStatus `json:"status" validate:"required,oneof=planned done"`
}

// Done reports whether the task has been completed.
func (t Task) Done() bool { return t.Status == StatusDone }

// Draw is the weekly selection of card ids. Selected is kept in insertion
// order: balance-phase picks first, fill picks after. Ids may dangle if
// goals are later edited; no referential integrity is enforced here.
type Draw struct {
	WeekStart string   `json:"weekStart"`
	Selected  []string `json:"selected"`
}

// Plan is the dated task list for one week.
type Plan struct {
	WeekStart string `json:"weekStart"`
	Tasks     []Task `json:"tasks"`
}

// TotalMinutes sums the durations of all tasks in the plan.
func (p Plan) TotalMinutes() int {
	total := 0
	for _, t := range p.Tasks {
		total += t.Duration
	}
	return total
}

// EditDuration bounds for inline task duration edits, in minutes.
const (
	MinTaskMinutes = 5
	MaxTaskMinutes = 240
)
