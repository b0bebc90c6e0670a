package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/josephgoksu/solventdeck/internal/dateutil"
	"github.com/josephgoksu/solventdeck/internal/planner"
	"github.com/josephgoksu/solventdeck/internal/undo"
	"github.com/josephgoksu/solventdeck/models"
)

// SaveFunc persists the state after an in-board mutation.
type SaveFunc func(*models.State) error

// TodayModel is the interactive board for today's tasks: toggle with
// space, delete with d, edit the title with e, undo the last delete
// with u while the toast is still showing.
type TodayModel struct {
	State *models.State
	Save  SaveFunc
	Undo  *undo.Buffer
	Now   func() time.Time

	OnToggle func(task models.Task)

	cursor  int
	toast   string
	err     error
	editing bool
	editID  string
	input   textinput.Model
}

type msgToastTick struct{}

func NewTodayModel(st *models.State, save SaveFunc, buf *undo.Buffer) TodayModel {
	ti := textinput.New()
	ti.CharLimit = 120
	return TodayModel{
		State: st,
		Save:  save,
		Undo:  buf,
		Now:   time.Now,
		input: ti,
	}
}

func (m TodayModel) Init() tea.Cmd { return nil }

func (m TodayModel) todayTasks() []models.Task {
	return planner.TasksOn(&m.State.Plan, dateutil.FormatLocal(m.Now()))
}

func tickToast() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return msgToastTick{} })
}

func (m *TodayModel) persist() {
	if m.Save == nil {
		return
	}
	if err := m.Save(m.State); err != nil {
		m.err = err
	}
}

func (m TodayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	tasks := m.todayTasks()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			switch msg.Type {
			case tea.KeyEscape:
				m.editing = false
				return m, nil
			case tea.KeyEnter:
				title := strings.TrimSpace(m.input.Value())
				m.editing = false
				if err := planner.EditTitle(&m.State.Plan, m.editID, title); err != nil {
					m.err = err
					return m, nil
				}
				m.persist()
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit

		case "j", "down":
			if m.cursor < len(tasks)-1 {
				m.cursor++
			}
			return m, nil

		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case " ", "enter":
			if m.cursor >= len(tasks) {
				return m, nil
			}
			toggled, err := planner.ToggleDone(&m.State.Plan, tasks[m.cursor].ID)
			if err != nil {
				m.err = err
				return m, nil
			}
			m.persist()
			if m.OnToggle != nil {
				m.OnToggle(toggled)
			}
			return m, nil

		case "d":
			if m.cursor >= len(tasks) {
				return m, nil
			}
			target := tasks[m.cursor]
			rec, err := planner.DeleteTask(&m.State.Plan, target.ID)
			if err != nil {
				m.err = err
				return m, nil
			}
			m.persist()
			plan := &m.State.Plan
			saved := *rec
			m.Undo.Push(target.Title, func() {
				planner.RestoreTask(plan, &saved)
			})
			m.toast = fmt.Sprintf("Deleted %q. Press u to undo.", target.Title)
			if m.cursor > 0 && m.cursor >= len(tasks)-1 {
				m.cursor--
			}
			return m, tickToast()

		case "e":
			if m.cursor >= len(tasks) {
				return m, nil
			}
			m.editing = true
			m.editID = tasks[m.cursor].ID
			m.input.SetValue(tasks[m.cursor].Title)
			m.input.Focus()
			return m, textinput.Blink

		case "u":
			if m.Undo.Undo() {
				m.persist()
				m.toast = "Restored."
				return m, tickToast()
			}
			m.toast = "Nothing to undo."
			return m, tickToast()
		}

	case msgToastTick:
		if _, pending := m.Undo.Pending(); !pending {
			m.toast = ""
			return m, nil
		}
		return m, tickToast()
	}
	return m, nil
}

func (m TodayModel) View() string {
	var sb strings.Builder
	today := dateutil.FormatLocal(m.Now())
	sb.WriteString(StyleHeader.Render("Today · "+today) + "\n\n")

	tasks := m.todayTasks()
	if len(tasks) == 0 {
		sb.WriteString(StyleSubtle.Render("Nothing planned for today.") + "\n")
	}
	for i, t := range tasks {
		pointer := "  "
		if i == m.cursor {
			pointer = StylePrimary.Render("› ")
		}
		check := "[ ]"
		title := t.Title
		if t.Done() {
			check = StyleSuccess.Render("[✓]")
			title = StyleDone.Render(title)
		}
		icon := SuitStyle(t.Suit).Render(models.MetaFor(t.Suit).Icon)
		if m.editing && t.ID == m.editID {
			sb.WriteString(fmt.Sprintf("%s%s %s %s\n", pointer, check, icon, m.input.View()))
			continue
		}
		sb.WriteString(fmt.Sprintf("%s%s %s %s %s\n", pointer, check, icon, title,
			StyleSubtle.Render(fmt.Sprintf("%dm", t.Duration))))
	}

	sb.WriteString("\n")
	if m.err != nil {
		sb.WriteString(StyleError.Render("✗ "+m.err.Error()) + "\n")
	}
	if m.toast != "" {
		sb.WriteString(StyleWarning.Render(m.toast) + "\n")
	}
	if m.editing {
		sb.WriteString(StyleSubtle.Render("[enter] save  [esc] cancel"))
	} else {
		sb.WriteString(StyleSubtle.Render("[space] toggle  [e] edit  [d] delete  [u] undo  [j/k] move  [q] quit"))
	}
	return sb.String()
}
