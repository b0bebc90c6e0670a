package ui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/josephgoksu/solventdeck/internal/dateutil"
	"github.com/josephgoksu/solventdeck/internal/utils"
	"github.com/josephgoksu/solventdeck/models"
)

var dayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DayBucket holds one day column of the week board.
type DayBucket struct {
	Name  string
	Date  string
	Tasks []models.Task
}

// BucketWeek distributes plan tasks over Mon..Sun columns. Tasks dated
// outside the plan week still land on their weekday, matching how the
// board treats a moved task.
func BucketWeek(plan models.Plan, now time.Time) []DayBucket {
	weekStart := plan.WeekStart
	if weekStart == "" {
		weekStart = dateutil.FormatLocal(dateutil.StartOfWeek(now))
	}
	start := dateutil.ParseLocal(weekStart)

	buckets := make([]DayBucket, 7)
	for i := range buckets {
		buckets[i] = DayBucket{
			Name: dayNames[i],
			Date: dateutil.FormatLocal(dateutil.AddDays(start, i)),
		}
	}
	for _, t := range plan.Tasks {
		wd := int(dateutil.ParseLocal(t.Date).Weekday()) // Sun=0..Sat=6
		idx := (wd + 6) % 7                              // Mon=0..Sun=6
		buckets[idx].Tasks = append(buckets[idx].Tasks, t)
	}
	for i := range buckets {
		sort.SliceStable(buckets[i].Tasks, func(a, b int) bool {
			return buckets[i].Tasks[a].Date < buckets[i].Tasks[b].Date
		})
	}
	return buckets
}

func renderTaskLine(t models.Task, width int) string {
	icon := models.MetaFor(t.Suit).Icon
	line := fmt.Sprintf("%s %s %dm", icon, utils.Truncate(t.Title, width-8), t.Duration)
	if t.Done() {
		return StyleDone.Render(line)
	}
	return SuitStyle(t.Suit).Render(icon) + " " + StyleText.Render(fmt.Sprintf("%s %dm", utils.Truncate(t.Title, width-8), t.Duration))
}

// RenderBoard renders the Mon..Sun week board as side-by-side day columns.
func RenderBoard(st *models.State, now time.Time) string {
	buckets := BucketWeek(st.Plan, now)

	const colWidth = 22
	cols := make([]string, 0, 7)
	for _, b := range buckets {
		var body strings.Builder
		body.WriteString(StyleTitle.Render(b.Name) + " " + StyleSubtle.Render(b.Date[5:]) + "\n")
		if len(b.Tasks) == 0 {
			body.WriteString(StyleSubtle.Render("·"))
		}
		for i, t := range b.Tasks {
			if i > 0 {
				body.WriteString("\n")
			}
			body.WriteString(renderTaskLine(t, colWidth))
		}
		cols = append(cols, StyleDayBox.Width(colWidth).Render(body.String()))
	}

	var sb strings.Builder
	weekStart := st.Plan.WeekStart
	if weekStart == "" {
		weekStart = dateutil.FormatLocal(dateutil.StartOfWeek(now))
	}
	sb.WriteString(StyleHeader.Render("Week of "+weekStart) + "\n")
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols[0:4]...) + "\n")
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols[4:7]...) + "\n")
	sb.WriteString(RenderSummary(Summarize(st)))
	return sb.String()
}

// RenderTaskTable renders tasks as a flat table, used by plain list output
// and the today view.
func RenderTaskTable(tasks []models.Task) string {
	tbl := Table{
		Headers:  []string{"ID", "Date", "Suit", "Title", "Dur", "Status"},
		MaxWidth: 40,
	}
	for _, t := range tasks {
		status := string(t.Status)
		if t.Done() {
			status = "✓ done"
		}
		tbl.Rows = append(tbl.Rows, []string{
			t.ID, t.Date, utils.ToTitle(string(t.Suit)), t.Title, fmt.Sprintf("%dm", t.Duration), status,
		})
	}
	return tbl.Render()
}

// RenderDeck renders the derived deck grouped by suit.
func RenderDeck(cards []models.Card) string {
	var sb strings.Builder
	sb.WriteString(StyleHeader.Render("Deck") + "\n")
	if len(cards) == 0 {
		sb.WriteString(StyleSubtle.Render("No cards yet. Set goals with `solvent ace`, `solvent strategic`, `solvent habit`.") + "\n")
		return sb.String()
	}
	for _, suit := range models.Suits() {
		var lines []string
		for _, c := range cards {
			if c.Suit != suit {
				continue
			}
			detail := ""
			switch c.Rank {
			case models.RankKing, models.RankQueen:
				detail = fmt.Sprintf("%dm/wk", c.Mins)
				if c.Due != "" {
					detail += " due " + c.Due
				}
			case models.RankJack, models.RankTen:
				detail = fmt.Sprintf("%s %dm", c.Cadence.Label(), c.Duration)
			}
			line := fmt.Sprintf("  %-2s %s", string(c.Rank), utils.Truncate(c.Title, 48))
			if detail != "" {
				line += "  " + StyleSubtle.Render(detail)
			}
			lines = append(lines, line)
		}
		if len(lines) == 0 {
			continue
		}
		sb.WriteString(SuitBadge(suit) + "\n")
		sb.WriteString(strings.Join(lines, "\n") + "\n")
	}
	return sb.String()
}

// RenderDraw renders the current weekly selection.
func RenderDraw(st *models.State) string {
	if len(st.Draw.Selected) == 0 {
		return StyleSubtle.Render("No cards drawn yet. Run `solvent draw`.") + "\n"
	}
	var sb strings.Builder
	sb.WriteString(StyleHeader.Render("Drawn for week of "+st.Draw.WeekStart) + "\n")
	byID := make(map[string]models.Card, len(st.Deck))
	for _, c := range st.Deck {
		byID[c.ID] = c
	}
	for _, id := range st.Draw.Selected {
		c, ok := byID[id]
		if !ok {
			sb.WriteString("  " + StyleSubtle.Render(id+" (card no longer exists)") + "\n")
			continue
		}
		icon := models.MetaFor(c.Suit).Icon
		sb.WriteString(fmt.Sprintf("  %s %-2s %s\n", SuitStyle(c.Suit).Render(icon), string(c.Rank), c.Title))
	}
	return sb.String()
}
