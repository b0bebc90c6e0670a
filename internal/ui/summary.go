package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/josephgoksu/solventdeck/models"
)

// Usage badge levels for the weekly summary.
const (
	UsageOK   = "ok"
	UsageWarn = "warn"
	UsageHigh = "high"
)

// WeekSummary aggregates the current plan against the weekly capacity.
type WeekSummary struct {
	TotalMinutes  int
	TotalHours    float64
	CapacityHours int
	UsagePercent  int
	Counts        map[models.Suit]int
	Level         string
	Hint          string
}

// Summarize computes totals, the usage badge level, and the coaching hint
// for the current plan.
func Summarize(st *models.State) WeekSummary {
	s := WeekSummary{
		CapacityHours: st.Settings.WeeklyCapacityHours,
		Counts:        make(map[models.Suit]int, 4),
	}
	for _, suit := range models.Suits() {
		s.Counts[suit] = 0
	}
	for _, t := range st.Plan.Tasks {
		s.TotalMinutes += t.Duration
		if _, ok := s.Counts[t.Suit]; ok {
			s.Counts[t.Suit]++
		}
	}
	s.TotalHours = math.Round(float64(s.TotalMinutes)/60*10) / 10

	capMins := s.CapacityHours * 60
	if capMins > 0 {
		s.UsagePercent = int(math.Round(float64(s.TotalMinutes) / float64(capMins) * 100))
	}

	s.Level = UsageOK
	if s.UsagePercent >= 90 {
		s.Level = UsageHigh
	} else if s.UsagePercent >= 70 {
		s.Level = UsageWarn
	}

	maxCount, minCount := 0, 0
	first := true
	for _, suit := range models.Suits() {
		c := s.Counts[suit]
		if first {
			maxCount, minCount = c, c
			first = false
			continue
		}
		if c > maxCount {
			maxCount = c
		}
		if c < minCount {
			minCount = c
		}
	}

	switch {
	case s.UsagePercent >= 95:
		s.Hint = "This looks heavy: consider reducing durations or moving a card."
	case s.UsagePercent <= 40:
		s.Hint = "Plenty of capacity left: consider adding one helpful habit."
	case maxCount-minCount >= 3:
		s.Hint = "One suit dominates this week. Check if that's intentional."
	default:
		s.Hint = "Looks balanced. Aim for small, meaningful steps."
	}
	return s
}

// RenderSummary renders the weekly summary block under the plan board.
func RenderSummary(s WeekSummary) string {
	var sb strings.Builder
	sb.WriteString(StyleSectionTitle.Render("Weekly Summary") + "\n")

	usage := fmt.Sprintf("%d%%", s.UsagePercent)
	switch s.Level {
	case UsageHigh:
		usage = StyleError.Render(usage)
	case UsageWarn:
		usage = StyleWarning.Render(usage)
	default:
		usage = StyleSuccess.Render(usage)
	}
	sb.WriteString(fmt.Sprintf(" Time: %dm (%.1fh)   Capacity: %dh   Usage: %s\n",
		s.TotalMinutes, s.TotalHours, s.CapacityHours, usage))

	var pills []string
	for _, suit := range models.Suits() {
		meta := models.MetaFor(suit)
		pills = append(pills, SuitStyle(suit).Render(fmt.Sprintf("%s %d", meta.Icon, s.Counts[suit])))
	}
	sb.WriteString(" " + strings.Join(pills, "  ") + "\n")
	sb.WriteString(" " + StyleSubtle.Render(s.Hint) + "\n")
	if over := s.TotalMinutes - s.CapacityHours*60; over > 0 {
		sb.WriteString(StyleOverBox.Render(fmt.Sprintf("Over capacity by %dm this week", over)) + "\n")
	}
	return sb.String()
}
