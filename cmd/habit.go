/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/josephgoksu/solventdeck/internal/deck"
	"github.com/josephgoksu/solventdeck/models"
)

var (
	habitCadence  string
	habitDuration int
	habitTemplate int
)

// habitTemplates is the starter catalog offered during onboarding, four
// suggestions per suit.
var habitTemplates = map[models.Suit][]models.Habit{
	models.SuitSpades: {
		{Title: "Write 300 words", Cadence: models.CadenceDaily, Duration: 25},
		{Title: "Two research sprints", Cadence: models.CadenceTwiceWeekly, Duration: 45},
		{Title: "Read one seminal paper", Cadence: models.CadenceWeekly, Duration: 30},
		{Title: "Outline next module", Cadence: models.CadenceWeekly, Duration: 30},
	},
	models.SuitClubs: {
		{Title: "10k steps", Cadence: models.CadenceDaily, Duration: 40},
		{Title: "Protein at each meal", Cadence: models.CadenceDaily, Duration: 10},
		{Title: "Lights out 10pm", Cadence: models.CadenceDaily, Duration: 5},
		{Title: "Mobility 10 min", Cadence: models.CadenceDaily, Duration: 10},
	},
	models.SuitHearts: {
		{Title: "Share three appreciations", Cadence: models.CadenceDaily, Duration: 10},
		{Title: "Weekly partner meeting", Cadence: models.CadenceWeekly, Duration: 45},
		{Title: "1:1 with child", Cadence: models.CadenceWeekly, Duration: 30},
		{Title: "Call a mentor", Cadence: models.CadenceWeekly, Duration: 20},
	},
	models.SuitDiamonds: {
		{Title: "Track daily expenses", Cadence: models.CadenceDaily, Duration: 8},
		{Title: "DCA invest", Cadence: models.CadenceWeekly, Duration: 15},
		{Title: "Review budget", Cadence: models.CadenceWeekly, Duration: 20},
		{Title: "Draft offer asset", Cadence: models.CadenceWeekly, Duration: 30},
	},
}

// habitCmd represents the habit command group
var habitCmd = &cobra.Command{
	Use:   "habit",
	Short: "Manage habits (Jack and Tens, up to three per suit).",
	Long: `Habits are small recurring actions. The first habit of a suit is the
Jack; further ones are Tens. A habit has a cadence (daily, 2x, weekly)
and a per-occurrence duration in minutes.`,
}

var habitAddCmd = &cobra.Command{
	Use:   "add <suit> [title]",
	Short: "Add a habit to a suit, by title or from the template catalog.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		suit, err := parseSuit(args[0])
		if err != nil {
			return err
		}

		var habit models.Habit
		if cmd.Flags().Changed("template") {
			catalog := habitTemplates[suit]
			if habitTemplate < 1 || habitTemplate > len(catalog) {
				return fmt.Errorf("template index must be 1-%d for %s", len(catalog), suit)
			}
			habit = catalog[habitTemplate-1]
		} else {
			if len(args) < 2 {
				return fmt.Errorf("provide a habit title or --template <n>")
			}
			habit.Title = strings.TrimSpace(strings.Join(args[1:], " "))
			habit.Cadence, err = parseCadence(habitCadence)
			if err != nil {
				return err
			}
			habit.Duration = habitDuration
		}

		st, s, err := loadState()
		if err != nil {
			return err
		}
		existing := st.Habits[suit]
		if len(existing) >= models.MaxHabitsPerSuit {
			_ = s.Close()
			return fmt.Errorf("%s already has %d habits; remove one first", suit, models.MaxHabitsPerSuit)
		}
		for _, h := range existing {
			if strings.EqualFold(h.Title, habit.Title) {
				_ = s.Close()
				return fmt.Errorf("habit %q already exists for %s", habit.Title, suit)
			}
		}
		if err := models.ValidateStruct(&habit); err != nil {
			_ = s.Close()
			return fmt.Errorf("invalid habit: %w", err)
		}
		st.Habits[suit] = append(existing, habit)
		deck.Rebuild(st)
		if err := saveState(s, st); err != nil {
			return err
		}
		if isJSONOutput() {
			return printJSON(map[string]interface{}{"suit": suit, "habit": habit})
		}
		if !isQuiet() {
			fmt.Printf("Habit added to %s: %s (%s, %dm)\n", suit, habit.Title, habit.Cadence.Label(), habit.Duration)
		}
		return nil
	},
}

var habitRemoveCmd = &cobra.Command{
	Use:   "remove <suit> <index>",
	Short: "Remove a habit by its 1-based index within the suit.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		suit, err := parseSuit(args[0])
		if err != nil {
			return err
		}
		idx, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("index must be a number, got %q", args[1])
		}

		st, s, err := loadState()
		if err != nil {
			return err
		}
		habits := st.Habits[suit]
		if idx < 1 || idx > len(habits) {
			_ = s.Close()
			return fmt.Errorf("%s has %d habits; index %d is out of range", suit, len(habits), idx)
		}
		removed := habits[idx-1]
		st.Habits[suit] = append(habits[:idx-1], habits[idx:]...)
		deck.Rebuild(st)
		if err := saveState(s, st); err != nil {
			return err
		}
		if !isQuiet() && !isJSONOutput() {
			fmt.Printf("Removed habit from %s: %s\n", suit, removed.Title)
		}
		return nil
	},
}

var habitShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show habits for all suits.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, s, err := loadState()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		if isJSONOutput() {
			return printJSON(st.Habits)
		}
		for _, suit := range models.Suits() {
			meta := models.MetaFor(suit)
			fmt.Printf("%s %s\n", meta.Icon, meta.Name)
			if len(st.Habits[suit]) == 0 {
				fmt.Println("  (no habits)")
				continue
			}
			for i, h := range st.Habits[suit] {
				rank := "J"
				if i > 0 {
					rank = "10"
				}
				fmt.Printf("  %d. [%s] %s  %s %dm\n", i+1, rank, h.Title, h.Cadence.Label(), h.Duration)
			}
		}
		return nil
	},
}

var habitTemplatesCmd = &cobra.Command{
	Use:   "templates [suit]",
	Short: "List the starter habit catalog.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		suits := models.Suits()
		if len(args) == 1 {
			suit, err := parseSuit(args[0])
			if err != nil {
				return err
			}
			suits = []models.Suit{suit}
		}
		if isJSONOutput() {
			out := make(map[models.Suit][]models.Habit, len(suits))
			for _, s := range suits {
				out[s] = habitTemplates[s]
			}
			return printJSON(out)
		}
		for _, suit := range suits {
			meta := models.MetaFor(suit)
			fmt.Printf("%s %s\n", meta.Icon, meta.Name)
			for i, h := range habitTemplates[suit] {
				fmt.Printf("  %d. %s  %s %dm\n", i+1, h.Title, h.Cadence.Label(), h.Duration)
			}
		}
		fmt.Println("\nAdopt one with `solvent habit add <suit> --template <n>`.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(habitCmd)
	habitCmd.AddCommand(habitAddCmd, habitRemoveCmd, habitShowCmd, habitTemplatesCmd)
	habitAddCmd.Flags().StringVar(&habitCadence, "cadence", "weekly", "cadence: daily, 2x, or weekly")
	habitAddCmd.Flags().IntVar(&habitDuration, "duration", 20, "duration per occurrence in minutes")
	habitAddCmd.Flags().IntVar(&habitTemplate, "template", 0, "adopt template <n> from the catalog")
}
