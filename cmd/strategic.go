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
	strategicDue  string
	strategicMins int
)

// strategicCmd represents the strategic command group
var strategicCmd = &cobra.Command{
	Use:   "strategic",
	Short: "Manage strategic projects (King and Queen, two slots per suit).",
	Long: `Each suit has two strategic slots: slot 1 is the King, slot 2 the
Queen. A slot holds a project title, an optional due date, and planned
weekly minutes. Filled slots become drawable cards.`,
}

func parseSlot(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > models.StrategicSlots {
		return 0, fmt.Errorf("slot must be 1 (King) or 2 (Queen), got %q", arg)
	}
	return n - 1, nil
}

var strategicSetCmd = &cobra.Command{
	Use:   "set <suit> <slot> <title>",
	Short: "Set a strategic slot for a suit.",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		suit, err := parseSuit(args[0])
		if err != nil {
			return err
		}
		slot, err := parseSlot(args[1])
		if err != nil {
			return err
		}
		title := strings.TrimSpace(strings.Join(args[2:], " "))

		st, s, err := loadState()
		if err != nil {
			return err
		}
		entry := &st.Strategics[suit][slot]
		entry.Title = title
		if cmd.Flags().Changed("due") {
			entry.Due = strategicDue
		}
		if cmd.Flags().Changed("mins") {
			entry.Mins = strategicMins
		}
		if err := models.ValidateStruct(entry); err != nil {
			_ = s.Close()
			return fmt.Errorf("invalid strategic project: %w", err)
		}
		deck.Rebuild(st)
		if err := saveState(s, st); err != nil {
			return err
		}
		if isJSONOutput() {
			return printJSON(map[string]interface{}{"suit": suit, "slot": slot + 1, "strategic": entry})
		}
		if !isQuiet() {
			rank := "King"
			if slot == 1 {
				rank = "Queen"
			}
			fmt.Printf("%s of %s set: %s\n", rank, suit, title)
		}
		return nil
	},
}

var strategicClearCmd = &cobra.Command{
	Use:   "clear <suit> <slot>",
	Short: "Clear a strategic slot.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		suit, err := parseSuit(args[0])
		if err != nil {
			return err
		}
		slot, err := parseSlot(args[1])
		if err != nil {
			return err
		}
		st, s, err := loadState()
		if err != nil {
			return err
		}
		st.Strategics[suit][slot] = models.Strategic{}
		deck.Rebuild(st)
		if err := saveState(s, st); err != nil {
			return err
		}
		if !isQuiet() && !isJSONOutput() {
			fmt.Printf("Strategic slot %d of %s cleared.\n", slot+1, suit)
		}
		return nil
	},
}

var strategicShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show strategic projects for all suits.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, s, err := loadState()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		if isJSONOutput() {
			return printJSON(st.Strategics)
		}
		for _, suit := range models.Suits() {
			meta := models.MetaFor(suit)
			fmt.Printf("%s %s\n", meta.Icon, meta.Name)
			for i, entry := range st.Strategics[suit] {
				rank := "K"
				if i == 1 {
					rank = "Q"
				}
				if entry.Title == "" {
					fmt.Printf("  %s: (empty)\n", rank)
					continue
				}
				line := fmt.Sprintf("  %s: %s", rank, entry.Title)
				if entry.Mins > 0 {
					line += fmt.Sprintf("  %dm/wk", entry.Mins)
				}
				if entry.Due != "" {
					line += "  due " + entry.Due
				}
				fmt.Println(line)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(strategicCmd)
	strategicCmd.AddCommand(strategicSetCmd, strategicClearCmd, strategicShowCmd)
	strategicSetCmd.Flags().StringVar(&strategicDue, "due", "", "due date (YYYY-MM-DD)")
	strategicSetCmd.Flags().IntVar(&strategicMins, "mins", 0, "planned weekly minutes (15-240)")
}
