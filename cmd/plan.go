/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/josephgoksu/solventdeck/internal/planner"
	"github.com/josephgoksu/solventdeck/internal/ui"
)

// planCmd represents the plan command
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the week board for the current plan.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, s, err := loadState()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()
		if isJSONOutput() {
			return printJSON(st.Plan)
		}
		fmt.Print(ui.RenderBoard(st, time.Now()))
		return nil
	},
}

var planGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Expand the weekly draw into dated tasks.",
	Long: `Generates the week's plan from the drawn cards: a Wednesday milestone
per strategic card, habit occurrences per cadence. Regenerating replaces
the existing plan wholesale, including any manual edits and completions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, s, err := loadState()
		if err != nil {
			return err
		}
		plan, err := planner.Generate(st, time.Now())
		if err != nil {
			_ = s.Close()
			if errors.Is(err, planner.ErrEmptySelection) {
				return fmt.Errorf("no cards drawn yet: run `solvent draw` first")
			}
			return err
		}
		st.Plan = plan
		if err := saveState(s, st); err != nil {
			return err
		}
		if isJSONOutput() {
			return printJSON(plan)
		}
		if !isQuiet() {
			fmt.Printf("Planned %d tasks for week of %s.\n", len(plan.Tasks), plan.WeekStart)
		}
		fmt.Print(ui.RenderBoard(st, time.Now()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.AddCommand(planGenerateCmd)
}
