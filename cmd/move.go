/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/josephgoksu/solventdeck/internal/planner"
)

// moveCmd represents the move command
var moveCmd = &cobra.Command{
	Use:   "move <task-id> <date>",
	Short: "Move a task to another day.",
	Long: `Changes the task's date. Status and everything else survive the move,
including a done checkmark. Dates outside the plan week are allowed.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDate(args[1])
		if err != nil {
			return err
		}
		st, s, err := loadState()
		if err != nil {
			return err
		}
		if err := planner.MoveTask(&st.Plan, args[0], date); err != nil {
			_ = s.Close()
			return err
		}
		if err := saveState(s, st); err != nil {
			return err
		}
		if !isQuiet() && !isJSONOutput() {
			fmt.Printf("Moved %s to %s.\n", args[0], args[1])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
}
