/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/josephgoksu/solventdeck/internal/planner"
)

var (
	editTitle    string
	editDuration string
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <task-id>",
	Short: "Edit a task's title or duration inline.",
	Long: `Edits the task in place. Titles are trimmed; an empty title is
rejected. Durations are clamped to 5-240 minutes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("title") && !cmd.Flags().Changed("duration") {
			return fmt.Errorf("nothing to edit: pass --title and/or --duration")
		}
		st, s, err := loadState()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("title") {
			if err := planner.EditTitle(&st.Plan, args[0], editTitle); err != nil {
				_ = s.Close()
				return err
			}
		}
		if cmd.Flags().Changed("duration") {
			if err := planner.EditDuration(&st.Plan, args[0], editDuration); err != nil {
				_ = s.Close()
				return err
			}
		}
		if err := saveState(s, st); err != nil {
			return err
		}
		if !isQuiet() && !isJSONOutput() {
			fmt.Printf("Updated %s.\n", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editTitle, "title", "", "new title")
	editCmd.Flags().StringVar(&editDuration, "duration", "", "new duration in minutes")
}
