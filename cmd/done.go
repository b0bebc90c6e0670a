/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/josephgoksu/solventdeck/internal/planner"
)

// doneCmd represents the done command
var doneCmd = &cobra.Command{
	Use:   "done <task-id>",
	Short: "Toggle a task between planned and done.",
	Long: `Flips the task's status. Toggling off is always allowed; nothing else
about the task changes. Every toggle is also appended to the completion
history so review and insights work across weeks.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, s, err := loadState()
		if err != nil {
			return err
		}
		task, err := planner.ToggleDone(&st.Plan, args[0])
		if err != nil {
			_ = s.Close()
			return err
		}
		if err := saveState(s, st); err != nil {
			return err
		}

		if log, herr := openHistory(); herr == nil {
			if err := log.RecordToggle(task, st.Plan.WeekStart, time.Now()); err != nil {
				LogVerbose("record toggle: " + err.Error())
			}
			_ = log.Close()
		} else {
			LogVerbose("history unavailable: " + herr.Error())
		}

		if isJSONOutput() {
			return printJSON(task)
		}
		if !isQuiet() {
			if task.Done() {
				fmt.Printf("✓ %s\n", task.Title)
			} else {
				fmt.Printf("Back to planned: %s\n", task.Title)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
}
