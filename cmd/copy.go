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

// copyCmd represents the copy command
var copyCmd = &cobra.Command{
	Use:   "copy <task-id> <date>",
	Short: "Copy a task to another day.",
	Long: `Duplicates the task onto the given date with a fresh unique id. The
copy always starts as planned, even when the original is done.`,
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
		clone, err := planner.CopyTask(&st.Plan, args[0], date, time.Now())
		if err != nil {
			_ = s.Close()
			return err
		}
		if err := saveState(s, st); err != nil {
			return err
		}
		if isJSONOutput() {
			return printJSON(clone)
		}
		if !isQuiet() {
			fmt.Printf("Copied to %s as %s.\n", args[1], clone.ID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
}
