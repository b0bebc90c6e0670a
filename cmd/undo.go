/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/josephgoksu/solventdeck/internal/planner"
	"github.com/josephgoksu/solventdeck/models"
)

// undoCmd represents the undo command
var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Restore the most recent deletion, if the window is still open.",
	Long: `The undo slot holds exactly one deletion. Within the window, undo
restores a deleted task at its original position, or a deleted card's
goal together with any cascade-deleted tasks. After the window closes
the deletion is final.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, s, err := loadState()
		if err != nil {
			return err
		}
		rec := st.Undo
		if rec == nil {
			_ = s.Close()
			fmt.Println("Nothing to undo.")
			return nil
		}
		if rec.Expired(time.Now()) {
			st.Undo = nil
			if err := saveState(s, st); err != nil {
				return err
			}
			fmt.Println("The undo window has closed; the deletion is final.")
			return nil
		}

		var what string
		switch rec.Kind {
		case models.UndoCard:
			planner.RestoreCard(st, rec)
			what = "card " + rec.Card.ID
		default:
			planner.RestoreTask(&st.Plan, rec)
			what = fmt.Sprintf("task %q", rec.Task.Title)
		}
		st.Undo = nil
		if err := saveState(s, st); err != nil {
			return err
		}
		if !isQuiet() && !isJSONOutput() {
			fmt.Printf("Restored %s.\n", what)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(undoCmd)
}
