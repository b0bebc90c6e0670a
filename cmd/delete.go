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

var (
	deleteCascade bool
	deleteDetach  bool
	deleteYes     bool
)

// deleteCmd represents the delete command group
var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a task or a card (with a short undo window).",
	Long: `Deletions happen immediately and arm a single undo slot. Run
` + "`solvent undo`" + ` within the window to restore; a second deletion
overwrites the slot, and there is no redo.`,
}

// armUndo stores rec as the single pending undo with its deadline.
func armUndo(st *models.State, rec *models.UndoRecord) {
	rec.ExpiresAt = time.Now().Add(undoWindow()).Format(time.RFC3339)
	st.Undo = rec
}

var deleteTaskCmd = &cobra.Command{
	Use:   "task <task-id>",
	Short: "Delete a single task from the plan.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, s, err := loadState()
		if err != nil {
			return err
		}
		rec, err := planner.DeleteTask(&st.Plan, args[0])
		if err != nil {
			_ = s.Close()
			return err
		}
		armUndo(st, rec)
		if err := saveState(s, st); err != nil {
			return err
		}
		if !isQuiet() && !isJSONOutput() {
			fmt.Printf("Deleted %q. Run `solvent undo` within %s to restore.\n", rec.Task.Title, undoWindow())
		}
		return nil
	},
}

var deleteCardCmd = &cobra.Command{
	Use:   "card <card-id>",
	Short: "Delete a card's backing goal, cascading or detaching its tasks.",
	Long: `Removes the goal behind a card. Its planned tasks either go with it
(--cascade) or stay as free-floating tasks without a card reference
(--detach). Without either flag you are asked, listing the affected
tasks first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if deleteCascade && deleteDetach {
			return fmt.Errorf("--cascade and --detach are mutually exclusive")
		}
		st, s, err := loadState()
		if err != nil {
			return err
		}

		cascade := deleteCascade
		if !deleteCascade && !deleteDetach {
			dependents := planner.TasksFor(&st.Plan, args[0])
			if len(dependents) > 0 {
				if deleteYes {
					cascade = true
				} else {
					fmt.Printf("%d planned task(s) reference this card:\n", len(dependents))
					for _, t := range dependents {
						fmt.Printf("  %s  %s (%s)\n", t.ID, t.Title, t.Date)
					}
					cascade = confirm("Delete these tasks too")
					if !cascade {
						fmt.Println("Keeping tasks: they will be detached from the card.")
					}
				}
			}
		}

		rec, err := planner.DeleteCard(st, args[0], cascade)
		if err != nil {
			_ = s.Close()
			return err
		}
		armUndo(st, rec)
		if err := saveState(s, st); err != nil {
			return err
		}
		if !isQuiet() && !isJSONOutput() {
			mode := "detached its tasks"
			if cascade {
				mode = fmt.Sprintf("deleted %d task(s) with it", len(rec.Cascaded))
			}
			fmt.Printf("Deleted card %s and %s. Run `solvent undo` within %s to restore.\n", args[0], mode, undoWindow())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.AddCommand(deleteTaskCmd, deleteCardCmd)
	deleteCardCmd.Flags().BoolVar(&deleteCascade, "cascade", false, "delete the card's tasks too")
	deleteCardCmd.Flags().BoolVar(&deleteDetach, "detach", false, "keep the card's tasks, unlinked")
	deleteCardCmd.Flags().BoolVar(&deleteYes, "yes", false, "skip the confirmation prompt (defaults to cascade)")
}
