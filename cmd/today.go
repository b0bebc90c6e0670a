/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/josephgoksu/solventdeck/internal/dateutil"
	"github.com/josephgoksu/solventdeck/internal/planner"
	"github.com/josephgoksu/solventdeck/internal/ui"
	"github.com/josephgoksu/solventdeck/internal/undo"
	"github.com/josephgoksu/solventdeck/models"
)

var todayInteractive bool

// todayCmd represents the today command
var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's tasks.",
	Long: `Lists the plan tasks dated today. With --interactive, opens a board
where tasks can be toggled and deleted in place, with a short undo
window after each delete.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, s, err := loadState()
		if err != nil {
			return err
		}

		if todayInteractive {
			log, herr := openHistory()
			if herr != nil {
				LogVerbose("history unavailable: " + herr.Error())
			}
			buf := undo.New(undo.SystemClock{}, undoWindow())
			model := ui.NewTodayModel(st, func(cur *models.State) error {
				return s.Save(cur)
			}, buf)
			model.OnToggle = func(task models.Task) {
				if log == nil {
					return
				}
				if err := log.RecordToggle(task, st.Plan.WeekStart, time.Now()); err != nil {
					LogVerbose("record toggle: " + err.Error())
				}
			}
			_, err = tea.NewProgram(model).Run()
			if log != nil {
				_ = log.Close()
			}
			_ = s.Close()
			return err
		}

		defer func() { _ = s.Close() }()
		tasks := planner.TasksOn(&st.Plan, dateutil.FormatLocal(time.Now()))
		if isJSONOutput() {
			return printJSON(tasks)
		}
		if len(tasks) == 0 {
			fmt.Println("Nothing planned for today.")
			return nil
		}
		fmt.Print(ui.RenderTaskTable(tasks))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().BoolVarP(&todayInteractive, "interactive", "i", false, "open the interactive board")
}
