/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/josephgoksu/solventdeck/internal/ui"
)

// reviewCmd represents the review command
var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review the current week and past completion counts.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, s, err := loadState()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		done := 0
		for _, t := range st.Plan.Tasks {
			if t.Done() {
				done++
			}
		}

		log, herr := openHistory()
		var weeks interface{}
		if herr == nil {
			defer func() { _ = log.Close() }()
			weeks, _ = log.Weeks()
		}

		if isJSONOutput() {
			return printJSON(map[string]interface{}{
				"weekStart": st.Plan.WeekStart,
				"planned":   len(st.Plan.Tasks),
				"done":      done,
				"summary":   ui.Summarize(st),
				"weeks":     weeks,
			})
		}

		fmt.Printf("Week of %s: %d/%d tasks done.\n", st.Plan.WeekStart, done, len(st.Plan.Tasks))
		fmt.Print(ui.RenderSummary(ui.Summarize(st)))

		if herr != nil {
			LogVerbose("history unavailable: " + herr.Error())
			return nil
		}
		recorded, err := log.Weeks()
		if err != nil {
			return err
		}
		if len(recorded) > 0 {
			fmt.Println("\nRecorded weeks (toggles, most recent first):")
			for _, w := range recorded {
				fmt.Printf("  %s  %d/%d done\n", w.WeekStart, w.Done, w.Total)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reviewCmd)
}
