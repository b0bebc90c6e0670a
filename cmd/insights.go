/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/josephgoksu/solventdeck/internal/ui"
)

var insightsLimit int

// insightsCmd represents the insights command
var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show which tasks you actually complete, across weeks.",
	Long: `Aggregates the completion history by task title and ranks titles by
completion ratio. Useful for spotting habits that survive contact with a
real week and those that never do.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := openHistory()
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer func() { _ = log.Close() }()

		stats, err := log.TitleStats(insightsLimit)
		if err != nil {
			return err
		}
		if isJSONOutput() {
			return printJSON(stats)
		}
		if len(stats) == 0 {
			fmt.Println("No completion history yet. Toggle some tasks with `solvent done`.")
			return nil
		}

		tbl := ui.Table{Headers: []string{"Title", "Done", "Total", "Ratio"}, MaxWidth: 48}
		for _, s := range stats {
			tbl.Rows = append(tbl.Rows, []string{
				s.Title,
				fmt.Sprintf("%d", s.Done),
				fmt.Sprintf("%d", s.Total),
				fmt.Sprintf("%.0f%%", s.Ratio()*100),
			})
		}
		fmt.Print(tbl.Render())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(insightsCmd)
	insightsCmd.Flags().IntVar(&insightsLimit, "limit", 20, "maximum titles to show")
}
