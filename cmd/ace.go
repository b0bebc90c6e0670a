/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/josephgoksu/solventdeck/internal/deck"
	"github.com/josephgoksu/solventdeck/models"
)

var aceMetrics []string

// aceCmd represents the ace command group
var aceCmd = &cobra.Command{
	Use:   "ace",
	Short: "Manage identity goals (one Ace per suit).",
	Long: `An Ace is the identity-level goal for a life area. It anchors the
suit's strategic projects and habits but is never drawn or scheduled.`,
}

var aceSetCmd = &cobra.Command{
	Use:   "set <suit> <title>",
	Short: "Set the Ace title (and optional metrics) for a suit.",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		suit, err := parseSuit(args[0])
		if err != nil {
			return err
		}
		title := strings.TrimSpace(strings.Join(args[1:], " "))

		st, s, err := loadState()
		if err != nil {
			return err
		}
		ace := st.Aces[suit]
		ace.Title = title
		if cmd.Flags().Changed("metric") {
			ace.Metrics = aceMetrics
		}
		if err := models.ValidateStruct(ace); err != nil {
			_ = s.Close()
			return fmt.Errorf("invalid ace: %w", err)
		}
		deck.Rebuild(st)
		if err := saveState(s, st); err != nil {
			return err
		}
		if isJSONOutput() {
			return printJSON(map[string]interface{}{"suit": suit, "ace": ace})
		}
		if !isQuiet() {
			fmt.Printf("Ace of %s set: %s\n", suit, title)
		}
		return nil
	},
}

var aceClearCmd = &cobra.Command{
	Use:   "clear <suit>",
	Short: "Clear the Ace for a suit (removes its card from the deck).",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		suit, err := parseSuit(args[0])
		if err != nil {
			return err
		}
		st, s, err := loadState()
		if err != nil {
			return err
		}
		st.Aces[suit] = &models.Ace{Metrics: []string{}}
		deck.Rebuild(st)
		if err := saveState(s, st); err != nil {
			return err
		}
		if !isQuiet() && !isJSONOutput() {
			fmt.Printf("Ace of %s cleared.\n", suit)
		}
		return nil
	},
}

var aceShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the Aces for all suits.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, s, err := loadState()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		if isJSONOutput() {
			return printJSON(st.Aces)
		}
		for _, suit := range models.Suits() {
			ace := st.Aces[suit]
			meta := models.MetaFor(suit)
			if ace == nil || ace.Title == "" {
				fmt.Printf("%s %s: (not set)\n", meta.Icon, meta.Name)
				continue
			}
			fmt.Printf("%s %s: %s\n", meta.Icon, meta.Name, ace.Title)
			if len(ace.Metrics) > 0 {
				fmt.Printf("   metrics: %s\n", strings.Join(ace.Metrics, ", "))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(aceCmd)
	aceCmd.AddCommand(aceSetCmd, aceClearCmd, aceShowCmd)
	aceSetCmd.Flags().StringSliceVar(&aceMetrics, "metric", nil, "success metric (repeatable)")
}
