/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/josephgoksu/solventdeck/internal/deck"
	"github.com/josephgoksu/solventdeck/internal/ui"
)

// deckCmd represents the deck command
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Show the current deck derived from your goals.",
	Long: `The deck is derived from your goals: an Ace per suit with an identity
goal, a King and Queen per filled strategic slot, a Jack and Tens for
habits. Cards are never stored independently; editing goals changes the
deck on the next rebuild.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, s, err := loadState()
		if err != nil {
			return err
		}
		cards := deck.Rebuild(st)
		if err := saveState(s, st); err != nil {
			return err
		}
		if isJSONOutput() {
			return printJSON(cards)
		}
		fmt.Print(ui.RenderDeck(cards))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deckCmd)
}
