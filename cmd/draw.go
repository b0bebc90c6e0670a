/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/josephgoksu/solventdeck/internal/deck"
	"github.com/josephgoksu/solventdeck/internal/draw"
	"github.com/josephgoksu/solventdeck/internal/ui"
)

var (
	drawCount   int
	drawBalance bool
)

// drawCmd represents the draw command
var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw this week's hand of cards.",
	Long: `Selects 3 to 5 cards at random from the non-Ace pool for the current
week. With balance on (the default), the draw first tries to cover each
suit that has any cards before filling the rest. Drawing again replaces
the previous hand.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, s, err := loadState()
		if err != nil {
			return err
		}

		count := drawCount
		if !cmd.Flags().Changed("count") {
			if c := GetConfig().Draw.Count; c != 0 {
				count = c
			}
		}
		balance := drawBalance
		if !cmd.Flags().Changed("balance") {
			balance = GetConfig().Draw.EnsureBalance
		}

		cards := deck.Rebuild(st)
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		d, err := draw.Weekly(cards, count, balance, rng, time.Now())
		if err != nil {
			_ = s.Close()
			if errors.Is(err, draw.ErrEmptyPool) {
				return fmt.Errorf("nothing to draw: add strategic projects or habits first")
			}
			return err
		}
		st.Draw = d
		if err := saveState(s, st); err != nil {
			return err
		}
		if isJSONOutput() {
			return printJSON(d)
		}
		fmt.Print(ui.RenderDraw(st))
		if !isQuiet() {
			fmt.Println("Generate the week's plan with `solvent plan generate`.")
		}
		return nil
	},
}

var drawShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current weekly hand without redrawing.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, s, err := loadState()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()
		if isJSONOutput() {
			return printJSON(st.Draw)
		}
		fmt.Print(ui.RenderDraw(st))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(drawCmd)
	drawCmd.AddCommand(drawShowCmd)
	drawCmd.Flags().IntVar(&drawCount, "count", 4, "number of cards to draw (3-5)")
	drawCmd.Flags().BoolVar(&drawBalance, "balance", true, "cover each suit before filling")
}
