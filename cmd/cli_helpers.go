/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/josephgoksu/solventdeck/internal/dateutil"
	"github.com/josephgoksu/solventdeck/internal/history"
	"github.com/josephgoksu/solventdeck/models"
	"github.com/josephgoksu/solventdeck/store"
)

func isJSONOutput() bool { return viper.GetBool("json") }
func isQuiet() bool      { return viper.GetBool("quiet") }

// printJSON marshals v with indentation to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// loadState opens the store and loads the state document. A corrupt blob
// is reported as a warning and the returned defaults are used.
func loadState() (*models.State, store.StateStore, error) {
	s, err := GetStore()
	if err != nil {
		return nil, nil, err
	}
	st, err := s.Load()
	if err != nil {
		if errors.Is(err, store.ErrCorruptState) {
			if !isQuiet() {
				fmt.Fprintln(os.Stderr, "Warning: state file was unreadable, starting from defaults.")
			}
			LogVerbose(err.Error())
			return st, s, nil
		}
		_ = s.Close()
		return nil, nil, err
	}
	return st, s, nil
}

// saveState persists the state and closes the store.
func saveState(s store.StateStore, st *models.State) error {
	defer func() { _ = s.Close() }()
	if err := s.Save(st); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// openHistory opens the completion history log alongside the state file.
func openHistory() (*history.Log, error) {
	return history.Open(GetConfig().Data.Dir)
}

// undoWindow returns the configured undo window duration.
func undoWindow() time.Duration {
	secs := GetConfig().Plan.UndoWindowSeconds
	if secs <= 0 {
		secs = 5
	}
	return time.Duration(secs) * time.Second
}

// confirm asks a yes/no question. Without a terminal it refuses rather
// than assuming consent.
func confirm(label string) bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Refusing to proceed without confirmation (no terminal). Re-run with --yes.")
		return false
	}
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	_, err := prompt.Run()
	return err == nil
}

// parseDate validates a YYYY-MM-DD date argument.
func parseDate(arg string) (string, error) {
	if _, err := time.ParseInLocation(dateutil.Layout, arg, time.Local); err != nil {
		return "", fmt.Errorf("invalid date %q (use YYYY-MM-DD)", arg)
	}
	return arg, nil
}

// parseSuit resolves a suit argument, accepting any case.
func parseSuit(arg string) (models.Suit, error) {
	s := models.Suit(strings.ToLower(arg))
	if !models.ValidSuit(s) {
		return "", fmt.Errorf("unknown suit %q (use spades, clubs, hearts, or diamonds)", arg)
	}
	return s, nil
}

// parseCadence resolves a cadence argument.
func parseCadence(arg string) (models.Cadence, error) {
	switch strings.ToLower(arg) {
	case "daily":
		return models.CadenceDaily, nil
	case "2x", "twice":
		return models.CadenceTwiceWeekly, nil
	case "weekly":
		return models.CadenceWeekly, nil
	}
	return "", fmt.Errorf("unknown cadence %q (use daily, 2x, or weekly)", arg)
}
