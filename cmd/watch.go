/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/josephgoksu/solventdeck/internal/ui"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render the week board whenever the state file changes.",
	Long: `Watches the data directory and redraws the week board after each
change to the state file. Useful in a side terminal while mutating the
plan from another one. Stop with Ctrl+C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("create watcher: %w", err)
		}
		defer func() { _ = watcher.Close() }()

		// Watch the directory, not the file: atomic saves rename a temp
		// file into place, which drops a direct file watch.
		dataDir := GetConfig().Data.Dir
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return err
		}
		if err := watcher.Add(dataDir); err != nil {
			return fmt.Errorf("watch %s: %w", dataDir, err)
		}

		stateFile := filepath.Base(GetStateFilePath())
		render := func() error {
			st, s, err := loadState()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()
			fmt.Print("\033[H\033[2J") // clear screen
			fmt.Print(ui.RenderBoard(st, time.Now()))
			return nil
		}
		if err := render(); err != nil {
			return err
		}

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		// Debounce: a save touches the data file and its checksum in
		// quick succession.
		var pending *time.Timer
		redraw := make(chan struct{}, 1)

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Base(event.Name) != stateFile {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if pending != nil {
					pending.Stop()
				}
				pending = time.AfterFunc(200*time.Millisecond, func() {
					select {
					case redraw <- struct{}{}:
					default:
					}
				})
			case <-redraw:
				if err := render(); err != nil {
					PrintError("Failed to re-render board.", err)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				PrintError("Watcher error.", err)
			case <-sig:
				return nil
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
