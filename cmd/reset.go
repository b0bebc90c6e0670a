/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	resetYes    bool
	resetBackup string
)

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Resets Solvent Deck by removing its data directory.",
	Long: `Resets the deck to factory settings. This removes the data directory
(state file, checksum, and completion history). Configuration files
outside the data directory are not touched. Run 'solvent init' to start
over.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir := GetConfig().Data.Dir
		if _, err := os.Stat(dataDir); os.IsNotExist(err) {
			fmt.Printf("No deck found at '%s' to reset. Nothing to do.\n", dataDir)
			return nil
		}

		if !resetYes {
			fmt.Printf("The following directory and all its contents will be PERMANENTLY DELETED:\n- %s\n\n", dataDir)
			fmt.Println("This includes your goals, deck, draw, plan, and completion history.")
			if !confirm("Reset Solvent Deck to factory settings") {
				fmt.Println("Reset cancelled.")
				return nil
			}
		}

		if resetBackup != "" {
			s, err := GetStore()
			if err != nil {
				return err
			}
			err = s.Backup(resetBackup)
			_ = s.Close()
			if err != nil {
				return fmt.Errorf("backup before reset failed: %w", err)
			}
			if !isQuiet() {
				fmt.Printf("State file backed up to %s.\n", resetBackup)
			}
		}

		if err := os.RemoveAll(dataDir); err != nil {
			return fmt.Errorf("failed to remove data directory %s: %w", dataDir, err)
		}
		if !isQuiet() {
			fmt.Printf("Removed %s. Run `solvent init` to start over.\n", dataDir)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "skip the confirmation prompt")
	resetCmd.Flags().StringVar(&resetBackup, "backup", "", "copy the state file to this path before deleting")
}
