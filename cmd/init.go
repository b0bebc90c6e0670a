/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var (
	initName string
	initRole string
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initializes a Solvent Deck in the data directory.",
	Long: `Creates the state file with a default document and records who the
deck belongs to. Safe to re-run: an existing deck is kept and only the
name and role are updated.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, s, err := loadState()
		if err != nil {
			return err
		}

		name := initName
		role := initRole
		if name == "" && !isQuiet() {
			prompt := promptui.Prompt{Label: "Your name", Default: st.User.Name}
			if v, err := prompt.Run(); err == nil {
				name = v
			}
		}
		if role == "" && !isQuiet() {
			prompt := promptui.Prompt{Label: "Your role (e.g. Lecturer, Engineer)", Default: st.User.Role}
			if v, err := prompt.Run(); err == nil {
				role = v
			}
		}
		if name != "" {
			st.User.Name = name
		}
		if role != "" {
			st.User.Role = role
		}
		if hours := GetConfig().Plan.WeeklyCapacityHours; hours > 0 {
			st.Settings.WeeklyCapacityHours = hours
		}

		if err := saveState(s, st); err != nil {
			return err
		}
		if isJSONOutput() {
			return printJSON(map[string]string{"state": GetStateFilePath(), "status": "initialized"})
		}
		if !isQuiet() {
			fmt.Printf("Deck initialized at %s\n", GetStateFilePath())
			fmt.Println("Next: set an identity goal with `solvent ace set <suit> <title>`.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initName, "name", "", "your name")
	initCmd.Flags().StringVar(&initRole, "role", "", "your role")
}
