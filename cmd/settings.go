/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/josephgoksu/solventdeck/models"
)

// settingsCmd represents the settings command group
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change deck settings.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, s, err := loadState()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()
		if isJSONOutput() {
			return printJSON(map[string]interface{}{"user": st.User, "settings": st.Settings})
		}
		fmt.Printf("Name:                  %s\n", st.User.Name)
		fmt.Printf("Role:                  %s\n", st.User.Role)
		fmt.Printf("Weekly capacity hours: %d\n", st.Settings.WeeklyCapacityHours)
		return nil
	},
}

var settingsCapacityCmd = &cobra.Command{
	Use:   "capacity <hours>",
	Short: "Set the weekly capacity in hours (1-80).",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hours, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("hours must be a number, got %q", args[0])
		}
		st, s, err := loadState()
		if err != nil {
			return err
		}
		st.Settings.WeeklyCapacityHours = hours
		if err := models.ValidateStruct(&st.Settings); err != nil {
			_ = s.Close()
			return fmt.Errorf("invalid capacity: %w", err)
		}
		if err := saveState(s, st); err != nil {
			return err
		}
		if !isQuiet() && !isJSONOutput() {
			fmt.Printf("Weekly capacity set to %dh.\n", hours)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsCapacityCmd)
}
