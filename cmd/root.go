/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/josephgoksu/solventdeck/store"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// jsonOutput switches command output to machine-readable JSON.
	jsonOutput bool
	// quiet suppresses non-essential output.
	quiet bool
	// version is the application version.
	version = "0.1.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "solvent",
	Short: "Solvent Deck turns life goals into a weekly deck of cards.",
	Long: `Solvent Deck is a personal planning tool built on a playing-card metaphor.
Aces hold identity goals per life area, Kings and Queens hold strategic
projects, Jacks and Tens hold habits. Each week you draw a hand of cards,
generate a dated plan, and work through it day by day.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			_ = cmd.Help()
			os.Exit(0)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.solvent.yaml or ./.solvent.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output machine-readable JSON")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

// GetStateFilePath returns the full path to the state file
func GetStateFilePath() string {
	config := GetConfig()
	return filepath.Join(config.Data.Dir, config.Data.File)
}

// GetStore initializes and returns the state store using the unified types.AppConfig.
func GetStore() (store.StateStore, error) {
	s := store.NewFileStateStore()
	config := GetConfig()

	stateFilePath := GetStateFilePath()

	err := s.Initialize(map[string]string{
		"dataFile":       stateFilePath,
		"dataFileFormat": config.Data.Format,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store at %s: %w", stateFilePath, err)
	}
	return s, nil
}
