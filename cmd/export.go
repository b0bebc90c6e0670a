/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/josephgoksu/solventdeck/models"
)

var exportOutput string

// exportFs is swappable for tests.
var exportFs = afero.NewOsFs()

// exportDocument is the wire shape of an export: the state under a
// single "state" key, so future exports can grow siblings (history,
// settings snapshots) without breaking readers.
type exportDocument struct {
	State *models.State `json:"state"`
}

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full state document as JSON.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, s, err := loadState()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		doc := exportDocument{State: st}
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal export: %w", err)
		}
		data = append(data, '\n')

		if exportOutput == "" || exportOutput == "-" {
			_, err = os.Stdout.Write(data)
			return err
		}
		if err := afero.WriteFile(exportFs, exportOutput, data, 0o644); err != nil {
			return fmt.Errorf("write export to %s: %w", exportOutput, err)
		}
		if !isQuiet() {
			fmt.Printf("Exported state to %s\n", exportOutput)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
}
