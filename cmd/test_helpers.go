package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/josephgoksu/solventdeck/models"
)

// resetFlags restores every flag in the command tree to its default so
// one test's flags cannot leak into the next Execute call.
func resetFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// setupTestDeck points the app at a temporary data directory and returns
// it. Config is re-initialized so GetStore resolves inside the temp dir.
func setupTestDeck(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("SOLVENT_DATA_DIR", dir)
	resetFlags(rootCmd)

	cfg := GetConfig()
	cfg.Data.Dir = dir
	cfg.Data.File = "solvent.json"
	cfg.Data.Format = "json"
	cfg.Draw.Count = 4
	cfg.Draw.EnsureBalance = true
	cfg.Plan.WeeklyCapacityHours = 8
	cfg.Plan.UndoWindowSeconds = 5

	return dir
}

// runCmd executes the root command with the given args.
func runCmd(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// readTestState loads the state file directly through the store.
func readTestState(t *testing.T) *models.State {
	t.Helper()
	s, err := GetStore()
	require.NoError(t, err)
	defer func() { _ = s.Close() }()
	st, err := s.Load()
	require.NoError(t, err)
	return st
}

// writeTestState persists a state document through the store.
func writeTestState(t *testing.T, st *models.State) {
	t.Helper()
	s, err := GetStore()
	require.NoError(t, err)
	defer func() { _ = s.Close() }()
	require.NoError(t, s.Save(st))
}
