package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/josephgoksu/solventdeck/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, format string) *FileStateStore {
	t.Helper()
	s := NewFileStateStore()
	cfg := map[string]string{
		dataFileKey: filepath.Join(t.TempDir(), "solvent."+format),
	}
	if format != "" {
		cfg[dataFileFormatKey] = format
	}
	require.NoError(t, s.Initialize(cfg))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleState() *models.State {
	st := models.DefaultState()
	st.User = models.User{Name: "Momo", Role: "Lecturer"}
	st.Aces[models.SuitSpades] = &models.Ace{Title: "Lead the field", Metrics: []string{"2 papers", "1 book"}}
	st.Strategics[models.SuitClubs][0] = models.Strategic{Title: "Run a 5k", Due: "2024-06-01", Mins: 40}
	st.Habits[models.SuitHearts] = []models.Habit{{Title: "Call a mentor", Cadence: models.CadenceWeekly, Duration: 20}}
	st.Draw = models.Draw{WeekStart: "2024-01-01", Selected: []string{"K-clubs", "H-hearts-0"}}
	st.Plan = models.Plan{WeekStart: "2024-01-01", Tasks: []models.Task{
		{ID: "t-K-clubs-WED", CardID: "K-clubs", Date: "2024-01-03", Title: "Run a 5k — milestone",
			Suit: models.SuitClubs, Rank: models.RankKing, Duration: 40, Status: models.StatusPlanned},
	}}
	return st
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, format := range []string{"json", "yaml", "toml"} {
		t.Run(format, func(t *testing.T) {
			s := newStore(t, format)
			require.NoError(t, s.Save(sampleState()))

			loaded, err := s.Load()
			require.NoError(t, err)
			assert.Equal(t, "Momo", loaded.User.Name)
			assert.Equal(t, "Lead the field", loaded.Aces[models.SuitSpades].Title)
			assert.Equal(t, []string{"K-clubs", "H-hearts-0"}, loaded.Draw.Selected)
			require.Len(t, loaded.Plan.Tasks, 1)
			assert.Equal(t, "t-K-clubs-WED", loaded.Plan.Tasks[0].ID)
			assert.Equal(t, models.CurrentSchemaVersion, loaded.SchemaVersion)
		})
	}
}

func TestLoad_AbsentFileYieldsDefaults(t *testing.T) {
	s := newStore(t, "json")
	st, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 8, st.Settings.WeeklyCapacityHours)
	assert.Empty(t, st.Plan.Tasks)
	for _, suit := range models.Suits() {
		assert.NotNil(t, st.Aces[suit])
		assert.Len(t, st.Strategics[suit], models.StrategicSlots)
	}
}

func TestLoad_CorruptBlobRecoversWithDefaults(t *testing.T) {
	s := newStore(t, "json")
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o644))

	st, err := s.Load()
	assert.ErrorIs(t, err, ErrCorruptState)
	require.NotNil(t, st, "defaults are still returned alongside the warning")
	assert.Equal(t, 8, st.Settings.WeeklyCapacityHours)
}

func TestLoad_ChecksumMismatch(t *testing.T) {
	s := newStore(t, "json")
	require.NoError(t, s.Save(sampleState()))

	// Tamper with the data file without touching the checksum sidecar.
	require.NoError(t, os.WriteFile(s.Path(), []byte(`{"schemaVersion":1}`), 0o644))

	st, err := s.Load()
	assert.ErrorIs(t, err, ErrCorruptState)
	assert.NotNil(t, st)
}

func TestLoad_ForwardCompatiblePartialBlob(t *testing.T) {
	s := newStore(t, "json")
	// Older blob: no schemaVersion, unknown field, missing collections.
	blob := `{"user":{"name":"Momo"},"futureField":true,"plan":{"weekStart":"2024-01-01","tasks":[]}}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(blob), 0o644))

	st, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "Momo", st.User.Name)
	assert.Equal(t, models.CurrentSchemaVersion, st.SchemaVersion)
	for _, suit := range models.Suits() {
		assert.Len(t, st.Strategics[suit], models.StrategicSlots, "missing suits filled in")
	}
}

func TestSave_Overwrites(t *testing.T) {
	s := newStore(t, "json")
	require.NoError(t, s.Save(sampleState()))

	st2 := models.DefaultState()
	st2.User.Name = "Second"
	require.NoError(t, s.Save(st2))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "Second", loaded.User.Name)
	assert.Empty(t, loaded.Plan.Tasks)
}

func TestInitialize_RejectsUnknownFormat(t *testing.T) {
	s := NewFileStateStore()
	err := s.Initialize(map[string]string{dataFileFormatKey: "xml"})
	assert.Error(t, err)
}

func TestBackup(t *testing.T) {
	s := newStore(t, "json")
	require.NoError(t, s.Save(sampleState()))

	dest := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, s.Backup(dest))

	original, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	copied, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, original, copied)
}
