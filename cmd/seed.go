/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/josephgoksu/solventdeck/internal/dateutil"
	"github.com/josephgoksu/solventdeck/internal/deck"
	"github.com/josephgoksu/solventdeck/models"
)

var seedYes bool

func dueIn(days int) string {
	return dateutil.FormatLocal(dateutil.AddDays(time.Now(), days))
}

// seedState fills the goal layers with a worked example: a lecturer
// building an academic career, a healthy body, a family culture, and
// financial independence. Draw and plan are cleared.
func seedState(st *models.State) {
	st.Aces[models.SuitSpades] = &models.Ace{Title: "Lead solvency psychology as a field", Metrics: []string{"2 papers", "1 book", "5 talks"}}
	st.Aces[models.SuitClubs] = &models.Ace{Title: "Sustain a high-energy body", Metrics: []string{"7.5h sleep", "150 workouts/yr"}}
	st.Aces[models.SuitHearts] = &models.Ace{Title: "Build a solvent family culture", Metrics: []string{"weekly partner meeting"}}
	st.Aces[models.SuitDiamonds] = &models.Ace{Title: "Become financially sovereign creator", Metrics: []string{"30% savings", "12mo runway"}}

	st.Strategics[models.SuitSpades] = []models.Strategic{
		{Title: "Complete territoriality SLR and submit", Due: dueIn(120), Mins: 90},
		{Title: "Design and launch 'Solvent Career' course", Due: dueIn(180), Mins: 60},
	}
	st.Strategics[models.SuitClubs] = []models.Strategic{
		{Title: "Optimize sleep routine by June", Due: dueIn(130), Mins: 45},
		{Title: "Run comfortable 5k", Due: dueIn(160), Mins: 40},
	}
	st.Strategics[models.SuitHearts] = []models.Strategic{
		{Title: "Weekly partner meeting ritual", Due: dueIn(84), Mins: 45},
		{Title: "1:1 with each child weekly", Due: dueIn(84), Mins: 30},
	}
	st.Strategics[models.SuitDiamonds] = []models.Strategic{
		{Title: "Launch consulting offer by July", Due: dueIn(170), Mins: 60},
		{Title: "Grant pipeline setup", Due: dueIn(150), Mins: 50},
	}

	st.Habits[models.SuitSpades] = []models.Habit{
		{Title: "Write 300 words", Cadence: models.CadenceDaily, Duration: 25},
		{Title: "Two research sprints", Cadence: models.CadenceTwiceWeekly, Duration: 45},
		{Title: "Read one seminal paper", Cadence: models.CadenceWeekly, Duration: 30},
	}
	st.Habits[models.SuitClubs] = []models.Habit{
		{Title: "10k steps", Cadence: models.CadenceDaily, Duration: 40},
		{Title: "Protein at each meal", Cadence: models.CadenceDaily, Duration: 10},
		{Title: "Lights out 10pm", Cadence: models.CadenceDaily, Duration: 5},
	}
	st.Habits[models.SuitHearts] = []models.Habit{
		{Title: "Share three appreciations", Cadence: models.CadenceDaily, Duration: 10},
		{Title: "Weekly partner meeting", Cadence: models.CadenceWeekly, Duration: 45},
		{Title: "Call a mentor", Cadence: models.CadenceWeekly, Duration: 20},
	}
	st.Habits[models.SuitDiamonds] = []models.Habit{
		{Title: "Track daily expenses", Cadence: models.CadenceDaily, Duration: 8},
		{Title: "DCA invest", Cadence: models.CadenceWeekly, Duration: 15},
		{Title: "Review budget", Cadence: models.CadenceWeekly, Duration: 20},
	}

	st.Draw = models.Draw{Selected: []string{}}
	st.Plan = models.Plan{Tasks: []models.Task{}}
	deck.Rebuild(st)
}

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the deck with a worked example (overwrites goals).",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, s, err := loadState()
		if err != nil {
			return err
		}
		hasGoals := false
		for _, suit := range models.Suits() {
			if st.Aces[suit].Title != "" || len(st.Habits[suit]) > 0 {
				hasGoals = true
				break
			}
		}
		if hasGoals && !seedYes && !confirm("Overwrite existing goals with example data") {
			_ = s.Close()
			fmt.Println("Seed cancelled.")
			return nil
		}
		seedState(st)
		if err := saveState(s, st); err != nil {
			return err
		}
		if !isQuiet() && !isJSONOutput() {
			fmt.Printf("Seeded example goals (%d cards). Try `solvent draw`.\n", len(st.Deck))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().BoolVar(&seedYes, "yes", false, "skip the confirmation prompt")
}
