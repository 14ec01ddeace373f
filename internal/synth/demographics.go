package synth

// Fixed axes of the demographics table.
var (
	AgeGroups = []string{"18-30", "31-45", "46-60", "61-75", "76+"}
	Outcomes  = []string{"Discharged", "Transferred", "ICU Stay"}
)

const (
	countMin = 10
	countMax = 100
)

// DemographicRow is one (age group, outcome) cell with its patient count.
type DemographicRow struct {
	AgeGroup string
	Outcome  string
	Count    int
}

// Demographics draws one row per (age group, outcome) combination, in fixed
// row order, with counts in [countMin, countMax).
func (s *Synthesizer) Demographics() []DemographicRow {
	rows := make([]DemographicRow, 0, len(AgeGroups)*len(Outcomes))
	for _, age := range AgeGroups {
		for _, outcome := range Outcomes {
			rows = append(rows, DemographicRow{
				AgeGroup: age,
				Outcome:  outcome,
				Count:    countMin + s.rng.Intn(countMax-countMin),
			})
		}
	}
	return rows
}
