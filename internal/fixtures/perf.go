package fixtures

type PerfCompetitor struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type PerfCompetitorGroup struct {
	Competitors      []PerfCompetitor `json:"competitors"`
	ObservationCount int              `json:"observation_count"`
}

// PromptCompetitorPerf is keyed by observation id.
func PromptCompetitorPerf() map[string]PerfCompetitorGroup {
	return map[string]PerfCompetitorGroup{
		"513800": {
			Competitors: []PerfCompetitor{
				{Name: "Fivetran", Count: 26},
				{Name: "Matillion", Count: 24},
				{Name: "Airbyte", Count: 16},
				{Name: "Talend", Count: 8},
				{Name: "Stitch", Count: 2},
			},
			ObservationCount: 27,
		},
		"513803": {
			Competitors: []PerfCompetitor{
				{Name: "Talend", Count: 27},
				{Name: "Fivetran", Count: 27},
				{Name: "Matillion", Count: 27},
				{Name: "Airbyte", Count: 14},
				{Name: "Stitch", Count: 12},
			},
			ObservationCount: 27,
		},
	}
}
