package fixtures

import "brandscope/api/internal/models"

type SeedPrompt struct {
	ID          int            `json:"id"`
	Status      string         `json:"status"`
	Text        string         `json:"text"`
	Favorite    bool           `json:"favorite"`
	Branded     bool           `json:"branded"`
	Persona     models.Persona `json:"persona"`
	Category    string         `json:"category"`
	Topics      []models.Topic `json:"topics"`
	Tags        []string       `json:"tags"`
	LastUpdated string         `json:"last_updated"`
	CreatedAt   string         `json:"created_at"`
	Platforms   []string       `json:"platforms"`
}

type Observation struct {
	ID               int        `json:"id"`
	SeedPrompt       SeedPrompt `json:"seed_prompt"`
	Platform         string     `json:"platform"`
	ObservationCount int        `json:"observation_count"`
	CreatedAt        string     `json:"created_at"`
	UpdatedAt        string     `json:"updated_at"`
}

type ObservationsPage struct {
	Total        int           `json:"total"`
	Offset       int           `json:"offset"`
	Limit        *int          `json:"limit"`
	Observations []Observation `json:"observations"`
}

var (
	promptTexts = []string{
		"What are the best no-code platforms for integrating data from multiple sources?",
		"How do you ensure data quality in modern ETL pipelines?",
		"Top strategies for multi-cloud data warehousing.",
		"Key considerations for GDPR compliance in data processing.",
		"Biggest trends in AI-powered analytics for 2025.",
	}
	personaNames = []string{
		"Data-Driven Business Analyst",
		"Cloud Architect",
		"Compliance Officer",
		"AI Product Manager",
		"BI Analyst",
	}
	categories   = []string{"Option Generation", "QA", "Strategy", "Compliance", "Forecasting"}
	platformList = []string{"chatgpt", "meta", "perplexity", "claude", "google-ai"}
)

const fixtureTimestamp = "2025-07-31T13:23:51.585608Z"

// Observations builds the deterministic demo dataset: five seed prompts,
// each observed on two platforms, then applies offset/limit slicing.
// A nil limit means "to the end".
func Observations(offset int, limit *int) ObservationsPage {
	observations := make([]Observation, 0, 10)
	for i := 0; i < 5; i++ {
		prompt := makeSeedPrompt(131000+i, i)
		for j := 0; j < 2; j++ {
			observations = append(observations, Observation{
				ID:               513800 + (i*2 + j),
				SeedPrompt:       prompt,
				Platform:         platformList[(i+j)%len(platformList)],
				ObservationCount: 10 + i*5 + j,
				CreatedAt:        fixtureTimestamp,
				UpdatedAt:        fixtureTimestamp,
			})
		}
	}

	total := len(observations)
	start := offset
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end := total
	if limit != nil {
		end = start + *limit
		if end > total {
			end = total
		}
		if end < start {
			end = start
		}
	}

	return ObservationsPage{
		Total:        total,
		Offset:       offset,
		Limit:        limit,
		Observations: observations[start:end],
	}
}

func makeSeedPrompt(id, idx int) SeedPrompt {
	name := personaNames[idx%len(personaNames)]
	return SeedPrompt{
		ID:       id,
		Status:   "active",
		Text:     promptTexts[idx%len(promptTexts)],
		Favorite: idx%2 == 1,
		Branded:  false,
		Persona: models.Persona{
			ID:          6500 + idx,
			Name:        name,
			Description: "Persona: " + name,
		},
		Category: categories[idx%len(categories)],
		Topics: []models.Topic{
			{ID: 10000 + idx, Name: "General Data"},
			{ID: 10001 + idx, Name: "Best Practices"},
			{ID: 10002 + idx, Name: "Trends 2025"},
		},
		Tags:        []string{"tag1", "tag2"},
		LastUpdated: fixtureTimestamp,
		CreatedAt:   "2025-07-30T22:13:51.585608Z",
		Platforms:   platformList,
	}
}
