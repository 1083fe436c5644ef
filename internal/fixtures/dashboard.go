// Package fixtures produces the canned analytics payloads the dashboard
// consumes during development. The numbers are stable on purpose so frontend
// snapshots do not churn.
package fixtures

type Platform struct {
	ID      string `json:"id"`
	LogoURL string `json:"logoUrl"`
}

type DashboardOverview struct {
	Prompts   int        `json:"prompts"`
	Responses int        `json:"responses"`
	Platforms []Platform `json:"platforms"`
}

type CompetitorPresence struct {
	Key            string  `json:"Key"`
	IsCompetitor   bool    `json:"IsCompetitor"`
	Presence7Days  float64 `json:"presence7Days"`
	Presence4Weeks float64 `json:"presence4Weeks"`
	Presence12Wks  float64 `json:"presence12Weeks"`
}

type PositionEntry struct {
	Period  string `json:"period"`
	Top     int    `json:"top"`
	Middle  int    `json:"middle"`
	Bottom  int    `json:"bottom"`
	Total   int    `json:"total"`
	Missing *int   `json:"missing"`
}

type PresenceEntry struct {
	Period            string  `json:"period"`
	TotalResponses    int     `json:"total_responses"`
	PresentCount      int     `json:"present_count"`
	PresentPercentage float64 `json:"present_percentage"`
}

type CitationEntry struct {
	Period                 string  `json:"period"`
	TotalResponses         int     `json:"total_responses"`
	TotalSources           int     `json:"total_sources"`
	BrandSourceCount       int     `json:"brand_source_count"`
	CompetitorSourceCount  int     `json:"competitor_source_count"`
	ThirdPartySources      int     `json:"third_party_sources"`
	BrandPercentage        float64 `json:"brand_percentage"`
	CompetitorPercentage   float64 `json:"competitor_percentage"`
	ThirdPartyPercentage   float64 `json:"third_party_percentage"`
}

func Overview() DashboardOverview {
	return DashboardOverview{
		Prompts:   325,
		Responses: 6463,
		Platforms: []Platform{
			{ID: "chat-gpt", LogoURL: "https://example.com/logo1.png"},
			{ID: "bard", LogoURL: "https://example.com/logo2.png"},
		},
	}
}

func CompetitorPresences() []CompetitorPresence {
	return []CompetitorPresence{
		{Key: "CompetitorA", IsCompetitor: true, Presence7Days: 12, Presence4Weeks: 47, Presence12Wks: 67},
		{Key: "CompetitorB", IsCompetitor: true, Presence7Days: 23, Presence4Weeks: 67, Presence12Wks: 88},
		{Key: "CompetitorC", IsCompetitor: false, Presence7Days: 23, Presence4Weeks: 67, Presence12Wks: 88},
		{Key: "CompetitorD", IsCompetitor: true, Presence7Days: 23, Presence4Weeks: 67, Presence12Wks: 88},
		{Key: "CompetitorE", IsCompetitor: true, Presence7Days: 23, Presence4Weeks: 67, Presence12Wks: 88},
	}
}

func Positions() []PositionEntry {
	zero := 0
	return []PositionEntry{
		{Period: "2025-07-01", Top: 40, Middle: 50, Bottom: 10, Total: 100, Missing: &zero},
		{Period: "2025-09-23", Top: 49, Middle: 46, Bottom: 5, Total: 100, Missing: &zero},
	}
}

func Presences() []PresenceEntry {
	return []PresenceEntry{
		{Period: "2025-07-30", TotalResponses: 100, PresentCount: 70, PresentPercentage: 70},
		{Period: "2025-07-30", TotalResponses: 200, PresentCount: 50, PresentPercentage: 25},
	}
}

func Citations() []CitationEntry {
	return []CitationEntry{
		{
			Period: "2025-07-30", TotalResponses: 140, TotalSources: 1400,
			BrandSourceCount: 600, CompetitorSourceCount: 200, ThirdPartySources: 600,
			BrandPercentage: 20, CompetitorPercentage: 40, ThirdPartyPercentage: 40,
		},
		{
			Period: "2025-08-07", TotalResponses: 140, TotalSources: 1400,
			BrandSourceCount: 600, CompetitorSourceCount: 200, ThirdPartySources: 600,
			BrandPercentage: 40, CompetitorPercentage: 20, ThirdPartyPercentage: 40,
		},
		{
			Period: "2025-08-14", TotalResponses: 140, TotalSources: 1400,
			BrandSourceCount: 600, CompetitorSourceCount: 200, ThirdPartySources: 600,
			BrandPercentage: 60, CompetitorPercentage: 30, ThirdPartyPercentage: 10,
		},
		{
			Period: "2025-08-21", TotalResponses: 140, TotalSources: 1400,
			BrandSourceCount: 600, CompetitorSourceCount: 200, ThirdPartySources: 600,
			BrandPercentage: 29, CompetitorPercentage: 11, ThirdPartyPercentage: 60,
		},
	}
}
