package models

// Time-of-day buckets, matched against a slot's start hour.
const (
	TimeOfDayMorning   = "morning"   // 06:00 - 12:00
	TimeOfDayAfternoon = "afternoon" // 12:00 - 18:00
	TimeOfDayEvening   = "evening"   // 18:00 - 06:00
)

// RankOptions narrows the provider set and shapes the ranking result.
type RankOptions struct {
	ServiceID          string   `json:"serviceId,omitempty"`
	CategoryID         string   `json:"categoryId,omitempty"`
	Date               string   `json:"date"` // "YYYY-MM-DD"
	TimeOfDay          string   `json:"timeOfDay,omitempty"`
	ClientID           string   `json:"clientId,omitempty"`
	PreferredProviders []string `json:"preferredProviders,omitempty"`
	MaxResults         int      `json:"maxResults,omitempty"`
}

// RankedProvider is a provider with its computed ranking breakdown.
type RankedProvider struct {
	ProviderID        string  `json:"providerId"`
	Name              string  `json:"name,omitempty"`
	Rating            float64 `json:"rating"`            // 0..5, average of reviews (3.0 neutral when none)
	AvailabilityScore float64 `json:"availabilityScore"` // 0..5
	QualityScore      float64 `json:"qualityScore"`      // 0..5, recency-weighted
	HistoryScore      float64 `json:"historyScore"`      // 0..2, client-specific
	TotalScore        float64 `json:"totalScore"`
	IsRecommended     bool    `json:"isRecommended"` // TotalScore >= 4
	AvailableSlots    []Slot  `json:"availableSlots"`
}

// DayAvailability is one entry of a best-availability-days scan.
type DayAvailability struct {
	Date           string  `json:"date"`
	AvailableSlots int     `json:"availableSlots"`
	Score          float64 `json:"score"`
}
