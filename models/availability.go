package models

// DefaultIntervalMinutes is the candidate-slot step size applied when a rule
// does not set its own.
const DefaultIntervalMinutes = 30

// AvailabilityRule is the declarative working-hours record a provider has
// configured. A rule is either recurring (DayOfWeek set, Date empty) or
// date-specific (Date set, e.g. "2025-02-25"). For a given date a
// date-specific rule supersedes the recurring rule for that weekday entirely;
// the two are never merged.
type AvailabilityRule struct {
	ID              string `bson:"id" json:"id"`
	ProviderID      string `bson:"providerId" json:"providerId"`
	DayOfWeek       int    `bson:"dayOfWeek" json:"dayOfWeek"`             // 0 (Sunday) .. 6 (Saturday); meaningful only when Date is empty
	Date            string `bson:"date,omitempty" json:"date,omitempty"`   // "YYYY-MM-DD" for date-specific overrides
	StartTime       string `bson:"startTime" json:"startTime"`             // "HH:MM"
	EndTime         string `bson:"endTime" json:"endTime"`                 // "HH:MM"
	IsAvailable     bool   `bson:"isAvailable" json:"isAvailable"`         // false rules are inert placeholders
	IntervalMinutes int    `bson:"intervalMinutes" json:"intervalMinutes"` // candidate-slot step size; 0 means DefaultIntervalMinutes
}

// Interval returns the rule's slot step size, falling back to the default.
func (r AvailabilityRule) Interval() int {
	if r.IntervalMinutes <= 0 {
		return DefaultIntervalMinutes
	}
	return r.IntervalMinutes
}
