package models

import "time"

// BlockedPeriod is a manual block on a provider's calendar. Blocks always
// occupy time, independent of any appointment status.
type BlockedPeriod struct {
	ID         string    `bson:"id" json:"id"`
	ProviderID string    `bson:"providerId" json:"providerId"`
	Date       string    `bson:"date,omitempty" json:"date,omitempty"` // empty for recurring blocks
	DayOfWeek  int       `bson:"dayOfWeek,omitempty" json:"dayOfWeek,omitempty"`
	Recurring  bool      `bson:"recurring" json:"recurring"`
	StartTime  string    `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime    string    `bson:"endTime" json:"endTime"`     // "HH:MM"
	Reason     string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
