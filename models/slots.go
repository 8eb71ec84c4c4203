package models

// TimeRange is a half-open interval of minutes from midnight: [Start, End).
// It represents a working window, a free block, or a candidate slot.
type TimeRange struct {
	Start int `bson:"start" json:"start"` // minutes from midnight (e.g., 480 for 8:00 AM)
	End   int `bson:"end" json:"end"`     // minutes from midnight, always > Start
}

// Length returns the range length in minutes.
func (r TimeRange) Length() int {
	return r.End - r.Start
}

// Overlaps reports whether two ranges truly intersect. Ranges that only
// touch at a boundary (one ends where the other starts) do not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start < other.End && r.End > other.Start
}

// PeriodKind tags the origin of an occupied period.
type PeriodKind string

const (
	PeriodAppointment PeriodKind = "appointment"
	PeriodBlock       PeriodKind = "block"
)

// OccupiedPeriod is a time range unavailable for new bookings. Periods may
// overlap each other; the free-block calculator merges them.
type OccupiedPeriod struct {
	Start  int        `bson:"start" json:"start"`
	End    int        `bson:"end" json:"end"`
	Kind   PeriodKind `bson:"kind" json:"kind"`
	Reason string     `bson:"reason,omitempty" json:"reason,omitempty"` // only set for manual blocks
}

// Slot is a candidate bookable range of exactly the requested service duration.
// Entries with IsAvailable=false represent declared blocks so a client can
// render "blocked" distinctly from "bookable".
type Slot struct {
	StartTime       string `json:"startTime"` // "HH:MM"
	EndTime         string `json:"endTime"`   // "HH:MM"
	IsAvailable     bool   `json:"isAvailable"`
	ServiceDuration int    `json:"serviceDuration"` // minutes; EndTime-StartTime == ServiceDuration for bookable slots
	Reason          string `json:"reason,omitempty"`
}
