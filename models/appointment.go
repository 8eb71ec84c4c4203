package models

import "time"

// Appointment status values. Only pending and confirmed appointments occupy
// provider time; cancelled and completed ones never block a slot.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
	AppointmentCompleted = "completed"
)

// Appointment is a booking record as consumed by the availability core. It is
// owned and mutated exclusively by the external CRUD layer; this service only
// reads it.
type Appointment struct {
	ID         string    `bson:"id" json:"id"`
	ProviderID string    `bson:"providerId" json:"providerId"`
	ClientID   string    `bson:"clientId" json:"clientId"`
	ServiceID  string    `bson:"serviceId,omitempty" json:"serviceId,omitempty"`
	Date       string    `bson:"date" json:"date"`           // "YYYY-MM-DD"
	StartTime  string    `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime    string    `bson:"endTime" json:"endTime"`     // "HH:MM"
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// Occupies reports whether the appointment counts as occupying time.
func (a Appointment) Occupies() bool {
	return a.Status == AppointmentPending || a.Status == AppointmentConfirmed
}
