package models

import "time"

// Provider is the minimal provider view the availability and ranking core
// reads. Profile management lives in the external user service.
type Provider struct {
	ID         string   `bson:"id" json:"id"`
	Name       string   `bson:"name" json:"name,omitempty"`
	Type       string   `bson:"type" json:"type"` // always "provider" for ranked records
	Status     string   `bson:"status" json:"status,omitempty"`
	Active     bool     `bson:"active" json:"active"`
	ServiceIDs []string `bson:"serviceIds,omitempty" json:"serviceIds,omitempty"`
	CategoryID string   `bson:"categoryId,omitempty" json:"categoryId,omitempty"`
}

// Review is a client rating of a completed appointment.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	ProviderID string    `bson:"providerId" json:"providerId"`
	ClientID   string    `bson:"clientId" json:"clientId"`
	Rating     float64   `bson:"rating" json:"rating"` // 1..5
	Comment    string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
