package models

// Service is a bookable service definition (e.g., "haircut", "oil change").
type Service struct {
	ID              string `bson:"id" json:"id"`
	CategoryID      string `bson:"categoryId" json:"categoryId"`
	Name            string `bson:"name" json:"name"`
	DurationMinutes int    `bson:"durationMinutes" json:"durationMinutes"` // default execution time
	Active          bool   `bson:"active" json:"active"`
}

// ProviderService links a provider to a service it offers, optionally with a
// custom execution time that overrides the service default.
type ProviderService struct {
	ID               string `bson:"id" json:"id"`
	ProviderID       string `bson:"providerId" json:"providerId"`
	ServiceID        string `bson:"serviceId" json:"serviceId"`
	ExecutionMinutes int    `bson:"executionMinutes,omitempty" json:"executionMinutes,omitempty"` // 0 means use the service default
	Active           bool   `bson:"active" json:"active"`
}

// EffectiveDuration resolves the duration to book: the provider's custom
// execution time when set, otherwise the service default.
func EffectiveDuration(svc Service, ps *ProviderService) int {
	if ps != nil && ps.ExecutionMinutes > 0 {
		return ps.ExecutionMinutes
	}
	return svc.DurationMinutes
}
