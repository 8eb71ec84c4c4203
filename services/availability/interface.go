package availability

import (
	"context"

	"agendo/models"
)

// AvailabilityService answers "which windows of length D are free for
// provider P on date X". It owns the per-provider lock registry and the slot
// cache; everything else is read from the storage repositories per request.
type AvailabilityService interface {
	// GenerateSlots computes the prioritized bookable slots of the given
	// duration (minutes) for a provider on a date ("YYYY-MM-DD"), plus
	// isAvailable=false entries for declared blocks.
	GenerateSlots(ctx context.Context, providerID, date string, duration int) ([]models.Slot, error)
	// FindBestAvailabilityDays scans the next daysToCheck days and returns
	// the ones with at least one bookable slot, best days first.
	FindBestAvailabilityDays(ctx context.Context, providerID, serviceID string, daysToCheck int) ([]models.DayAvailability, error)
}
