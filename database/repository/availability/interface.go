// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"agendo/database"
	"agendo/models"
)

// AvailabilityRepository reads provider working-hours rules. Rules are owned
// by the external admin CRUD layer; this core never writes them.
type AvailabilityRepository interface {
	// GetByProviderAndDate returns the date-specific rule for a calendar
	// date, or nil when none exists.
	GetByProviderAndDate(ctx context.Context, providerID, date string) (*models.AvailabilityRule, error)
	// GetByProviderAndDay returns the recurring rule for a weekday
	// (0=Sunday .. 6=Saturday), or nil when none exists.
	GetByProviderAndDay(ctx context.Context, providerID string, dayOfWeek int) (*models.AvailabilityRule, error)
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database("agendo")
	return &mongoAvailabilityRepo{
		coll: db.Collection("availability_rules"),
	}
}
