// File: database/repository/blocked/interface.go
package blockedRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"agendo/database"
	"agendo/models"
)

// BlockedRepository reads manual calendar blocks.
type BlockedRepository interface {
	// GetByProviderAndDate returns date-specific blocks for the date plus
	// recurring blocks matching its weekday (0=Sunday .. 6=Saturday).
	GetByProviderAndDate(ctx context.Context, providerID, date string, dayOfWeek int) ([]models.BlockedPeriod, error)
}

type mongoBlockedRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockedRepo constructs a new MongoDB BlockedRepository.
func NewMongoBlockedRepo() BlockedRepository {
	db := database.MongoClient.Database("agendo")
	return &mongoBlockedRepo{
		coll: db.Collection("blocked_periods"),
	}
}
