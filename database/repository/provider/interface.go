// File: database/repository/provider/interface.go
package providerRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"agendo/database"
	"agendo/models"
)

// ProviderRepository resolves the eligible provider set for ranking.
type ProviderRepository interface {
	GetByID(ctx context.Context, providerID string) (*models.Provider, error)
	// GetActive returns all active providers.
	GetActive(ctx context.Context) ([]models.Provider, error)
	// GetByService returns active providers offering the service.
	GetByService(ctx context.Context, serviceID string) ([]models.Provider, error)
	// GetByCategory returns active providers in the category.
	GetByCategory(ctx context.Context, categoryID string) ([]models.Provider, error)
}

type mongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo constructs a new MongoDB ProviderRepository.
func NewMongoProviderRepo() ProviderRepository {
	db := database.MongoClient.Database("agendo")
	return &mongoProviderRepo{
		coll: db.Collection("providers"),
	}
}
