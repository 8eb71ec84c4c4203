// File: database/repository/service/interface.go
package serviceRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"agendo/database"
	"agendo/models"
)

// ServiceRepository resolves services and provider-specific overrides, used
// to compute the effective booking duration.
type ServiceRepository interface {
	GetService(ctx context.Context, serviceID string) (*models.Service, error)
	// GetProviderService returns the provider's link record for a service,
	// or nil when the provider has no custom configuration for it.
	GetProviderService(ctx context.Context, providerID, serviceID string) (*models.ProviderService, error)
}

type mongoServiceRepo struct {
	services         *mongo.Collection
	providerServices *mongo.Collection
}

// NewMongoServiceRepo constructs a new MongoDB ServiceRepository.
func NewMongoServiceRepo() ServiceRepository {
	db := database.MongoClient.Database("agendo")
	return &mongoServiceRepo{
		services:         db.Collection("services"),
		providerServices: db.Collection("provider_services"),
	}
}
