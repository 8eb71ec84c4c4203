// File: database/repository/review/interface.go
package reviewRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"agendo/database"
	"agendo/models"
)

// ReviewRepository reads client ratings for the ranking engine.
type ReviewRepository interface {
	GetByProvider(ctx context.Context, providerID string) ([]models.Review, error)
}

type mongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo constructs a new MongoDB ReviewRepository.
func NewMongoReviewRepo() ReviewRepository {
	db := database.MongoClient.Database("agendo")
	return &mongoReviewRepo{
		coll: db.Collection("reviews"),
	}
}
