package providerRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"agendo/models"
)

func (r *mongoProviderRepo) GetByID(ctx context.Context, providerID string) (*models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p models.Provider
	err := r.coll.FindOne(ctx, bson.M{"id": providerID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *mongoProviderRepo) GetActive(ctx context.Context) ([]models.Provider, error) {
	return r.find(ctx, bson.M{"type": "provider", "active": true})
}

func (r *mongoProviderRepo) GetByService(ctx context.Context, serviceID string) ([]models.Provider, error) {
	return r.find(ctx, bson.M{"type": "provider", "active": true, "serviceIds": serviceID})
}

func (r *mongoProviderRepo) GetByCategory(ctx context.Context, categoryID string) ([]models.Provider, error) {
	return r.find(ctx, bson.M{"type": "provider", "active": true, "categoryId": categoryID})
}

func (r *mongoProviderRepo) find(ctx context.Context, filter bson.M) ([]models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var providers []models.Provider
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}
