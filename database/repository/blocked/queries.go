package blockedRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"agendo/models"
)

func (r *mongoBlockedRepo) GetByProviderAndDate(ctx context.Context, providerID, date string, dayOfWeek int) ([]models.BlockedPeriod, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"providerId": providerID,
		"$or": []bson.M{
			{"date": date},
			{"recurring": true, "dayOfWeek": dayOfWeek},
		},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var blocks []models.BlockedPeriod
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}
