package availabilityRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"agendo/models"
)

func (r *mongoAvailabilityRepo) GetByProviderAndDate(ctx context.Context, providerID, date string) (*models.AvailabilityRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"providerId": providerID, "date": date}
	var rule models.AvailabilityRule
	err := r.coll.FindOne(ctx, filter).Decode(&rule)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *mongoAvailabilityRepo) GetByProviderAndDay(ctx context.Context, providerID string, dayOfWeek int) (*models.AvailabilityRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Recurring rules carry no date.
	filter := bson.M{
		"providerId": providerID,
		"dayOfWeek":  dayOfWeek,
		"$or":        []bson.M{{"date": ""}, {"date": bson.M{"$exists": false}}},
	}
	var rule models.AvailabilityRule
	err := r.coll.FindOne(ctx, filter).Decode(&rule)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rule, nil
}
