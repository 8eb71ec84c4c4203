// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"agendo/database"
	"agendo/models"
)

// AppointmentRepository reads appointment records for availability and
// history computations. Appointment lifecycle is owned by the external
// booking CRUD layer.
type AppointmentRepository interface {
	// GetByProviderAndDate returns all appointments for a provider on a
	// date, regardless of status. The caller decides which occupy time.
	GetByProviderAndDate(ctx context.Context, providerID, date string) ([]models.Appointment, error)
	// GetByClientAndProvider returns the shared history between a client
	// and a provider.
	GetByClientAndProvider(ctx context.Context, clientID, providerID string) ([]models.Appointment, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database("agendo")
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}
