// File: database/repository/bookinglog/mongo.go
package bookinglogRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"safesched/database"
	"safesched/models"
)

type mongoBookingLogRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingLogRepo constructs a MongoDB-backed BookingLogRepository.
func NewMongoBookingLogRepo() BookingLogRepository {
	db := database.MongoClient.Database("safesched")
	return &mongoBookingLogRepo{
		coll: db.Collection("bookings"),
	}
}

func (r *mongoBookingLogRepo) Append(ctx context.Context, booking models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to append booking: %w", err)
	}
	return nil
}

func (r *mongoBookingLogRepo) List(ctx context.Context) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}
