// File: database/repository/availability/mongo.go
package availabilityRepo

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

// busyDocument is the persisted shape of one busy interval.
type busyDocument struct {
	Participant string    `bson:"participant"`
	Start       time.Time `bson:"start"`
	End         time.Time `bson:"end"`
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a MongoDB-backed AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database("safesched")
	return &mongoAvailabilityRepo{
		coll: db.Collection("busy_intervals"),
	}
}

func (r *mongoAvailabilityRepo) BusyWithin(ctx context.Context, participant string, windowStart, windowEnd time.Time) ([]models.BusyInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Half-open overlap: interval.end > windowStart AND interval.start < windowEnd.
	filter := bson.M{
		"participant": participant,
		"end":         bson.M{"$gt": windowStart},
		"start":       bson.M{"$lt": windowEnd},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch busy intervals: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []busyDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding busy intervals: %w", err)
	}

	intervals := make([]models.BusyInterval, 0, len(docs))
	for _, d := range docs {
		b := models.BusyInterval{Start: d.Start, End: d.End}
		intervals = append(intervals, b.Clip(windowStart, windowEnd))
	}
	if len(intervals) == 0 {
		return nil, nil
	}
	return intervals, nil
}

func (r *mongoAvailabilityRepo) AddBusy(ctx context.Context, participant string, start, end time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, busyDocument{Participant: participant, Start: start, End: end})
	if err != nil {
		return fmt.Errorf("failed to insert busy interval: %w", err)
	}
	return nil
}

func (r *mongoAvailabilityRepo) AddBusyBatch(ctx context.Context, participants []string, start, end time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	docs := make([]interface{}, len(participants))
	for i, p := range participants {
		docs[i] = busyDocument{Participant: p, Start: start, End: end}
	}

	// Ordered insert: either all documents land or the write aborts.
	ordered := true
	_, err := r.coll.InsertMany(ctx, docs, &options.InsertManyOptions{Ordered: &ordered})
	if err != nil {
		return fmt.Errorf("failed to insert busy intervals: %w", err)
	}
	return nil
}

func (r *mongoAvailabilityRepo) Participants(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	raw, err := r.coll.Distinct(ctx, "participant", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	names := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			names = append(names, s)
		}
	}
	return names, nil
}
