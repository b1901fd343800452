package moodRepo

import (
	"context"
	"fmt"
	"time"

	"serenemind/database"
	"serenemind/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMoodRepo implements MoodRepository using MongoDB.
type MongoMoodRepo struct {
	coll *mongo.Collection
}

// NewMongoMoodRepo creates a new instance of MoodRepository using MongoDB.
func NewMongoMoodRepo() MoodRepository {
	coll := database.Collection("mood_entries")
	repo := &MongoMoodRepo{coll: coll}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// Upsert writes the entry for (user, date), replacing any earlier entry for
// the same day.
func (r *MongoMoodRepo) Upsert(ctx context.Context, entry *models.MoodEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	entry.UpdatedAt = now

	filter := bson.M{"user_id": entry.UserID, "date": entry.Date}
	update := bson.M{
		"$set": bson.M{
			"mood":       entry.Mood,
			"note":       entry.Note,
			"updated_at": entry.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"id":         entry.ID,
			"user_id":    entry.UserID,
			"date":       entry.Date,
			"created_at": now,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert mood entry: %w", err)
	}
	return nil
}

// ListRange returns a user's entries with from <= date <= to, ascending.
func (r *MongoMoodRepo) ListRange(ctx context.Context, userID, from, to string) ([]models.MoodEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": from, "$lte": to},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mood entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.MoodEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("error decoding mood entries: %w", err)
	}
	return entries, nil
}
