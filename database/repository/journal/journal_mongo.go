package journalRepo

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

// MongoJournalRepo implements JournalRepository using MongoDB.
type MongoJournalRepo struct {
	coll *mongo.Collection
}

// NewMongoJournalRepo creates a new instance of JournalRepository using MongoDB.
func NewMongoJournalRepo() JournalRepository {
	coll := database.Collection("journal_entries")
	repo := &MongoJournalRepo{coll: coll}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// Create inserts a new journal entry document.
func (r *MongoJournalRepo) Create(ctx context.Context, entry *models.JournalEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	entry.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to create journal entry: %w", err)
	}
	return nil
}

// GetByID retrieves a journal entry by its unique ID.
func (r *MongoJournalRepo) GetByID(ctx context.Context, id string) (*models.JournalEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var entry models.JournalEntry
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&entry); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("journal entry %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch journal entry %s: %w", id, err)
	}
	return &entry, nil
}

// ListByUser returns a user's journal entries, newest first.
func (r *MongoJournalRepo) ListByUser(ctx context.Context, userID string, limit int64) ([]models.JournalEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch journal entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.JournalEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("error decoding journal entries: %w", err)
	}
	return entries, nil
}

// Delete removes a journal entry owned by the given user.
func (r *MongoJournalRepo) Delete(ctx context.Context, id, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete journal entry %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("journal entry %s not found", id)
	}
	return nil
}
