package assessmentRepo

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

// MongoAssessmentRepo implements AssessmentRepository using MongoDB.
type MongoAssessmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAssessmentRepo creates a new instance of AssessmentRepository using MongoDB.
func NewMongoAssessmentRepo() AssessmentRepository {
	coll := database.Collection("assessments")
	repo := &MongoAssessmentRepo{coll: coll}

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

// Create inserts a new assessment document.
func (r *MongoAssessmentRepo) Create(ctx context.Context, assessment *models.Assessment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	assessment.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, assessment); err != nil {
		return fmt.Errorf("failed to create assessment: %w", err)
	}
	return nil
}

// ListByUser returns a user's assessments, newest first.
func (r *MongoAssessmentRepo) ListByUser(ctx context.Context, userID string) ([]models.Assessment, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assessments: %w", err)
	}
	defer cursor.Close(ctx)

	var assessments []models.Assessment
	if err := cursor.All(ctx, &assessments); err != nil {
		return nil, fmt.Errorf("error decoding assessments: %w", err)
	}
	return assessments, nil
}
