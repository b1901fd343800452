// File: database/repository/appointment/appointmentMongoCrud.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"serenemind/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new appointment document. The partial unique index turns
// a concurrent duplicate booking into a duplicate-key error, surfaced as
// ErrSlotTaken so the caller can force reselection.
func (r *MongoAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, appt)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// UpdateStatus transitions an appointment from one status to another. The
// fromStatus guard keeps the transition idempotent: cancelling an already
// cancelled appointment matches nothing.
func (r *MongoAppointmentRepo) UpdateStatus(ctx context.Context, id, fromStatus, toStatus string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": fromStatus}
	update := bson.M{"$set": bson.M{"status": toStatus, "updated_at": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update appointment %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("appointment %s not found in status %q", id, fromStatus)
	}
	return nil
}
