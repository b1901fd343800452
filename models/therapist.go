package models

import "time"

// Therapist represents a bookable counselor profile.
type Therapist struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Specialty string    `bson:"specialty" json:"specialty"`
	Bio       string    `bson:"bio,omitempty" json:"bio,omitempty"`
	PhotoURL  string    `bson:"photo_url,omitempty" json:"photoUrl,omitempty"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
