package models

import "time"

// MoodEntry records how a user felt on a given day. At most one entry per
// user per date; logging again the same day replaces the earlier entry.
type MoodEntry struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"userId"`
	Date      string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Mood      string    `bson:"mood" json:"mood"` // e.g. "happy", "sad", "anxious"
	Note      string    `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// MoodEntryInput is the payload accepted when logging a mood.
type MoodEntryInput struct {
	Date string `json:"date" binding:"required"`
	Mood string `json:"mood" binding:"required"`
	Note string `json:"note"`
}

// MoodSummary aggregates a user's mood entries over a date range.
type MoodSummary struct {
	From    string         `json:"from"`
	To      string         `json:"to"`
	Total   int            `json:"total"`
	Counts  map[string]int `json:"counts"`
	Insight string         `json:"insight,omitempty"`
}
