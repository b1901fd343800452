package models

import "time"

// Assessment stores one submitted self-assessment questionnaire together
// with its computed score and severity band.
type Assessment struct {
	ID         string         `bson:"id" json:"id"`
	UserID     string         `bson:"user_id" json:"userId"`
	Instrument string         `bson:"instrument" json:"instrument"` // e.g. "phq-a", "gad-7"
	Answers    map[string]int `bson:"answers" json:"answers"`
	Score      int            `bson:"score" json:"score"`
	Band       string         `bson:"band" json:"band"`
	CreatedAt  time.Time      `bson:"created_at" json:"createdAt"`
}

// AssessmentInput is the payload accepted when submitting a questionnaire.
type AssessmentInput struct {
	Instrument string         `json:"instrument" binding:"required"`
	Answers    map[string]int `json:"answers" binding:"required"`
}
