package models

import "time"

// JournalEntry is a single private journal record. Entries are immutable
// once written; users may only delete them.
type JournalEntry struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"user_id" json:"userId"`
	Title         string    `bson:"title" json:"title"`
	Body          string    `bson:"body" json:"body"`
	AttachmentURL string    `bson:"attachment_url,omitempty" json:"attachmentUrl,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}

// JournalEntryInput is the payload accepted when creating an entry.
type JournalEntryInput struct {
	Title         string `json:"title" binding:"required"`
	Body          string `json:"body" binding:"required"`
	AttachmentURL string `json:"attachmentUrl"`
}
