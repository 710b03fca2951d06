package models

import (
	"time"
)

// Comment is an append-only note on a file. Comments are never edited
// or deleted; they share the visibility of their file.
type Comment struct {
	ID        string    `json:"id" db:"id"`
	Content   string    `json:"content" db:"content"`
	FileID    string    `json:"file_id" db:"file_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
