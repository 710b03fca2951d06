package models

import (
	"time"
)

// Status is the review state of a document version.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the known review states.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// CanTransitionTo reports whether a review action may move a document
// from s to target. Approved and rejected documents may be re-reviewed
// by an explicit admin action, but nothing ever returns to pending:
// re-review of changed content requires a new revision.
func (s Status) CanTransitionTo(target Status) bool {
	if !s.Valid() || !target.Valid() {
		return false
	}
	return target != StatusPending
}

// File is a single version of a document. A file with a nil ParentID is
// the chain root (version 1); every revision points directly at the
// root, never at another revision.
type File struct {
	ID           string `json:"id" db:"id"`
	Title        string `json:"title" db:"title"`
	Description  string `json:"description" db:"description"`
	StoredKey    string `json:"stored_key" db:"stored_key"`     // blob-store key, random token
	OriginalName string `json:"original_name" db:"original_name"` // preserved for display and download headers
	MediaType    string `json:"media_type" db:"media_type"`
	SizeBytes    int64  `json:"size_bytes" db:"size_bytes"`
	Category     string `json:"category" db:"category"`

	UploadedBy   string `json:"uploaded_by" db:"uploaded_by"`
	DepartmentID string `json:"department_id" db:"department_id"`

	Status     Status     `json:"status" db:"status"`
	ReviewedBy *string    `json:"reviewed_by,omitempty" db:"reviewed_by"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty" db:"reviewed_at"`

	ParentID         *string `json:"parent_id,omitempty" db:"parent_id"`
	VersionNumber    int     `json:"version_number" db:"version_number"`
	IsCurrentVersion bool    `json:"is_current_version" db:"is_current_version"`
	RevisionNotes    *string `json:"revision_notes,omitempty" db:"revision_notes"`

	UploadedAt time.Time `json:"uploaded_at" db:"uploaded_at"`
}

// RootID returns the id of f's chain root: f itself for originals, the
// parent for revisions.
func (f *File) RootID() string {
	if f.ParentID != nil {
		return *f.ParentID
	}
	return f.ID
}

// IsOriginal reports whether f is a chain root (version 1).
func (f *File) IsOriginal() bool {
	return f.ParentID == nil
}
