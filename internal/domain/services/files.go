package services

import (
	"context"
	"io"

	"docuvault/internal/domain/models"
	"docuvault/internal/domain/repositories"
)

// FileService handles document business logic: uploads, downloads and
// the revision chain
type FileService interface {
	// Upload creates a new original document (version 1).
	// Requires the member role; the blob is saved before the row is committed.
	Upload(ctx context.Context, actorID string, req *UploadRequest) (*models.File, error)

	// GetFile retrieves a single file record.
	// actorID is used for the access check.
	GetFile(ctx context.Context, actorID, fileID string) (*models.File, error)

	// AllVersions returns a file's full chain, newest version first.
	// The result is identical whichever chain member fileID names.
	AllVersions(ctx context.Context, actorID, fileID string) ([]*models.File, error)

	// LatestVersion returns the highest-numbered version of a file's chain
	LatestVersion(ctx context.Context, actorID, fileID string) (*models.File, error)

	// OriginalFile returns the root (version 1) of a file's chain
	OriginalFile(ctx context.Context, actorID, fileID string) (*models.File, error)

	// CreateRevision adds a new version to the chain containing fileID.
	// The new version starts pending and becomes the single current
	// version. Concurrent revisions of one chain surface as
	// domain.ErrConcurrencyConflict, to be retried once by the caller.
	CreateRevision(ctx context.Context, actorID, fileID string, req *ReviseRequest) (*models.File, error)

	// Download opens the stored bytes of a file for streaming
	Download(ctx context.Context, actorID, fileID string) (*FileDownload, error)

	// ListOwn returns the files the actor uploaded, newest first
	ListOwn(ctx context.Context, actorID string) ([]*models.File, error)

	// ListAll returns files matching the filter; admin only
	ListAll(ctx context.Context, actorID string, filter repositories.FileFilter) ([]*models.File, error)
}

// UploadRequest carries the inputs for a new original document
type UploadRequest struct {
	Title        string
	Description  string
	Category     string
	OriginalName string    // filename as supplied by the uploader
	Content      io.Reader // uploaded bytes
}

// ReviseRequest carries the inputs for a new revision
type ReviseRequest struct {
	Title         string
	Description   string
	Category      string
	OriginalName  string
	RevisionNotes string
	Content       io.Reader
}

// FileDownload is an open handle on stored bytes plus the metadata the
// caller needs for response headers. The caller must close Content.
type FileDownload struct {
	File    *models.File
	Content io.ReadCloser
}
