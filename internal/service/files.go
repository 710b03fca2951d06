package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"

	"github.com/google/uuid"

	"docuvault/internal/config"
	"docuvault/internal/domain"
	"docuvault/internal/domain/models"
	"docuvault/internal/domain/repositories"
	"docuvault/internal/domain/services"
	"docuvault/internal/service/auth"
	"docuvault/internal/storage"
)

// fileService implements the FileService interface
type fileService struct {
	fileRepo   repositories.FileRepository
	txManager  repositories.TransactionManager
	store      storage.BlobStore
	authorizer *auth.Authorizer
	logger     *slog.Logger
}

// NewFileService creates a new file service
func NewFileService(
	fileRepo repositories.FileRepository,
	txManager repositories.TransactionManager,
	store storage.BlobStore,
	authorizer *auth.Authorizer,
	logger *slog.Logger,
) services.FileService {
	return &fileService{
		fileRepo:   fileRepo,
		txManager:  txManager,
		store:      store,
		authorizer: authorizer,
		logger:     logger,
	}
}

// Upload creates a new original document (version 1)
func (s *fileService) Upload(ctx context.Context, actorID string, req *services.UploadRequest) (*models.File, error) {
	user, err := s.authorizer.RequireUploader(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if err := validateUploadRequest(req); err != nil {
		return nil, err
	}

	// Blob first: a failed write must not leave an orphan row.
	key, size, mediaType, err := s.saveBlob(ctx, req.Content, req.OriginalName)
	if err != nil {
		return nil, err
	}

	file := &models.File{
		Title:            req.Title,
		Description:      req.Description,
		StoredKey:        key,
		OriginalName:     req.OriginalName,
		MediaType:        mediaType,
		SizeBytes:        size,
		Category:         req.Category,
		UploadedBy:       user.ID,
		DepartmentID:     user.DepartmentID,
		Status:           models.StatusPending,
		VersionNumber:    1,
		IsCurrentVersion: true,
	}

	if err := s.fileRepo.Create(ctx, file); err != nil {
		return nil, err
	}

	s.logger.Info("file uploaded",
		"file_id", file.ID,
		"uploaded_by", user.ID,
		"department_id", user.DepartmentID,
		"size_bytes", size,
	)

	return file, nil
}

// GetFile retrieves a single file record
func (s *fileService) GetFile(ctx context.Context, actorID, fileID string) (*models.File, error) {
	file, err := s.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		return nil, err
	}

	if _, err := s.authorizer.RequireAccess(ctx, actorID, file); err != nil {
		return nil, err
	}

	return file, nil
}

// AllVersions returns a file's full chain, newest version first
func (s *fileService) AllVersions(ctx context.Context, actorID, fileID string) ([]*models.File, error) {
	file, err := s.GetFile(ctx, actorID, fileID)
	if err != nil {
		return nil, err
	}

	// Resolve to the root first so the result is the same whichever
	// chain member was named.
	return s.fileRepo.ListChain(ctx, file.RootID())
}

// LatestVersion returns the highest-numbered version of a file's chain
func (s *fileService) LatestVersion(ctx context.Context, actorID, fileID string) (*models.File, error) {
	versions, err := s.AllVersions(ctx, actorID, fileID)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, fmt.Errorf("file %s has no versions: %w", fileID, domain.ErrNotFound)
	}

	return versions[0], nil
}

// OriginalFile returns the root (version 1) of a file's chain
func (s *fileService) OriginalFile(ctx context.Context, actorID, fileID string) (*models.File, error) {
	file, err := s.GetFile(ctx, actorID, fileID)
	if err != nil {
		return nil, err
	}
	if file.IsOriginal() {
		return file, nil
	}

	return s.fileRepo.GetByID(ctx, *file.ParentID)
}

// CreateRevision adds a new version to the chain containing fileID.
// The read-modify-write (compute next version, flip flags, insert) runs
// under a serializable transaction; concurrent revisions of the same
// chain surface as domain.ErrConcurrencyConflict for the caller to
// retry once.
func (s *fileService) CreateRevision(ctx context.Context, actorID, fileID string, req *services.ReviseRequest) (*models.File, error) {
	target, err := s.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		return nil, err
	}

	user, err := s.authorizer.RequireAccess(ctx, actorID, target)
	if err != nil {
		return nil, err
	}

	if err := validateReviseRequest(req); err != nil {
		return nil, err
	}

	// Blob first, outside the transaction. A conflict below leaves an
	// orphan blob, which is acceptable; the reverse is not.
	key, size, mediaType, err := s.saveBlob(ctx, req.Content, req.OriginalName)
	if err != nil {
		return nil, err
	}

	var revision *models.File
	err = s.txManager.ExecSerializableTx(ctx, func(txCtx context.Context) error {
		// Revisions always target the resolved root, keeping chains at
		// depth one.
		root := target
		if !target.IsOriginal() {
			parent, err := s.fileRepo.GetByID(txCtx, *target.ParentID)
			if err != nil {
				return err
			}
			root = parent
		}

		chain, err := s.fileRepo.ListChain(txCtx, root.ID)
		if err != nil {
			return err
		}

		next := root.VersionNumber
		for _, v := range chain {
			if v.VersionNumber > next {
				next = v.VersionNumber
			}
		}
		next++

		if err := s.fileRepo.ClearCurrentFlags(txCtx, root.ID); err != nil {
			return err
		}

		notes := req.RevisionNotes
		revision = &models.File{
			Title:            req.Title,
			Description:      req.Description,
			StoredKey:        key,
			OriginalName:     req.OriginalName,
			MediaType:        mediaType,
			SizeBytes:        size,
			Category:         req.Category,
			UploadedBy:       user.ID,
			DepartmentID:     user.DepartmentID,
			Status:           models.StatusPending, // every revision is re-reviewed
			ParentID:         &root.ID,
			VersionNumber:    next,
			IsCurrentVersion: true,
			RevisionNotes:    &notes,
		}

		return s.fileRepo.Create(txCtx, revision)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("revision created",
		"file_id", revision.ID,
		"parent_id", *revision.ParentID,
		"version", revision.VersionNumber,
		"uploaded_by", user.ID,
	)

	return revision, nil
}

// Download opens the stored bytes of a file for streaming
func (s *fileService) Download(ctx context.Context, actorID, fileID string) (*services.FileDownload, error) {
	file, err := s.GetFile(ctx, actorID, fileID)
	if err != nil {
		return nil, err
	}

	content, err := s.store.Open(ctx, file.StoredKey)
	if err != nil {
		return nil, err
	}

	return &services.FileDownload{File: file, Content: content}, nil
}

// ListOwn returns the files the actor uploaded, newest first
func (s *fileService) ListOwn(ctx context.Context, actorID string) ([]*models.File, error) {
	user, err := s.authorizer.RequireActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	return s.fileRepo.ListByUploader(ctx, user.ID)
}

// ListAll returns files matching the filter; admin oversight only
func (s *fileService) ListAll(ctx context.Context, actorID string, filter repositories.FileFilter) ([]*models.File, error) {
	if _, err := s.authorizer.RequireReviewer(ctx, actorID); err != nil {
		return nil, err
	}

	return s.fileRepo.List(ctx, filter)
}

// saveBlob streams content into the blob store under a fresh random key
// and returns the key, the stored size and the media type. Uploads past
// the size cap are rejected.
func (s *fileService) saveBlob(ctx context.Context, content io.Reader, originalName string) (string, int64, string, error) {
	ext := fileExtension(originalName)
	keyHint := uuid.New().String() + "." + ext

	limited := &io.LimitedReader{R: content, N: config.MaxUploadBytes + 1}
	key, err := s.store.Save(ctx, limited, keyHint)
	if err != nil {
		return "", 0, "", err
	}

	size := config.MaxUploadBytes + 1 - limited.N
	if limited.N == 0 {
		return "", 0, "", &domain.ValidationError{
			Message: fmt.Sprintf("file exceeds the %d byte limit", int64(config.MaxUploadBytes)),
		}
	}

	mediaType := mime.TypeByExtension("." + ext)
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}

	return key, size, mediaType, nil
}
