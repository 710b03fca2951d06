package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"docuvault/internal/domain"
	"docuvault/internal/domain/models"
	"docuvault/internal/domain/repositories"
)

// In-memory repository fakes. The tx manager serializes ExecSerializableTx
// calls with a mutex, standing in for the database's SERIALIZABLE level.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = fmt.Sprintf("u%d", len(r.users)+1)
	}
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", username, domain.ErrNotFound)
}

type fakeFileRepo struct {
	mu     sync.Mutex
	files  map[string]*models.File
	nextID int
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{files: make(map[string]*models.File)}
}

func (r *fakeFileRepo) Create(ctx context.Context, file *models.File) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	file.ID = fmt.Sprintf("f%d", r.nextID)
	file.UploadedAt = time.Now()
	copied := *file
	r.files[file.ID] = &copied
	return nil
}

func (r *fakeFileRepo) GetByID(ctx context.Context, id string) (*models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	file, ok := r.files[id]
	if !ok {
		return nil, fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
	}
	copied := *file
	return &copied, nil
}

func (r *fakeFileRepo) GetByStoredKey(ctx context.Context, key string) (*models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, file := range r.files {
		if file.StoredKey == key {
			copied := *file
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("file with key %s: %w", key, domain.ErrNotFound)
}

func (r *fakeFileRepo) ListChain(ctx context.Context, rootID string) ([]*models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var chain []*models.File
	for _, file := range r.files {
		if file.ID == rootID || (file.ParentID != nil && *file.ParentID == rootID) {
			copied := *file
			chain = append(chain, &copied)
		}
	}
	sort.Slice(chain, func(i, j int) bool {
		return chain[i].VersionNumber > chain[j].VersionNumber
	})
	return chain, nil
}

func (r *fakeFileRepo) ClearCurrentFlags(ctx context.Context, rootID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, file := range r.files {
		if file.ID == rootID || (file.ParentID != nil && *file.ParentID == rootID) {
			file.IsCurrentVersion = false
		}
	}
	return nil
}

func (r *fakeFileRepo) UpdateReview(ctx context.Context, id string, status models.Status, reviewedBy string, reviewedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	file, ok := r.files[id]
	if !ok {
		return fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
	}
	file.Status = status
	file.ReviewedBy = &reviewedBy
	file.ReviewedAt = &reviewedAt
	return nil
}

func (r *fakeFileRepo) ListByUploader(ctx context.Context, userID string) ([]*models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var files []*models.File
	for _, file := range r.files {
		if file.UploadedBy == userID {
			copied := *file
			files = append(files, &copied)
		}
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].UploadedAt.After(files[j].UploadedAt)
	})
	return files, nil
}

func (r *fakeFileRepo) List(ctx context.Context, filter repositories.FileFilter) ([]*models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var files []*models.File
	for _, file := range r.files {
		if filter.DepartmentID != "" && file.DepartmentID != filter.DepartmentID {
			continue
		}
		if filter.Status != "" && file.Status != filter.Status {
			continue
		}
		if filter.Category != "" && file.Category != filter.Category {
			continue
		}
		copied := *file
		files = append(files, &copied)
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].UploadedAt.After(files[j].UploadedAt)
	})
	return files, nil
}

// currentCount reports how many chain members are flagged current.
func (r *fakeFileRepo) currentCount(rootID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, file := range r.files {
		if file.ID == rootID || (file.ParentID != nil && *file.ParentID == rootID) {
			if file.IsCurrentVersion {
				count++
			}
		}
	}
	return count
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments []*models.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{}
}

func (r *fakeCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment.ID = fmt.Sprintf("c%d", len(r.comments)+1)
	comment.CreatedAt = time.Now()
	copied := *comment
	r.comments = append(r.comments, &copied)
	return nil
}

func (r *fakeCommentRepo) ListByFile(ctx context.Context, fileID string) ([]*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var comments []*models.Comment
	for _, comment := range r.comments {
		if comment.FileID == fileID {
			copied := *comment
			comments = append(comments, &copied)
		}
	}
	return comments, nil
}

func (r *fakeCommentRepo) CountByFile(ctx context.Context, fileID string) (int, error) {
	comments, _ := r.ListByFile(ctx, fileID)
	return len(comments), nil
}

type fakeTxManager struct {
	mu sync.Mutex
}

func (tm *fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}

func (tm *fakeTxManager) ExecSerializableTx(ctx context.Context, fn repositories.TxFn) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	return fn(ctx)
}
