package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/amberleaf/menuforge/internal/models"
)

// MemorySubmissionRepository is an in-memory SubmissionRepository for
// tests and local development without Postgres.
type MemorySubmissionRepository struct {
	mu   sync.RWMutex
	subs map[string]*models.Submission
}

func NewMemorySubmissionRepository() *MemorySubmissionRepository {
	return &MemorySubmissionRepository{subs: make(map[string]*models.Submission)}
}

func (r *MemorySubmissionRepository) Create(_ context.Context, sub *models.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.subs[sub.ID]; exists {
		return fmt.Errorf("submission %s already exists", sub.ID)
	}
	copied := *sub
	r.subs[sub.ID] = &copied
	return nil
}

func (r *MemorySubmissionRepository) GetByID(_ context.Context, id string) (*models.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sub, ok := r.subs[id]
	if !ok {
		return nil, fmt.Errorf("submission %s not found", id)
	}
	copied := *sub
	return &copied, nil
}

func (r *MemorySubmissionRepository) ListByKind(_ context.Context, kind models.SubmissionKind, limit int) ([]*models.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var subs []*models.Submission
	for _, sub := range r.subs {
		if sub.Kind == kind {
			copied := *sub
			subs = append(subs, &copied)
		}
	}
	sort.Slice(subs, func(i, j int) bool {
		return subs[i].CreatedAt.After(subs[j].CreatedAt)
	})
	if limit > 0 && len(subs) > limit {
		subs = subs[:limit]
	}
	return subs, nil
}

func (r *MemorySubmissionRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs), nil
}
