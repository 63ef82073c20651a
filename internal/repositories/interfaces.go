package repositories

import (
	"context"

	"github.com/amberleaf/menuforge/internal/models"
)

// SubmissionRepository persists captured form entries. The catalog
// itself is file-backed and read-only; only submissions round-trip
// through the database.
type SubmissionRepository interface {
	Create(ctx context.Context, sub *models.Submission) error
	GetByID(ctx context.Context, id string) (*models.Submission, error)
	ListByKind(ctx context.Context, kind models.SubmissionKind, limit int) ([]*models.Submission, error)
	Count(ctx context.Context) (int, error)
}
