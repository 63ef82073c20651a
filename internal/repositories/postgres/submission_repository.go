package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/amberleaf/menuforge/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SubmissionRepository struct {
	pool *pgxpool.Pool
}

func NewSubmissionRepository(pool *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{pool: pool}
}

// EnsureSchema creates the submissions table when it is missing. The
// server runs it once at startup.
func (r *SubmissionRepository) EnsureSchema(ctx context.Context) error {
	query := `
        CREATE TABLE IF NOT EXISTS submissions (
            id TEXT PRIMARY KEY,
            kind TEXT NOT NULL,
            name TEXT NOT NULL,
            email TEXT NOT NULL,
            phone TEXT,
            payload JSONB NOT NULL,
            created_at TIMESTAMPTZ NOT NULL
        )
    `
	if _, err := r.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure submissions schema: %w", err)
	}
	return nil
}

func (r *SubmissionRepository) Create(ctx context.Context, sub *models.Submission) error {
	payload, err := json.Marshal(sub.Payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	query := `
        INSERT INTO submissions (id, kind, name, email, phone, payload, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err = r.pool.Exec(ctx, query,
		sub.ID,
		string(sub.Kind),
		sub.Name,
		sub.Email,
		sub.Phone,
		payload,
		sub.CreatedAt,
	)
	return err
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id string) (*models.Submission, error) {
	query := `
        SELECT id, kind, name, email, phone, payload, created_at
        FROM submissions
        WHERE id = $1
    `
	row := r.pool.QueryRow(ctx, query, id)

	var sub models.Submission
	var kind string
	var payload []byte
	if err := row.Scan(&sub.ID, &kind, &sub.Name, &sub.Email, &sub.Phone, &payload, &sub.CreatedAt); err != nil {
		return nil, err
	}
	sub.Kind = models.SubmissionKind(kind)
	if err := json.Unmarshal(payload, &sub.Payload); err != nil {
		return nil, fmt.Errorf("failed to decode payload for %s: %w", id, err)
	}
	return &sub, nil
}

func (r *SubmissionRepository) ListByKind(ctx context.Context, kind models.SubmissionKind, limit int) ([]*models.Submission, error) {
	query := `
        SELECT id, kind, name, email, phone, payload, created_at
        FROM submissions
        WHERE kind = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.pool.Query(ctx, query, string(kind), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*models.Submission
	for rows.Next() {
		var sub models.Submission
		var k string
		var payload []byte
		if err := rows.Scan(&sub.ID, &k, &sub.Name, &sub.Email, &sub.Phone, &payload, &sub.CreatedAt); err != nil {
			return nil, err
		}
		sub.Kind = models.SubmissionKind(k)
		if err := json.Unmarshal(payload, &sub.Payload); err != nil {
			return nil, fmt.Errorf("failed to decode payload for %s: %w", sub.ID, err)
		}
		subs = append(subs, &sub)
	}
	return subs, rows.Err()
}

func (r *SubmissionRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM submissions").Scan(&count)
	return count, err
}
