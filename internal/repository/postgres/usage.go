package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/proofdeck/server/internal/domain/usage"
	"github.com/proofdeck/server/internal/pkg/errors"
)

// UsageRepository implements usage.Repository
type UsageRepository struct {
	db *DB
}

// NewUsageRepository creates a new usage repository
func NewUsageRepository(db *DB) usage.Repository {
	return &UsageRepository{db: db}
}

// GetForMonth retrieves the ledger row for a user and month.
// Returns (nil, nil) when no row exists yet.
func (r *UsageRepository) GetForMonth(ctx context.Context, userID int64, month string) (*usage.Record, error) {
	query := `
		SELECT id, user_id, month, feedback_requests, social_shares, created_at, updated_at
		FROM usage_records
		WHERE user_id = ? AND month = ?
	`

	var rec usage.Record
	var createdAt, updatedAt int64

	err := r.db.QueryRowContext(ctx, r.db.Rebind(query), userID, month).Scan(
		&rec.ID, &rec.UserID, &rec.Month, &rec.FeedbackRequests, &rec.SocialShares, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get usage record", err)
	}

	rec.CreatedAt = time.Unix(createdAt, 0)
	rec.UpdatedAt = time.Unix(updatedAt, 0)

	return &rec, nil
}

// IncrementFeedbackRequests adds 1 to the feedback request counter.
// The upsert makes the read-modify-write a single statement, so K
// concurrent calls always land K increments; there is no window where
// two callers read the same counter and both write back the same value.
func (r *UsageRepository) IncrementFeedbackRequests(ctx context.Context, userID int64, month string) error {
	now := time.Now().Unix()
	query := `
		INSERT INTO usage_records (user_id, month, feedback_requests, social_shares, created_at, updated_at)
		VALUES (?, ?, 1, 0, ?, ?)
		ON CONFLICT(user_id, month) DO UPDATE SET
			feedback_requests = feedback_requests + 1,
			updated_at = excluded.updated_at
	`

	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), userID, month, now, now); err != nil {
		return errors.DatabaseError("Failed to increment feedback requests", err)
	}
	return nil
}

// IncrementSocialShares adds 1 to the social share counter, with the
// same single-statement upsert as IncrementFeedbackRequests.
func (r *UsageRepository) IncrementSocialShares(ctx context.Context, userID int64, month string) error {
	now := time.Now().Unix()
	query := `
		INSERT INTO usage_records (user_id, month, feedback_requests, social_shares, created_at, updated_at)
		VALUES (?, ?, 0, 1, ?, ?)
		ON CONFLICT(user_id, month) DO UPDATE SET
			social_shares = social_shares + 1,
			updated_at = excluded.updated_at
	`

	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), userID, month, now, now); err != nil {
		return errors.DatabaseError("Failed to increment social shares", err)
	}
	return nil
}
