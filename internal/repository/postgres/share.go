package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/proofdeck/server/internal/domain/share"
	"github.com/proofdeck/server/internal/pkg/errors"
)

// ShareRepository implements share.Repository
type ShareRepository struct {
	db *DB
}

// NewShareRepository creates a new share repository
func NewShareRepository(db *DB) share.Repository {
	return &ShareRepository{db: db}
}

// Create stores a recorded share
func (r *ShareRepository) Create(ctx context.Context, s *share.Share) error {
	s.CreatedAt = time.Now()

	query := `
		INSERT INTO shares (user_id, response_id, platform, caption, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		s.UserID, s.ResponseID, s.Platform, s.Caption, s.CreatedAt.Unix(),
	)
	if err != nil {
		return errors.DatabaseError("Failed to create share", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.DatabaseError("Failed to get share ID", err)
	}

	s.ID = id
	return nil
}

// List retrieves a user's shares, newest first, with pagination
func (r *ShareRepository) List(ctx context.Context, userID int64, limit, offset int) ([]*share.Share, int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, r.db.Rebind("SELECT COUNT(*) FROM shares WHERE user_id = ?"), userID).Scan(&total)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to count shares", err)
	}

	query := `
		SELECT id, user_id, response_id, platform, caption, created_at
		FROM shares
		WHERE user_id = ?
		ORDER BY id DESC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), userID, limit, offset)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list shares", err)
	}
	defer rows.Close()

	var shares []*share.Share
	for rows.Next() {
		var s share.Share
		var caption sql.NullString
		var createdAt int64

		err := rows.Scan(&s.ID, &s.UserID, &s.ResponseID, &s.Platform, &caption, &createdAt)
		if err != nil {
			return nil, 0, errors.DatabaseError("Failed to scan share", err)
		}

		s.Caption = caption.String
		s.CreatedAt = time.Unix(createdAt, 0)

		shares = append(shares, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, errors.DatabaseError("Failed to iterate shares", err)
	}

	return shares, total, nil
}
