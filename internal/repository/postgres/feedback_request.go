package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/proofdeck/server/internal/domain/feedback"
	"github.com/proofdeck/server/internal/pkg/errors"
)

// FeedbackRequestRepository implements feedback.Repository
type FeedbackRequestRepository struct {
	db *DB
}

// NewFeedbackRequestRepository creates a new feedback request repository
func NewFeedbackRequestRepository(db *DB) feedback.Repository {
	return &FeedbackRequestRepository{db: db}
}

const requestColumns = "id, user_id, form_id, recipient_email, recipient_name, message, token, status, reminder_sent_at, created_at, updated_at"

// Create stores a new request
func (r *FeedbackRequestRepository) Create(ctx context.Context, req *feedback.Request) error {
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now

	query := `
		INSERT INTO feedback_requests (user_id, form_id, recipient_email, recipient_name, message, token, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		req.UserID, req.FormID, req.RecipientEmail, req.RecipientName,
		req.Message, req.Token, req.Status, now.Unix(), now.Unix(),
	)
	if err != nil {
		return errors.DatabaseError("Failed to create feedback request", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.DatabaseError("Failed to get request ID", err)
	}

	req.ID = id
	return nil
}

func scanRequestRow(scan func(dest ...interface{}) error) (*feedback.Request, error) {
	var req feedback.Request
	var name, message sql.NullString
	var reminderSentAt sql.NullInt64
	var createdAt, updatedAt int64

	err := scan(
		&req.ID, &req.UserID, &req.FormID, &req.RecipientEmail, &name,
		&message, &req.Token, &req.Status, &reminderSentAt, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	req.RecipientName = name.String
	req.Message = message.String
	if reminderSentAt.Valid {
		t := time.Unix(reminderSentAt.Int64, 0)
		req.ReminderSentAt = &t
	}
	req.CreatedAt = time.Unix(createdAt, 0)
	req.UpdatedAt = time.Unix(updatedAt, 0)

	return &req, nil
}

// GetByID retrieves a request owned by a user
func (r *FeedbackRequestRepository) GetByID(ctx context.Context, userID, id int64) (*feedback.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM feedback_requests WHERE id = ? AND user_id = ?`

	row := r.db.QueryRowContext(ctx, r.db.Rebind(query), id, userID)
	req, err := scanRequestRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Feedback request")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get feedback request", err)
	}
	return req, nil
}

// GetByToken retrieves a request by its response-link token
func (r *FeedbackRequestRepository) GetByToken(ctx context.Context, token string) (*feedback.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM feedback_requests WHERE token = ?`

	row := r.db.QueryRowContext(ctx, r.db.Rebind(query), token)
	req, err := scanRequestRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Feedback request")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get feedback request", err)
	}
	return req, nil
}

// List retrieves a user's requests, newest first, with pagination
func (r *FeedbackRequestRepository) List(ctx context.Context, userID int64, limit, offset int) ([]*feedback.Request, int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, r.db.Rebind("SELECT COUNT(*) FROM feedback_requests WHERE user_id = ?"), userID).Scan(&total)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to count feedback requests", err)
	}

	query := `
		SELECT ` + requestColumns + `
		FROM feedback_requests
		WHERE user_id = ?
		ORDER BY id DESC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), userID, limit, offset)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list feedback requests", err)
	}
	defer rows.Close()

	requests, err := collectRequests(rows)
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

// MarkResponded flips a request to the responded status
func (r *FeedbackRequestRepository) MarkResponded(ctx context.Context, token string) error {
	query := `UPDATE feedback_requests SET status = ?, updated_at = ? WHERE token = ?`

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), feedback.StatusResponded, time.Now().Unix(), token)
	if err != nil {
		return errors.DatabaseError("Failed to mark request responded", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}

	if rows == 0 {
		return errors.NotFound("Feedback request")
	}

	return nil
}

// ListDueReminders retrieves unanswered requests created before the cutoff
// that have not been reminded yet
func (r *FeedbackRequestRepository) ListDueReminders(ctx context.Context, cutoff time.Time, limit int) ([]*feedback.Request, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM feedback_requests
		WHERE status = ? AND reminder_sent_at IS NULL AND created_at < ?
		ORDER BY id ASC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), feedback.StatusSent, cutoff.Unix(), limit)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list due reminders", err)
	}
	defer rows.Close()

	return collectRequests(rows)
}

// MarkReminderSent records that a reminder email went out
func (r *FeedbackRequestRepository) MarkReminderSent(ctx context.Context, id int64) error {
	now := time.Now().Unix()
	query := `UPDATE feedback_requests SET reminder_sent_at = ?, updated_at = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), now, now, id)
	if err != nil {
		return errors.DatabaseError("Failed to mark reminder sent", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}

	if rows == 0 {
		return errors.NotFound("Feedback request")
	}

	return nil
}

func collectRequests(rows *sql.Rows) ([]*feedback.Request, error) {
	var requests []*feedback.Request
	for rows.Next() {
		req, err := scanRequestRow(rows.Scan)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan feedback request", err)
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to iterate feedback requests", err)
	}

	return requests, nil
}
