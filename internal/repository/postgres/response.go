package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/proofdeck/server/internal/domain/response"
	"github.com/proofdeck/server/internal/pkg/errors"
)

// ResponseRepository implements response.Repository
type ResponseRepository struct {
	db *DB
}

// NewResponseRepository creates a new response repository
func NewResponseRepository(db *DB) response.Repository {
	return &ResponseRepository{db: db}
}

const responseColumns = "id, form_id, request_token, respondent_name, respondent_email, rating, nps_score, yes_no, text, created_at"

// Create stores a submitted response
func (r *ResponseRepository) Create(ctx context.Context, resp *response.Response) error {
	resp.CreatedAt = time.Now()

	query := `
		INSERT INTO responses (form_id, request_token, respondent_name, respondent_email, rating, nps_score, yes_no, text, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		resp.FormID, resp.RequestToken, resp.RespondentName, resp.RespondentEmail,
		resp.Rating, resp.NPSScore, resp.YesNo, resp.Text, resp.CreatedAt.Unix(),
	)
	if err != nil {
		return errors.DatabaseError("Failed to create response", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.DatabaseError("Failed to get response ID", err)
	}

	resp.ID = id
	return nil
}

func scanResponseRow(scan func(dest ...interface{}) error) (*response.Response, error) {
	var resp response.Response
	var requestToken, name, email, text sql.NullString
	var rating, npsScore sql.NullInt64
	var yesNo sql.NullBool
	var createdAt int64

	err := scan(
		&resp.ID, &resp.FormID, &requestToken, &name, &email,
		&rating, &npsScore, &yesNo, &text, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	if requestToken.Valid {
		resp.RequestToken = &requestToken.String
	}
	resp.RespondentName = name.String
	resp.RespondentEmail = email.String
	if rating.Valid {
		v := int(rating.Int64)
		resp.Rating = &v
	}
	if npsScore.Valid {
		v := int(npsScore.Int64)
		resp.NPSScore = &v
	}
	if yesNo.Valid {
		v := yesNo.Bool
		resp.YesNo = &v
	}
	resp.Text = text.String
	resp.CreatedAt = time.Unix(createdAt, 0)

	return &resp, nil
}

// GetByID retrieves a response belonging to one of a user's forms
func (r *ResponseRepository) GetByID(ctx context.Context, userID, id int64) (*response.Response, error) {
	query := `
		SELECT r.id, r.form_id, r.request_token, r.respondent_name, r.respondent_email,
		       r.rating, r.nps_score, r.yes_no, r.text, r.created_at
		FROM responses r
		JOIN forms f ON f.id = r.form_id
		WHERE r.id = ? AND f.user_id = ?
	`

	row := r.db.QueryRowContext(ctx, r.db.Rebind(query), id, userID)
	resp, err := scanResponseRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Response")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get response", err)
	}
	return resp, nil
}

// ListByForm retrieves a form's responses, newest first, with pagination
func (r *ResponseRepository) ListByForm(ctx context.Context, formID int64, limit, offset int) ([]*response.Response, int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, r.db.Rebind("SELECT COUNT(*) FROM responses WHERE form_id = ?"), formID).Scan(&total)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to count responses", err)
	}

	query := `
		SELECT ` + responseColumns + `
		FROM responses
		WHERE form_id = ?
		ORDER BY id DESC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), formID, limit, offset)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list responses", err)
	}
	defer rows.Close()

	responses, err := collectResponses(rows)
	if err != nil {
		return nil, 0, err
	}
	return responses, total, nil
}

// AllByForm retrieves every response for a form, oldest first
func (r *ResponseRepository) AllByForm(ctx context.Context, formID int64) ([]*response.Response, error) {
	query := `
		SELECT ` + responseColumns + `
		FROM responses
		WHERE form_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), formID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load responses", err)
	}
	defer rows.Close()

	return collectResponses(rows)
}

func collectResponses(rows *sql.Rows) ([]*response.Response, error) {
	var responses []*response.Response
	for rows.Next() {
		resp, err := scanResponseRow(rows.Scan)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan response", err)
		}
		responses = append(responses, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to iterate responses", err)
	}

	return responses, nil
}

// Delete deletes a response belonging to one of a user's forms
func (r *ResponseRepository) Delete(ctx context.Context, userID, id int64) error {
	query := `
		DELETE FROM responses
		WHERE id = ? AND form_id IN (SELECT id FROM forms WHERE user_id = ?)
	`

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), id, userID)
	if err != nil {
		return errors.DatabaseError("Failed to delete response", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}

	if rows == 0 {
		return errors.NotFound("Response")
	}

	return nil
}
