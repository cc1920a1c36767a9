package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/proofdeck/server/internal/domain/form"
	"github.com/proofdeck/server/internal/pkg/errors"
)

// FormRepository implements form.Repository
type FormRepository struct {
	db *DB
}

// NewFormRepository creates a new form repository
func NewFormRepository(db *DB) form.Repository {
	return &FormRepository{db: db}
}

const formColumns = "id, user_id, slug, title, intro, question_type, active, created_at, updated_at"

// Create creates a new form
func (r *FormRepository) Create(ctx context.Context, f *form.Form) error {
	now := time.Now()
	f.CreatedAt = now
	f.UpdatedAt = now

	query := `
		INSERT INTO forms (user_id, slug, title, intro, question_type, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		f.UserID, f.Slug, f.Title, f.Intro, f.QuestionType, f.Active, now.Unix(), now.Unix(),
	)
	if err != nil {
		return errors.DatabaseError("Failed to create form", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.DatabaseError("Failed to get form ID", err)
	}

	f.ID = id
	return nil
}

func scanForm(row *sql.Row) (*form.Form, error) {
	var f form.Form
	var createdAt, updatedAt int64

	err := row.Scan(
		&f.ID, &f.UserID, &f.Slug, &f.Title, &f.Intro, &f.QuestionType, &f.Active, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Form")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get form", err)
	}

	f.CreatedAt = time.Unix(createdAt, 0)
	f.UpdatedAt = time.Unix(updatedAt, 0)

	return &f, nil
}

// GetByID retrieves a form owned by a user
func (r *FormRepository) GetByID(ctx context.Context, userID, id int64) (*form.Form, error) {
	query := `SELECT ` + formColumns + ` FROM forms WHERE id = ? AND user_id = ?`
	return scanForm(r.db.QueryRowContext(ctx, r.db.Rebind(query), id, userID))
}

// GetBySlug retrieves a form by its public slug
func (r *FormRepository) GetBySlug(ctx context.Context, slug string) (*form.Form, error) {
	query := `SELECT ` + formColumns + ` FROM forms WHERE slug = ?`
	return scanForm(r.db.QueryRowContext(ctx, r.db.Rebind(query), slug))
}

// Update updates a form
func (r *FormRepository) Update(ctx context.Context, f *form.Form) error {
	f.UpdatedAt = time.Now()

	query := `
		UPDATE forms
		SET title = ?, intro = ?, active = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		f.Title, f.Intro, f.Active, f.UpdatedAt.Unix(), f.ID, f.UserID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update form", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}

	if rows == 0 {
		return errors.NotFound("Form")
	}

	return nil
}

// Delete deletes a form owned by a user
func (r *FormRepository) Delete(ctx context.Context, userID, id int64) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM forms WHERE id = ? AND user_id = ?`), id, userID)
	if err != nil {
		return errors.DatabaseError("Failed to delete form", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}

	if rows == 0 {
		return errors.NotFound("Form")
	}

	return nil
}

// List retrieves a user's forms with pagination
func (r *FormRepository) List(ctx context.Context, userID int64, limit, offset int) ([]*form.Form, int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, r.db.Rebind("SELECT COUNT(*) FROM forms WHERE user_id = ?"), userID).Scan(&total)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to count forms", err)
	}

	query := `
		SELECT ` + formColumns + `
		FROM forms
		WHERE user_id = ?
		ORDER BY id DESC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), userID, limit, offset)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list forms", err)
	}
	defer rows.Close()

	var forms []*form.Form
	for rows.Next() {
		var f form.Form
		var createdAt, updatedAt int64

		err := rows.Scan(&f.ID, &f.UserID, &f.Slug, &f.Title, &f.Intro, &f.QuestionType, &f.Active, &createdAt, &updatedAt)
		if err != nil {
			return nil, 0, errors.DatabaseError("Failed to scan form", err)
		}

		f.CreatedAt = time.Unix(createdAt, 0)
		f.UpdatedAt = time.Unix(updatedAt, 0)

		forms = append(forms, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, errors.DatabaseError("Failed to iterate forms", err)
	}

	return forms, total, nil
}
