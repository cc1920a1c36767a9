package user

import "time"

// User represents an account that owns forms and collects feedback
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	FullName     *string   `json:"full_name,omitempty"`
	CompanyName  string    `json:"company_name,omitempty"`
	PasswordHash string    `json:"-"` // Not exposed in JSON
	Plan         string    `json:"plan"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
