package postgres

import (
	"context"
	"testing"

	"github.com/proofdeck/server/internal/testutil"
)

func TestDB_Rebind(t *testing.T) {
	tests := []struct {
		name   string
		driver string
		query  string
		want   string
	}{
		{
			name:   "postgres numbers placeholders",
			driver: "postgres",
			query:  "SELECT id FROM users WHERE email = ? AND plan = ?",
			want:   "SELECT id FROM users WHERE email = $1 AND plan = $2",
		},
		{
			name:   "postgres upsert increment",
			driver: "postgres",
			query:  "INSERT INTO usage_records (user_id, month) VALUES (?, ?) ON CONFLICT(user_id, month) DO UPDATE SET feedback_requests = feedback_requests + 1",
			want:   "INSERT INTO usage_records (user_id, month) VALUES ($1, $2) ON CONFLICT(user_id, month) DO UPDATE SET feedback_requests = feedback_requests + 1",
		},
		{
			name:   "postgres without placeholders",
			driver: "postgres",
			query:  "SELECT COUNT(*) FROM users",
			want:   "SELECT COUNT(*) FROM users",
		},
		{
			name:   "sqlite passes through",
			driver: "sqlite",
			query:  "SELECT id FROM users WHERE email = ?",
			want:   "SELECT id FROM users WHERE email = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := Wrap(nil, tt.driver)
			if got := db.Rebind(tt.query); got != tt.want {
				t.Errorf("Rebind() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDB_RebindQueriesExecute(t *testing.T) {
	db := Wrap(testutil.NewTestDB(t), "sqlite")
	defer testutil.CleanupDB(db.DB)

	var total int
	query := db.Rebind("SELECT COUNT(*) FROM users WHERE plan = ?")
	if err := db.QueryRowContext(context.Background(), query, "free").Scan(&total); err != nil {
		t.Fatalf("rebound query failed: %v", err)
	}
	if total != 0 {
		t.Errorf("count = %d, want 0", total)
	}
}
