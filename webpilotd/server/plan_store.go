package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/marover/webpilot/internals/schemas"
	_ "modernc.org/sqlite"
)

type planStore struct {
	db *sql.DB
}

type planRecord struct {
	Name         string
	PlanJSON     string
	ReadableText string
	CreatedAt    int64
	UpdatedAt    int64
}

func newPlanStore(dbPath string) (*planStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	store := &planStore{db: db}
	if err := store.init(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *planStore) init() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS plans (
	name TEXT PRIMARY KEY,
	plan_json TEXT NOT NULL,
	readable_text TEXT,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_plans_updated_at ON plans(updated_at);
`)
	return err
}

// save upserts a plan under its task name, mirroring the reference
// backend's one-file-per-task layout.
func (s *planStore) save(ctx context.Context, plan schemas.Plan, readableText string) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	// Unix nanos keep the created_at ordering total; formatted timestamps
	// do not sort correctly once fractional seconds vary in width.
	now := time.Now().UnixNano()
	_, err = s.db.ExecContext(ctx, `
INSERT INTO plans (name, plan_json, readable_text, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET plan_json = excluded.plan_json, readable_text = excluded.readable_text, updated_at = excluded.updated_at
`, plan.Task, string(data), nullIfEmpty(readableText), now, now)
	return err
}

func (s *planStore) get(ctx context.Context, name string) (*planRecord, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT name, plan_json, readable_text, created_at, updated_at
FROM plans
WHERE name = ?
`, name)

	var record planRecord
	var readableText sql.NullString
	if err := row.Scan(&record.Name, &record.PlanJSON, &readableText, &record.CreatedAt, &record.UpdatedAt); err != nil {
		return nil, err
	}
	record.ReadableText = readableText.String
	return &record, nil
}

func (s *planStore) plan(ctx context.Context, name string) (*schemas.Plan, string, error) {
	record, err := s.get(ctx, name)
	if err != nil {
		return nil, "", err
	}
	var plan schemas.Plan
	if err := json.Unmarshal([]byte(record.PlanJSON), &plan); err != nil {
		return nil, "", err
	}
	return &plan, record.ReadableText, nil
}

// names returns task names in insertion order. No dedup, no pagination;
// the client renders whatever comes back.
func (s *planStore) names(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM plans ORDER BY created_at, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *planStore) Close() error {
	return s.db.Close()
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
