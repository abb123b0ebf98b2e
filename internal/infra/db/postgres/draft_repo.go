package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/icislabs/contract-workbench/internal/domain/analysis"
	"github.com/icislabs/contract-workbench/internal/domain/drafts"
)

// Connect opens a Postgres pool and verifies connectivity.
func Connect(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx2, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx2); err != nil {
		return nil, err
	}
	return db, nil
}

// DraftRepository persists drafts in Postgres. Expected schema:
//
//	CREATE TABLE drafts (
//	  id         BIGSERIAL PRIMARY KEY,
//	  title      VARCHAR(200) NOT NULL,
//	  content    TEXT NOT NULL,
//	  issues     JSONB NOT NULL,
//	  created_at TIMESTAMPTZ NOT NULL
//	);
type DraftRepository struct {
	db *sql.DB
}

func NewDraftRepository(db *sql.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

func (r *DraftRepository) Create(ctx context.Context, d *drafts.Draft) error {
	issues, err := json.Marshal(d.Issues)
	if err != nil {
		return fmt.Errorf("encoding issues: %w", err)
	}
	const q = `INSERT INTO drafts (title, content, issues, created_at)
VALUES ($1,$2,$3,$4) RETURNING id;`
	return r.db.QueryRowContext(ctx, q, d.Title, d.Content, issues, d.CreatedAt).Scan(&d.ID)
}

func (r *DraftRepository) Get(ctx context.Context, id int64) (*drafts.Draft, error) {
	const q = `SELECT id, title, content, issues, created_at FROM drafts WHERE id=$1;`
	return scanDraft(r.db.QueryRowContext(ctx, q, id))
}

func (r *DraftRepository) List(ctx context.Context, limit int) ([]*drafts.Draft, error) {
	if limit <= 0 {
		limit = 20
	}
	const q = `SELECT id, title, content, issues, created_at FROM drafts
ORDER BY created_at DESC, id DESC LIMIT $1;`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*drafts.Draft
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDraft(row rowScanner) (*drafts.Draft, error) {
	var d drafts.Draft
	var issues []byte
	if err := row.Scan(&d.ID, &d.Title, &d.Content, &issues, &d.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, drafts.ErrNotFound
		}
		return nil, err
	}
	d.Issues = []analysis.Issue{}
	if len(issues) > 0 {
		if err := json.Unmarshal(issues, &d.Issues); err != nil {
			return nil, fmt.Errorf("decoding issues: %w", err)
		}
	}
	return &d, nil
}
