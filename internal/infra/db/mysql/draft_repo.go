package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/icislabs/contract-workbench/internal/domain/analysis"
	"github.com/icislabs/contract-workbench/internal/domain/drafts"
)

// DraftRepository persists drafts in MySQL. Expected schema:
//
//	CREATE TABLE drafts (
//	  id         BIGINT AUTO_INCREMENT PRIMARY KEY,
//	  title      VARCHAR(200) NOT NULL,
//	  content    TEXT NOT NULL,
//	  issues     JSON NOT NULL,
//	  created_at DATETIME NOT NULL
//	);
type DraftRepository struct {
	db *sql.DB
}

func NewDraftRepository(db *sql.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

// Create inserts the draft and fills in the assigned id.
func (r *DraftRepository) Create(ctx context.Context, d *drafts.Draft) error {
	issues, err := json.Marshal(d.Issues)
	if err != nil {
		return fmt.Errorf("encoding issues: %w", err)
	}
	const q = `INSERT INTO drafts (title, content, issues, created_at) VALUES (?,?,?,?);`
	res, err := r.db.ExecContext(ctx, q, d.Title, d.Content, issues, d.CreatedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	d.ID = id
	return nil
}

// Get by id
func (r *DraftRepository) Get(ctx context.Context, id int64) (*drafts.Draft, error) {
	const q = `SELECT id, title, content, issues, created_at FROM drafts WHERE id=? LIMIT 1;`
	return scanDraft(r.db.QueryRowContext(ctx, q, id))
}

// List newest-first
func (r *DraftRepository) List(ctx context.Context, limit int) ([]*drafts.Draft, error) {
	if limit <= 0 {
		limit = 20
	}
	const q = `SELECT id, title, content, issues, created_at FROM drafts
ORDER BY created_at DESC, id DESC LIMIT ?;`
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
