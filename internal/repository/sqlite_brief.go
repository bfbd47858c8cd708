package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/horae/internal/domain"
)

// SQLiteBriefRepo implements BriefRepo using a SQLite database. Briefs
// are stored verbatim; nothing here interprets their text.
type SQLiteBriefRepo struct {
	db *sql.DB
}

func NewSQLiteBriefRepo(db *sql.DB) *SQLiteBriefRepo {
	return &SQLiteBriefRepo{db: db}
}

func (r *SQLiteBriefRepo) Create(ctx context.Context, b *domain.Brief) error {
	query := `INSERT INTO briefs (id, date, body, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, b.ID, b.Date, b.Body, b.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting brief: %w", err)
	}
	return nil
}

func (r *SQLiteBriefRepo) ListByDate(ctx context.Context, date string) ([]*domain.Brief, error) {
	query := `SELECT id, date, body, created_at FROM briefs WHERE date = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("listing briefs: %w", err)
	}
	defer rows.Close()

	var briefs []*domain.Brief
	for rows.Next() {
		var b domain.Brief
		var createdAt string
		if err := rows.Scan(&b.ID, &b.Date, &b.Body, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning brief: %w", err)
		}
		b.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		briefs = append(briefs, &b)
	}
	return briefs, rows.Err()
}

func (r *SQLiteBriefRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM briefs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting brief: %w", err)
	}
	return nil
}
