package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/horae/internal/domain"
)

// SQLiteMilestoneRepo implements MilestoneRepo using a SQLite database.
type SQLiteMilestoneRepo struct {
	db *sql.DB
}

func NewSQLiteMilestoneRepo(db *sql.DB) *SQLiteMilestoneRepo {
	return &SQLiteMilestoneRepo{db: db}
}

func (r *SQLiteMilestoneRepo) Create(ctx context.Context, m *domain.Milestone) error {
	query := `INSERT INTO milestones (id, project_id, title, due_date, done, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.ProjectID, m.Title, m.DueDate, boolToInt(m.Done),
		m.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting milestone: %w", err)
	}
	return nil
}

func (r *SQLiteMilestoneRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Milestone, error) {
	query := `SELECT id, project_id, title, due_date, done, created_at FROM milestones
		WHERE project_id = ? ORDER BY due_date`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing milestones: %w", err)
	}
	defer rows.Close()

	var milestones []*domain.Milestone
	for rows.Next() {
		var m domain.Milestone
		var done int
		var createdAt string
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.Title, &m.DueDate, &done, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning milestone: %w", err)
		}
		m.Done = intToBool(done)
		m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		milestones = append(milestones, &m)
	}
	return milestones, rows.Err()
}

func (r *SQLiteMilestoneRepo) MarkDone(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE milestones SET done = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("marking milestone done: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("milestone %s not found", id)
	}
	return nil
}

func (r *SQLiteMilestoneRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM milestones WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting milestone: %w", err)
	}
	return nil
}
