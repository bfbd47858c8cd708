package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/horae/internal/domain"
)

const sessionColumns = `id, project_id, started_at, minutes, note, created_at`

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db *sql.DB
}

func NewSQLiteSessionRepo(db *sql.DB) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.WorkSessionLog) error {
	query := `INSERT INTO work_sessions (id, project_id, started_at, minutes, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.ProjectID, s.StartedAt.Format(time.RFC3339), s.Minutes, s.Note,
		s.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.WorkSessionLog, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions WHERE project_id = ? ORDER BY started_at DESC`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.WorkSessionLog
	for rows.Next() {
		s, err := r.scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// LastByProject returns the most recent session for a project, or nil
// when the project has never been worked.
func (r *SQLiteSessionRepo) LastByProject(ctx context.Context, projectID string) (*domain.WorkSessionLog, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions WHERE project_id = ?
		ORDER BY started_at DESC LIMIT 1`
	s, err := r.scanSession(r.db.QueryRowContext(ctx, query, projectID))
	if err != nil {
		if err == errSessionNotFound {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM work_sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

var errSessionNotFound = fmt.Errorf("session not found")

func (r *SQLiteSessionRepo) scanSession(row rowScanner) (*domain.WorkSessionLog, error) {
	var s domain.WorkSessionLog
	var startedAt, createdAt string
	if err := row.Scan(&s.ID, &s.ProjectID, &startedAt, &s.Minutes, &s.Note, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, errSessionNotFound
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}
	s.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &s, nil
}
