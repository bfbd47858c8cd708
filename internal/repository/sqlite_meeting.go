package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/horae/internal/domain"
)

const meetingColumns = `id, date, title, start_minutes, duration_minutes, project_id, created_at`

// SQLiteMeetingRepo implements MeetingRepo using a SQLite database.
type SQLiteMeetingRepo struct {
	db *sql.DB
}

func NewSQLiteMeetingRepo(db *sql.DB) *SQLiteMeetingRepo {
	return &SQLiteMeetingRepo{db: db}
}

func (r *SQLiteMeetingRepo) Create(ctx context.Context, m *domain.Meeting) error {
	query := `INSERT INTO meetings (id, date, title, start_minutes, duration_minutes, project_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.Date, m.Title, m.StartMinutes, m.DurationMinutes, m.ProjectID,
		m.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting meeting: %w", err)
	}
	return nil
}

func (r *SQLiteMeetingRepo) GetByID(ctx context.Context, id string) (*domain.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE id = ?`
	return r.scanMeeting(r.db.QueryRowContext(ctx, query, id))
}

// ListByDate returns the meetings for one date in insertion order, which
// is the order the layout engine places them in.
func (r *SQLiteMeetingRepo) ListByDate(ctx context.Context, date string) ([]*domain.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE date = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("listing meetings for %s: %w", date, err)
	}
	defer rows.Close()
	return r.scanMeetings(rows)
}

func (r *SQLiteMeetingRepo) ListByDateRange(ctx context.Context, from, to string) ([]*domain.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE date >= ? AND date <= ?
		ORDER BY date, created_at, id`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing meetings %s..%s: %w", from, to, err)
	}
	defer rows.Close()
	return r.scanMeetings(rows)
}

func (r *SQLiteMeetingRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM meetings WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting meeting: %w", err)
	}
	return nil
}

func (r *SQLiteMeetingRepo) scanMeeting(row rowScanner) (*domain.Meeting, error) {
	var m domain.Meeting
	var createdAt string
	if err := row.Scan(&m.ID, &m.Date, &m.Title, &m.StartMinutes, &m.DurationMinutes, &m.ProjectID, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("meeting not found")
		}
		return nil, fmt.Errorf("scanning meeting: %w", err)
	}
	m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &m, nil
}

func (r *SQLiteMeetingRepo) scanMeetings(rows *sql.Rows) ([]*domain.Meeting, error) {
	var meetings []*domain.Meeting
	for rows.Next() {
		m, err := r.scanMeeting(rows)
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}
