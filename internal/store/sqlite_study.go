package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/resolvai/resolvai/internal/db"
	"github.com/resolvai/resolvai/internal/domain"
)

// SQLiteStudyStore implements StudyStore using a SQLite database.
// Rows whose payload fails to decode are reported to logw and treated
// as absent, never propagated as a fatal error.
type SQLiteStudyStore struct {
	db   db.DBTX
	logw io.Writer
}

// NewSQLiteStudyStore creates a new SQLiteStudyStore. logw receives
// one line per malformed row skipped during List; pass io.Discard to
// silence it.
func NewSQLiteStudyStore(conn db.DBTX, logw io.Writer) *SQLiteStudyStore {
	if logw == nil {
		logw = io.Discard
	}
	return &SQLiteStudyStore{db: conn, logw: logw}
}

func (r *SQLiteStudyStore) List(ctx context.Context) ([]*domain.Study, error) {
	query := `SELECT id, method, title, date, data FROM studies ORDER BY date DESC, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing studies: %w", err)
	}
	defer rows.Close()

	var studies []*domain.Study
	for rows.Next() {
		var id, method, title, dateStr, data string
		if err := rows.Scan(&id, &method, &title, &dateStr, &data); err != nil {
			return nil, fmt.Errorf("scanning study row: %w", err)
		}

		s, err := buildStudy(id, method, title, dateStr, data)
		if err != nil {
			fmt.Fprintf(r.logw, "skipping malformed study %s: %v\n", id, err)
			continue
		}
		studies = append(studies, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating studies: %w", err)
	}
	return studies, nil
}

func (r *SQLiteStudyStore) GetByID(ctx context.Context, id string) (*domain.Study, error) {
	query := `SELECT id, method, title, date, data FROM studies WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var sid, method, title, dateStr, data string
	if err := row.Scan(&sid, &method, &title, &dateStr, &data); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("study %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning study: %w", err)
	}
	return buildStudy(sid, method, title, dateStr, data)
}

func (r *SQLiteStudyStore) Upsert(ctx context.Context, s *domain.Study) error {
	data, err := json.Marshal(s.Data)
	if err != nil {
		return fmt.Errorf("marshaling study payload: %w", err)
	}

	query := `INSERT INTO studies (id, method, title, date, data) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET method = excluded.method, title = excluded.title,
		date = excluded.date, data = excluded.data`
	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		string(s.Method),
		s.Title,
		s.Date.UTC().Format(time.RFC3339),
		string(data),
	)
	if err != nil {
		return fmt.Errorf("upserting study: %w", err)
	}
	return nil
}

func (r *SQLiteStudyStore) Remove(ctx context.Context, id string) error {
	query := `DELETE FROM studies WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("removing study: %w", err)
	}
	return nil
}

// buildStudy assembles a domain.Study from raw column values.
func buildStudy(id, method, title, dateStr, data string) (*domain.Study, error) {
	date, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		return nil, fmt.Errorf("parsing study date: %w", err)
	}
	payload, err := domain.UnmarshalStudyData(domain.Method(method), []byte(data))
	if err != nil {
		return nil, err
	}
	return &domain.Study{
		ID:     id,
		Method: domain.Method(method),
		Title:  title,
		Date:   date,
		Data:   payload,
	}, nil
}
