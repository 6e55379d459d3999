package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/mehil/internal/db"
	"github.com/alexanderramin/mehil/internal/deadline"
	"github.com/alexanderramin/mehil/internal/domain"
)

// savedDeadlineColumns is the canonical SELECT column list for saved_deadlines.
const savedDeadlineColumns = `id, title, reference_date, duration_value, duration_unit, apply_recess,
		due_date, date_label, recess_triggered, created_at, updated_at`

// SQLiteSavedDeadlineRepo implements SavedDeadlineRepo on SQLite.
type SQLiteSavedDeadlineRepo struct {
	db db.DBTX
}

// NewSQLiteSavedDeadlineRepo creates a repo over a *sql.DB or a *sql.Tx.
func NewSQLiteSavedDeadlineRepo(db db.DBTX) *SQLiteSavedDeadlineRepo {
	return &SQLiteSavedDeadlineRepo{db: db}
}

func (r *SQLiteSavedDeadlineRepo) Create(ctx context.Context, s *domain.SavedDeadline) error {
	query := `INSERT INTO saved_deadlines (id, title, reference_date, duration_value, duration_unit, apply_recess,
		due_date, date_label, recess_triggered, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Title,
		formatDate(s.ReferenceDate),
		s.DurationValue,
		string(s.DurationUnit),
		boolToInt(s.ApplyJudicialRecess),
		formatDate(s.DueDate),
		s.DateLabel,
		boolToInt(s.RecessTriggered),
		formatTimestamp(s.CreatedAt),
		formatTimestamp(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting saved deadline: %w", err)
	}
	return nil
}

func (r *SQLiteSavedDeadlineRepo) GetByID(ctx context.Context, id string) (*domain.SavedDeadline, error) {
	query := `SELECT ` + savedDeadlineColumns + ` FROM saved_deadlines WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteSavedDeadlineRepo) FindByIDPrefix(ctx context.Context, prefix string) (*domain.SavedDeadline, error) {
	query := `SELECT ` + savedDeadlineColumns + ` FROM saved_deadlines
		WHERE substr(id, 1, length(?)) = ?
		ORDER BY created_at, rowid
		LIMIT 2`
	rows, err := r.db.QueryContext(ctx, query, prefix, prefix)
	if err != nil {
		return nil, fmt.Errorf("finding saved deadline by prefix: %w", err)
	}
	defer rows.Close()

	matches, err := r.scanAll(rows)
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("saved deadline %q: %w", prefix, ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("saved deadline %q: %w", prefix, ErrAmbiguousID)
	}
}

func (r *SQLiteSavedDeadlineRepo) List(ctx context.Context) ([]*domain.SavedDeadline, error) {
	query := `SELECT ` + savedDeadlineColumns + ` FROM saved_deadlines ORDER BY created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing saved deadlines: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *SQLiteSavedDeadlineRepo) ListDueFrom(ctx context.Context, from time.Time) ([]*domain.SavedDeadline, error) {
	query := `SELECT ` + savedDeadlineColumns + ` FROM saved_deadlines
		WHERE due_date >= ?
		ORDER BY due_date, created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query, formatDate(deadline.DateOf(from)))
	if err != nil {
		return nil, fmt.Errorf("listing upcoming saved deadlines: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *SQLiteSavedDeadlineRepo) Update(ctx context.Context, s *domain.SavedDeadline) error {
	query := `UPDATE saved_deadlines SET title = ?, reference_date = ?, duration_value = ?, duration_unit = ?,
		apply_recess = ?, due_date = ?, date_label = ?, recess_triggered = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Title,
		formatDate(s.ReferenceDate),
		s.DurationValue,
		string(s.DurationUnit),
		boolToInt(s.ApplyJudicialRecess),
		formatDate(s.DueDate),
		s.DateLabel,
		boolToInt(s.RecessTriggered),
		formatTimestamp(s.UpdatedAt),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating saved deadline: %w", err)
	}
	return requireAffected(res, s.ID)
}

func (r *SQLiteSavedDeadlineRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM saved_deadlines WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting saved deadline: %w", err)
	}
	return requireAffected(res, id)
}

func requireAffected(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("saved deadline %s: %w", id, ErrNotFound)
	}
	return nil
}

// rowScanner is implemented by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteSavedDeadlineRepo) scanOne(row *sql.Row) (*domain.SavedDeadline, error) {
	s, err := scanSavedDeadline(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("saved deadline: %w", ErrNotFound)
		}
		return nil, err
	}
	return s, nil
}

func (r *SQLiteSavedDeadlineRepo) scanAll(rows *sql.Rows) ([]*domain.SavedDeadline, error) {
	var out []*domain.SavedDeadline
	for rows.Next() {
		s, err := scanSavedDeadline(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating saved deadlines: %w", err)
	}
	return out, nil
}

func scanSavedDeadline(row rowScanner) (*domain.SavedDeadline, error) {
	var s domain.SavedDeadline
	var unit, refStr, dueStr, createdStr, updatedStr string
	var applyRecess, recessTriggered int

	err := row.Scan(
		&s.ID, &s.Title, &refStr, &s.DurationValue, &unit, &applyRecess,
		&dueStr, &s.DateLabel, &recessTriggered, &createdStr, &updatedStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning saved deadline: %w", err)
	}

	s.DurationUnit = deadline.Unit(unit)
	s.ApplyJudicialRecess = intToBool(applyRecess)
	s.RecessTriggered = intToBool(recessTriggered)

	if s.ReferenceDate, err = parseDate(refStr, "reference_date"); err != nil {
		return nil, err
	}
	if s.DueDate, err = parseDate(dueStr, "due_date"); err != nil {
		return nil, err
	}
	if s.CreatedAt, err = parseTimestamp(createdStr, "created_at"); err != nil {
		return nil, err
	}
	if s.UpdatedAt, err = parseTimestamp(updatedStr, "updated_at"); err != nil {
		return nil, err
	}
	return &s, nil
}
