package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lmoretti/respite/internal/domain"
)

// SQLiteJournalRepo implements JournalRepo using a SQLite database.
type SQLiteJournalRepo struct {
	db *sql.DB
}

// NewSQLiteJournalRepo creates a new SQLiteJournalRepo.
func NewSQLiteJournalRepo(db *sql.DB) *SQLiteJournalRepo {
	return &SQLiteJournalRepo{db: db}
}

func (r *SQLiteJournalRepo) Create(ctx context.Context, e *domain.JournalEntry) error {
	query := `INSERT INTO journal_entries (id, kind, checkin_type, break_type, break_id, mood, energy, stress, duration_min, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		string(e.Kind),
		string(e.CheckinType),
		string(e.BreakType),
		e.BreakID,
		e.Mood,
		e.Energy,
		e.Stress,
		e.DurationMin,
		e.Note,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting journal entry: %w", err)
	}
	return nil
}

func (r *SQLiteJournalRepo) GetByID(ctx context.Context, id string) (*domain.JournalEntry, error) {
	query := `SELECT id, kind, checkin_type, break_type, break_id, mood, energy, stress, duration_min, note, created_at
		FROM journal_entries WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanEntry(row)
}

func (r *SQLiteJournalRepo) ListRecent(ctx context.Context, days int) ([]*domain.JournalEntry, error) {
	query := `SELECT id, kind, checkin_type, break_type, break_id, mood, energy, stress, duration_min, note, created_at
		FROM journal_entries
		WHERE created_at >= date('now', ? || ' days')
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, fmt.Sprintf("-%d", days))
	if err != nil {
		return nil, fmt.Errorf("listing recent journal entries: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func (r *SQLiteJournalRepo) ListRecentByKind(ctx context.Context, kind domain.JournalKind, days int) ([]*domain.JournalEntry, error) {
	query := `SELECT id, kind, checkin_type, break_type, break_id, mood, energy, stress, duration_min, note, created_at
		FROM journal_entries
		WHERE kind = ? AND created_at >= date('now', ? || ' days')
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, string(kind), fmt.Sprintf("-%d", days))
	if err != nil {
		return nil, fmt.Errorf("listing journal entries by kind: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func (r *SQLiteJournalRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM journal_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting journal entry: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*domain.JournalEntry, error) {
	var e domain.JournalEntry
	var kind, checkinType, breakType, createdAt string
	err := row.Scan(&e.ID, &kind, &checkinType, &breakType, &e.BreakID,
		&e.Mood, &e.Energy, &e.Stress, &e.DurationMin, &e.Note, &createdAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("journal entry not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning journal entry: %w", err)
	}
	e.Kind = domain.JournalKind(kind)
	e.CheckinType = domain.CheckinType(checkinType)
	e.BreakType = domain.BreakType(breakType)
	e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &e, nil
}

func scanEntries(rows *sql.Rows) ([]*domain.JournalEntry, error) {
	var entries []*domain.JournalEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
