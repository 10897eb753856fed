package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/campusadmin/internal/db"
	"github.com/alexanderramin/campusadmin/internal/domain"
)

// SQLiteJournalRepo persists the local activity journal.
type SQLiteJournalRepo struct {
	db db.DBTX
}

// NewSQLiteJournalRepo creates a repo over a *sql.DB or a *sql.Tx.
func NewSQLiteJournalRepo(conn db.DBTX) *SQLiteJournalRepo {
	return &SQLiteJournalRepo{db: conn}
}

// journalTimeLayout is fixed-width so that the TEXT column sorts
// chronologically.
const journalTimeLayout = "2006-01-02T15:04:05.000000Z"

const journalColumns = `id, at, op, kind, college, program, record_id, summary, ok, error, base_url`

func (r *SQLiteJournalRepo) Append(ctx context.Context, e *domain.JournalEntry) error {
	query := `INSERT INTO journal_entries (` + journalColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.At.UTC().Format(journalTimeLayout),
		string(e.Op),
		e.Kind,
		e.College,
		e.Program,
		string(e.RecordID),
		e.Summary,
		boolToInt(e.OK),
		e.Error,
		e.BaseURL,
	)
	if err != nil {
		return fmt.Errorf("inserting journal entry: %w", err)
	}
	return nil
}

func (r *SQLiteJournalRepo) GetByID(ctx context.Context, id string) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalColumns + ` FROM journal_entries WHERE id = ?`
	e, err := scanJournalEntry(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return e, err
}

// ListRecent returns up to limit entries, newest first.
func (r *SQLiteJournalRepo) ListRecent(ctx context.Context, limit int) ([]*domain.JournalEntry, error) {
	query := `SELECT ` + journalColumns + ` FROM journal_entries
		ORDER BY at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing journal entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.JournalEntry
	for rows.Next() {
		e, err := scanJournalEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating journal entries: %w", err)
	}
	return entries, nil
}

// Prune deletes all but the newest keep entries and reports how many rows
// were removed.
func (r *SQLiteJournalRepo) Prune(ctx context.Context, keep int) (int64, error) {
	query := `DELETE FROM journal_entries WHERE rowid NOT IN (
		SELECT rowid FROM journal_entries ORDER BY at DESC, rowid DESC LIMIT ?)`
	res, err := r.db.ExecContext(ctx, query, keep)
	if err != nil {
		return 0, fmt.Errorf("pruning journal: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJournalEntry(row rowScanner) (*domain.JournalEntry, error) {
	var e domain.JournalEntry
	var at, op, recordID string
	var ok int

	err := row.Scan(&e.ID, &at, &op, &e.Kind, &e.College, &e.Program,
		&recordID, &e.Summary, &ok, &e.Error, &e.BaseURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning journal entry: %w", err)
	}

	e.At, err = time.Parse(journalTimeLayout, at)
	if err != nil {
		return nil, fmt.Errorf("parsing journal time %q: %w", at, err)
	}
	e.Op = domain.Op(op)
	e.RecordID = domain.ID(recordID)
	e.OK = ok != 0
	return &e, nil
}
