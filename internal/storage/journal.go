package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"github.com/joshsymonds/brewmatch/internal/common"
	"github.com/joshsymonds/brewmatch/internal/model"
	"github.com/joshsymonds/brewmatch/internal/service"
)

// dateLayout is fixed-width so stored dates sort lexically.
const dateLayout = "2006-01-02T15:04:05.000000000Z"

const entryColumns = `id, date, coffee_name, brew_method, grind_size, dose_grams, water_grams,
	brew_time_seconds, water_temp_c, rating, notes, tasting_notes`

func formatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// SaveEntry stores a new entry, assigning an ID when it has none.
func (s *SQLiteStorage) SaveEntry(ctx context.Context, entry *model.BrewLogEntry) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := ValidateEntry(entry); err != nil {
		return err
	}
	return s.insertEntry(ctx, s.db, entry)
}

// SaveEntries stores a batch of entries in one transaction.
func (s *SQLiteStorage) SaveEntries(ctx context.Context, entries []model.BrewLogEntry) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateEntries(entries); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// IDs reach the caller's slice only once the batch is committed.
	batch := slices.Clone(entries)
	for i := range batch {
		if err := s.insertEntry(ctx, tx, &batch[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit brew log entries: %w", err)
	}
	for i := range batch {
		entries[i].ID = batch[i].ID
	}
	return nil
}

func (s *SQLiteStorage) insertEntry(ctx context.Context, q queryable, entry *model.BrewLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	notes, err := json.Marshal(nonNil(entry.TastingNotes))
	if err != nil {
		return fmt.Errorf("failed to encode tasting notes: %w", err)
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO brew_log (`+entryColumns+`, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`,
		entry.ID,
		formatDate(entry.Date),
		entry.CoffeeName,
		entry.BrewMethod,
		entry.GrindSize,
		entry.DoseGrams,
		entry.WaterGrams,
		entry.BrewTimeSeconds,
		entry.WaterTempC,
		entry.Rating,
		entry.Notes,
		string(notes),
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			return fmt.Errorf("%w: brew log entry %s", common.ErrDuplicateEntry, entry.ID)
		}
		return fmt.Errorf("failed to save brew log entry: %w", err)
	}
	return nil
}

// GetEntry retrieves an entry by ID.
func (s *SQLiteStorage) GetEntry(ctx context.Context, id string) (*model.BrewLogEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM brew_log WHERE id = ?`, id)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: brew log entry %s", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get brew log entry: %w", err)
	}
	return entry, nil
}

// ListEntries returns entries newest first.
func (s *SQLiteStorage) ListEntries(ctx context.Context, filter service.EntryFilter) ([]model.BrewLogEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if filter.Since != nil && filter.Until != nil && !filter.Since.Before(*filter.Until) {
		return nil, ErrInvalidDateRange
	}

	var (
		where []string
		args  []any
	)
	if filter.Since != nil {
		where = append(where, "date >= ?")
		args = append(args, formatDate(*filter.Since))
	}
	if filter.Until != nil {
		where = append(where, "date < ?")
		args = append(args, formatDate(*filter.Until))
	}
	if filter.BrewMethod != "" {
		where = append(where, "brew_method = ?")
		args = append(args, filter.BrewMethod)
	}

	query := `SELECT ` + entryColumns + ` FROM brew_log`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY date DESC, id"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list brew log entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := []model.BrewLogEntry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan brew log entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate brew log entries: %w", err)
	}
	return entries, nil
}

// UpdateEntry replaces an existing entry.
func (s *SQLiteStorage) UpdateEntry(ctx context.Context, entry *model.BrewLogEntry) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := ValidateEntry(entry); err != nil {
		return err
	}
	if err := validateString(entry.ID, "id"); err != nil {
		return err
	}

	notes, err := json.Marshal(nonNil(entry.TastingNotes))
	if err != nil {
		return fmt.Errorf("failed to encode tasting notes: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE brew_log
		SET date = ?, coffee_name = ?, brew_method = ?, grind_size = ?, dose_grams = ?,
			water_grams = ?, brew_time_seconds = ?, water_temp_c = ?, rating = ?, notes = ?,
			tasting_notes = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`,
		formatDate(entry.Date),
		entry.CoffeeName,
		entry.BrewMethod,
		entry.GrindSize,
		entry.DoseGrams,
		entry.WaterGrams,
		entry.BrewTimeSeconds,
		entry.WaterTempC,
		entry.Rating,
		entry.Notes,
		string(notes),
		entry.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update brew log entry: %w", err)
	}
	return requireAffected(result, entry.ID)
}

// DeleteEntry removes an entry by ID.
func (s *SQLiteStorage) DeleteEntry(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM brew_log WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete brew log entry: %w", err)
	}
	return requireAffected(result, id)
}

// CountEntries returns the number of stored entries.
func (s *SQLiteStorage) CountEntries(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM brew_log`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count brew log entries: %w", err)
	}
	return count, nil
}

func requireAffected(result sql.Result, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: brew log entry %s", common.ErrNotFound, id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*model.BrewLogEntry, error) {
	var (
		entry     model.BrewLogEntry
		date      string
		grindSize sql.NullString
		notes     sql.NullString
		tasting   string
	)

	err := row.Scan(
		&entry.ID,
		&date,
		&entry.CoffeeName,
		&entry.BrewMethod,
		&grindSize,
		&entry.DoseGrams,
		&entry.WaterGrams,
		&entry.BrewTimeSeconds,
		&entry.WaterTempC,
		&entry.Rating,
		&notes,
		&tasting,
	)
	if err != nil {
		return nil, err
	}

	entry.Date, err = time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid stored date %q: %w", date, err)
	}
	entry.GrindSize = grindSize.String
	entry.Notes = notes.String

	if tasting != "" && tasting != "[]" {
		if err := json.Unmarshal([]byte(tasting), &entry.TastingNotes); err != nil {
			return nil, fmt.Errorf("invalid stored tasting notes: %w", err)
		}
	}

	return &entry, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
