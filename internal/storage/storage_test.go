package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshsymonds/brewmatch/internal/common"
	"github.com/joshsymonds/brewmatch/internal/model"
	"github.com/joshsymonds/brewmatch/internal/service"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

var base = time.Date(2025, time.April, 10, 8, 30, 0, 0, time.UTC)

func testEntry(coffee, method string, offset time.Duration, rating int) model.BrewLogEntry {
	return model.BrewLogEntry{
		Date:            base.Add(offset),
		CoffeeName:      coffee,
		BrewMethod:      method,
		GrindSize:       "medium",
		DoseGrams:       15,
		WaterGrams:      250,
		BrewTimeSeconds: 180,
		WaterTempC:      94,
		Rating:          rating,
	}
}

func TestNewSQLiteStorage_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("  ")
	assert.ErrorIs(t, err, ErrEmptyString)
}

func TestMigrate(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	version, err := store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)

	// Running again is a no-op.
	require.NoError(t, store.Migrate(ctx))

	var indexCount int
	err = store.db.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='index' AND name IN ('idx_brew_log_date', 'idx_brew_log_method')
	`).Scan(&indexCount)
	require.NoError(t, err)
	assert.Equal(t, 2, indexCount)
}

func TestMigrationVersionsAreSequential(t *testing.T) {
	for i, m := range migrations {
		assert.Equal(t, i+1, m.Version)
		assert.NotEmpty(t, m.Description)
	}
	assert.Equal(t, ExpectedSchemaVersion, migrations[len(migrations)-1].Version)
}

func TestSaveAndGetEntry(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	entry := testEntry("Kenya AA", "pour-over", 0, 5)
	entry.Notes = "juicy"
	entry.TastingNotes = []string{"blackcurrant", "grapefruit"}

	require.NoError(t, store.SaveEntry(ctx, &entry))
	require.NotEmpty(t, entry.ID)

	got, err := store.GetEntry(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry, *got)
	assert.True(t, got.Date.Equal(base))
}

func TestSaveEntry_Errors(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	existing := testEntry("Kenya AA", "pour-over", 0, 5)
	require.NoError(t, store.SaveEntry(ctx, &existing))

	tests := []struct {
		name    string
		entry   *model.BrewLogEntry
		wantErr error
	}{
		{name: "nil entry", entry: nil, wantErr: ErrNilParameter},
		{name: "rating too high", entry: func() *model.BrewLogEntry { e := testEntry("x", "espresso", 0, 6); return &e }(), wantErr: common.ErrInvalidEntry},
		{name: "missing coffee", entry: func() *model.BrewLogEntry { e := testEntry("", "espresso", 0, 3); return &e }(), wantErr: common.ErrInvalidEntry},
		{name: "missing date", entry: &model.BrewLogEntry{CoffeeName: "x", BrewMethod: "espresso", Rating: 3}, wantErr: common.ErrInvalidEntry},
		{name: "duplicate id", entry: func() *model.BrewLogEntry { e := testEntry("y", "espresso", 0, 3); e.ID = existing.ID; return &e }(), wantErr: common.ErrDuplicateEntry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.SaveEntry(ctx, tt.entry)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	//nolint:staticcheck // nil context is the case under test
	assert.ErrorIs(t, store.SaveEntry(nil, &existing), ErrNilContext)
}

func TestListEntries(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	entries := []model.BrewLogEntry{
		testEntry("a", "espresso", -48*time.Hour, 3),
		testEntry("b", "pour-over", 0, 4),
		testEntry("c", "espresso", -24*time.Hour, 5),
	}
	require.NoError(t, store.SaveEntries(ctx, entries))

	since := base.Add(-30 * time.Hour)
	until := base

	tests := []struct {
		name   string
		filter service.EntryFilter
		want   []string
	}{
		{name: "all newest first", filter: service.EntryFilter{}, want: []string{"b", "c", "a"}},
		{name: "since", filter: service.EntryFilter{Since: &since}, want: []string{"b", "c"}},
		{name: "window", filter: service.EntryFilter{Since: &since, Until: &until}, want: []string{"c"}},
		{name: "method", filter: service.EntryFilter{BrewMethod: "espresso"}, want: []string{"c", "a"}},
		{name: "limit", filter: service.EntryFilter{Limit: 1}, want: []string{"b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.ListEntries(ctx, tt.filter)
			require.NoError(t, err)

			names := make([]string, len(got))
			for i, e := range got {
				names[i] = e.CoffeeName
			}
			assert.Equal(t, tt.want, names)
		})
	}

	_, err := store.ListEntries(ctx, service.EntryFilter{Since: &until, Until: &since})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestListEntries_Empty(t *testing.T) {
	store := createTestStorage(t)

	got, err := store.ListEntries(context.Background(), service.EntryFilter{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSaveEntries_RollsBackOnFailure(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	first := testEntry("a", "espresso", 0, 3)
	first.ID = "same"
	second := testEntry("b", "espresso", time.Hour, 3)
	second.ID = "same"

	err := store.SaveEntries(ctx, []model.BrewLogEntry{first, second})
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)

	count, err := store.CountEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	err = store.SaveEntries(ctx, []model.BrewLogEntry{testEntry("ok", "espresso", 0, 3), testEntry("bad", "espresso", 0, 0)})
	assert.ErrorIs(t, err, common.ErrInvalidEntry)
	assert.Contains(t, err.Error(), "index 1")
}

func TestSaveEntries_AssignsIDsOnlyOnCommit(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	existing := testEntry("existing", "espresso", 0, 4)
	existing.ID = "taken"
	require.NoError(t, store.SaveEntry(ctx, &existing))

	clash := testEntry("clash", "espresso", time.Hour, 3)
	clash.ID = "taken"
	failed := []model.BrewLogEntry{testEntry("fresh", "pour-over", 0, 5), clash}

	err := store.SaveEntries(ctx, failed)
	require.ErrorIs(t, err, common.ErrDuplicateEntry)
	assert.Empty(t, failed[0].ID)

	saved := []model.BrewLogEntry{testEntry("fresh", "pour-over", 0, 5), testEntry("second", "aeropress", time.Hour, 4)}
	require.NoError(t, store.SaveEntries(ctx, saved))

	for _, entry := range saved {
		require.NotEmpty(t, entry.ID)
		got, err := store.GetEntry(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, entry.CoffeeName, got.CoffeeName)
	}
}

func TestUpdateAndDeleteEntry(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	entry := testEntry("Colombia", "espresso", 0, 3)
	require.NoError(t, store.SaveEntry(ctx, &entry))

	entry.Rating = 5
	entry.TastingNotes = []string{"panela"}
	require.NoError(t, store.UpdateEntry(ctx, &entry))

	got, err := store.GetEntry(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Rating)
	assert.Equal(t, []string{"panela"}, got.TastingNotes)

	missing := testEntry("Ghost", "espresso", 0, 3)
	missing.ID = "missing"
	assert.ErrorIs(t, store.UpdateEntry(ctx, &missing), common.ErrNotFound)

	require.NoError(t, store.DeleteEntry(ctx, entry.ID))
	_, err = store.GetEntry(ctx, entry.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.ErrorIs(t, store.DeleteEntry(ctx, entry.ID), common.ErrNotFound)
	assert.ErrorIs(t, store.DeleteEntry(ctx, ""), ErrEmptyString)
}
