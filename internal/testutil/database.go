// Package testutil provides shared helpers for tests that need a journal
// store or brew log fixtures.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/joshsymonds/brewmatch/internal/model"
	"github.com/joshsymonds/brewmatch/internal/service"
	"github.com/joshsymonds/brewmatch/internal/storage"
)

// SetupTestStore creates a migrated in-memory journal store seeded with
// the given entries. The store is closed when the test ends.
//
// Example:
//
//	store := testutil.SetupTestStore(t,
//		testutil.NewEntry("Ethiopia Yirgacheffe").Method("pour-over").Rating(5).Build(),
//	)
func SetupTestStore(t *testing.T, entries ...model.BrewLogEntry) service.JournalStore {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err, "failed to create test database")

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx), "failed to run migrations")

	if len(entries) > 0 {
		require.NoError(t, store.SaveEntries(ctx, entries), "failed to seed entries")
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

// EntryBuilder builds valid brew log entries for tests.
type EntryBuilder struct {
	entry model.BrewLogEntry
}

// NewEntry starts a valid espresso entry for the coffee, dated now.
func NewEntry(coffee string) *EntryBuilder {
	return &EntryBuilder{entry: model.BrewLogEntry{
		Date:            time.Now().UTC(),
		CoffeeName:      coffee,
		BrewMethod:      "espresso",
		GrindSize:       "fine",
		DoseGrams:       18,
		WaterGrams:      36,
		BrewTimeSeconds: 28,
		WaterTempC:      93,
		Rating:          4,
	}}
}

// ID sets the entry ID.
func (b *EntryBuilder) ID(id string) *EntryBuilder {
	b.entry.ID = id
	return b
}

// Method sets the brew method.
func (b *EntryBuilder) Method(method string) *EntryBuilder {
	b.entry.BrewMethod = method
	return b
}

// Rating sets the rating.
func (b *EntryBuilder) Rating(rating int) *EntryBuilder {
	b.entry.Rating = rating
	return b
}

// At sets the entry date.
func (b *EntryBuilder) At(date time.Time) *EntryBuilder {
	b.entry.Date = date
	return b
}

// Ago dates the entry d before now.
func (b *EntryBuilder) Ago(d time.Duration) *EntryBuilder {
	b.entry.Date = time.Now().UTC().Add(-d)
	return b
}

// Notes sets free-form notes and tasting notes.
func (b *EntryBuilder) Notes(notes string, tasting ...string) *EntryBuilder {
	b.entry.Notes = notes
	b.entry.TastingNotes = tasting
	return b
}

// Build returns the entry.
func (b *EntryBuilder) Build() model.BrewLogEntry {
	return b.entry
}
