// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/joshsymonds/brewmatch/internal/model"
)

// EntryFilter defines filtering options for brew log queries. Zero values
// mean no constraint.
type EntryFilter struct {
	Since      *time.Time
	Until      *time.Time
	BrewMethod string
	Limit      int
}

// JournalStore defines the contract for brew log persistence.
type JournalStore interface {
	SaveEntry(ctx context.Context, entry *model.BrewLogEntry) error
	SaveEntries(ctx context.Context, entries []model.BrewLogEntry) error
	GetEntry(ctx context.Context, id string) (*model.BrewLogEntry, error)
	ListEntries(ctx context.Context, filter EntryFilter) ([]model.BrewLogEntry, error)
	UpdateEntry(ctx context.Context, entry *model.BrewLogEntry) error
	DeleteEntry(ctx context.Context, id string) error
	CountEntries(ctx context.Context) (int, error)

	Migrate(ctx context.Context) error
	Close() error
}
