// Package catalog supplies the read-only reference data (beans, machines,
// grinders) consumed by the recommendation engine.
package catalog

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/joshsymonds/brewmatch/internal/common"
	"github.com/joshsymonds/brewmatch/internal/model"
)

//go:embed data/catalog.json
var embedded []byte

// Provider supplies immutable catalog arrays. Callers must not modify the
// returned slices' elements.
type Provider interface {
	Beans() []model.Bean
	Machines() []model.Machine
	Grinders() []model.Grinder
	// Version identifies the catalog contents; it changes whenever any
	// record changes.
	Version() string

	Machine(id string) (model.Machine, bool)
	Grinder(id string) (model.Grinder, bool)
	// Item finds a machine or grinder.
	Item(id string) (model.CatalogItem, bool)
}

// Ensure Catalog implements Provider.
var _ Provider = (*Catalog)(nil)

// Catalog is an in-memory Provider loaded from JSON.
type Catalog struct {
	version  string
	beans    []model.Bean
	machines []model.Machine
	grinders []model.Grinder
}

type document struct {
	Beans    []model.Bean    `json:"beans" validate:"dive"`
	Machines []model.Machine `json:"machines" validate:"dive"`
	Grinders []model.Grinder `json:"grinders" validate:"dive"`
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(embedded)
}

// LoadFile reads a catalog from a JSON file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from user configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Load returns the catalog at path, or the embedded catalog when path is
// empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCatalogInvalid, err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCatalogInvalid, err)
	}

	if err := checkUniqueIDs(doc); err != nil {
		return nil, err
	}

	for _, m := range doc.Machines {
		if !m.PriceTier.Known() {
			slog.Debug("Catalog machine has no recognized price tier", "id", m.ID)
		}
	}
	for _, g := range doc.Grinders {
		if !g.PriceTier.Known() {
			slog.Debug("Catalog grinder has no recognized price tier", "id", g.ID)
		}
	}

	sum := sha256.Sum256(data)

	return &Catalog{
		version:  hex.EncodeToString(sum[:])[:12],
		beans:    doc.Beans,
		machines: doc.Machines,
		grinders: doc.Grinders,
	}, nil
}

func checkUniqueIDs(doc document) error {
	seen := make(map[string]string)
	claim := func(kind, id string) error {
		if prev, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate id %q (%s and %s)", common.ErrCatalogInvalid, id, prev, kind)
		}
		seen[id] = kind
		return nil
	}

	for _, b := range doc.Beans {
		if err := claim("bean", b.ID); err != nil {
			return err
		}
	}
	for _, m := range doc.Machines {
		if err := claim("machine", m.ID); err != nil {
			return err
		}
	}
	for _, g := range doc.Grinders {
		if err := claim("grinder", g.ID); err != nil {
			return err
		}
	}
	return nil
}

// New builds a catalog from in-memory records. The version is derived from
// the records' JSON encoding.
func New(beans []model.Bean, machines []model.Machine, grinders []model.Grinder) (*Catalog, error) {
	data, err := json.Marshal(document{Beans: beans, Machines: machines, Grinders: grinders})
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	return Parse(data)
}

// Version implements Provider.
func (c *Catalog) Version() string { return c.version }

// Beans implements Provider.
func (c *Catalog) Beans() []model.Bean { return slices.Clone(c.beans) }

// Machines implements Provider.
func (c *Catalog) Machines() []model.Machine { return slices.Clone(c.machines) }

// Grinders implements Provider.
func (c *Catalog) Grinders() []model.Grinder { return slices.Clone(c.grinders) }

// Machine implements Provider.
func (c *Catalog) Machine(id string) (model.Machine, bool) {
	for _, m := range c.machines {
		if m.ID == id {
			return m, true
		}
	}
	return model.Machine{}, false
}

// Grinder implements Provider.
func (c *Catalog) Grinder(id string) (model.Grinder, bool) {
	for _, g := range c.grinders {
		if g.ID == id {
			return g, true
		}
	}
	return model.Grinder{}, false
}

// Item implements Provider.
func (c *Catalog) Item(id string) (model.CatalogItem, bool) {
	if m, ok := c.Machine(id); ok {
		return m, true
	}
	if g, ok := c.Grinder(id); ok {
		return g, true
	}
	return nil, false
}
