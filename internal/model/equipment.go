package model

import "strings"

// MachineType is the category of the user's brewer.
type MachineType string

const (
	// MachineManual is a manual lever espresso machine.
	MachineManual MachineType = "manual"
	// MachineSemiAutomatic is a pump espresso machine with manual shot control.
	MachineSemiAutomatic MachineType = "semi-automatic"
	// MachineAutomatic is a pump espresso machine with volumetric control.
	MachineAutomatic MachineType = "automatic"
	// MachineSuperAutomatic is a bean-to-cup machine.
	MachineSuperAutomatic MachineType = "super-automatic"
	// MachinePourOver is a pour-over dripper.
	MachinePourOver MachineType = "pour-over"
	// MachineFrenchPress is a french press.
	MachineFrenchPress MachineType = "french-press"
	// MachineMokaPot is a stovetop moka pot.
	MachineMokaPot MachineType = "moka-pot"
	// MachineAeroPress is an AeroPress.
	MachineAeroPress MachineType = "aeropress"
)

// IsEspresso reports whether the machine pulls espresso shots.
func (m MachineType) IsEspresso() bool {
	switch m {
	case MachineManual, MachineSemiAutomatic, MachineAutomatic, MachineSuperAutomatic:
		return true
	}
	return false
}

// Label renders the machine type for sentences.
func (m MachineType) Label() string {
	return strings.ReplaceAll(string(m), "-", " ")
}

// GrinderKind distinguishes hand grinders from electric ones.
type GrinderKind string

const (
	// GrinderManual is a hand grinder.
	GrinderManual GrinderKind = "manual"
	// GrinderElectric is a motorized grinder.
	GrinderElectric GrinderKind = "electric"
)

// BurrType is the grinder mechanism.
type BurrType string

const (
	// BurrFlat is a pair of flat burrs.
	BurrFlat BurrType = "flat"
	// BurrConical is a conical burr set.
	BurrConical BurrType = "conical"
)

// BoilerType is how an espresso machine heats water.
type BoilerType string

const (
	// BoilerSingle is a single boiler shared by brew and steam.
	BoilerSingle BoilerType = "single"
	// BoilerDual has separate brew and steam boilers.
	BoilerDual BoilerType = "dual"
	// BoilerHeatExchanger brews through a heat exchanger in the steam boiler.
	BoilerHeatExchanger BoilerType = "heat-exchanger"
	// BoilerThermoblock heats water on demand.
	BoilerThermoblock BoilerType = "thermoblock"
)

// EquipmentProfile is the user's current setup, built per request from
// onboarding or wizard answers.
type EquipmentProfile struct {
	MachineID   string      `json:"machineId,omitempty"`
	MachineType MachineType `json:"machineType,omitempty"`
	GrinderID   string      `json:"grinderId,omitempty"`
	GrinderKind GrinderKind `json:"grinderType,omitempty"`
	BurrType    BurrType    `json:"burrType,omitempty"`
}

// PreInfusion describes a machine's pre-infusion support.
type PreInfusion struct {
	Available          bool `json:"available"`
	RecommendedSeconds int  `json:"recommendedSeconds,omitempty"`
}

// CatalogItem is the common view of machines and grinders used for
// budget and purpose scoring.
type CatalogItem interface {
	ItemID() string
	ItemName() string
	Tier() PriceTier
	UseCases() []string
	CatalogRating() float64
	CatalogReviews() int
}

// Machine is a catalog espresso machine.
type Machine struct {
	ID              string      `json:"id" validate:"required"`
	Name            string      `json:"name" validate:"required"`
	Brand           string      `json:"brand"`
	Model           string      `json:"model"`
	Type            MachineType `json:"type"`
	PriceTier       PriceTier   `json:"priceRange"`
	Price           float64     `json:"price" validate:"gte=0"`
	Rating          float64     `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount     int         `json:"reviewCount" validate:"gte=0"`
	BoilerType      BoilerType  `json:"boilerType"`
	PumpPressureBar float64     `json:"pumpPressure"`
	PreInfusion     PreInfusion `json:"preInfusion"`
	BestFor         []string    `json:"bestFor,omitempty"`
}

// Grinder is a catalog coffee grinder.
type Grinder struct {
	ID          string      `json:"id" validate:"required"`
	Name        string      `json:"name" validate:"required"`
	Brand       string      `json:"brand"`
	Model       string      `json:"model"`
	Kind        GrinderKind `json:"type"`
	BurrType    BurrType    `json:"burrType"`
	BurrSizeMM  int         `json:"burrSize"`
	Stepless    bool        `json:"stepless"`
	PriceTier   PriceTier   `json:"priceRange"`
	Price       float64     `json:"price" validate:"gte=0"`
	Rating      float64     `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount int         `json:"reviewCount" validate:"gte=0"`
	BestFor     []string    `json:"bestFor,omitempty"`
}

// ItemID implements CatalogItem.
func (m Machine) ItemID() string { return m.ID }

// ItemName implements CatalogItem.
func (m Machine) ItemName() string { return m.Name }

// Tier implements CatalogItem.
func (m Machine) Tier() PriceTier { return m.PriceTier }

// UseCases implements CatalogItem.
func (m Machine) UseCases() []string { return m.BestFor }

// CatalogRating implements CatalogItem.
func (m Machine) CatalogRating() float64 { return m.Rating }

// CatalogReviews implements CatalogItem.
func (m Machine) CatalogReviews() int { return m.ReviewCount }

// ItemID implements CatalogItem.
func (g Grinder) ItemID() string { return g.ID }

// ItemName implements CatalogItem.
func (g Grinder) ItemName() string { return g.Name }

// Tier implements CatalogItem.
func (g Grinder) Tier() PriceTier { return g.PriceTier }

// UseCases implements CatalogItem.
func (g Grinder) UseCases() []string { return g.BestFor }

// CatalogRating implements CatalogItem.
func (g Grinder) CatalogRating() float64 { return g.Rating }

// CatalogReviews implements CatalogItem.
func (g Grinder) CatalogReviews() int { return g.ReviewCount }
