// README: Catalog records: diagnostic templates, road network, fare tables.
package catalog

import (
	"fmt"

	"sensei/internal/types"
)

// ServiceKey names an entry in the service pricing table.
type ServiceKey string

const (
	ServiceBatteryReplacement ServiceKey = "battery_replacement"
	ServiceOilChange          ServiceKey = "oil_change"
	ServiceBrakePads          ServiceKey = "brake_pads"
	ServiceDiagnosticScan     ServiceKey = "diagnostic_scan"
	ServiceAlternator         ServiceKey = "alternator"
	ServiceStarterMotor       ServiceKey = "starter_motor"
	ServiceRadiator           ServiceKey = "radiator"
	ServiceMobileCallout      ServiceKey = "mobile_callout"
	ServicePickAndDrop        ServiceKey = "pick_and_drop"
	ServiceTowing             ServiceKey = "towing"
	ServiceTransmission       ServiceKey = "transmission"
	ServiceEngineOverhaul     ServiceKey = "engine_overhaul"
	ServiceSpecialty          ServiceKey = "specialty_service"
)

// RecommendedService is the business model a template routes the customer to.
type RecommendedService string

const (
	MobileMechanic RecommendedService = "mobile_mechanic"
	PickAndDrop    RecommendedService = "pick_and_drop"
	CarSpecific    RecommendedService = "car_specific"
)

func (r RecommendedService) Valid() bool {
	switch r {
	case MobileMechanic, PickAndDrop, CarSpecific:
		return true
	}
	return false
}

type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

func (c Confidence) Valid() bool {
	switch c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return true
	}
	return false
}

// Template pairs trigger keywords with a diagnosis and a pricing rule.
// Keywords keep their authored order.
type Template struct {
	ID                 string             `json:"id"`
	Keywords           []string           `json:"keywords"`
	Diagnosis          string             `json:"diagnosis"`
	ProbableCauses     []string           `json:"probable_causes"`
	RecommendedService RecommendedService `json:"recommended_service"`
	Urgent             bool               `json:"urgent"`
	DIYPossible        bool               `json:"diy_possible"`
	DIYSteps           []string           `json:"diy_steps,omitempty"`
	Warning            string             `json:"warning,omitempty"`
	PriceService       ServiceKey         `json:"price_service"`
	Confidence         Confidence         `json:"confidence"`
	KenyaContext       string             `json:"kenya_context"`
}

// DistanceBand is a km range along one road with its estates and base boda fare.
type DistanceBand struct {
	FromKm  int         `json:"from_km"`
	ToKm    int         `json:"to_km"`
	Estates []string    `json:"estates"`
	Boda    types.Range `json:"boda_price"`
}

// Label renders the band the way it is quoted to customers, e.g. "5-10km".
func (b DistanceBand) Label() string {
	return fmt.Sprintf("%d-%dkm", b.FromKm, b.ToKm)
}

type TrafficMultiplier struct {
	Peak   float64 `json:"peak"`
	Normal float64 `json:"normal"`
}

// For returns the multiplier for tod, or 1.0 for values other than peak and
// normal.
func (m TrafficMultiplier) For(tod types.TimeOfDay) float64 {
	switch tod {
	case types.Peak:
		return m.Peak
	case types.Normal:
		return m.Normal
	}
	return 1.0
}

type RoadSegment struct {
	Key        string            `json:"key"`
	Name       string            `json:"name"`
	Direction  string            `json:"direction"`
	CoverageKm int               `json:"coverage_km"`
	Bands      []DistanceBand    `json:"distance_bands"`
	Traffic    TrafficMultiplier `json:"traffic_multiplier"`
	Notes      string            `json:"notes"`
}

// Zone is a fare tier over a curated set of estate names.
type Zone struct {
	Name       string   `json:"name"`
	Multiplier float64  `json:"multiplier"`
	Areas      []string `json:"areas"`
}

type CarCategory struct {
	Name       string   `json:"name"`
	Multiplier float64  `json:"multiplier"`
	Makes      []string `json:"makes"`
	Note       string   `json:"note,omitempty"`
}

// ServiceProfile describes one of the business models a customer is routed to.
type ServiceProfile struct {
	Service      RecommendedService `json:"service"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	BestFor      []string           `json:"best_for"`
	ResponseTime string             `json:"response_time"`
	Commission   string             `json:"commission"`
}

type CoveragePolicy struct {
	MaxDistanceKm       int    `json:"max_distance_km"`
	MobileMechanicMaxKm int    `json:"mobile_mechanic_max_km"`
	PickAndDropMaxKm    int    `json:"pick_and_drop_max_km"`
	BeyondCoverage      string `json:"beyond_coverage"`
	EmergencyOverride   string `json:"emergency_override"`
}

// MaxKmFor returns the coverage radius of a distance-priced service, and
// false for services that are not priced by distance.
func (p CoveragePolicy) MaxKmFor(key ServiceKey) (int, bool) {
	switch key {
	case ServiceMobileCallout:
		return p.MobileMechanicMaxKm, true
	case ServicePickAndDrop:
		return p.PickAndDropMaxKm, true
	}
	return 0, false
}

// PricingKind tags the ServicePricing variants on the wire.
type PricingKind string

const (
	KindStandard          PricingKind = "standard"
	KindFlatPlusDistance  PricingKind = "flat_plus_distance"
	KindRoundTrip         PricingKind = "round_trip_plus_distance"
	KindFixedRange        PricingKind = "fixed_range"
	KindDiagnosisRequired PricingKind = "diagnosis_required"
)

// ServicePricing is the closed set of pricing rules. The variants are
// StandardPricing, FlatPlusDistancePricing, RoundTripPricing,
// FixedRangePricing and DiagnosisRequiredPricing.
type ServicePricing interface {
	Kind() PricingKind
	Note() string
	servicePricing()
}

type StandardPricing struct {
	Labor    types.Range
	Parts    types.Range
	TimeMins types.Range
	Notes    string
}

type FlatPlusDistancePricing struct {
	FlatFee int64
	Boda    types.Range
	Notes   string
}

type RoundTripPricing struct {
	ServiceFee int64
	PickupBoda types.Range
	ReturnBoda types.Range
	Notes      string
}

type FixedRangePricing struct {
	Range types.Range
	Notes string
}

type DiagnosisRequiredPricing struct {
	Notes string
}

func (StandardPricing) Kind() PricingKind          { return KindStandard }
func (FlatPlusDistancePricing) Kind() PricingKind  { return KindFlatPlusDistance }
func (RoundTripPricing) Kind() PricingKind         { return KindRoundTrip }
func (FixedRangePricing) Kind() PricingKind        { return KindFixedRange }
func (DiagnosisRequiredPricing) Kind() PricingKind { return KindDiagnosisRequired }

func (p StandardPricing) Note() string          { return p.Notes }
func (p FlatPlusDistancePricing) Note() string  { return p.Notes }
func (p RoundTripPricing) Note() string         { return p.Notes }
func (p FixedRangePricing) Note() string        { return p.Notes }
func (p DiagnosisRequiredPricing) Note() string { return p.Notes }

func (StandardPricing) servicePricing()          {}
func (FlatPlusDistancePricing) servicePricing()  {}
func (RoundTripPricing) servicePricing()         {}
func (FixedRangePricing) servicePricing()        {}
func (DiagnosisRequiredPricing) servicePricing() {}
