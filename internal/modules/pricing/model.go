// README: Price estimate variants returned for each kind of service pricing.
package pricing

import (
	"sensei/internal/modules/catalog"
	"sensei/internal/modules/location"
	"sensei/internal/types"
)

// Request asks for one service's price. Zone is matched against zone area
// lists; Location, when set, drives distance pricing.
type Request struct {
	Service   catalog.ServiceKey
	Zone      string
	CarMake   string
	TimeOfDay types.TimeOfDay
	Location  string
}

// MultiplierLookup is the result of resolving a zone or car make. When Found
// is false Factor is the neutral 1.0 and Category is empty.
type MultiplierLookup struct {
	Factor   float64
	Category string
	Found    bool
}

var notFound = MultiplierLookup{Factor: 1.0}

// EstimateKind is the wire discriminator of an Estimate.
type EstimateKind string

const (
	KindStandard          EstimateKind = "standard"
	KindMobileCallout     EstimateKind = "mobile_callout"
	KindPickAndDrop       EstimateKind = "pick_and_drop"
	KindTowing            EstimateKind = "towing"
	KindDiagnosisRequired EstimateKind = "DIAGNOSIS_REQUIRED"
)

// Estimate is the closed set of price results: StandardEstimate,
// FlatPlusDistanceEstimate, RoundTripEstimate, FixedRangeEstimate and
// DiagnosisRequiredEstimate.
type Estimate interface {
	Kind() EstimateKind
	ServiceKey() catalog.ServiceKey
	estimate()
}

type StandardEstimate struct {
	Service catalog.ServiceKey
	Labor   types.Range
	// Parts is zero and PartsNone true when the service uses no parts.
	Parts     types.Range
	PartsNone bool
	Total     types.Range
	TimeMins  types.Range
	Zone      MultiplierLookup
	Car       MultiplierLookup
	Note      string
}

// FlatPlusDistanceEstimate is a callout: a flat fee plus a boda ride out.
// Location is nil when no location was supplied and the static range used.
type FlatPlusDistanceEstimate struct {
	Service      catalog.ServiceKey
	FlatFee      int64
	Boda         types.Range
	Total        types.Range
	Location     *location.PriceContext
	Note         string
	Breakdown    string
	Example      string
	CoverageNote string
}

// RoundTripEstimate is pick and drop: a service fee plus boda both ways.
type RoundTripEstimate struct {
	Service      catalog.ServiceKey
	ServiceFee   int64
	PickupBoda   types.Range
	ReturnBoda   types.Range
	Total        types.Range
	Location     *location.PriceContext
	Note         string
	Example      string
	CoverageNote string
}

type FixedRangeEstimate struct {
	Service catalog.ServiceKey
	Range   types.Range
	Message string
	Note    string
}

type DiagnosisRequiredEstimate struct {
	Service        catalog.ServiceKey
	Message        string
	Recommendation string
	Note           string
}

func (StandardEstimate) Kind() EstimateKind          { return KindStandard }
func (FlatPlusDistanceEstimate) Kind() EstimateKind  { return KindMobileCallout }
func (RoundTripEstimate) Kind() EstimateKind         { return KindPickAndDrop }
func (FixedRangeEstimate) Kind() EstimateKind        { return KindTowing }
func (DiagnosisRequiredEstimate) Kind() EstimateKind { return KindDiagnosisRequired }

func (e StandardEstimate) ServiceKey() catalog.ServiceKey          { return e.Service }
func (e FlatPlusDistanceEstimate) ServiceKey() catalog.ServiceKey  { return e.Service }
func (e RoundTripEstimate) ServiceKey() catalog.ServiceKey         { return e.Service }
func (e FixedRangeEstimate) ServiceKey() catalog.ServiceKey        { return e.Service }
func (e DiagnosisRequiredEstimate) ServiceKey() catalog.ServiceKey { return e.Service }

func (StandardEstimate) estimate()          {}
func (FlatPlusDistanceEstimate) estimate()  {}
func (RoundTripEstimate) estimate()         {}
func (FixedRangeEstimate) estimate()        {}
func (DiagnosisRequiredEstimate) estimate() {}
