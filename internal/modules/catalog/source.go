// README: Raw catalog tables as authored, in builtin, file or snapshot form.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"sensei/internal/types"
)

// Source is the unvalidated form of a catalog. It is what the builtin tables,
// a JSON file and a Postgres snapshot all decode into.
type Source struct {
	Templates     []Template       `json:"templates"`
	Roads         []RoadSegment    `json:"roads"`
	Zones         []Zone           `json:"zones"`
	CarCategories []CarCategory    `json:"car_categories"`
	Services      []ServiceEntry   `json:"services"`
	Profiles      []ServiceProfile `json:"service_profiles"`
	Coverage      CoveragePolicy   `json:"coverage_policy"`
}

// ServiceEntry is the flat wire form of one ServicePricing variant. Which
// fields are meaningful depends on Kind.
type ServiceEntry struct {
	Key        ServiceKey   `json:"key"`
	Kind       PricingKind  `json:"kind"`
	Labor      *types.Range `json:"labor,omitempty"`
	Parts      *types.Range `json:"parts_range,omitempty"`
	TimeMins   *types.Range `json:"time_mins,omitempty"`
	FlatFee    *int64       `json:"flat_fee,omitempty"`
	Boda       *types.Range `json:"boda_range,omitempty"`
	ServiceFee *int64       `json:"service_fee,omitempty"`
	PickupBoda *types.Range `json:"pickup_boda,omitempty"`
	ReturnBoda *types.Range `json:"return_boda,omitempty"`
	Range      *types.Range `json:"range,omitempty"`
	Note       string       `json:"note,omitempty"`
}

// EntryFor flattens a pricing variant into its wire form.
func EntryFor(key ServiceKey, p ServicePricing) ServiceEntry {
	e := ServiceEntry{Key: key, Kind: p.Kind(), Note: p.Note()}
	switch v := p.(type) {
	case StandardPricing:
		e.Labor, e.Parts, e.TimeMins = ptr(v.Labor), ptr(v.Parts), ptr(v.TimeMins)
	case FlatPlusDistancePricing:
		e.FlatFee, e.Boda = ptr(v.FlatFee), ptr(v.Boda)
	case RoundTripPricing:
		e.ServiceFee, e.PickupBoda, e.ReturnBoda = ptr(v.ServiceFee), ptr(v.PickupBoda), ptr(v.ReturnBoda)
	case FixedRangePricing:
		e.Range = ptr(v.Range)
	case DiagnosisRequiredPricing:
	}
	return e
}

// Pricing rebuilds the variant named by Kind, failing when a field the
// variant needs is absent.
func (e ServiceEntry) Pricing() (ServicePricing, error) {
	switch e.Kind {
	case KindStandard:
		if e.Labor == nil || e.Parts == nil || e.TimeMins == nil {
			return nil, fmt.Errorf("service %q: standard pricing needs labor, parts_range and time_mins", e.Key)
		}
		return StandardPricing{Labor: *e.Labor, Parts: *e.Parts, TimeMins: *e.TimeMins, Notes: e.Note}, nil
	case KindFlatPlusDistance:
		if e.FlatFee == nil || e.Boda == nil {
			return nil, fmt.Errorf("service %q: flat pricing needs flat_fee and boda_range", e.Key)
		}
		return FlatPlusDistancePricing{FlatFee: *e.FlatFee, Boda: *e.Boda, Notes: e.Note}, nil
	case KindRoundTrip:
		if e.ServiceFee == nil || e.PickupBoda == nil || e.ReturnBoda == nil {
			return nil, fmt.Errorf("service %q: round trip pricing needs service_fee, pickup_boda and return_boda", e.Key)
		}
		return RoundTripPricing{ServiceFee: *e.ServiceFee, PickupBoda: *e.PickupBoda, ReturnBoda: *e.ReturnBoda, Notes: e.Note}, nil
	case KindFixedRange:
		if e.Range == nil {
			return nil, fmt.Errorf("service %q: fixed pricing needs range", e.Key)
		}
		return FixedRangePricing{Range: *e.Range, Notes: e.Note}, nil
	case KindDiagnosisRequired:
		return DiagnosisRequiredPricing{Notes: e.Note}, nil
	}
	return nil, fmt.Errorf("service %q: unknown pricing kind %q", e.Key, e.Kind)
}

// Decode reads a JSON catalog source. Unknown fields are rejected so that a
// typo in a hand-edited file fails at startup.
func Decode(r io.Reader) (Source, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var src Source
	if err := dec.Decode(&src); err != nil {
		return Source{}, fmt.Errorf("%w: decode: %v", ErrMalformedCatalog, err)
	}
	return src, nil
}

// DecodeBytes is Decode over an in-memory document.
func DecodeBytes(data []byte) (Source, error) {
	return Decode(bytes.NewReader(data))
}

// LoadFile reads and builds a catalog from a JSON file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	src, err := Decode(f)
	if err != nil {
		return nil, err
	}
	return Build(src)
}

func ptr[T any](v T) *T {
	return &v
}
