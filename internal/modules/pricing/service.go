// README: Pricing service computes geo- and vehicle-aware service estimates.
package pricing

import (
	"errors"
	"fmt"
	"strings"

	"sensei/internal/modules/catalog"
	"sensei/internal/modules/location"
	"sensei/internal/types"
)

var ErrUnknownService = errors.New("no such service")

const (
	diagnosisMessage        = "This service requires professional diagnosis before pricing can be determined."
	diagnosisRecommendation = "Book a diagnostic scan first (KES 1,500-15,000)"
	calloutExample          = "Westlands: KES 650 total (500 + 150 boda). Kahawa: KES 1,300 total (500 + 800 boda). Then add labor + parts."
	pickAndDropExample      = "Kilimani: ~KES 1,400 (500 pickup + 500 return + 500 service) + garage labor"
)

type Service struct {
	catalog *catalog.Catalog
	roads   *location.Index
}

func NewService(c *catalog.Catalog, roads *location.Index) *Service {
	return &Service{catalog: c, roads: roads}
}

// Estimate prices one service. An unknown service key is ErrUnknownService.
func (s *Service) Estimate(req Request) (Estimate, error) {
	p, ok := s.catalog.Service(req.Service)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownService, req.Service)
	}

	switch v := p.(type) {
	case catalog.DiagnosisRequiredPricing:
		return DiagnosisRequiredEstimate{
			Service:        req.Service,
			Message:        diagnosisMessage,
			Recommendation: diagnosisRecommendation,
			Note:           v.Notes,
		}, nil
	case catalog.FlatPlusDistancePricing:
		return s.flatPlusDistance(req, v), nil
	case catalog.RoundTripPricing:
		return s.roundTrip(req, v), nil
	case catalog.FixedRangePricing:
		return FixedRangeEstimate{
			Service: req.Service,
			Range:   v.Range,
			Message: fmt.Sprintf("Towing costs KES %s - %s depending on distance", types.Thousands(v.Range.Min), types.Thousands(v.Range.Max)),
			Note:    v.Notes,
		}, nil
	case catalog.StandardPricing:
		return s.standard(req, v), nil
	}
	return nil, fmt.Errorf("%w: %q has unsupported pricing %T", ErrUnknownService, req.Service, p)
}

func (s *Service) standard(req Request, p catalog.StandardPricing) StandardEstimate {
	zone := s.LookupZone(req.Zone)
	car := s.LookupCarCategory(req.CarMake)

	est := StandardEstimate{
		Service:  req.Service,
		Labor:    p.Labor.Scale(zone.Factor, car.Factor),
		TimeMins: p.TimeMins,
		Zone:     zone,
		Car:      car,
		Note:     p.Notes,
	}
	// Parts are priced by car only; where parts cost nothing the total is labor.
	if p.Parts.Max > 0 {
		est.Parts = p.Parts.Scale(car.Factor)
		est.Total = est.Labor.Add(est.Parts)
	} else {
		est.PartsNone = true
		est.Total = est.Labor
	}
	return est
}

func (s *Service) flatPlusDistance(req Request, p catalog.FlatPlusDistancePricing) FlatPlusDistanceEstimate {
	est := FlatPlusDistanceEstimate{
		Service: req.Service,
		FlatFee: p.FlatFee,
		Boda:    p.Boda,
		Note:    p.Notes,
		Example: calloutExample,
	}
	if ctx, ok := s.resolve(req); ok {
		est.Boda = ctx.Boda
		est.Location = &ctx
		est.Note = joinNotes(p.Notes, ctx.Notes)
		est.Breakdown = fmt.Sprintf("KES %d flat fee + KES %d-%d boda (%s via %s) + labor + parts",
			p.FlatFee, ctx.Boda.Min, ctx.Boda.Max, strings.TrimSpace(req.Location), ctx.Road)
		est.Example = ""
		est.CoverageNote = s.coverageNote(req.Service, ctx)
	}
	est.Total = est.Boda.Plus(p.FlatFee)
	return est
}

// roundTrip uses one road lookup for both legs.
func (s *Service) roundTrip(req Request, p catalog.RoundTripPricing) RoundTripEstimate {
	est := RoundTripEstimate{
		Service:    req.Service,
		ServiceFee: p.ServiceFee,
		PickupBoda: p.PickupBoda,
		ReturnBoda: p.ReturnBoda,
		Note:       p.Notes,
		Example:    pickAndDropExample,
	}
	if ctx, ok := s.resolve(req); ok {
		est.PickupBoda, est.ReturnBoda = ctx.Boda, ctx.Boda
		est.Location = &ctx
		est.Note = joinNotes(p.Notes, ctx.Notes)
		est.CoverageNote = s.coverageNote(req.Service, ctx)
	}
	est.Total = est.PickupBoda.Add(est.ReturnBoda).Plus(p.ServiceFee)
	if est.Location != nil {
		est.Example = fmt.Sprintf("%s: ~KES %s-%s (%d pickup + %d return + %d service via %s) + garage labor",
			strings.TrimSpace(req.Location), types.Thousands(est.Total.Min), types.Thousands(est.Total.Max),
			est.PickupBoda.Min, est.ReturnBoda.Max, p.ServiceFee, est.Location.Road)
	}
	return est
}

func (s *Service) resolve(req Request) (location.PriceContext, bool) {
	if strings.TrimSpace(req.Location) == "" {
		return location.PriceContext{}, false
	}
	return s.roads.Resolve(req.Location, req.TimeOfDay), true
}

func (s *Service) coverageNote(key catalog.ServiceKey, ctx location.PriceContext) string {
	policy := s.catalog.Coverage()
	maxKm, ok := policy.MaxKmFor(key)
	if !ok || !ctx.Mapped || ctx.MaxKm <= maxKm {
		return ""
	}
	return fmt.Sprintf("%s is up to %dkm out, beyond the %dkm service radius. %s",
		ctx.MatchedEstate, ctx.MaxKm, maxKm, policy.BeyondCoverage)
}

// LookupZone finds the first zone listing zone as an area, case-insensitively.
func (s *Service) LookupZone(zone string) MultiplierLookup {
	needle := strings.ToLower(strings.TrimSpace(zone))
	if needle == "" {
		return notFound
	}
	for _, z := range s.catalog.Zones() {
		for _, area := range z.Areas {
			if strings.ToLower(area) == needle {
				return MultiplierLookup{Factor: z.Multiplier, Category: z.Name, Found: true}
			}
		}
	}
	return notFound
}

// LookupCarCategory finds the first category listing carMake, case-insensitively.
func (s *Service) LookupCarCategory(carMake string) MultiplierLookup {
	needle := strings.ToLower(strings.TrimSpace(carMake))
	if needle == "" {
		return notFound
	}
	for _, cc := range s.catalog.CarCategories() {
		for _, m := range cc.Makes {
			if strings.ToLower(m) == needle {
				return MultiplierLookup{Factor: cc.Multiplier, Category: cc.Name, Found: true}
			}
		}
	}
	return notFound
}

func joinNotes(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + " | " + b
}
