// README: JSON shapes for estimates, locations and diagnose results.
package handlers

import (
	"fmt"
	"time"

	"sensei/internal/modules/location"
	"sensei/internal/modules/pricing"
	"sensei/internal/service"
	"sensei/internal/types"
)

type lookupJSON struct {
	Factor   float64 `json:"factor"`
	Category string  `json:"category,omitempty"`
	Found    bool    `json:"found"`
}

type locationJSON struct {
	Road          string          `json:"road"`
	Distance      string          `json:"distance"`
	TrafficFactor float64         `json:"traffic_factor"`
	TimeOfDay     types.TimeOfDay `json:"time_of_day"`
}

type standardJSON struct {
	Type             pricing.EstimateKind `json:"type"`
	Labor            types.Range          `json:"labor"`
	PartsRange       *types.Range         `json:"parts_range"`
	TotalRange       types.Range          `json:"total_range"`
	TimeEstimateMins types.Range          `json:"time_estimate_mins"`
	Zone             lookupJSON           `json:"zone"`
	CarCategory      lookupJSON           `json:"car_category"`
	Note             string               `json:"note"`
}

type mobileCalloutJSON struct {
	Type            pricing.EstimateKind `json:"type"`
	FlatFee         int64                `json:"flat_fee"`
	BodaCost        types.Range          `json:"boda_cost"`
	TotalRange      types.Range          `json:"total_range"`
	LocationDetails *locationJSON        `json:"location_details,omitempty"`
	Note            string               `json:"note"`
	Breakdown       string               `json:"breakdown,omitempty"`
	Example         string               `json:"example,omitempty"`
	CoverageNote    string               `json:"coverage_note,omitempty"`
}

type roundTripBreakdownJSON struct {
	PickupBoda types.Range `json:"pickup_boda"`
	ReturnBoda types.Range `json:"return_boda"`
	ServiceFee int64       `json:"service_fee"`
}

type pickAndDropJSON struct {
	Type            pricing.EstimateKind   `json:"type"`
	Breakdown       roundTripBreakdownJSON `json:"breakdown"`
	TotalRange      types.Range            `json:"total_range"`
	LocationDetails *locationJSON          `json:"location_details,omitempty"`
	Note            string                 `json:"note"`
	Example         string                 `json:"example"`
	CoverageNote    string                 `json:"coverage_note,omitempty"`
}

type towingJSON struct {
	Type    pricing.EstimateKind `json:"type"`
	Range   types.Range          `json:"range"`
	Note    string               `json:"note"`
	Message string               `json:"message"`
}

type diagnosisRequiredJSON struct {
	Type           pricing.EstimateKind `json:"type"`
	Message        string               `json:"message"`
	Note           string               `json:"note"`
	Recommendation string               `json:"recommendation"`
}

// presentEstimate maps an estimate variant to its wire shape. A nil estimate
// is rendered as null.
func presentEstimate(e pricing.Estimate) any {
	switch v := e.(type) {
	case nil:
		return nil
	case pricing.StandardEstimate:
		out := standardJSON{
			Type:             v.Kind(),
			Labor:            v.Labor,
			TotalRange:       v.Total,
			TimeEstimateMins: v.TimeMins,
			Zone:             lookupJSON(v.Zone),
			CarCategory:      lookupJSON(v.Car),
			Note:             v.Note,
		}
		if !v.PartsNone {
			parts := v.Parts
			out.PartsRange = &parts
		}
		return out
	case pricing.FlatPlusDistanceEstimate:
		return mobileCalloutJSON{
			Type:            v.Kind(),
			FlatFee:         v.FlatFee,
			BodaCost:        v.Boda,
			TotalRange:      v.Total,
			LocationDetails: presentLocationDetails(v.Location),
			Note:            v.Note,
			Breakdown:       v.Breakdown,
			Example:         v.Example,
			CoverageNote:    v.CoverageNote,
		}
	case pricing.RoundTripEstimate:
		return pickAndDropJSON{
			Type: v.Kind(),
			Breakdown: roundTripBreakdownJSON{
				PickupBoda: v.PickupBoda,
				ReturnBoda: v.ReturnBoda,
				ServiceFee: v.ServiceFee,
			},
			TotalRange:      v.Total,
			LocationDetails: presentLocationDetails(v.Location),
			Note:            v.Note,
			Example:         v.Example,
			CoverageNote:    v.CoverageNote,
		}
	case pricing.FixedRangeEstimate:
		return towingJSON{Type: v.Kind(), Range: v.Range, Note: v.Note, Message: v.Message}
	case pricing.DiagnosisRequiredEstimate:
		return diagnosisRequiredJSON{Type: v.Kind(), Message: v.Message, Note: v.Note, Recommendation: v.Recommendation}
	}
	panic(fmt.Sprintf("unhandled estimate %T", e))
}

func presentLocationDetails(ctx *location.PriceContext) *locationJSON {
	if ctx == nil {
		return nil
	}
	return &locationJSON{
		Road:          ctx.Road,
		Distance:      ctx.DistanceBand,
		TrafficFactor: ctx.TrafficFactor,
		TimeOfDay:     ctx.TimeOfDay,
	}
}

type resolveJSON struct {
	locationJSON
	RoadKey       string      `json:"road_key,omitempty"`
	BodaCost      types.Range `json:"boda_cost"`
	MaxKm         int         `json:"max_km,omitempty"`
	MatchedEstate string      `json:"matched_estate,omitempty"`
	Mapped        bool        `json:"mapped"`
	Note          string      `json:"note"`
}

func presentResolve(ctx location.PriceContext) resolveJSON {
	return resolveJSON{
		locationJSON:  *presentLocationDetails(&ctx),
		RoadKey:       ctx.RoadKey,
		BodaCost:      ctx.Boda,
		MaxKm:         ctx.MaxKm,
		MatchedEstate: ctx.MatchedEstate,
		Mapped:        ctx.Mapped,
		Note:          ctx.Notes,
	}
}

type noMatchJSON struct {
	Status         string `json:"status"`
	Message        string `json:"message"`
	Recommendation string `json:"recommendation"`
	Confidence     string `json:"confidence"`
	BookingURL     string `json:"booking_url"`
}

type carDetailsJSON struct {
	Make     string `json:"make"`
	Model    string `json:"model"`
	Year     string `json:"year"`
	Mileage  string `json:"mileage"`
	AgeYears *int   `json:"age_years"`
	Location string `json:"location"`
}

type diagnosisJSON struct {
	Issue           string   `json:"issue"`
	ProbableCauses  []string `json:"probable_causes"`
	Confidence      string   `json:"confidence"`
	Urgent          bool     `json:"urgent"`
	MatchedKeywords []string `json:"matched_keywords"`
}

type recommendationJSON struct {
	Service            string `json:"service"`
	ServiceName        string `json:"service_name"`
	ServiceDescription string `json:"service_description"`
	ResponseTime       string `json:"response_time"`
}

type pricingJSON struct {
	Estimate   any    `json:"estimate"`
	TimeOfDay  string `json:"time_of_day"`
	Disclaimer string `json:"disclaimer"`
}

type contextJSON struct {
	Kenya   string  `json:"kenya"`
	Year    *string `json:"year"`
	Mileage *string `json:"mileage"`
}

type diyJSON struct {
	Possible   bool     `json:"possible"`
	Steps      []string `json:"steps"`
	Difficulty string   `json:"difficulty"`
}

type reportJSON struct {
	Status         string             `json:"status"`
	CarDetails     carDetailsJSON     `json:"car_details"`
	Diagnosis      diagnosisJSON      `json:"diagnosis"`
	Recommendation recommendationJSON `json:"recommendation"`
	Pricing        pricingJSON        `json:"pricing"`
	Context        contextJSON        `json:"context"`
	DIY            diyJSON            `json:"diy"`
	Warning        *string            `json:"warning"`
	BookingURL     string             `json:"booking_url"`
	Timestamp      string             `json:"timestamp"`
}

func presentResult(r service.Result) any {
	switch v := r.(type) {
	case service.NoMatch:
		return noMatchJSON{
			Status:         string(v.Status()),
			Message:        v.Message,
			Recommendation: v.Recommendation,
			Confidence:     v.Confidence,
			BookingURL:     v.BookingURL,
		}
	case service.Report:
		return presentReport(v)
	}
	panic(fmt.Sprintf("unhandled result %T", r))
}

func presentReport(r service.Report) reportJSON {
	t := r.Template
	return reportJSON{
		Status: string(r.Status()),
		CarDetails: carDetailsJSON{
			Make:     r.Car.Make,
			Model:    r.Car.Model,
			Year:     r.Car.Year,
			Mileage:  r.Car.Mileage,
			AgeYears: r.Car.AgeYears,
			Location: r.Car.Location,
		},
		Diagnosis: diagnosisJSON{
			Issue:           t.Diagnosis,
			ProbableCauses:  t.ProbableCauses,
			Confidence:      string(t.Confidence),
			Urgent:          t.Urgent,
			MatchedKeywords: r.MatchedKeywords,
		},
		Recommendation: recommendationJSON{
			Service:            string(t.RecommendedService),
			ServiceName:        r.Profile.Name,
			ServiceDescription: r.Profile.Description,
			ResponseTime:       r.Profile.ResponseTime,
		},
		Pricing: pricingJSON{
			Estimate:   presentEstimate(r.Estimate),
			TimeOfDay:  string(r.TimeOfDay),
			Disclaimer: service.Disclaimer,
		},
		Context: contextJSON{
			Kenya:   t.KenyaContext,
			Year:    optional(r.YearAdvisory),
			Mileage: optional(r.MileageAdvisory),
		},
		DIY: diyJSON{
			Possible:   r.DIY.Possible,
			Steps:      r.DIY.Steps,
			Difficulty: string(r.DIY.Difficulty),
		},
		Warning:    optional(t.Warning),
		BookingURL: r.BookingURL,
		Timestamp:  r.Timestamp.Format(time.RFC3339),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
