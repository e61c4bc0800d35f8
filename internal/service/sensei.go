package service

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"sensei/internal/modules/catalog"
	"sensei/internal/modules/diagnosis"
	"sensei/internal/modules/pricing"
	"sensei/internal/types"
)

// Sensei composes the template matcher and the pricing engine for one
// diagnose request.
type Sensei struct {
	catalog *catalog.Catalog
	matcher *diagnosis.Matcher
	pricing *pricing.Service
	logger  *zap.Logger
	now     func() time.Time
}

func NewSensei(c *catalog.Catalog, matcher *diagnosis.Matcher, engine *pricing.Service, logger *zap.Logger) *Sensei {
	return &Sensei{
		catalog: c,
		matcher: matcher,
		pricing: engine,
		logger:  logger,
		now:     time.Now,
	}
}

// Diagnose matches the description and prices the matched template's service.
// A missing description is ErrMissingProblem; an unmatched one is a NoMatch
// result, not an error.
func (s *Sensei) Diagnose(req DiagnoseRequest) (Result, error) {
	if strings.TrimSpace(req.ProblemDescription) == "" {
		return nil, ErrMissingProblem
	}

	var match diagnosis.Success
	switch out := s.matcher.Match(req.ProblemDescription).(type) {
	case diagnosis.DataMissing:
		return NoMatch{
			Message:        out.Message,
			Recommendation: out.Recommendation,
			Confidence:     NoMatchConfidence,
			BookingURL:     NoMatchBookingURL,
		}, nil
	case diagnosis.Success:
		match = out
	default:
		return nil, fmt.Errorf("unexpected diagnosis outcome %T", out)
	}

	now := s.now()
	carMake := orDefault(req.CarMake, DefaultCarMake)
	loc := DefaultLocation
	if req.Location != nil {
		loc = strings.TrimSpace(*req.Location)
	}
	tod, byTimestamp := types.ResolveTimeOfDay(types.NormalizeTimeOfDay(req.TimeOfDay), req.Timestamp)

	tpl := match.Template
	report := Report{
		Car: CarDetails{
			Make:     carMake,
			Model:    req.CarModel,
			Year:     req.Year,
			Mileage:  req.Mileage,
			Location: loc,
		},
		Template:        tpl,
		MatchedKeywords: match.MatchedKeywords,
		TimeOfDay:       tod,
		PeakByTimestamp: byTimestamp,
		MileageAdvisory: mileageAdvisory(req.Mileage),
		DIY:             diyFor(tpl),
		BookingURL:      bookingURL(tpl, carMake, req.CarModel, req.Year),
		Timestamp:       now,
	}
	if age, ok := carAge(req.Year, now.Year()); ok {
		report.Car.AgeYears = &age
		report.YearAdvisory = yearAdvisory(strings.TrimSpace(req.Year), carMake, age)
	}
	if p, ok := s.catalog.Profile(tpl.RecommendedService); ok {
		report.Profile = p
	}

	// The location string doubles as the zone for standard pricing.
	est, err := s.pricing.Estimate(pricing.Request{
		Service:   tpl.PriceService,
		Zone:      loc,
		CarMake:   carMake,
		TimeOfDay: tod,
		Location:  loc,
	})
	switch {
	case errors.Is(err, pricing.ErrUnknownService):
		s.logger.Warn("Template has no pricing rule",
			zap.String("template", tpl.ID),
			zap.String("price_service", string(tpl.PriceService)))
	case err != nil:
		return nil, fmt.Errorf("price %s: %w", tpl.PriceService, err)
	default:
		report.Estimate = est
	}

	s.logger.Debug("Diagnosed",
		zap.String("template", tpl.ID),
		zap.Int("score", match.Score),
		zap.String("time_of_day", string(tod)),
		zap.Bool("peak_by_timestamp", byTimestamp))
	return report, nil
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}

// carAge reads year as a whole number. Anything else yields no age.
func carAge(year string, refYear int) (int, bool) {
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return 0, false
	}
	return refYear - y, true
}

func yearAdvisory(year, carMake string, age int) string {
	switch {
	case age > 10:
		return fmt.Sprintf("Your %s %s is %d years old. Older cars require more frequent maintenance and are prone to age-related issues (rubber seals, hoses, sensors).", year, carMake, age)
	case age > 5:
		return fmt.Sprintf("Your %s %s is %d years old - middle-aged. Watch for wear items (battery, brake pads, suspension).", year, carMake, age)
	}
	return ""
}

func mileageAdvisory(mileage string) string {
	km, err := strconv.ParseInt(strings.TrimSpace(mileage), 10, 64)
	if err != nil {
		return ""
	}
	switch {
	case km > 200000:
		return fmt.Sprintf("At %s km, expect high-wear components to need replacement (engine mounts, suspension, clutch if manual).", types.Thousands(km))
	case km > 150000:
		return fmt.Sprintf("At %s km, your car is entering high-mileage territory. Budget for maintenance.", types.Thousands(km))
	case km > 100000:
		return fmt.Sprintf("At %s km, some major services are due (timing belt if applicable, transmission service).", types.Thousands(km))
	}
	return ""
}

func diyFor(t catalog.Template) DIY {
	d := DIY{Possible: t.DIYPossible, Steps: t.DIYSteps, Difficulty: DifficultyProfessional}
	if t.DIYPossible {
		d.Difficulty = DifficultyEasy
	}
	return d
}

func bookingURL(t catalog.Template, carMake, model, year string) string {
	return fmt.Sprintf("/book-now?service=%s&problem=%s&make=%s&model=%s&year=%s",
		url.QueryEscape(string(t.RecommendedService)),
		url.QueryEscape(t.ID),
		url.QueryEscape(carMake),
		url.QueryEscape(strings.TrimSpace(model)),
		url.QueryEscape(strings.TrimSpace(year)))
}
