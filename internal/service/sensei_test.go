// README: Orchestrator tests: defaults, timestamp override, advisories and composed pricing.
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sensei/internal/modules/catalog"
	"sensei/internal/modules/diagnosis"
	"sensei/internal/modules/location"
	"sensei/internal/modules/pricing"
	"sensei/internal/types"
)

var fixedNow = time.Date(2025, 11, 5, 14, 0, 0, 0, time.UTC)

func newTestSensei(t *testing.T) *Sensei {
	t.Helper()
	c := catalog.Default()
	s := NewSensei(c, diagnosis.NewMatcher(c), pricing.NewService(c, location.NewIndex(c)), zap.NewNop())
	s.now = func() time.Time { return fixedNow }
	return s
}

func ptr[T any](v T) *T { return &v }

func diagnose(t *testing.T, s *Sensei, req DiagnoseRequest) Report {
	t.Helper()
	res, err := s.Diagnose(req)
	require.NoError(t, err)
	report, ok := res.(Report)
	require.True(t, ok, "Diagnose() = %T, want Report", res)
	return report
}

func TestDiagnose_MissingProblem(t *testing.T) {
	s := newTestSensei(t)
	for _, text := range []string{"", "   "} {
		_, err := s.Diagnose(DiagnoseRequest{ProblemDescription: text})
		assert.ErrorIs(t, err, ErrMissingProblem)
	}
}

func TestDiagnose_NoMatch(t *testing.T) {
	res, err := newTestSensei(t).Diagnose(DiagnoseRequest{ProblemDescription: "hello there"})
	require.NoError(t, err)

	nm, ok := res.(NoMatch)
	require.True(t, ok)
	assert.Equal(t, diagnosis.StatusDataMissing, nm.Status())
	assert.Equal(t, "N/A", nm.Confidence)
	assert.Equal(t, "/book-now?service=diagnostic", nm.BookingURL)
	assert.NotEmpty(t, nm.Message)
	assert.NotEmpty(t, nm.Recommendation)
}

func TestDiagnose_BatteryInWestlands(t *testing.T) {
	r := diagnose(t, newTestSensei(t), DiagnoseRequest{
		ProblemDescription: "My car won't start, makes clicking sound",
		CarModel:           "Vitz",
		Year:               "2012",
		Mileage:            "150000",
		Location:           ptr("Westlands"),
	})

	assert.Equal(t, "battery_dead", r.Template.ID)
	assert.Equal(t, catalog.ConfidenceHigh, r.Template.Confidence)
	assert.Equal(t, []string{"won't start", "clicking sound"}, r.MatchedKeywords)
	assert.Equal(t, "Toyota", r.Car.Make)
	assert.Equal(t, types.Normal, r.TimeOfDay)
	assert.Equal(t, "Mobile Mechanic", r.Profile.Name)
	assert.Equal(t, fixedNow, r.Timestamp)

	require.NotNil(t, r.Car.AgeYears)
	assert.Equal(t, 13, *r.Car.AgeYears)
	assert.Equal(t, "Your 2012 Toyota is 13 years old. Older cars require more frequent maintenance and are prone to age-related issues (rubber seals, hoses, sensors).", r.YearAdvisory)
	assert.Equal(t, "At 150,000 km, some major services are due (timing belt if applicable, transmission service).", r.MileageAdvisory)

	est, ok := r.Estimate.(pricing.StandardEstimate)
	require.True(t, ok, "estimate = %T", r.Estimate)
	assert.Equal(t, types.NewRange(1200, 4800), est.Labor)
	assert.Equal(t, types.NewRange(6500, 28000), est.Parts)
	assert.Equal(t, types.NewRange(7700, 32800), est.Total)

	assert.Equal(t, DIY{Possible: false, Difficulty: DifficultyProfessional}, r.DIY)
	assert.Equal(t, "/book-now?service=mobile_mechanic&problem=battery_dead&make=Toyota&model=Vitz&year=2012", r.BookingURL)
}

func TestDiagnose_Defaults(t *testing.T) {
	r := diagnose(t, newTestSensei(t), DiagnoseRequest{ProblemDescription: "flat tire on the highway"})

	assert.Equal(t, "flat_tire", r.Template.ID)
	assert.Equal(t, DefaultCarMake, r.Car.Make)
	assert.Equal(t, DefaultLocation, r.Car.Location)
	assert.Equal(t, types.Normal, r.TimeOfDay)
	assert.Nil(t, r.Car.AgeYears)
	assert.Empty(t, r.YearAdvisory)
	assert.Empty(t, r.MileageAdvisory)
	assert.Equal(t, DifficultyEasy, r.DIY.Difficulty)
	assert.NotEmpty(t, r.DIY.Steps)
}

func TestDiagnose_TimestampOverride(t *testing.T) {
	s := newTestSensei(t)

	tests := []struct {
		name      string
		tod       string
		timestamp string
		want      types.TimeOfDay
		wantByTS  bool
	}{
		{"morning rush", "normal", "2025-11-05T08:30:00", types.Peak, true},
		{"evening rush with offset", "", "2025-11-05T17:05:00+03:00", types.Peak, true},
		{"off peak keeps explicit", "peak", "2025-11-05T12:00:00", types.Peak, false},
		{"off peak keeps default", "", "2025-11-05T19:00:00", types.Normal, false},
		{"unparseable is ignored", "normal", "yesterday at eight", types.Normal, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := diagnose(t, s, DiagnoseRequest{
				ProblemDescription: "flat tire",
				TimeOfDay:          tt.tod,
				Timestamp:          tt.timestamp,
			})
			assert.Equal(t, tt.want, r.TimeOfDay)
			assert.Equal(t, tt.wantByTS, r.PeakByTimestamp)
		})
	}
}

func TestDiagnose_DiagnosisRequired(t *testing.T) {
	r := diagnose(t, newTestSensei(t), DiagnoseRequest{
		ProblemDescription: "gears slipping on the highway",
		CarMake:            "BMW",
		Location:           ptr("Karen"),
		TimeOfDay:          "peak",
	})
	assert.Equal(t, "transmission_slip", r.Template.ID)
	est, ok := r.Estimate.(pricing.DiagnosisRequiredEstimate)
	require.True(t, ok, "estimate = %T", r.Estimate)
	assert.Equal(t, pricing.KindDiagnosisRequired, est.Kind())
	assert.Equal(t, "Car-Specific Specialist", r.Profile.Name)
}

func TestYearAdvisory(t *testing.T) {
	assert.Contains(t, yearAdvisory("2014", "Mazda", 11), "Older cars")
	assert.Equal(t, "Your 2018 Mazda is 7 years old - middle-aged. Watch for wear items (battery, brake pads, suspension).", yearAdvisory("2018", "Mazda", 7))
	assert.Empty(t, yearAdvisory("2020", "Mazda", 5))

	_, ok := carAge("twenty twelve", 2025)
	assert.False(t, ok)
	age, ok := carAge(" 2015 ", 2025)
	assert.True(t, ok)
	assert.Equal(t, 10, age)
}

func TestMileageAdvisory(t *testing.T) {
	tests := []struct {
		mileage string
		want    string
	}{
		{"250000", "At 250,000 km, expect high-wear components to need replacement (engine mounts, suspension, clutch if manual)."},
		{"200000", "At 200,000 km, your car is entering high-mileage territory. Budget for maintenance."},
		{"100001", "At 100,001 km, some major services are due (timing belt if applicable, transmission service)."},
		{"100000", ""},
		{"", ""},
		{"lots", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mileageAdvisory(tt.mileage), "mileage %q", tt.mileage)
	}
}

func TestBookingURL_Escapes(t *testing.T) {
	tpl := catalog.Template{ID: "battery_dead", RecommendedService: catalog.MobileMechanic}
	got := bookingURL(tpl, "Mercedes-Benz", "C 200", "")
	assert.Equal(t, "/book-now?service=mobile_mechanic&problem=battery_dead&make=Mercedes-Benz&model=C+200&year=", got)
}

func TestDiagnose_BlankLocationMeansNone(t *testing.T) {
	src := catalog.Builtin()
	for i := range src.Templates {
		if src.Templates[i].ID == "battery_dead" {
			src.Templates[i].PriceService = catalog.ServiceMobileCallout
		}
	}
	c, err := catalog.Build(src)
	require.NoError(t, err)
	s := NewSensei(c, diagnosis.NewMatcher(c), pricing.NewService(c, location.NewIndex(c)), zap.NewNop())
	s.now = func() time.Time { return fixedNow }

	tests := []struct {
		name         string
		loc          *string
		wantLocation string
		wantMapped   bool
		wantTotal    types.Range
	}{
		{"absent takes the default city", nil, DefaultLocation, true, types.NewRange(650, 750)},
		{"empty is no location", ptr(""), "", false, types.NewRange(650, 1300)},
		{"blank is no location", ptr("   "), "", false, types.NewRange(650, 1300)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := diagnose(t, s, DiagnoseRequest{ProblemDescription: "My car won't start, makes clicking sound", Location: tt.loc})
			assert.Equal(t, tt.wantLocation, r.Car.Location)

			est, ok := r.Estimate.(pricing.FlatPlusDistanceEstimate)
			require.True(t, ok, "estimate = %T", r.Estimate)
			assert.Equal(t, tt.wantMapped, est.Location != nil)
			assert.Equal(t, tt.wantTotal, est.Total)
		})
	}
}
