// README: Diagnose request and result types for the sensei orchestrator.
package service

import (
	"errors"
	"time"

	"sensei/internal/modules/catalog"
	"sensei/internal/modules/diagnosis"
	"sensei/internal/modules/pricing"
	"sensei/internal/types"
)

var ErrMissingProblem = errors.New("problem_description is required")

const (
	DefaultCarMake  = "Toyota"
	DefaultLocation = "Nairobi"

	Disclaimer        = "This is an ESTIMATE based on typical cases. Final price depends on actual diagnosis and parts availability."
	NoMatchBookingURL = "/book-now?service=diagnostic"
	NoMatchConfidence = "N/A"
)

type Difficulty string

const (
	DifficultyEasy         Difficulty = "EASY"
	DifficultyProfessional Difficulty = "PROFESSIONAL_ONLY"
)

// DiagnoseRequest carries the caller's fields as received. Year and Mileage
// are free text and only feed advisories. A nil Location takes
// DefaultLocation; a blank one means no location was given.
type DiagnoseRequest struct {
	ProblemDescription string
	CarMake            string
	CarModel           string
	Year               string
	Mileage            string
	Location           *string
	TimeOfDay          string
	Timestamp          string
}

// Result is either a Report or a NoMatch.
type Result interface {
	Status() diagnosis.Status
	result()
}

// NoMatch is returned when no template keyword occurs in the description.
type NoMatch struct {
	Message        string
	Recommendation string
	Confidence     string
	BookingURL     string
}

type CarDetails struct {
	Make     string
	Model    string
	Year     string
	Mileage  string
	AgeYears *int
	Location string
}

type DIY struct {
	Possible   bool
	Steps      []string
	Difficulty Difficulty
}

// Report is a matched diagnosis with its price estimate. Estimate is nil when
// the template's price service has no pricing rule.
type Report struct {
	Car             CarDetails
	Template        catalog.Template
	MatchedKeywords []string
	Profile         catalog.ServiceProfile
	Estimate        pricing.Estimate
	TimeOfDay       types.TimeOfDay
	PeakByTimestamp bool
	YearAdvisory    string
	MileageAdvisory string
	DIY             DIY
	BookingURL      string
	Timestamp       time.Time
}

func (NoMatch) Status() diagnosis.Status { return diagnosis.StatusDataMissing }
func (Report) Status() diagnosis.Status  { return diagnosis.StatusSuccess }

func (NoMatch) result() {}
func (Report) result()  {}
