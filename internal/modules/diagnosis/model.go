// README: Diagnosis outcomes produced by matching free text against templates.
package diagnosis

import "sensei/internal/modules/catalog"

type Status string

const (
	StatusSuccess     Status = "SUCCESS"
	StatusDataMissing Status = "DATA_MISSING"
)

const (
	dataMissingMessage        = "I don't have enough information to diagnose this specific issue."
	dataMissingRecommendation = "Book a diagnostic scan with our mobile mechanic for proper assessment."
)

// Outcome is either Success or DataMissing.
type Outcome interface {
	Status() Status
	outcome()
}

// Success is the best-scoring template for a description.
type Success struct {
	Template        catalog.Template
	MatchedKeywords []string
	Score           int
	Confidence      catalog.Confidence
}

// DataMissing means no template keyword occurred in the description. It is a
// normal result, not an error.
type DataMissing struct {
	Message        string
	Recommendation string
}

func (Success) Status() Status     { return StatusSuccess }
func (DataMissing) Status() Status { return StatusDataMissing }

func (Success) outcome()     {}
func (DataMissing) outcome() {}

// Candidate is one template with a non-zero score. Position is the template's
// index in catalog order.
type Candidate struct {
	Position        int
	Template        catalog.Template
	Score           int
	MatchedKeywords []string
}
