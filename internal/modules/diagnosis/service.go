// README: Template matcher scoring free-text problem descriptions by keyword containment.
package diagnosis

import (
	"slices"
	"strings"

	"sensei/internal/modules/catalog"
)

type Matcher struct {
	catalog *catalog.Catalog
}

func NewMatcher(c *catalog.Catalog) *Matcher {
	return &Matcher{catalog: c}
}

// Match returns the highest scoring template, or DataMissing when nothing
// scores. Equal scores go to the template defined first.
func (m *Matcher) Match(text string) Outcome {
	ranked := m.Rank(text)
	if len(ranked) == 0 {
		return DataMissing{Message: dataMissingMessage, Recommendation: dataMissingRecommendation}
	}
	best := ranked[0]
	return Success{
		Template:        best.Template,
		MatchedKeywords: best.MatchedKeywords,
		Score:           best.Score,
		Confidence:      best.Template.Confidence,
	}
}

// Rank scores every template against text and returns those with a positive
// score, highest first. The sort is stable over catalog order.
func (m *Matcher) Rank(text string) []Candidate {
	norm := strings.ToLower(text)
	if strings.TrimSpace(norm) == "" {
		return nil
	}

	// Each distinct keyword is tested once; the index fans hits out to templates.
	index := m.catalog.KeywordIndex()
	hits := make(map[string]bool)
	scores := make(map[int]int)
	for _, kw := range m.catalog.Keywords() {
		if !strings.Contains(norm, kw) {
			continue
		}
		hits[kw] = true
		for _, pos := range index[kw] {
			scores[pos]++
		}
	}
	if len(scores) == 0 {
		return nil
	}

	ranked := make([]Candidate, 0, len(scores))
	for pos, score := range scores {
		tpl := m.catalog.Template(pos)
		ranked = append(ranked, Candidate{
			Position:        pos,
			Template:        tpl,
			Score:           score,
			MatchedKeywords: matchedInOrder(tpl.Keywords, hits),
		})
	}
	slices.SortFunc(ranked, func(a, b Candidate) int { return a.Position - b.Position })
	slices.SortStableFunc(ranked, func(a, b Candidate) int { return b.Score - a.Score })
	return ranked
}

// matchedInOrder lists the template's keywords that hit, in authored order and
// authored spelling.
func matchedInOrder(keywords []string, hits map[string]bool) []string {
	var out []string
	for _, kw := range keywords {
		if hits[strings.ToLower(strings.TrimSpace(kw))] {
			out = append(out, kw)
		}
	}
	return out
}
