// README: Template matcher tests covering scoring, tie-break order and the no-data outcome.
package diagnosis

import (
	"reflect"
	"testing"

	"sensei/internal/modules/catalog"
)

func TestMatch_Scenarios(t *testing.T) {
	m := NewMatcher(catalog.Default())

	tests := []struct {
		name        string
		text        string
		wantID      string
		wantMatched []string
		wantConf    catalog.Confidence
	}{
		{
			name:        "clicking no-start is a dead battery",
			text:        "My car won't start, makes clicking sound",
			wantID:      "battery_dead",
			wantMatched: []string{"won't start", "clicking sound"},
			wantConf:    catalog.ConfidenceHigh,
		},
		{
			name:        "cranking no-start is fuel",
			text:        "My car cranks but won't start",
			wantID:      "car_wont_start_fuel",
			wantMatched: []string{"won't start", "cranks but won't start"},
		},
		{
			name:        "keywords accumulate",
			text:        "temperature gauge high and steam from hood, engine hot",
			wantID:      "engine_overheat",
			wantMatched: []string{"temperature gauge high", "steam from hood", "engine hot"},
		},
		{
			name:        "case insensitive",
			text:        "BLUE SMOKE from exhaust",
			wantID:      "blue_smoke",
			wantMatched: []string{"blue smoke"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.Match(tt.text).(Success)
			if !ok {
				t.Fatalf("Match(%q) = %T, want Success", tt.text, m.Match(tt.text))
			}
			if got.Template.ID != tt.wantID {
				t.Errorf("template = %s, want %s", got.Template.ID, tt.wantID)
			}
			if !reflect.DeepEqual(got.MatchedKeywords, tt.wantMatched) {
				t.Errorf("matched = %v, want %v", got.MatchedKeywords, tt.wantMatched)
			}
			if got.Score != len(tt.wantMatched) {
				t.Errorf("score = %d, want %d", got.Score, len(tt.wantMatched))
			}
			if tt.wantConf != "" && got.Confidence != tt.wantConf {
				t.Errorf("confidence = %s, want %s", got.Confidence, tt.wantConf)
			}
		})
	}
}

func TestMatch_TieGoesToEarlierTemplate(t *testing.T) {
	m := NewMatcher(catalog.Default())

	got, ok := m.Match("won't start").(Success)
	if !ok {
		t.Fatal("expected Success")
	}
	if got.Template.ID != "battery_dead" {
		t.Errorf("template = %s, want battery_dead", got.Template.ID)
	}

	ranked := m.Rank("won't start")
	if len(ranked) != 2 || ranked[1].Template.ID != "car_wont_start_fuel" {
		t.Fatalf("ranked = %+v", ranked)
	}
}

func TestMatch_TieBreakFollowsCatalogOrder(t *testing.T) {
	build := func(first, second string) *catalog.Catalog {
		src := catalog.Builtin()
		a := src.Templates[0]
		a.ID, a.Keywords = first, []string{"rattle"}
		b := src.Templates[1]
		b.ID, b.Keywords = second, []string{"rattle"}
		src.Templates = []catalog.Template{a, b}
		c, err := catalog.Build(src)
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		return c
	}

	for _, order := range [][2]string{{"alpha", "beta"}, {"beta", "alpha"}} {
		got := NewMatcher(build(order[0], order[1])).Match("a rattle under the seat")
		s, ok := got.(Success)
		if !ok || s.Template.ID != order[0] {
			t.Errorf("order %v: got %+v, want %s", order, got, order[0])
		}
	}
}

func TestMatch_DataMissing(t *testing.T) {
	m := NewMatcher(catalog.Default())

	for _, text := range []string{"hello there", "The brakes are squeaking when I stop", "", "   "} {
		got, ok := m.Match(text).(DataMissing)
		if !ok {
			t.Errorf("Match(%q) should be DataMissing", text)
			continue
		}
		if got.Status() != StatusDataMissing || got.Message == "" || got.Recommendation == "" {
			t.Errorf("Match(%q) = %+v", text, got)
		}
	}
}

func TestMatch_Deterministic(t *testing.T) {
	m := NewMatcher(catalog.Default())
	text := "car won't start, no fuel, clicking sound and check engine light"

	first := m.Rank(text)
	for i := 0; i < 20; i++ {
		if got := m.Rank(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestRank_SortedByScoreThenPosition(t *testing.T) {
	m := NewMatcher(catalog.Default())
	ranked := m.Rank("car won't start, no fuel, clicking sound, dashboard lights dim and check engine light")

	for i := 1; i < len(ranked); i++ {
		prev, cur := ranked[i-1], ranked[i]
		if prev.Score < cur.Score || (prev.Score == cur.Score && prev.Position > cur.Position) {
			t.Errorf("rank %d out of order: %+v before %+v", i, prev, cur)
		}
	}
}
