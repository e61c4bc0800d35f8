// README: Immutable catalog built once from a Source and shared read-only.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"sensei/internal/types"
)

var (
	ErrMalformedCatalog = errors.New("malformed catalog")
	ErrUnknownService   = errors.New("unknown service")
)

// Catalog holds the validated tables. Nothing mutates it after Build, so it is
// safe for concurrent readers without locking. Accessors return shared slices
// and callers must not modify them.
type Catalog struct {
	templates     []Template
	keywordIndex  map[string][]int
	keywords      []string
	roads         []RoadSegment
	zones         []Zone
	carCategories []CarCategory
	services      map[ServiceKey]ServicePricing
	serviceKeys   []ServiceKey
	profiles      map[RecommendedService]ServiceProfile
	coverage      CoveragePolicy
}

var builtin = sync.OnceValues(func() (*Catalog, error) {
	return Build(Builtin())
})

// Default returns the builtin catalog, built on first use and shared by every
// caller afterwards. The authored tables always validate, so a failure here is
// a programming error.
func Default() *Catalog {
	c, err := builtin()
	if err != nil {
		panic(fmt.Sprintf("builtin catalog: %v", err))
	}
	return c
}

// Build validates src and returns the immutable catalog. Every problem found
// is reported, joined into one error.
func Build(src Source) (*Catalog, error) {
	c := &Catalog{
		templates:     cloneTemplates(src.Templates),
		roads:         cloneRoads(src.Roads),
		zones:         cloneZones(src.Zones),
		carCategories: cloneCarCategories(src.CarCategories),
		services:      make(map[ServiceKey]ServicePricing, len(src.Services)),
		profiles:      make(map[RecommendedService]ServiceProfile, len(src.Profiles)),
		coverage:      src.Coverage,
		keywordIndex:  make(map[string][]int),
	}

	var errs []error
	malformed := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrMalformedCatalog, fmt.Sprintf(format, args...)))
	}

	for _, e := range src.Services {
		if e.Key == "" {
			malformed("service with empty key")
			continue
		}
		if _, dup := c.services[e.Key]; dup {
			malformed("duplicate service %q", e.Key)
			continue
		}
		p, err := e.Pricing()
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %v", ErrMalformedCatalog, err))
			continue
		}
		for _, r := range pricingRanges(p) {
			if !r.Valid() {
				malformed("service %q: invalid range %s", e.Key, r)
			}
		}
		c.services[e.Key] = p
		c.serviceKeys = append(c.serviceKeys, e.Key)
	}

	for _, p := range src.Profiles {
		if !p.Service.Valid() {
			malformed("profile for unknown recommended service %q", p.Service)
			continue
		}
		c.profiles[p.Service] = p
	}

	if len(c.templates) == 0 {
		malformed("no templates")
	}
	seenIDs := make(map[string]bool, len(c.templates))
	for i, t := range c.templates {
		if t.ID == "" {
			malformed("template %d has no id", i)
		} else if seenIDs[t.ID] {
			malformed("duplicate template id %q", t.ID)
		}
		seenIDs[t.ID] = true

		if len(t.Keywords) == 0 {
			malformed("template %q has no keywords", t.ID)
		}
		seenKw := make(map[string]bool, len(t.Keywords))
		for _, kw := range t.Keywords {
			norm := normalize(kw)
			if norm == "" {
				malformed("template %q has an empty keyword", t.ID)
				continue
			}
			if seenKw[norm] {
				malformed("template %q repeats keyword %q", t.ID, kw)
				continue
			}
			seenKw[norm] = true
			if _, ok := c.keywordIndex[norm]; !ok {
				c.keywords = append(c.keywords, norm)
			}
			c.keywordIndex[norm] = append(c.keywordIndex[norm], i)
		}
		if !t.RecommendedService.Valid() {
			malformed("template %q recommends unknown service %q", t.ID, t.RecommendedService)
		} else if _, ok := c.profiles[t.RecommendedService]; !ok {
			malformed("template %q recommends %q which has no profile", t.ID, t.RecommendedService)
		}
		if !t.Confidence.Valid() {
			malformed("template %q has unknown confidence %q", t.ID, t.Confidence)
		}
		if _, ok := c.services[t.PriceService]; !ok {
			errs = append(errs, fmt.Errorf("%w: template %q prices %q", ErrUnknownService, t.ID, t.PriceService))
		}
	}

	if len(c.roads) == 0 {
		malformed("no roads")
	}
	for _, r := range c.roads {
		validateRoad(r, malformed)
	}

	for _, z := range c.zones {
		if z.Name == "" || z.Multiplier <= 0 {
			malformed("zone %q needs a name and a positive multiplier", z.Name)
		}
	}
	for _, cc := range c.carCategories {
		if cc.Name == "" || cc.Multiplier <= 0 {
			malformed("car category %q needs a name and a positive multiplier", cc.Name)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return c, nil
}

func validateRoad(r RoadSegment, malformed func(string, ...any)) {
	if r.Key == "" || r.Name == "" {
		malformed("road needs a key and a name")
	}
	if len(r.Bands) == 0 {
		malformed("road %q has no distance bands", r.Key)
	}
	if r.Traffic.Peak <= 0 || r.Traffic.Normal <= 0 {
		malformed("road %q needs positive traffic multipliers", r.Key)
	}
	prevTo := 0
	for i, b := range r.Bands {
		if b.FromKm < 0 || b.ToKm <= b.FromKm {
			malformed("road %q band %d has an empty km range %s", r.Key, i, b.Label())
		}
		if b.FromKm < prevTo {
			malformed("road %q band %s overlaps the band before it", r.Key, b.Label())
		}
		if b.ToKm > r.CoverageKm {
			malformed("road %q band %s exceeds coverage of %dkm", r.Key, b.Label(), r.CoverageKm)
		}
		if len(b.Estates) == 0 {
			malformed("road %q band %s lists no estates", r.Key, b.Label())
		}
		for _, e := range b.Estates {
			if normalize(e) == "" {
				malformed("road %q band %s has an empty estate", r.Key, b.Label())
			}
		}
		if !b.Boda.Valid() {
			malformed("road %q band %s has invalid boda range %s", r.Key, b.Label(), b.Boda)
		}
		prevTo = b.ToKm
	}
}

// Templates returns the templates in catalog order.
func (c *Catalog) Templates() []Template { return c.templates }

// Template returns the template at catalog position i.
func (c *Catalog) Template(i int) Template { return c.templates[i] }

// KeywordIndex maps each lowercased keyword to the positions of the templates
// that list it, in catalog order.
func (c *Catalog) KeywordIndex() map[string][]int { return c.keywordIndex }

// Keywords returns the distinct lowercased keywords in first-seen order.
func (c *Catalog) Keywords() []string { return c.keywords }

// Roads returns the road segments in resolution order.
func (c *Catalog) Roads() []RoadSegment { return c.roads }

func (c *Catalog) Zones() []Zone { return c.zones }

func (c *Catalog) CarCategories() []CarCategory { return c.carCategories }

// Service returns the pricing rule for key.
func (c *Catalog) Service(key ServiceKey) (ServicePricing, bool) {
	p, ok := c.services[key]
	return p, ok
}

// Services returns the service keys in authored order.
func (c *Catalog) Services() []ServiceKey { return c.serviceKeys }

func (c *Catalog) Profile(s RecommendedService) (ServiceProfile, bool) {
	p, ok := c.profiles[s]
	return p, ok
}

func (c *Catalog) Coverage() CoveragePolicy { return c.coverage }

// Source flattens the catalog back into its raw form, e.g. for snapshotting.
func (c *Catalog) Source() Source {
	src := Source{
		Templates:     cloneTemplates(c.templates),
		Roads:         cloneRoads(c.roads),
		Zones:         cloneZones(c.zones),
		CarCategories: cloneCarCategories(c.carCategories),
		Coverage:      c.coverage,
	}
	for _, k := range c.serviceKeys {
		src.Services = append(src.Services, EntryFor(k, c.services[k]))
	}
	for _, s := range []RecommendedService{MobileMechanic, PickAndDrop, CarSpecific} {
		if p, ok := c.profiles[s]; ok {
			src.Profiles = append(src.Profiles, p)
		}
	}
	return src
}

func pricingRanges(p ServicePricing) []types.Range {
	switch v := p.(type) {
	case StandardPricing:
		return []types.Range{v.Labor, v.Parts, v.TimeMins}
	case FlatPlusDistancePricing:
		return []types.Range{v.Boda.Plus(v.FlatFee)}
	case RoundTripPricing:
		return []types.Range{v.PickupBoda.Plus(v.ServiceFee), v.ReturnBoda}
	case FixedRangePricing:
		return []types.Range{v.Range}
	case DiagnosisRequiredPricing:
		return nil
	}
	return nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func cloneTemplates(ts []Template) []Template {
	out := make([]Template, len(ts))
	for i, t := range ts {
		t.Keywords = slices.Clone(t.Keywords)
		t.ProbableCauses = slices.Clone(t.ProbableCauses)
		t.DIYSteps = slices.Clone(t.DIYSteps)
		out[i] = t
	}
	return out
}

func cloneRoads(rs []RoadSegment) []RoadSegment {
	out := make([]RoadSegment, len(rs))
	for i, r := range rs {
		bands := make([]DistanceBand, len(r.Bands))
		for j, b := range r.Bands {
			b.Estates = slices.Clone(b.Estates)
			bands[j] = b
		}
		r.Bands = bands
		out[i] = r
	}
	return out
}

func cloneZones(zs []Zone) []Zone {
	out := make([]Zone, len(zs))
	for i, z := range zs {
		z.Areas = slices.Clone(z.Areas)
		out[i] = z
	}
	return out
}

func cloneCarCategories(cs []CarCategory) []CarCategory {
	out := make([]CarCategory, len(cs))
	for i, cc := range cs {
		cc.Makes = slices.Clone(cc.Makes)
		out[i] = cc
	}
	return out
}
