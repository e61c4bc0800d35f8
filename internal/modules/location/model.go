// README: Price context resolved from a free-text location on the road network.
package location

import "sensei/internal/types"

const (
	UnknownRoad       = "unknown"
	fallbackBandLabel = "estimated 10-15km"
	fallbackNotes     = "location not mapped"
	neutralTraffic    = 1.0
)

var fallbackBoda = types.NewRange(300, 500)

// PriceContext is the boda fare and road details for one location. Mapped is
// false when the location matched no estate and the fallback fare was used.
type PriceContext struct {
	Boda          types.Range
	Road          string
	RoadKey       string
	DistanceBand  string
	MaxKm         int
	TrafficFactor float64
	TimeOfDay     types.TimeOfDay
	Notes         string
	MatchedEstate string
	Mapped        bool
}

// Shadow records an estate that resolves somewhere other than where it is
// listed because an earlier road or band also contains it.
type Shadow struct {
	Estate       string
	DeclaredRoad string
	DeclaredBand string
	ResolvedRoad string
	ResolvedBand string
}
