// README: Road network index resolving locations to a road, distance band and boda fare.
package location

import (
	"sensei/internal/modules/catalog"
	"sensei/internal/types"
)

type Index struct {
	roads []catalog.RoadSegment
}

func NewIndex(c *catalog.Catalog) *Index {
	return &Index{roads: c.Roads()}
}

// Resolve walks roads in catalog order, bands in ascending distance and
// estates in listed order, and takes the first estate that contains the
// location or is contained by it. The band's boda fare is scaled by the
// road's traffic multiplier for tod. An empty location never matches.
func (i *Index) Resolve(loc string, tod types.TimeOfDay) PriceContext {
	norm := normalizeLocation(loc)
	if norm != "" {
		for _, road := range i.roads {
			for _, band := range road.Bands {
				for _, estate := range band.Estates {
					if !containsEither(norm, normalizeLocation(estate)) {
						continue
					}
					factor := road.Traffic.For(tod)
					return PriceContext{
						Boda:          band.Boda.Scale(factor),
						Road:          road.Name,
						RoadKey:       road.Key,
						DistanceBand:  band.Label(),
						MaxKm:         band.ToKm,
						TrafficFactor: factor,
						TimeOfDay:     tod,
						Notes:         road.Notes,
						MatchedEstate: estate,
						Mapped:        true,
					}
				}
			}
		}
	}
	return PriceContext{
		Boda:          fallbackBoda,
		Road:          UnknownRoad,
		DistanceBand:  fallbackBandLabel,
		TrafficFactor: neutralTraffic,
		TimeOfDay:     tod,
		Notes:         fallbackNotes,
	}
}

// ShadowedEstates lists every estate that Resolve sends to a different road
// or band than the one it is listed under.
func (i *Index) ShadowedEstates() []Shadow {
	var out []Shadow
	for _, road := range i.roads {
		for _, band := range road.Bands {
			for _, estate := range band.Estates {
				got := i.Resolve(estate, types.Normal)
				if got.RoadKey == road.Key && got.DistanceBand == band.Label() {
					continue
				}
				out = append(out, Shadow{
					Estate:       estate,
					DeclaredRoad: road.Name,
					DeclaredBand: band.Label(),
					ResolvedRoad: got.Road,
					ResolvedBand: got.DistanceBand,
				})
			}
		}
	}
	return out
}

// Roads returns the indexed road segments in resolution order.
func (i *Index) Roads() []catalog.RoadSegment {
	return i.roads
}
