package service

import (
	"context"

	"github.com/moyeorang/place-recommender/internal/entity"
	"github.com/moyeorang/place-recommender/internal/kakao"
)

// Backfiller fills in missing place coordinates via the geocoder and tags
// each place with the provenance of its coordinates. A nil geocoder (no
// credential configured) disables backfill entirely and places pass through
// untouched.
type Backfiller struct {
	geocoder kakao.Geocoder
}

// NewBackfiller wires the backfill step. geocoder may be nil.
func NewBackfiller(geocoder kakao.Geocoder) *Backfiller {
	return &Backfiller{geocoder: geocoder}
}

// Fill resolves coordinates for each place sequentially. Places that already
// carry coordinates keep them; lookup failures degrade to a not_found tag.
func (b *Backfiller) Fill(ctx context.Context, result *entity.RecommendationResult) {
	if b == nil || b.geocoder == nil {
		return
	}

	for i := range result.Places {
		p := &result.Places[i]
		if hasCoordinates(p) {
			if p.CoordinateSource == "" {
				p.CoordinateSource = entity.CoordSourceGemini
			}
			continue
		}

		coord, found, err := b.geocoder.Geocode(ctx, p.Address)
		if err != nil || !found {
			p.Latitude = nil
			p.Longitude = nil
			p.CoordinateSource = entity.CoordSourceNotFound
			continue
		}
		lat, lon := coord.Latitude, coord.Longitude
		p.Latitude = &lat
		p.Longitude = &lon
		p.CoordinateSource = entity.CoordSourceKakaoMap
	}
}

// hasCoordinates treats null and zero the same way the upstream contract
// does: (0, 0) is a missing coordinate, not a point in the Gulf of Guinea.
func hasCoordinates(p *entity.Place) bool {
	return p.Latitude != nil && p.Longitude != nil && *p.Latitude != 0 && *p.Longitude != 0
}
