package service

import (
	"context"
	"fmt"
	"math"

	"discovery-api/internal/geo"
	"discovery-api/internal/models"
	"discovery-api/internal/yelp"

	"github.com/rs/zerolog/log"
)

const (
	searchCategory = "restaurants"
	sortByDistance = "distance"

	metersPerMile         = 1609.34
	maxPrimaryRadiusMiles = 25.0

	maxRings              = 8
	ringStepMiles         = 14.0
	defaultRingStartMiles = 16.0
	minRingStartMiles     = 12.0
	maxRingStartMiles     = 28.0
)

// Aggregator assembles a deduplicated business set for one search request,
// expanding outward from the origin only as far as needed.
type Aggregator struct {
	client SearchClient
}

// NewAggregator creates an aggregator over the given upstream client.
func NewAggregator(client SearchClient) *Aggregator {
	return &Aggregator{client: client}
}

// Search runs the primary fetch, then ring expansion and the city fallback
// when the target count is still unmet. The primary fetch is the only fatal
// step; later failures degrade to fewer results.
func (a *Aggregator) Search(ctx context.Context, req models.SearchRequest) ([]models.RawBusiness, error) {
	acc := newAccumulator(req.TargetCount)

	params := yelp.SearchParams{Categories: searchCategory, Term: req.Cuisine}
	if req.HasCoordinates() {
		params.Latitude = req.Latitude
		params.Longitude = req.Longitude
		params.SortBy = sortByDistance
		if req.RadiusMiles != nil {
			radius := math.Min(*req.RadiusMiles, maxPrimaryRadiusMiles)
			params.RadiusMeters = milesToMeters(radius)
		}
	} else {
		params.Location = req.City
	}

	if err := fetchPaged(ctx, a.client, params, acc); err != nil {
		return nil, fmt.Errorf("service: primary search: %w", err)
	}

	if req.HasCoordinates() && !acc.full() {
		a.expandRings(ctx, req, acc)
		// Last resort: one keyword search by city name, discarding distance
		// ordering. Skipped when the primary call was already city-keyed.
		if req.City != "" && !acc.full() {
			a.cityFallback(ctx, req, acc)
		}
	}

	return acc.businesses, nil
}

// expandRings fetches at concentric ring centers around the origin, nearest
// ring first. Each center searches at the upstream's maximum radius. A failed
// ring is logged and skipped; it never aborts the remaining rings.
func (a *Aggregator) expandRings(ctx context.Context, req models.SearchRequest, acc *accumulator) {
	rings := 3 + (acc.remaining()+39)/40
	if rings > maxRings {
		rings = maxRings
	}

	start := defaultRingStartMiles
	if req.RadiusMiles != nil {
		start = math.Min(math.Max(*req.RadiusMiles, minRingStartMiles), maxRingStartMiles)
	}

	origin := geo.Point{Latitude: *req.Latitude, Longitude: *req.Longitude}
	for _, center := range geo.GenerateRings(origin, rings, start, ringStepMiles) {
		if acc.full() {
			break
		}
		params := yelp.SearchParams{
			Categories:   searchCategory,
			Term:         req.Cuisine,
			Latitude:     &center.Latitude,
			Longitude:    &center.Longitude,
			SortBy:       sortByDistance,
			RadiusMeters: yelp.MaxRadiusMeters,
		}
		if err := fetchPaged(ctx, a.client, params, acc); err != nil {
			log.Warn().Err(err).
				Float64("latitude", center.Latitude).
				Float64("longitude", center.Longitude).
				Msg("ring fetch failed, skipping")
		}
	}
}

// cityFallback issues one keyword search by city name with coordinates,
// radius, and sort stripped. Failure is logged, never raised.
func (a *Aggregator) cityFallback(ctx context.Context, req models.SearchRequest, acc *accumulator) {
	params := yelp.SearchParams{
		Categories: searchCategory,
		Term:       req.Cuisine,
		Location:   req.City,
	}
	if err := fetchPaged(ctx, a.client, params, acc); err != nil {
		log.Warn().Err(err).Str("city", req.City).Msg("city fallback fetch failed")
	}
}

func milesToMeters(miles float64) int {
	meters := int(math.Round(miles * metersPerMile))
	if meters > yelp.MaxRadiusMeters {
		meters = yelp.MaxRadiusMeters
	}
	return meters
}
