package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"discovery-api/internal/models"

	"github.com/rs/zerolog/log"
)

// ErrMissingLocation rejects requests that name neither a city nor a
// coordinate pair.
var ErrMissingLocation = errors.New("service: request needs a city or a coordinate pair")

const (
	cacheCollection = "restaurant_search"

	// DefaultTargetCount is the result count when the caller gives no limit.
	DefaultTargetCount = 120
	// MaxTargetCount bounds the caller-supplied limit.
	MaxTargetCount = 200
)

// BusinessAggregator assembles the deduplicated raw business set.
type BusinessAggregator interface {
	Search(ctx context.Context, req models.SearchRequest) ([]models.RawBusiness, error)
}

// Enricher fetches detail subsets for a capped prefix of the results.
type Enricher interface {
	Enrich(ctx context.Context, businesses []models.RawBusiness) map[string]*models.DetailSubset
}

// CacheRepository is the keyed response cache consulted once per request.
type CacheRepository interface {
	ReadCached(ctx context.Context, collection string, keyParts []string, ttl time.Duration) (*models.CacheEntry, error)
	WriteCached(ctx context.Context, collection string, keyParts []string, entry models.CacheEntry) error
}

// RestaurantService runs one search end to end: cache read, aggregation,
// detail enrichment, simplification, cache write.
type RestaurantService struct {
	aggregator BusinessAggregator
	enricher   Enricher
	cache      CacheRepository
	cacheTTL   time.Duration
}

// NewRestaurantService wires the search pipeline.
func NewRestaurantService(aggregator BusinessAggregator, enricher Enricher, cache CacheRepository, cacheTTL time.Duration) *RestaurantService {
	return &RestaurantService{
		aggregator: aggregator,
		enricher:   enricher,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

// Search validates and normalizes the request, then serves it from the cache
// or recomputes and caches the result. Cache failures are logged and degrade
// to a recompute; only the primary upstream fetch can fail the request.
func (s *RestaurantService) Search(ctx context.Context, req models.SearchRequest) ([]models.SimplifiedBusiness, error) {
	if !req.HasLocation() {
		return nil, ErrMissingLocation
	}
	req.TargetCount = clampTarget(req.TargetCount)

	keyParts := cacheKeyParts(req)
	entry, err := s.cache.ReadCached(ctx, cacheCollection, keyParts, s.cacheTTL)
	if err != nil {
		log.Warn().Err(err).Msg("cache read failed")
	} else if entry != nil {
		var cached []models.SimplifiedBusiness
		if decodeErr := json.Unmarshal([]byte(entry.Body), &cached); decodeErr != nil {
			log.Warn().Err(decodeErr).Msg("discarding undecodable cache entry")
		} else {
			log.Debug().Strs("key", keyParts).Msg("cache hit")
			return cached, nil
		}
	}

	raw, err := s.aggregator.Search(ctx, req)
	if err != nil {
		return nil, err
	}

	detailsByID := s.enricher.Enrich(ctx, raw)

	simplified := make([]models.SimplifiedBusiness, 0, len(raw))
	for i := range raw {
		if sb := SimplifyBusiness(&raw[i], detailsByID[raw[i].ID]); sb != nil {
			simplified = append(simplified, *sb)
		}
	}

	body, err := json.Marshal(simplified)
	if err != nil {
		return nil, fmt.Errorf("service: encoding response for cache: %w", err)
	}
	writeErr := s.cache.WriteCached(ctx, cacheCollection, keyParts, models.CacheEntry{
		Status:      200,
		ContentType: "application/json",
		Body:        string(body),
		Metadata:    map[string]string{"result_count": strconv.Itoa(len(simplified))},
	})
	if writeErr != nil {
		log.Warn().Err(writeErr).Msg("cache write failed")
	}

	return simplified, nil
}

// cacheKeyParts builds the canonical cache key: two logically identical
// requests must produce identical parts.
func cacheKeyParts(req models.SearchRequest) []string {
	coords := ""
	if req.HasCoordinates() {
		coords = fmt.Sprintf("%.4f,%.4f", *req.Latitude, *req.Longitude)
	}
	radius := ""
	if req.RadiusMiles != nil {
		radius = strconv.FormatFloat(*req.RadiusMiles, 'f', -1, 64)
	}
	return []string{
		strings.ToLower(strings.TrimSpace(req.City)),
		strings.ToLower(strings.TrimSpace(req.Cuisine)),
		coords,
		strconv.Itoa(req.TargetCount),
		radius,
	}
}

func clampTarget(target int) int {
	if target == 0 {
		return DefaultTargetCount
	}
	if target < 1 {
		return 1
	}
	if target > MaxTargetCount {
		return MaxTargetCount
	}
	return target
}
