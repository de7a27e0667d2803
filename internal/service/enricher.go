package service

import (
	"context"
	"sync"

	"discovery-api/internal/models"

	"github.com/rs/zerolog/log"
)

const (
	defaultMaxEnrich     = 40
	defaultEnrichWorkers = 5
)

// DetailClient is the per-business detail lookup consumed by the enricher.
type DetailClient interface {
	BusinessDetails(ctx context.Context, id string) (*models.DetailSubset, error)
}

// DetailEnricher fetches detail subsets for a capped prefix of the aggregated
// businesses using a fixed-size worker pool.
type DetailEnricher struct {
	client   DetailClient
	maxCount int
	workers  int
}

// NewDetailEnricher creates an enricher. Non-positive maxCount or workers
// select the defaults.
func NewDetailEnricher(client DetailClient, maxCount, workers int) *DetailEnricher {
	if maxCount <= 0 {
		maxCount = defaultMaxEnrich
	}
	if workers <= 0 {
		workers = defaultEnrichWorkers
	}
	return &DetailEnricher{client: client, maxCount: maxCount, workers: workers}
}

// Enrich looks up details for up to maxCount unique ids in first-seen order.
// Idle workers pull the next id from a shared channel, so one slow request
// blocks only its own worker. A failed lookup leaves its id out of the map.
func (e *DetailEnricher) Enrich(ctx context.Context, businesses []models.RawBusiness) map[string]*models.DetailSubset {
	ids := make([]string, 0, e.maxCount)
	picked := make(map[string]struct{}, e.maxCount)
	for _, b := range businesses {
		if len(ids) >= e.maxCount {
			break
		}
		if b.ID == "" {
			continue
		}
		if _, dup := picked[b.ID]; dup {
			continue
		}
		picked[b.ID] = struct{}{}
		ids = append(ids, b.ID)
	}
	if len(ids) == 0 {
		return map[string]*models.DetailSubset{}
	}

	type result struct {
		id      string
		details *models.DetailSubset
	}

	jobs := make(chan string)
	results := make(chan result, len(ids))

	workers := e.workers
	if workers > len(ids) {
		workers = len(ids)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range jobs {
				details, err := e.client.BusinessDetails(ctx, id)
				if err != nil {
					log.Debug().Err(err).Str("business_id", id).Msg("detail lookup failed")
					continue
				}
				if details == nil {
					continue
				}
				results <- result{id: id, details: details}
			}
		}()
	}

	for _, id := range ids {
		jobs <- id
	}
	close(jobs)
	wg.Wait()
	close(results)

	out := make(map[string]*models.DetailSubset, len(ids))
	for r := range results {
		out[r.id] = r.details
	}
	return out
}
