package service

import (
	"context"
	"fmt"

	"discovery-api/internal/yelp"
)

// SearchClient is the paged upstream search consumed by the aggregator.
type SearchClient interface {
	Search(ctx context.Context, p yelp.SearchParams) (*yelp.SearchPage, error)
}

// fetchPaged pages the upstream search at one center until the accumulator is
// full or the upstream is exhausted. Exhaustion means either a page came back
// shorter than requested or the cumulative offset reached the reported total.
// Each page asks for no more than the accumulator still needs.
func fetchPaged(ctx context.Context, client SearchClient, params yelp.SearchParams, acc *accumulator) error {
	offset := 0
	for !acc.full() {
		params.Limit = acc.remaining()
		if params.Limit > yelp.MaxPageSize {
			params.Limit = yelp.MaxPageSize
		}
		params.Offset = offset

		page, err := client.Search(ctx, params)
		if err != nil {
			return fmt.Errorf("service: search page at offset %d: %w", offset, err)
		}

		for _, b := range page.Businesses {
			if acc.full() {
				break
			}
			acc.add(b)
		}

		offset += len(page.Businesses)
		if len(page.Businesses) < params.Limit {
			break
		}
		if page.Total > 0 && offset >= page.Total {
			break
		}
	}
	return nil
}
