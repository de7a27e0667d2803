package service

import (
	"context"
	"fmt"
	"testing"

	"discovery-api/internal/models"
	"discovery-api/internal/yelp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSearchClient serves scripted pages and records every request it saw.
type fakeSearchClient struct {
	calls   []yelp.SearchParams
	handler func(call int, p yelp.SearchParams) (*yelp.SearchPage, error)
}

func (f *fakeSearchClient) Search(ctx context.Context, p yelp.SearchParams) (*yelp.SearchPage, error) {
	call := len(f.calls)
	f.calls = append(f.calls, p)
	return f.handler(call, p)
}

func makeBusinesses(prefix string, n int) []models.RawBusiness {
	businesses := make([]models.RawBusiness, n)
	for i := range businesses {
		businesses[i] = models.RawBusiness{ID: fmt.Sprintf("%s-%d", prefix, i)}
	}
	return businesses
}

func TestFetchPaged_PagesUntilTarget(t *testing.T) {
	client := &fakeSearchClient{
		handler: func(call int, p yelp.SearchParams) (*yelp.SearchPage, error) {
			return &yelp.SearchPage{
				Businesses: makeBusinesses(fmt.Sprintf("p%d", call), p.Limit),
				Total:      500,
			}, nil
		},
	}

	acc := newAccumulator(120)
	err := fetchPaged(context.Background(), client, yelp.SearchParams{Location: "boston"}, acc)
	require.NoError(t, err)

	require.Len(t, client.calls, 3)
	assert.Equal(t, []int{50, 50, 20}, []int{client.calls[0].Limit, client.calls[1].Limit, client.calls[2].Limit})
	assert.Equal(t, []int{0, 50, 100}, []int{client.calls[0].Offset, client.calls[1].Offset, client.calls[2].Offset})
	assert.Len(t, acc.businesses, 120)
}

func TestFetchPaged_ShortPageStops(t *testing.T) {
	client := &fakeSearchClient{
		handler: func(call int, p yelp.SearchParams) (*yelp.SearchPage, error) {
			return &yelp.SearchPage{Businesses: makeBusinesses("p", 30), Total: 0}, nil
		},
	}

	acc := newAccumulator(120)
	err := fetchPaged(context.Background(), client, yelp.SearchParams{Location: "boston"}, acc)
	require.NoError(t, err)

	assert.Len(t, client.calls, 1)
	assert.Len(t, acc.businesses, 30)
}

func TestFetchPaged_ReportedTotalStops(t *testing.T) {
	client := &fakeSearchClient{
		handler: func(call int, p yelp.SearchParams) (*yelp.SearchPage, error) {
			return &yelp.SearchPage{Businesses: makeBusinesses("p", p.Limit), Total: 50}, nil
		},
	}

	acc := newAccumulator(120)
	err := fetchPaged(context.Background(), client, yelp.SearchParams{Location: "boston"}, acc)
	require.NoError(t, err)

	// Full first page, but the reported total says there is nothing after it.
	assert.Len(t, client.calls, 1)
	assert.Len(t, acc.businesses, 50)
}

func TestFetchPaged_DeduplicatesAgainstAccumulator(t *testing.T) {
	client := &fakeSearchClient{
		handler: func(call int, p yelp.SearchParams) (*yelp.SearchPage, error) {
			// Every page returns the same 50 ids.
			return &yelp.SearchPage{Businesses: makeBusinesses("same", p.Limit), Total: 100}, nil
		},
	}

	acc := newAccumulator(120)
	acc.add(models.RawBusiness{ID: "same-0"})
	err := fetchPaged(context.Background(), client, yelp.SearchParams{Location: "boston"}, acc)
	require.NoError(t, err)

	ids := make(map[string]struct{})
	for _, b := range acc.businesses {
		_, dup := ids[b.ID]
		assert.False(t, dup, "duplicate id %s", b.ID)
		ids[b.ID] = struct{}{}
	}
	assert.Len(t, acc.businesses, 50)
}

func TestFetchPaged_DiscardsRestOfPageOnceFull(t *testing.T) {
	client := &fakeSearchClient{
		handler: func(call int, p yelp.SearchParams) (*yelp.SearchPage, error) {
			// Upstream over-delivers relative to the requested limit.
			return &yelp.SearchPage{Businesses: makeBusinesses("p", 50), Total: 0}, nil
		},
	}

	acc := newAccumulator(10)
	err := fetchPaged(context.Background(), client, yelp.SearchParams{Location: "boston"}, acc)
	require.NoError(t, err)

	assert.Equal(t, 10, client.calls[0].Limit)
	assert.Len(t, acc.businesses, 10)
}

func TestFetchPaged_SkipsMalformedRecords(t *testing.T) {
	client := &fakeSearchClient{
		handler: func(call int, p yelp.SearchParams) (*yelp.SearchPage, error) {
			return &yelp.SearchPage{
				Businesses: []models.RawBusiness{{ID: "b1"}, {}, {ID: "b2"}},
				Total:      3,
			}, nil
		},
	}

	acc := newAccumulator(120)
	err := fetchPaged(context.Background(), client, yelp.SearchParams{Location: "boston"}, acc)
	require.NoError(t, err)

	assert.Len(t, acc.businesses, 2)
}

func TestFetchPaged_ErrorPropagates(t *testing.T) {
	upstreamErr := &yelp.StatusError{StatusCode: 503, Message: "unavailable"}
	client := &fakeSearchClient{
		handler: func(call int, p yelp.SearchParams) (*yelp.SearchPage, error) {
			return nil, upstreamErr
		},
	}

	acc := newAccumulator(120)
	err := fetchPaged(context.Background(), client, yelp.SearchParams{Location: "boston"}, acc)

	var statusErr *yelp.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 503, statusErr.StatusCode)
}
