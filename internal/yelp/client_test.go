package yelp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64Ptr(f float64) *float64 { return &f }

func TestClient_Search_QueryParameters(t *testing.T) {
	var gotQuery url.Values
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"businesses": [], "total": 0}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)
	_, err := client.Search(context.Background(), SearchParams{
		Categories:   "restaurants",
		Term:         "sushi",
		Latitude:     float64Ptr(40.7128),
		Longitude:    float64Ptr(-74.006),
		RadiusMeters: 99999, // over the upstream cap
		SortBy:       "distance",
		Limit:        50,
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "restaurants", gotQuery.Get("categories"))
	assert.Equal(t, "sushi", gotQuery.Get("term"))
	assert.Equal(t, "40.7128", gotQuery.Get("latitude"))
	assert.Equal(t, "-74.006", gotQuery.Get("longitude"))
	assert.Equal(t, "40000", gotQuery.Get("radius"))
	assert.Equal(t, "distance", gotQuery.Get("sort_by"))
	assert.Equal(t, "50", gotQuery.Get("limit"))
	assert.False(t, gotQuery.Has("offset"), "offset must be omitted on the first page")
	assert.False(t, gotQuery.Has("location"))
}

func TestClient_Search_DecodesPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "20", r.URL.Query().Get("offset"))
		w.Write([]byte(`{"businesses": [{"id": "b1", "name": "Place One"}, {"id": "b2", "name": "Place Two"}], "total": 57}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)
	page, err := client.Search(context.Background(), SearchParams{Location: "boston", Limit: 20, Offset: 20})
	require.NoError(t, err)

	assert.Equal(t, 57, page.Total)
	require.Len(t, page.Businesses, 2)
	assert.Equal(t, "b1", page.Businesses[0].ID)
	assert.Equal(t, "Place Two", page.Businesses[1].Name)
}

func TestClient_Search_MissingAPIKey(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	client := NewClient("", server.URL)
	_, err := client.Search(context.Background(), SearchParams{Location: "boston"})

	assert.ErrorIs(t, err, ErrNoAPIKey)
	assert.Zero(t, calls)
}

func TestClient_Search_ClientErrorNotRetried(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"code": "VALIDATION_ERROR", "description": "radius too large"}}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)
	_, err := client.Search(context.Background(), SearchParams{Location: "boston"})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, "radius too large", statusErr.Message)
	assert.Equal(t, 1, calls)
}

func TestClient_Search_ServerErrorRetried(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"businesses": [{"id": "b1"}], "total": 1}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)
	page, err := client.Search(context.Background(), SearchParams{Location: "boston"})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Len(t, page.Businesses, 1)
}

func TestClient_BusinessDetails(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		expectSubset bool
	}{
		{
			name:         "usable detail fields",
			body:         `{"attributes": {"RestaurantsTakeOut": true}, "transactions": ["pickup"]}`,
			expectSubset: true,
		},
		{
			name:         "structured service options only",
			body:         `{"service_options": {"takeout": true, "dine_in": false}}`,
			expectSubset: true,
		},
		{
			name:         "nothing usable",
			body:         `{"id": "b1", "name": "Place One"}`,
			expectSubset: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/businesses/b1", r.URL.Path)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient("test-key", server.URL)
			subset, err := client.BusinessDetails(context.Background(), "b1")
			require.NoError(t, err)

			if tt.expectSubset {
				assert.NotNil(t, subset)
			} else {
				assert.Nil(t, subset)
			}
		})
	}
}
