package yelp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"discovery-api/internal/models"

	"github.com/cenkalti/backoff/v4"
)

const (
	defaultBaseURL = "https://api.yelp.com/v3"

	// MaxPageSize is the most results the upstream returns per search call.
	MaxPageSize = 50
	// MaxRadiusMeters is the upstream's hard cap on the search radius.
	MaxRadiusMeters = 40000

	requestTimeout = 10 * time.Second
	maxRetries     = 2
)

// ErrNoAPIKey is returned when the client was built without an API key.
var ErrNoAPIKey = errors.New("yelp: api key not configured")

// StatusError carries a non-success upstream status and a best-effort message
// extracted from the error body.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("yelp: upstream returned %d: %s", e.StatusCode, e.Message)
}

// SearchParams are the query parameters for one page of the business search.
// Offset is omitted from the request when zero.
type SearchParams struct {
	Categories   string
	Term         string
	Location     string
	Latitude     *float64
	Longitude    *float64
	RadiusMeters int
	SortBy       string
	Limit        int
	Offset       int
}

// SearchPage is one page of the upstream search response.
type SearchPage struct {
	Businesses []models.RawBusiness `json:"businesses"`
	Total      int                  `json:"total"`
}

// Client talks to the upstream business search API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates an upstream client. An empty baseURL selects the
// production endpoint; tests pass an httptest server URL instead.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Search runs one page of the nearby business search.
func (c *Client) Search(ctx context.Context, p SearchParams) (*SearchPage, error) {
	q := url.Values{}
	if p.Categories != "" {
		q.Set("categories", p.Categories)
	}
	if p.Term != "" {
		q.Set("term", p.Term)
	}
	if p.Location != "" {
		q.Set("location", p.Location)
	}
	if p.Latitude != nil && p.Longitude != nil {
		q.Set("latitude", strconv.FormatFloat(*p.Latitude, 'f', -1, 64))
		q.Set("longitude", strconv.FormatFloat(*p.Longitude, 'f', -1, 64))
	}
	if p.RadiusMeters > 0 {
		radius := p.RadiusMeters
		if radius > MaxRadiusMeters {
			radius = MaxRadiusMeters
		}
		q.Set("radius", strconv.Itoa(radius))
	}
	if p.SortBy != "" {
		q.Set("sort_by", p.SortBy)
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}

	var page SearchPage
	if err := c.get(ctx, "/businesses/search?"+q.Encode(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// detailResponse captures the detail fields used for service-option inference.
type detailResponse struct {
	Attributes     map[string]any `json:"attributes"`
	Transactions   []string       `json:"transactions"`
	ServiceOptions map[string]any `json:"service_options"`
}

// BusinessDetails fetches the per-business detail subset. Returns (nil, nil)
// when the record carries nothing usable.
func (c *Client) BusinessDetails(ctx context.Context, id string) (*models.DetailSubset, error) {
	var detail detailResponse
	if err := c.get(ctx, "/businesses/"+url.PathEscape(id), &detail); err != nil {
		return nil, err
	}

	subset := models.DetailSubset{
		Attributes:     detail.Attributes,
		Transactions:   detail.Transactions,
		ServiceOptions: detail.ServiceOptions,
	}
	if subset.Empty() {
		return nil, nil
	}
	return &subset, nil
}

// get issues one authenticated GET, retrying 429 and 5xx responses with
// exponential backoff before giving up.
func (c *Client) get(ctx context.Context, path string, out any) error {
	if c.apiKey == "" {
		return ErrNoAPIKey
	}

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("yelp: building request: %w", err))
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("yelp: request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			statusErr := &StatusError{StatusCode: resp.StatusCode, Message: extractErrorMessage(resp.Body)}
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				return statusErr
			}
			return backoff.Permanent(statusErr)
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return backoff.Permanent(fmt.Errorf("yelp: decoding response: %w", err))
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	return backoff.Retry(operation, policy)
}

// extractErrorMessage pulls a best-effort message out of an upstream error body.
func extractErrorMessage(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(body) == 0 {
		return "upstream request failed"
	}

	var wrapped struct {
		Error struct {
			Description string `json:"description"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &wrapped) == nil && wrapped.Error.Description != "" {
		return wrapped.Error.Description
	}

	var plain struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &plain) == nil && plain.Error != "" {
		return plain.Error
	}

	return string(body)
}
