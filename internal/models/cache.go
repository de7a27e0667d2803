package models

// CacheEntry is one stored upstream response, addressed by a canonical key
// built from normalized request parameters.
type CacheEntry struct {
	Status      int               `json:"status"`
	ContentType string            `json:"content_type"`
	Body        string            `json:"body"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}
