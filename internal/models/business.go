package models

// SearchRequest carries one restaurant search. At least one of City or the
// Latitude/Longitude pair must be present. Built once per HTTP call, never mutated.
type SearchRequest struct {
	City        string
	Latitude    *float64
	Longitude   *float64
	Cuisine     string
	TargetCount int
	RadiusMiles *float64
}

// HasCoordinates reports whether both coordinates were supplied.
func (r SearchRequest) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// HasLocation reports whether the request names any searchable location.
func (r SearchRequest) HasLocation() bool {
	return r.City != "" || r.HasCoordinates()
}

// Category is one upstream business category.
type Category struct {
	Alias string `json:"alias"`
	Title string `json:"title"`
}

// Coordinates is a latitude/longitude pair as returned by the upstream.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// BusinessLocation holds the upstream address fields the simplifier reads.
type BusinessLocation struct {
	Address1       string   `json:"address1"`
	City           string   `json:"city"`
	DisplayAddress []string `json:"display_address"`
}

// RawBusiness is one record from the upstream search response. Only ID is
// structural; identity and dedup are keyed solely on it.
type RawBusiness struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	URL          string           `json:"url"`
	ImageURL     string           `json:"image_url"`
	Phone        string           `json:"display_phone"`
	Price        string           `json:"price"`
	Rating       float64          `json:"rating"`
	ReviewCount  int              `json:"review_count"`
	Categories   []Category       `json:"categories"`
	Coordinates  *Coordinates     `json:"coordinates"`
	Location     BusinessLocation `json:"location"`
	Transactions []string         `json:"transactions"`
	Attributes   map[string]any   `json:"attributes"`
}

// DetailSubset is the slice of a per-business detail lookup the service cares
// about. Absent entirely when the lookup failed or returned nothing usable.
type DetailSubset struct {
	Attributes     map[string]any `json:"attributes"`
	Transactions   []string       `json:"transactions"`
	ServiceOptions map[string]any `json:"service_options"`
}

// Empty reports whether the subset carries no usable signal.
func (d DetailSubset) Empty() bool {
	return len(d.Attributes) == 0 && len(d.Transactions) == 0 && len(d.ServiceOptions) == 0
}

// ServiceOptions are the reconciled takeout/dine-in flags. Nil means the
// upstream gave no signal either way.
type ServiceOptions struct {
	Takeout *bool `json:"takeout"`
	SitDown *bool `json:"sit_down"`
}

// Empty reports whether no signal was inferred for either field.
func (o ServiceOptions) Empty() bool {
	return o.Takeout == nil && o.SitDown == nil
}

// SimplifiedBusiness is the client-facing shape of one aggregated business.
type SimplifiedBusiness struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Address        string          `json:"address,omitempty"`
	City           string          `json:"city,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Rating         float64         `json:"rating"`
	ReviewCount    int             `json:"review_count"`
	Price          string          `json:"price,omitempty"`
	Categories     []string        `json:"categories,omitempty"`
	URL            string          `json:"url,omitempty"`
	ImageURL       string          `json:"image_url,omitempty"`
	Coordinates    *Coordinates    `json:"coordinates,omitempty"`
	ServiceOptions *ServiceOptions `json:"service_options,omitempty"`
}
