package service

import (
	"strings"

	"discovery-api/internal/models"
)

// SimplifyBusiness maps one raw record plus its optional details into the
// client-facing shape. Returns nil for a missing or malformed record.
// ServiceOptions is included only when at least one field carries a signal.
func SimplifyBusiness(business *models.RawBusiness, details *models.DetailSubset) *models.SimplifiedBusiness {
	if business == nil || business.ID == "" {
		return nil
	}

	address := strings.Join(business.Location.DisplayAddress, ", ")
	if address == "" {
		address = business.Location.Address1
	}

	var categories []string
	for _, c := range business.Categories {
		if c.Title != "" {
			categories = append(categories, c.Title)
		}
	}

	simplified := &models.SimplifiedBusiness{
		ID:          business.ID,
		Name:        business.Name,
		Address:     address,
		City:        business.Location.City,
		Phone:       business.Phone,
		Rating:      business.Rating,
		ReviewCount: business.ReviewCount,
		Price:       business.Price,
		Categories:  categories,
		URL:         business.URL,
		ImageURL:    business.ImageURL,
	}
	if business.Coordinates != nil {
		coords := *business.Coordinates
		simplified.Coordinates = &coords
	}

	if opts := InferServiceOptions(business, details); !opts.Empty() {
		simplified.ServiceOptions = &opts
	}

	return simplified
}
