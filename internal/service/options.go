package service

import (
	"strings"

	"discovery-api/internal/models"
)

// InferServiceOptions reconciles the upstream's inconsistent takeout/dine-in
// signals into two tri-state flags. Signals apply in order of specificity:
// transaction tags, then attribute flags (detail over search), then the
// structured service-option fields. A later signal can set an unset field
// either way, but a field already true is never downgraded to false.
func InferServiceOptions(search *models.RawBusiness, details *models.DetailSubset) models.ServiceOptions {
	var opts models.ServiceOptions

	var tags []string
	if search != nil {
		tags = append(tags, search.Transactions...)
	}
	if details != nil {
		tags = append(tags, details.Transactions...)
	}
	for _, tag := range tags {
		switch strings.ToLower(tag) {
		case "pickup", "delivery", "takeout":
			applySignal(&opts.Takeout, true)
		case "dine-in", "dine_in", "restaurant_reservation", "reservation":
			applySignal(&opts.SitDown, true)
		}
	}

	attrs := attributeSource(search, details)
	for _, key := range []string{"RestaurantsTakeOut", "RestaurantsDelivery"} {
		if v, ok := boolValue(attrs, key); ok {
			applySignal(&opts.Takeout, v)
		}
	}
	for _, key := range []string{"RestaurantsTableService", "RestaurantsReservations"} {
		if v, ok := boolValue(attrs, key); ok {
			applySignal(&opts.SitDown, v)
		}
	}

	if details != nil {
		if v, ok := boolValue(details.ServiceOptions, "takeout"); ok {
			applySignal(&opts.Takeout, v)
		}
		if v, ok := boolValue(details.ServiceOptions, "dine_in"); ok {
			applySignal(&opts.SitDown, v)
		}
	}

	return opts
}

// attributeSource prefers the detail record's attributes over the search
// record's.
func attributeSource(search *models.RawBusiness, details *models.DetailSubset) map[string]any {
	if details != nil && len(details.Attributes) > 0 {
		return details.Attributes
	}
	if search != nil {
		return search.Attributes
	}
	return nil
}

// applySignal upgrades an unset field either way; an explicit false never
// overrides an earlier true.
func applySignal(field **bool, value bool) {
	if !value && *field != nil && **field {
		return
	}
	v := value
	*field = &v
}

func boolValue(m map[string]any, key string) (bool, bool) {
	if m == nil {
		return false, false
	}
	v, ok := m[key].(bool)
	return v, ok
}
