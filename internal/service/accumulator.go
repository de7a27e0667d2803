package service

import "discovery-api/internal/models"

// accumulator collects deduplicated businesses across the origin, ring, and
// fallback fetches. Dedup is keyed solely on the upstream id, and the set is
// capped at target by construction.
type accumulator struct {
	target     int
	businesses []models.RawBusiness
	seen       map[string]struct{}
}

func newAccumulator(target int) *accumulator {
	return &accumulator{
		target: target,
		seen:   make(map[string]struct{}),
	}
}

// add appends one business unless it is malformed, already seen, or the set
// is full. Reports whether the business was kept.
func (a *accumulator) add(b models.RawBusiness) bool {
	if a.full() || b.ID == "" {
		return false
	}
	if _, dup := a.seen[b.ID]; dup {
		return false
	}
	a.seen[b.ID] = struct{}{}
	a.businesses = append(a.businesses, b)
	return true
}

func (a *accumulator) full() bool {
	return len(a.businesses) >= a.target
}

func (a *accumulator) remaining() int {
	return a.target - len(a.businesses)
}
