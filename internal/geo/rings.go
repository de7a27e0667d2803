package geo

import "fmt"

// GenerateRings produces search centers arranged in concentric rings around
// origin, closest ring first. Farther rings get more bearings, up to 16, and
// odd rings are rotated by half a bearing step so their points don't line up
// radially with the previous ring. Points are deduplicated across the whole
// expansion by their coordinates rounded to 4 decimal places.
func GenerateRings(origin Point, rings int, startDistanceMiles, ringStepMiles float64) []Point {
	seen := make(map[string]struct{})
	var points []Point

	for r := 0; r < rings; r++ {
		distance := startDistanceMiles + float64(r)*ringStepMiles
		bearings := 6 + 2*r
		if bearings > 16 {
			bearings = 16
		}
		step := 360.0 / float64(bearings)
		offset := 0.0
		if r%2 == 1 {
			offset = step / 2
		}

		for b := 0; b < bearings; b++ {
			p := DestinationPoint(origin, distance, offset+float64(b)*step)
			if p == nil {
				continue
			}
			key := fmt.Sprintf("%.4f,%.4f", p.Latitude, p.Longitude)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			points = append(points, *p)
		}
	}

	return points
}
