package handle

import (
	"fmt"
	"math"

	"github.com/akhenakh/handlemesh/r3"
)

// Normalize resamples p's boundary onto slots output positions, rotated so
// that the anchor vertex occupies slot 0.
//
// When slots exceeds the vertex count n, vertices are duplicated in
// contiguous runs by nearest-proportional assignment: vertex i fills the slot
// range [round(i*slots/n), round((i+1)*slots/n)). Coincident duplicates
// therefore bunch up next to each other rather than interleaving, which is
// what makes mismatched vertex counts loft cleanly. When slots == n the
// result is a pure rotation.
//
// The returned slot table maps each output slot back to the index of the
// p.Vertices entry it aliases.
func Normalize(p Polygon, slots int) ([]r3.Vector, []int, error) {
	n := len(p.Vertices)
	if n < 3 {
		return nil, nil, fmt.Errorf("%w: polygon has %d vertices, need at least 3", ErrDegenerateInput, n)
	}
	if p.Anchor < 0 || p.Anchor >= n {
		return nil, nil, fmt.Errorf("%w: anchor index %d not on a boundary of %d vertices", ErrDegenerateInput, p.Anchor, n)
	}
	if slots < n {
		return nil, nil, fmt.Errorf("%w: cannot place %d vertices into %d slots", ErrDegenerateInput, n, slots)
	}

	ring := make([]r3.Vector, slots)
	slot := make([]int, slots)
	for i := 0; i < n; i++ {
		lo := int(math.Round(float64(i) * float64(slots) / float64(n)))
		hi := int(math.Round(float64(i+1) * float64(slots) / float64(n)))
		src := (p.Anchor + i) % n
		for j := lo; j < hi; j++ {
			ring[j] = p.Vertices[src]
			slot[j] = src
		}
	}
	return ring, slot, nil
}
