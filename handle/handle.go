package handle

import (
	"fmt"

	"github.com/akhenakh/handlemesh/r3"
)

// Polygon is one face boundary: an ordered, cyclic sequence of vertex
// positions, and the index within that sequence of the anchor vertex used to
// align the handle's angular origin.
type Polygon struct {
	Vertices []r3.Vector
	Anchor   int
}

// Reversed returns p traversed in the opposite winding. The anchor still
// names the same vertex.
func (p Polygon) Reversed() Polygon {
	n := len(p.Vertices)
	rev := make([]r3.Vector, n)
	for i, v := range p.Vertices {
		rev[n-1-i] = v
	}
	q := Polygon{Vertices: rev, Anchor: p.Anchor}
	if p.Anchor >= 0 && p.Anchor < n {
		q.Anchor = n - 1 - p.Anchor
	}
	return q
}

// Params configures handle construction.
type Params struct {
	// Segments is the number of interior cross-sections between the two
	// faces. Zero connects the faces directly with a single band of quads.
	Segments int

	// Weight1 and Weight2 control how far the handle bulges outward along
	// each face's normal before curving toward the other face. Zero at both
	// ends yields a straight loft between the face centers.
	Weight1, Weight2 float64

	// Twists is the number of extra full revolutions applied progressively
	// across the span. Negative values twist the other way.
	Twists int
}

// DefaultParams returns the parameters used by the interactive operator this
// package grew out of: ten segments, a moderate symmetric bulge, no twist.
func DefaultParams() Params {
	return Params{Segments: 10, Weight1: 10, Weight2: 10}
}

// Handle is a constructed tube of quadrilateral faces.
//
// Faces index into a combined vertex space of (Segments+2) rings of Slots
// vertices each, ring-major: indices [0, Slots) are the source ring (aliasing
// the source polygon's vertices via SourceSlot), the next Slots*Segments
// indices are the new interior points in Points, and the final Slots indices
// are the target ring (aliasing the target polygon via TargetSlot).
type Handle struct {
	// Slots is the common ring length L = max of the two input vertex counts.
	Slots int

	// Segments is the number of interior rings.
	Segments int

	// Points holds the newly created interior vertex positions, ring-major,
	// Slots*Segments in total. The end rings are not re-emitted here.
	Points []r3.Vector

	// Faces holds Slots*(Segments+1) quads in the combined index space,
	// wound consistently so normals point outward from the tube.
	Faces [][4]int

	// SourceSlot and TargetSlot map each end-ring slot to the index of the
	// input polygon vertex it aliases. Bunched slots repeat an index.
	SourceSlot []int
	TargetSlot []int

	rings [][]r3.Vector
}

// Make constructs a handle connecting src to dst. The two input polygons are
// consumed by the handle: once the result is grafted into a mesh, the caller
// is expected to delete the original faces, whose boundaries become the
// tube's end rings.
func Make(src, dst Polygon, p Params) (*Handle, error) {
	if p.Segments < 0 {
		return nil, fmt.Errorf("%w: segments must be non-negative, got %d", ErrParameter, p.Segments)
	}

	slots := max(len(src.Vertices), len(dst.Vertices))

	srcRing, srcSlot, err := Normalize(src, slots)
	if err != nil {
		return nil, fmt.Errorf("source polygon: %w", err)
	}

	// The target boundary is traversed in reverse so the quads of the tube
	// wind consistently with both end faces.
	dstRing, revSlot, err := Normalize(dst.Reversed(), slots)
	if err != nil {
		return nil, fmt.Errorf("target polygon: %w", err)
	}
	dstSlot := make([]int, slots)
	for i, s := range revSlot {
		dstSlot[i] = len(dst.Vertices) - 1 - s
	}

	// Profiles are centered on the faces' own centroids: bunched duplicate
	// slots must not skew the center, or the end radii would come out wrong.
	srcProf := ProfileAround(Centroid(src.Vertices), srcRing)
	dstProf := ProfileAround(Centroid(dst.Vertices), dstRing)
	lf := newLoft(srcProf, dstProf, p)

	h := &Handle{
		Slots:      slots,
		Segments:   p.Segments,
		SourceSlot: srcSlot,
		TargetSlot: dstSlot,
		Points:     make([]r3.Vector, 0, slots*p.Segments),
		rings:      make([][]r3.Vector, 0, p.Segments+2),
	}
	h.rings = append(h.rings, srcRing)
	for k := 1; k <= p.Segments; k++ {
		t := float64(k) / float64(p.Segments+1)
		ring := lf.ringAt(t)
		h.rings = append(h.rings, ring)
		h.Points = append(h.Points, ring...)
	}
	h.rings = append(h.rings, dstRing)

	h.buildFaces()
	return h, nil
}

// NumRings returns the total ring count, Segments+2.
func (h *Handle) NumRings() int { return h.Segments + 2 }

// Ring returns ring j of the tube: 0 is the normalized source boundary,
// NumRings()-1 the normalized (reversed) target boundary. The returned slice
// is shared with the Handle and must not be modified.
func (h *Handle) Ring(j int) []r3.Vector { return h.rings[j] }

// Position returns the position of a combined-space vertex index, including
// the end-ring vertices that alias the input polygons.
func (h *Handle) Position(idx int) r3.Vector {
	return h.rings[idx/h.Slots][idx%h.Slots]
}
