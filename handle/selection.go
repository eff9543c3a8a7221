package handle

import (
	"fmt"

	"github.com/akhenakh/handlemesh/r3"
)

// ResolveSelection applies the host's selection-order pairing policy and
// turns a raw selection into the two anchored polygons Make consumes.
//
// faces holds the two selected face boundaries, as vertex indices into verts,
// in selection order. picks holds the selected vertex indices, also in
// selection order: two picks pair first-face with first-pick and second-face
// with second-pick, swapping the picks once if the first pick is not on the
// first face; a single pick must lie on both faces and anchors both ends.
// No other disambiguation is attempted.
func ResolveSelection(verts []r3.Vector, faces [2][]int, picks []int) (src, dst Polygon, err error) {
	for fi, face := range faces {
		for _, vi := range face {
			if vi < 0 || vi >= len(verts) {
				return src, dst, fmt.Errorf("%w: face %d references vertex %d outside the mesh", ErrSelection, fi, vi)
			}
		}
	}

	var pick1, pick2 int
	switch len(picks) {
	case 1:
		pick1, pick2 = picks[0], picks[0]
		if !contains(faces[0], pick1) || !contains(faces[1], pick1) {
			return src, dst, fmt.Errorf("%w: single selected vertex %d must be on both faces", ErrSelection, pick1)
		}
	case 2:
		pick1, pick2 = picks[0], picks[1]
		if !contains(faces[0], pick1) || !contains(faces[1], pick2) {
			pick1, pick2 = pick2, pick1
		}
		if !contains(faces[0], pick1) {
			return src, dst, fmt.Errorf("%w: neither selected vertex is on the first face", ErrSelection)
		}
		if !contains(faces[1], pick2) {
			return src, dst, fmt.Errorf("%w: neither selected vertex is on the second face", ErrSelection)
		}
	default:
		return src, dst, fmt.Errorf("%w: need 1 or 2 selected vertices, got %d", ErrSelection, len(picks))
	}

	src = gather(verts, faces[0], pick1)
	dst = gather(verts, faces[1], pick2)
	return src, dst, nil
}

func contains(face []int, vi int) bool {
	for _, f := range face {
		if f == vi {
			return true
		}
	}
	return false
}

func gather(verts []r3.Vector, face []int, pick int) Polygon {
	p := Polygon{Vertices: make([]r3.Vector, len(face))}
	for i, vi := range face {
		p.Vertices[i] = verts[vi]
		if vi == pick {
			p.Anchor = i
		}
	}
	return p
}
