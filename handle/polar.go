package handle

import (
	"math"

	"github.com/akhenakh/handlemesh/r3"
)

// PolarPoint is one ring vertex expressed in its profile's local plane:
// an in-plane distance from the center and an angle from the X axis,
// normalized to [0, 2π) at profile build time.
type PolarPoint struct {
	Radius float64
	Angle  float64
}

// Profile is the polar-coordinate decomposition of one ring: its center, an
// orthonormal frame whose X axis points at the anchor slot (so angle 0
// corresponds to the anchor), and every slot in polar form.
type Profile struct {
	Center r3.Vector

	// Normal, XAxis and YAxis form a right-handed orthonormal frame;
	// Normal follows the ring's winding (Newell's method).
	Normal, XAxis, YAxis r3.Vector

	Polar []PolarPoint
}

// degenerateTol bounds squared norms below which a direction is treated as
// undefined and a deterministic fallback is substituted.
const degenerateTol = 1e-20

// Centroid returns the arithmetic mean of a point sequence.
func Centroid(points []r3.Vector) r3.Vector {
	xs, ys, zs := ringToSoA(points)
	sx, sy, sz := BaseSumRing(xs, ys, zs)
	return r3.Vector{X: sx, Y: sy, Z: sz}.Mul(1 / float64(len(points)))
}

// ProfileOf decomposes a ring into its polar profile around the ring's own
// centroid. Note that on a ring with bunched duplicate slots the duplicates
// weight the centroid; use ProfileAround with the centroid of the distinct
// boundary vertices to reproduce the face's true center.
func ProfileOf(ring []r3.Vector) Profile {
	return ProfileAround(Centroid(ring), ring)
}

// ProfileAround decomposes a ring into its polar profile around the given
// center. Rings without a well-defined plane (collinear or coincident
// vertices) do not fail: a deterministic fallback axis is chosen and a
// warning is logged, since a real-world selection can be arbitrarily close
// to degenerate.
func ProfileAround(center r3.Vector, ring []r3.Vector) Profile {
	xs, ys, zs := ringToSoA(ring)

	normal := newellNormal(ring)
	if normal.Norm2() < degenerateTol {
		normal = fallbackNormal(ring, center)
		Logger().Warn("ring has no well-defined plane, using fallback axis",
			"center", center, "normal", normal)
	} else {
		normal = normal.Normalize()
	}

	xAxis := anchorAxis(ring, center, normal)
	yAxis := normal.Cross(xAxis)

	u := make([]float64, len(ring))
	v := make([]float64, len(ring))
	BaseProjectRing(
		center.X, center.Y, center.Z,
		xAxis.X, xAxis.Y, xAxis.Z,
		yAxis.X, yAxis.Y, yAxis.Z,
		xs, ys, zs, u, v,
	)

	polar := make([]PolarPoint, len(ring))
	for i := range polar {
		a := math.Atan2(v[i], u[i])
		if a < 0 {
			a += 2 * math.Pi
		}
		polar[i] = PolarPoint{Radius: math.Hypot(u[i], v[i]), Angle: a}
	}

	return Profile{
		Center: center,
		Normal: normal,
		XAxis:  xAxis,
		YAxis:  yAxis,
		Polar:  polar,
	}
}

// Point maps a polar point back into 3D using the profile's center and frame.
func (f Profile) Point(pp PolarPoint) r3.Vector {
	return f.Center.
		Add(f.XAxis.Mul(pp.Radius * math.Cos(pp.Angle))).
		Add(f.YAxis.Mul(pp.Radius * math.Sin(pp.Angle)))
}

// newellNormal computes the ring's area-weighted normal by Newell's method.
// The result follows the ring's winding and is not normalized; a near-zero
// norm means the vertices are collinear.
func newellNormal(ring []r3.Vector) r3.Vector {
	var n r3.Vector
	for i, v := range ring {
		w := ring[(i+1)%len(ring)]
		n.X += (v.Y - w.Y) * (v.Z + w.Z)
		n.Y += (v.Z - w.Z) * (v.X + w.X)
		n.Z += (v.X - w.X) * (v.Y + w.Y)
	}
	return n
}

// fallbackNormal picks a deterministic plane normal for a ring whose Newell
// normal vanished. Collinear vertices get an axis orthogonal to their common
// direction; fully coincident vertices get the Z axis.
func fallbackNormal(ring []r3.Vector, center r3.Vector) r3.Vector {
	var dir r3.Vector
	best := 0.0
	for _, p := range ring {
		d := p.Sub(center)
		if n2 := d.Norm2(); n2 > best {
			best = n2
			dir = d
		}
	}
	if best < degenerateTol {
		return r3.Vector{Z: 1}
	}
	return dir.Ortho()
}

// anchorAxis returns the unit in-plane direction from the center toward the
// anchor slot. If the anchor sits on the center, the largest in-plane offset
// among the remaining slots is used instead, and failing that a deterministic
// orthogonal of the normal.
func anchorAxis(ring []r3.Vector, center, normal r3.Vector) r3.Vector {
	inPlane := func(p r3.Vector) r3.Vector {
		d := p.Sub(center)
		return d.Sub(normal.Mul(d.Dot(normal)))
	}

	if a := inPlane(ring[0]); a.Norm2() >= degenerateTol {
		return a.Normalize()
	}

	var bestDir r3.Vector
	best := 0.0
	for _, p := range ring[1:] {
		if a := inPlane(p); a.Norm2() > best {
			best = a.Norm2()
			bestDir = a
		}
	}
	if best >= degenerateTol {
		Logger().Warn("anchor coincides with ring center, using farthest slot for the angular origin")
		return bestDir.Normalize()
	}
	Logger().Warn("ring has no usable in-plane direction, using fallback axis")
	return normal.Ortho()
}

// ringToSoA de-interleaves ring coordinates for the batch kernels.
func ringToSoA(ring []r3.Vector) (xs, ys, zs []float64) {
	xs = make([]float64, len(ring))
	ys = make([]float64, len(ring))
	zs = make([]float64, len(ring))
	for i, p := range ring {
		xs[i], ys[i], zs[i] = p.X, p.Y, p.Z
	}
	return xs, ys, zs
}
