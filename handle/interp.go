package handle

import (
	"math"

	"github.com/akhenakh/handlemesh/r3"
)

// hermite1 is the unique cubic with f(0)=1, f(1)=0, f'(0)=f'(1)=0.
func hermite1(t float64) float64 { return 2*t*t*t - 3*t*t + 1 }

// hermite2 is the unique cubic with f(0)=f(1)=0, f'(0)=1, f'(1)=0.
func hermite2(t float64) float64 { return t*t*t - 2*t*t + t }

// frameTol bounds the sine of the rotation angle below which the two end
// frames are treated as parallel or antiparallel.
const frameTol = 1e-9

// loft interpolates cross-sections between two ring profiles. All of the
// span-wide quantities (the frame rotation carrying the source plane onto
// the target plane, and the per-slot radius and angle endpoints) are
// computed once up front; ringAt then evaluates a section at any t in (0,1).
type loft struct {
	src, dst Profile

	// Rotation carrying the source frame onto the target plane.
	axis  r3.Vector
	angle float64

	// Per-slot interpolation endpoints. endR/endA describe the target ring
	// re-expressed in the transported source frame, with the twist term
	// folded into endA so a single lerp evaluates both.
	startR, endR []float64
	startA, endA []float64

	weight1, weight2 float64
}

func newLoft(src, dst Profile, p Params) *loft {
	l := &loft{
		src:     src,
		dst:     dst,
		weight1: p.Weight1,
		weight2: p.Weight2,
	}
	l.initRotation()
	l.initSlots(p.Twists)
	return l
}

// initRotation finds the shortest rotation from the source ring normal to
// the target ring normal. Antiparallel normals (faces pointing the same way,
// as with two faces on the same side of a shape) leave the axis ambiguous;
// the axis is then chosen so the mid-span plane faces along the displacement
// between the two centers, which is the arc the handle travels. If that
// displacement is degenerate too, the choice falls back to a deterministic
// orthogonal axis.
func (l *loft) initRotation() {
	cross := l.src.Normal.Cross(l.dst.Normal)
	sin := cross.Norm()
	cos := l.src.Normal.Dot(l.dst.Normal)

	switch {
	case sin >= frameTol:
		l.axis = cross.Mul(1 / sin)
		l.angle = math.Atan2(sin, cos)
	case cos > 0:
		// Parallel planes: nothing to rotate.
		l.axis = r3.Vector{Z: 1}
		l.angle = 0
	default:
		d := l.dst.Center.Sub(l.src.Center)
		d = d.Sub(l.src.Normal.Mul(d.Dot(l.src.Normal)))
		if d.Norm2() < degenerateTol {
			Logger().Warn("end planes are antiparallel with coincident centers, twist axis is arbitrary")
			l.axis = l.src.Normal.Cross(l.src.Normal.Ortho())
		} else {
			l.axis = l.src.Normal.Cross(d.Normalize())
		}
		l.angle = math.Pi
	}
}

// initSlots computes the per-slot interpolation endpoints. Target angles are
// measured in the transported end frame rather than the target's own frame,
// so that t=1 lands exactly on the target ring. Each slot's angle travels the
// short way around the circle; the twist parameter is the sole source of
// extra revolutions.
func (l *loft) initSlots(twists int) {
	slots := len(l.src.Polar)
	l.startR = make([]float64, slots)
	l.endR = make([]float64, slots)
	l.startA = make([]float64, slots)
	l.endA = make([]float64, slots)

	// Signed in-plane angle from the transported X axis to the target
	// profile's own X axis.
	_, xEnd, _ := l.frameAt(1)
	phi := math.Atan2(l.dst.Normal.Dot(xEnd.Cross(l.dst.XAxis)), xEnd.Dot(l.dst.XAxis))

	twist := 2 * math.Pi * float64(twists)
	for i := range l.startR {
		l.startR[i] = l.src.Polar[i].Radius
		l.endR[i] = l.dst.Polar[i].Radius
		l.startA[i] = l.src.Polar[i].Angle
		delta := wrapPi(l.dst.Polar[i].Angle + phi - l.startA[i])
		l.endA[i] = l.startA[i] + delta + twist
	}
}

// frameAt returns the cross-section frame at parameter t.
func (l *loft) frameAt(t float64) (n, x, y r3.Vector) {
	n, x = l.src.Normal, l.src.XAxis
	if l.angle != 0 {
		n = rotate(n, l.axis, l.angle*t)
		x = rotate(x, l.axis, l.angle*t)
	}
	return n, x, n.Cross(x)
}

// centerAt evaluates the Hermite center path at parameter t. The basis
// cubics blend the two face centers, and each weight scales a displacement
// along its face's outward normal, peaking a third of the way in from that
// end. Zero weights keep the centers on the straight segment between the two
// faces.
func (l *loft) centerAt(t float64) r3.Vector {
	c := l.src.Center.Mul(hermite1(t)).Add(l.dst.Center.Mul(hermite1(1 - t)))
	c = c.Add(l.src.Normal.Mul(l.weight1 * hermite2(t)))
	// The target ring normal points back along the tube, so the outward
	// bulge at that end subtracts it.
	return c.Sub(l.dst.Normal.Mul(l.weight2 * hermite2(1 - t)))
}

// ringAt synthesizes the cross-section at parameter t.
func (l *loft) ringAt(t float64) []r3.Vector {
	slots := len(l.startR)

	radii := make([]float64, slots)
	angles := make([]float64, slots)
	BaseLerpSlices(l.startR, l.endR, t, radii)
	BaseLerpSlices(l.startA, l.endA, t, angles)

	// In-plane coefficients for the batch reconstruction.
	a := make([]float64, slots)
	b := make([]float64, slots)
	for i := range a {
		a[i] = radii[i] * math.Cos(angles[i])
		b[i] = radii[i] * math.Sin(angles[i])
	}

	center := l.centerAt(t)
	_, x, y := l.frameAt(t)

	px := make([]float64, slots)
	py := make([]float64, slots)
	pz := make([]float64, slots)
	BaseReconstructRing(
		center.X, center.Y, center.Z,
		x.X, x.Y, x.Z,
		y.X, y.Y, y.Z,
		a, b, px, py, pz,
	)

	ring := make([]r3.Vector, slots)
	for i := range ring {
		ring[i] = r3.Vector{X: px[i], Y: py[i], Z: pz[i]}
	}
	return ring
}

// rotate returns v rotated by angle radians around the unit axis.
func rotate(v, axis r3.Vector, angle float64) r3.Vector {
	center := axis.Mul(v.Dot(axis))
	radial := v.Sub(center)
	perp := axis.Cross(v)
	return radial.Mul(math.Cos(angle)).Add(perp.Mul(math.Sin(angle))).Add(center)
}

// wrapPi normalizes an angle to (-π, π].
func wrapPi(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
