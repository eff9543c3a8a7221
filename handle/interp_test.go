package handle

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/akhenakh/handlemesh/r3"
)

// facingRings returns two normalized pentagon rings in parallel planes with
// their profiles, wound so both ring normals point along +Z (source toward
// target, target reversed).
func facingProfiles(t *testing.T) (Profile, Profile) {
	t.Helper()
	src := Polygon{Vertices: regularRing(5, 1.5, 0, false)}
	dst := Polygon{Vertices: regularRing(5, 0.8, 4, true)}

	srcRing, _, err := Normalize(src, 5)
	if err != nil {
		t.Fatalf("Normalize source: %v", err)
	}
	dstRing, _, err := Normalize(dst.Reversed(), 5)
	if err != nil {
		t.Fatalf("Normalize target: %v", err)
	}
	return ProfileOf(srcRing), ProfileOf(dstRing)
}

// regularRing builds a regular n-gon of the given radius in the z plane.
// Clockwise winding (viewed from +Z) gives the ring a -Z normal, which is
// what a face looking back at the source has.
func regularRing(n int, radius, z float64, clockwise bool) []r3.Vector {
	ring := make([]r3.Vector, n)
	for i := range ring {
		a := 2 * math.Pi * float64(i) / float64(n)
		if clockwise {
			a = -a
		}
		ring[i] = r3.Vector{X: radius * math.Cos(a), Y: radius * math.Sin(a), Z: z}
	}
	return ring
}

func TestLoftWeightZeroCentersCollinear(t *testing.T) {
	srcProf, dstProf := facingProfiles(t)
	l := newLoft(srcProf, dstProf, Params{})

	span := dstProf.Center.Sub(srcProf.Center)
	for _, tt := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		c := l.centerAt(tt)
		d := c.Sub(srcProf.Center)
		if off := d.Cross(span).Norm(); off > 1e-12 {
			t.Errorf("centerAt(%v) = %v off the center segment by %v", tt, c, off)
		}
		// Inside the segment, not just on the line.
		if s := d.Dot(span) / span.Norm2(); s < 0 || s > 1 {
			t.Errorf("centerAt(%v) lies outside the segment (s = %v)", tt, s)
		}
	}
}

func TestLoftCenterEndpoints(t *testing.T) {
	srcProf, dstProf := facingProfiles(t)
	for _, weights := range [][2]float64{{0, 0}, {3, 3}, {2, -5}} {
		l := newLoft(srcProf, dstProf, Params{Weight1: weights[0], Weight2: weights[1]})
		if got := l.centerAt(0); got.Sub(srcProf.Center).Norm() > 1e-12 {
			t.Errorf("weights %v: centerAt(0) = %v, want %v", weights, got, srcProf.Center)
		}
		if got := l.centerAt(1); got.Sub(dstProf.Center).Norm() > 1e-12 {
			t.Errorf("weights %v: centerAt(1) = %v, want %v", weights, got, dstProf.Center)
		}
	}
}

func TestLoftWeightBulgesOutward(t *testing.T) {
	srcProf, dstProf := facingProfiles(t)
	flat := newLoft(srcProf, dstProf, Params{})
	bulged := newLoft(srcProf, dstProf, Params{Weight1: 2, Weight2: 2})

	// Near the source end the bulge displaces the center along the source
	// ring normal (outward from the source face).
	tt := 0.2
	disp := bulged.centerAt(tt).Sub(flat.centerAt(tt))
	if d := disp.Dot(srcProf.Normal); d <= 0 {
		t.Errorf("bulge displacement %v not along source normal %v", disp, srcProf.Normal)
	}
}

func TestLoftEndpointRings(t *testing.T) {
	srcProf, dstProf := facingProfiles(t)
	l := newLoft(srcProf, dstProf, Params{Weight1: 1.3, Weight2: 0.4, Twists: 2})

	srcRing := make([]r3.Vector, len(srcProf.Polar))
	dstRing := make([]r3.Vector, len(dstProf.Polar))
	for i := range srcRing {
		srcRing[i] = srcProf.Point(srcProf.Polar[i])
		dstRing[i] = dstProf.Point(dstProf.Polar[i])
	}

	approx := cmpopts.EquateApprox(0, 1e-9)
	if diff := cmp.Diff(srcRing, l.ringAt(0), approx); diff != "" {
		t.Errorf("ringAt(0) does not reproduce the source ring (-want +got):\n%s", diff)
	}
	// The twist term is a whole number of revolutions, so t=1 still lands
	// exactly on the target ring.
	if diff := cmp.Diff(dstRing, l.ringAt(1), approx); diff != "" {
		t.Errorf("ringAt(1) does not reproduce the target ring (-want +got):\n%s", diff)
	}
}

func TestLoftTwistAddsWholeRevolutions(t *testing.T) {
	srcProf, dstProf := facingProfiles(t)
	base := newLoft(srcProf, dstProf, Params{})
	twisted := newLoft(srcProf, dstProf, Params{Twists: 1})
	counter := newLoft(srcProf, dstProf, Params{Twists: -3})

	for i := range base.endA {
		if got := twisted.endA[i] - base.endA[i]; math.Abs(got-2*math.Pi) > 1e-12 {
			t.Errorf("slot %d: twists=1 adds %v to the end angle, want 2π", i, got)
		}
		if got := counter.endA[i] - base.endA[i]; math.Abs(got+6*math.Pi) > 1e-12 {
			t.Errorf("slot %d: twists=-3 adds %v to the end angle, want -6π", i, got)
		}
	}
}

func TestLoftTwistRotatesMidRing(t *testing.T) {
	srcProf, dstProf := facingProfiles(t)
	base := newLoft(srcProf, dstProf, Params{})
	twisted := newLoft(srcProf, dstProf, Params{Twists: 1})

	// At mid-span one extra twist has applied exactly half a revolution:
	// every point reflects through the ring center, rigidly.
	mid := base.ringAt(0.5)
	midTwisted := twisted.ringAt(0.5)
	center := base.centerAt(0.5)

	want := make([]r3.Vector, len(mid))
	for i, p := range mid {
		want[i] = center.Mul(2).Sub(p)
	}
	if diff := cmp.Diff(want, midTwisted, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("half-revolution mismatch (-want +got):\n%s", diff)
	}
}

func TestLoftAnglesTakeShortWay(t *testing.T) {
	srcProf, dstProf := facingProfiles(t)
	l := newLoft(srcProf, dstProf, Params{})
	for i := range l.startA {
		if d := math.Abs(l.endA[i] - l.startA[i]); d > math.Pi {
			t.Errorf("slot %d interpolates %v radians, want the short way (≤ π)", i, d)
		}
	}
}

func TestLoftParallelPlanesKeepOrientation(t *testing.T) {
	srcProf, dstProf := facingProfiles(t)
	l := newLoft(srcProf, dstProf, Params{})
	if l.angle != 0 {
		t.Fatalf("parallel ring planes got rotation angle %v, want 0", l.angle)
	}
	n, _, _ := l.frameAt(0.5)
	if n.Sub(srcProf.Normal).Norm() > 1e-12 {
		t.Errorf("mid frame normal = %v, want %v", n, srcProf.Normal)
	}
}

func TestLoftAntiparallelPlanesTurnThroughSpan(t *testing.T) {
	// Two coplanar-ish faces pointing the same way in space produce
	// antiparallel ring normals after the target reversal; the handle must
	// arc over, with its mid-span plane facing along the center displacement.
	src := Polygon{Vertices: regularRing(4, 1, 0, false)}
	dstVerts := regularRing(4, 1, 0, false)
	for i := range dstVerts {
		dstVerts[i].X += 5
	}
	dst := Polygon{Vertices: dstVerts}

	srcRing, _, err := Normalize(src, 4)
	if err != nil {
		t.Fatal(err)
	}
	dstRing, _, err := Normalize(dst.Reversed(), 4)
	if err != nil {
		t.Fatal(err)
	}
	srcProf, dstProf := ProfileOf(srcRing), ProfileOf(dstRing)

	l := newLoft(srcProf, dstProf, Params{})
	if math.Abs(l.angle-math.Pi) > 1e-12 {
		t.Fatalf("rotation angle = %v, want π", l.angle)
	}
	n, _, _ := l.frameAt(0.5)
	want := r3.Vector{X: 1} // unit direction from source center to target center
	if n.Sub(want).Norm() > 1e-9 {
		t.Errorf("mid-span normal = %v, want %v", n, want)
	}
}
