package handle

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// Ring projection and reconstruction kernels (Structure of Arrays).
// A cross-section's vertices all share one center and one orthonormal frame,
// so expressing a whole ring in its plane (or mapping it back out) is a batch
// of identical dot-product work; SoA layout keeps it in vector registers.

// BaseProjectRing expresses ring points in a local frame: the center is
// subtracted and the offsets are dotted against the frame's X and Y axes.
// u = (p-c)·X
// v = (p-c)·Y
func BaseProjectRing[T hwy.Floats](
	cx, cy, cz T,
	xx, xy, xz T,
	yx, yy, yz T,
	px, py, pz []T,
	u, v []T,
) {
	size := min(len(px), len(py), len(pz), len(u), len(v))

	vCx := hwy.Set(cx)
	vCy := hwy.Set(cy)
	vCz := hwy.Set(cz)
	vXx := hwy.Set(xx)
	vXy := hwy.Set(xy)
	vXz := hwy.Set(xz)
	vYx := hwy.Set(yx)
	vYy := hwy.Set(yy)
	vYz := hwy.Set(yz)

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			dx := hwy.Sub(hwy.Load(px[offset:]), vCx)
			dy := hwy.Sub(hwy.Load(py[offset:]), vCy)
			dz := hwy.Sub(hwy.Load(pz[offset:]), vCz)

			// u = dx*xx + dy*xy + dz*xz
			resU := hwy.Mul(dx, vXx)
			resU = hwy.FMA(dy, vXy, resU)
			resU = hwy.FMA(dz, vXz, resU)

			// v = dx*yx + dy*yy + dz*yz
			resV := hwy.Mul(dx, vYx)
			resV = hwy.FMA(dy, vYy, resV)
			resV = hwy.FMA(dz, vYz, resV)

			hwy.Store(resU, u[offset:])
			hwy.Store(resV, v[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)

			dx := hwy.Sub(hwy.MaskLoad(mask, px[offset:]), vCx)
			dy := hwy.Sub(hwy.MaskLoad(mask, py[offset:]), vCy)
			dz := hwy.Sub(hwy.MaskLoad(mask, pz[offset:]), vCz)

			resU := hwy.Mul(dx, vXx)
			resU = hwy.FMA(dy, vXy, resU)
			resU = hwy.FMA(dz, vXz, resU)

			resV := hwy.Mul(dx, vYx)
			resV = hwy.FMA(dy, vYy, resV)
			resV = hwy.FMA(dz, vYz, resV)

			hwy.MaskStore(mask, resU, u[offset:])
			hwy.MaskStore(mask, resV, v[offset:])
		},
	)
}

// BaseReconstructRing maps in-plane coefficients back to 3D points:
// p = c + a*X + b*Y (SoA layout).
func BaseReconstructRing[T hwy.Floats](
	cx, cy, cz T,
	xx, xy, xz T,
	yx, yy, yz T,
	a, b []T,
	px, py, pz []T,
) {
	size := min(len(a), len(b), len(px), len(py), len(pz))

	vCx := hwy.Set(cx)
	vCy := hwy.Set(cy)
	vCz := hwy.Set(cz)
	vXx := hwy.Set(xx)
	vXy := hwy.Set(xy)
	vXz := hwy.Set(xz)
	vYx := hwy.Set(yx)
	vYy := hwy.Set(yy)
	vYz := hwy.Set(yz)

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			va := hwy.Load(a[offset:])
			vb := hwy.Load(b[offset:])

			resX := hwy.FMA(va, vXx, vCx)
			resX = hwy.FMA(vb, vYx, resX)

			resY := hwy.FMA(va, vXy, vCy)
			resY = hwy.FMA(vb, vYy, resY)

			resZ := hwy.FMA(va, vXz, vCz)
			resZ = hwy.FMA(vb, vYz, resZ)

			hwy.Store(resX, px[offset:])
			hwy.Store(resY, py[offset:])
			hwy.Store(resZ, pz[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)

			va := hwy.MaskLoad(mask, a[offset:])
			vb := hwy.MaskLoad(mask, b[offset:])

			resX := hwy.FMA(va, vXx, vCx)
			resX = hwy.FMA(vb, vYx, resX)

			resY := hwy.FMA(va, vXy, vCy)
			resY = hwy.FMA(vb, vYy, resY)

			resZ := hwy.FMA(va, vXz, vCz)
			resZ = hwy.FMA(vb, vYz, resZ)

			hwy.MaskStore(mask, resX, px[offset:])
			hwy.MaskStore(mask, resY, py[offset:])
			hwy.MaskStore(mask, resZ, pz[offset:])
		},
	)
}
