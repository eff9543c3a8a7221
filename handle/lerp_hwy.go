package handle

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// BaseLerpSlices writes (1-t)*a + t*b into dst, element-wise.
// Every interpolated cross-section lerps its per-slot radii and angles
// between the end profiles, so this runs once per slice per ring.
func BaseLerpSlices[T hwy.Floats](a, b []T, t T, dst []T) {
	size := min(len(a), len(b), len(dst))

	vT := hwy.Set(t)

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			va := hwy.Load(a[offset:])
			vb := hwy.Load(b[offset:])

			// a + t*(b-a)
			res := hwy.FMA(vT, hwy.Sub(vb, va), va)

			hwy.Store(res, dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)

			va := hwy.MaskLoad(mask, a[offset:])
			vb := hwy.MaskLoad(mask, b[offset:])

			res := hwy.FMA(vT, hwy.Sub(vb, va), va)

			hwy.MaskStore(mask, res, dst[offset:])
		},
	)
}
