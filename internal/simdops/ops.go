// Package simdops provides SIMD-accelerated slice operations for float32
// and float64 samples, backed by github.com/tphakala/simd.
package simdops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides SIMD-accelerated operations for type F.
type Ops[F Float] struct {
	// Interleave2 interleaves two slices: dst[0]=a[0], dst[1]=b[0], dst[2]=a[1], ...
	// dst must hold 2*len(a) elements and len(b) must equal len(a).
	Interleave2 func(dst, a, b []F)

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []F, s F)
}

// Pre-instantiated operations for each float type.
var (
	ops32 = Ops[float32]{
		Interleave2: f32.Interleave2,
		Scale:       f32.Scale,
	}
	ops64 = Ops[float64]{
		Interleave2: f64.Interleave2,
		Scale:       f64.Scale,
	}
)

// For returns the Ops instance for type F.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// Interleave2 writes left and right as interleaved stereo into dst,
// growing dst when it is too short, and returns the filled slice.
func Interleave2[F Float](dst, left, right []F) []F {
	n := 2 * len(left)
	if cap(dst) < n {
		dst = make([]F, n)
	}
	dst = dst[:n]
	For[F]().Interleave2(dst, left, right)
	return dst
}

// Scale multiplies every element of a by s into dst, in place when dst
// and a are the same slice.
func Scale[F Float](dst, a []F, s F) {
	For[F]().Scale(dst, a, s)
}
