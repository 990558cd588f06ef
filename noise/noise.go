// This package defines the [Function] sampler shape that shakes
// pull their randomness from, and provides a few implementations.
//
// The contract is loose on purpose: a sampler takes two real
// inputs and returns a deterministic, pseudo-continuous value in
// roughly [-1, 1]. The shake core feeds it wrapped time values, so
// samplers don't need to behave at astronomically large inputs.
//
// If you are only getting started, ignore this package entirely:
// shakes default to [Simplex] noise, which looks right for almost
// everything. The other sources exist for tests, replays and
// special texture needs.
package noise

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// A 2D coherent-noise sampler. Given the same inputs it must
// return the same output, and nearby inputs should produce nearby
// outputs (that's what makes a shake look organic instead of like
// white-noise jitter).
type Function func(x, y float64) float64

// Always returns 0. Handy to silence a shake without touching
// its envelope, and in tests.
var Zero Function = func(x, y float64) float64 { return 0 }

// Returns a sampler that ignores its inputs and always returns
// the given value. Deterministic fixture for tests.
func Constant(value float64) Function {
	return func(x, y float64) float64 { return value }
}

// Returns an OpenSimplex sampler for the given seed. This is the
// default source for new shakes: smooth, band-limited noise in
// roughly [-0.87, 0.87].
func Simplex(seed int64) Function {
	source := opensimplex.New(seed)
	return func(x, y float64) float64 {
		return source.Eval2(x, y)
	}
}

// Layers the base sampler into fractal brownian motion: octaves
// evaluations at doubling frequency and amplitudes decaying by
// the persistence factor, normalized back to the base range.
// Higher octave counts give rougher, more earthquake-like texture.
func FBM(base Function, octaves int, persistence float64) Function {
	return func(x, y float64) float64 {
		var total, frequency, amplitude, maxValue float64 = 0, 1, 1, 0
		for i := 0; i < octaves; i++ {
			total += base(x*frequency, y*frequency) * amplitude
			maxValue += amplitude
			amplitude *= persistence
			frequency *= 2
		}
		if maxValue == 0 {
			return 0
		}
		return total / maxValue
	}
}
