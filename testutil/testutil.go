package testutil

import (
	"math"
	"math/big"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float32 in a loop).
func (r *RNG) FillUniform(dst []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float32()
	}
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float32, minVal, maxVal float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float32()*span
	}
}

// UniformFloat64s returns n values in range [minVal, maxVal).
func (r *RNG) UniformFloat64s(n int, minVal, maxVal float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	out := make([]float64, n)
	for i := range out {
		out[i] = minVal + r.rand.Float64()*span
	}
	return out
}

// GaussianFloat64s returns n values from a normal distribution with the
// given mean and standard deviation.
func (r *RNG) GaussianFloat64s(n int, mean, stddev float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]float64, n)
	for i := range out {
		out[i] = mean + r.rand.NormFloat64()*stddev
	}
	return out
}

// Int64s returns n values in the closed range [minVal, maxVal].
func (r *RNG) Int64s(n int, minVal, maxVal int64) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal + 1
	out := make([]int64, n)
	for i := range out {
		out[i] = minVal + r.rand.Int63n(span)
	}
	return out
}

// FiniteHalfBits returns n random binary16 bit patterns, skipping infinities and NaNs.
func (r *RNG) FiniteHalfBits(n int) []uint16 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint16, 0, n)
	for len(out) < n {
		b := uint16(r.rand.Uint32())
		if b&0x7C00 == 0x7C00 {
			continue
		}
		out = append(out, b)
	}
	return out
}

// IllConditioned returns n values with a large cancelling magnitude spread:
// every large value is paired with its negation, and small values fill the rest.
// The exact sum is the sum of the small values alone.
func (r *RNG) IllConditioned(n int, large, small float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]float64, n)
	quads := n / 4 * 4
	for i := 0; i < quads; i += 4 {
		v := large * (1 + r.rand.Float64())
		out[i] = v
		out[i+1] = small * r.rand.Float64()
		out[i+2] = -v
		out[i+3] = small * r.rand.Float64()
	}
	for i := quads; i < n; i++ {
		out[i] = small * r.rand.Float64()
	}
	return out
}

// ExactSum returns the correctly rounded float64 sum of values, computed
// with arbitrary precision. It serves as ground truth for summation tests.
// Non-finite inputs yield the IEEE result of naive summation.
func ExactSum(values []float64) float64 {
	acc := new(big.Float).SetPrec(2048)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			var naive float64
			for _, w := range values {
				naive += w
			}
			return naive
		}
		acc.Add(acc, new(big.Float).SetFloat64(v))
	}
	f, _ := acc.Float64()
	return f
}

// ExactSum32 is ExactSum for float32 inputs.
func ExactSum32(values []float32) float64 {
	wide := make([]float64, len(values))
	for i, v := range values {
		wide[i] = float64(v)
	}
	return ExactSum(wide)
}

// ULPDistance32 returns the number of representable float32 values between a and b.
// It returns math.MaxUint32 if either value is NaN.
func ULPDistance32(a, b float32) uint32 {
	if a != a || b != b {
		return math.MaxUint32
	}
	ia, ib := orderedBits32(a), orderedBits32(b)
	if ia > ib {
		return uint32(ia - ib)
	}
	return uint32(ib - ia)
}

// orderedBits32 maps float32 bit patterns onto a monotonic integer line.
func orderedBits32(f float32) int64 {
	b := int64(math.Float32bits(f))
	if b&0x80000000 != 0 {
		return -(b & 0x7FFFFFFF)
	}
	return b
}
