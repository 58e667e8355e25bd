package accum

import (
	"fmt"
	"iter"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/numkit/f16"
)

// Value is the set of sample types an Accumulator accepts.
// f16.Float16 satisfies it through its uint16 representation and is
// detected and accumulated as a floating-point type.
type Value interface {
	constraints.Integer | constraints.Float
}

// kind selects the accumulation strategy.
type kind uint8

const (
	kindUnset kind = iota
	kindSigned
	kindUnsigned
	kindFloat32
	kindFloat64
	kindHalf
)

func kindOf[T Value]() kind {
	var zero T
	if _, ok := any(zero).(f16.Float16); ok {
		return kindHalf
	}

	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32:
		return kindFloat32
	case reflect.Float64:
		return kindFloat64
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return kindSigned
	default:
		return kindUnsigned
	}
}

func (k kind) floating() bool {
	return k >= kindFloat32
}

// Accumulator tracks count, min, max and sum of a stream of samples.
//
// The zero value is an empty accumulator ready to use.
type Accumulator[T Value] struct {
	kind  kind
	count uint64
	min   T
	max   T

	isum int64
	usum uint64
	k32  kahan[float32]
	k64  kahan[float64]
}

// New returns an accumulator seeded with samples.
func New[T Value](samples ...T) *Accumulator[T] {
	a := &Accumulator[T]{}
	return a.AddAll(samples)
}

func (a *Accumulator[T]) init() {
	if a.kind == kindUnset {
		a.kind = kindOf[T]()
	}
}

// Add adds one sample. The first sample seeds min, max and sum.
//
// Floating-point samples must be finite; see the package documentation.
func (a *Accumulator[T]) Add(sample T) *Accumulator[T] {
	a.init()

	if assertFinite && a.kind.floating() && !isFinite(a.kind, sample) {
		panic(fmt.Sprintf("accum: non-finite sample %v", sample))
	}

	if a.count == 0 {
		a.min, a.max = sample, sample
		a.startSum(sample)
		a.count = 1
		return a
	}

	if a.less(sample, a.min) {
		a.min = sample
	}
	if a.less(a.max, sample) {
		a.max = sample
	}
	a.addSum(sample)
	a.count++
	return a
}

// AddAll adds every sample in order.
func (a *Accumulator[T]) AddAll(samples []T) *Accumulator[T] {
	for _, s := range samples {
		a.Add(s)
	}
	return a
}

// AddSeq adds every sample yielded by seq.
func (a *Accumulator[T]) AddSeq(seq iter.Seq[T]) *Accumulator[T] {
	for s := range seq {
		a.Add(s)
	}
	return a
}

// AddRange adds samples of another numeric type, converting each to T first.
// Conversions to and from f16.Float16 go through its numeric value, not its bits.
func AddRange[T, U Value](a *Accumulator[T], samples []U) *Accumulator[T] {
	for _, s := range samples {
		a.Add(convert[T](s))
	}
	return a
}

// Merge folds the state of other into a. Counts add, min and max combine,
// and for floating types both the running sum and its compensation are added.
// Merging an empty accumulator is a no-op; merging into an empty accumulator
// copies other.
func (a *Accumulator[T]) Merge(other *Accumulator[T]) *Accumulator[T] {
	if other == nil || other.count == 0 {
		return a
	}
	if a.count == 0 {
		*a = *other
		return a
	}

	if a.less(other.min, a.min) {
		a.min = other.min
	}
	if a.less(a.max, other.max) {
		a.max = other.max
	}

	switch a.kind {
	case kindSigned:
		a.isum += other.isum
	case kindUnsigned:
		a.usum += other.usum
	case kindFloat32, kindHalf:
		a.k32.merge(other.k32)
	case kindFloat64:
		a.k64.merge(other.k64)
	}
	a.count += other.count
	return a
}

// Reset empties the accumulator.
func (a *Accumulator[T]) Reset() {
	*a = Accumulator[T]{}
}

// Count returns the number of samples added.
func (a *Accumulator[T]) Count() uint64 {
	return a.count
}

// Empty reports whether no samples have been added.
func (a *Accumulator[T]) Empty() bool {
	return a.count == 0
}

// Min returns the smallest sample, or the zero value if empty.
func (a *Accumulator[T]) Min() T {
	return a.min
}

// Max returns the largest sample, or the zero value if empty.
func (a *Accumulator[T]) Max() T {
	return a.max
}

// Sum returns the (compensated) sum converted back to T, or the zero value if empty.
// Integer sums are truncated to T if they overflowed it.
func (a *Accumulator[T]) Sum() T {
	switch a.kind {
	case kindSigned:
		return T(a.isum)
	case kindUnsigned:
		return T(a.usum)
	case kindFloat32:
		return T(a.k32.value())
	case kindFloat64:
		return T(a.k64.value())
	case kindHalf:
		return any(f16.FromFloat32(a.k32.value())).(T)
	default:
		var zero T
		return zero
	}
}

// Mean returns Sum divided by Count as a float64, or 0 if empty.
func (a *Accumulator[T]) Mean() float64 {
	if a.count == 0 {
		return 0
	}
	return a.wideSum() / float64(a.count)
}

// wideSum returns the internal sum as float64 without narrowing to T.
func (a *Accumulator[T]) wideSum() float64 {
	switch a.kind {
	case kindSigned:
		return float64(a.isum)
	case kindUnsigned:
		return float64(a.usum)
	case kindFloat32, kindHalf:
		return float64(a.k32.value())
	case kindFloat64:
		return a.k64.value()
	default:
		return 0
	}
}

// String implements fmt.Stringer.
func (a *Accumulator[T]) String() string {
	return fmt.Sprintf("count=%d min=%v max=%v sum=%v", a.count, a.Min(), a.Max(), a.Sum())
}

func (a *Accumulator[T]) startSum(sample T) {
	switch a.kind {
	case kindSigned:
		a.isum = int64(sample)
	case kindUnsigned:
		a.usum = uint64(sample)
	case kindFloat32:
		a.k32.start(float32(sample))
	case kindFloat64:
		a.k64.start(float64(sample))
	case kindHalf:
		a.k32.start(halfValue(sample))
	}
}

func (a *Accumulator[T]) addSum(sample T) {
	switch a.kind {
	case kindSigned:
		a.isum += int64(sample)
	case kindUnsigned:
		a.usum += uint64(sample)
	case kindFloat32:
		a.k32.add(float32(sample))
	case kindFloat64:
		a.k64.add(float64(sample))
	case kindHalf:
		a.k32.add(halfValue(sample))
	}
}

// less orders samples by numeric value.
func (a *Accumulator[T]) less(x, y T) bool {
	if a.kind == kindHalf {
		return halfValue(x) < halfValue(y)
	}
	return x < y
}

func halfValue[T Value](v T) float32 {
	return any(v).(f16.Float16).Float32()
}

// IsFinite reports whether v may be added to a floating-point Accumulator.
// Integer values are always finite.
func IsFinite[T Value](v T) bool {
	return isFinite(kindOf[T](), v)
}

func isFinite[T Value](k kind, v T) bool {
	switch k {
	case kindFloat32, kindFloat64:
		f := float64(v)
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	case kindHalf:
		return any(v).(f16.Float16).IsFinite()
	default:
		return true
	}
}

// convert maps a U sample to T by numeric value.
func convert[T, U Value](u U) T {
	tk, uk := kindOf[T](), kindOf[U]()
	switch {
	case tk == kindHalf && uk == kindHalf:
		return any(u).(T)
	case tk == kindHalf && uk.floating():
		return any(f16.FromFloat64(float64(u))).(T)
	case tk == kindHalf && uk == kindSigned:
		return any(f16.FromInt(int64(u))).(T)
	case tk == kindHalf:
		return any(f16.FromInt(uint64(u))).(T)
	case uk == kindHalf:
		return T(halfValue(u))
	default:
		return T(u)
	}
}
