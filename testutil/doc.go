// Package testutil provides testing utilities for numkit.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded random sample generators and exact reference
// results for checking numeric accuracy.
//
// # Random Sample Generation
//
//	rng := testutil.NewRNG(seed)
//	xs := rng.UniformFloat64s(1000, -1, 1)
//	bits := rng.FiniteHalfBits(256)
//
// # Ground Truth
//
//	want := testutil.ExactSum(xs)
//	ulps := testutil.ULPDistance32(got, float32(want))
package testutil
