//go:build !numkit_noassert

package accum

const assertFinite = true
