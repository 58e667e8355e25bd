//go:build numkit_noassert

package accum

const assertFinite = false
