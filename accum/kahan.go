package accum

import "golang.org/x/exp/constraints"

// kahan is a Kahan-Babuska (Neumaier) compensated sum.
//
// Intermediates are wrapped in explicit S(...) conversions: each one must be
// rounded to S and never fused with its neighbours.
type kahan[S constraints.Float] struct {
	sum        S
	correction S
}

func (k *kahan[S]) start(x S) {
	k.sum = x
	k.correction = 0
}

func (k *kahan[S]) add(x S) {
	t := S(k.sum + x)
	if abs(k.sum) >= abs(x) {
		k.correction = S(k.correction + S(S(k.sum-t)+x))
	} else {
		k.correction = S(k.correction + S(S(x-t)+k.sum))
	}
	k.sum = t
}

// merge adds another running sum and its compensation.
func (k *kahan[S]) merge(o kahan[S]) {
	k.add(o.sum)
	k.correction = S(k.correction + o.correction)
}

func (k kahan[S]) value() S {
	return S(k.sum + k.correction)
}

func abs[S constraints.Float](x S) S {
	if x < 0 {
		return -x
	}
	return x
}
