package filt

// coefficient is the set of element types the recurrence kernels support.
// Concrete public entry points pick a type once; no type switching happens
// inside the per-sample loops.
type coefficient interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

func validate[T coefficient](b, a []T) error {
	if len(b) == 0 {
		return ErrEmptyNumerator
	}
	if len(a) == 0 {
		return ErrEmptyDenominator
	}
	if a[0] == 0 {
		return ErrLeadingCoefficient
	}
	return nil
}

// prepare builds normalized working copies of b and a, both padded with
// trailing zeros to the common length max(len(b), len(a)). The caller's
// slices are left untouched.
func prepare[T coefficient](b, a []T) (bw, aw []T) {
	sz := len(b)
	if len(a) > sz {
		sz = len(a)
	}

	bw = make([]T, sz)
	aw = make([]T, sz)
	copy(bw, b)
	copy(aw, a)

	if a0 := aw[0]; a0 != 1 {
		for i := range bw {
			bw[i] /= a0
		}
		for i := range aw {
			aw[i] /= a0
		}
	}

	return bw, aw
}

// filterTo validates, prepares coefficients, and runs one column through the
// appropriate kernel. dst may alias x. The returned slice is the final
// filter state; si is copied, never mutated.
func filterTo[T coefficient](dst, b, a, x, si []T) ([]T, error) {
	if err := validate(b, a); err != nil {
		return nil, err
	}
	if len(dst) != len(x) {
		return nil, ErrOutputSize
	}

	stateLen := len(b)
	if len(a) > stateLen {
		stateLen = len(a)
	}
	stateLen--

	if si != nil && len(si) != stateLen {
		return nil, ErrStateLength
	}

	s := make([]T, stateLen)
	copy(s, si)

	if len(x) == 0 {
		return s, nil
	}

	// Pure gain: both coefficient vectors are scalars, no memory involved.
	if stateLen == 0 {
		gain := b[0] / a[0]
		for i, xi := range x {
			dst[i] = xi * gain
		}
		return s, nil
	}

	bw, aw := prepare(b, a)
	if len(a) > 1 {
		iirKernel(dst, x, bw, aw, s)
	} else {
		firKernel(dst, x, bw, s)
	}

	return s, nil
}

// iirKernel runs the direct-form II transposed recurrence over one column.
// bw and aw have equal length sz with aw[0] == 1; s has length sz-1.
//
// The output sample is fully determined before the state shifts and before
// dst[i] is written, so dst may alias x.
func iirKernel[T coefficient](dst, x, bw, aw, s []T) {
	n := len(s)
	for i, xi := range x {
		val := s[0] + bw[0]*xi
		for j := 0; j < n-1; j++ {
			s[j] = s[j+1] + bw[j+1]*xi - aw[j+1]*val
		}
		s[n-1] = bw[n]*xi - aw[n]*val
		dst[i] = val
	}
}

// firKernel is the feedback-free variant used when the denominator is a
// scalar.
func firKernel[T coefficient](dst, x, bw, s []T) {
	n := len(s)
	for i, xi := range x {
		val := s[0] + bw[0]*xi
		for j := 0; j < n-1; j++ {
			s[j] = s[j+1] + bw[j+1]*xi
		}
		s[n-1] = bw[n]*xi
		dst[i] = val
	}
}
