// Package filt applies linear time-invariant filters described by rational
// transfer functions b(z)/a(z) to sampled signals.
//
// The one-shot functions ([Filter], [FilterTo], [FilterState]) run the
// direct-form II transposed recurrence over a whole signal. [FilterColumns]
// filters several independent signal columns in one call. [Stream] keeps
// filter state across blocks for chunked processing.
//
// Coefficients are normalized by the leading denominator coefficient a[0],
// which must be nonzero. Caller-owned coefficient and state slices are never
// mutated; the engine works on private copies, so the output may safely
// alias the input.
package filt

import "errors"

// Errors returned when filter preconditions are violated. All are raised
// before any sample of the destination is written.
var (
	ErrEmptyNumerator     = errors.New("filt: numerator must be non-empty")
	ErrEmptyDenominator   = errors.New("filt: denominator must be non-empty")
	ErrLeadingCoefficient = errors.New("filt: leading denominator coefficient must be nonzero")
	ErrOutputSize         = errors.New("filt: output size must match input size")
	ErrStateLength        = errors.New("filt: initial state must have length max(len(b),len(a))-1")
	ErrStateColumns       = errors.New("filt: state column count mismatch")
)

// StateLen returns the filter state length max(len(b), len(a)) - 1.
// A pure-gain filter (both coefficient vectors of length 1) has no state.
func StateLen(b, a []float64) int {
	n := len(b)
	if len(a) > n {
		n = len(a)
	}
	if n == 0 {
		return 0
	}
	return n - 1
}

// Filter applies the filter (b, a) to x with zero initial state and returns
// the filtered signal.
func Filter(b, a, x []float64) ([]float64, error) {
	dst := make([]float64, len(x))
	if _, err := filterTo(dst, b, a, x, nil); err != nil {
		return nil, err
	}
	return dst, nil
}

// FilterTo applies the filter (b, a) to x with zero initial state, writing
// the result to dst. dst must have the same length as x and may alias it.
func FilterTo(dst, b, a, x []float64) error {
	_, err := filterTo(dst, b, a, x, nil)
	return err
}

// FilterState applies the filter (b, a) to x with initial state si, writing
// the result to dst (which may alias x), and returns the final state.
//
// si may be nil for zero initial state; otherwise it must have length
// StateLen(b, a). si is not mutated. Feeding the returned state into the
// next call makes chunked filtering bit-identical to filtering the
// concatenated signal in one pass.
func FilterState(dst, b, a, x, si []float64) ([]float64, error) {
	return filterTo(dst, b, a, x, si)
}

// FilterComplex applies the filter (b, a) to the complex signal x with zero
// initial state.
func FilterComplex(b, a, x []complex128) ([]complex128, error) {
	dst := make([]complex128, len(x))
	if _, err := filterTo(dst, b, a, x, nil); err != nil {
		return nil, err
	}
	return dst, nil
}

// FilterStateComplex is the complex128 variant of [FilterState].
func FilterStateComplex(dst, b, a, x, si []complex128) ([]complex128, error) {
	return filterTo(dst, b, a, x, si)
}

// FilterColumns filters every column of x independently along the time axis,
// writing results to the matching columns of dst (which may alias x column
// by column). All columns share the coefficients (b, a).
//
// si selects the initial state per column:
//   - nil: zero state for every column
//   - one row: that state is broadcast to every column
//   - len(x) rows: one state per column
//
// Each state row must have length StateLen(b, a). The returned slice holds
// the final state of every column.
func FilterColumns(dst, x [][]float64, b, a []float64, si [][]float64) ([][]float64, error) {
	if err := validate(b, a); err != nil {
		return nil, err
	}

	if len(dst) != len(x) {
		return nil, ErrOutputSize
	}
	for col := range x {
		if len(dst[col]) != len(x[col]) {
			return nil, ErrOutputSize
		}
	}

	stateLen := StateLen(b, a)
	switch {
	case si == nil:
	case len(si) == 1 || len(si) == len(x):
		for _, s := range si {
			if len(s) != stateLen {
				return nil, ErrStateLength
			}
		}
	default:
		return nil, ErrStateColumns
	}

	finals := make([][]float64, len(x))
	for col := range x {
		var s []float64
		if si != nil {
			if len(si) == 1 {
				s = si[0]
			} else {
				s = si[col]
			}
		}

		fs, err := filterTo(dst[col], b, a, x[col], s)
		if err != nil {
			return nil, err
		}
		finals[col] = fs
	}

	return finals, nil
}
