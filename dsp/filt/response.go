package filt

import (
	"math"
	"math/cmplx"
)

// Response computes the complex frequency response B(e^{jw}) / A(e^{jw}) of
// the filter (b, a) at the given frequency (Hz) and sample rate (Hz).
func Response(b, a []float64, freqHz, sampleRate float64) (complex128, error) {
	if err := validate(b, a); err != nil {
		return 0, err
	}

	w := 2 * math.Pi * freqHz / sampleRate
	return polyEval(b, w) / polyEval(a, w), nil
}

// MagnitudeDB returns the magnitude response of (b, a) in dB at the given
// frequency.
func MagnitudeDB(b, a []float64, freqHz, sampleRate float64) (float64, error) {
	h, err := Response(b, a, freqHz, sampleRate)
	if err != nil {
		return 0, err
	}
	return 20 * math.Log10(cmplx.Abs(h)), nil
}

// polyEval evaluates sum_k c[k] * e^{-jwk}.
func polyEval(c []float64, w float64) complex128 {
	var h complex128
	for k, v := range c {
		h += complex(v, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return h
}
