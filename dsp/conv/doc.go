// Package conv provides convolution, cross-correlation, and deconvolution.
//
// # Convolution
//
// [Convolve] computes the full linear convolution of two vectors and
// selects its algorithm automatically:
//
//   - Direct convolution for short kernels (up to 64 samples): O(N*M) in the
//     time domain.
//   - One-shot FFT convolution otherwise: both inputs are zero-padded to a
//     fast transform length (next power of two up to 1024 samples, next
//     5-smooth length above that), transformed with a real-input FFT,
//     multiplied, and transformed back.
//
// Typed variants cover the other element types: [ConvolveInt] converts to
// float64 and rounds the result, [ConvolveComplex] uses the complex
// transform. [ConvolveN] convolves dense N-dimensional arrays with strided
// per-axis transforms.
//
// # Correlation
//
// [Correlate] computes the full cross-correlation sequence. Inputs of
// different lengths are zero-padded to the common length n, so the result
// always has length 2n-1 with the zero lag at index n-1:
//
//	corr, err := conv.Correlate(signal, template)
//	peakIdx, peakVal := conv.FindPeak(corr)
//	lag := conv.LagFromIndex(peakIdx, max(len(signal), len(template)))
//
// # Deconvolution
//
// [Deconvolve] performs exact polynomial division via the filtering engine:
// Deconvolve(Convolve(a, c), a) reproduces c. [DeconvolveSpectral] instead
// divides in the frequency domain with optional regularization, which is
// the right tool for recovering a noisy signal from a known kernel:
//
//	opts := conv.DefaultDeconvOptions()
//	opts.Epsilon = 1e-3
//	recovered, err := conv.DeconvolveSpectral(convolved, kernel, opts)
package conv
