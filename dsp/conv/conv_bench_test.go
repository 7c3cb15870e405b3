package conv

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-filt/internal/testutil"
)

func BenchmarkDirect(b *testing.B) {
	sizes := []struct {
		signal int
		kernel int
	}{
		{1024, 8},
		{1024, 64},
		{4096, 8},
		{4096, 64},
	}

	for _, size := range sizes {
		signal := testutil.DeterministicNoise(1, 1.0, size.signal)
		kernel := testutil.DeterministicNoise(2, 1.0, size.kernel)

		b.Run(fmt.Sprintf("signal=%d_kernel=%d", size.signal, size.kernel), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = Direct(signal, kernel)
			}
		})
	}
}

func BenchmarkFFT(b *testing.B) {
	sizes := []struct {
		signal int
		kernel int
	}{
		{1024, 128},
		{4096, 512},
		{16384, 2048},
	}

	for _, size := range sizes {
		signal := testutil.DeterministicNoise(3, 1.0, size.signal)
		kernel := testutil.DeterministicNoise(4, 1.0, size.kernel)

		b.Run(fmt.Sprintf("signal=%d_kernel=%d", size.signal, size.kernel), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = FFT(signal, kernel)
			}
		})
	}
}

func BenchmarkCorrelate(b *testing.B) {
	signal := testutil.DeterministicNoise(5, 1.0, 4096)
	template := testutil.DeterministicNoise(6, 1.0, 256)

	b.ReportAllocs()
	for b.Loop() {
		_, _ = Correlate(signal, template)
	}
}

func BenchmarkDeconvolve(b *testing.B) {
	a := []float64{1, -0.5, 0.25}
	c := testutil.DeterministicNoise(7, 1.0, 1024)

	numerator, err := Convolve(a, c)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		_, _ = Deconvolve(numerator, a)
	}
}
