// Command filtinfo prints the impulse and frequency response of a
// rational transfer function given by its numerator and denominator
// coefficients.
//
// Usage:
//
//	filtinfo [flags] -b coeffs [-a coeffs]
//
// Coefficients are comma-separated, ordered by ascending delay.
// Without -a the filter is treated as FIR (a = 1).
//
// Examples:
//
//	filtinfo -b 0.25,0.5,0.25
//	filtinfo -b 1 -a 1,-0.9
//	filtinfo -b 0.0675,0.135,0.0675 -a 1,-1.143,0.4128 -points 16 -rate 48000
//	filtinfo -b 1,0,-1 -a 1,-0.99 -impulse 32
package main

import (
	"flag"
	"fmt"
	"math/cmplx"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-filt/dsp/filt"
)

func main() {
	bFlag := flag.String("b", "", "numerator coefficients, comma-separated (required)")
	aFlag := flag.String("a", "1", "denominator coefficients, comma-separated")
	points := flag.Int("points", 24, "number of frequency points from DC to Nyquist")
	rate := flag.Float64("rate", 44100, "sample rate in Hz")
	impulse := flag.Int("impulse", 16, "number of impulse response samples to print (0 to skip)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: filtinfo [flags] -b coeffs [-a coeffs]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the impulse and frequency response of a digital filter\n")
		fmt.Fprintf(os.Stderr, "described by numerator and denominator coefficients.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  filtinfo -b 0.25,0.5,0.25\n")
		fmt.Fprintf(os.Stderr, "  filtinfo -b 1 -a 1,-0.9 -points 16\n")
	}
	flag.Parse()

	if *bFlag == "" {
		flag.Usage()
		os.Exit(2)
	}

	b, err := parseCoeffs(*bFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid -b: %v\n", err)
		os.Exit(1)
	}
	a, err := parseCoeffs(*aFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid -a: %v\n", err)
		os.Exit(1)
	}

	if *impulse > 0 {
		if err := printImpulse(b, a, *impulse); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println()
	}

	if err := printResponse(b, a, *points, *rate); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseCoeffs(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	coeffs := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("bad coefficient %q: %w", p, err)
		}
		coeffs = append(coeffs, v)
	}
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("no coefficients in %q", s)
	}
	return coeffs, nil
}

func printImpulse(b, a []float64, n int) error {
	x := make([]float64, n)
	x[0] = 1

	h, err := filt.Filter(b, a, x)
	if err != nil {
		return err
	}

	fmt.Printf("Impulse response (first %d samples):\n", n)
	for i, v := range h {
		fmt.Printf("  h[%2d] = %+.8f\n", i, v)
	}
	return nil
}

func printResponse(b, a []float64, points int, rate float64) error {
	if points < 2 {
		return fmt.Errorf("need at least 2 frequency points, got %d", points)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Frequency [Hz]\tMagnitude\tMagnitude [dB]\tPhase [rad]\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "--------------\t---------\t--------------\t-----------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	nyquist := rate / 2
	for i := 0; i < points; i++ {
		freq := nyquist * float64(i) / float64(points-1)

		h, err := filt.Response(b, a, freq, rate)
		if err != nil {
			return err
		}
		db, err := filt.MagnitudeDB(b, a, freq, rate)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(tw, "%.2f\t%.6f\t%.2f\t%+.4f\n",
			freq,
			cmplx.Abs(h),
			db,
			cmplx.Phase(h),
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	return tw.Flush()
}
