package filt_test

import (
	"fmt"

	"github.com/cwbudde/algo-filt/dsp/filt"
)

func ExampleFilter() {
	// One-pole IIR filter: y[n] = x[n] + 0.5*y[n-1].
	b := []float64{1}
	a := []float64{1, -0.5}

	y, err := filt.Filter(b, a, []float64{1, 0, 0, 0})
	if err != nil {
		panic(err)
	}

	fmt.Println(y)
	// Output:
	// [1 0.5 0.25 0.125]
}

func ExampleFilterState() {
	b := []float64{1}
	a := []float64{1, -0.5}

	// Filter a signal in two chunks, carrying the state across the split.
	x := []float64{1, 0, 0, 0}
	y1 := make([]float64, 2)
	y2 := make([]float64, 2)

	state, err := filt.FilterState(y1, b, a, x[:2], nil)
	if err != nil {
		panic(err)
	}

	if _, err := filt.FilterState(y2, b, a, x[2:], state); err != nil {
		panic(err)
	}

	fmt.Println(y1, y2)
	// Output:
	// [1 0.5] [0.25 0.125]
}

func ExampleStream() {
	f, err := filt.NewStream([]float64{1}, []float64{1, -0.5})
	if err != nil {
		panic(err)
	}

	for _, x := range []float64{1, 0, 0, 0} {
		fmt.Println(f.ProcessSample(x))
	}
	// Output:
	// 1
	// 0.5
	// 0.25
	// 0.125
}
