package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-filt/dsp/array"
)

// ConvolveN performs full linear convolution of two dense N-dimensional
// arrays. If the ranks differ, the lower-rank array is promoted by
// appending trailing unit axes. The output extent along every axis i is
// sa[i] + sb[i] - 1.
//
// Both arrays are zero-padded into a common buffer whose axes are rounded
// up to fast transform lengths, transformed along every axis with strided
// FFTs, multiplied bin by bin, and transformed back; the result corner is
// then extracted and its real part returned.
func ConvolveN(a, b *array.Dense) (*array.Dense, error) {
	if a == nil || b == nil {
		return nil, ErrNilArray
	}

	if a.Rank() < b.Rank() {
		a = a.Promote(b.Rank())
	} else if b.Rank() < a.Rank() {
		b = b.Promote(a.Rank())
	}

	rank := a.Rank()
	sa := a.Shape()
	sb := b.Shape()

	outShape := make([]int, rank)
	padShape := make([]int, rank)
	for i := range outShape {
		outShape[i] = sa[i] + sb[i] - 1
		padShape[i] = transformLength(outShape[i])
	}

	padStrides, padSize := rowMajorStrides(padShape)

	aPad := make([]complex128, padSize)
	bPad := make([]complex128, padSize)
	embed(aPad, padStrides, a)
	embed(bPad, padStrides, b)

	if err := transformAxes(aPad, padShape, padStrides, false); err != nil {
		return nil, err
	}
	if err := transformAxes(bPad, padShape, padStrides, false); err != nil {
		return nil, err
	}

	for i := range aPad {
		aPad[i] *= bPad[i]
	}

	if err := transformAxes(aPad, padShape, padStrides, true); err != nil {
		return nil, err
	}

	out, err := array.Zeros(outShape)
	if err != nil {
		return nil, err
	}

	extractReal(out, aPad, padStrides)
	return out, nil
}

func rowMajorStrides(shape []int) (strides []int, size int) {
	strides = make([]int, len(shape))
	size = 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = size
		size *= shape[i]
	}
	return strides, size
}

// embed copies src into the origin corner of the complex buffer dst, which
// uses dstStrides for its (larger) shape.
func embed(dst []complex128, dstStrides []int, src *array.Dense) {
	shape := src.Shape()
	idx := make([]int, len(shape))

	for {
		off := 0
		for i, v := range idx {
			off += v * dstStrides[i]
		}
		dst[off] = complex(src.At(idx...), 0)

		if !increment(idx, shape, -1) {
			return
		}
	}
}

// extractReal copies the real part of the origin corner of src into dst.
func extractReal(dst *array.Dense, src []complex128, srcStrides []int) {
	shape := dst.Shape()
	idx := make([]int, len(shape))

	for {
		off := 0
		for i, v := range idx {
			off += v * srcStrides[i]
		}
		dst.Set(real(src[off]), idx...)

		if !increment(idx, shape, -1) {
			return
		}
	}
}

// transformAxes runs a forward or inverse FFT along every axis of the
// row-major complex buffer, one strided line at a time.
func transformAxes(buf []complex128, shape, strides []int, inverse bool) error {
	for axis := range shape {
		n := shape[axis]
		if n == 1 {
			continue
		}

		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return fmt.Errorf("conv: failed to create FFT plan for axis %d: %w", axis, err)
		}

		idx := make([]int, len(shape))
		for {
			off := 0
			for i, v := range idx {
				off += v * strides[i]
			}

			line := buf[off:]
			if inverse {
				err = plan.InverseStrided(line, line, strides[axis])
			} else {
				err = plan.ForwardStrided(line, line, strides[axis])
			}
			if err != nil {
				return fmt.Errorf("conv: strided FFT failed on axis %d: %w", axis, err)
			}

			if !increment(idx, shape, axis) {
				break
			}
		}
	}

	return nil
}

// increment advances a multi-index in row-major order, holding the axis
// skip fixed at zero (pass a negative skip to advance all axes). It
// reports false once the index space is exhausted.
func increment(idx, shape []int, skip int) bool {
	for i := len(idx) - 1; i >= 0; i-- {
		if i == skip {
			continue
		}
		idx[i]++
		if idx[i] < shape[i] {
			return true
		}
		idx[i] = 0
	}
	return false
}
