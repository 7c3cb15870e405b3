// Package array provides a minimal dense N-dimensional float64 container.
//
// It exists to carry shape and stride information for the N-dimensional
// convolution path; it is not a general linear-algebra type.
package array

import (
	"errors"
	"fmt"
)

// Errors returned by array constructors and accessors.
var (
	ErrEmptyShape = errors.New("array: shape must have at least one axis")
	ErrBadExtent  = errors.New("array: axis extent must be positive")
	ErrDataSize   = errors.New("array: data length does not match shape")
	ErrBadIndex   = errors.New("array: index out of range")
)

// Dense is a dense, row-major N-dimensional float64 buffer.
// The last axis is contiguous in memory.
type Dense struct {
	shape   []int
	strides []int
	data    []float64
}

// NewDense creates a Dense with the given shape, adopting data as backing
// storage. len(data) must equal the product of the shape extents.
func NewDense(shape []int, data []float64) (*Dense, error) {
	strides, size, err := computeStrides(shape)
	if err != nil {
		return nil, err
	}

	if len(data) != size {
		return nil, fmt.Errorf("%w: have %d, shape needs %d", ErrDataSize, len(data), size)
	}

	s := make([]int, len(shape))
	copy(s, shape)

	return &Dense{shape: s, strides: strides, data: data}, nil
}

// Zeros creates a zero-filled Dense with the given shape.
func Zeros(shape []int) (*Dense, error) {
	strides, size, err := computeStrides(shape)
	if err != nil {
		return nil, err
	}

	s := make([]int, len(shape))
	copy(s, shape)

	return &Dense{shape: s, strides: strides, data: make([]float64, size)}, nil
}

func computeStrides(shape []int) (strides []int, size int, err error) {
	if len(shape) == 0 {
		return nil, 0, ErrEmptyShape
	}

	strides = make([]int, len(shape))
	size = 1

	for i := len(shape) - 1; i >= 0; i-- {
		if shape[i] <= 0 {
			return nil, 0, fmt.Errorf("%w: axis %d has extent %d", ErrBadExtent, i, shape[i])
		}

		strides[i] = size
		size *= shape[i]
	}

	return strides, size, nil
}

// Rank returns the number of axes.
func (d *Dense) Rank() int { return len(d.shape) }

// Size returns the total number of elements.
func (d *Dense) Size() int { return len(d.data) }

// Shape returns a copy of the axis extents.
func (d *Dense) Shape() []int {
	s := make([]int, len(d.shape))
	copy(s, d.shape)
	return s
}

// Strides returns a copy of the row-major element strides.
func (d *Dense) Strides() []int {
	s := make([]int, len(d.strides))
	copy(s, d.strides)
	return s
}

// Data returns the backing storage in row-major order.
func (d *Dense) Data() []float64 { return d.data }

// Offset returns the flat index of the element at idx.
func (d *Dense) Offset(idx ...int) (int, error) {
	if len(idx) != len(d.shape) {
		return 0, fmt.Errorf("%w: got %d indices for rank %d", ErrBadIndex, len(idx), len(d.shape))
	}

	off := 0
	for i, v := range idx {
		if v < 0 || v >= d.shape[i] {
			return 0, fmt.Errorf("%w: axis %d index %d (extent %d)", ErrBadIndex, i, v, d.shape[i])
		}
		off += v * d.strides[i]
	}

	return off, nil
}

// At returns the element at idx. It panics on an invalid index, matching
// the behavior of slice indexing.
func (d *Dense) At(idx ...int) float64 {
	off, err := d.Offset(idx...)
	if err != nil {
		panic(err)
	}
	return d.data[off]
}

// Set stores v at idx. It panics on an invalid index.
func (d *Dense) Set(v float64, idx ...int) {
	off, err := d.Offset(idx...)
	if err != nil {
		panic(err)
	}
	d.data[off] = v
}

// Promote returns a view of d with trailing unit axes appended until the
// rank reaches r. The view shares backing storage with d. If r <= Rank(),
// d itself is returned.
func (d *Dense) Promote(r int) *Dense {
	if r <= len(d.shape) {
		return d
	}

	shape := make([]int, r)
	strides := make([]int, r)
	copy(shape, d.shape)
	copy(strides, d.strides)

	for i := len(d.shape); i < r; i++ {
		shape[i] = 1
		strides[i] = 1
	}

	return &Dense{shape: shape, strides: strides, data: d.data}
}
