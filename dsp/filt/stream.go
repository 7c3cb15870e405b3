package filt

// Stream is a filter with persistent state for sample-by-sample or
// block-by-block processing. Unlike the one-shot functions, a Stream
// normalizes its coefficients once at construction and carries its state
// across calls, so a long signal can be filtered in chunks of any size
// with output identical to a single pass.
type Stream struct {
	b, a []float64 // normalized, zero-padded to common length
	s    []float64
	gain float64 // used when the filter is a pure gain
}

// NewStream creates a Stream for the filter (b, a) with zero initial state.
// The coefficient slices are copied.
func NewStream(b, a []float64) (*Stream, error) {
	if err := validate(b, a); err != nil {
		return nil, err
	}

	f := &Stream{s: make([]float64, StateLen(b, a))}
	if len(f.s) == 0 {
		f.gain = b[0] / a[0]
		return f, nil
	}

	f.b, f.a = prepare(b, a)
	return f, nil
}

// ProcessSample filters one input sample and returns the output sample.
func (f *Stream) ProcessSample(x float64) float64 {
	n := len(f.s)
	if n == 0 {
		return f.gain * x
	}

	val := f.s[0] + f.b[0]*x
	for j := 0; j < n-1; j++ {
		f.s[j] = f.s[j+1] + f.b[j+1]*x - f.a[j+1]*val
	}
	f.s[n-1] = f.b[n]*x - f.a[n]*val

	return val
}

// ProcessBlock filters a block of samples in-place.
func (f *Stream) ProcessBlock(buf []float64) {
	f.ProcessBlockTo(buf, buf)
}

// ProcessBlockTo filters src into dst. Both slices must have the same
// length; dst may alias src.
func (f *Stream) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint

	if len(f.s) == 0 {
		for i, x := range src {
			dst[i] = f.gain * x
		}
		return
	}

	iirKernel(dst, src, f.b, f.a, f.s)
}

// StateLen returns the length of the filter state vector.
func (f *Stream) StateLen() int {
	return len(f.s)
}

// State returns a copy of the current filter state.
func (f *Stream) State() []float64 {
	s := make([]float64, len(f.s))
	copy(s, f.s)
	return s
}

// SetState overwrites the filter state. si must have length StateLen.
func (f *Stream) SetState(si []float64) error {
	if len(si) != len(f.s) {
		return ErrStateLength
	}
	copy(f.s, si)
	return nil
}

// Reset clears the filter state to zero.
func (f *Stream) Reset() {
	for i := range f.s {
		f.s[i] = 0
	}
}
