package effect

// EQ is an ordered chain of biquads, processed as a left fold. It is used
// both as a live instrument effect and, by GUI-side tooling outside this
// package's scope, as a design-time frequency-response target.
type EQ struct {
	Biquads []*Biquad
}

// NewEQ creates an empty EQ chain; biquads are appended with Add.
func NewEQ() *EQ {
	return &EQ{}
}

// Add appends a biquad stage to the chain and returns the EQ for chaining.
func (e *EQ) Add(b *Biquad) *EQ {
	e.Biquads = append(e.Biquads, b)
	return e
}

// Process folds the sample through every stage in order.
func (e *EQ) Process(sample float32) float32 {
	for _, b := range e.Biquads {
		sample = b.Process(sample)
	}
	return sample
}

// Reset clears every stage's filter history.
func (e *EQ) Reset() {
	for _, b := range e.Biquads {
		b.Reset()
	}
}

var _ Effect = (*EQ)(nil)
