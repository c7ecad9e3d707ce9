package effect

import "math"

// Biquad is a direct-form-I second order IIR filter:
//
//	y[n] = b0*x[n] + b1*x[n-1] + b2*x[n-2] - a1*y[n-1] - a2*y[n-2]
//
// Coefficients are normalized by a0 at construction time. Delay state is
// held in float64 for numeric headroom; samples enter and leave as
// float32.
type Biquad struct {
	b0, b1, b2 float64
	a1, a2     float64

	x1, x2 float64
	y1, y2 float64
}

func newBiquad(a0, a1, a2, b0, b1, b2 float64) *Biquad {
	return &Biquad{
		b0: b0 / a0, b1: b1 / a0, b2: b2 / a0,
		a1: a1 / a0, a2: a2 / a0,
	}
}

// Lowpass designs a cookbook lowpass biquad with cutoff fc, quality q, at
// sample period dt.
func Lowpass(fc, q, dt float64) *Biquad {
	w := 2 * math.Pi * fc * dt
	alpha := math.Sin(w) / (2 * q)
	cosW := math.Cos(w)

	return newBiquad(
		1+alpha, -2*cosW, 1-alpha,
		(1-cosW)/2, 1-cosW, (1-cosW)/2,
	)
}

// Highpass designs a cookbook highpass biquad with cutoff fc, quality q,
// at sample period dt.
func Highpass(fc, q, dt float64) *Biquad {
	w := 2 * math.Pi * fc * dt
	alpha := math.Sin(w) / (2 * q)
	cosW := math.Cos(w)

	return newBiquad(
		1+alpha, -2*cosW, 1-alpha,
		(1+cosW)/2, -1-cosW, (1+cosW)/2,
	)
}

// Peak designs a cookbook parametric peaking EQ biquad: center frequency
// fc, linear gain g, bandwidth scale factor, at sample period dt.
func Peak(fc, g, scale, dt float64) *Biquad {
	sqrtGain := math.Sqrt(g)
	w := 2 * math.Pi * fc * dt
	cosW := math.Cos(w)

	denom := sqrtGain
	if sqrtGain < 1 {
		denom = 1 / sqrtGain
	}
	bandwidth := scale * w / denom
	alphaG := math.Tan(bandwidth / 2)

	return newBiquad(
		1+alphaG/sqrtGain, -2*cosW, 1-alphaG/sqrtGain,
		1+alphaG*sqrtGain, -2*cosW, 1-alphaG*sqrtGain,
	)
}

// Process filters one sample through the direct-form-I recurrence.
func (b *Biquad) Process(sample float32) float32 {
	x0 := float64(sample)

	y0 := b.b0*x0 + b.b1*b.x1 + b.b2*b.x2 - b.a1*b.y1 - b.a2*b.y2

	b.x2, b.x1 = b.x1, x0
	b.y2, b.y1 = b.y1, y0

	return float32(y0)
}

// Reset zeroes the filter's delay history.
func (b *Biquad) Reset() {
	b.x1, b.x2, b.y1, b.y2 = 0, 0, 0, 0
}

var _ Effect = (*Biquad)(nil)
