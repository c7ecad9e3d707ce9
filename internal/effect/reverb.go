package effect

// fdnChannels is the number of parallel delay lines in the reverb network.
const fdnChannels = 4

// defaultDelayLengths are coprime delay lengths (in samples) tuned for a
// 44.1kHz sample rate; at other rates they are rescaled proportionally.
var defaultDelayLengths = [fdnChannels]int{3041, 3385, 4481, 5477}

var defaultInGain = [fdnChannels]float32{0.4, 0.3, 0.2, 0.2}
var defaultOutGain = [fdnChannels]float32{0.5, 0.5, 0.3, 0.1}

const defaultFeedbackGain = 0.95
const defaultFeedbackCutoffHz = 5600.0

// hadamard is the 4x4 normalized Hadamard matrix (the 1/2 scale folded in)
// used to mix energy between the four delay lines each frame.
var hadamard = [fdnChannels][fdnChannels]float32{
	{+0.5, +0.5, +0.5, +0.5},
	{-0.5, +0.5, -0.5, +0.5},
	{-0.5, -0.5, +0.5, +0.5},
	{+0.5, -0.5, -0.5, +0.5},
}

// Reverb is a 4-channel feedback-delay-network reverb. Each frame:
//
//  1. out[i] = delays[i].Peek()
//  2. fb[i] = feedbackGain[i] * sum_j(hadamard[i][j] * out[j])
//  3. fb[i] = feedbackFilter[i].Process(fb[i])
//  4. delays[i].PushReplace(0, fb[i] + input*inGain[i])
//
// gain is 0 here, not feedbackGain[i]: fb[i] already carries the decayed,
// Hadamard-mixed, lowpassed feedback contribution, so the evicted slot
// value (out[i], which fb[i] was itself derived from) must be discarded
// rather than folded back in on top of it.
//
// Wet output is sum(out[i] * outGain[i]); the effect output is
// mix*wet + (1-mix)*input.
type Reverb struct {
	Mix float32

	delays         [fdnChannels]*Delay
	feedbackFilter [fdnChannels]*Biquad
	feedbackGain   [fdnChannels]float32
	inGain         [fdnChannels]float32
	outGain        [fdnChannels]float32
}

// NewReverb builds an FDN reverb for the given sample rate and wet/dry
// mix, using the documented default gains, delay lengths and feedback
// cutoff.
func NewReverb(sampleRate int, mix float32) *Reverb {
	r := &Reverb{
		Mix:          mix,
		inGain:       defaultInGain,
		outGain:      defaultOutGain,
		feedbackGain: [fdnChannels]float32{defaultFeedbackGain, defaultFeedbackGain, defaultFeedbackGain, defaultFeedbackGain},
	}

	dt := 1.0 / float64(sampleRate)
	for i := 0; i < fdnChannels; i++ {
		length := defaultDelayLengths[i] * sampleRate / 44100
		r.delays[i] = NewDelay(length, 0)
		r.feedbackFilter[i] = Lowpass(defaultFeedbackCutoffHz, 1/1.4142135623730951, dt)
	}

	return r
}

// Process implements Effect.
func (r *Reverb) Process(sample float32) float32 {
	var out [fdnChannels]float32
	for i := 0; i < fdnChannels; i++ {
		out[i] = r.delays[i].Peek()
	}

	var wet float32
	for i := 0; i < fdnChannels; i++ {
		var fb float32
		for j := 0; j < fdnChannels; j++ {
			fb += hadamard[i][j] * out[j]
		}
		fb *= r.feedbackGain[i]
		fb = r.feedbackFilter[i].Process(fb)

		r.delays[i].PushReplace(0, fb+sample*r.inGain[i])
		wet += out[i] * r.outGain[i]
	}

	return r.Mix*wet + (1-r.Mix)*sample
}

// Reset implements Effect, clearing every delay line and feedback filter.
func (r *Reverb) Reset() {
	for i := 0; i < fdnChannels; i++ {
		r.delays[i].Reset()
		r.feedbackFilter[i].Reset()
	}
}

var _ Effect = (*Reverb)(nil)
