// Package effect implements the instrument effects chain: a biquad filter
// bank, an echo, a simple EQ, and a 4-channel feedback-delay-network
// reverb. All of them satisfy Effect, the single capability the
// instrument's block renderer depends on.
package effect

// Effect processes one audio sample at a time and carries whatever
// internal state it needs to do so (delay lines, filter history). An
// instrument's effect chain is a left fold of a sample through each
// Effect in order.
type Effect interface {
	Process(sample float32) float32

	// Reset clears internal state (delay lines, filter history) back to
	// silence. Called by Instrument.Flush and exposed so NaN/Inf state
	// picked up by a biquad can be cleared by the user.
	Reset()
}

// Delay is a circular buffer of length N with a decay ratio. Push writes
// the incoming sample blended with the slot it evicts and returns the
// evicted value; Peek reads the same slot without advancing or mutating
// it. The head advances backwards through the buffer, matching the
// convention used by the FM engine this was ported from: line[head] is
// the next element to be returned and line[head-1] (modulo the length)
// the one after that.
type Delay struct {
	line  []float32
	head  int
	ratio float32
}

// NewDelay creates a delay line of the given length (in samples) and
// update ratio. ratio is the proportion of the new sample that replaces
// the evicted one: out*(1-ratio) + sample*ratio. This is the Echo
// usage; the FDN reverb below constructs its delay lines with ratio 0
// and writes through PushReplace instead, since its feedback gain is
// already applied to the Hadamard-mixed sum before the write and would
// double up if it were also folded into ratio here.
func NewDelay(length int, ratio float32) *Delay {
	if length < 1 {
		length = 1
	}
	return &Delay{line: make([]float32, length), ratio: ratio}
}

// Push returns the current slot's value, writes the blended value into it
// and advances the head backwards (modulo the buffer length).
func (d *Delay) Push(sample float32) float32 {
	out := d.line[d.head]
	d.line[d.head] = out*(1-d.ratio) + sample*d.ratio
	d.head = (d.head + len(d.line) - 1) % len(d.line)
	return out
}

// PushReplace is the alternate delay-line update used by the FDN reverb:
// it writes out*gain + input, rather than applying Delay's own ratio.
// The FDN reverb always calls this with gain 0, since its caller has
// already computed a fully decayed, mixed, filtered feedback value from
// out and must discard out rather than add it back on top.
func (d *Delay) PushReplace(gain, input float32) float32 {
	out := d.line[d.head]
	d.line[d.head] = out*gain + input
	d.head = (d.head + len(d.line) - 1) % len(d.line)
	return out
}

// Peek returns the current slot's value without mutating the buffer.
func (d *Delay) Peek() float32 {
	return d.line[d.head]
}

// Reset clears every slot and resets the head to zero.
func (d *Delay) Reset() {
	for i := range d.line {
		d.line[i] = 0
	}
	d.head = 0
}

// Len is the number of samples the delay line holds.
func (d *Delay) Len() int {
	return len(d.line)
}
