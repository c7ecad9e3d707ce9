package effect

// Echo feeds a scaled copy of the input into a delay line and adds the
// delay's output back onto the dry signal: process(s) = s + delay(s*amount).
// amount controls both how much signal is fed into the delay and, via the
// delay's own ratio, how quickly it decays.
type Echo struct {
	Amount float32
	delay  *Delay
}

// NewEcho builds an echo with a delay line of lengthSamples and the given
// wet amount/decay.
func NewEcho(lengthSamples int, amount float32) *Echo {
	return &Echo{Amount: amount, delay: NewDelay(lengthSamples, amount)}
}

// Process implements Effect.
func (e *Echo) Process(sample float32) float32 {
	return sample + e.delay.Push(sample*e.Amount)
}

// Reset implements Effect.
func (e *Echo) Reset() {
	e.delay.Reset()
}

var _ Effect = (*Echo)(nil)
