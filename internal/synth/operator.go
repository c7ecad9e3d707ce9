package synth

// NumChannels is the number of per-voice buses operators can send to and
// receive from.
const NumChannels = 8

// MaxOperators is the maximum number of operators an instrument can hold.
const MaxOperators = 8

// Wave selects an operator's oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Square
	Triangle
	Sawtooth
)

// ReceiveKind controls how a bus value contributes to an operator's
// phase. Normal and Vibrato are functionally identical; Modulate
// additionally scales the contribution by the note's base frequency,
// turning the bus value into true frequency modulation.
type ReceiveKind int

const (
	Normal ReceiveKind = iota
	Modulate
	Vibrato
)

// Receive is one incoming connection into an operator's phase accumulator.
type Receive struct {
	Channel int
	Level   float32
	Kind    ReceiveKind
}

// Send is one outgoing connection from an operator's output sample.
type Send struct {
	Channel int
	Level   float32
}

// Operator is a single FM oscillator: a waveshape, an optional fixed base
// frequency, a transpose factor, an envelope, and the receives/sends that
// wire it into the voice's channel bus.
type Operator struct {
	Wave      Wave
	Fixed     bool
	Transpose float32
	Envelope  Envelope

	Receives []Receive
	Sends    []Send
}

// NewOperator creates an operator with the given waveshape, fixed-pitch
// flag and transpose, and a disabled (constant unity) envelope by default.
func NewOperator(wave Wave, fixed bool, transpose float32) *Operator {
	return &Operator{
		Wave:      wave,
		Fixed:     fixed,
		Transpose: transpose,
		Envelope:  Envelope{Attack: -1, Sustain: 1},
	}
}

// Recv appends a receive connection and returns the operator for chaining.
func (o *Operator) Recv(channel int, level float32, kind ReceiveKind) *Operator {
	o.Receives = append(o.Receives, Receive{Channel: channel, Level: level, Kind: kind})
	return o
}

// Send appends a send connection and returns the operator for chaining.
func (o *Operator) Send(channel int, level float32) *Operator {
	o.Sends = append(o.Sends, Send{Channel: channel, Level: level})
	return o
}

// Env sets the operator's envelope and returns the operator for chaining.
func (o *Operator) Env(attack, decay, sustain, release float32) *Operator {
	o.Envelope = Envelope{Attack: attack, Decay: decay, Sustain: sustain, Release: release}
	return o
}
