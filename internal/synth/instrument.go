package synth

import (
	"github.com/fmtrack/engine/internal/effect"
	"github.com/fmtrack/engine/score"
)

// HoldBufferSize is the number of samples an instrument pre-renders at a
// time to amortize per-sample bookkeeping.
const HoldBufferSize = 256

// Instrument is a pool of identical voices sharing one operator network
// and one effect chain. Scheduling a note allocates it to a voice;
// rendering pulls samples one at a time from a double-buffered hold
// buffer, refilling it (one voice-block render plus one effect pass) each
// time it runs dry.
type Instrument struct {
	voices    []*Voice
	operators []*Operator
	effects   []effect.Effect

	holdBuf     [HoldBufferSize]float32
	holdBufBack [HoldBufferSize]float32
	holdIndex   int
}

// NewInstrument creates an instrument with numVoices voices and no
// operators or effects. Operators and effects are added with
// AddOperator/AddEffect before the instrument is used.
func NewInstrument(numVoices int) *Instrument {
	voices := make([]*Voice, numVoices)
	for i := range voices {
		voices[i] = NewVoice()
	}
	return &Instrument{
		voices:    voices,
		holdIndex: HoldBufferSize,
	}
}

// AddOperator appends an operator to the instrument's FM network, up to
// MaxOperators. Operators beyond the limit are silently dropped, mirroring
// the fixed-size operator budget of the original engine.
func (in *Instrument) AddOperator(op *Operator) {
	if len(in.operators) < MaxOperators {
		in.operators = append(in.operators, op)
	}
}

// AddEffect appends an effect to the end of the instrument's chain.
func (in *Instrument) AddEffect(e effect.Effect) {
	in.effects = append(in.effects, e)
}

// NumVoices is the size of the instrument's voice pool.
func (in *Instrument) NumVoices() int {
	return len(in.voices)
}

// VoiceNote returns the currently assigned note of voice i, for tests and
// introspection.
func (in *Instrument) VoiceNote(i int) PlayedNote {
	return in.voices[i].Note()
}

// Schedule places note into the "best" voice: one already playing the
// same pitch (a polyphonic retrigger, which overwrites that voice without
// resetting its phases, an intentional source of characteristic FM attack
// transients), or else the voice finishing earliest, ties broken by the
// lowest index.
func (in *Instrument) Schedule(note score.Note, bps float64) {
	played := PlayedNote{
		Pitch:    note.Pitch,
		Freq:     note.Freq(),
		Velocity: note.Velocity,
		Start:    note.StartTime(bps),
		Duration: note.RealDuration(bps),
	}

	bestFinish := maxFloat64
	bestIndex := 0

	for i, v := range in.voices {
		if v.note.Pitch == note.Pitch {
			bestIndex = i
			break
		}

		finish := v.note.Start + v.note.Duration
		if finish < bestFinish {
			bestFinish = finish
			bestIndex = i
		}
	}

	in.voices[bestIndex].note = played
}

const maxFloat64 = 1.7976931348623157e+308

// Flush zeroes every voice's note (including pitch, which silences it)
// and resets every effect's internal state.
func (in *Instrument) Flush() {
	for _, v := range in.voices {
		v.note = PlayedNote{}
	}
	for _, e := range in.effects {
		e.Reset()
	}
}

// NextOutput returns the next rendered sample. time is the current
// playhead in seconds and dt is the sample period; both only matter at
// hold-buffer refill boundaries, which happen every HoldBufferSize calls.
func (in *Instrument) NextOutput(time, dt float64) float32 {
	if in.holdIndex >= HoldBufferSize {
		in.fillHoldBuffer(time, dt)
	}

	out := in.holdBuf[in.holdIndex]
	in.holdIndex++
	return out
}

func (in *Instrument) fillHoldBuffer(time, dt float64) {
	for i := range in.holdBufBack {
		in.holdBufBack[i] = 0
	}

	for _, v := range in.voices {
		v.FillHoldBuffer(time, dt, in.holdBufBack[:], in.operators)
	}

	for i := range in.holdBufBack {
		s := in.holdBufBack[i]
		for _, e := range in.effects {
			s = e.Process(s)
		}
		in.holdBufBack[i] = s
	}

	in.holdBuf, in.holdBufBack = in.holdBufBack, in.holdBuf
	in.holdIndex = 0
}
