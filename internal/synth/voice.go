package synth

import "math"

// PlayedNote is the precomputed, schedule-time form of a note attached to
// a voice. A zero Pitch marks an unused/empty voice slot.
type PlayedNote struct {
	Pitch    uint32
	Freq     float32
	Velocity float32
	Start    float64
	Duration float64
}

// Voice holds one note's worth of per-operator phase state and the
// double-buffered channel bus all operators in a frame read from and
// write to. The two channel arrays let every operator within a frame
// observe a stable snapshot of the previous frame's bus values while
// accumulating the next frame's values. This is what makes feedback (an
// operator sending to a channel it also receives from) stable rather than
// an infinite per-sample recursion.
type Voice struct {
	channels     [NumChannels]float32
	channelsBack [NumChannels]float32
	phases       [MaxOperators]float32
	note         PlayedNote
}

// NewVoice returns a freshly allocated, silent voice.
func NewVoice() *Voice {
	return &Voice{}
}

// Note exposes the voice's currently assigned note, for the allocator and
// tests.
func (v *Voice) Note() PlayedNote {
	return v.note
}

// FillHoldBuffer advances the voice by len(buf) frames of dt each,
// starting at time, accumulating its output sample (channel 0, after each
// frame's bus swap) into buf.
func (v *Voice) FillHoldBuffer(time, dt float64, buf []float32, ops []*Operator) {
	t := time
	for i := range buf {
		v.frame(t, dt, ops)
		buf[i] += v.channels[0]
		t += dt
	}
}

func (v *Voice) frame(time, dt float64, ops []*Operator) {
	for i, op := range ops {
		for _, recv := range op.Receives {
			modulation := v.channels[recv.Channel] * recv.Level * float32(dt)
			if recv.Kind == Modulate {
				modulation *= v.note.Freq
			}
			v.phases[i] += modulation
		}

		for v.phases[i] >= 2*math.Pi {
			v.phases[i] -= 2 * math.Pi
		}
		for v.phases[i] < 0 {
			v.phases[i] += 2 * math.Pi
		}

		var sample float32
		if v.note.Pitch > 0 {
			te := float32(time - v.note.Start)
			env := op.Envelope.Evaluate(te, float32(v.note.Duration))
			vel := env * v.note.Velocity

			var f float64
			if op.Fixed {
				f = float64(op.Transpose)
			} else {
				f = float64(v.note.Freq * op.Transpose)
			}

			theta := f*time + float64(v.phases[i])

			switch op.Wave {
			case Sine:
				sample = float32(-math.Cos(2 * math.Pi * theta))
			case Square:
				sample = 2*float32(math.Mod(math.Floor(2*theta), 2)) - 1
			case Triangle:
				frac := theta - math.Floor(theta)
				sample = 1 - 2*float32(math.Abs(2*frac-1))
			case Sawtooth:
				sample = float32(theta - math.Floor(theta))
			}

			sample *= vel
		}

		for _, send := range op.Sends {
			v.channelsBack[send.Channel] += send.Level * sample
		}
	}

	v.swapBuffers()
}

func (v *Voice) swapBuffers() {
	v.channels, v.channelsBack = v.channelsBack, v.channels
	v.channelsBack = [NumChannels]float32{}
}
