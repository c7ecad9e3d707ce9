package synth

import (
	"math"
	"testing"

	"github.com/fmtrack/engine/score"
)

func newSineInstrument(numVoices int) *Instrument {
	in := NewInstrument(numVoices)
	op := NewOperator(Sine, false, 1)
	op.Env(-1, 0, 1, 0)
	op.Send(0, 1)
	in.AddOperator(op)
	return in
}

func TestSilentInstrumentProducesZero(t *testing.T) {
	in := newSineInstrument(1)
	dt := 1.0 / 44100

	for i := 0; i < 1024; i++ {
		if got := in.NextOutput(float64(i)*dt, dt); got != 0 {
			t.Fatalf("expected silence from an instrument with no scheduled notes, got %v at sample %d", got, i)
		}
	}
}

func TestSineOperatorNearPeriodic(t *testing.T) {
	in := newSineInstrument(1)
	dt := 1.0 / 44100.0

	note := score.NewNote(57, 0, 0, score.BEATDivisions, 1) // A4, 440Hz
	in.Schedule(note, 1.0)                                   // bps=1 -> 1 beat = 1 second

	var samples []float32
	for i := 0; i < 44100; i++ {
		samples = append(samples, in.NextOutput(float64(i)*dt, dt))
	}

	var crossings int
	for i := 1; i < len(samples); i++ {
		if (samples[i-1] < 0) != (samples[i] < 0) {
			crossings++
		}
	}

	// 440Hz over 1 second -> 880 zero crossings, give a generous tolerance
	// for envelope attack/release and quantization near t=0.
	if crossings < 850 || crossings > 910 {
		t.Errorf("expected ~880 zero crossings for a 440Hz tone, got %d", crossings)
	}

	var peak float32
	for _, s := range samples {
		if a := float32(math.Abs(float64(s))); a > peak {
			peak = a
		}
	}
	if peak < 0.95 || peak > 1.05 {
		t.Errorf("expected amplitude near 1.0 before effects, got peak %v", peak)
	}
}

func TestAllocatorReusesVoiceWithSamePitch(t *testing.T) {
	in := newSineInstrument(4)

	in.Schedule(score.NewNote(40, 0, 0, 96, 1), 1.0)
	before := in.VoiceNote(0)

	in.Schedule(score.NewNote(40, 10, 0, 96, 1), 1.0)
	after := in.VoiceNote(0)

	if after.Start == before.Start {
		t.Error("expected the same-pitch voice to be overwritten with the new note")
	}
	for i := 1; i < 4; i++ {
		if in.VoiceNote(i).Pitch != 0 {
			t.Errorf("voice %d should remain untouched, got pitch %d", i, in.VoiceNote(i).Pitch)
		}
	}
}

func TestAllocatorPicksEarliestFinishingVoice(t *testing.T) {
	in := newSineInstrument(8)

	for i := 0; i < 8; i++ {
		// pitch i+1 so no pitch collisions; duration 0.1s, spaced 0.2s apart in start time.
		note := score.Note{Pitch: uint32(i + 1), Start: score.Time{}, Duration: 10, Velocity: 1}
		in.Schedule(note, 1.0)
		// Manually stamp distinct starts to emulate them being scheduled 0.2s apart.
		in.voices[i].note.Start = float64(i) * 0.2
		in.voices[i].note.Duration = 0.1
	}

	// The 9th note should land on voice 0, whose finish time (0.1) is earliest.
	in.Schedule(score.Note{Pitch: 99, Start: score.Time{}, Duration: 10, Velocity: 1}, 1.0)

	if in.VoiceNote(0).Pitch != 99 {
		t.Errorf("expected voice 0 (earliest finishing) to be reused, voice 0 has pitch %d", in.VoiceNote(0).Pitch)
	}
	for i := 1; i < 8; i++ {
		if in.VoiceNote(i).Pitch == 99 {
			t.Errorf("voice %d should not have been overwritten", i)
		}
	}
}

func TestFlushSilencesAllVoices(t *testing.T) {
	in := newSineInstrument(2)
	in.Schedule(score.NewNote(40, 0, 0, 96, 1), 1.0)
	in.Schedule(score.NewNote(45, 0, 0, 96, 1), 1.0)

	in.Flush()

	for i := 0; i < 2; i++ {
		if in.VoiceNote(i) != (PlayedNote{}) {
			t.Errorf("voice %d should be fully zeroed after Flush, got %+v", i, in.VoiceNote(i))
		}
	}
}

func TestPhaseStaysInWrapRange(t *testing.T) {
	in := newSineInstrument(1)
	dt := 1.0 / 44100.0
	in.Schedule(score.NewNote(69, 0, 0, score.BEATDivisions*100, 1), 1.0)

	for i := 0; i < 44100; i++ {
		in.NextOutput(float64(i)*dt, dt)
	}

	for _, p := range in.voices[0].phases {
		if p < 0 || p >= 2*math.Pi {
			t.Errorf("phase out of [0, 2pi) range: %v", p)
		}
	}
}
