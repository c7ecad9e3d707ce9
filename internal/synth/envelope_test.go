package synth

import "testing"

func TestEnvelopeBoundedZeroToOne(t *testing.T) {
	env := Envelope{Attack: 0.1, Decay: 0.1, Sustain: 0.5, Release: 0.2}
	hold := float32(0.5)

	for i := 0; i <= 1000; i++ {
		tt := float32(i) / 1000 * (hold + env.Release + 0.1)
		v := env.Evaluate(tt, hold)
		if v < 0 || v > 1 {
			t.Fatalf("envelope out of [0,1] at t=%v: %v", tt, v)
		}
	}
}

func TestEnvelopeZeroAtHoldPlusRelease(t *testing.T) {
	env := Envelope{Attack: 0.1, Decay: 0.1, Sustain: 0.5, Release: 0.2}
	hold := float32(0.5)

	if v := env.Evaluate(hold+env.Release, hold); v != 0 {
		t.Errorf("expected 0 at t=hold+release, got %v", v)
	}
}

func TestEnvelopeFullAtAttackWhenHoldLongEnough(t *testing.T) {
	env := Envelope{Attack: 0.1, Decay: 0.1, Sustain: 0.5, Release: 0.2}
	hold := float32(0.5) // hold >= attack+decay

	if v := env.Evaluate(env.Attack, hold); v < 0.999 || v > 1.001 {
		t.Errorf("expected 1.0 at t=attack, got %v", v)
	}
}

func TestEnvelopeShape(t *testing.T) {
	env := Envelope{Attack: 0.1, Decay: 0.1, Sustain: 0.5, Release: 0.2}
	hold := float32(0.5)

	cases := []struct {
		t    float32
		want float32
	}{
		{0.05, 0.5},                 // mid attack: t/attack
		{0.15, 1 - 0.5*(0.15-0.1)/0.1}, // mid decay
		{0.3, 0.5},                  // sustain
		{0.55, 0.5 * (1 - (0.55-0.5)/0.2)}, // mid release
		{0.69, 0.5 * (1 - (0.69-0.5)/0.2)}, // near end of release
	}

	for _, c := range cases {
		got := env.Evaluate(c.t, hold)
		if diff := got - c.want; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("Evaluate(%v, %v) = %v, want %v", c.t, hold, got, c.want)
		}
	}
}

func TestEnvelopeDisabledIsConstantOne(t *testing.T) {
	env := Envelope{Attack: -1, Sustain: 1, Release: 0.2}
	hold := float32(0.5)

	for _, tt := range []float32{0, 0.1, 0.3, 0.5, 0.69} {
		if v := env.Evaluate(tt, hold); v != 1 {
			t.Errorf("disabled envelope should be constant 1, got %v at t=%v", v, tt)
		}
	}
}

func TestEnvelopeZeroDurationNoteIsSilent(t *testing.T) {
	env := Envelope{Attack: 0.1, Decay: 0.1, Sustain: 0.5, Release: 0.2}

	for _, tt := range []float32{0, 0.01, 0.1, env.Release - 0.001} {
		if v := env.Evaluate(tt, 0); v != 0 {
			t.Errorf("zero-duration note should be silent at t=%v, got %v", tt, v)
		}
	}
}
