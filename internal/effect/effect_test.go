package effect

import "testing"

func TestDelayImpulseReappearsAfterLength(t *testing.T) {
	d := NewDelay(10, 1.0)

	out := d.Push(1.0)
	if out != 0 {
		t.Fatalf("first output should be 0 (buffer was silent), got %v", out)
	}

	var sawImpulse bool
	for i := 1; i <= 10; i++ {
		out = d.Push(0)
		if i == 10 && out == 1.0 {
			sawImpulse = true
		}
	}
	if !sawImpulse {
		t.Error("expected the impulse to reappear after Len() further pushes")
	}
}

func TestDelayPeekDoesNotMutate(t *testing.T) {
	d := NewDelay(4, 0.5)
	d.Push(1.0)

	a := d.Peek()
	b := d.Peek()
	if a != b {
		t.Errorf("Peek mutated state: got %v then %v", a, b)
	}
}

func TestDelayReset(t *testing.T) {
	d := NewDelay(4, 1.0)
	d.Push(5.0)
	d.Push(5.0)
	d.Reset()

	for i := 0; i < d.Len(); i++ {
		if got := d.Push(0); got != 0 {
			t.Errorf("expected silence after Reset, got %v at step %d", got, i)
		}
	}
}

func TestBiquadLowpassDCGainIsUnity(t *testing.T) {
	lp := Lowpass(1000, 1/1.4142135623730951, 1.0/44100)

	var y float32
	for i := 0; i < 10000; i++ {
		y = lp.Process(1.0)
	}
	if y < 0.99 || y > 1.01 {
		t.Errorf("expected DC gain near 1.0, got %v", y)
	}
}

func TestBiquadHighpassDCGainIsZero(t *testing.T) {
	hp := Highpass(1000, 1/1.4142135623730951, 1.0/44100)

	var y float32
	for i := 0; i < 10000; i++ {
		y = hp.Process(1.0)
	}
	if y > 0.01 || y < -0.01 {
		t.Errorf("expected DC gain near 0.0, got %v", y)
	}
}

func TestBiquadReset(t *testing.T) {
	lp := Lowpass(1000, 1/1.4142135623730951, 1.0/44100)
	for i := 0; i < 100; i++ {
		lp.Process(1.0)
	}
	lp.Reset()

	if got := lp.Process(0); got != 0 {
		t.Errorf("expected zero output immediately after Reset on silent input, got %v", got)
	}
}

func TestEchoAddsDelayedCopy(t *testing.T) {
	e := NewEcho(8, 0.5)

	out := e.Process(1.0)
	if out != 1.0 {
		t.Fatalf("first sample should be just the dry signal, got %v", out)
	}

	// 1.0*0.5 is fed in and blended at ratio 0.5, so 0.25 comes back after
	// the delay's 8 samples.
	for i := 1; i < 8; i++ {
		if out = e.Process(0); out != 0 {
			t.Fatalf("no echo expected before the delay length has elapsed, got %v at sample %d", out, i)
		}
	}
	if out = e.Process(0); out != 0.25 {
		t.Errorf("expected the delayed copy 0.25, got %v", out)
	}
}

func TestEQFoldsThroughAllStages(t *testing.T) {
	eq := NewEQ().Add(Lowpass(2000, 0.707, 1.0/44100)).Add(Highpass(100, 0.707, 1.0/44100))
	out := eq.Process(1.0)
	if out == 0 {
		t.Error("expected a non-zero first sample through the EQ chain")
	}

	eq.Reset()
	for _, b := range eq.Biquads {
		if b.x1 != 0 || b.y1 != 0 {
			t.Error("Reset did not clear biquad state")
		}
	}
}

func TestReverbSilenceInSilenceOut(t *testing.T) {
	r := NewReverb(44100, 0.5)
	for i := 0; i < 1000; i++ {
		if got := r.Process(0); got != 0 {
			t.Fatalf("expected silence to stay silent, got %v at sample %d", got, i)
		}
	}
}

func TestReverbMixZeroIsDry(t *testing.T) {
	r := NewReverb(44100, 0.0)
	for i := 0; i < 100; i++ {
		if got := r.Process(1.0); got != 1.0 {
			t.Errorf("mix=0 should pass the dry signal through unchanged, got %v at sample %d", got, i)
		}
	}
}

func TestReverbMixOneIsFullyWet(t *testing.T) {
	r := NewReverb(44100, 1.0)
	// First sample: all delay lines are silent, so wet output is 0.
	if got := r.Process(1.0); got != 0 {
		t.Errorf("mix=1 first sample should be fully wet (silent delay lines), got %v", got)
	}
}

func TestReverbStaysBoundedOverLongRun(t *testing.T) {
	r := NewReverb(44100, 0.5)

	out := r.Process(1.0)
	if out < -10 || out > 10 {
		t.Fatalf("impulse response diverged immediately, got %v", out)
	}

	const samples = 200000
	for i := 0; i < samples; i++ {
		out = r.Process(0)
		if out < -10 || out > 10 {
			t.Fatalf("reverb tail diverged at sample %d: got %v, want a bounded, decaying tail", i, out)
		}
	}
}

func TestReverbReset(t *testing.T) {
	r := NewReverb(44100, 1.0)
	for i := 0; i < 5000; i++ {
		r.Process(1.0)
	}
	r.Reset()

	for i := 0; i < fdnChannels; i++ {
		if r.delays[i].Peek() != 0 {
			t.Errorf("delay %d not cleared by Reset", i)
		}
	}
}
