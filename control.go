package engine

// SetBPM updates the player's tempo and rescales the playhead so that the
// current musical position (in beats) is preserved across the tempo
// change: playhead_new = playhead_old * bps_old / bps_new.
func (p *Player) SetBPM(bpm uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if bpm == 0 {
		return
	}

	bpsOld := p.bps
	bpsNew := float64(bpm) / 60

	p.playheadSeconds = p.playheadSeconds * bpsOld / bpsNew
	p.bps = bpsNew
}

// SetVolume sets the output gain, clamped to the documented [0,2] range.
func (p *Player) SetVolume(v float32) {
	if v < 0 {
		v = 0
	} else if v > 2 {
		v = 2
	}

	p.mu.Lock()
	p.volume = v
	p.mu.Unlock()
}

// SetMute enables or disables output muting. Muted playback still
// advances the playhead and instrument state; only the final sample is
// forced to zero, so unmuting resumes with continuity.
func (p *Player) SetMute(m bool) {
	p.mu.Lock()
	p.mute = m
	p.mu.Unlock()
}

// SetPaused enables or disables playback advancement. While paused the
// playhead does not move and instruments are not rendered.
func (p *Player) SetPaused(paused bool) {
	p.mu.Lock()
	p.paused = paused
	p.mu.Unlock()
}

// Reset returns the playhead to zero and flushes all pending/playing
// notes, as if playback were starting from the beginning of the song.
func (p *Player) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.playheadSeconds = 0
	p.flushNotesLocked()
}

// FlushNotes drains the note queue completely, discards any deferred
// note, forces the next sample to run a scheduler quantum, and flushes
// every instrument (silencing every voice and resetting every effect).
func (p *Player) FlushNotes() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.flushNotesLocked()
}

func (p *Player) flushNotesLocked() {
	p.queue.drain()
	p.next = nil
	p.quantizeCount = Quantize

	for _, in := range p.instruments {
		in.Flush()
	}
}

// State is a read-only, value-copy snapshot of the player's transport
// state, safe to read from another thread (e.g. a GUI's status line or
// spectrum display) without racing the audio thread's writes. It is
// obtained while holding the lock, so it reflects one consistent instant
// rather than tearing across concurrently-mutated fields.
type State struct {
	BPS             float64
	Volume          float32
	Mute            bool
	Paused          bool
	PlayheadSeconds float64
	NumInstruments  int
}

// Snapshot returns the player's current transport state.
func (p *Player) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	return State{
		BPS:             p.bps,
		Volume:          p.volume,
		Mute:            p.mute,
		Paused:          p.paused,
		PlayheadSeconds: p.playheadSeconds,
		NumInstruments:  len(p.instruments),
	}
}

// BPS returns the player's current beats-per-second, for callers that
// need to precompute note start times before sending them (e.g. an editor
// translating a Song to queued notes without calling Song.Sequence).
func (p *Player) BPS() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.bps
}
