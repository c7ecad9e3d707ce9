// Package engine is the real-time audio engine: the FM synthesis graph,
// the per-instrument voice allocator and effect chain (internal/synth,
// internal/effect), and the Player that turns a stream of scheduled
// notes into a sample-accurate audio signal.
//
// The Player is the single piece of shared mutable state between the
// control thread (the editor/UI, issuing note-queue sends and setter
// calls) and the realtime audio thread (the host's device callback,
// pulling samples). It is guarded by one mutex, held for the duration of
// each host callback and for the duration of each control-surface call;
// see Lock/Unlock on Player and the sink package for how a host adapter
// is expected to use them.
package engine

import (
	"sync"

	"github.com/fmtrack/engine/internal/synth"
	"github.com/fmtrack/engine/score"
)

// Quantize is the number of samples between scheduler quanta: how often
// the Player drains its note queue and promotes deferred notes. At
// 44.1kHz this is roughly 5.8ms.
const Quantize = 256

// pendingNote is a note whose start time is in the future relative to the
// playhead as of the quantum that discovered it; it is held here until a
// later quantum's playhead catches up to it.
type pendingNote struct {
	instrument int
	note       score.Note
	start      float64
}

// Player owns a set of instruments and a playhead, and renders them to a
// mono signal sample by sample. It is not safe for concurrent use without
// external locking (see Lock/Unlock); the audio callback and control
// surface are expected to share the same mutex.
type Player struct {
	mu sync.Mutex

	bps    float64
	volume float32
	mute   bool
	paused bool

	instruments []*synth.Instrument

	playheadSeconds float64
	queue           *noteQueue
	next            *pendingNote
	quantizeCount   uint32
}

// NewPlayer creates an empty player (no instruments) at 120bpm, unmuted,
// unpaused, full volume.
func NewPlayer() *Player {
	return &Player{
		bps:    2, // 120bpm
		volume: 1,
		queue:  newNoteQueue(),
	}
}

// AddInstrument appends an instrument to the player and returns its index
// for use with NoteSender.Send.
func (p *Player) AddInstrument(in *synth.Instrument) int {
	p.instruments = append(p.instruments, in)
	return len(p.instruments) - 1
}

// Sender returns a cheaply-copyable handle that can enqueue notes onto
// this player's note queue from any goroutine.
func (p *Player) Sender() NoteSender {
	return NoteSender{q: p.queue}
}

// Lock and Unlock expose the player's mutex directly so that a host audio
// callback and control-surface callers can share one critical section
// without this package dictating their call shape. The realtime thread is
// expected to call Lock, call Sample/Render some bounded number of times,
// then Unlock, once per device callback; control-thread setters in
// control.go do the same for the duration of a single call.
func (p *Player) Lock()   { p.mu.Lock() }
func (p *Player) Unlock() { p.mu.Unlock() }

// Sample advances the player by one sample of duration dt and returns the
// mixed, volume/mute-adjusted output. The caller must hold the player's
// lock. This is the method a host's audio callback calls once per output
// frame.
func (p *Player) Sample(dt float64) float32 {
	if p.quantizeCount >= Quantize {
		p.quantum()
		p.quantizeCount = 0
	} else {
		p.quantizeCount++
	}

	var s float32
	if !p.paused {
		for _, in := range p.instruments {
			s += in.NextOutput(p.playheadSeconds, dt)
		}
		p.playheadSeconds += dt
	}

	if p.mute {
		return 0
	}
	return s * p.volume
}

// Render fills dst with len(dst)/channels frames, each frame duplicating
// one mono Sample across `channels` slots: output is monaural, mixed to
// every device channel. The caller must hold the player's lock for the
// duration of the call.
func (p *Player) Render(dst []float32, channels uint32, dt float64) {
	if channels == 0 {
		return
	}
	frames := len(dst) / int(channels)
	for f := 0; f < frames; f++ {
		s := p.Sample(dt)
		base := f * int(channels)
		for c := uint32(0); c < channels; c++ {
			dst[base+int(c)] = s
		}
	}
}

// quantum drains queued notes conservatively: a note whose start time has
// already passed the playhead is scheduled immediately; the first note
// found whose start time is still in the future is held as `next` and
// draining stops for this quantum, leaving any notes behind it in the
// queue. This relies on notes arriving in non-decreasing start-time
// order, which score.Song.Sequence guarantees.
func (p *Player) quantum() {
	if p.next != nil && p.next.start <= p.playheadSeconds {
		p.scheduleOn(p.next.instrument, p.next.note)
		p.next = nil
	}

	for p.next == nil {
		qn, ok := p.queue.tryPop()
		if !ok {
			break
		}

		start := qn.Note.StartTime(p.bps)
		if start > p.playheadSeconds {
			p.next = &pendingNote{instrument: qn.Instrument, note: qn.Note, start: start}
			break
		}

		p.scheduleOn(qn.Instrument, qn.Note)
	}
}

// scheduleOn dispatches a note to an instrument by index, silently
// ignoring an out-of-range index (an unknown instrument is a score-bounds
// failure the core tolerates rather than reports, per the error handling
// design).
func (p *Player) scheduleOn(instrument int, note score.Note) {
	if instrument < 0 || instrument >= len(p.instruments) {
		return
	}
	p.instruments[instrument].Schedule(note, p.bps)
}
