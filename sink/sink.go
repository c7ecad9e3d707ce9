// Package sink adapts the engine's internal f32 sample stream to a host
// audio device's native sample format, the way a PortAudio stream
// callback adapts a player's render step to its int16 callback buffer.
package sink

// Player is the subset of engine.Player a sink needs: render a block of
// mixed, already-locked samples.
type Player interface {
	Render(dst []float32, channels uint32, dt float64)
}

// Adapter pulls samples from a Player and converts them to a device's
// native format. It owns a reusable f32 scratch buffer so that repeated
// device callbacks (typically several hundred samples each) do not
// allocate.
type Adapter struct {
	player     Player
	channels   uint32
	sampleRate int
	scratch    []float32
}

// NewAdapter creates an adapter pulling from player at the given channel
// count and sample rate.
func NewAdapter(player Player, channels uint32, sampleRate int) *Adapter {
	return &Adapter{player: player, channels: channels, sampleRate: sampleRate}
}

func (a *Adapter) fill(frames int) []float32 {
	n := frames * int(a.channels)
	if cap(a.scratch) < n {
		a.scratch = make([]float32, n)
	}
	buf := a.scratch[:n]
	a.player.Render(buf, a.channels, 1.0/float64(a.sampleRate))
	return buf
}

// RenderInt16 fills out with signed 16-bit PCM, the format PortAudio's
// default output stream uses.
func (a *Adapter) RenderInt16(out []int16) {
	buf := a.fill(len(out) / int(a.channels))
	for i, s := range buf {
		out[i] = f32ToInt16(s)
	}
}

// RenderUint16 fills out with unsigned 16-bit PCM (offset-binary), the
// format some embedded/WASAPI devices expect.
func (a *Adapter) RenderUint16(out []uint16) {
	buf := a.fill(len(out) / int(a.channels))
	for i, s := range buf {
		out[i] = uint16(int32(f32ToInt16(s)) + 32768)
	}
}

// RenderFloat32 fills out with the device's native float32 format,
// passing samples through unconverted beyond clamping.
func (a *Adapter) RenderFloat32(out []float32) {
	buf := a.fill(len(out) / int(a.channels))
	for i, s := range buf {
		out[i] = clamp(s, -1, 1)
	}
}

func f32ToInt16(s float32) int16 {
	s = clamp(s, -1, 1)
	return int16(s * 32767)
}

func clamp(s, lo, hi float32) float32 {
	if s < lo {
		return lo
	}
	if s > hi {
		return hi
	}
	return s
}
