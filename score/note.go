package score

import "math"

// C0 is the frequency in Hz of pitch 0, the lowest representable note.
const C0 = 16.35159783

// NoteNames are the twelve semitone names within an octave, starting at C.
var NoteNames = [12]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// Note is an immutable symbolic event once scheduled: a pitch, a start
// time, a duration (in divisions) and a velocity.
type Note struct {
	Pitch    uint32
	Start    Time
	Duration uint32
	Velocity float32
}

// NewNote constructs a Note from a beat/division start.
func NewNote(pitch, beat, division, duration uint32, velocity float32) Note {
	return Note{Pitch: pitch, Start: NewTime(beat, division), Duration: duration, Velocity: velocity}
}

// Freq is the note's frequency in Hz: C0 * 2^(pitch/12).
func (n Note) Freq() float32 {
	return C0 * float32(math.Pow(2, float64(n.Pitch)/12))
}

// PitchFromFreq inverts Freq, rounding to the nearest integer pitch. It is
// the round-trip partner used to verify pitch -> freq -> pitch identity.
func PitchFromFreq(freq float32) int {
	return int(math.Round(12 * math.Log2(float64(freq)/C0)))
}

// StartTime is the time in seconds at which the note should begin playing,
// given the song's beats-per-second.
func (n Note) StartTime(bps float64) float64 {
	return (float64(n.Start.Beat) + float64(n.Start.Division)/BEATDivisions) / bps
}

// RealDuration is the note's duration in seconds.
func (n Note) RealDuration(bps float64) float64 {
	return (float64(n.Duration) / BEATDivisions) / bps
}

// EndTime is the time in seconds at which the note finishes.
func (n Note) EndTime(bps float64) float64 {
	return n.StartTime(bps) + n.RealDuration(bps)
}

// Overlap reports whether two notes' [start, start+duration) intervals
// intersect. The check is symmetric. Calling Overlap on two copies of the
// same note returns true, since their intervals are identical and
// non-empty (duration > 0).
func (n Note) Overlap(other Note) bool {
	s1, e1 := n.Start.AsDivs(), n.Start.AsDivs()+n.Duration
	s2, e2 := other.Start.AsDivs(), other.Start.AsDivs()+other.Duration
	return (s1 < e2 && e1 > s2) || (s2 < e1 && e2 > s1)
}

// Contains reports whether the given time falls within the note's span.
func (n Note) Contains(t Time) bool {
	divs := t.AsDivs()
	return divs >= n.Start.AsDivs() && divs < n.Start.AsDivs()+n.Duration
}

// Name is the note's pitch class, e.g. "C#".
func (n Note) Name() string {
	return NoteNames[n.Pitch%12]
}

// Octave is the note's octave number, C0 being octave 0.
func (n Note) Octave() uint32 {
	return n.Pitch / 12
}
