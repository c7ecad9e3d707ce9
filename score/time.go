// Package score holds the symbolic, editor-facing representation of a
// song: quantized time, notes and the parts that make them up. It has no
// dependency on the synth or player packages, only the other way round.
package score

// BEATDivisions is the number of subdivisions per quarter-note beat. A
// quarter note is one beat; a sixteenth note is BEATDivisions/4 divisions.
const BEATDivisions = 96

// Time is a quantized point in a song, expressed as a beat and a fractional
// division within that beat. Division is always kept in [0, BEATDivisions)
// by normalization.
type Time struct {
	Beat     uint32
	Division uint32
}

// NewTime constructs a Time, normalizing division overflow into whole beats.
func NewTime(beat, division uint32) Time {
	return Time{Beat: beat, Division: division}.normalized()
}

func (t Time) normalized() Time {
	t.Beat += t.Division / BEATDivisions
	t.Division = t.Division % BEATDivisions
	return t
}

// AsDivs flattens the time to a total division count since beat zero.
func (t Time) AsDivs() uint32 {
	return t.Beat*BEATDivisions + t.Division
}

// Add returns the time displaced by the given number of divisions,
// re-normalized so Division stays in range.
func (t Time) Add(divisions uint32) Time {
	return Time{Beat: t.Beat, Division: t.Division + divisions}.normalized()
}

// Diff returns t - other, in divisions, as a signed quantity.
func (t Time) Diff(other Time) int32 {
	return int32(t.AsDivs()) - int32(other.AsDivs())
}

// Before reports whether t occurs strictly earlier than other.
func (t Time) Before(other Time) bool {
	return t.AsDivs() < other.AsDivs()
}
