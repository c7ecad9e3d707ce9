package score

import "sort"

// NumParts is the number of ordered note sequences a Song holds.
const NumParts = 4

// Song is the full symbolic score: a tempo, a time signature, and
// NumParts parts, each an ordered sequence of notes.
type Song struct {
	BPM         uint32
	BeatsPerBar uint32
	Parts       [NumParts][]Note
}

// NewSong constructs an empty song at the given tempo and time signature.
func NewSong(bpm, beatsPerBar uint32) *Song {
	return &Song{BPM: bpm, BeatsPerBar: beatsPerBar}
}

// BPS is the song's beats-per-second, derived from BPM.
func (s *Song) BPS() float64 {
	return float64(s.BPM) / 60
}

// AddNote appends a note to a part, first removing any existing note in
// that part that overlaps it. This keeps the part's invariant that at
// most one note occupies any (pitch, division) cell.
func (s *Song) AddNote(part int, n Note) {
	kept := s.Parts[part][:0]
	for _, existing := range s.Parts[part] {
		if !existing.Overlap(n) {
			kept = append(kept, existing)
		}
	}
	s.Parts[part] = append(kept, n)
}

// Duration is the total length of the song in seconds: the latest end
// time across all parts' last notes.
func (s *Song) Duration() float64 {
	bps := s.BPS()
	best := 0.0
	for _, part := range s.Parts {
		if len(part) == 0 {
			continue
		}
		if end := part[len(part)-1].EndTime(bps); end > best {
			best = end
		}
	}
	return best
}

// ScheduledNote pairs a part index with the note to play and its
// precomputed seconds-domain start time, as produced by Sequence.
type ScheduledNote struct {
	Part  int
	Note  Note
	Start float64
}

// Sequence flattens all parts into a single list of (part, note, start
// time) tuples ordered ascending by start time. Ties are broken by a
// stable sort, preserving part-then-insertion order for simultaneous
// notes. This is the order in which a producer should enqueue notes onto
// a Player so that the "early note -> defer, late note -> play now"
// scheduling policy in the player sees a monotonically non-decreasing
// stream of start times.
func (s *Song) Sequence() []ScheduledNote {
	bps := s.BPS()

	var out []ScheduledNote
	for part, notes := range s.Parts {
		for _, n := range notes {
			out = append(out, ScheduledNote{Part: part, Note: n, Start: n.StartTime(bps)})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})

	return out
}
