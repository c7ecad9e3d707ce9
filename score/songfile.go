package score

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
)

// songFileVersion is bumped whenever the on-disk shape of Song changes in
// a way that affects decoding of older files.
const songFileVersion = 1

// songFile is the gob-encoded envelope written to disk. It exists
// separately from Song so that the persisted format can carry a version
// tag without polluting the in-memory type used by the player and editor.
type songFile struct {
	Version uint16
	Song    Song
}

func init() {
	gob.Register(Song{})
	gob.Register(songFile{})
}

// EncodeSong serializes a song to w. The encoding is a portable key/value
// representation of every Song field (encoding/gob); there is no bit-exact
// wire format requirement, only round-trip equivalence on decode.
func EncodeSong(w io.Writer, s *Song) error {
	if s == nil {
		return fmt.Errorf("score: cannot encode a nil song")
	}
	return gob.NewEncoder(w).Encode(songFile{Version: songFileVersion, Song: *s})
}

// DecodeSong deserializes a song previously written by EncodeSong.
func DecodeSong(r io.Reader) (*Song, error) {
	var sf songFile
	if err := gob.NewDecoder(r).Decode(&sf); err != nil {
		return nil, fmt.Errorf("score: decode song: %w", err)
	}
	if sf.Version > songFileVersion {
		return nil, fmt.Errorf("score: song file version %d is newer than supported version %d", sf.Version, songFileVersion)
	}
	song := sf.Song
	return &song, nil
}

// MarshalSong is a convenience wrapper around EncodeSong for callers that
// want a byte slice rather than a writer (e.g. embedding in another
// envelope, or a "copy song to clipboard" editor action).
func MarshalSong(s *Song) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeSong(&buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalSong is the inverse of MarshalSong.
func UnmarshalSong(data []byte) (*Song, error) {
	return DecodeSong(bytes.NewReader(data))
}
