// Package config turns command-line flag values into engine components,
// the way cmd/track wires up a Player before opening an audio stream.
package config

import (
	"fmt"

	"github.com/fmtrack/engine/internal/effect"
)

// ReverbFromFlag builds an effect.Effect implementing the reverb preset
// named by the -reverb flag. "none" returns nil: the caller should skip
// adding an effect rather than add a no-op one.
func ReverbFromFlag(reverb string, sampleRate int) (effect.Effect, error) {
	switch reverb {
	case "none":
		return nil, nil
	case "light":
		return effect.NewReverb(sampleRate, 0.2), nil
	case "medium":
		return effect.NewReverb(sampleRate, 0.35), nil
	case "hall":
		return effect.NewReverb(sampleRate, 0.5), nil
	default:
		return nil, fmt.Errorf("unrecognized reverb setting %q", reverb)
	}
}
