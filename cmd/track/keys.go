package main

import (
	"atomicgo.dev/keyboard"
	"atomicgo.dev/keyboard/keys"
)

// setupKeyboardHandlers maps the player's control surface onto a small
// set of keystrokes: space toggles pause, m toggles mute, +/- nudge the
// tempo, r resets the playhead and drops all pending notes.
func (ap *AudioPlayer) setupKeyboardHandlers() {
	ap.wg.Add(1)
	go func() {
		defer ap.wg.Done()
		keyboard.Listen(func(key keys.Key) (stop bool, err error) {
			if key.Code == keys.CtrlC || key.Code == keys.Escape {
				ap.Stop()
				return true, nil
			}

			ap.handleKeyPress(key)
			return false, nil
		})
		close(ap.keyboardDoneCh)
	}()
}

func (ap *AudioPlayer) handleKeyPress(key keys.Key) {
	switch key.Code {
	case keys.Space:
		state := ap.player.Snapshot()
		ap.player.SetPaused(!state.Paused)

	case keys.RuneKey:
		if len(key.Runes) == 0 {
			return
		}
		switch key.Runes[0] {
		case 'm':
			state := ap.player.Snapshot()
			ap.player.SetMute(!state.Mute)
		case 'r':
			ap.player.Reset()
		case '+':
			ap.nudgeBPM(5)
		case '-':
			ap.nudgeBPM(-5)
		}
	}
}

func (ap *AudioPlayer) nudgeBPM(delta int) {
	bps := ap.player.Snapshot().BPS
	bpm := int(bps*60) + delta
	if bpm < 1 {
		bpm = 1
	}
	ap.player.SetBPM(uint32(bpm))
}
