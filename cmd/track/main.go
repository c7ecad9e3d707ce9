// Command track is an interactive terminal player: it loads a persisted
// song, builds a small fixed set of FM instruments, and streams it to the
// default audio device while a status line tracks the playhead.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/fmtrack/engine"
	"github.com/fmtrack/engine/cmd/internal/config"
	"github.com/fmtrack/engine/internal/synth"
	"github.com/fmtrack/engine/score"
)

var (
	flagHz     = flag.Int("hz", 44100, "output sample rate")
	flagReverb = flag.String("reverb", "light", "reverb preset: none, light, medium, hall")
	flagNoUI   = flag.Bool("noui", false, "disable the terminal playhead view")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("track: ")
	flag.Parse()

	if len(flag.Args()) == 0 {
		log.Fatal("Missing song filename")
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	song, err := score.DecodeSong(f)
	f.Close()
	if err != nil {
		log.Fatal(err)
	}

	player := engine.NewPlayer()
	player.SetBPM(song.BPM)

	for i := 0; i < score.NumParts; i++ {
		in := demoInstrument(i)

		// Each instrument gets its own reverb instance: a shared instance
		// would have its delay lines fed out of sample order, since
		// instruments refill their hold buffers independently.
		reverb, err := config.ReverbFromFlag(*flagReverb, *flagHz)
		if err != nil {
			log.Fatal(err)
		}
		if reverb != nil {
			in.AddEffect(reverb)
		}

		player.AddInstrument(in)
	}

	sender := player.Sender()
	for _, sn := range song.Sequence() {
		sender.Send(sn.Part, sn.Note)
	}

	ap := NewAudioPlayer(player, *flagHz, *flagNoUI)
	if err := ap.Run(); err != nil {
		log.Fatal(err)
	}
}

// demoInstrument builds one of a small rotation of FM patches so each of
// a song's four parts gets a distinct timbre. There is no persisted
// instrument format (see the engine's non-goals): instruments are always
// constructed in-process.
func demoInstrument(part int) *synth.Instrument {
	in := synth.NewInstrument(8)

	switch part % 4 {
	case 0: // simple carrier, plucky envelope
		carrier := synth.NewOperator(synth.Sine, false, 1)
		carrier.Env(0.005, 0.15, 0.3, 0.2).Send(0, 1)
		in.AddOperator(carrier)
	case 1: // 2-operator FM bell
		modulator := synth.NewOperator(synth.Sine, false, 3.5)
		modulator.Env(0.001, 0.4, 0, 0.1).Send(1, 2.0)
		carrier := synth.NewOperator(synth.Sine, false, 1)
		carrier.Recv(1, 1, synth.Modulate).Env(0.002, 0.6, 0.2, 0.3).Send(0, 1)
		in.AddOperator(modulator)
		in.AddOperator(carrier)
	case 2: // square bass with slow attack
		carrier := synth.NewOperator(synth.Square, false, 0.5)
		carrier.Env(0.02, 0.1, 0.7, 0.15).Send(0, 0.6)
		in.AddOperator(carrier)
	default: // vibrato-laden sawtooth lead
		lfo := synth.NewOperator(synth.Sine, true, 5.0)
		lfo.Env(-1, 0, 1, 0).Send(1, 0.01)
		carrier := synth.NewOperator(synth.Sawtooth, false, 1)
		carrier.Recv(1, 1, synth.Vibrato).Env(0.01, 0.2, 0.5, 0.25).Send(0, 0.5)
		in.AddOperator(lfo)
		in.AddOperator(carrier)
	}

	return in
}
