// Command songdump decodes a persisted song file and prints its contents.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fmtrack/engine/score"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("songdump: ")

	if len(os.Args) <= 1 {
		log.Fatal("Missing song filename")
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	song, err := score.DecodeSong(f)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("BPM: %d  BeatsPerBar: %d  Duration: %.2fs\n", song.BPM, song.BeatsPerBar, song.Duration())
	for part, notes := range song.Parts {
		if len(notes) == 0 {
			continue
		}
		fmt.Printf("part %d (%d notes):\n", part, len(notes))
		for _, n := range notes {
			fmt.Printf("  %-3s%d  beat=%d.%03d  dur=%d  vel=%.2f\n",
				n.Name(), n.Octave(), n.Start.Beat, n.Start.Division, n.Duration, n.Velocity)
		}
	}
}
