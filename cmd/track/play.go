package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/gordonklaus/portaudio"

	"github.com/fmtrack/engine"
	"github.com/fmtrack/engine/sink"
)

const (
	escape     = "\x1b["
	hideCursor = escape + "?25l"
	showCursor = escape + "?25h"
)

var (
	green  = color.New(color.FgGreen).SprintfFunc()
	yellow = color.New(color.FgYellow).SprintfFunc()
	cyan   = color.New(color.FgCyan).SprintfFunc()
)

// AudioPlayer owns the PortAudio stream and the terminal status line.
type AudioPlayer struct {
	player     *engine.Player
	adapter    *sink.Adapter
	sampleRate int
	noUI       bool

	stream *portaudio.Stream

	ctx            context.Context
	cancelFn       context.CancelFunc
	wg             sync.WaitGroup
	stopOnce       sync.Once
	keyboardDoneCh chan struct{}
}

// NewAudioPlayer wraps player with a PortAudio stream at sampleRate.
func NewAudioPlayer(player *engine.Player, sampleRate int, noUI bool) *AudioPlayer {
	ctx, cancel := context.WithCancel(context.Background())
	return &AudioPlayer{
		player:         player,
		adapter:        sink.NewAdapter(player, 2, sampleRate),
		sampleRate:     sampleRate,
		noUI:           noUI,
		ctx:            ctx,
		cancelFn:       cancel,
		keyboardDoneCh: make(chan struct{}),
	}
}

// Run initializes PortAudio, opens the default output stream, and blocks
// rendering a status line until stopped by Ctrl+C/Escape or SIGINT. It
// does not stop on its own when the song ends.
func (ap *AudioPlayer) Run() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}

	stream, err := portaudio.OpenDefaultStream(0, 2, float64(ap.sampleRate), portaudio.FramesPerBufferUnspecified, ap.streamCallback)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	ap.stream = stream

	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}

	ap.setupSignalHandlers()
	ap.setupKeyboardHandlers()

	if !ap.noUI {
		fmt.Print(hideCursor)
		defer fmt.Print(showCursor)
	}

	<-ap.ctx.Done()

	select {
	case <-ap.keyboardDoneCh:
	case <-time.After(500 * time.Millisecond):
	}

	ap.wg.Wait()
	return nil
}

func (ap *AudioPlayer) streamCallback(out []int16) {
	ap.player.Lock()
	ap.adapter.RenderInt16(out)
	ap.player.Unlock()
	state := ap.player.Snapshot()

	if !ap.noUI {
		ap.renderStatus(state)
	}
}

func (ap *AudioPlayer) renderStatus(state engine.State) {
	mute := ""
	if state.Mute {
		mute = yellow(" MUTE")
	}
	paused := ""
	if state.Paused {
		paused = yellow(" PAUSED")
	}
	fmt.Printf("\r%s %s%s%s  ", green("t=%6.2fs", state.PlayheadSeconds), cyan("bps=%.2f", state.BPS), mute, paused)
}

func (ap *AudioPlayer) setupSignalHandlers() {
	sigch := make(chan os.Signal, 5)
	signal.Notify(sigch, syscall.SIGINT)

	ap.wg.Add(1)
	go func() {
		defer ap.wg.Done()
		select {
		case <-ap.ctx.Done():
		case <-sigch:
			ap.Stop()
		}
	}()
}

// Stop tears down the audio stream and PortAudio session exactly once.
func (ap *AudioPlayer) Stop() {
	ap.stopOnce.Do(func() {
		ap.cancelFn()
		if ap.stream != nil {
			ap.stream.Stop()
			ap.stream.Close()
		}
		portaudio.Terminate()
	})
}
