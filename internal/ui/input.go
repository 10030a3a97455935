package ui

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pong/internal/platform"
)

const (
	// HoldTicks is how long a key counts as held after its last press event.
	// Terminals report presses and auto-repeat, never releases.
	HoldTicks   = 8
	eventBuffer = 64
)

// KeyFor converts a key event to a game key
func KeyFor(key tcell.Key, r rune) (platform.Key, bool) {
	switch key {
	case tcell.KeyUp:
		return platform.KeyUp, true
	case tcell.KeyDown:
		return platform.KeyDown, true
	case tcell.KeyEscape:
		return platform.KeyEscape, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return platform.KeyUp, true
		case 's', 'S':
			return platform.KeyDown, true
		}
	}
	return 0, false
}

// IsQuitKey returns true if the key should close the window
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyCtrlC {
		return true
	}
	return key == tcell.KeyRune && (r == 'q' || r == 'Q')
}

// Input is an InputSource fed by tcell events and process signals.
type Input struct {
	events    <-chan tcell.Event
	signals   chan os.Signal
	done      chan struct{}
	resize    func()
	tick      int
	lastPress map[platform.Key]int
	quit      bool
}

// NewInput starts pumping events from the screen. Call Stop to release it.
func NewInput(screen *Screen) *Input {
	events := make(chan tcell.Event, eventBuffer)
	in := newInput(events)
	in.resize = screen.Sync

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-in.done:
				return
			}
		}
	}()

	signal.Notify(in.signals, syscall.SIGINT, syscall.SIGTERM)
	return in
}

func newInput(events <-chan tcell.Event) *Input {
	return &Input{
		events:    events,
		signals:   make(chan os.Signal, 1),
		done:      make(chan struct{}),
		lastPress: make(map[platform.Key]int),
	}
}

// PollQuit drains pending events and advances the key hold window by one tick.
func (in *Input) PollQuit() bool {
	in.tick++
	for {
		select {
		case ev := <-in.events:
			in.handleEvent(ev)
		case <-in.signals:
			in.quit = true
		default:
			return in.quit
		}
	}
}

func (in *Input) IsKeyDown(k platform.Key) bool {
	last, ok := in.lastPress[k]
	return ok && in.tick-last < HoldTicks
}

// Stop ends the event pump and signal handling.
func (in *Input) Stop() {
	signal.Stop(in.signals)
	select {
	case <-in.done:
	default:
		close(in.done)
	}
}

func (in *Input) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsQuitKey(ev.Key(), ev.Rune()) {
			in.quit = true
			return
		}
		if k, ok := KeyFor(ev.Key(), ev.Rune()); ok {
			in.lastPress[k] = in.tick
		}
	case *tcell.EventResize:
		if in.resize != nil {
			in.resize()
		}
	}
}
