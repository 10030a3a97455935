package app

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/diegok/pong/internal/audio"
	"github.com/diegok/pong/internal/clock"
	"github.com/diegok/pong/internal/config"
	"github.com/diegok/pong/internal/platform"
	"github.com/diegok/pong/internal/ui"
)

// opener acquires platform handles. Fields are swapped out in tests.
type opener struct {
	isTerminal func() bool
	openAudio  func(*platform.Context, config.AudioConfig, *logrus.Logger) error
	initScreen func() (*ui.Screen, error)
}

func defaultOpener() opener {
	return opener{
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		openAudio:  openAudio,
		initScreen: ui.InitScreen,
	}
}

// Open acquires the screen, keyboard, audio device and sound assets.
// Any failure releases what was already acquired and returns the error.
func Open(cfg *config.Config, log *logrus.Logger) (*platform.Context, error) {
	return defaultOpener().open(cfg, log)
}

func (o opener) open(cfg *config.Config, log *logrus.Logger) (*platform.Context, error) {
	if !o.isTerminal() {
		return nil, errors.New("pong needs an interactive terminal")
	}

	p := &platform.Context{Clock: clock.NewSystem()}
	if err := o.acquire(p, cfg, log); err != nil {
		if cerr := p.Close(); cerr != nil {
			log.WithError(cerr).Warn("release after failed startup")
		}
		return nil, err
	}
	return p, nil
}

func (o opener) acquire(p *platform.Context, cfg *config.Config, log *logrus.Logger) error {
	if err := o.openAudio(p, cfg.Audio, log); err != nil {
		return err
	}

	screen, err := o.initScreen()
	if err != nil {
		return errors.Wrap(err, "initialize screen")
	}
	p.OnClose(func() error {
		screen.Fini()
		return nil
	})

	input := ui.NewInput(screen)
	p.OnClose(func() error {
		input.Stop()
		return nil
	})

	p.Renderer = ui.NewRenderer(screen, cfg.Render.Color)
	p.Input = input

	w, h := screen.Size()
	log.WithFields(logrus.Fields{"cols": w, "rows": h}).Info("screen ready")
	return nil
}

// openAudio loads sounds before the screen takes over the terminal so
// asset errors are reported on a usable terminal.
func openAudio(p *platform.Context, cfg config.AudioConfig, log *logrus.Logger) error {
	if !cfg.Enabled {
		log.Info("audio disabled")
		p.Audio = audio.Silent{}
		return nil
	}

	player := audio.NewPlayer()
	sound, err := player.LoadSound(cfg.Sound)
	if err != nil {
		return errors.Wrap(err, "load score sound")
	}
	if err := player.Init(); err != nil {
		return err
	}
	p.OnClose(player.Close)

	p.Audio = player
	p.ScoreSound = sound
	if cfg.Effects {
		p.PaddleSound = player.Blip(880, 50*time.Millisecond)
		p.WallSound = player.Blip(440, 30*time.Millisecond)
	}

	log.WithFields(logrus.Fields{
		"sound":   cfg.Sound,
		"samples": sound.Len(),
		"effects": cfg.Effects,
	}).Info("audio ready")
	return nil
}
