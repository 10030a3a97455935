package app

import (
	"github.com/sirupsen/logrus"

	"github.com/diegok/pong/internal/config"
	"github.com/diegok/pong/internal/game"
	"github.com/diegok/pong/internal/platform"
)

// State is the main loop state.
type State int

const (
	Running State = iota
	Terminating
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "terminating"
}

// App is the main application controller that manages the match lifecycle.
type App struct {
	cfg    *config.Config
	log    *logrus.Logger
	match  *game.MatchState
	render RenderStep
	state  State

	// Diagnostics only
	frames      int
	fps         int
	fpsWindowAt int64
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config, log *logrus.Logger) *App {
	return &App{
		cfg:   cfg,
		log:   log,
		match: game.NewMatch(),
		render: RenderStep{
			Color:   cfg.Render.Color,
			ShowFPS: cfg.Render.ShowFPS,
		},
	}
}

// Run acquires the terminal and audio device, plays until the player quits,
// and releases everything it acquired.
func (a *App) Run() (err error) {
	p, err := Open(a.cfg, a.log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := p.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return a.Loop(p)
}

// Match exposes the match state.
func (a *App) Match() *game.MatchState {
	return a.match
}

// State returns the current loop state.
func (a *App) State() State {
	return a.state
}

// Loop runs ticks until the input asks to quit.
//
// Each tick runs physics, then input, then rendering, so paddle input
// reaches collision checks one tick late.
func (a *App) Loop(p *platform.Context) error {
	a.state = Running
	a.fpsWindowAt = p.Clock.NowMillis()
	a.log.Info("match started")

	for a.state == Running {
		a.tick(p)
	}

	a.log.WithFields(logrus.Fields{
		"left":  a.match.LeftScore,
		"right": a.match.RightScore,
	}).Info("match ended")
	return nil
}

func (a *App) tick(p *platform.Context) {
	frameStart := p.Clock.NowMillis()
	a.countFrames(frameStart)

	ev := game.Step(a.match)
	a.playEvents(p, ev)

	if !game.HandleInput(a.match, ReadControls(p.Input)) {
		a.state = Terminating
	}

	a.frames++
	a.render.Draw(p.Renderer, p.Clock, a.match, frameStart, a.fps)
}

// countFrames rolls the FPS window once a second.
func (a *App) countFrames(now int64) {
	if now < a.fpsWindowAt+1000 {
		return
	}
	a.fps = a.frames
	a.frames = 0
	a.fpsWindowAt = now
	a.log.WithField("fps", a.fps).Debug("frame rate")
}

func (a *App) playEvents(p *platform.Context, ev game.Events) {
	if ev.Scored != game.SideNone {
		a.log.WithFields(logrus.Fields{
			"scorer": ev.Scored.String(),
			"left":   a.match.LeftScore,
			"right":  a.match.RightScore,
		}).Info("point scored")
		play(p.Audio, p.ScoreSound)
	}
	if ev.PaddleHit != game.SideNone {
		play(p.Audio, p.PaddleSound)
	}
	if ev.WallBounce {
		play(p.Audio, p.WallSound)
	}
}

func play(a platform.AudioPlayer, s platform.Sound) {
	if a == nil || s == nil {
		return
	}
	a.Play(s)
}

// ReadControls samples the input source for one tick.
func ReadControls(in platform.InputSource) game.Controls {
	quit := in.PollQuit()
	return game.Controls{
		Quit:   quit,
		Escape: in.IsKeyDown(platform.KeyEscape),
		Up:     in.IsKeyDown(platform.KeyUp),
		Down:   in.IsKeyDown(platform.KeyDown),
	}
}
