package audio

import (
	"math"
	"os"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"github.com/pkg/errors"

	"github.com/diegok/pong/internal/platform"
)

const (
	sampleRate      = beep.SampleRate(44100)
	resampleQuality = 4
)

// Clip is a decoded sound held in memory so it can be replayed without touching the disk.
type Clip struct {
	buf *beep.Buffer
}

// Len returns the clip length in samples.
func (c *Clip) Len() int {
	if c == nil || c.buf == nil {
		return 0
	}
	return c.buf.Len()
}

// Player plays clips through the system speaker.
type Player struct {
	format beep.Format
	open   bool
}

// NewPlayer creates a player. Call Init before Play has any effect.
func NewPlayer() *Player {
	return &Player{
		format: beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2},
	}
}

// Init opens the audio device
func (p *Player) Init() error {
	if p.open {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return errors.Wrap(err, "open audio device")
	}
	p.open = true
	return nil
}

// Close shuts down the audio device
func (p *Player) Close() error {
	if p.open {
		speaker.Close()
		p.open = false
	}
	return nil
}

// LoadSound decodes a WAV file into memory, resampling it to the device rate.
func (p *Player) LoadSound(path string) (platform.Sound, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open sound")
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != p.format.SampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, p.format.SampleRate, streamer)
	}

	buf := beep.NewBuffer(p.format)
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	if buf.Len() == 0 {
		return nil, errors.Errorf("sound %s is empty", path)
	}
	return &Clip{buf: buf}, nil
}

// Play starts a clip and returns immediately. Clips from another player are ignored.
func (p *Player) Play(s platform.Sound) {
	clip, ok := s.(*Clip)
	if !p.open || !ok || clip.Len() == 0 {
		return
	}
	speaker.Play(clip.buf.Streamer(0, clip.buf.Len()))
}

// Blip synthesizes a short square wave clip.
func (p *Player) Blip(freq float64, duration time.Duration) *Clip {
	buf := beep.NewBuffer(p.format)
	buf.Append(squareWave(freq, duration))
	return &Clip{buf: buf}
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, i > 0
			}
			val := 0.2 // volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// Silent is an AudioPlayer for when sound is turned off.
type Silent struct{}

func (Silent) LoadSound(string) (platform.Sound, error) {
	return (*Clip)(nil), nil
}

func (Silent) Play(platform.Sound) {}
