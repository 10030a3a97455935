package platform

import (
	"github.com/pkg/errors"
)

// Context owns the platform handles for the lifetime of a match.
type Context struct {
	Renderer Renderer
	Input    InputSource
	Audio    AudioPlayer
	Clock    Clock
	// ScoreSound is played whenever a point is scored.
	ScoreSound Sound
	// Optional effects, nil unless enabled.
	PaddleSound Sound
	WallSound   Sound

	closers []func() error
}

// OnClose registers a release function. Functions run in reverse order of registration.
func (c *Context) OnClose(fn func() error) {
	c.closers = append(c.closers, fn)
}

// Close releases every registered resource, even if some of them fail.
// It returns the first error encountered. Closing a nil Context is a no-op.
func (c *Context) Close() error {
	if c == nil {
		return nil
	}
	var first error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && first == nil {
			first = errors.Wrap(err, "release platform resource")
		}
	}
	c.closers = nil
	return first
}
