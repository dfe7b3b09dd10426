// Package app drives the kiosk: it polls input, advances the active screen and
// presents each frame.
package app

import (
	"context"
	"time"

	"github.com/automoto/dexkiosk/config"
	"github.com/automoto/dexkiosk/menu"
)

// Controller turns device input into one frame of actions, in arrival order.
type Controller interface {
	Poll() []config.ActionID
}

// Loop owns the screen stack. It is not safe for concurrent use.
type Loop struct {
	stack      *menu.Stack
	controller Controller
	renderer   menu.Renderer
	done       bool
}

// NewLoop activates root.
func NewLoop(root menu.Menu, c Controller, r menu.Renderer) *Loop {
	return &Loop{
		stack:      menu.NewStack(root),
		controller: c,
		renderer:   r,
	}
}

func (l *Loop) Stack() *menu.Stack { return l.stack }
func (l *Loop) Done() bool         { return l.done }

// Step runs one frame and reports whether the loop should keep going.
func (l *Loop) Step(dt time.Duration) bool {
	if l.done {
		return false
	}
	actions := l.controller.Poll()
	l.stack.Update(dt, actions)
	if l.stack.Quitting() || quitRequested(actions) {
		l.done = true
		return false
	}
	l.stack.Render()
	l.renderer.Present()
	return true
}

// Run steps until quit or ctx is done, sleeping config.Loop.Delay between frames.
func (l *Loop) Run(ctx context.Context) error {
	last := time.Now()
	timer := time.NewTimer(config.Loop.Delay)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
		now := time.Now()
		if !l.Step(now.Sub(last)) {
			return nil
		}
		last = now
		timer.Reset(config.Loop.Delay)
	}
}

func quitRequested(actions []config.ActionID) bool {
	for _, a := range actions {
		if a == config.ActionQuit {
			return true
		}
	}
	return false
}

// ScriptedController replays fixed frames, then reports no input.
type ScriptedController struct {
	Frames [][]config.ActionID
}

func (c *ScriptedController) Poll() []config.ActionID {
	if len(c.Frames) == 0 {
		return nil
	}
	f := c.Frames[0]
	c.Frames = c.Frames[1:]
	return f
}
