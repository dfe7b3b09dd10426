// Package menu implements the kiosk screens and the stack that navigates them.
//
// Screens never draw or play anything directly: they talk to the Renderer and
// AudioOut ports, and move the shared dex cursor. Every call happens on the
// loop goroutine.
package menu

import (
	"time"

	"github.com/automoto/dexkiosk/config"
)

// Menu is one screen of the kiosk.
type Menu interface {
	Name() string
	// Enter runs each time the screen becomes active, including when a child pops back to it.
	Enter()
	// Update consumes one frame of actions. Only the first matching action in the
	// screen's priority order is acted upon.
	Update(dt time.Duration, actions []config.ActionID) Transition
	Render()
	Quitting() bool
}

// Base is embedded by every screen.
type Base struct {
	quit bool
}

func (b *Base) Quitting() bool { return b.quit }

type transitionKind int

const (
	stay transitionKind = iota
	push
	pop
)

// Transition is returned by Update to change the active screen.
type Transition struct {
	kind   transitionKind
	target Menu
}

// Stay keeps the current screen active.
var Stay = Transition{}

// Push activates target on top of the current screen.
func Push(target Menu) Transition { return Transition{kind: push, target: target} }

// Pop reactivates the screen below the current one.
func Pop() Transition { return Transition{kind: pop} }

func (t Transition) IsStay() bool { return t.kind == stay }
func (t Transition) IsPush() bool { return t.kind == push }
func (t Transition) IsPop() bool  { return t.kind == pop }
func (t Transition) Target() Menu { return t.target }

func (t Transition) String() string {
	switch t.kind {
	case push:
		return "push:" + t.target.Name()
	case pop:
		return "pop"
	}
	return "stay"
}

func has(actions []config.ActionID, a config.ActionID) bool {
	for _, x := range actions {
		if x == a {
			return true
		}
	}
	return false
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
