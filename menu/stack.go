package menu

import (
	"time"

	"github.com/automoto/dexkiosk/config"
	"github.com/juju/errors"
)

// Stack holds the navigation path from the root screen to the active one.
// A screen appears at most once, so popping always returns to the screen that
// pushed the current one. Popping the root is a no-op.
type Stack struct {
	menus []Menu
}

// NewStack activates root.
func NewStack(root Menu) *Stack {
	s := &Stack{menus: []Menu{root}}
	root.Enter()
	return s
}

func (s *Stack) Active() Menu { return s.menus[len(s.menus)-1] }
func (s *Stack) Root() Menu   { return s.menus[0] }
func (s *Stack) Depth() int   { return len(s.menus) }

// Update advances the active screen and applies its transition.
// It reports whether the active screen changed.
func (s *Stack) Update(dt time.Duration, actions []config.ActionID) bool {
	return s.Apply(s.Active().Update(dt, actions))
}

// Apply changes the active screen and enters it.
func (s *Stack) Apply(t Transition) bool {
	switch {
	case t.IsPush():
		if t.target == nil {
			panic(errors.New("menu: push without target"))
		}
		for _, m := range s.menus {
			if m == t.target {
				panic(errors.Errorf("menu: %s is already on the stack", t.target.Name()))
			}
		}
		s.menus = append(s.menus, t.target)
	case t.IsPop():
		if len(s.menus) == 1 {
			return false
		}
		s.menus[len(s.menus)-1] = nil
		s.menus = s.menus[:len(s.menus)-1]
	default:
		return false
	}
	s.Active().Enter()
	return true
}

func (s *Stack) Render() { s.Active().Render() }

// Quitting reports whether the active screen requested shutdown.
func (s *Stack) Quitting() bool { return s.Active().Quitting() }
