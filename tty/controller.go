package tty

import (
	"sync"

	"github.com/automoto/dexkiosk/config"
	"github.com/gdamore/tcell/v2"
)

var keyBindings = map[tcell.Key]config.ActionID{
	tcell.KeyLeft:   config.ActionLeft,
	tcell.KeyRight:  config.ActionRight,
	tcell.KeyUp:     config.ActionUp,
	tcell.KeyDown:   config.ActionDown,
	tcell.KeyEnter:  config.ActionConfirm,
	tcell.KeyEscape: config.ActionQuit,
	tcell.KeyCtrlC:  config.ActionQuit,
}

// Controller collects terminal events on a background goroutine; Poll drains them.
type Controller struct {
	mu      sync.Mutex
	pending []config.ActionID
	buttons tcell.ButtonMask
	done    chan struct{}
}

// NewController starts reading events from screen. It stops once the screen is finalized.
func NewController(screen tcell.Screen) *Controller {
	screen.EnableMouse()
	c := &Controller{done: make(chan struct{})}
	go func() {
		defer close(c.done)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			c.handle(ev)
		}
	}()
	return c
}

// Done is closed when the event goroutine exits.
func (c *Controller) Done() <-chan struct{} { return c.done }

func (c *Controller) Poll() []config.ActionID {
	c.mu.Lock()
	defer c.mu.Unlock()
	actions := c.pending
	c.pending = nil
	return actions
}

func (c *Controller) handle(ev tcell.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if a, ok := keyBindings[ev.Key()]; ok {
			c.pending = append(c.pending, a)
		} else if ev.Key() == tcell.KeyRune && ev.Rune() == 'q' {
			c.pending = append(c.pending, config.ActionQuit)
		}
	case *tcell.EventMouse:
		// A click is reported on release.
		buttons := ev.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)
		if c.buttons != 0 && buttons == 0 {
			c.pending = append(c.pending, config.ActionClick)
		}
		c.buttons = buttons
	}
}
