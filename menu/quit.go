package menu

import (
	"time"

	"github.com/automoto/dexkiosk/config"
)

// QuitMenu ends the loop as soon as it becomes active.
type QuitMenu struct {
	Base
}

func NewQuit() *QuitMenu { return &QuitMenu{Base: Base{quit: true}} }

func (m *QuitMenu) Name() string                                       { return "quit" }
func (m *QuitMenu) Enter()                                             {}
func (m *QuitMenu) Update(time.Duration, []config.ActionID) Transition { return Stay }
func (m *QuitMenu) Render()                                            {}
