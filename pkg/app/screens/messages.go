package screens

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	ScreenMenu   = "menu"
	ScreenList   = "list"
	ScreenDetail = "detail"
	ScreenInsert = "insert"
	ScreenUpdate = "update"
)

// SwitchScreenMsg asks the root screen to mount a fresh screen.
type SwitchScreenMsg struct {
	Screen string
	Entity string
	ID     string
}

func switchTo(msg SwitchScreenMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// screenMsg marks results of commands started by a screen. from is the
// screen that started the command; results for unmounted screens are ignored.
type screenMsg interface {
	origin() tea.Model
}

type loadedMsg struct {
	from tea.Model
}

type deletedMsg struct {
	from tea.Model
	err  error
}

type submittedMsg struct {
	from tea.Model
	id   string
	err  error
}

func (m loadedMsg) origin() tea.Model    { return m.from }
func (m deletedMsg) origin() tea.Model   { return m.from }
func (m submittedMsg) origin() tea.Model { return m.from }

const defaultTimeout = 10 * time.Second

func withTimeout(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return context.WithTimeout(context.Background(), timeout)
}
