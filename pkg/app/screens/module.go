package screens

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/perusahaan/pkg/services"
)

// Module builds the screens of one entity. Every call returns a fresh screen
// with fresh controllers.
type Module interface {
	Name() string
	Title() string
	NewList() tea.Model
	NewDetail(id string) tea.Model
	NewInsert() tea.Model
	NewUpdate(id string) tea.Model
}

type EntityModule[T any] struct {
	entities *services.EntityController[T]
	timeout  time.Duration
}

var _ Module = (*EntityModule[struct{}])(nil)

// NewEntityModule binds an entity to the generic screens. timeout bounds
// every repository call a screen makes.
func NewEntityModule[T any](entities *services.EntityController[T], timeout time.Duration) *EntityModule[T] {
	return &EntityModule[T]{entities: entities, timeout: timeout}
}

// NewModules returns the modules in menu order.
func NewModules(c *services.Controllers, timeout time.Duration) []Module {
	return []Module{
		NewEntityModule(c.Manajer, timeout),
		NewEntityModule(c.Jenis, timeout),
		NewEntityModule(c.Pemilik, timeout),
		NewEntityModule(c.Properti, timeout),
	}
}

func (m *EntityModule[T]) Name() string  { return m.entities.Schema().Name }
func (m *EntityModule[T]) Title() string { return m.entities.Schema().Title }

func (m *EntityModule[T]) NewList() tea.Model {
	return NewListScreen(m.entities.List(), m.entities.Schema(), m.timeout)
}

func (m *EntityModule[T]) NewDetail(id string) tea.Model {
	return NewDetailScreen(m.entities.Detail(id), m.entities.Schema(), id, m.timeout)
}

func (m *EntityModule[T]) NewInsert() tea.Model {
	return NewFormScreen(m.entities.Insert(), m.entities.Schema(), "", m.timeout)
}

func (m *EntityModule[T]) NewUpdate(id string) tea.Model {
	return NewFormScreen(m.entities.Update(id), m.entities.Schema(), id, m.timeout)
}
