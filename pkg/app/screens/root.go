package screens

import (
	tea "github.com/charmbracelet/bubbletea"
)

// RootScreen owns navigation. Every SwitchScreenMsg mounts a fresh screen, so
// controllers and their state never outlive the screen that created them.
type RootScreen struct {
	modules map[string]Module
	order   []Module
	current tea.Model

	width  int
	height int
}

func NewRootScreen(modules []Module) *RootScreen {
	byName := make(map[string]Module, len(modules))
	for _, m := range modules {
		byName[m.Name()] = m
	}
	return &RootScreen{
		modules: byName,
		order:   modules,
		current: NewMenuScreen(modules),
	}
}

// Current is the mounted screen.
func (r *RootScreen) Current() tea.Model {
	return r.current
}

func (r *RootScreen) Init() tea.Cmd {
	return r.current.Init()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return r, tea.Quit
		}

	case SwitchScreenMsg:
		return r, r.mount(msg)

	case screenMsg:
		if msg.origin() != r.current {
			return r, nil
		}
	}

	var cmd tea.Cmd
	r.current, cmd = r.current.Update(msg)
	return r, cmd
}

func (r *RootScreen) mount(msg SwitchScreenMsg) tea.Cmd {
	var next tea.Model
	m, ok := r.modules[msg.Entity]
	switch {
	case msg.Screen == ScreenMenu || !ok:
		next = NewMenuScreen(r.order)
	case msg.Screen == ScreenList:
		next = m.NewList()
	case msg.Screen == ScreenDetail:
		next = m.NewDetail(msg.ID)
	case msg.Screen == ScreenInsert:
		next = m.NewInsert()
	case msg.Screen == ScreenUpdate:
		next = m.NewUpdate(msg.ID)
	default:
		next = NewMenuScreen(r.order)
	}

	if r.width > 0 {
		next, _ = next.Update(tea.WindowSizeMsg{Width: r.width, Height: r.height})
	}
	r.current = next
	return next.Init()
}

func (r *RootScreen) View() string {
	return r.current.View()
}
