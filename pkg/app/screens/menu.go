package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/perusahaan/pkg/app/styles"
)

// MenuScreen is the home screen listing the entities.
type MenuScreen struct {
	modules  []Module
	selected int
	width    int
	height   int
}

func NewMenuScreen(modules []Module) *MenuScreen {
	return &MenuScreen{modules: modules}
}

func (s *MenuScreen) Init() tea.Cmd {
	return nil
}

func (s *MenuScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q":
			return s, tea.Quit
		case "up", "k":
			s.selected = (s.selected - 1 + len(s.modules)) % len(s.modules)
		case "down", "j":
			s.selected = (s.selected + 1) % len(s.modules)
		case "enter":
			return s, s.open(s.selected)
		default:
			// 1-9 jump straight to an entity
			if len(key) == 1 && key[0] >= '1' && int(key[0]-'1') < len(s.modules) {
				s.selected = int(key[0] - '1')
				return s, s.open(s.selected)
			}
		}
	}
	return s, nil
}

func (s *MenuScreen) open(i int) tea.Cmd {
	return switchTo(SwitchScreenMsg{Screen: ScreenList, Entity: s.modules[i].Name()})
}

func (s *MenuScreen) View() string {
	header := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("🏢 Manajemen Properti"),
		styles.SubtitleStyle.Render("Pilih data yang ingin dikelola"),
	)

	entries := make([]string, len(s.modules))
	for i, m := range s.modules {
		label := fmt.Sprintf("%d. Data %s", i+1, m.Title())
		if i == s.selected {
			entries[i] = styles.ActiveTabStyle.Render(label)
		} else {
			entries[i] = styles.InactiveTabStyle.Render(label)
		}
	}

	help := styles.HelpStyle.Render("↑/k ↓/j: pilih • enter: buka • q: keluar")
	return lipgloss.JoinVertical(lipgloss.Left, header, lipgloss.JoinVertical(lipgloss.Left, entries...), help)
}
