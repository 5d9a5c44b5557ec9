package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/perusahaan/pkg/app/styles"
)

// EntityListItem is one row of an EntityList.
type EntityListItem struct {
	ID      string
	Title   string
	Details []string
}

type EntityList struct {
	Items         []EntityListItem
	SelectedIndex int
	Width         int
	Height        int
	EmptyMessage  string
}

func NewEntityList(emptyMessage string) *EntityList {
	return &EntityList{
		Items:         []EntityListItem{},
		SelectedIndex: 0,
		Width:         80,
		Height:        20,
		EmptyMessage:  emptyMessage,
	}
}

func (m *EntityList) SetItems(items []EntityListItem) {
	m.Items = items
	if m.SelectedIndex >= len(items) && len(items) > 0 {
		m.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		m.SelectedIndex = 0
	}
}

func (m *EntityList) Next() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex++
	if m.SelectedIndex >= len(m.Items) {
		m.SelectedIndex = 0
	}
}

func (m *EntityList) Prev() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex--
	if m.SelectedIndex < 0 {
		m.SelectedIndex = len(m.Items) - 1
	}
}

func (m *EntityList) Selected() *EntityListItem {
	if len(m.Items) == 0 || m.SelectedIndex >= len(m.Items) {
		return nil
	}
	return &m.Items[m.SelectedIndex]
}

// window returns the slice bounds of the cards that fit, keeping the
// selection visible. Each card takes four lines.
func (m *EntityList) window() (int, int) {
	visible := max(1, m.Height/4)
	if len(m.Items) <= visible {
		return 0, len(m.Items)
	}
	start := max(0, m.SelectedIndex-visible+1)
	return start, min(len(m.Items), start+visible)
}

func (m *EntityList) View() string {
	if len(m.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render(m.EmptyMessage)
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder
	start, end := m.window()
	for i := start; i < end; i++ {
		item := m.Items[i]
		cardStyle := styles.CardStyle
		title := styles.TextStyle.Bold(true).Render(item.Title)
		if i == m.SelectedIndex {
			cardStyle = styles.ActiveCardStyle
			title = styles.SelectedStyle.Render(item.Title)
		}

		details := styles.MutedStyle.Render(strings.Join(item.Details, " • "))
		card := cardStyle.Width(max(20, m.Width-4)).Render(lipgloss.JoinVertical(lipgloss.Left, title, details))
		b.WriteString(card)
		b.WriteString("\n")
	}
	if end-start < len(m.Items) {
		b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("%d dari %d", m.SelectedIndex+1, len(m.Items))))
	}
	return b.String()
}
