package screens

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/perusahaan/pkg/app/components"
	"github.com/kerbaras/perusahaan/pkg/app/styles"
	"github.com/kerbaras/perusahaan/pkg/data"
	"github.com/kerbaras/perusahaan/pkg/services"
)

type DetailScreen[T any] struct {
	schema  *data.Schema[T]
	ctrl    *services.DetailController[T]
	id      string
	timeout time.Duration

	confirm *components.Confirm
	notice  components.Notice
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func NewDetailScreen[T any](ctrl *services.DetailController[T], schema *data.Schema[T], id string, timeout time.Duration) *DetailScreen[T] {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.StatusPending

	return &DetailScreen[T]{
		schema:  schema,
		ctrl:    ctrl,
		id:      id,
		timeout: timeout,
		confirm: components.NewConfirm(components.DeletePrompt),
		spinner: sp,
	}
}

// Init loads the record once, when the screen is mounted.
func (s *DetailScreen[T]) Init() tea.Cmd {
	return s.refresh()
}

func (s *DetailScreen[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case spinner.TickMsg:
		if !s.loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case loadedMsg:
		if msg.from == s {
			s.loading = false
		}

	case deletedMsg:
		if msg.from != s {
			return s, nil
		}
		if msg.err != nil {
			s.notice.Set("error", "Gagal menghapus data")
			return s, nil
		}
		return s, switchTo(SwitchScreenMsg{Screen: ScreenList, Entity: s.schema.Name})

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *DetailScreen[T]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if s.confirm.Visible() {
		if s.confirm.HandleKey(msg) == components.ConfirmAccepted {
			s.notice.Set("pending", "Menghapus data...")
			return s, s.remove()
		}
		return s, nil
	}

	if msg.String() == "esc" {
		return s, switchTo(SwitchScreenMsg{Screen: ScreenList, Entity: s.schema.Name})
	}

	switch s.ctrl.State().(type) {
	case services.Loading[T]:
	case services.Error[T]:
		if msg.String() == "r" {
			return s, s.refresh()
		}
	case services.Success[T]:
		switch msg.String() {
		case "r":
			return s, s.refresh()
		case "e":
			return s, switchTo(SwitchScreenMsg{Screen: ScreenUpdate, Entity: s.schema.Name, ID: s.id})
		case "d":
			s.confirm.Show(s.id)
		}
	}
	return s, nil
}

func (s *DetailScreen[T]) View() string {
	header := styles.TitleStyle.Render(fmt.Sprintf("Detail %s", s.schema.Title))

	var body, help string
	switch state := s.ctrl.State().(type) {
	case services.Loading[T]:
		body = s.spinner.View() + " Memuat data..."
		help = "esc: kembali"
	case services.Error[T]:
		body = styles.StatusError.Render("Error loading data")
		help = "r: coba lagi • esc: kembali"
	case services.Success[T]:
		body = s.card(state.Data)
		help = "e: ubah • d: hapus • r: muat ulang • esc: kembali"
	}

	parts := []string{header, body}
	if s.confirm.Visible() {
		parts = append(parts, s.confirm.View())
	}
	if notice := s.notice.View(); notice != "" {
		parts = append(parts, notice)
	}
	parts = append(parts, styles.HelpStyle.Render(help))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *DetailScreen[T]) card(v T) string {
	width := 0
	for _, f := range s.schema.Fields {
		width = max(width, lipgloss.Width(f.Label))
	}

	rows := make([]string, 0, len(s.schema.Fields))
	for _, f := range s.schema.Fields {
		value := f.Get(&v)
		rendered := styles.TextStyle.Render(value)
		if f.Options != nil {
			rendered = styles.StatusStyle(value).Render(value)
		}
		if value == "" {
			rendered = styles.MutedStyle.Render("-")
		}
		label := styles.LabelStyle.Width(width).Render(f.Label)
		rows = append(rows, label+"  "+rendered)
	}
	return styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// Commands

func (s *DetailScreen[T]) refresh() tea.Cmd {
	s.loading = true
	return tea.Batch(s.spinner.Tick, func() tea.Msg {
		ctx, cancel := withTimeout(s.timeout)
		defer cancel()
		s.ctrl.LoadDetail(ctx, s.id)
		return loadedMsg{from: s}
	})
}

func (s *DetailScreen[T]) remove() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(s.timeout)
		defer cancel()
		err := s.ctrl.Delete(ctx)
		return deletedMsg{from: s, err: err}
	}
}
