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

type ListScreen[T any] struct {
	schema  *data.Schema[T]
	ctrl    *services.ListController[T]
	timeout time.Duration

	list    *components.EntityList
	confirm *components.Confirm
	notice  components.Notice
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func NewListScreen[T any](ctrl *services.ListController[T], schema *data.Schema[T], timeout time.Duration) *ListScreen[T] {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.StatusPending

	return &ListScreen[T]{
		schema:  schema,
		ctrl:    ctrl,
		timeout: timeout,
		list:    components.NewEntityList("Tidak ada data " + schema.Name),
		confirm: components.NewConfirm(components.DeletePrompt),
		spinner: sp,
	}
}

func (s *ListScreen[T]) Init() tea.Cmd {
	return s.reload()
}

func (s *ListScreen[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.list.Width = msg.Width - 4
		s.list.Height = msg.Height - 10

	case spinner.TickMsg:
		if !s.loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case loadedMsg:
		if msg.from != s {
			return s, nil
		}
		s.loading = false
		s.sync()

	case deletedMsg:
		if msg.from != s {
			return s, nil
		}
		if msg.err != nil {
			s.notice.Set("error", "Gagal menghapus data")
			return s, nil
		}
		s.notice.Set("success", "Data berhasil dihapus")
		return s, s.reload()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *ListScreen[T]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if s.confirm.Visible() {
		if s.confirm.HandleKey(msg) == components.ConfirmAccepted {
			s.notice.Set("pending", "Menghapus data...")
			return s, s.remove(s.confirm.Target)
		}
		return s, nil
	}

	if msg.String() == "esc" {
		return s, switchTo(SwitchScreenMsg{Screen: ScreenMenu})
	}

	switch s.ctrl.State().(type) {
	case services.Loading[[]T]:
		return s, nil

	case services.Error[[]T]:
		switch msg.String() {
		case "r":
			return s, s.retry()
		case "a":
			return s, switchTo(SwitchScreenMsg{Screen: ScreenInsert, Entity: s.schema.Name})
		}

	case services.Success[[]T]:
		switch msg.String() {
		case "up", "k":
			s.list.Prev()
		case "down", "j":
			s.list.Next()
		case "r":
			return s, s.reload()
		case "a":
			return s, switchTo(SwitchScreenMsg{Screen: ScreenInsert, Entity: s.schema.Name})
		case "enter":
			if selected := s.list.Selected(); selected != nil {
				return s, switchTo(SwitchScreenMsg{Screen: ScreenDetail, Entity: s.schema.Name, ID: selected.ID})
			}
		case "e":
			if selected := s.list.Selected(); selected != nil {
				return s, switchTo(SwitchScreenMsg{Screen: ScreenUpdate, Entity: s.schema.Name, ID: selected.ID})
			}
		case "d":
			if selected := s.list.Selected(); selected != nil {
				s.confirm.Show(selected.ID)
			}
		}
	}
	return s, nil
}

// sync copies a successful load into the list component.
func (s *ListScreen[T]) sync() {
	success, ok := s.ctrl.State().(services.Success[[]T])
	if !ok {
		return
	}
	items := make([]components.EntityListItem, len(success.Data))
	for i, v := range success.Data {
		items[i] = listItem(s.schema, v)
	}
	s.list.SetItems(items)
}

func listItem[T any](schema *data.Schema[T], v T) components.EntityListItem {
	values := schema.Values(v)
	details := []string{values[0]}
	for _, value := range values[2:] {
		if value != "" && len(details) < 4 {
			details = append(details, value)
		}
	}
	return components.EntityListItem{ID: values[0], Title: values[1], Details: details}
}

func (s *ListScreen[T]) View() string {
	header := styles.TitleStyle.Render(fmt.Sprintf("Daftar %s", s.schema.Title))

	var body, help string
	switch state := s.ctrl.State().(type) {
	case services.Loading[[]T]:
		body = s.spinner.View() + " Memuat data..."
		help = "esc: kembali"
	case services.Error[[]T]:
		body = styles.StatusError.Render("Gagal memuat data")
		help = "r: coba lagi • a: tambah • esc: kembali"
	case services.Success[[]T]:
		body = s.list.View()
		if len(state.Data) == 0 {
			help = "a: tambah • r: muat ulang • esc: kembali"
		} else {
			help = "↑/k ↓/j: pilih • enter: detail • a: tambah • e: ubah • d: hapus • r: muat ulang • esc: kembali"
		}
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

// Commands

func (s *ListScreen[T]) reload() tea.Cmd {
	s.loading = true
	return tea.Batch(s.spinner.Tick, s.load)
}

func (s *ListScreen[T]) retry() tea.Cmd {
	s.loading = true
	return tea.Batch(s.spinner.Tick, func() tea.Msg {
		ctx, cancel := withTimeout(s.timeout)
		defer cancel()
		s.ctrl.Retry(ctx)
		return loadedMsg{from: s}
	})
}

func (s *ListScreen[T]) load() tea.Msg {
	ctx, cancel := withTimeout(s.timeout)
	defer cancel()
	s.ctrl.Load(ctx)
	return loadedMsg{from: s}
}

func (s *ListScreen[T]) remove(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(s.timeout)
		defer cancel()
		err := s.ctrl.Delete(ctx, id)
		return deletedMsg{from: s, err: err}
	}
}
