package screens

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/perusahaan/pkg/app/components"
	"github.com/kerbaras/perusahaan/pkg/app/styles"
	"github.com/kerbaras/perusahaan/pkg/data"
	"github.com/kerbaras/perusahaan/pkg/services"
)

// FormScreen edits one record with a text input per field. In update mode
// the identifier input is read-only.
type FormScreen[T any] struct {
	schema  *data.Schema[T]
	ctrl    *services.FormController[T]
	id      string
	timeout time.Duration

	inputs  []textinput.Model
	focus   int
	notice  components.Notice
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func NewFormScreen[T any](ctrl *services.FormController[T], schema *data.Schema[T], id string, timeout time.Duration) *FormScreen[T] {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.StatusPending

	inputs := make([]textinput.Model, len(schema.Fields))
	for i, f := range schema.Fields {
		ti := textinput.New()
		ti.Placeholder = f.Label
		ti.CharLimit = 200
		ti.Width = 50
		inputs[i] = ti
	}
	if ctrl.Mode() == services.ModeInsert {
		inputs[0].Placeholder = "kosongkan untuk ID otomatis"
	} else {
		inputs[0].SetValue(id)
	}

	s := &FormScreen[T]{
		schema:  schema,
		ctrl:    ctrl,
		id:      id,
		timeout: timeout,
		inputs:  inputs,
		spinner: sp,
	}
	s.focus = s.nextEditable(-1, 1)
	s.inputs[s.focus].Focus()
	return s
}

func (s *FormScreen[T]) Init() tea.Cmd {
	if s.ctrl.Mode() == services.ModeInsert {
		return textinput.Blink
	}
	s.loading = true
	return tea.Batch(s.spinner.Tick, s.load)
}

func (s *FormScreen[T]) editable(i int) bool {
	return !(s.ctrl.Mode() == services.ModeUpdate && i == 0)
}

// nextEditable walks from i in direction dir, wrapping, to the next input
// the user may type into.
func (s *FormScreen[T]) nextEditable(i, dir int) int {
	n := len(s.inputs)
	for range n {
		i = (i + dir + n) % n
		if s.editable(i) {
			return i
		}
	}
	return 0
}

func (s *FormScreen[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		if msg.from != s {
			return s, nil
		}
		s.loading = false
		if _, ok := s.ctrl.State().(services.Success[T]); ok {
			draft := s.ctrl.Draft()
			for i, f := range s.schema.Fields {
				s.inputs[i].SetValue(f.Get(&draft))
			}
		}

	case submittedMsg:
		if msg.from != s {
			return s, nil
		}
		if msg.err != nil {
			s.notice.Set("error", s.describe(msg.err))
			return s, nil
		}
		if s.ctrl.Mode() == services.ModeInsert {
			return s, switchTo(SwitchScreenMsg{Screen: ScreenList, Entity: s.schema.Name})
		}
		return s, switchTo(SwitchScreenMsg{Screen: ScreenDetail, Entity: s.schema.Name, ID: msg.id})

	case tea.KeyMsg:
		return s.handleKey(msg)

	default:
		// cursor blink
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *FormScreen[T]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, s.back()
	}

	switch s.ctrl.State().(type) {
	case services.Loading[T]:
		return s, nil
	case services.Error[T]:
		if msg.String() == "r" {
			s.loading = true
			return s, tea.Batch(s.spinner.Tick, s.load)
		}
		return s, nil
	}

	switch msg.String() {
	case "tab", "down":
		return s, s.moveFocus(1)
	case "shift+tab", "up":
		return s, s.moveFocus(-1)
	case "ctrl+s":
		if s.ctrl.Submission().Pending() {
			return s, nil
		}
		s.notice.Set("pending", "Menyimpan data...")
		return s, s.submit
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	f := s.schema.Fields[s.focus]
	if err := s.ctrl.UpdateField(f.Name, s.inputs[s.focus].Value()); err != nil {
		s.notice.Set("error", err.Error())
	}
	return s, cmd
}

func (s *FormScreen[T]) moveFocus(dir int) tea.Cmd {
	s.inputs[s.focus].Blur()
	s.focus = s.nextEditable(s.focus, dir)
	return s.inputs[s.focus].Focus()
}

func (s *FormScreen[T]) back() tea.Cmd {
	if s.ctrl.Mode() == services.ModeUpdate {
		return switchTo(SwitchScreenMsg{Screen: ScreenDetail, Entity: s.schema.Name, ID: s.id})
	}
	return switchTo(SwitchScreenMsg{Screen: ScreenList, Entity: s.schema.Name})
}

// describe turns a submit failure into the inline message. Validation
// failures name the field so the user can fix it.
func (s *FormScreen[T]) describe(err error) string {
	var invalid *data.ValidationError
	switch {
	case errors.As(err, &invalid):
		label := invalid.Field
		if f, ok := s.schema.Field(invalid.Field); ok {
			label = f.Label
		}
		return fmt.Sprintf("%s %s", label, invalid.Reason)
	case errors.Is(err, data.ErrDuplicate):
		return "ID sudah digunakan"
	default:
		return "Gagal menyimpan data"
	}
}

func (s *FormScreen[T]) View() string {
	title := "Tambah " + s.schema.Title
	if s.ctrl.Mode() == services.ModeUpdate {
		title = "Ubah " + s.schema.Title
	}
	header := styles.TitleStyle.Render(title)

	var body, help string
	switch s.ctrl.State().(type) {
	case services.Loading[T]:
		body = s.spinner.View() + " Memuat data..."
		help = "esc: batal"
	case services.Error[T]:
		body = styles.StatusError.Render("Error loading data")
		help = "r: coba lagi • esc: batal"
	case services.Success[T]:
		body = s.fields()
		help = "tab/shift+tab: pindah • ctrl+s: simpan • esc: batal"
	}

	parts := []string{header, body}
	if notice := s.notice.View(); notice != "" {
		parts = append(parts, notice)
	}
	parts = append(parts, styles.HelpStyle.Render(help))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *FormScreen[T]) fields() string {
	rows := make([]string, 0, len(s.inputs))
	for i, f := range s.schema.Fields {
		label := f.Label
		if f.Required {
			label += " *"
		}
		if f.Options != nil {
			label += fmt.Sprintf(" (%s)", strings.Join(f.Options, "/"))
		}

		box := styles.InputStyle
		if i == s.focus {
			box = styles.FocusedInputStyle
		}
		input := s.inputs[i].View()
		if !s.editable(i) {
			input = styles.MutedStyle.Render(s.inputs[i].Value())
		}
		rows = append(rows, styles.LabelStyle.Render(label), box.Render(input))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Commands

func (s *FormScreen[T]) load() tea.Msg {
	ctx, cancel := withTimeout(s.timeout)
	defer cancel()
	s.ctrl.Load(ctx)
	return loadedMsg{from: s}
}

func (s *FormScreen[T]) submit() tea.Msg {
	ctx, cancel := withTimeout(s.timeout)
	defer cancel()
	saved, err := s.ctrl.Submit(ctx)
	if err != nil {
		return submittedMsg{from: s, err: err}
	}
	return submittedMsg{from: s, id: s.schema.ID(saved)}
}
