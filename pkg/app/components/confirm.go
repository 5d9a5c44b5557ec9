package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/perusahaan/pkg/app/styles"
)

const DeletePrompt = "Apakah anda yakin ingin menghapus data?"

type ConfirmResult int

const (
	ConfirmNone ConfirmResult = iota
	ConfirmAccepted
	ConfirmCancelled
)

// Confirm is a yes/no dialog guarding a destructive action on Target.
type Confirm struct {
	Prompt string
	Target string
	open   bool
}

func NewConfirm(prompt string) *Confirm {
	return &Confirm{Prompt: prompt}
}

func (c *Confirm) Show(target string) {
	c.Target = target
	c.open = true
}

func (c *Confirm) Hide() {
	c.open = false
}

func (c *Confirm) Visible() bool {
	return c.open
}

// HandleKey closes the dialog on y, n or esc and reports which one it was.
// Other keys are swallowed while the dialog is open.
func (c *Confirm) HandleKey(msg tea.KeyMsg) ConfirmResult {
	if !c.open {
		return ConfirmNone
	}
	switch msg.String() {
	case "y", "Y":
		c.Hide()
		return ConfirmAccepted
	case "n", "N", "esc":
		c.Hide()
		return ConfirmCancelled
	}
	return ConfirmNone
}

func (c *Confirm) View() string {
	if !c.open {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.TextStyle.Bold(true).Render(c.Prompt),
		"",
		styles.HelpStyle.Render("y: ya • n: tidak"),
	)
	return styles.DialogStyle.Render(body)
}
