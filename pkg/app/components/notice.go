package components

import (
	"github.com/kerbaras/perusahaan/pkg/app/styles"
)

// Notice is a one-line status message shown under a screen, e.g. the
// outcome of a delete or a submit.
type Notice struct {
	Status string // "pending", "success" or "error"
	Text   string
}

func (n *Notice) Set(status, text string) {
	n.Status = status
	n.Text = text
}

func (n *Notice) Clear() {
	n.Status = ""
	n.Text = ""
}

func (n *Notice) View() string {
	if n.Text == "" {
		return ""
	}
	return styles.StatusStyle(n.Status).Render(n.Text)
}
