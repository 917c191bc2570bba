package page

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Width(7)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	cardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Terminal is a Document that can print its output elements as a card.
type Terminal struct {
	*Document

	out    io.Writer
	fields []string
	mu     sync.Mutex
}

// NewTerminal prints fields, in order, whenever Flush is called.
func NewTerminal(out io.Writer, input string, fields ...string) *Terminal {
	return &Terminal{
		Document: NewDocument(append([]string{input}, fields...)...),
		out:      out,
		fields:   fields,
	}
}

// View renders the current output elements.
func (t *Terminal) View() string {
	rows := make([]string, 0, len(t.fields))
	for _, f := range t.fields {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(f),
			valueStyle.Render(t.Text(f)),
		))
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (t *Terminal) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := fmt.Fprintln(t.out, t.View())
	return err
}

// Printf writes a line outside the card, serialized with Flush.
func (t *Terminal) Printf(format string, a ...any) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := fmt.Fprintf(t.out, format+"\n", a...)
	return err
}
