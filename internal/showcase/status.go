package showcase

import (
	"strings"

	"charm.land/lipgloss/v2"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/federicobaldini/native-components/internal/ui"
)

// statusKind selects the status bar color.
type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusError
)

// statusModel is the passive status bar: it displays the last widget event
// or guard outcome and never handles input itself.
type statusModel struct {
	Message string
	Kind    statusKind
	Width   int
	NoColor bool
}

func newStatusModel() statusModel {
	return statusModel{Width: 80}
}

func (s *statusModel) set(kind statusKind, message string) {
	s.Kind = kind
	s.Message = message
}

// View renders the bar padded to the window width, message right-justified
// the way counters sit in a pager.
func (s statusModel) View() string {
	target := 80
	if s.Width > 0 {
		target = s.Width
	}
	message := s.Message
	if len(message) > target && target > 3 {
		message = message[:target-3] + "..."
	}
	if pad := target - len(message); pad > 0 {
		message = strings.Repeat(" ", pad) + message
	}
	if s.NoColor {
		return message
	}

	th := ui.CurrentTheme()
	style := lipgloss.NewStyle()
	switch s.Kind {
	case statusError:
		style = style.Foreground(th.StatusError)
	case statusSuccess:
		style = style.Foreground(th.StatusSuccess)
	default:
		style = style.Foreground(th.StatusColor)
	}
	return style.Render(message)
}

// footerView renders the key-hint line.
func footerView(width int, noColor bool, editing bool) string {
	hints := "enter open link · ↑/↓ select · o modal · h hover tooltip · t edit text · d detach · q quit"
	if editing {
		hints = "enter apply · esc cancel"
	}
	if width > 1 {
		hints = runewidth.Truncate(hints, width, "…")
	}
	if noColor {
		return hints
	}
	return lipgloss.NewStyle().Foreground(ui.CurrentTheme().HintFG).Render(hints)
}
