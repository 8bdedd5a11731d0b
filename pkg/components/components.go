// Package components is the public widget surface: a confirmation modal, a
// hover tooltip, and a navigation guard, all sharing the same lifecycle
// (construct once, attach for interactivity, detach without losing state).
// The implementation lives in internal packages; this package re-exports
// the stable pieces host applications compose with.
package components

import (
	"os"
	"strconv"

	"golang.org/x/term"

	"github.com/federicobaldini/native-components/internal/expr"
	"github.com/federicobaldini/native-components/internal/guard"
	"github.com/federicobaldini/native-components/internal/ui"
)

// defaultFallbackTermWidth is used when terminal size cannot be detected.
const defaultFallbackTermWidth = 120

// Widget types.
type (
	// ConfirmModal is a confirmation dialog driven by the "open" attribute.
	ConfirmModal = ui.ConfirmModal
	// Tooltip is a hover bubble driven by the "text" attribute.
	Tooltip = ui.Tooltip
	// Boundary is a widget's private presentation scope with slots.
	Boundary = ui.Boundary
	// Event is a confirm/cancel notification.
	Event = ui.Event
	// Listener receives emitted events.
	Listener = ui.Listener
	// Subscription is the stable handle for removing a listener.
	Subscription = ui.Subscription
	// PointerMsg is pointer motion in screen cells, fed to hover widgets.
	PointerMsg = ui.PointerMsg
	// ConfirmMsg is delivered through Bubble Tea when confirm activates.
	ConfirmMsg = ui.ConfirmMsg
	// CancelMsg is delivered through Bubble Tea when cancel activates.
	CancelMsg = ui.CancelMsg
	// Theme is the widget chrome palette.
	Theme = ui.Theme
)

// Guard types.
type (
	// NavigationGuard asks before a link navigates.
	NavigationGuard = guard.NavigationGuard
	// Link is the navigation target a guard protects.
	Link = guard.Link
	// Prompter answers the guard's yes/no question.
	Prompter = guard.Prompter
	// PrompterFunc adapts a function to Prompter.
	PrompterFunc = guard.PrompterFunc
	// Navigator performs the guarded navigation.
	Navigator = guard.Navigator
)

// Event and attribute names.
const (
	EventConfirm = ui.EventConfirm
	EventCancel  = ui.EventCancel
	AttrOpen     = ui.AttrOpen
	AttrText     = ui.AttrText
	SlotTitle    = ui.SlotTitle
)

// Modal constructors and options.
var (
	NewConfirmModal  = ui.NewConfirmModal
	WithModalTitle   = ui.WithModalTitle
	WithModalBody    = ui.WithModalBody
	WithButtonLabels = ui.WithButtonLabels
	WithModalNoColor = ui.WithModalNoColor
)

// Tooltip constructors and options.
var (
	NewTooltip         = ui.NewTooltip
	WithTooltipText    = ui.WithTooltipText
	WithTrigger        = ui.WithTrigger
	WithIconLabel      = ui.WithIconLabel
	WithTooltipNoColor = ui.WithTooltipNoColor
)

// Option types, for hosts assembling option slices.
type (
	ModalOption   = ui.ModalOption
	TooltipOption = ui.TooltipOption
	GuardOption   = guard.Option
)

// Guard constructors and options.
var (
	NewNavigationGuard = guard.NewNavigationGuard
	WithGuardMessage   = guard.WithMessage
	WithGuardLogger    = guard.WithLogger
)

// WithGuardCondition compiles a condition expression and returns the guard
// option applying it. The expression sees the link under the "link"
// variable (href, label, external, visited); prompting happens only when
// it evaluates to true.
func WithGuardCondition(source string) (GuardOption, error) {
	ev, err := expr.NewEvaluator()
	if err != nil {
		return nil, err
	}
	cond, _, err := guard.CompileCondition(ev, source)
	if err != nil {
		return nil, err
	}
	return guard.WithCondition(cond), nil
}

// Theme plumbing.
var (
	DefaultTheme = ui.DefaultTheme
	GetTheme     = ui.GetTheme
	SetTheme     = ui.SetTheme
	CurrentTheme = ui.CurrentTheme
)

// DetectTerminalSize returns the best-effort terminal width and height by
// probing stdout, stderr, and stdin, then falling back to the COLUMNS
// environment variable. If detection fails completely, returns generous
// defaults (120, 24) to avoid overly narrow output in CI or non-TTY
// environments.
func DetectTerminalSize() (width int, height int) {
	fds := []uintptr{os.Stdout.Fd(), os.Stderr.Fd(), os.Stdin.Fd()}
	for _, fd := range fds {
		if w, h, err := term.GetSize(int(fd)); err == nil && (w > 0 || h > 0) {
			return w, h
		}
	}
	if col := os.Getenv("COLUMNS"); col != "" {
		if w, err := strconv.Atoi(col); err == nil && w > 0 {
			return w, 0
		}
	}
	return defaultFallbackTermWidth, 24
}
