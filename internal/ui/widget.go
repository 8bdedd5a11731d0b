package ui

import tea "charm.land/bubbletea/v2"

// Widget defines the interface every visual component implements. Host
// models route messages to widgets the same way a root Bubble Tea model
// routes to child models:
//
//   - Separation of concerns (each widget handles its own chrome and state)
//   - Easier testing (widgets are exercised in isolation)
//   - Composability (a host can hold any number of widget instances)
type Widget interface {
	// Init returns any initial commands. Called once when the widget is
	// handed to a running program.
	Init() tea.Cmd

	// Update handles messages and returns any commands to run. Widgets
	// silently ignore messages that do not concern them.
	Update(msg tea.Msg) tea.Cmd

	// View renders the widget to a string.
	View() string
}

// Attachable is the lifecycle contract shared by all widgets. Construction
// builds the private structure exactly once; Attach and Detach toggle
// interactivity without rebuilding it.
type Attachable interface {
	// Attach resolves interactive references and binds input handlers.
	// Calling Attach on an attached widget is a no-op.
	Attach()

	// Detach unbinds the handlers bound by Attach. Widget state and
	// structure persist; a detached widget can be re-attached.
	Detach()

	// Attached reports whether the widget currently receives input.
	Attached() bool
}

// WidgetWithID is an optional interface widgets implement to provide an
// identifier for debugging and logging.
type WidgetWithID interface {
	// ID returns a unique identifier for this widget instance.
	ID() string
}

// WidgetWithSize is an optional interface widgets implement to respond to
// resize events.
type WidgetWithSize interface {
	// SetSize sets the available width and height for the widget.
	SetSize(width, height int)
}

// PointerMsg reports a terminal pointer position in screen cells. Hosts
// translate Bubble Tea mouse messages into PointerMsg values and route them
// to hover-driven widgets.
type PointerMsg struct {
	X int
	Y int
}
