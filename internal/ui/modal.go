package ui

import (
	"fmt"
	"strings"
	"sync/atomic"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Attribute and slot names recognized by the confirm modal.
const (
	AttrOpen  = "open"
	SlotTitle = "title"
)

// Chrome roles inside the modal boundary.
const (
	roleBackdrop      = "backdrop"
	rolePanel         = "panel"
	roleConfirmButton = "confirm-button"
	roleCancelButton  = "cancel-button"
)

// ConfirmMsg is delivered through the Bubble Tea pipeline when the confirm
// control is activated. The modal is already hidden when it arrives.
type ConfirmMsg struct{ ID string }

// CancelMsg is the counterpart for the cancel control.
type CancelMsg struct{ ID string }

var modalSeq atomic.Int64

// ConfirmModal is a confirmation dialog widget. Its visibility follows the
// declarative "open" attribute: the host writes the attribute, the modal
// reconciles it with internal state. Dismissal through either button hides
// the modal first and then announces a confirm or cancel event.
//
// The zero value is not usable; construct with NewConfirmModal.
type ConfirmModal struct {
	id       string
	boundary *Boundary
	attrs    *AttributeStore
	emitter  *Emitter

	visible  bool
	attached bool
	// refs holds the interactive chrome resolved at attach time. Entries
	// exist only while attached.
	refs map[string]*chromeNode

	confirmSelected bool
	noColor         bool
	width           int
	height          int
}

// ModalOption configures a ConfirmModal at construction.
type ModalOption func(*ConfirmModal)

// WithModalTitle projects initial content into the title slot.
func WithModalTitle(title string) ModalOption {
	return func(m *ConfirmModal) { m.boundary.SetSlot(SlotTitle, title) }
}

// WithModalBody projects initial content into the default slot.
func WithModalBody(body string) ModalOption {
	return func(m *ConfirmModal) { m.boundary.SetDefaultSlot(body) }
}

// WithButtonLabels overrides the confirm/cancel chrome labels.
func WithButtonLabels(confirm, cancel string) ModalOption {
	return func(m *ConfirmModal) {
		m.boundary.node(roleConfirmButton).label = confirm
		m.boundary.node(roleCancelButton).label = cancel
	}
}

// WithModalNoColor disables ANSI styling in the rendered chrome.
func WithModalNoColor() ModalOption {
	return func(m *ConfirmModal) { m.noColor = true }
}

// NewConfirmModal constructs a modal. The private boundary and its chrome
// are built here, exactly once; attach/detach cycles never rebuild them.
// Construction is unconditional and always succeeds.
func NewConfirmModal(opts ...ModalOption) *ConfirmModal {
	m := &ConfirmModal{
		id:              fmt.Sprintf("confirm-modal-%d", modalSeq.Add(1)),
		boundary:        newBoundary(roleBackdrop, rolePanel, roleConfirmButton, roleCancelButton),
		attrs:           NewAttributeStore(),
		emitter:         NewEmitter(),
		confirmSelected: true,
		width:           80,
		height:          24,
	}
	m.boundary.node(roleConfirmButton).label = "Confirm"
	m.boundary.node(roleCancelButton).label = "Cancel"

	for _, opt := range opts {
		opt(m)
	}

	m.attrs.Observe(AttrOpen, m.openChanged)
	return m
}

// ID returns the instance identifier used in logs.
func (m *ConfirmModal) ID() string { return m.id }

// Boundary exposes the presentation scope for slot projection. The handle
// is stable for the life of the instance.
func (m *ConfirmModal) Boundary() *Boundary { return m.boundary }

// Visible reports the current presentation state.
func (m *ConfirmModal) Visible() bool { return m.visible }

// ConfirmSelected reports which button currently holds selection.
func (m *ConfirmModal) ConfirmSelected() bool { return m.confirmSelected }

// Listen registers a host listener for confirm/cancel events and returns
// the subscription handle used to unregister it.
func (m *ConfirmModal) Listen(fn Listener) *Subscription {
	return m.emitter.Listen(fn)
}

// SetAttribute writes a declarative attribute. Writing the stored value
// again is a no-op all the way down: the visibility observer never fires.
func (m *ConfirmModal) SetAttribute(name, value string) {
	m.attrs.Set(name, value)
}

// RemoveAttribute clears a declarative attribute; clearing "open" hides
// the modal.
func (m *ConfirmModal) RemoveAttribute(name string) {
	m.attrs.Remove(name)
}

// SetOpen is shorthand for toggling the "open" attribute.
func (m *ConfirmModal) SetOpen(open bool) {
	if open {
		m.attrs.Set(AttrOpen, "true")
	} else {
		m.attrs.Remove(AttrOpen)
	}
}

// openChanged reconciles the external flag with internal state. A new value
// whose truthiness matches the current visibility is ignored, preventing
// redundant work and re-entrant toggling.
func (m *ConfirmModal) openChanged(_, _, newValue string) {
	_, present := m.attrs.Get(AttrOpen)
	truthy := TruthyAttr(newValue, present)
	if truthy == m.visible {
		return
	}
	if truthy {
		m.Show()
	} else {
		m.Hide()
	}
}

// Show makes the modal visible. Showing while visible or while detached is
// a silent no-op.
func (m *ConfirmModal) Show() {
	if m.visible || !m.attached {
		return
	}
	m.visible = true
	m.confirmSelected = true
}

// Hide makes the modal invisible, restoring the pre-show presentation.
// Hiding while hidden or while detached is a silent no-op.
func (m *ConfirmModal) Hide() {
	if !m.visible || !m.attached {
		return
	}
	m.visible = false
}

// Attach resolves the interactive chrome and enables input handling. The
// boundary built at construction is reused as-is.
func (m *ConfirmModal) Attach() {
	if m.attached {
		return
	}
	m.refs = map[string]*chromeNode{
		roleConfirmButton: m.boundary.node(roleConfirmButton),
		roleCancelButton:  m.boundary.node(roleCancelButton),
	}
	m.attached = true
}

// Detach releases the interactive refs bound by Attach. Visibility state
// and the boundary persist so the instance can be re-attached later.
func (m *ConfirmModal) Detach() {
	if !m.attached {
		return
	}
	m.refs = nil
	m.attached = false
}

// Attached reports whether the modal currently receives input.
func (m *ConfirmModal) Attached() bool { return m.attached }

// Init implements Widget.
func (m *ConfirmModal) Init() tea.Cmd { return nil }

// SetSize records the area available for overlay placement.
func (m *ConfirmModal) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles input while the modal is visible and attached. All other
// messages pass through untouched — a hidden modal has no pointer or key
// interactivity.
func (m *ConfirmModal) Update(msg tea.Msg) tea.Cmd {
	if !m.attached || !m.visible {
		return nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "left", "right", "tab":
		m.confirmSelected = !m.confirmSelected
	case "enter":
		if m.confirmSelected {
			return m.activateConfirm()
		}
		return m.activateCancel()
	case "y", "Y":
		return m.activateConfirm()
	case "n", "N", "esc":
		return m.activateCancel()
	}
	return nil
}

// activateConfirm runs the confirm control: hide first, then announce.
// Listeners observe the modal already hidden. The stored open flag is
// dropped quietly so the host's next truthy write registers as a change
// and reopens the modal.
func (m *ConfirmModal) activateConfirm() tea.Cmd {
	if m.refs[roleConfirmButton] == nil {
		return nil
	}
	m.Hide()
	m.attrs.reset(AttrOpen)
	m.emitter.Emit(Event{Type: EventConfirm})
	id := m.id
	return func() tea.Msg { return ConfirmMsg{ID: id} }
}

// activateCancel mirrors activateConfirm for the cancel control.
func (m *ConfirmModal) activateCancel() tea.Cmd {
	if m.refs[roleCancelButton] == nil {
		return nil
	}
	m.Hide()
	m.attrs.reset(AttrOpen)
	m.emitter.Emit(Event{Type: EventCancel})
	id := m.id
	return func() tea.Msg { return CancelMsg{ID: id} }
}

// View renders the panel chrome, or nothing while hidden.
func (m *ConfirmModal) View() string {
	if !m.visible {
		return ""
	}
	return m.renderPanel()
}

// Overlay composites the modal over host content. While hidden the host
// content is returned untouched; while visible it is re-rendered in the
// backdrop color with the panel centered on top.
func (m *ConfirmModal) Overlay(background string) string {
	if !m.visible {
		return background
	}
	panel := m.renderPanel()
	x := (m.width - lipgloss.Width(panel)) / 2
	y := (m.height - lipgloss.Height(panel)) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	dimStyle := lipgloss.NewStyle().Foreground(CurrentTheme().BackdropFG)
	return compositeOver(background, panel, x, y, m.width, m.height, dimStyle, m.noColor)
}

func (m *ConfirmModal) renderPanel() string {
	th := CurrentTheme()

	styled := func(s lipgloss.Style, text string) string {
		if m.noColor {
			return text
		}
		return s.Render(text)
	}

	confirmLabel := " " + m.boundary.node(roleConfirmButton).label + " "
	cancelLabel := " " + m.boundary.node(roleCancelButton).label + " "

	buttonStyle := lipgloss.NewStyle().Foreground(th.ButtonFG).Background(th.ButtonBG).Padding(0, 1)
	activeStyle := lipgloss.NewStyle().Foreground(th.ButtonActiveFG).Background(th.ButtonActiveBG).Padding(0, 1).Bold(true)

	var confirmBtn, cancelBtn string
	if m.confirmSelected {
		confirmBtn = styled(activeStyle, confirmLabel)
		cancelBtn = styled(buttonStyle, cancelLabel)
	} else {
		confirmBtn = styled(buttonStyle, confirmLabel)
		cancelBtn = styled(activeStyle, cancelLabel)
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, cancelBtn, "  ", confirmBtn)

	var sections []string
	if title := m.boundary.Slot(SlotTitle); title != "" {
		titleStyle := lipgloss.NewStyle().Foreground(th.TitleFG).Bold(true)
		sections = append(sections, styled(titleStyle, title), "")
	}
	if body := m.boundary.DefaultSlot(); body != "" {
		sections = append(sections, body, "")
	}
	sections = append(sections,
		buttons,
		styled(lipgloss.NewStyle().Foreground(th.HintFG), "←/→ select · enter choose · esc cancel"),
	)

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	panelStyle := lipgloss.NewStyle().
		Border(borderForStyle(th.BorderStyle)).
		Padding(1, 2)
	if !m.noColor {
		panelStyle = panelStyle.
			BorderForeground(th.PanelBorder).
			Foreground(th.PanelFG).
			Background(th.PanelBG)
	}
	return panelStyle.Render(content)
}

// ContainsText reports whether the rendered panel carries the given text.
// Test helper used to assert slot projection without reaching into chrome.
func (m *ConfirmModal) ContainsText(s string) bool {
	return strings.Contains(stripANSI(m.renderPanel()), s)
}
