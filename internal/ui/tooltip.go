package ui

import (
	"fmt"
	"strings"
	"sync/atomic"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// AttrText is the declarative attribute carrying the tooltip message.
const AttrText = "text"

const roleIcon = "icon"

// defaultIconLabel marks the hover-sensitive region next to the trigger
// content.
const defaultIconLabel = "ⓘ"

var tooltipSeq atomic.Int64

// tooltipContent is the ephemeral node mounted while the tooltip is shown.
// A fresh node is built on every show so it always carries the text the
// attribute held at that moment; hide unmounts it.
type tooltipContent struct {
	text string
}

// Tooltip is a hover widget: pointer-enter over its icon region shows a
// bubble with the current "text" attribute, pointer-leave hides it again.
// Changing the attribute while hidden has no visual effect until the next
// show.
type Tooltip struct {
	id       string
	boundary *Boundary
	attrs    *AttributeStore

	visible  bool
	attached bool
	hovering bool
	content  *tooltipContent
	refs     map[string]*chromeNode

	// Screen-cell anchor of the rendered trigger line, set by the host's
	// layout. The icon hit region is derived from it.
	anchorX int
	anchorY int

	noColor bool
}

// TooltipOption configures a Tooltip at construction.
type TooltipOption func(*Tooltip)

// WithTooltipText seeds the "text" attribute.
func WithTooltipText(text string) TooltipOption {
	return func(t *Tooltip) { t.attrs.Set(AttrText, text) }
}

// WithTrigger projects the hover-trigger content into the default slot.
func WithTrigger(content string) TooltipOption {
	return func(t *Tooltip) { t.boundary.SetDefaultSlot(content) }
}

// WithIconLabel overrides the icon chrome glyph.
func WithIconLabel(label string) TooltipOption {
	return func(t *Tooltip) { t.boundary.node(roleIcon).label = label }
}

// WithTooltipNoColor disables ANSI styling in the rendered chrome.
func WithTooltipNoColor() TooltipOption {
	return func(t *Tooltip) { t.noColor = true }
}

// NewTooltip constructs a tooltip. The boundary and icon chrome are built
// exactly once; construction always succeeds.
func NewTooltip(opts ...TooltipOption) *Tooltip {
	t := &Tooltip{
		id:       fmt.Sprintf("tooltip-%d", tooltipSeq.Add(1)),
		boundary: newBoundary(roleIcon),
		attrs:    NewAttributeStore(),
	}
	t.boundary.node(roleIcon).label = defaultIconLabel
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ID returns the instance identifier used in logs.
func (t *Tooltip) ID() string { return t.id }

// Boundary exposes the presentation scope for slot projection.
func (t *Tooltip) Boundary() *Boundary { return t.boundary }

// Visible reports whether the bubble is currently mounted.
func (t *Tooltip) Visible() bool { return t.visible }

// Text returns the current value of the "text" attribute.
func (t *Tooltip) Text() string {
	v, _ := t.attrs.Get(AttrText)
	return v
}

// SetAttribute writes a declarative attribute. The stored text is picked up
// on the next show; a visible bubble keeps the text it mounted with.
func (t *Tooltip) SetAttribute(name, value string) {
	t.attrs.Set(name, value)
}

// SetText is shorthand for writing the "text" attribute.
func (t *Tooltip) SetText(text string) {
	t.attrs.Set(AttrText, text)
}

// SetAnchor records where the host lays out the trigger line, in screen
// cells. The icon hit region sits right after the trigger content.
func (t *Tooltip) SetAnchor(x, y int) {
	t.anchorX = x
	t.anchorY = y
}

// Attach resolves the icon ref and enables hover handling.
func (t *Tooltip) Attach() {
	if t.attached {
		return
	}
	t.refs = map[string]*chromeNode{
		roleIcon: t.boundary.node(roleIcon),
	}
	t.attached = true
}

// Detach releases the refs bound by Attach. The boundary, the stored text,
// and the visibility state persist.
func (t *Tooltip) Detach() {
	if !t.attached {
		return
	}
	t.refs = nil
	t.attached = false
}

// Attached reports whether the tooltip currently receives pointer input.
func (t *Tooltip) Attached() bool { return t.attached }

// Init implements Widget.
func (t *Tooltip) Init() tea.Cmd { return nil }

// Update reacts to pointer motion: entering the icon region shows the
// bubble, leaving hides it. Everything else is ignored.
func (t *Tooltip) Update(msg tea.Msg) tea.Cmd {
	p, ok := msg.(PointerMsg)
	if !ok {
		return nil
	}
	inside := t.hitIcon(p.X, p.Y)
	switch {
	case inside && !t.hovering:
		t.hovering = true
		t.Show()
	case !inside && t.hovering:
		t.hovering = false
		t.Hide()
	}
	return nil
}

// hitIcon reports whether a pointer cell lands on the icon chrome.
func (t *Tooltip) hitIcon(x, y int) bool {
	if !t.attached {
		return false
	}
	iconStart := t.anchorX + t.triggerWidth()
	iconEnd := iconStart + displayWidth(t.iconLabel())
	return y == t.anchorY && x >= iconStart && x < iconEnd
}

func (t *Tooltip) triggerWidth() int {
	trigger := t.boundary.DefaultSlot()
	if trigger == "" {
		return 0
	}
	// One separating space between trigger content and icon.
	return displayWidth(trigger) + 1
}

func (t *Tooltip) iconLabel() string {
	return t.boundary.node(roleIcon).label
}

// Show mounts a fresh content node carrying the current "text" attribute.
// Showing while visible or while detached is a silent no-op, so repeated
// pointer-enters never stack duplicate nodes.
func (t *Tooltip) Show() {
	if t.visible || !t.attached {
		return
	}
	t.content = &tooltipContent{text: t.Text()}
	t.visible = true
}

// Hide unmounts the content node, if one exists. Hiding while hidden or
// while detached is a silent no-op.
func (t *Tooltip) Hide() {
	if !t.visible || !t.attached {
		return
	}
	t.content = nil
	t.visible = false
}

// MountedText returns the text carried by the mounted content node, or ""
// when hidden. Attribute writes while visible do not retint the node.
func (t *Tooltip) MountedText() string {
	if t.content == nil {
		return ""
	}
	return t.content.text
}

// View renders the trigger line: projected content, a space, and the icon.
// A mounted bubble renders below that line, aligned with the icon column,
// so the trigger keeps the row the host anchored it at and pointer
// hit-testing stays valid while the bubble is up.
func (t *Tooltip) View() string {
	th := CurrentTheme()

	icon := t.iconLabel()
	if !t.noColor {
		icon = lipgloss.NewStyle().Foreground(th.IconFG).Render(icon)
	}
	line := t.boundary.DefaultSlot()
	if line != "" {
		line += " "
	}
	line += icon

	if !t.visible || t.content == nil {
		return line
	}

	bubble := t.content.text
	bubbleStyle := lipgloss.NewStyle().Padding(0, 1)
	if !t.noColor {
		bubbleStyle = bubbleStyle.Foreground(th.TooltipFG).Background(th.TooltipBG)
	}
	bubble = bubbleStyle.Render(bubble)

	// Align the bubble with the icon column when there is room.
	indent := t.triggerWidth()
	if indent > 0 {
		bubble = strings.Repeat(" ", indent) + bubble
	}
	return lipgloss.JoinVertical(lipgloss.Left, line, bubble)
}
