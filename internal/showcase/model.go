// Package showcase hosts the demo gallery: one confirm modal, one hover
// tooltip, and a handful of guarded links, composed into a single Bubble
// Tea program. It is the integration surface the CLI runs.
package showcase

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"
	"charm.land/lipgloss/v2"
	"github.com/go-logr/logr"

	"github.com/federicobaldini/native-components/internal/guard"
	"github.com/federicobaldini/native-components/internal/ui"
)

// Config seeds the gallery.
type Config struct {
	ModalTitle  string
	ModalBody   string
	TooltipText string
	Condition   string // guard condition source, already compiled by the caller
	OpenAtStart bool
	NoColor     bool
	Width       int
	Height      int
	Log         logr.Logger
}

// link pairs a navigation target with its selection label.
type galleryLink struct {
	link    guard.Link
	guarded bool
}

// modalPrompter adapts the confirm modal to the guard's synchronous
// Prompter contract. The first ask opens the modal and answers "not yet";
// once the user decides, the stored answer feeds the re-asked question.
type modalPrompter struct {
	open   func(message string)
	answer *bool
}

func (p *modalPrompter) Confirm(message string) bool {
	if p.answer != nil {
		a := *p.answer
		p.answer = nil
		return a
	}
	p.open(message)
	return false
}

// Model is the gallery root model.
type Model struct {
	modal   *ui.ConfirmModal
	tooltip *ui.Tooltip

	links     []galleryLink
	selected  int
	navGuard  *guard.NavigationGuard
	prompter  *modalPrompter
	pending   *guard.Link
	navPrompt bool // the open modal belongs to the guard, not the "o" demo

	// Configured demo slot contents, put back after a guard prompt
	// borrows the modal.
	demoTitle string
	demoBody  string

	attrInput textinput.Model
	editing   bool

	status  statusModel
	hover   bool
	width   int
	height  int
	noColor bool
	log     logr.Logger

	// tooltip anchor in the rendered frame, kept in sync by render().
	tooltipRow int
}

// NewModel builds the gallery. The guard condition, when provided, must
// already be compiled by the caller so configuration errors surface before
// the program starts.
func NewModel(cfg Config, cond *GuardCondition) *Model {
	log := cfg.Log
	if log.GetSink() == nil {
		log = logr.Discard()
	}

	title := cfg.ModalTitle
	if title == "" {
		title = "Leave page"
	}
	body := cfg.ModalBody
	if body == "" {
		body = "Do you want to continue?"
	}
	text := cfg.TooltipText
	if text == "" {
		text = "Opens the settings panel"
	}

	modalOpts := []ui.ModalOption{ui.WithModalTitle(title), ui.WithModalBody(body)}
	tipOpts := []ui.TooltipOption{ui.WithTrigger("Settings"), ui.WithTooltipText(text)}
	if cfg.NoColor {
		modalOpts = append(modalOpts, ui.WithModalNoColor())
		tipOpts = append(tipOpts, ui.WithTooltipNoColor())
	}

	m := &Model{
		modal:   ui.NewConfirmModal(modalOpts...),
		tooltip: ui.NewTooltip(tipOpts...),
		links: []galleryLink{
			{link: guard.Link{Href: "/home", Label: "Home"}},
			{link: guard.Link{Href: "/docs", Label: "Documentation"}},
			{link: guard.Link{Href: "https://example.com", Label: "Example (external)", External: true}, guarded: true},
			{link: guard.Link{Href: "https://charm.land", Label: "Charm (external)", External: true}, guarded: true},
		},
		status:    newStatusModel(),
		width:     cfg.Width,
		height:    cfg.Height,
		noColor:   cfg.NoColor,
		log:       log,
		demoTitle: title,
		demoBody:  body,
	}
	if m.width <= 0 {
		m.width = 80
	}
	if m.height <= 0 {
		m.height = 24
	}
	m.status.NoColor = cfg.NoColor

	m.prompter = &modalPrompter{open: m.openNavPrompt}
	guardOpts := []guard.Option{guard.WithLogger(log)}
	if cond != nil {
		guardOpts = append(guardOpts, guard.WithCondition(cond.cond))
	}
	m.navGuard = guard.NewNavigationGuard(m.prompter, m.navigated, guardOpts...)

	ti := textinput.New()
	ti.Placeholder = "tooltip text"
	ti.CharLimit = 200
	ti.SetWidth(40)
	ti.Prompt = "text: "
	m.attrInput = ti

	m.modal.Listen(m.onModalEvent)

	m.attachAll()
	m.modal.SetSize(m.width, m.height)
	m.status.Width = m.width
	if cfg.OpenAtStart {
		m.modal.SetAttribute(ui.AttrOpen, "true")
	}
	return m
}

func (m *Model) attachAll() {
	m.modal.Attach()
	m.tooltip.Attach()
	m.navGuard.Attach()
}

func (m *Model) detachAll() {
	m.modal.Detach()
	m.tooltip.Detach()
	m.navGuard.Detach()
}

// openNavPrompt repoints the already-attached modal at the guard question.
func (m *Model) openNavPrompt(message string) {
	m.navPrompt = true
	m.modal.Boundary().SetSlot(ui.SlotTitle, "Confirm navigation")
	m.modal.Boundary().SetDefaultSlot(message)
	m.modal.SetAttribute(ui.AttrOpen, "true")
}

// restoreDemoSlots puts the configured title and body back once a guard
// prompt is resolved, so the "o" demo keeps its own content.
func (m *Model) restoreDemoSlots() {
	m.modal.Boundary().SetSlot(ui.SlotTitle, m.demoTitle)
	m.modal.Boundary().SetDefaultSlot(m.demoBody)
}

// navigated is the guard's Navigator: the demo has no browser, so arriving
// somewhere means a status line and a visited mark.
func (m *Model) navigated(l guard.Link) {
	for i := range m.links {
		if m.links[i].link.Href == l.Href {
			m.links[i].link.Visited = true
		}
	}
	m.status.set(statusSuccess, fmt.Sprintf("navigated to %s", l.Href))
	m.log.V(1).Info("navigated", "href", l.Href)
}

// onModalEvent mirrors emitter events into the status bar. Guard-owned
// prompts are resolved in Update where the tea messages arrive.
func (m *Model) onModalEvent(ev ui.Event) {
	if m.navPrompt {
		return
	}
	switch ev.Type {
	case ui.EventConfirm:
		m.status.set(statusSuccess, "modal: confirm")
	case ui.EventCancel:
		m.status.set(statusInfo, "modal: cancel")
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.modal.SetSize(msg.Width, msg.Height)
		m.status.Width = msg.Width
		return m, nil

	case ui.ConfirmMsg:
		if m.navPrompt && m.pending != nil {
			yes := true
			m.prompter.answer = &yes
			link := *m.pending
			m.pending = nil
			m.navPrompt = false
			m.restoreDemoSlots()
			m.navGuard.Activate(link)
		}
		return m, nil

	case ui.CancelMsg:
		if m.navPrompt && m.pending != nil {
			m.status.set(statusInfo, fmt.Sprintf("navigation to %s declined", m.pending.Href))
			m.pending = nil
			m.navPrompt = false
			m.restoreDemoSlots()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// The open modal owns the keyboard.
	if m.modal.Visible() {
		return m, m.modal.Update(msg)
	}

	if m.editing {
		switch msg.String() {
		case "enter":
			m.tooltip.SetAttribute(ui.AttrText, m.attrInput.Value())
			m.editing = false
			m.attrInput.Blur()
			m.status.set(statusInfo, "tooltip text updated")
		case "esc":
			m.editing = false
			m.attrInput.Blur()
		default:
			var cmd tea.Cmd
			m.attrInput, cmd = m.attrInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.links)-1 {
			m.selected++
		}
	case "enter":
		m.activateSelected()
	case "o":
		m.navPrompt = false
		m.modal.SetAttribute(ui.AttrOpen, "true")
	case "h":
		m.toggleHover()
	case "t":
		m.editing = true
		m.attrInput.SetValue(m.tooltip.Text())
		m.attrInput.Focus()
		return m, textinput.Blink
	case "d":
		if m.modal.Attached() {
			m.detachAll()
			m.status.set(statusInfo, "widgets detached")
		} else {
			m.attachAll()
			m.status.set(statusInfo, "widgets attached")
		}
	}
	return m, nil
}

// activateSelected runs the selected link through the guard. Unguarded
// links bypass it entirely.
func (m *Model) activateSelected() {
	entry := m.links[m.selected]
	if !entry.guarded {
		m.navigated(entry.link)
		return
	}
	link := entry.link
	m.pending = &link
	if m.navGuard.Activate(link) {
		// Navigated straight through (detached guard or condition miss).
		m.pending = nil
		m.navPrompt = false
	}
}

// toggleHover synthesizes pointer motion over the tooltip icon. Terminal
// emulators vary in mouse reporting, so the gallery drives hover from the
// keyboard and feeds the widget the same pointer messages a mouse would.
func (m *Model) toggleHover() {
	m.hover = !m.hover
	if m.hover {
		m.tooltip.Update(ui.PointerMsg{X: m.iconX(), Y: m.tooltipRow})
	} else {
		m.tooltip.Update(ui.PointerMsg{X: -1, Y: -1})
	}
}

func (m *Model) iconX() int {
	trigger := m.tooltip.Boundary().DefaultSlot()
	if trigger == "" {
		return 0
	}
	return lipgloss.Width(trigger) + 1
}

// View implements tea.Model.
func (m *Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame as a string; snapshot mode reuses it.
func (m *Model) render() string {
	th := ui.CurrentTheme()
	styled := func(s lipgloss.Style, text string) string {
		if m.noColor {
			return text
		}
		return s.Render(text)
	}

	var b strings.Builder
	b.WriteString(styled(lipgloss.NewStyle().Foreground(th.TitleFG).Bold(true), "Widget Gallery"))
	b.WriteString("\n\n")

	b.WriteString("Links\n")
	for i, entry := range m.links {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		label := entry.link.Label
		if entry.link.Visited {
			label += " ✓"
		}
		line := cursor + label
		if i == m.selected && !m.noColor {
			line = lipgloss.NewStyle().Foreground(th.StatusColor).Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// The tooltip line; its row index feeds pointer hit-testing.
	m.tooltipRow = strings.Count(b.String(), "\n")
	m.tooltip.SetAnchor(0, m.tooltipRow)
	b.WriteString(m.tooltip.View())
	b.WriteString("\n")

	if m.editing {
		b.WriteString("\n")
		b.WriteString(m.attrInput.View())
		b.WriteString("\n")
	}

	body := b.String()
	statusLine := m.status.View()
	footer := footerView(m.width, m.noColor, m.editing)

	// Fill the space between body and the two bottom lines.
	used := strings.Count(body, "\n") + 2
	if fill := m.height - used - 1; fill > 0 {
		body += strings.Repeat("\n", fill)
	}
	frame := body + statusLine + "\n" + footer

	return m.modal.Overlay(frame)
}
