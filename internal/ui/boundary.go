package ui

// chromeNode is a fixed structural element owned by a widget's boundary
// (a button, an icon, a backdrop). Chrome is private to the widget: nothing
// outside this package can reach a node, so host code cannot select into
// the boundary.
type chromeNode struct {
	role  string
	label string
}

// Boundary is the private presentation scope a widget creates exactly once
// at construction. It owns the widget's chrome and reserves insertion
// points (slots) for host-supplied content. The boundary is never rebuilt:
// attach/detach cycles toggle interactivity, not structure.
//
// Slot content stays host-owned — the widget reserves position for it and
// renders it verbatim, never inspecting or transforming it.
type Boundary struct {
	chrome      map[string]*chromeNode
	slots       map[string]string
	defaultSlot string
}

// newBoundary builds a boundary containing one chrome node per role.
func newBoundary(roles ...string) *Boundary {
	b := &Boundary{
		chrome: make(map[string]*chromeNode, len(roles)),
		slots:  make(map[string]string),
	}
	for _, role := range roles {
		b.chrome[role] = &chromeNode{role: role}
	}
	return b
}

// node returns the chrome node for a role, or nil when the boundary does
// not carry it. Unexported: chrome is not part of the public surface.
func (b *Boundary) node(role string) *chromeNode {
	return b.chrome[role]
}

// SetSlot projects host content into a named insertion point.
func (b *Boundary) SetSlot(name, content string) {
	b.slots[name] = content
}

// Slot returns the content projected into a named insertion point.
func (b *Boundary) Slot(name string) string {
	return b.slots[name]
}

// SetDefaultSlot projects host content into the unnamed insertion point.
func (b *Boundary) SetDefaultSlot(content string) {
	b.defaultSlot = content
}

// DefaultSlot returns the content projected into the unnamed insertion point.
func (b *Boundary) DefaultSlot() string {
	return b.defaultSlot
}
