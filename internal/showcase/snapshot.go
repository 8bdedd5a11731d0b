package showcase

// Snapshot renders a single gallery frame at the configured size without
// starting a program. CI and the --snapshot flag use it to diff output
// deterministically.
func Snapshot(cfg Config, cond *GuardCondition, hover bool) string {
	m := NewModel(cfg, cond)
	// First render settles the tooltip anchor so a hover snapshot hits
	// the icon at its real position.
	frame := m.render()
	if hover {
		m.toggleHover()
		frame = m.render()
	}
	return frame
}
