// Package hover tracks which menu item the pointer is over and fires
// enter/leave transitions exactly once per change.
package hover

// None is the hovered index when no item is hovered.
const None = -1

// Flags receives per-item hover flags.
type Flags interface {
	SetHovered(index int, hovered bool)
}

// Transitions receives the externally visible hover side effects.
type Transitions interface {
	Enter(index int)
	Leave(index int)
}

// Manager owns the single hovered index.
type Manager struct {
	hovered     int
	flags       Flags
	transitions Transitions
}

// NewManager creates a manager with nothing hovered. Either sink may be nil.
func NewManager(flags Flags, transitions Transitions) *Manager {
	return &Manager{hovered: None, flags: flags, transitions: transitions}
}

// Hovered returns the hovered index and whether one is set.
func (m *Manager) Hovered() (int, bool) {
	return m.hovered, m.hovered != None
}

// Update applies the result of a hit test: index is the item under the
// pointer when ok, otherwise the pointer is over nothing.
func (m *Manager) Update(index int, ok bool) {
	if !ok {
		m.Reset()
		return
	}
	if index == m.hovered {
		return
	}
	if m.hovered != None {
		m.setFlag(m.hovered, false)
		m.leave(m.hovered)
	}
	m.hovered = index
	m.setFlag(index, true)
	m.enter(index)
}

// Reset clears the hovered item, firing its leave transition.
func (m *Manager) Reset() {
	if m.hovered == None {
		return
	}
	prev := m.hovered
	m.hovered = None
	m.setFlag(prev, false)
	m.leave(prev)
}

func (m *Manager) setFlag(index int, v bool) {
	if m.flags != nil {
		m.flags.SetHovered(index, v)
	}
}

func (m *Manager) enter(index int) {
	if m.transitions != nil {
		m.transitions.Enter(index)
	}
}

func (m *Manager) leave(index int) {
	if m.transitions != nil {
		m.transitions.Leave(index)
	}
}
