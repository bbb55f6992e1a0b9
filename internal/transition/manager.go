package transition

import "github.com/vovakirdan/dimensions/internal/core"

// Manager owns the single active transition.
type Manager struct {
	specs   map[Kind]Spec
	current *Transition
}

// NewManager creates a manager starting on a circle transition. Kinds
// missing from specs use DefaultSpecs.
func NewManager(specs map[Kind]Spec) *Manager {
	m := &Manager{specs: make(map[Kind]Spec, len(DefaultSpecs))}
	for k, s := range DefaultSpecs {
		m.specs[k] = s
	}
	for k, s := range specs {
		if s.Size > 0 && s.Rate > 0 {
			m.specs[k] = s
		}
	}
	m.current = newTransition(Circle, m.specs[Circle])
	return m
}

// Set switches to another visual. Asking for the current kind keeps the
// transition in flight; any other known kind replaces it with a fresh one.
// Unknown kinds are ignored.
func (m *Manager) Set(kind Kind) {
	spec, ok := m.specs[kind]
	if !ok || kind == m.current.kind {
		return
	}
	m.current = newTransition(kind, spec)
}

// Kind returns the active visual.
func (m *Manager) Kind() Kind { return m.current.kind }

// Spec returns the tuning of the active visual.
func (m *Manager) Spec() Spec { return m.current.spec }

// Progress returns how far the active transition has closed.
func (m *Manager) Progress() float64 { return m.current.progress }

// Status returns the state of the active transition.
func (m *Manager) Status() Status { return m.current.Status() }

// Close starts covering the screen.
func (m *Manager) Close() {
	m.current.k = m.current.spec.Rate
}

// Open starts revealing the screen.
func (m *Manager) Open() {
	m.current.k = -m.current.spec.Rate
}

// Update advances the active transition by one tick.
func (m *Manager) Update() {
	m.current.update()
}

// Draw paints the active transition over whatever is on r.
func (m *Manager) Draw(r core.Renderer) {
	m.current.draw(r)
}
