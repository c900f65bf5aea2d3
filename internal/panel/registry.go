package panel

// Event notifies listeners that a panel's chrome state changed.
type Event struct {
	ID    string
	State State
	Label string
}

// Listener receives state-changed events. Listeners run synchronously
// inside the mutating call; the registry is single-threaded by design
// (all mutations happen on the UI event path).
type Listener func(Event)

// Registry is the authoritative store of panel states. The panel set is
// fixed at construction; unknown ids are tolerated as no-ops since they
// originate from user-editable links and fragments.
type Registry struct {
	order     []string
	panels    map[string]*Panel
	listeners []Listener
}

// NewRegistry builds a registry from descriptors. All panels start in
// the normal state. Duplicate ids keep the first descriptor.
func NewRegistry(descs []Descriptor) *Registry {
	r := &Registry{panels: make(map[string]*Panel, len(descs))}
	for _, d := range descs {
		if _, dup := r.panels[d.ID]; dup {
			continue
		}
		r.panels[d.ID] = &Panel{id: d.ID, adjustScroll: d.AdjustScroll}
		r.order = append(r.order, d.ID)
	}
	return r
}

// Subscribe registers a listener for state-changed events.
func (r *Registry) Subscribe(fn Listener) {
	r.listeners = append(r.listeners, fn)
}

// IDs returns panel ids in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Lookup returns the panel for id, or false when unknown.
func (r *Registry) Lookup(id string) (*Panel, bool) {
	p, ok := r.panels[id]
	return p, ok
}

// State returns the current flags for id, or false when unknown.
func (r *Registry) State(id string) (State, bool) {
	p, ok := r.panels[id]
	if !ok {
		return State{}, false
	}
	return p.state, true
}

// ToggleClosed flips the closed flag. Setting closed clears the other
// two flags; clearing it leaves them untouched (they were already
// cleared when closed was set).
func (r *Registry) ToggleClosed(id string) {
	p, ok := r.panels[id]
	if !ok {
		return
	}
	p.state.Closed = !p.state.Closed
	if p.state.Closed {
		p.state.Minimized = false
		p.state.Maximized = false
	}
	r.notify(p)
}

// ToggleMinimized flips the minimized flag, clearing closed and
// maximized when the result is true.
func (r *Registry) ToggleMinimized(id string) {
	p, ok := r.panels[id]
	if !ok {
		return
	}
	p.state.Minimized = !p.state.Minimized
	if p.state.Minimized {
		p.state.Closed = false
		p.state.Maximized = false
	}
	r.notify(p)
}

// ToggleMaximized acts as a restore toggle: a maximized panel is
// un-maximized and nothing else happens. Otherwise every other panel
// loses its maximized flag first, then the target is maximized with
// closed/minimized cleared.
func (r *Registry) ToggleMaximized(id string) {
	p, ok := r.panels[id]
	if !ok {
		return
	}
	if p.state.Maximized {
		p.state.Maximized = false
		r.notify(p)
		return
	}
	r.clearOtherMaximized(id)
	p.state = State{Maximized: true}
	r.notify(p)
}

// SetMaximizedExclusive unconditionally leaves id as the only maximized
// panel, with its closed/minimized flags cleared. Idempotent; used for
// deep-link and open-focus actions.
func (r *Registry) SetMaximizedExclusive(id string) {
	p, ok := r.panels[id]
	if !ok {
		return
	}
	r.clearOtherMaximized(id)
	if p.state != (State{Maximized: true}) {
		p.state = State{Maximized: true}
		r.notify(p)
	}
}

// clearOtherMaximized enforces the one-maximized invariant, notifying
// each panel that actually changed.
func (r *Registry) clearOtherMaximized(keep string) {
	for _, id := range r.order {
		other := r.panels[id]
		if id != keep && other.state.Maximized {
			other.state.Maximized = false
			r.notify(other)
		}
	}
}

func (r *Registry) notify(p *Panel) {
	for _, fn := range r.listeners {
		fn(Event{ID: p.id, State: p.state, Label: p.state.Label()})
	}
}
