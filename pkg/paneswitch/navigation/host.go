package navigation

import "sync"

// Host shows the pane matching the active view of a Controller.
//
// Whenever a transition commits, Host selects the matching pane, mounts it if it
// implements Mounter, and then fires the OnEntered handler of that registration
// once. Changes that a later commit has already superseded are skipped.
type Host[V ~string, P Pane[V]] struct {
	c     *Controller[V]
	panes []P

	mu      sync.Mutex
	current P
	found   bool

	unsubscribe func()
}

// NewHost creates a Host over panes and shows the pane for the current active view.
func NewHost[V ~string, P Pane[V]](c *Controller[V], panes ...P) *Host[V, P] {
	h := &Host[V, P]{
		c:     c,
		panes: panes,
	}

	h.unsubscribe = c.Subscribe(func(change Change[V]) {
		h.show(change.To, change.Seq)
	})

	view, seq := c.snapshot()
	h.show(view, seq)

	return h
}

// Current returns the pane being shown. It reports false when no pane
// matches the active view.
func (h *Host[V, P]) Current() (P, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current, h.found
}

// Close stops following the controller.
func (h *Host[V, P]) Close() {
	h.unsubscribe()
}

func (h *Host[V, P]) show(view V, seq uint64) {
	if !h.c.current(seq) {
		h.c.logger.Debug("skipping superseded view", "view", string(view), "seq", seq)
		return
	}

	p, ok := Select(view, h.panes, paneKey[V, P])

	h.mu.Lock()
	h.current, h.found = p, ok
	h.mu.Unlock()

	if !ok {
		h.c.logger.Warn("no pane for active view", "view", string(view))
		return
	}

	if m, ok := any(p).(Mounter[V]); ok {
		m.Mount(h.c)
	}
	h.c.enter(seq)
}
