package navigation

// Handlers are the callbacks the active view installs into a Controller.
type Handlers[V ~string] struct {
	// OnEntered is called once after the view that registered it became active.
	// The Controller stores it; Host is what invokes it.
	OnEntered func()
	// OnExit is called synchronously when a transition away from the view is requested.
	OnExit func(e *ExitEvent[V])
}

// RegisterHandlers replaces the controller's handler set with a copy of handlers.
// Call it every time the displayed view may have changed. There is no merging with
// a previous registration.
func RegisterHandlers[V ~string](c *Controller[V], handlers Handlers[V]) {
	c.mu.Lock()
	c.handlers = handlers
	active := c.active
	c.mu.Unlock()

	c.logger.Debug("navigation handlers registered",
		"view", string(active),
		"on_exit", handlers.OnExit != nil,
		"on_entered", handlers.OnEntered != nil)
}

type decision int

const (
	decisionProceed decision = iota
	decisionPrevent
	decisionSuspend
)

// ExitEvent is handed to an OnExit handler for one Navigate call.
// It is only meaningful while the handler runs.
type ExitEvent[V ~string] struct {
	c       *Controller[V]
	from    V
	target  V
	value   decision
	resumer *Resumer[V]
	closed  bool
}

// From returns the view being left.
func (e *ExitEvent[V]) From() V {
	return e.from
}

// Target returns the view the transition is heading to.
func (e *ExitEvent[V]) Target() V {
	return e.target
}

// Prevent rejects the transition. Ignored if the handler already suspended it.
func (e *ExitEvent[V]) Prevent() {
	e.c.mu.Lock()
	defer e.c.mu.Unlock()

	if e.closed || e.value != decisionProceed {
		return
	}
	e.value = decisionPrevent
}

// Suspend defers the transition and returns the resumer that completes it.
// Calling it again returns the same resumer. Called after Prevent, or for the
// first time after the handler returned, it returns a resumer that was never
// pending and reports Ignored.
func (e *ExitEvent[V]) Suspend() *Resumer[V] {
	e.c.mu.Lock()
	defer e.c.mu.Unlock()

	switch {
	case e.value == decisionSuspend:
		return e.resumer
	case e.closed || e.value == decisionPrevent:
		return e.c.newResumer(e.target)
	}

	r := e.c.newResumer(e.target)
	e.c.pending = r
	e.value = decisionSuspend
	e.resumer = r
	return r
}

func (e *ExitEvent[V]) close() decision {
	e.c.mu.Lock()
	defer e.c.mu.Unlock()
	e.closed = true
	return e.value
}

// ResumeResult reports what invoking a Resumer did.
type ResumeResult string

const (
	// Ignored means the resumer was superseded and nothing changed.
	Ignored ResumeResult = "ignored"
	// Resumed means the suspended transition was committed.
	Resumed ResumeResult = "resumed"
)

// Resumer completes a suspended transition. It is valid only while it is the
// controller's pending resumer; a newer Navigate call or a previous Resume
// invalidates it.
type Resumer[V ~string] struct {
	c          *Controller[V]
	target     V
	generation uint64
}

// Target returns the view the suspended transition leads to.
func (r *Resumer[V]) Target() V {
	return r.target
}

// Generation returns the suspension number this resumer was created for.
func (r *Resumer[V]) Generation() uint64 {
	return r.generation
}

// Resume commits the suspended transition if r is still pending.
// It is safe to call from any goroutine.
func (r *Resumer[V]) Resume() ResumeResult {
	c := r.c

	c.mu.Lock()
	if c.pending != r {
		c.mu.Unlock()
		c.logger.Debug("stale navigation resumer ignored",
			"target", string(r.target),
			"generation", r.generation)
		return Ignored
	}
	c.pending = nil
	change := c.commit(r.target)
	c.mu.Unlock()

	c.logger.Debug("suspended navigation resumed",
		"from", string(change.From),
		"to", string(change.To),
		"generation", r.generation)
	c.publish()
	return Resumed
}
