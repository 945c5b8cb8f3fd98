package navigation

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/BrandonKowalski/paneswitch/pkg/paneswitch/internal"
	"go.uber.org/atomic"
)

// Outcome reports what a Navigate call did.
type Outcome int

const (
	// Proceeded means the transition was committed.
	Proceeded Outcome = iota
	// Prevented means the exit handler rejected the transition.
	Prevented
	// Suspended means the exit handler deferred the transition and holds a Resumer.
	Suspended
	// Rejected means the target is not one of the controller's views.
	Rejected
	// Busy means another transition was still being evaluated, for example a
	// Navigate call made from inside an exit handler.
	Busy
)

func (o Outcome) String() string {
	switch o {
	case Proceeded:
		return "proceeded"
	case Prevented:
		return "prevented"
	case Suspended:
		return "suspended"
	case Rejected:
		return "rejected"
	case Busy:
		return "busy"
	default:
		return "unknown"
	}
}

// Change describes a committed transition.
type Change[V ~string] struct {
	From V
	To   V
	Seq  uint64 // commit number, starting at 1
}

// Navigation is the capability surface consumers of a Controller use.
// It does not expose handler or resumer slots; views install handlers
// through RegisterHandlers.
type Navigation[V ~string] interface {
	Active() V
	Views() []V
	HasView(view V) bool
	IsActive(view V) bool
	Navigate(target V) Outcome
	Navigator(target V) func()
	Subscribe(fn func(Change[V])) (unsubscribe func())
}

var _ Navigation[string] = (*Controller[string])(nil)

// Option configures a Controller.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger transitions are reported to.
// Defaults to the package's internal logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Controller tracks the active view of one navigation context.
type Controller[V ~string] struct {
	mu sync.Mutex

	active V
	views  []V
	index  map[V]struct{}

	handlers Handlers[V]
	pending  *Resumer[V]

	commits    uint64
	entered    bool // OnEntered fired for the current commit
	evaluating atomic.Bool
	generation atomic.Uint64

	observers    map[uint64]func(Change[V])
	nextObserver uint64
	queue        []Change[V] // committed, not yet delivered
	publishing   bool

	logger *slog.Logger
}

// New creates a Controller over views with def active.
// The default view is always part of the view set, even when views omits it.
// Duplicates are dropped and declaration order is kept.
func New[V ~string](views []V, def V, opts ...Option) *Controller[V] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = internal.GetInternalLogger()
	}

	c := &Controller[V]{
		active:    def,
		index:     make(map[V]struct{}, len(views)+1),
		observers: make(map[uint64]func(Change[V])),
		logger:    o.logger,
	}

	for _, v := range append(append(make([]V, 0, len(views)+1), views...), def) {
		if _, ok := c.index[v]; ok {
			continue
		}
		c.index[v] = struct{}{}
		c.views = append(c.views, v)
	}

	return c
}

// Active returns the active view.
func (c *Controller[V]) Active() V {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Views returns a copy of the view set in declaration order.
func (c *Controller[V]) Views() []V {
	out := make([]V, len(c.views))
	copy(out, c.views)
	return out
}

// HasView reports whether view belongs to the view set.
func (c *Controller[V]) HasView(view V) bool {
	_, ok := c.index[view]
	return ok
}

// IsActive reports whether view is the active view.
func (c *Controller[V]) IsActive(view V) bool {
	return c.Active() == view
}

// Navigator returns a function that navigates to target when called.
func (c *Controller[V]) Navigator(target V) func() {
	return func() {
		c.Navigate(target)
	}
}

// Navigate requests a transition to target.
//
// Any pending resumer is invalidated first. If the active view registered an
// OnExit handler it is called once, synchronously, and may prevent or suspend
// the transition. Otherwise the transition is committed: target becomes active
// and the registered handlers are cleared.
func (c *Controller[V]) Navigate(target V) Outcome {
	if !c.HasView(target) {
		c.logger.Warn("navigation to unknown view rejected", "target", string(target))
		return Rejected
	}

	if !c.evaluating.CompareAndSwap(false, true) {
		c.logger.Warn("navigation requested while another transition is evaluated",
			"target", string(target))
		return Busy
	}

	c.mu.Lock()
	c.pending = nil
	from := c.active
	onExit := c.handlers.OnExit
	c.mu.Unlock()

	value := decisionProceed
	if onExit != nil {
		e := &ExitEvent[V]{c: c, from: from, target: target}
		onExit(e)
		value = e.close()
	}

	if value != decisionProceed {
		c.evaluating.Store(false)
	}

	switch value {
	case decisionPrevent:
		c.logger.Debug("navigation prevented", "from", string(from), "to", string(target))
		return Prevented
	case decisionSuspend:
		c.logger.Debug("navigation suspended", "from", string(from), "to", string(target))
		return Suspended
	}

	c.mu.Lock()
	change := c.commit(target)
	c.mu.Unlock()
	c.evaluating.Store(false)

	c.logger.Debug("navigation committed",
		"from", string(change.From),
		"to", string(change.To),
		"seq", change.Seq)
	c.publish()
	return Proceeded
}

// Subscribe registers fn to be called after every committed transition.
//
// Changes are delivered one at a time in commit order, outside the controller's
// lock, so fn may call Navigate. A transition committed while observers are
// being notified, by fn itself or by another goroutine, is queued and delivered
// by the goroutine already notifying once the current change has reached every
// observer. An observer therefore cannot assume change.To is still the active
// view: a later commit may already have happened. Compare change.To with Active
// before acting on it.
func (c *Controller[V]) Subscribe(fn func(Change[V])) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextObserver
	c.nextObserver++
	c.observers[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.observers, id)
			c.mu.Unlock()
		})
	}
}

// commit must be called with c.mu held.
func (c *Controller[V]) commit(target V) Change[V] {
	from := c.active
	c.active = target
	c.handlers = Handlers[V]{}
	c.commits++
	c.entered = false
	change := Change[V]{From: from, To: target, Seq: c.commits}
	c.queue = append(c.queue, change)
	return change
}

// newResumer must be called with c.mu held.
func (c *Controller[V]) newResumer(target V) *Resumer[V] {
	return &Resumer[V]{
		c:          c,
		target:     target,
		generation: c.generation.Inc(),
	}
}

// publish delivers queued changes unless another call is already delivering them.
func (c *Controller[V]) publish() {
	c.mu.Lock()
	if c.publishing {
		c.mu.Unlock()
		return
	}
	c.publishing = true

	for len(c.queue) > 0 {
		change := c.queue[0]
		c.queue = c.queue[1:]
		fns := c.subscribers()
		c.mu.Unlock()

		for _, fn := range fns {
			fn(change)
		}

		c.mu.Lock()
	}

	c.publishing = false
	c.mu.Unlock()
}

// subscribers must be called with c.mu held.
func (c *Controller[V]) subscribers() []func(Change[V]) {
	ids := make([]uint64, 0, len(c.observers))
	for id := range c.observers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(Change[V]), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, c.observers[id])
	}
	return fns
}

// current reports whether seq is the latest commit.
func (c *Controller[V]) current(seq uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.commits == seq
}

// enter fires the OnEntered handler registered for commit seq, at most once.
func (c *Controller[V]) enter(seq uint64) {
	c.mu.Lock()
	if c.commits != seq || c.entered {
		c.mu.Unlock()
		return
	}
	c.entered = true
	onEntered := c.handlers.OnEntered
	c.mu.Unlock()

	if onEntered != nil {
		onEntered()
	}
}

func (c *Controller[V]) snapshot() (V, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active, c.commits
}
