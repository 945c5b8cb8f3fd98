// Package input turns hardware button presses read from evdev devices into
// navigation requests.
package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/paneswitch/pkg/paneswitch/constants"
	"github.com/BrandonKowalski/paneswitch/pkg/paneswitch/internal"
	"github.com/BrandonKowalski/paneswitch/pkg/paneswitch/navigation"
)

// ErrListening is returned by Listen when the listener is already reading a source.
var ErrListening = errors.New("input: listener already running")

// keyPressed is the evdev value of a key-down event (0 is release, 2 is autorepeat).
const keyPressed = 1

// Source yields input events. *evdev.InputDevice satisfies it.
// Close must make a blocked ReadOne return.
type Source interface {
	ReadOne() (*evdev.InputEvent, error)
	io.Closer
}

// Open opens the evdev device at path.
func Open(path string) (*evdev.InputDevice, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: open %s: %w", path, err)
	}
	return dev, nil
}

// DefaultKeyMap maps common keyboard keys and gamepad buttons to virtual buttons.
func DefaultKeyMap() map[evdev.EvCode]constants.VirtualButton {
	return map[evdev.EvCode]constants.VirtualButton{
		evdev.KEY_UP:     constants.VirtualButtonUp,
		evdev.KEY_DOWN:   constants.VirtualButtonDown,
		evdev.KEY_LEFT:   constants.VirtualButtonLeft,
		evdev.KEY_RIGHT:  constants.VirtualButtonRight,
		evdev.KEY_ENTER:  constants.VirtualButtonA,
		evdev.KEY_ESC:    constants.VirtualButtonB,
		evdev.KEY_MENU:   constants.VirtualButtonMenu,
		evdev.BTN_SOUTH:  constants.VirtualButtonA,
		evdev.BTN_EAST:   constants.VirtualButtonB,
		evdev.BTN_NORTH:  constants.VirtualButtonX,
		evdev.BTN_WEST:   constants.VirtualButtonY,
		evdev.BTN_TL:     constants.VirtualButtonL1,
		evdev.BTN_TR:     constants.VirtualButtonR1,
		evdev.BTN_START:  constants.VirtualButtonStart,
		evdev.BTN_SELECT: constants.VirtualButtonSelect,
		evdev.BTN_MODE:   constants.VirtualButtonMenu,
	}
}

// Listener navigates when bound buttons are pressed.
type Listener[V ~string] struct {
	nav navigation.Navigation[V]

	mu     sync.RWMutex
	keys   map[evdev.EvCode]constants.VirtualButton
	routes map[constants.VirtualButton]V
	steps  map[constants.VirtualButton]int

	running atomic.Bool
	logger  *slog.Logger
}

// NewListener creates a listener for nav. A nil keys map uses DefaultKeyMap.
func NewListener[V ~string](nav navigation.Navigation[V], keys map[evdev.EvCode]constants.VirtualButton) *Listener[V] {
	if keys == nil {
		keys = DefaultKeyMap()
	}
	return &Listener[V]{
		nav:    nav,
		keys:   keys,
		routes: make(map[constants.VirtualButton]V),
		steps:  make(map[constants.VirtualButton]int),
		logger: internal.GetInternalLogger(),
	}
}

// Bind makes a press of button navigate to view.
func (l *Listener[V]) Bind(button constants.VirtualButton, view V) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.routes[button] = view
	delete(l.steps, button)
}

// BindCycle makes prev and next step through the views in declaration order,
// wrapping around at either end. It replaces any view bound to those buttons.
func (l *Listener[V]) BindCycle(prev, next constants.VirtualButton) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.routes, prev)
	delete(l.routes, next)
	l.steps[prev] = -1
	l.steps[next] = 1
}

// BindAll binds every entry of bindings, as produced by a view descriptor.
func (l *Listener[V]) BindAll(bindings map[constants.VirtualButton]string) {
	for button, view := range bindings {
		l.Bind(button, V(view))
	}
}

// Handle routes one event. It reports false for events that are not presses of
// a bound button.
func (l *Listener[V]) Handle(ev *evdev.InputEvent) (navigation.Outcome, bool) {
	if ev == nil || ev.Type != evdev.EV_KEY || ev.Value != keyPressed {
		return 0, false
	}

	l.mu.RLock()
	button, mapped := l.keys[ev.Code]
	view, routed := l.routes[button]
	step, cycles := l.steps[button]
	l.mu.RUnlock()

	if !mapped {
		return 0, false
	}
	if cycles {
		view, routed = l.neighbor(step)
	}
	if !routed {
		return 0, false
	}

	outcome := l.nav.Navigate(view)
	l.logger.Debug("button navigation",
		"button", button.GetName(),
		"view", string(view),
		"outcome", outcome.String())
	return outcome, true
}

func (l *Listener[V]) neighbor(step int) (V, bool) {
	views := l.nav.Views()
	if len(views) == 0 {
		return "", false
	}
	i := slices.Index(views, l.nav.Active())
	n := len(views)
	return views[((i+step)%n+n)%n], true
}

// Listen reads events from src and routes them until ctx is done or src fails.
// On cancellation src is closed and Listen returns once its reader goroutine
// has exited.
func (l *Listener[V]) Listen(ctx context.Context, src Source) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrListening
	}
	defer l.running.Store(false)

	events := make(chan *evdev.InputEvent)
	errc := make(chan error, 1)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			ev, err := src.ReadOne()
			if err != nil {
				errc <- err
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			if err := src.Close(); err != nil {
				l.logger.Error("failed to close input source", "error", err)
			}
			<-done
			return ctx.Err()
		case err := <-errc:
			<-done
			return fmt.Errorf("input: read: %w", err)
		case ev := <-events:
			l.Handle(ev)
		}
	}
}
