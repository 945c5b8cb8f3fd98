package navigation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type view string

const (
	home     view = "home"
	settings view = "settings"
	about    view = "about"
)

func newTestController() *Controller[view] {
	return New([]view{home, settings}, home)
}

func TestNewIncludesDefault(t *testing.T) {
	c := New([]view{settings, about, settings}, home)

	assert.Equal(t, home, c.Active())
	assert.Equal(t, []view{settings, about, home}, c.Views())
	assert.True(t, c.HasView(home))
	assert.False(t, c.HasView("missing"))
}

func TestNewDefaultAlreadyDeclared(t *testing.T) {
	c := New([]view{home, settings}, settings)

	assert.Equal(t, settings, c.Active())
	assert.Equal(t, []view{home, settings}, c.Views())
}

func TestViewsReturnsCopy(t *testing.T) {
	c := newTestController()
	vs := c.Views()
	vs[0] = "mutated"

	assert.Equal(t, []view{home, settings}, c.Views())
}

func TestNavigateWithoutHandlerCommits(t *testing.T) {
	c := newTestController()
	RegisterHandlers(c, Handlers[view]{OnEntered: func() {}})

	assert.Equal(t, Proceeded, c.Navigate(settings))
	assert.Equal(t, settings, c.Active())
	assert.Nil(t, c.handlers.OnEntered)
	assert.Nil(t, c.handlers.OnExit)
}

func TestNavigateHandlerProceeds(t *testing.T) {
	c := newTestController()
	calls := 0
	RegisterHandlers(c, Handlers[view]{OnExit: func(e *ExitEvent[view]) {
		calls++
		assert.Equal(t, home, e.From())
		assert.Equal(t, settings, e.Target())
	}})

	assert.Equal(t, Proceeded, c.Navigate(settings))
	assert.Equal(t, 1, calls)
	assert.Equal(t, settings, c.Active())
	assert.Nil(t, c.handlers.OnExit)
}

func TestNavigatePrevented(t *testing.T) {
	c := newTestController()
	calls := 0
	RegisterHandlers(c, Handlers[view]{OnExit: func(e *ExitEvent[view]) {
		calls++
		e.Prevent()
	}})

	assert.Equal(t, Prevented, c.Navigate(settings))
	assert.Equal(t, home, c.Active())
	require.NotNil(t, c.handlers.OnExit, "handlers must stay registered")

	// The still-active view keeps intercepting
	assert.Equal(t, Prevented, c.Navigate(settings))
	assert.Equal(t, 2, calls)
}

func TestNavigateSuspendedThenResumed(t *testing.T) {
	c := newTestController()
	var r *Resumer[view]
	RegisterHandlers(c, Handlers[view]{OnExit: func(e *ExitEvent[view]) {
		r = e.Suspend()
	}})

	assert.Equal(t, Suspended, c.Navigate(settings))
	assert.Equal(t, home, c.Active())
	require.NotNil(t, r)
	assert.Equal(t, settings, r.Target())
	require.NotNil(t, c.handlers.OnExit)

	assert.Equal(t, Resumed, r.Resume())
	assert.Equal(t, settings, c.Active())
	assert.Nil(t, c.handlers.OnExit)
	assert.Nil(t, c.pending)

	assert.Equal(t, Ignored, r.Resume())
	assert.Equal(t, settings, c.Active())
}

func TestNewNavigationInvalidatesPendingResumer(t *testing.T) {
	c := newTestController()
	var resumers []*Resumer[view]
	RegisterHandlers(c, Handlers[view]{OnExit: func(e *ExitEvent[view]) {
		resumers = append(resumers, e.Suspend())
	}})

	assert.Equal(t, Suspended, c.Navigate(settings))
	assert.Equal(t, Suspended, c.Navigate(settings))
	require.Len(t, resumers, 2)
	r1, r2 := resumers[0], resumers[1]
	assert.NotSame(t, r1, r2)
	assert.Less(t, r1.Generation(), r2.Generation())

	assert.Equal(t, Ignored, r1.Resume())
	assert.Equal(t, home, c.Active())

	assert.Equal(t, Resumed, r2.Resume())
	assert.Equal(t, settings, c.Active())
}

func TestPendingResumerClearedEvenWithoutHandler(t *testing.T) {
	c := New([]view{home, settings, about}, home)
	var r *Resumer[view]
	RegisterHandlers(c, Handlers[view]{OnExit: func(e *ExitEvent[view]) {
		r = e.Suspend()
	}})
	require.Equal(t, Suspended, c.Navigate(settings))

	// The handler prevents this time, but the attempt still supersedes r.
	RegisterHandlers(c, Handlers[view]{OnExit: func(e *ExitEvent[view]) {
		e.Prevent()
	}})
	assert.Equal(t, Prevented, c.Navigate(about))
	assert.Equal(t, Ignored, r.Resume())
	assert.Equal(t, home, c.Active())
}

func TestPreventThenSuspendFirstWins(t *testing.T) {
	c := newTestController()
	var r *Resumer[view]
	RegisterHandlers(c, Handlers[view]{OnExit: func(e *ExitEvent[view]) {
		e.Prevent()
		r = e.Suspend()
	}})

	assert.Equal(t, Prevented, c.Navigate(settings))
	require.NotNil(t, r)
	assert.Equal(t, Ignored, r.Resume())
	assert.Equal(t, home, c.Active())
}

func TestSuspendThenPreventFirstWins(t *testing.T) {
	c := newTestController()
	var first, second *Resumer[view]
	RegisterHandlers(c, Handlers[view]{OnExit: func(e *ExitEvent[view]) {
		first = e.Suspend()
		e.Prevent()
		second = e.Suspend()
	}})

	assert.Equal(t, Suspended, c.Navigate(settings))
	assert.Same(t, first, second)
	assert.Equal(t, Resumed, first.Resume())
	assert.Equal(t, settings, c.Active())
}

func TestEventUnusableAfterHandlerReturns(t *testing.T) {
	c := newTestController()
	var kept *ExitEvent[view]
	RegisterHandlers(c, Handlers[view]{OnExit: func(e *ExitEvent[view]) {
		kept = e
		e.Prevent()
	}})
	require.Equal(t, Prevented, c.Navigate(settings))

	r := kept.Suspend()
	assert.Equal(t, Ignored, r.Resume())
	assert.Nil(t, c.pending)
	assert.Equal(t, home, c.Active())
}

func TestNavigateUnknownViewRejected(t *testing.T) {
	c := newTestController()
	var r *Resumer[view]
	exits := 0
	RegisterHandlers(c, Handlers[view]{OnExit: func(e *ExitEvent[view]) {
		exits++
		r = e.Suspend()
	}})
	require.Equal(t, Suspended, c.Navigate(settings))

	assert.Equal(t, Rejected, c.Navigate("nowhere"))
	assert.Equal(t, 1, exits)
	assert.Equal(t, home, c.Active())

	// A rejected attempt does not supersede the pending resumer
	assert.Equal(t, Resumed, r.Resume())
	assert.Equal(t, settings, c.Active())
}

func TestReentrantNavigateIsBusy(t *testing.T) {
	c := New([]view{home, settings, about}, home)
	var nested Outcome
	RegisterHandlers(c, Handlers[view]{OnExit: func(e *ExitEvent[view]) {
		nested = c.Navigate(about)
	}})

	assert.Equal(t, Proceeded, c.Navigate(settings))
	assert.Equal(t, Busy, nested)
	assert.Equal(t, settings, c.Active())
}

func TestObserverMayNavigate(t *testing.T) {
	c := New([]view{home, settings, about}, home)
	var redirect Outcome
	c.Subscribe(func(ch Change[view]) {
		if ch.To == settings {
			redirect = c.Navigate(about)
		}
	})

	assert.Equal(t, Proceeded, c.Navigate(settings))
	assert.Equal(t, Proceeded, redirect)
	assert.Equal(t, about, c.Active())
}

func TestObserversSeeCommitOrder(t *testing.T) {
	c := New([]view{home, settings, about}, home)
	c.Subscribe(func(ch Change[view]) {
		if ch.To == settings {
			c.Navigate(about)
		}
	})
	var got []uint64
	var active []view
	c.Subscribe(func(ch Change[view]) {
		got = append(got, ch.Seq)
		active = append(active, c.Active())
	})

	c.Navigate(settings)

	assert.Equal(t, []uint64{1, 2}, got)
	// The redirect committed before the second observer saw the first change
	assert.Equal(t, []view{about, about}, active)
}

func TestIsActive(t *testing.T) {
	c := newTestController()
	assert.True(t, c.IsActive(home))
	assert.False(t, c.IsActive(settings))

	c.Navigate(settings)
	assert.False(t, c.IsActive(home))
	assert.True(t, c.IsActive(settings))
}

func TestNavigatorMatchesNavigate(t *testing.T) {
	c := newTestController()
	prevent := true
	exits := 0
	RegisterHandlers(c, Handlers[view]{OnExit: func(e *ExitEvent[view]) {
		exits++
		if prevent {
			e.Prevent()
		}
	}})

	toSettings := c.Navigator(settings)
	toSettings()
	assert.Equal(t, home, c.Active())
	assert.Equal(t, 1, exits)

	prevent = false
	toSettings()
	assert.Equal(t, settings, c.Active())
	assert.Equal(t, 2, exits)
}

func TestRegisterHandlersReplaces(t *testing.T) {
	c := newTestController()
	RegisterHandlers(c, Handlers[view]{
		OnEntered: func() {},
		OnExit:    func(e *ExitEvent[view]) { e.Prevent() },
	})
	RegisterHandlers(c, Handlers[view]{OnEntered: func() {}})

	assert.Nil(t, c.handlers.OnExit)
	assert.Equal(t, Proceeded, c.Navigate(settings))
}

func TestSubscribeReceivesChanges(t *testing.T) {
	c := newTestController()
	var got []Change[view]
	unsubscribe := c.Subscribe(func(ch Change[view]) {
		got = append(got, ch)
	})

	c.Navigate(settings)
	RegisterHandlers(c, Handlers[view]{OnExit: func(e *ExitEvent[view]) { e.Prevent() }})
	c.Navigate(home)
	unsubscribe()
	unsubscribe()
	RegisterHandlers(c, Handlers[view]{})
	c.Navigate(home)

	assert.Equal(t, []Change[view]{{From: home, To: settings, Seq: 1}}, got)
}

func TestSubscribeNotifiedOnResume(t *testing.T) {
	c := newTestController()
	var got []Change[view]
	c.Subscribe(func(ch Change[view]) { got = append(got, ch) })

	var r *Resumer[view]
	RegisterHandlers(c, Handlers[view]{OnExit: func(e *ExitEvent[view]) { r = e.Suspend() }})
	c.Navigate(settings)
	assert.Empty(t, got)

	r.Resume()
	assert.Equal(t, []Change[view]{{From: home, To: settings, Seq: 1}}, got)
}

func TestResumeFromAnotherGoroutine(t *testing.T) {
	c := newTestController()
	var r *Resumer[view]
	RegisterHandlers(c, Handlers[view]{OnExit: func(e *ExitEvent[view]) { r = e.Suspend() }})
	require.Equal(t, Suspended, c.Navigate(settings))

	results := make(chan ResumeResult, 4)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- r.Resume()
		}()
	}
	wg.Wait()
	close(results)

	resumed := 0
	for res := range results {
		if res == Resumed {
			resumed++
		}
	}
	assert.Equal(t, 1, resumed)
	assert.Equal(t, settings, c.Active())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "proceeded", Proceeded.String())
	assert.Equal(t, "prevented", Prevented.String())
	assert.Equal(t, "suspended", Suspended.String())
	assert.Equal(t, "rejected", Rejected.String())
	assert.Equal(t, "busy", Busy.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
