// Package navigation provides single-active-view navigation with exit interception.
//
// A Controller owns a fixed set of mutually exclusive views and tracks which one is
// active. Callers request transitions with Navigate; the active view can intercept a
// transition through the OnExit handler it registered and either let it proceed,
// prevent it, or suspend it until some asynchronous work finishes.
//
// # Basic Usage
//
//	// Define view identifiers as typed constants
//	type View string
//
//	const (
//	    ViewHome     View = "home"
//	    ViewSettings View = "settings"
//	)
//
//	nav := navigation.New([]View{ViewHome, ViewSettings}, ViewHome)
//
//	// The active view installs its handlers every time it is shown
//	navigation.RegisterHandlers(nav, navigation.Handlers[View]{
//	    OnExit: func(e *navigation.ExitEvent[View]) {
//	        if hasUnsavedChanges() {
//	            e.Prevent()
//	        }
//	    },
//	})
//
//	nav.Navigate(ViewSettings)
//
// # Suspending a Transition
//
// An exit handler may defer the decision. Suspend returns a Resumer that completes the
// transition later without running the exit handler again:
//
//	OnExit: func(e *navigation.ExitEvent[View]) {
//	    resume := e.Suspend()
//	    confirm("Discard changes?", func(ok bool) {
//	        if ok {
//	            resume.Resume()
//	        }
//	    })
//	}
//
// Only one suspended transition exists at a time. Any later Navigate call invalidates
// the pending resumer, and invoking a stale resumer reports Ignored.
//
// # Handler Scope
//
// Handlers belong to the view that was active when they were registered. Every commit
// clears them, so the newly active view starts unregistered and must register its own.
// Host automates this for panes that implement Mounter.
package navigation
