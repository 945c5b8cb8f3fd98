package navigation

// DefaultViewProperty is the property PropKey reads when given no names.
const DefaultViewProperty = "view"

// Select returns the first pane whose key equals active.
// Panes without a key are skipped. Uniqueness among panes is not checked.
func Select[V ~string, P any](active V, panes []P, key func(P) (V, bool)) (P, bool) {
	for _, p := range panes {
		if v, ok := key(p); ok && v == active {
			return p, true
		}
	}
	var zero P
	return zero, false
}

// PropKey returns a key function reading the view identifier from a property bag.
//
// With no names it reads DefaultViewProperty. With several names the first name
// present in the bag is used, even if its value is not a view identifier.
// String values and values of type V are accepted.
func PropKey[V ~string](names ...string) func(map[string]any) (V, bool) {
	if len(names) == 0 {
		names = []string{DefaultViewProperty}
	}

	return func(props map[string]any) (V, bool) {
		for _, name := range names {
			raw, ok := props[name]
			if !ok {
				continue
			}
			switch v := raw.(type) {
			case V:
				return v, true
			case string:
				return V(v), true
			default:
				return "", false
			}
		}
		return "", false
	}
}

// Pane is a view-bearing child the Host can show.
type Pane[V ~string] interface {
	View() V
}

// Mounter is implemented by panes that register handlers when they become active.
type Mounter[V ~string] interface {
	Mount(c *Controller[V])
}

func paneKey[V ~string, P Pane[V]](p P) (V, bool) {
	return p.View(), true
}
