package mutate

import (
	"dws-console/internal/nav"
	"dws-console/internal/store"
)

// Result is the outcome of one reducer: the next state plus the side effects the
// console applies (navigation and the journal event).
type Result struct {
	State   store.State
	Changed bool

	// Navigate is only meaningful when Navigates is set.
	Navigate  nav.Screen
	Navigates bool

	EventType    string
	EntityID     string
	EventPayload map[string]any
}

func (r Result) navigateTo(s nav.Screen) Result {
	r.Navigate = s
	r.Navigates = true
	return r
}

// prepend returns a new slice with items in front of xs; xs is not modified.
func prepend[T any](xs []T, items ...T) []T {
	out := make([]T, 0, len(items)+len(xs))
	out = append(out, items...)
	return append(out, xs...)
}
