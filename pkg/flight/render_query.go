package flight

import (
	"cmp"
	"slices"
)

// InFlight returns the calculated particles, sorted by Options.Less when set.
//
// The slice is reused on every call and is only valid until the next one.
func (a *Animator[P, C]) InFlight() []C {
	a.inFlight = a.inFlight[:0]
	for _, f := range a.active {
		if f.calc.Showed() {
			a.inFlight = append(a.inFlight, f.calc)
		}
	}
	if a.less != nil {
		slices.SortStableFunc(a.inFlight, a.less)
	}
	return a.inFlight
}

// Draw draws InFlight() in order onto s.
func (a *Animator[P, C]) Draw(s Surface) {
	for _, c := range a.InFlight() {
		c.Draw(s)
	}
}

// SortByKey builds an ascending comparator from a key selector.
func SortByKey[C any, K cmp.Ordered](key func(C) K) func(a, b C) int {
	return func(a, b C) int {
		return cmp.Compare(key(a), key(b))
	}
}
