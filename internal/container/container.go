// Package container builds Container Views: the one-shot,
// restartable-per-MakeView cursors that sit underneath the Iterator object
// for every built-in sequence kind — List, Tuple, Map, String, Range, Num2
// and Num4.
//
// Grounded on the teacher's evaluator dispatch style
// (internal/evaluator/expressions_operators.go): a single type switch per
// operation rather than a method on every concrete type, since the concrete
// List/Map/etc. types live in package value and a View implementation here
// would otherwise need value to import container back.
package container

import (
	"github.com/koto-lang/koto/internal/koerr"
	"github.com/koto-lang/koto/internal/value"
)

// generationSource is satisfied by value.List and value.Map: any built-in
// collection whose structural mutations must be visible to an in-flight
// view so concurrent modification can be detected.
type generationSource interface {
	Generation() uint64
}

// CheckedView is a value.View that additionally remembers why it stopped:
// Err returns the ConcurrentModification error when a structural mutation
// was observed mid-iteration, nil on ordinary exhaustion.
type CheckedView interface {
	value.View
	Err() error
}

// MakeView builds a fresh cursor over v's elements, or (nil, false) if v is
// not a built-in container kind.
func MakeView(v value.Value) (value.View, bool) {
	switch x := v.(type) {
	case *value.List:
		return newGuardedView(newListView(x), x), true
	case value.Tuple:
		return newTupleView(x), true
	case *value.Map:
		return newGuardedView(newMapView(x), x), true
	case value.String:
		return newStringView(x), true
	case value.Range:
		return newRangeView(x), true
	case value.Num2:
		return newNumView(2, func(i int) (float64, bool) { return x.Get(i) }), true
	case value.Num4:
		return newNumView(4, func(i int) (float64, bool) { return x.Get(i) }), true
	default:
		return nil, false
	}
}

// guardedView wraps an inner view over a mutable collection (List/Map) and
// checks the collection's generation counter before every Next(), raising
// ConcurrentModification the moment a structural mutation is observed
// instead of silently skipping or re-reading elements.
type guardedView struct {
	inner   value.View
	source  generationSource
	gen     uint64
	err     error
}

func newGuardedView(inner value.View, source generationSource) *guardedView {
	return &guardedView{inner: inner, source: source, gen: source.Generation()}
}

func (g *guardedView) Next() (value.Value, bool) {
	if g.err != nil {
		return nil, false
	}
	if g.source.Generation() != g.gen {
		g.err = koerr.New(koerr.ConcurrentModification, "collection modified during iteration")
		return nil, false
	}
	return g.inner.Next()
}

func (g *guardedView) Copy() value.View {
	return &guardedView{inner: g.inner.Copy(), source: g.source, gen: g.gen, err: g.err}
}

func (g *guardedView) Err() error { return g.err }
