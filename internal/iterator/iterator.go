// Package iterator implements the Iterator Object: the polymorphic handle
// produced by `.iter()` over a container View, a Generator, or a stack of
// lazy adaptors, plus its terminal consumers.
//
// Grounded on the teacher's evaluator dispatch style for chained builtin
// calls (internal/evaluator/builtins_fp.go's map/filter/fold family) for
// the adaptor/terminal shapes, and on object_advanced.go's identity-token
// pattern for the uuid field used in Display.
package iterator

import (
	"github.com/google/uuid"

	"github.com/koto-lang/koto/internal/container"
	"github.com/koto-lang/koto/internal/generator"
	"github.com/koto-lang/koto/internal/koerr"
	"github.com/koto-lang/koto/internal/module"
	"github.com/koto-lang/koto/internal/value"
)

// source is the internal pull contract every concrete producer (a View, a
// Generator, an adaptor) satisfies. Iterator itself is just a handle over
// one source.
type source interface {
	next() (value.Value, bool, error)
	copy() source
}

// Iterator is the runtime value returned by `.iter()` and every adaptor
// call. Satisfies value.Iterator.
type Iterator struct {
	id  uuid.UUID
	src source
}

func wrap(src source) *Iterator {
	return &Iterator{id: uuid.New(), src: src}
}

func (it *Iterator) Kind() value.Kind { return value.KindIterator }
func (it *Iterator) Display() string  { return "Iterator(" + it.id.String() + ")" }

// Next pulls the next element, or (Empty, false, nil) at exhaustion, or a
// propagated error (including container.CheckedView's ConcurrentModification
// and a Generator's raise).
func (it *Iterator) Next() (value.Value, bool, error) {
	v, ok, err := it.src.next()
	if !ok && err == nil {
		return value.Nil, false, nil
	}
	return v, ok, err
}

// Copy returns a new Iterator handle that continues independently from the
// same logical position: consuming from one copy does not affect the other.
// View-backed sources fork by copying the View's cursor (View.Copy);
// Generator-backed sources fork the underlying frame (see
// generator.Generator.Fork), except a generatorValue that is not a
// *generator.Generator, whose copy shares the frame (see generatorSource).
func (it *Iterator) Copy() value.Iterator {
	return wrap(it.src.copy())
}

// CallExtension dispatches a non-builtin method name against the `iterator`
// namespace: `it.foo(args...)` invokes whatever `iterator.foo` was last
// assigned as `f(it, args...)`.
func (it *Iterator) CallExtension(name string, args []value.Value) (value.Value, error) {
	return module.CallIteratorExt(name, it, args)
}

// viewSource adapts a value.View (and, when present, its
// container.CheckedView error channel) to source.
type viewSource struct {
	v value.View
}

func (s *viewSource) next() (value.Value, bool, error) {
	v, ok := s.v.Next()
	if ok {
		return v, true, nil
	}
	if cv, isChecked := s.v.(container.CheckedView); isChecked {
		if err := cv.Err(); err != nil {
			return nil, false, err
		}
	}
	return nil, false, nil
}

func (s *viewSource) copy() source { return &viewSource{v: s.v.Copy()} }

// generatorValue is the narrow contract this package needs from a
// Generator, matching value.Generator exactly.
type generatorValue interface {
	value.Value
	Next() (value.Value, bool, error)
}

// generatorSource adapts a Generator to source. copy() forks an independent
// continuation when the underlying Generator supports it (see
// generator.Generator.Fork); otherwise it falls back to sharing the same
// frame, the best any generatorValue without a Fork method can offer.
type generatorSource struct {
	g generatorValue
}

func (s *generatorSource) next() (value.Value, bool, error) { return s.g.Next() }

func (s *generatorSource) copy() source {
	if g, ok := s.g.(*generator.Generator); ok {
		return &generatorSource{g: g.Fork()}
	}
	return s
}

// FromView builds an Iterator over a container View.
func FromView(v value.View) *Iterator { return wrap(&viewSource{v: v}) }

// FromGenerator builds an Iterator over a Generator.
func FromGenerator(g generatorValue) *Iterator { return wrap(&generatorSource{g: g}) }

// Iter promotes any iterable Value to an Iterator: built-in containers via
// container.MakeView, Generators directly, an already-built Iterator is
// returned unchanged (idempotent), and Objects via their @iterator overload,
// recursively promoting whatever that overload returns.
func Iter(v value.Value) (*Iterator, error) {
	switch x := v.(type) {
	case *Iterator:
		return x, nil
	case generatorValue:
		return FromGenerator(x), nil
	}
	if view, ok := container.MakeView(v); ok {
		return FromView(view), nil
	}
	if obj, ok := v.(*value.Object); ok {
		if fn, has := obj.Overload(value.OverloadIter); has {
			result, err := fn.Call([]value.Value{obj})
			if err != nil {
				return nil, err
			}
			return Iter(result)
		}
	}
	return nil, koerr.New(koerr.TypeError, "value of kind %s is not iterable", v.Kind())
}
