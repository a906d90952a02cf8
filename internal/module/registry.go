// Package module implements the Module & Extension Registry:
// import resolution order, module caching, `@tests` gating, and the mutable
// `iterator` namespace that lets `iterator.foo = f` register a new adaptor
// callable as `it.foo(args...)`.
//
// Grounded on the teacher's ext_registry.go (internal/evaluator), a
// sync.RWMutex-guarded global map of per-type extension methods; adapted
// from its two-level map[string]map[string]Object (one sub-map per user
// type) down to a single map[string]Function, since this registry only ever
// extends the one built-in `iterator` namespace, not arbitrary user types.
package module

import (
	"sync"

	"github.com/koto-lang/koto/internal/koerr"
	"github.com/koto-lang/koto/internal/value"
)

var (
	extMu  sync.RWMutex
	extReg = map[string]value.Function{}
)

// RegisterIteratorExt installs f as `iterator.name`, making `it.name(args)`
// callable on every Iterator from this point on in the process — the
// registry is process-wide, not per-module: visible to every iterator
// value created afterward, anywhere in the process.
func RegisterIteratorExt(name string, f value.Function) {
	extMu.Lock()
	defer extMu.Unlock()
	extReg[name] = f
}

// LookupIteratorExt returns the registered extension function for name, if
// any.
func LookupIteratorExt(name string) (value.Function, bool) {
	extMu.RLock()
	defer extMu.RUnlock()
	f, ok := extReg[name]
	return f, ok
}

// CallIteratorExt invokes the registered extension f(it, args...), the
// dispatch used for a non-builtin method name on an Iterator.
func CallIteratorExt(name string, it value.Value, args []value.Value) (value.Value, error) {
	f, ok := LookupIteratorExt(name)
	if !ok {
		return nil, koerr.New(koerr.TypeError, "iterator has no method %q", name)
	}
	full := make([]value.Value, 0, len(args)+1)
	full = append(full, it)
	full = append(full, args...)
	return f.Call(full)
}

// ClearIteratorExts resets the registry — exposed for tests, mirroring the
// teacher's ClearExtBuiltins.
func ClearIteratorExts() {
	extMu.Lock()
	defer extMu.Unlock()
	extReg = map[string]value.Function{}
}
