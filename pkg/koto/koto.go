// Package koto is the public embedding facade: the narrow surface a host
// program uses to drive iterators, generators and module imports without
// reaching into internal/*.
//
// Grounded on the teacher's pkg/embed.VM (pkg/embed/vm.go): a small struct
// wrapping the runtime's moving parts (there, a *vm.VM and a Marshaller;
// here, a *module.Loader) behind New()/Bind()-style methods, adapted from
// "run Funxy source and marshal values across the Go/Funxy boundary" (out
// of scope: no parser here) to "drive the value/iterator/generator/module
// machinery this core actually implements."
package koto

import (
	"github.com/koto-lang/koto/internal/iterator"
	"github.com/koto-lang/koto/internal/module"
	"github.com/koto-lang/koto/internal/value"
)

// Runtime is the embedding handle. A process normally builds one Runtime
// and shares it across every module it evaluates; the `iterator` extension
// registry it exposes is process-wide regardless.
type Runtime struct {
	Loader *module.Loader
}

// New builds a Runtime around source, the host's module evaluator, and an
// optional prelude of builtin modules.
func New(source module.Source, prelude *value.Map) *Runtime {
	return &Runtime{Loader: module.NewLoader(source, prelude, nil)}
}

// Iter promotes v to an Iterator (`iter(v)`).
func (r *Runtime) Iter(v value.Value) (value.Iterator, error) {
	return iterator.Iter(v)
}

// Next advances it (`next(it)`).
func (r *Runtime) Next(it value.Iterator) (value.Value, bool, error) {
	return it.Next()
}

// Copy returns an independent cursor over it (`copy(it)`).
func (r *Runtime) Copy(it value.Iterator) value.Iterator {
	return it.Copy()
}

// Register installs f as `iterator.name` (`register(name, f)`).
func (r *Runtime) Register(name string, f value.Function) {
	module.RegisterIteratorExt(name, f)
}

// Call invokes any Function value — a user closure, a builtin, or a bound
// overload method — uniformly.
func (r *Runtime) Call(fn value.Function, args []value.Value) (value.Value, error) {
	return fn.Call(args)
}

// NextGenerator resumes a Generator (`next(gen)`); exhaustion is permanent
// once reached.
func (r *Runtime) NextGenerator(g value.Generator) (value.Value, bool, error) {
	return g.Next()
}

// Import resolves name against currentExports/prelude/cache/sibling-file/
// sibling-directory.
func (r *Runtime) Import(currentExports *value.Map, baseDir, name string) (*value.Map, error) {
	return r.Loader.Import(currentExports, baseDir, name)
}

// FromImport binds the selected names out of an already-resolved module
// (`from M import a, b`).
func (r *Runtime) FromImport(mod *value.Map, names []string) (map[string]value.Value, error) {
	return module.FromImport(mod, names)
}

// NewExports builds an empty exports Map for a module about to be
// evaluated.
func NewExports() *value.Map {
	return value.NewMap()
}

// DumpExports renders a module's exports as YAML, for debug/introspection
// tooling built on top of this runtime.
func DumpExports(m *value.Map) (string, error) {
	return module.DumpExports(m)
}

// ExportsFunc builds the `koto.exports()` builtin for a module: a
// zero-argument Function returning a live handle to that module's exports
// map. Since Map is shared by reference, mutating the returned Map after
// the call still publishes new bindings into that same module at runtime.
func ExportsFunc(currentExports *value.Map) value.Function {
	return &value.GoFunc{
		Name: "exports",
		Fn: func(args []value.Value) (value.Value, error) {
			return currentExports, nil
		},
	}
}
