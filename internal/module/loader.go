package module

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/koto-lang/koto/internal/buildinfo"
	"github.com/koto-lang/koto/internal/koerr"
	"github.com/koto-lang/koto/internal/value"
)

// Source evaluates a resolved module file into its exports map. Real
// evaluation requires a parser and an interpreter loop, both out of scope
// for this core — Source is the same kind of narrow collaborator interface
// the teacher's Evaluator.Loader (ModuleLoader) is: the loader package
// knows resolution order and caching, never how a file becomes a Map.
type Source interface {
	Evaluate(absPath string) (*value.Map, error)
}

// TestsHook runs a module's @tests block against its freshly evaluated
// exports, returning an AssertionError-kind error on failure. Only invoked
// when the runtime's "run import tests" flag (buildinfo.RunImportTests) is
// set.
type TestsHook func(exports *value.Map) error

// Loader resolves and caches module imports, grounded on the
// teacher's internal/modules/loader.go (LoadedModules/ModulesByName/
// Processing/GlobalBundle), simplified to a single path->exports cache
// since this core has no package-name indirection layer, only file paths.
type Loader struct {
	mu       sync.Mutex
	cache    map[string]*value.Map
	source   Source
	prelude  *value.Map
	tests    TestsHook
	runTests bool
	Log      *Logger
}

// NewLoader builds a Loader. prelude may be nil if the embedding host
// exposes no builtin modules.
func NewLoader(source Source, prelude *value.Map, tests TestsHook) *Loader {
	return &Loader{
		cache:    make(map[string]*value.Map),
		source:   source,
		prelude:  prelude,
		tests:    tests,
		runTests: buildinfo.RunImportTests,
		Log:      NewLogger(nil),
	}
}

// Import resolves name against, in order: currentExports, the prelude, the
// module cache, a sibling `<name>.koto` file, then a sibling
// `<name>/main.koto`. A module loaded via
// the file-system steps is evaluated once and cached by absolute path.
func (l *Loader) Import(currentExports *value.Map, baseDir, name string) (*value.Map, error) {
	if currentExports != nil {
		if m, ok := lookupMapExport(currentExports, name); ok {
			return m, nil
		}
	}
	if l.prelude != nil {
		if m, ok := lookupMapExport(l.prelude, name); ok {
			return m, nil
		}
	}
	absPath, err := resolveSiblingPath(baseDir, name)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	if cached, ok := l.cache[absPath]; ok {
		l.mu.Unlock()
		return cached, nil
	}
	l.mu.Unlock()

	exports, err := l.source.Evaluate(absPath)
	if err != nil {
		return nil, koerr.New(koerr.ImportError, "failed to import %q: %v", name, err)
	}
	if l.runTests && l.tests != nil {
		if err := l.tests(exports); err != nil {
			return nil, err
		}
	}

	l.mu.Lock()
	l.cache[absPath] = exports
	l.mu.Unlock()
	l.Log.Printf("imported %q from %s", name, absPath)
	return exports, nil
}

// FromImport resolves `from M import a, b`: module is the already-resolved
// exports map, names are the bindings to pull out. Missing names raise
// ImportError rather than returning Empty, since a typo in an explicit
// import list is a program error, not a missing-optional-key lookup.
func FromImport(module *value.Map, names []string) (map[string]value.Value, error) {
	out := make(map[string]value.Value, len(names))
	for _, n := range names {
		v, ok := module.Get(value.String{Value: n})
		if !ok {
			return nil, koerr.New(koerr.ImportError, "module has no export %q", n)
		}
		out[n] = v
	}
	return out, nil
}

// ImportSiblings loads several sibling modules concurrently, grounded on
// the domain stack's errgroup wiring: loading is pure file I/O plus
// opaque evaluation with no shared mutable runtime state between the
// modules being loaded, unlike iterator/generator execution, which stays
// strictly single-threaded. Every import runs to completion; if any of them
// fails, the first error is returned and no results are.
func (l *Loader) ImportSiblings(currentExports *value.Map, baseDir string, names []string) (map[string]*value.Map, error) {
	results := make(map[string]*value.Map, len(names))
	var mu sync.Mutex

	g, _ := errgroup.WithContext(context.Background())
	for _, name := range names {
		name := name
		g.Go(func() error {
			m, err := l.Import(currentExports, baseDir, name)
			if err != nil {
				return err
			}
			mu.Lock()
			results[name] = m
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func lookupMapExport(m *value.Map, name string) (*value.Map, bool) {
	v, ok := m.Get(value.String{Value: name})
	if !ok {
		return nil, false
	}
	nested, ok := v.(*value.Map)
	return nested, ok
}
