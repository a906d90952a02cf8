package module

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/koto-lang/koto/internal/koerr"
	"github.com/koto-lang/koto/internal/value"
)

type fakeSource struct {
	calls int
	exports func(absPath string) *value.Map
}

func (s *fakeSource) Evaluate(absPath string) (*value.Map, error) {
	s.calls++
	return s.exports(absPath), nil
}

func TestImportResolvesSiblingFileAndCaches(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "greet.koto"), []byte("# stub"), 0o644); err != nil {
		t.Fatal(err)
	}
	src := &fakeSource{exports: func(absPath string) *value.Map {
		m := value.NewMap()
		m.Put(value.String{Value: "path"}, value.String{Value: absPath})
		return m
	}}
	l := NewLoader(src, nil, nil)

	m1, err := l.Import(nil, dir, "greet")
	if err != nil {
		t.Fatal(err)
	}
	m2, err := l.Import(nil, dir, "greet")
	if err != nil {
		t.Fatal(err)
	}
	if m1 != m2 {
		t.Fatal("expected second import to return the cached module")
	}
	if src.calls != 1 {
		t.Fatalf("expected Evaluate to run once, ran %d times", src.calls)
	}
}

func TestImportResolvesSiblingDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "pkg")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "main.koto"), []byte("# stub"), 0o644); err != nil {
		t.Fatal(err)
	}
	src := &fakeSource{exports: func(absPath string) *value.Map { return value.NewMap() }}
	l := NewLoader(src, nil, nil)

	if _, err := l.Import(nil, dir, "pkg"); err != nil {
		t.Fatal(err)
	}
}

func TestImportMissingModuleIsImportError(t *testing.T) {
	dir := t.TempDir()
	src := &fakeSource{exports: func(absPath string) *value.Map { return value.NewMap() }}
	l := NewLoader(src, nil, nil)

	_, err := l.Import(nil, dir, "nope")
	if err == nil {
		t.Fatal("expected an error for a missing module")
	}
	kerr, ok := err.(*koerr.Error)
	if !ok || kerr.Kind != koerr.ImportError {
		t.Fatalf("expected ImportError, got %v", err)
	}
}

func TestImportPrefersCurrentExports(t *testing.T) {
	current := value.NewMap()
	selfModule := value.NewMap()
	current.Put(value.String{Value: "self"}, selfModule)

	src := &fakeSource{exports: func(absPath string) *value.Map {
		t.Fatal("should not need to evaluate a sibling when already present in current exports")
		return nil
	}}
	l := NewLoader(src, nil, nil)

	m, err := l.Import(current, t.TempDir(), "self")
	if err != nil {
		t.Fatal(err)
	}
	if m != selfModule {
		t.Fatal("expected the current-exports entry to be returned")
	}
}

func TestFromImportMissingExportIsError(t *testing.T) {
	m := value.NewMap()
	m.Put(value.String{Value: "a"}, value.Int(1))
	if _, err := FromImport(m, []string{"a", "missing"}); err == nil {
		t.Fatal("expected an error for a missing named export")
	}
}

func TestFromImportBindsSelectedNames(t *testing.T) {
	m := value.NewMap()
	m.Put(value.String{Value: "a"}, value.Int(1))
	m.Put(value.String{Value: "b"}, value.Int(2))
	bound, err := FromImport(m, []string{"a"})
	if err != nil {
		t.Fatal(err)
	}
	if len(bound) != 1 || bound["a"].(value.Number).AsInt() != 1 {
		t.Fatalf("expected only 'a' bound to 1, got %v", bound)
	}
}

func TestRunImportTestsHookInvokedWhenEnabled(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "m.koto"), []byte("# stub"), 0o644); err != nil {
		t.Fatal(err)
	}
	src := &fakeSource{exports: func(absPath string) *value.Map { return value.NewMap() }}
	called := false
	l := NewLoader(src, nil, func(exports *value.Map) error {
		called = true
		return nil
	})
	l.runTests = true

	if _, err := l.Import(nil, dir, "m"); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Fatal("expected the tests hook to run")
	}
}

func TestImportSiblingsConcurrent(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c"} {
		if err := os.WriteFile(filepath.Join(dir, name+".koto"), []byte("# stub"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	src := &fakeSource{exports: func(absPath string) *value.Map {
		m := value.NewMap()
		m.Put(value.String{Value: "path"}, value.String{Value: absPath})
		return m
	}}
	l := NewLoader(src, nil, nil)

	results, err := l.ImportSiblings(nil, dir, []string{"a", "b", "c"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 modules loaded, got %d", len(results))
	}
}
