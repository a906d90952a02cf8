package koto_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/koto-lang/koto/internal/module"
	"github.com/koto-lang/koto/internal/value"
	"github.com/koto-lang/koto/pkg/koto"
)

type stubSource struct{}

func (stubSource) Evaluate(absPath string) (*value.Map, error) {
	m := koto.NewExports()
	m.Put(value.String{Value: "name"}, value.String{Value: filepath.Base(absPath)})
	return m, nil
}

func TestRuntimeIterRoundTrip(t *testing.T) {
	rt := koto.New(stubSource{}, nil)
	lst := value.NewList([]value.Value{value.Int(1), value.Int(2)})
	it, err := rt.Iter(lst)
	if err != nil {
		t.Fatal(err)
	}
	v, ok, err := rt.Next(it)
	if err != nil || !ok {
		t.Fatalf("expected first element, err=%v ok=%v", err, ok)
	}
	if v.(value.Number).AsInt() != 1 {
		t.Fatalf("expected 1, got %v", v.Display())
	}
}

func TestRuntimeRegisterAndExtend(t *testing.T) {
	module.ClearIteratorExts()
	rt := koto.New(stubSource{}, nil)
	rt.Register("always_one", &value.GoFunc{Name: "always_one", Fn: func(args []value.Value) (value.Value, error) {
		return value.Int(1), nil
	}})
	result, err := module.CallIteratorExt("always_one", value.Nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if result.(value.Number).AsInt() != 1 {
		t.Fatalf("expected 1, got %v", result.Display())
	}
	module.ClearIteratorExts()
}

func TestRuntimeImportAndExportsHandle(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "greet.koto"), []byte("# stub"), 0o644); err != nil {
		t.Fatal(err)
	}
	rt := koto.New(stubSource{}, nil)
	mod, err := rt.Import(nil, dir, "greet")
	if err != nil {
		t.Fatal(err)
	}
	name, ok := mod.Get(value.String{Value: "name"})
	if !ok || name.(value.String).Value != "greet.koto" {
		t.Fatalf("expected evaluated module exports, got %v", mod.Display())
	}
}

func TestExportsFuncReturnsLiveHandle(t *testing.T) {
	exports := koto.NewExports()
	fn := koto.ExportsFunc(exports)
	handle, err := fn.Call(nil)
	if err != nil {
		t.Fatal(err)
	}
	m := handle.(*value.Map)
	m.Put(value.String{Value: "x"}, value.Int(42))

	v, ok := exports.Get(value.String{Value: "x"})
	if !ok || v.(value.Number).AsInt() != 42 {
		t.Fatal("expected a mutation through the handle to publish into the original exports map")
	}
}
