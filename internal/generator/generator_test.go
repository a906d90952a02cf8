package generator

import (
	"testing"

	"github.com/koto-lang/koto/internal/koerr"
	"github.com/koto-lang/koto/internal/value"
)

func TestGeneratorYieldsThenTerminates(t *testing.T) {
	g := New(func(yield YieldFunc) (value.Value, error) {
		if err := yield(value.Int(1)); err != nil {
			return nil, err
		}
		if err := yield(value.Int(2)); err != nil {
			return nil, err
		}
		return value.Nil, nil
	})

	var got []int64
	for {
		v, ok, err := g.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			break
		}
		got = append(got, v.(value.Number).AsInt())
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("expected [1 2], got %v", got)
	}

	v, ok, err := g.Next()
	if ok || err != nil {
		t.Fatalf("expected a terminal generator to stay exhausted, got (%v, %v, %v)", v, ok, err)
	}
}

func TestGeneratorReentry(t *testing.T) {
	var inner *Generator
	inner = New(func(yield YieldFunc) (value.Value, error) {
		_, _, err := inner.Next()
		if err == nil {
			t.Error("expected a re-entrant Next() to fail")
		}
		return value.Nil, nil
	})
	_, _, err := inner.Next()
	if err != nil {
		t.Fatalf("outer Next() should not itself fail: %v", err)
	}
}

func TestForkIsIndependent(t *testing.T) {
	g := New(func(yield YieldFunc) (value.Value, error) {
		for i := int64(1); i <= 4; i++ {
			if err := yield(value.Int(i)); err != nil {
				return nil, err
			}
		}
		return value.Nil, nil
	})

	v, _, err := g.Next()
	if err != nil || v.(value.Number).AsInt() != 1 {
		t.Fatalf("unexpected first value: %v, %v", v, err)
	}

	fork := g.Fork()

	// Advance g two more steps; fork must not observe them.
	v, _, err = g.Next()
	if err != nil || v.(value.Number).AsInt() != 2 {
		t.Fatalf("unexpected g value: %v, %v", v, err)
	}
	v, _, err = g.Next()
	if err != nil || v.(value.Number).AsInt() != 3 {
		t.Fatalf("unexpected g value: %v, %v", v, err)
	}

	fv, _, err := fork.Next()
	if err != nil || fv.(value.Number).AsInt() != 2 {
		t.Fatalf("expected fork to resume from the fork point (2), got %v, %v", fv, err)
	}

	// The two now advance independently.
	v, _, err = g.Next()
	if err != nil || v.(value.Number).AsInt() != 4 {
		t.Fatalf("unexpected g value: %v, %v", v, err)
	}
	fv, _, err = fork.Next()
	if err != nil || fv.(value.Number).AsInt() != 3 {
		t.Fatalf("unexpected fork value: %v, %v", fv, err)
	}
}

func TestGeneratorRaisePropagates(t *testing.T) {
	g := New(func(yield YieldFunc) (value.Value, error) {
		if err := yield(value.Int(1)); err != nil {
			return nil, err
		}
		return nil, koerr.New(koerr.AssertionError, "boom")
	})
	_, ok, err := g.Next()
	if !ok || err != nil {
		t.Fatalf("expected first yield to succeed, got ok=%v err=%v", ok, err)
	}
	_, ok, err = g.Next()
	if ok {
		t.Fatal("expected generator to terminate on raise")
	}
	if err == nil {
		t.Fatal("expected raise error to propagate")
	}
	kerr, ok := err.(*koerr.Error)
	if !ok || kerr.Kind != koerr.AssertionError {
		t.Fatalf("expected AssertionError, got %v", err)
	}
}
