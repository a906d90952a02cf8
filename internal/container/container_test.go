package container

import (
	"testing"

	"github.com/koto-lang/koto/internal/value"
)

func drain(v value.View) []value.Value {
	var out []value.Value
	for {
		el, ok := v.Next()
		if !ok {
			return out
		}
		out = append(out, el)
	}
}

func TestMakeViewList(t *testing.T) {
	l := value.NewList([]value.Value{value.Int(1), value.Int(2), value.Int(3)})
	v, ok := MakeView(l)
	if !ok {
		t.Fatal("expected List to be a container kind")
	}
	got := drain(v)
	if len(got) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(got))
	}
}

func TestMakeViewListConcurrentModification(t *testing.T) {
	l := value.NewList([]value.Value{value.Int(1), value.Int(2)})
	v, _ := MakeView(l)
	l.Push(value.Int(3))

	cv := v.(CheckedView)
	_, ok := cv.Next()
	if ok {
		t.Fatal("expected Next to stop once a mutation is observed")
	}
	if cv.Err() == nil {
		t.Fatal("expected ConcurrentModification error")
	}
}

func TestMakeViewRangeReverse(t *testing.T) {
	v, ok := MakeView(value.Range{Start: 5, End: 2})
	if !ok {
		t.Fatal("expected Range to be a container kind")
	}
	got := drain(v)
	want := []int64{5, 4, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %d elements, got %d", len(want), len(got))
	}
	for i, w := range want {
		n := got[i].(value.Number)
		if n.AsInt() != w {
			t.Fatalf("element %d: want %d, got %d", i, w, n.AsInt())
		}
	}
}

func TestMakeViewRangeInclusive(t *testing.T) {
	v, _ := MakeView(value.Range{Start: 1, End: 3, Inclusive: true})
	got := drain(v)
	if len(got) != 3 {
		t.Fatalf("expected 3 elements for 1..=3, got %d", len(got))
	}
}

func TestMakeViewMapYieldsTuples(t *testing.T) {
	m := value.NewMap()
	m.Put(value.String{Value: "a"}, value.Int(1))
	m.Put(value.String{Value: "b"}, value.Int(2))
	v, ok := MakeView(m)
	if !ok {
		t.Fatal("expected Map to be a container kind")
	}
	got := drain(v)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	tup, ok := got[0].(value.Tuple)
	if !ok || tup.Len() != 2 {
		t.Fatalf("expected each element to be a 2-tuple, got %#v", got[0])
	}
}

func TestMakeViewStringGraphemeClusters(t *testing.T) {
	// "e" + combining acute accent (U+0301) should iterate as one cluster.
	s := value.String{Value: "éb"}
	v, ok := MakeView(s)
	if !ok {
		t.Fatal("expected String to be a container kind")
	}
	got := drain(v)
	if len(got) != 2 {
		t.Fatalf("expected 2 grapheme clusters, got %d", len(got))
	}
}

func TestMakeViewCopyIsIndependent(t *testing.T) {
	l := value.NewList([]value.Value{value.Int(1), value.Int(2), value.Int(3)})
	v, _ := MakeView(l)
	v.Next()
	cp := v.Copy()
	v.Next()
	first, ok := cp.Next()
	if !ok {
		t.Fatal("expected copy to still have its own second element")
	}
	if n := first.(value.Number); n.AsInt() != 2 {
		t.Fatalf("expected copy's next element to be 2, got %d", n.AsInt())
	}
}

func TestMakeViewNum2(t *testing.T) {
	v, ok := MakeView(value.Num2{X: 1, Y: 2})
	if !ok {
		t.Fatal("expected Num2 to be a container kind")
	}
	got := drain(v)
	if len(got) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(got))
	}
}
