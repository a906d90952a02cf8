package container

import "github.com/koto-lang/koto/internal/value"

// numView walks Num2/Num4 component-wise, yielding each component as a
// Number. Fixed-size and immutable, so no generation guard applies.
type numView struct {
	n   int
	pos int
	get func(i int) (float64, bool)
}

func newNumView(n int, get func(i int) (float64, bool)) *numView {
	return &numView{n: n, get: get}
}

func (v *numView) Next() (value.Value, bool) {
	if v.pos >= v.n {
		return nil, false
	}
	f, ok := v.get(v.pos)
	if !ok {
		return nil, false
	}
	v.pos++
	return value.Flt(f), true
}

func (v *numView) Copy() value.View {
	return &numView{n: v.n, pos: v.pos, get: v.get}
}
