package container

import "github.com/koto-lang/koto/internal/value"

// tupleView walks a Tuple's elements. Tuples are immutable so no generation
// guard is needed — there is no mutation to detect.
type tupleView struct {
	data []value.Value
	pos  int
}

func newTupleView(t value.Tuple) *tupleView {
	return &tupleView{data: t.Elements}
}

func (v *tupleView) Next() (value.Value, bool) {
	if v.pos >= len(v.data) {
		return nil, false
	}
	el := v.data[v.pos]
	v.pos++
	return el, true
}

func (v *tupleView) Copy() value.View {
	return &tupleView{data: v.data, pos: v.pos}
}
