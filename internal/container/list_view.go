package container

import "github.com/koto-lang/koto/internal/value"

// listView walks a List's snapshot slice by index. The slice is captured
// once at MakeView time (ToSlice copies), so appends made mid-iteration are
// not observed by position — they're instead caught by the generation
// guard in container.go, which raises rather than silently extending or
// truncating the iteration.
type listView struct {
	data []value.Value
	pos  int
}

func newListView(l *value.List) *listView {
	return &listView{data: l.ToSlice()}
}

func (v *listView) Next() (value.Value, bool) {
	if v.pos >= len(v.data) {
		return nil, false
	}
	el := v.data[v.pos]
	v.pos++
	return el, true
}

func (v *listView) Copy() value.View {
	return &listView{data: v.data, pos: v.pos}
}
