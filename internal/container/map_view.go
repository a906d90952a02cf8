package container

import "github.com/koto-lang/koto/internal/value"

// mapView walks a Map's (key, value) pairs in insertion order, each
// yielded as a 2-element key-value Tuple. The pair slice is captured once
// at MakeView time;
// mid-iteration Put/Remove is caught by the generation guard, not observed
// by position.
type mapView struct {
	items []value.Tuple
	pos   int
}

func newMapView(m *value.Map) *mapView {
	return &mapView{items: m.Items()}
}

func (v *mapView) Next() (value.Value, bool) {
	if v.pos >= len(v.items) {
		return nil, false
	}
	el := v.items[v.pos]
	v.pos++
	return el, true
}

func (v *mapView) Copy() value.View {
	return &mapView{items: v.items, pos: v.pos}
}
