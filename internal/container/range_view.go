package container

import "github.com/koto-lang/koto/internal/value"

// rangeView walks a Range's integers, honoring inclusivity and reverse
// direction: a Range with start > end iterates downward.
type rangeView struct {
	cur     int64
	end     int64
	reverse bool
	done    bool
}

func newRangeView(r value.Range) *rangeView {
	start, end, reverse := r.Bounds()
	return &rangeView{cur: start, end: end, reverse: reverse}
}

func (v *rangeView) Next() (value.Value, bool) {
	if v.done {
		return nil, false
	}
	if v.reverse {
		if v.cur <= v.end {
			v.done = true
			return nil, false
		}
		n := v.cur
		v.cur--
		return value.Int(n), true
	}
	if v.cur >= v.end {
		v.done = true
		return nil, false
	}
	n := v.cur
	v.cur++
	return value.Int(n), true
}

func (v *rangeView) Copy() value.View {
	cp := *v
	return &cp
}
