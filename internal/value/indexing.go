package value

import "github.com/koto-lang/koto/internal/koerr"

// Index implements `v[i]` on List/Tuple/String/Num2/Num4 with 0-based
// integer indices; negative indices count from the end the way the
// teacher's List.Set does ("if i < 0 { i = len(elements) + i }").
func Index(v Value, i int64) (Value, error) {
	switch x := v.(type) {
	case *List:
		idx := normalizeIndex(i, x.Len())
		el, ok := x.Get(idx)
		if !ok {
			return nil, koerr.New(koerr.IndexError, "index %d out of range (len %d)", i, x.Len())
		}
		return el, nil
	case Tuple:
		idx := normalizeIndex(i, x.Len())
		el, ok := x.Get(idx)
		if !ok {
			return nil, koerr.New(koerr.IndexError, "index %d out of range (len %d)", i, x.Len())
		}
		return el, nil
	case String:
		runes := x.Runes()
		idx := normalizeIndex(i, len(runes))
		if idx < 0 || idx >= len(runes) {
			return nil, koerr.New(koerr.IndexError, "index %d out of range (len %d)", i, len(runes))
		}
		return String{Value: string(runes[idx])}, nil
	case Num2:
		idx := normalizeIndex(i, x.Len())
		f, ok := x.Get(idx)
		if !ok {
			return nil, koerr.New(koerr.IndexError, "index %d out of range (len 2)", i)
		}
		return Flt(f), nil
	case Num4:
		idx := normalizeIndex(i, x.Len())
		f, ok := x.Get(idx)
		if !ok {
			return nil, koerr.New(koerr.IndexError, "index %d out of range (len 4)", i)
		}
		return Flt(f), nil
	default:
		return nil, koerr.New(koerr.TypeError, "value of kind %s is not indexable", v.Kind())
	}
}

func normalizeIndex(i int64, length int) int {
	if i < 0 {
		return int(i) + length
	}
	return int(i)
}

// Slice implements `v[a..b]` (copy-range on sequences; assign-broadcast
// bulk-store semantics for Num2/Num4 are a separate write path, not this
// read/copy one). hasStart/hasEnd model the open forms `v[a..]` and `v[..b]`.
func Slice(v Value, start int64, hasStart bool, end int64, hasEnd bool) (Value, error) {
	switch x := v.(type) {
	case *List:
		s, e := resolveSliceBounds(start, hasStart, end, hasEnd, x.Len())
		return x.Slice(s, e), nil
	case Tuple:
		s, e := resolveSliceBounds(start, hasStart, end, hasEnd, x.Len())
		if s > e {
			s = e
		}
		return NewTuple(x.Elements[s:e]), nil
	case String:
		runes := x.Runes()
		s, e := resolveSliceBounds(start, hasStart, end, hasEnd, len(runes))
		if s > e {
			s = e
		}
		return String{Value: string(runes[s:e])}, nil
	default:
		return nil, koerr.New(koerr.TypeError, "value of kind %s is not sliceable", v.Kind())
	}
}

func resolveSliceBounds(start int64, hasStart bool, end int64, hasEnd bool, length int) (int, int) {
	s := 0
	if hasStart {
		s = normalizeIndex(start, length)
	}
	e := length
	if hasEnd {
		e = normalizeIndex(end, length)
	}
	s = clamp(s, 0, length)
	e = clamp(e, 0, length)
	if s > e {
		s = e
	}
	return s, e
}
