package value

import (
	"strings"

	"github.com/koto-lang/koto/internal/koerr"
)

// Less implements `<`: defined for Number, String, Bool (false < true) and
// Objects with @<. Everything else fails with TypeError.
func Less(a, b Value) (bool, error) {
	switch av := a.(type) {
	case Bool:
		bv, ok := b.(Bool)
		if !ok {
			return false, typeErr("<", a, b)
		}
		return !av.Value && bv.Value, nil
	case Number:
		bv, ok := b.(Number)
		if !ok {
			return false, typeErr("<", a, b)
		}
		if av.IsFloat() || bv.IsFloat() {
			return av.AsFloat() < bv.AsFloat(), nil
		}
		return av.AsInt() < bv.AsInt(), nil
	case String:
		bv, ok := b.(String)
		if !ok {
			return false, typeErr("<", a, b)
		}
		return strings.Compare(av.Value, bv.Value) < 0, nil
	case *Object:
		return objectCompare(av, b, OverloadLess, "<")
	default:
		return false, typeErr("<", a, b)
	}
}

// Greater implements `>`, symmetric to Less.
func Greater(a, b Value) (bool, error) {
	switch av := a.(type) {
	case Bool:
		bv, ok := b.(Bool)
		if !ok {
			return false, typeErr(">", a, b)
		}
		return av.Value && !bv.Value, nil
	case Number:
		bv, ok := b.(Number)
		if !ok {
			return false, typeErr(">", a, b)
		}
		if av.IsFloat() || bv.IsFloat() {
			return av.AsFloat() > bv.AsFloat(), nil
		}
		return av.AsInt() > bv.AsInt(), nil
	case String:
		bv, ok := b.(String)
		if !ok {
			return false, typeErr(">", a, b)
		}
		return strings.Compare(av.Value, bv.Value) > 0, nil
	case *Object:
		return objectCompare(av, b, OverloadGreater, ">")
	default:
		return false, typeErr(">", a, b)
	}
}

func objectCompare(self *Object, other Value, id OverloadID, op string) (bool, error) {
	fn, ok := self.Overload(id)
	if !ok {
		return false, typeErr(op, self, other)
	}
	res, err := fn.Call([]Value{self, other})
	if err != nil {
		return false, err
	}
	b, ok := res.(Bool)
	if !ok {
		return false, koerr.New(koerr.TypeError, "overload %s must return Bool", id)
	}
	return b.Value, nil
}

func typeErr(op string, a, b Value) error {
	return koerr.New(koerr.TypeError, "operator %s not supported between %s and %s", op, a.Kind(), b.Kind())
}
