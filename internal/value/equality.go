package value

// visitPair tracks an in-progress comparison between two reference
// containers so Equals can detect a cycle: a List or Map that contains
// itself would otherwise recurse forever.
type visitPair struct{ a, b interface{} }

// Equals implements `==`. Grounded on the teacher's ObjectsEqual
// (internal/evaluator/objects_equal.go) big type switch, generalized to
// dispatch Object equality to @== and to guard against cyclic List/Map
// structures.
func Equals(a, b Value) bool {
	return equalsVisited(a, b, map[visitPair]bool{})
}

func equalsVisited(a, b Value, visited map[visitPair]bool) bool {
	switch av := a.(type) {
	case Empty:
		_, ok := b.(Empty)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av.Value == bv.Value
	case Number:
		bv, ok := b.(Number)
		if !ok {
			return false
		}
		if av.IsFloat() || bv.IsFloat() {
			return av.AsFloat() == bv.AsFloat()
		}
		return av.AsInt() == bv.AsInt()
	case String:
		bv, ok := b.(String)
		return ok && av.Value == bv.Value
	case Num2:
		bv, ok := b.(Num2)
		return ok && av.X == bv.X && av.Y == bv.Y
	case Num4:
		bv, ok := b.(Num4)
		return ok && av == bv
	case Range:
		bv, ok := b.(Range)
		return ok && av == bv
	case Tuple:
		bv, ok := b.(Tuple)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !equalsVisited(av.Elements[i], bv.Elements[i], visited) {
				return false
			}
		}
		return true
	case *List:
		bv, ok := b.(*List)
		if !ok {
			return false
		}
		if av == bv {
			return true
		}
		key := visitPair{av, bv}
		if visited[key] {
			return true // cycle: assume equal, matches sibling already being compared
		}
		visited[key] = true
		as, bs := av.ToSlice(), bv.ToSlice()
		if len(as) != len(bs) {
			return false
		}
		for i := range as {
			if !equalsVisited(as[i], bs[i], visited) {
				return false
			}
		}
		return true
	case *Map:
		bv, ok := b.(*Map)
		if !ok {
			return false
		}
		if av == bv {
			return true
		}
		key := visitPair{av, bv}
		if visited[key] {
			return true
		}
		visited[key] = true
		ai, bi := av.Items(), bv.Items()
		if len(ai) != len(bi) {
			return false
		}
		for i := range ai {
			if !equalsVisited(ai[i].Elements[0], bi[i].Elements[0], visited) ||
				!equalsVisited(ai[i].Elements[1], bi[i].Elements[1], visited) {
				return false
			}
		}
		return true
	case *Object:
		bv, ok := b.(*Object)
		if !ok {
			return false
		}
		if fn, ok := av.Overload(OverloadEqual); ok {
			res, err := fn.Call([]Value{av, bv})
			if err != nil {
				return false
			}
			bres, ok := res.(Bool)
			return ok && bres.Value
		}
		return av == bv // no @== overload: fall back to identity
	default:
		// Function, Generator, Iterator: compared by identity, not structure.
		return a == b
	}
}
