package iterator

import (
	"strings"

	"github.com/koto-lang/koto/internal/koerr"
	"github.com/koto-lang/koto/internal/value"
)

// ToList drains the Iterator into a fresh List.
func (it *Iterator) ToList() (*value.List, error) {
	var out []value.Value
	for {
		v, ok, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return value.NewList(out), nil
		}
		out = append(out, v)
	}
}

// ToTuple drains the Iterator into a Tuple.
func (it *Iterator) ToTuple() (value.Tuple, error) {
	var out []value.Value
	for {
		v, ok, err := it.Next()
		if err != nil {
			return value.Tuple{}, err
		}
		if !ok {
			return value.NewTuple(out), nil
		}
		out = append(out, v)
	}
}

// ToMap drains the Iterator into a Map, requiring each element to be a
// 2-element Tuple (key, value) — the same shape a Map's own View yields.
func (it *Iterator) ToMap() (*value.Map, error) {
	m := value.NewMap()
	for {
		v, ok, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return m, nil
		}
		t, isTuple := v.(value.Tuple)
		if !isTuple || t.Len() != 2 {
			return nil, koerr.New(koerr.TypeError, "to_map requires (key, value) tuples, got %s", v.Kind())
		}
		if !m.Put(t.Elements[0], t.Elements[1]) {
			return nil, koerr.New(koerr.KeyError, "unhashable key of kind %s", t.Elements[0].Kind())
		}
	}
}

// ToString drains the Iterator, concatenating each element's cycle-safe
// display form.
func (it *Iterator) ToString() (string, error) {
	var sb strings.Builder
	for {
		v, ok, err := it.Next()
		if err != nil {
			return "", err
		}
		if !ok {
			return sb.String(), nil
		}
		sb.WriteString(value.Show(v))
	}
}

// All reports whether pred is truthy for every remaining element,
// short-circuiting on the first false.
func (it *Iterator) All(pred value.Function) (bool, error) {
	for {
		v, ok, err := it.Next()
		if err != nil {
			return false, err
		}
		if !ok {
			return true, nil
		}
		res, err := pred.Call([]value.Value{v})
		if err != nil {
			return false, err
		}
		b, isBool := res.(value.Bool)
		if !isBool || !b.Value {
			return false, nil
		}
	}
}

// Any reports whether pred is truthy for some remaining element,
// short-circuiting on the first true.
func (it *Iterator) Any(pred value.Function) (bool, error) {
	for {
		v, ok, err := it.Next()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		res, err := pred.Call([]value.Value{v})
		if err != nil {
			return false, err
		}
		b, isBool := res.(value.Bool)
		if isBool && b.Value {
			return true, nil
		}
	}
}

// Count drains the Iterator, returning how many elements remained.
func (it *Iterator) Count() (int64, error) {
	var n int64
	for {
		_, ok, err := it.Next()
		if err != nil {
			return n, err
		}
		if !ok {
			return n, nil
		}
		n++
	}
}

// Consume drains the Iterator for its side effects, discarding elements.
func (it *Iterator) Consume() error {
	_, err := it.Count()
	return err
}

// Fold reduces the remaining elements left-to-right: acc = fn(acc, v).
func (it *Iterator) Fold(init value.Value, fn value.Function) (value.Value, error) {
	acc := init
	for {
		v, ok, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return acc, nil
		}
		acc, err = fn.Call([]value.Value{acc, v})
		if err != nil {
			return nil, err
		}
	}
}

// Last drains the Iterator, returning its final element, or (Empty, false)
// if it produced nothing.
func (it *Iterator) Last() (value.Value, bool, error) {
	var last value.Value
	var seen bool
	for {
		v, ok, err := it.Next()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			if !seen {
				return value.Nil, false, nil
			}
			return last, true, nil
		}
		last, seen = v, true
	}
}

// Position returns the index of the first element for which pred is
// truthy, or (-1, false) if none match.
func (it *Iterator) Position(pred value.Function) (int64, bool, error) {
	var i int64
	for {
		v, ok, err := it.Next()
		if err != nil {
			return -1, false, err
		}
		if !ok {
			return -1, false, nil
		}
		res, err := pred.Call([]value.Value{v})
		if err != nil {
			return -1, false, err
		}
		if b, isBool := res.(value.Bool); isBool && b.Value {
			return i, true, nil
		}
		i++
	}
}

// keyed resolves the comparison value for an element: v itself when key is
// nil, or key(v) otherwise.
func keyed(key value.Function, v value.Value) (value.Value, error) {
	if key == nil {
		return v, nil
	}
	return key.Call([]value.Value{v})
}

// Min returns the element with the smallest key, or (Empty, false) if the
// Iterator was empty. key may be nil to compare elements directly.
func (it *Iterator) Min(key value.Function) (value.Value, bool, error) {
	var best, bestKey value.Value
	var found bool
	for {
		v, ok, err := it.Next()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			if !found {
				return value.Nil, false, nil
			}
			return best, true, nil
		}
		k, err := keyed(key, v)
		if err != nil {
			return nil, false, err
		}
		if !found {
			best, bestKey, found = v, k, true
			continue
		}
		less, err := value.Less(k, bestKey)
		if err != nil {
			return nil, false, err
		}
		if less {
			best, bestKey = v, k
		}
	}
}

// Max returns the element with the largest key, symmetric to Min.
func (it *Iterator) Max(key value.Function) (value.Value, bool, error) {
	var best, bestKey value.Value
	var found bool
	for {
		v, ok, err := it.Next()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			if !found {
				return value.Nil, false, nil
			}
			return best, true, nil
		}
		k, err := keyed(key, v)
		if err != nil {
			return nil, false, err
		}
		if !found {
			best, bestKey, found = v, k, true
			continue
		}
		greater, err := value.Greater(k, bestKey)
		if err != nil {
			return nil, false, err
		}
		if greater {
			best, bestKey = v, k
		}
	}
}

// MinMax returns both the minimum and maximum in a single pass over the
// source, so an upstream side effect (e.g. it.each(f).min_max()) runs
// exactly once per element rather than once per Min/Max call.
func (it *Iterator) MinMax(key value.Function) (value.Value, value.Value, bool, error) {
	var lo, loKey, hi, hiKey value.Value
	var found bool
	for {
		v, ok, err := it.Next()
		if err != nil {
			return nil, nil, false, err
		}
		if !ok {
			return lo, hi, found, nil
		}
		k, err := keyed(key, v)
		if err != nil {
			return nil, nil, false, err
		}
		if !found {
			lo, loKey, hi, hiKey, found = v, k, v, k, true
			continue
		}
		if less, err := value.Less(k, loKey); err != nil {
			return nil, nil, false, err
		} else if less {
			lo, loKey = v, k
		}
		if greater, err := value.Greater(k, hiKey); err != nil {
			return nil, nil, false, err
		} else if greater {
			hi, hiKey = v, k
		}
	}
}

// Sum folds the remaining elements with Add. If init is nil, the first
// element becomes the witness accumulator instead of assuming a zero value
// — a Sum over Strings or Lists has no natural zero the way 0 is for
// Number, so the witness-init approach generalizes across every kind Add
// supports.
func (it *Iterator) Sum(init value.Value) (value.Value, error) {
	return foldArith(it, init, value.Add)
}

// Product folds the remaining elements with Mul, witness-init like Sum.
func (it *Iterator) Product(init value.Value) (value.Value, error) {
	return foldArith(it, init, value.Mul)
}

func foldArith(it *Iterator, init value.Value, op func(a, b value.Value) (value.Value, error)) (value.Value, error) {
	acc := init
	for {
		v, ok, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			if acc == nil {
				return nil, koerr.New(koerr.TypeError, "cannot fold an empty iterator without an initial value")
			}
			return acc, nil
		}
		if acc == nil {
			acc = v
			continue
		}
		acc, err = op(acc, v)
		if err != nil {
			return nil, err
		}
	}
}
