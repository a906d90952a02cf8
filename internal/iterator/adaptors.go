package iterator

import "github.com/koto-lang/koto/internal/value"

// Each applies fn to every element lazily, grounded on the teacher's map()
// (internal/evaluator/builtins_fp.go).
func (it *Iterator) Each(fn value.Function) *Iterator {
	return wrap(&eachSource{parent: it.src, fn: fn})
}

type eachSource struct {
	parent source
	fn     value.Function
}

func (s *eachSource) next() (value.Value, bool, error) {
	v, ok, err := s.parent.next()
	if !ok || err != nil {
		return nil, false, err
	}
	out, err := s.fn.Call([]value.Value{v})
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

func (s *eachSource) copy() source { return &eachSource{parent: s.parent.copy(), fn: s.fn} }

// Keep filters elements for which pred returns a truthy Bool, grounded on
// the teacher's filter().
func (it *Iterator) Keep(pred value.Function) *Iterator {
	return wrap(&keepSource{parent: it.src, pred: pred})
}

type keepSource struct {
	parent source
	pred   value.Function
}

func (s *keepSource) next() (value.Value, bool, error) {
	for {
		v, ok, err := s.parent.next()
		if !ok || err != nil {
			return nil, false, err
		}
		res, err := s.pred.Call([]value.Value{v})
		if err != nil {
			return nil, false, err
		}
		b, ok := res.(value.Bool)
		if ok && b.Value {
			return v, true, nil
		}
	}
}

func (s *keepSource) copy() source { return &keepSource{parent: s.parent.copy(), pred: s.pred} }

// Chain yields this Iterator's elements followed by other's.
func (it *Iterator) Chain(other *Iterator) *Iterator {
	return wrap(&chainSource{first: it.src, second: other.src})
}

type chainSource struct {
	first     source
	second    source
	onSecond bool
}

func (s *chainSource) next() (value.Value, bool, error) {
	if !s.onSecond {
		v, ok, err := s.first.next()
		if err != nil {
			return nil, false, err
		}
		if ok {
			return v, true, nil
		}
		s.onSecond = true
	}
	return s.second.next()
}

func (s *chainSource) copy() source {
	return &chainSource{first: s.first.copy(), second: s.second.copy(), onSecond: s.onSecond}
}

// Cycle repeats this Iterator's sequence indefinitely. The first pass pulls
// from the parent and caches every value it yields; once the parent is
// exhausted, later laps replay from that cache instead of re-reading the
// parent (which, for a Generator-backed Iterator, can't be re-read at all
// without re-running its side effects). An Iterator whose first pass yields
// nothing gives an empty cycle that ends at once; a non-empty cycle never
// ends, so callers pair it with Take to bound it.
func (it *Iterator) Cycle() *Iterator {
	return wrap(&cycleSource{parent: it.src})
}

type cycleSource struct {
	parent  source
	buf     []value.Value
	pos     int
	looping bool
}

func (s *cycleSource) next() (value.Value, bool, error) {
	if !s.looping {
		v, ok, err := s.parent.next()
		if err != nil {
			return nil, false, err
		}
		if ok {
			s.buf = append(s.buf, v)
			return v, true, nil
		}
		if len(s.buf) == 0 {
			return nil, false, nil
		}
		s.looping = true
		s.pos = 0
	}
	v := s.buf[s.pos]
	s.pos++
	if s.pos == len(s.buf) {
		s.pos = 0
	}
	return v, true, nil
}

func (s *cycleSource) copy() source {
	buf := make([]value.Value, len(s.buf))
	copy(buf, s.buf)
	return &cycleSource{parent: s.parent.copy(), buf: buf, pos: s.pos, looping: s.looping}
}

// Enumerate yields (index, value) Tuples starting at 0.
func (it *Iterator) Enumerate() *Iterator {
	return wrap(&enumerateSource{parent: it.src})
}

type enumerateSource struct {
	parent source
	idx    int64
}

func (s *enumerateSource) next() (value.Value, bool, error) {
	v, ok, err := s.parent.next()
	if !ok || err != nil {
		return nil, false, err
	}
	t := value.NewTuple([]value.Value{value.Int(s.idx), v})
	s.idx++
	return t, true, nil
}

func (s *enumerateSource) copy() source {
	return &enumerateSource{parent: s.parent.copy(), idx: s.idx}
}

// Intersperse yields this Iterator's elements with sep placed between each
// pair. sep may be a plain Value or a zero-argument Function called fresh
// for every gap; a Function returning Empty is a legitimate separator
// element, not a signal to skip the gap.
func (it *Iterator) Intersperse(sep value.Value) *Iterator {
	return wrap(&intersperseSource{parent: it.src, sep: sep})
}

type intersperseSource struct {
	parent   source
	sep      value.Value
	pending  value.Value
	hasPend  bool
	started  bool
}

func (s *intersperseSource) next() (value.Value, bool, error) {
	if s.hasPend {
		v := s.pending
		s.hasPend = false
		return v, true, nil
	}
	v, ok, err := s.parent.next()
	if !ok || err != nil {
		return nil, false, err
	}
	if s.started {
		sepVal := s.sep
		if fn, isFn := s.sep.(value.Function); isFn {
			sepVal, err = fn.Call(nil)
			if err != nil {
				return nil, false, err
			}
		}
		s.pending = v
		s.hasPend = true
		return sepVal, true, nil
	}
	s.started = true
	return v, true, nil
}

func (s *intersperseSource) copy() source {
	return &intersperseSource{parent: s.parent.copy(), sep: s.sep, pending: s.pending, hasPend: s.hasPend, started: s.started}
}

// Skip drops the first n elements.
func (it *Iterator) Skip(n int64) *Iterator {
	return wrap(&skipSource{parent: it.src, remaining: n})
}

type skipSource struct {
	parent    source
	remaining int64
}

func (s *skipSource) next() (value.Value, bool, error) {
	for s.remaining > 0 {
		_, ok, err := s.parent.next()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, nil
		}
		s.remaining--
	}
	return s.parent.next()
}

func (s *skipSource) copy() source {
	return &skipSource{parent: s.parent.copy(), remaining: s.remaining}
}

// Take yields at most n elements then stops, independent of how many the
// parent could still produce.
func (it *Iterator) Take(n int64) *Iterator {
	return wrap(&takeSource{parent: it.src, remaining: n})
}

type takeSource struct {
	parent    source
	remaining int64
}

func (s *takeSource) next() (value.Value, bool, error) {
	if s.remaining <= 0 {
		return nil, false, nil
	}
	v, ok, err := s.parent.next()
	if !ok || err != nil {
		return nil, false, err
	}
	s.remaining--
	return v, true, nil
}

func (s *takeSource) copy() source {
	return &takeSource{parent: s.parent.copy(), remaining: s.remaining}
}

// Zip pairs elements from this Iterator and other into 2-Tuples, stopping
// as soon as either side is exhausted.
func (it *Iterator) Zip(other *Iterator) *Iterator {
	return wrap(&zipSource{a: it.src, b: other.src})
}

type zipSource struct {
	a, b source
}

func (s *zipSource) next() (value.Value, bool, error) {
	av, aok, err := s.a.next()
	if err != nil {
		return nil, false, err
	}
	if !aok {
		return nil, false, nil
	}
	bv, bok, err := s.b.next()
	if err != nil {
		return nil, false, err
	}
	if !bok {
		return nil, false, nil
	}
	return value.NewTuple([]value.Value{av, bv}), true, nil
}

func (s *zipSource) copy() source { return &zipSource{a: s.a.copy(), b: s.b.copy()} }

// Windows yields overlapping Lists of n consecutive elements, sliding by
// one each step.
func (it *Iterator) Windows(n int64) *Iterator {
	return wrap(&windowSource{parent: it.src, n: int(n)})
}

type windowSource struct {
	parent source
	n      int
	buf    []value.Value
	filled bool
}

func (s *windowSource) next() (value.Value, bool, error) {
	if s.n <= 0 {
		return nil, false, nil
	}
	if !s.filled {
		s.buf = make([]value.Value, 0, s.n)
		for len(s.buf) < s.n {
			v, ok, err := s.parent.next()
			if err != nil {
				return nil, false, err
			}
			if !ok {
				return nil, false, nil
			}
			s.buf = append(s.buf, v)
		}
		s.filled = true
		return value.NewList(s.buf), true, nil
	}
	v, ok, err := s.parent.next()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	s.buf = append(s.buf[1:], v)
	return value.NewList(s.buf), true, nil
}

func (s *windowSource) copy() source {
	buf := make([]value.Value, len(s.buf))
	copy(buf, s.buf)
	return &windowSource{parent: s.parent.copy(), n: s.n, buf: buf, filled: s.filled}
}

// Chunks yields consecutive, non-overlapping Lists of n elements; the final
// chunk may be shorter if the source length isn't a multiple of n.
func (it *Iterator) Chunks(n int64) *Iterator {
	return wrap(&chunkSource{parent: it.src, n: int(n)})
}

type chunkSource struct {
	parent source
	n      int
}

func (s *chunkSource) next() (value.Value, bool, error) {
	if s.n <= 0 {
		return nil, false, nil
	}
	buf := make([]value.Value, 0, s.n)
	for len(buf) < s.n {
		v, ok, err := s.parent.next()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			break
		}
		buf = append(buf, v)
	}
	if len(buf) == 0 {
		return nil, false, nil
	}
	return value.NewList(buf), true, nil
}

func (s *chunkSource) copy() source { return &chunkSource{parent: s.parent.copy(), n: s.n} }
