// Package generator implements the suspended execution frame produced by
// calling a generator function, with the state machine Initial -> Running ->
// Suspended <-> Running -> Terminal.
//
// Rather than compile generator bodies into an explicit state machine (this
// repo has no compiler — parsing/compilation are out of scope), a generator
// body runs on its own goroutine and yields by rendezvousing with the
// calling goroutine over a pair of unbuffered channels. This mirrors how the
// teacher's evaluator drives a user Function body (a plain Go call that runs
// to completion on the calling goroutine) but adds the suspend point a
// generator needs and a compiler-based state machine would otherwise
// require.
//
// Known tradeoff: a Generator that is suspended and then dropped without a
// final Next() leaves its goroutine parked forever on resumeCh. Nothing in
// this package can detect "no more references" without a finalizer, so
// callers that abandon a partially-consumed generator leak one goroutine —
// the same cost every goroutine-per-coroutine design accepts.
package generator

import (
	"sync"

	"github.com/koto-lang/koto/internal/koerr"
	"github.com/koto-lang/koto/internal/value"
)

type state int

const (
	stateInitial state = iota
	stateRunning
	stateSuspended
	stateTerminal
)

// YieldFunc is what a generator Body calls to produce one element and
// block until the caller asks for the next one.
type YieldFunc func(value.Value) error

// Body is a generator's executable frame. Real generator bodies would be
// compiled Koto function bodies; since this repo has no compiler, bodies
// are plain Go closures, the same adaptation value.GoFunc makes for
// ordinary functions.
type Body func(yield YieldFunc) (value.Value, error)

type yieldMsg struct {
	value value.Value
	done  bool
	err   error
}

// Generator drives one Body instance through its suspend/resume cycle.
// Satisfies value.Generator.
type Generator struct {
	mu       sync.Mutex
	state    state
	body     Body
	resumeCh chan struct{}
	yieldCh  chan yieldMsg
	history  []value.Value
}

// New builds a Generator in the Initial state; the body does not start
// running until the first Next().
func New(body Body) *Generator {
	return &Generator{
		body:     body,
		resumeCh: make(chan struct{}),
		yieldCh:  make(chan yieldMsg),
	}
}

func (g *Generator) Kind() value.Kind { return value.KindGenerator }
func (g *Generator) Display() string  { return "Generator" }

// Next resumes the frame. Re-entrant calls — Next() called from within the
// generator's own body, e.g. by a builtin it invokes recursively — are
// rejected with GeneratorReentry rather than deadlocking on resumeCh.
func (g *Generator) Next() (value.Value, bool, error) {
	g.mu.Lock()
	switch g.state {
	case stateRunning:
		g.mu.Unlock()
		return nil, false, koerr.New(koerr.GeneratorReentry, "generator is already running")
	case stateTerminal:
		g.mu.Unlock()
		return value.Nil, false, nil
	}
	starting := g.state == stateInitial
	g.state = stateRunning
	g.mu.Unlock()

	if starting {
		go func() {
			result, err := g.body(g.yield)
			g.yieldCh <- yieldMsg{done: true, value: result, err: err}
		}()
	} else {
		g.resumeCh <- struct{}{}
	}

	msg := <-g.yieldCh

	g.mu.Lock()
	defer g.mu.Unlock()
	if msg.done {
		g.state = stateTerminal
		if msg.err != nil {
			return nil, false, msg.err
		}
		return value.Nil, false, nil
	}
	g.state = stateSuspended
	g.history = append(g.history, msg.value)
	return msg.value, true, nil
}

// Fork builds an independent continuation of g from its current position: a
// fresh Body invocation on its own goroutine, silently replayed past every
// value g has already yielded, then left to run forward on its own.
//
// A generator body here is a plain Go closure running on a goroutine, not a
// compiled frame with locals this package can snapshot, so the only way to
// reach an equivalent position is to re-run the body from the start and
// discard the replayed output. That means any side effect in the body before
// the fork point runs twice (once in g, once in the fork); from the fork
// point on, the two run independently and never share a resume again.
func (g *Generator) Fork() *Generator {
	g.mu.Lock()
	history := append([]value.Value(nil), g.history...)
	g.mu.Unlock()

	fork := New(g.body)
	for range history {
		if _, ok, err := fork.Next(); err != nil || !ok {
			break
		}
	}
	return fork
}

// yield is passed to the body as its YieldFunc. It hands v to whichever
// goroutine is blocked in Next() and parks until that goroutine calls Next()
// again.
func (g *Generator) yield(v value.Value) error {
	g.yieldCh <- yieldMsg{value: v}
	<-g.resumeCh
	return nil
}
