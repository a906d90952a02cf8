// Package value implements the Koto core value model: the tagged universe
// of runtime values and their equality/ordering/arithmetic/indexing
// contracts.
//
// Grounded on the teacher's evaluator.Object interface
// (internal/evaluator/object.go) and its ObjectType tag, adapted from a
// closed Go-string tag plus a big type-switch dispatch (objects_equal.go,
// expressions_operators.go) to the same style: one interface, one Kind tag,
// dispatch via type switches in sibling files of this package.
package value

// Kind is the runtime type tag every Value exposes, mirroring the teacher's
// ObjectType.
type Kind string

const (
	KindEmpty     Kind = "Empty"
	KindBool      Kind = "Bool"
	KindNumber    Kind = "Number"
	KindNum2      Kind = "Num2"
	KindNum4      Kind = "Num4"
	KindString    Kind = "String"
	KindRange     Kind = "Range"
	KindList      Kind = "List"
	KindTuple     Kind = "Tuple"
	KindMap       Kind = "Map"
	KindFunction  Kind = "Function"
	KindGenerator Kind = "Generator"
	KindIterator  Kind = "Iterator"
	KindObject    Kind = "Object"
)

// Value is the universal runtime value; every kind implements it.
type Value interface {
	Kind() Kind
	// Display returns the human-readable form used by to_string()/show.
	Display() string
}

// Function is any callable value: user closures, builtins, and bound
// overload methods all satisfy it. Kept as a thin interface (rather than a
// concrete struct with an *ast.Node body, the way the teacher's Function
// does) because parsing/compilation are out of scope here — the
// function-call interface is the entire collaborator surface this core
// needs.
type Function interface {
	Value
	Call(args []Value) (Value, error)
}

// GoFunc adapts a plain Go func to Function, the way the teacher's
// evaluator.Builtin adapts a BuiltinFunction. Used for every builtin,
// overload method and adaptor/terminal implementation in this repo.
type GoFunc struct {
	Name string
	Fn   func(args []Value) (Value, error)
}

func (f *GoFunc) Kind() Kind           { return KindFunction }
func (f *GoFunc) Display() string      { return "|| " + f.Name + " ..." }
func (f *GoFunc) Call(args []Value) (Value, error) { return f.Fn(args) }

// Generator is the suspended-frame value produced by calling a generator
// function. Its implementation lives in package generator; this is the
// narrow interface the value model needs to know about.
type Generator interface {
	Value
	// Next resumes the frame. Returns (v, true, nil) on yield, (Empty,
	// false, nil) on termination, (nil, false, err) on raise.
	Next() (v Value, ok bool, err error)
}

// Iterator is the polymorphic handle over views, generators and adaptor
// stacks. Implementation lives in package iterator.
type Iterator interface {
	Value
	Next() (v Value, ok bool, err error)
	Copy() Iterator
}

// View is the opaque internal iteration cursor: restartable per-call to
// MakeView, but a single View instance is one-shot.
type View interface {
	// Next returns the next element and true, or (nil, false) at exhaustion.
	Next() (Value, bool)
	// Copy returns an independent cursor positioned at the same point.
	Copy() View
}
