package value

// Add implements `+`: numeric on Number, elementwise on Num2/Num4
// (broadcasting a scalar Number), concatenative on String/List/Tuple, and
// @+ dispatch for Object.
func Add(a, b Value) (Value, error) {
	if v, ok, err := numericOp(a, b, "+", func(x, y float64) float64 { return x + y }, func(x, y int64) int64 { return x + y }); ok {
		return v, err
	}
	switch av := a.(type) {
	case String:
		bv, ok := b.(String)
		if !ok {
			return nil, typeErr("+", a, b)
		}
		return String{Value: av.Value + bv.Value}, nil
	case *List:
		bv, ok := b.(*List)
		if !ok {
			return nil, typeErr("+", a, b)
		}
		return av.Concat(bv), nil
	case Tuple:
		bv, ok := b.(Tuple)
		if !ok {
			return nil, typeErr("+", a, b)
		}
		return av.Concat(bv), nil
	case *Object:
		return objectArith(av, b, OverloadAdd, "+")
	}
	return nil, typeErr("+", a, b)
}

// Sub, Mul, Div, Mod implement `-`, `*`, `/`, `%`: numeric on Number,
// elementwise (with scalar broadcast) on Num2/Num4, @op dispatch for
// Object. No concatenative meaning outside `+`.
func Sub(a, b Value) (Value, error) { return arith(a, b, OverloadSub, "-", func(x, y float64) float64 { return x - y }, func(x, y int64) int64 { return x - y }) }
func Mul(a, b Value) (Value, error) { return arith(a, b, OverloadMul, "*", func(x, y float64) float64 { return x * y }, func(x, y int64) int64 { return x * y }) }
func Div(a, b Value) (Value, error) {
	return arith(a, b, OverloadDiv, "/", func(x, y float64) float64 { return x / y }, func(x, y int64) int64 {
		if y == 0 {
			return 0
		}
		return x / y
	})
}
func Mod(a, b Value) (Value, error) {
	return arith(a, b, OverloadMod, "%", func(x, y float64) float64 {
		r := x - y*float64(int64(x/y))
		return r
	}, func(x, y int64) int64 {
		if y == 0 {
			return 0
		}
		return x % y
	})
}

func arith(a, b Value, id OverloadID, op string, ffn func(x, y float64) float64, ifn func(x, y int64) int64) (Value, error) {
	if v, ok, err := numericOp(a, b, op, ffn, ifn); ok {
		return v, err
	}
	if av, ok := a.(*Object); ok {
		return objectArith(av, b, id, op)
	}
	return nil, typeErr(op, a, b)
}

// numericOp handles the Number/Num2/Num4 cases shared by every arithmetic
// operator, including scalar broadcast: mixing a Number with a Num2/Num4
// broadcasts the scalar across every component.
func numericOp(a, b Value, op string, ffn func(x, y float64) float64, ifn func(x, y int64) int64) (Value, bool, error) {
	switch av := a.(type) {
	case Number:
		switch bv := b.(type) {
		case Number:
			if av.IsFloat() || bv.IsFloat() {
				return Flt(ffn(av.AsFloat(), bv.AsFloat())), true, nil
			}
			return Int(ifn(av.AsInt(), bv.AsInt())), true, nil
		case Num2:
			return Num2{X: ffn(av.AsFloat(), bv.X), Y: ffn(av.AsFloat(), bv.Y)}, true, nil
		case Num4:
			return Num4{
				X: ffn(av.AsFloat(), bv.X), Y: ffn(av.AsFloat(), bv.Y),
				Z: ffn(av.AsFloat(), bv.Z), W: ffn(av.AsFloat(), bv.W),
			}, true, nil
		}
	case Num2:
		switch bv := b.(type) {
		case Num2:
			return Num2{X: ffn(av.X, bv.X), Y: ffn(av.Y, bv.Y)}, true, nil
		case Number:
			return Num2{X: ffn(av.X, bv.AsFloat()), Y: ffn(av.Y, bv.AsFloat())}, true, nil
		}
	case Num4:
		switch bv := b.(type) {
		case Num4:
			return Num4{X: ffn(av.X, bv.X), Y: ffn(av.Y, bv.Y), Z: ffn(av.Z, bv.Z), W: ffn(av.W, bv.W)}, true, nil
		case Number:
			return Num4{
				X: ffn(av.X, bv.AsFloat()), Y: ffn(av.Y, bv.AsFloat()),
				Z: ffn(av.Z, bv.AsFloat()), W: ffn(av.W, bv.AsFloat()),
			}, true, nil
		}
	}
	return nil, false, nil
}

func objectArith(self *Object, other Value, id OverloadID, op string) (Value, error) {
	fn, ok := self.Overload(id)
	if !ok {
		return nil, typeErr(op, self, other)
	}
	return fn.Call([]Value{self, other})
}
