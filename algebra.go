package graphblas

import "golang.org/x/exp/constraints"

// Numeric is the constraint satisfied by the built-in types the predefined
// operators and semirings in this package are instantiated over.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// BinaryOp is a pure evaluation over two input domains producing a value in
// a third. D1, D2 and D3 may be distinct types (e.g. a comparison operator
// over int producing bool) but the predefined operators below use D1=D2=D3.
type BinaryOp[D1, D2, D3 any] struct {
	Name string
	Eval func(a D1, b D2) D3
}

// UnaryOp is a pure evaluation of a single input, used by Apply.
type UnaryOp[D1, D3 any] struct {
	Name string
	Eval func(a D1) D3
}

// Monoid is an associative, commutative binary operator over a single
// domain T together with its two-sided identity element. Callers are
// responsible for supplying operators that actually satisfy associativity
// and commutativity; the engine does not verify algebraic laws.
type Monoid[T any] struct {
	Op       BinaryOp[T, T, T]
	Identity T
}

// Semiring composes an additive monoid with a multiplicative operator,
// where Mul is expected (by the caller's construction, not verified here)
// to distribute over the monoid's Add. D3 is the semiring's result domain,
// i.e. the domain of both Add and the output of Mul.
type Semiring[D1, D2, D3 any] struct {
	Add Monoid[D3]
	Mul BinaryOp[D1, D2, D3]
}

// AddIdentity returns the additive monoid's identity, used as the starting
// value of a dot product inside Mxv/Mxm.
func (s Semiring[D1, D2, D3]) AddIdentity() D3 {
	return s.Add.Identity
}

// add evaluates the semiring's additive operator.
func (s Semiring[D1, D2, D3]) add(x, y D3) D3 {
	return s.Add.Op.Eval(x, y)
}

// mul evaluates the semiring's multiplicative operator.
func (s Semiring[D1, D2, D3]) mul(a D1, b D2) D3 {
	return s.Mul.Eval(a, b)
}

// MultiplyOp lifts a semiring into a plain binary operator whose evaluation
// is the semiring's multiply. This lets element-wise kernels (EWiseAdd,
// EWiseMult) accept either a naked operator or a semiring interchangeably.
func MultiplyOp[D1, D2, D3 any](sr Semiring[D1, D2, D3]) BinaryOp[D1, D2, D3] {
	return BinaryOp[D1, D2, D3]{
		Name: "multiply(" + sr.Mul.Name + ")",
		Eval: sr.Mul.Eval,
	}
}

// accumulator is the interface satisfied by both NoAccumulate and any
// BinaryOp[T, T, T] used in the accum slot of a primitive.
type accumulator[T any] interface {
	// isNoAccumulate reports whether this accumulator selects replace
	// semantics (true) or combine semantics (false) at the accumulate
	// stage of the write-back engine.
	isNoAccumulate() bool
	// combine evaluates the accumulator; only called when
	// isNoAccumulate() is false.
	combine(existing, computed T) T
}

// noAccumulate is the marker type selecting replace semantics at the
// accumulate stage: Z := T, ignoring the prior contents of the output.
type noAccumulate[T any] struct{}

func (noAccumulate[T]) isNoAccumulate() bool       { return true }
func (noAccumulate[T]) combine(_, computed T) T    { return computed }

// NoAccumulate selects replace write-back at the accumulate stage: the
// computed intermediate overwrites the destination outright rather than
// combining with its prior contents.
func NoAccumulate[T any]() accumulator[T] {
	return noAccumulate[T]{}
}

// opAccumulate adapts a BinaryOp into the accumulator interface, combining
// the existing destination value with the freshly computed one.
type opAccumulate[T any] struct {
	op BinaryOp[T, T, T]
}

func (a opAccumulate[T]) isNoAccumulate() bool    { return false }
func (a opAccumulate[T]) combine(existing, computed T) T {
	return a.op.Eval(existing, computed)
}

// Accumulate wraps a binary operator for use in the accum slot of a
// primitive, selecting combine semantics: Z[i] = op(C[i], T[i]) at
// positions present in both.
func Accumulate[T any](op BinaryOp[T, T, T]) accumulator[T] {
	return opAccumulate[T]{op: op}
}

// --- predefined binary operators -------------------------------------------------

// Plus is the addition operator a + b.
func Plus[T Numeric]() BinaryOp[T, T, T] {
	return BinaryOp[T, T, T]{Name: "Plus", Eval: func(a, b T) T { return a + b }}
}

// Times is the multiplication operator a * b.
func Times[T Numeric]() BinaryOp[T, T, T] {
	return BinaryOp[T, T, T]{Name: "Times", Eval: func(a, b T) T { return a * b }}
}

// Min is the binary minimum operator.
func Min[T constraints.Ordered]() BinaryOp[T, T, T] {
	return BinaryOp[T, T, T]{Name: "Min", Eval: func(a, b T) T {
		if a < b {
			return a
		}
		return b
	}}
}

// Max is the binary maximum operator.
func Max[T constraints.Ordered]() BinaryOp[T, T, T] {
	return BinaryOp[T, T, T]{Name: "Max", Eval: func(a, b T) T {
		if a > b {
			return a
		}
		return b
	}}
}

// LogicalOr is the boolean OR operator.
func LogicalOr() BinaryOp[bool, bool, bool] {
	return BinaryOp[bool, bool, bool]{Name: "LogicalOr", Eval: func(a, b bool) bool { return a || b }}
}

// LogicalAnd is the boolean AND operator.
func LogicalAnd() BinaryOp[bool, bool, bool] {
	return BinaryOp[bool, bool, bool]{Name: "LogicalAnd", Eval: func(a, b bool) bool { return a && b }}
}

// --- predefined monoids -----------------------------------------------------------

// PlusMonoid is (Plus, 0).
func PlusMonoid[T Numeric]() Monoid[T] {
	var zero T
	return Monoid[T]{Op: Plus[T](), Identity: zero}
}

// TimesMonoid is (Times, 1).
func TimesMonoid[T Numeric]() Monoid[T] {
	return Monoid[T]{Op: Times[T](), Identity: T(1)}
}

// OrMonoid is (LogicalOr, false).
func OrMonoid() Monoid[bool] {
	return Monoid[bool]{Op: LogicalOr(), Identity: false}
}

// --- predefined semirings ----------------------------------------------------------

// ArithmeticSemiring is the conventional (+, *) semiring over a numeric
// domain, identity element 0 for +.
func ArithmeticSemiring[T Numeric]() Semiring[T, T, T] {
	return Semiring[T, T, T]{Add: PlusMonoid[T](), Mul: Times[T]()}
}

// LogicalSemiring is the (OR, AND) boolean semiring.
func LogicalSemiring() Semiring[bool, bool, bool] {
	return Semiring[bool, bool, bool]{Add: OrMonoid(), Mul: LogicalAnd()}
}

// MinPlusSemiring is the tropical (min, +) semiring used by shortest-path
// style algorithms. Its additive identity is the type's positive-infinity
// stand-in, supplied by the caller via positiveInfinity since Go has no generic
// notion of infinity; callers working with float64 should use
// MinPlusSemiringFloat64.
func MinPlusSemiring[T Numeric](positiveInfinity T) Semiring[T, T, T] {
	return Semiring[T, T, T]{
		Add: Monoid[T]{Op: Min[T](), Identity: positiveInfinity},
		Mul: Plus[T](),
	}
}

// MaxPlusSemiring is the (max, +) semiring, dual to MinPlusSemiring.
func MaxPlusSemiring[T Numeric](negativeInfinity T) Semiring[T, T, T] {
	return Semiring[T, T, T]{
		Add: Monoid[T]{Op: Max[T](), Identity: negativeInfinity},
		Mul: Plus[T](),
	}
}

// MinPlusSemiringFloat64 is MinPlusSemiring instantiated for float64 using
// math.Inf(1) as the additive identity.
func MinPlusSemiringFloat64() Semiring[float64, float64, float64] {
	return MinPlusSemiring[float64](positiveInfFloat64)
}

// MaxPlusSemiringFloat64 is MaxPlusSemiring instantiated for float64 using
// math.Inf(-1) as the additive identity.
func MaxPlusSemiringFloat64() Semiring[float64, float64, float64] {
	return MaxPlusSemiring[float64](negativeInfFloat64)
}
