package graphblas

import "testing"

func TestPlusTimesMinMax(t *testing.T) {
	if got := Plus[int]().Eval(2, 3); got != 5 {
		t.Fatalf("Plus(2,3) = %d, want 5", got)
	}
	if got := Times[int]().Eval(2, 3); got != 6 {
		t.Fatalf("Times(2,3) = %d, want 6", got)
	}
	if got := Min[int]().Eval(2, 3); got != 2 {
		t.Fatalf("Min(2,3) = %d, want 2", got)
	}
	if got := Max[int]().Eval(2, 3); got != 3 {
		t.Fatalf("Max(2,3) = %d, want 3", got)
	}
	if got := LogicalOr().Eval(false, true); got != true {
		t.Fatalf("LogicalOr(false,true) = %v, want true", got)
	}
	if got := LogicalAnd().Eval(false, true); got != false {
		t.Fatalf("LogicalAnd(false,true) = %v, want false", got)
	}
}

func TestArithmeticSemiring(t *testing.T) {
	sr := ArithmeticSemiring[float64]()
	if got := sr.mul(2, 3); got != 6 {
		t.Fatalf("mul(2,3) = %v, want 6", got)
	}
	if got := sr.add(2, 3); got != 5 {
		t.Fatalf("add(2,3) = %v, want 5", got)
	}
	if got := sr.AddIdentity(); got != 0 {
		t.Fatalf("AddIdentity() = %v, want 0", got)
	}
}

func TestLogicalSemiring(t *testing.T) {
	sr := LogicalSemiring()
	if got := sr.mul(true, false); got != false {
		t.Fatalf("mul(true,false) = %v, want false", got)
	}
	if got := sr.add(false, true); got != true {
		t.Fatalf("add(false,true) = %v, want true", got)
	}
}

func TestMinPlusSemiringFloat64(t *testing.T) {
	sr := MinPlusSemiringFloat64()
	if got := sr.mul(2, 3); got != 5 {
		t.Fatalf("mul(2,3) = %v, want 5", got)
	}
	if got := sr.add(2, 3); got != 2 {
		t.Fatalf("add(2,3) = %v, want 2", got)
	}
	if got := sr.AddIdentity(); got != positiveInfFloat64 {
		t.Fatalf("AddIdentity() = %v, want +Inf", got)
	}
}

func TestMultiplyOpLiftsSemiring(t *testing.T) {
	sr := ArithmeticSemiring[float64]()
	op := MultiplyOp(sr)
	if got := op.Eval(4, 5); got != 20 {
		t.Fatalf("lifted multiply(4,5) = %v, want 20", got)
	}
}

func TestNoAccumulateSelectsReplace(t *testing.T) {
	acc := NoAccumulate[float64]()
	if !acc.isNoAccumulate() {
		t.Fatalf("NoAccumulate must report isNoAccumulate() == true")
	}
}

func TestAccumulateCombines(t *testing.T) {
	acc := Accumulate(Plus[float64]())
	if acc.isNoAccumulate() {
		t.Fatalf("Accumulate(op) must report isNoAccumulate() == false")
	}
	if got := acc.combine(3, 4); got != 7 {
		t.Fatalf("combine(3,4) = %v, want 7", got)
	}
}
