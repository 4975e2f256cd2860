package graphblas

import "testing"

func negate() UnaryOp[float64, float64] {
	return UnaryOp[float64, float64]{Name: "Negate", Eval: func(a float64) float64 { return -a }}
}

func isPositive() UnaryOp[float64, bool] {
	return UnaryOp[float64, bool]{Name: "IsPositive", Eval: func(a float64) bool { return a > 0 }}
}

func TestApplyNegatesStoredEntries(t *testing.T) {
	u := NewVectorDense([]float64{1, 0, -3}, 0)
	w := NewVector[float64](3)

	if err := Apply(w, NoMask(), NoAccumulate[float64](), negate(), u, false); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if val, err := w.ExtractElement(0); err != nil || val != -1 {
		t.Fatalf("w[0] = %v, %v, want -1, nil", val, err)
	}
	if val, err := w.ExtractElement(2); err != nil || val != 3 {
		t.Fatalf("w[2] = %v, %v, want 3, nil", val, err)
	}
	if w.HasElement(1) {
		t.Fatalf("expected index 1 to stay absent (u has no stored entry there)")
	}
}

func TestApplyChangesDomain(t *testing.T) {
	u := NewVectorDense([]float64{1, -1, 2}, 0)
	w := NewVector[bool](3)

	if err := Apply(w, NoMask(), NoAccumulate[bool](), isPositive(), u, false); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if val, err := w.ExtractElement(0); err != nil || val != true {
		t.Fatalf("w[0] = %v, %v, want true, nil", val, err)
	}
	if val, err := w.ExtractElement(1); err != nil || val != false {
		t.Fatalf("w[1] = %v, %v, want false, nil", val, err)
	}
}

func TestApplyDimensionMismatch(t *testing.T) {
	u := NewVector[float64](3)
	w := NewVector[float64](2)

	err := Apply(w, NoMask(), NoAccumulate[float64](), negate(), u, false)
	if _, ok := err.(*DimensionError); !ok {
		t.Fatalf("expected *DimensionError, got %v", err)
	}
}

func TestApplyMatrixAppliesRowWise(t *testing.T) {
	A := NewMatrixDense([][]float64{
		{1, 0},
		{0, -2},
	}, 0)
	C := NewMatrix[float64](2, 2)

	if err := ApplyMatrix(C, NoMask(), NoAccumulate[float64](), negate(), A, false); err != nil {
		t.Fatalf("ApplyMatrix returned error: %v", err)
	}
	if val, err := C.ExtractElement(0, 0); err != nil || val != -1 {
		t.Fatalf("C[0,0] = %v, %v, want -1, nil", val, err)
	}
	if val, err := C.ExtractElement(1, 1); err != nil || val != 2 {
		t.Fatalf("C[1,1] = %v, %v, want 2, nil", val, err)
	}
}

func TestApplyMatrixShapeMismatch(t *testing.T) {
	A := NewMatrix[float64](2, 2)
	C := NewMatrix[float64](3, 2)

	err := ApplyMatrix(C, NoMask(), NoAccumulate[float64](), negate(), A, false)
	if _, ok := err.(*DimensionError); !ok {
		t.Fatalf("expected *DimensionError, got %v", err)
	}
}
