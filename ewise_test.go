package graphblas

import "testing"

// These cases are spec.md section 8's six concrete end-to-end scenarios,
// encoded verbatim.

func scenarioOperands() (u, v *Vector[float64]) {
	u = NewVectorDense([]float64{0, 0, 12, 7}, 0)
	v = NewVectorDense([]float64{2, 2, 2, 2}, 0)
	return
}

func scenarioMask() *Vector[int] {
	return NewVectorDense([]int{0, 1, 1, 0}, 0)
}

func TestScenario1EWiseMultNoMaskNoAccum(t *testing.T) {
	u, v := scenarioOperands()
	result := NewVector[float64](4)

	if err := EWiseMult(result, NoMask(), NoAccumulate[float64](), Times[float64](), u, v, false); err != nil {
		t.Fatalf("EWiseMult returned error: %v", err)
	}

	if result.Nvals() != 2 {
		t.Fatalf("Nvals() = %d, want 2", result.Nvals())
	}
	if val, err := result.ExtractElement(2); err != nil || val != 24 {
		t.Fatalf("result[2] = %v, %v, want 24, nil", val, err)
	}
	if val, err := result.ExtractElement(3); err != nil || val != 14 {
		t.Fatalf("result[3] = %v, %v, want 14, nil", val, err)
	}
	if result.HasElement(0) || result.HasElement(1) {
		t.Fatalf("expected indices 0 and 1 absent")
	}
}

func TestScenario2EWiseMultSparseRHS(t *testing.T) {
	u, _ := scenarioOperands()
	w := NewVectorDense([]float64{0, 1, 0, 2}, 0)
	result := NewVector[float64](4)

	if err := EWiseMult(result, NoMask(), NoAccumulate[float64](), Times[float64](), u, w, false); err != nil {
		t.Fatalf("EWiseMult returned error: %v", err)
	}

	if result.Nvals() != 1 {
		t.Fatalf("Nvals() = %d, want 1", result.Nvals())
	}
	if val, err := result.ExtractElement(3); err != nil || val != 14 {
		t.Fatalf("result[3] = %v, %v, want 14, nil", val, err)
	}
}

func TestScenario3EWiseMultMaskMerge(t *testing.T) {
	u, v := scenarioOperands()
	mask := scenarioMask()
	result := NewVectorDenseAll([]float64{2, 2, 2, 2})

	if err := EWiseMult(result, VecMask(mask), NoAccumulate[float64](), Times[float64](), u, v, false); err != nil {
		t.Fatalf("EWiseMult returned error: %v", err)
	}

	want := map[IndexType]float64{0: 2, 2: 24, 3: 2}
	for idx, w := range want {
		val, err := result.ExtractElement(idx)
		if err != nil || val != w {
			t.Fatalf("result[%d] = %v, %v, want %v, nil", idx, val, err, w)
		}
	}
	if result.HasElement(1) {
		t.Fatalf("expected index 1 cleared (in mask, absent from product)")
	}
}

func TestScenario4EWiseMultMaskMergeSparseRHS(t *testing.T) {
	u, _ := scenarioOperands()
	w := NewVectorDense([]float64{0, 1, 0, 2}, 0)
	mask := scenarioMask()
	result := NewVectorDenseAll([]float64{2, 2, 2, 2})

	if err := EWiseMult(result, VecMask(mask), NoAccumulate[float64](), Times[float64](), u, w, false); err != nil {
		t.Fatalf("EWiseMult returned error: %v", err)
	}

	if val, err := result.ExtractElement(0); err != nil || val != 2 {
		t.Fatalf("result[0] = %v, %v, want 2, nil", val, err)
	}
	if val, err := result.ExtractElement(3); err != nil || val != 2 {
		t.Fatalf("result[3] = %v, %v, want 2, nil", val, err)
	}
	if result.HasElement(1) || result.HasElement(2) {
		t.Fatalf("expected indices 1 and 2 cleared (in mask, absent from product)")
	}
}

func TestScenario5EWiseMultComplementMaskReplace(t *testing.T) {
	u, v := scenarioOperands()
	mask := NewVectorDense([]int{1, 0, 0, 1}, 0)
	result := NewVector[float64](4)

	err := EWiseMult(result, Complement(VecMask(mask)), NoAccumulate[float64](), Times[float64](), u, v, true)
	if err != nil {
		t.Fatalf("EWiseMult returned error: %v", err)
	}

	if result.Nvals() != 1 {
		t.Fatalf("Nvals() = %d, want 1", result.Nvals())
	}
	if val, err := result.ExtractElement(2); err != nil || val != 24 {
		t.Fatalf("result[2] = %v, %v, want 24, nil", val, err)
	}
}

func TestScenario6MxvArithmeticSemiring(t *testing.T) {
	A := NewMatrixDense([][]float64{
		{0, 0},
		{1, 1},
	}, 0)
	u := NewVectorDense([]float64{1, 1}, 0)
	w := NewVector[float64](2)

	sr := ArithmeticSemiring[float64]()
	if err := Mxv(w, NoMask(), NoAccumulate[float64](), sr, A, u, false); err != nil {
		t.Fatalf("Mxv returned error: %v", err)
	}

	if w.HasElement(0) {
		t.Fatalf("expected w[0] absent (empty row, empty intersection)")
	}
	if val, err := w.ExtractElement(1); err != nil || val != 2 {
		t.Fatalf("w[1] = %v, %v, want 2, nil", val, err)
	}
}

func TestEWiseAddUnionWithCarryThrough(t *testing.T) {
	u := NewVectorDense([]float64{1, 0, 3}, 0)
	v := NewVectorDense([]float64{0, 2, 3}, 0)
	w := NewVector[float64](3)

	if err := EWiseAdd(w, NoMask(), NoAccumulate[float64](), Plus[float64](), u, v, false); err != nil {
		t.Fatalf("EWiseAdd returned error: %v", err)
	}

	want := []float64{1, 2, 6}
	for i, want := range want {
		val, err := w.ExtractElement(IndexType(i))
		if err != nil || val != want {
			t.Fatalf("w[%d] = %v, %v, want %v, nil", i, val, err, want)
		}
	}
}

func TestEWiseAddIsSymmetricForCommutativeOp(t *testing.T) {
	u := NewVectorDense([]float64{1, 0, 3}, 0)
	v := NewVectorDense([]float64{0, 2, 3}, 0)

	w1 := NewVector[float64](3)
	w2 := NewVector[float64](3)
	_ = EWiseAdd(w1, NoMask(), NoAccumulate[float64](), Plus[float64](), u, v, false)
	_ = EWiseAdd(w2, NoMask(), NoAccumulate[float64](), Plus[float64](), v, u, false)

	if !VectorEqual(w1, w2) {
		t.Fatalf("EWiseAdd with commutative op must be symmetric in its operands")
	}
}

func TestEWiseMultDimensionMismatch(t *testing.T) {
	u := NewVector[float64](3)
	v := NewVector[float64](4)
	w := NewVector[float64](3)

	err := EWiseMult(w, NoMask(), NoAccumulate[float64](), Times[float64](), u, v, false)
	if _, ok := err.(*DimensionError); !ok {
		t.Fatalf("expected *DimensionError, got %v", err)
	}
}

func TestEWiseMultLeavesOutputUnchangedOnDimensionError(t *testing.T) {
	u := NewVector[float64](3)
	v := NewVector[float64](4)
	w := NewVectorDense([]float64{9, 9, 9}, 0)
	before := w.Clone()

	_ = EWiseMult(w, NoMask(), NoAccumulate[float64](), Times[float64](), u, v, false)

	if !VectorEqual(before, w) {
		t.Fatalf("output must remain unchanged after a dimension error")
	}
}

func TestEWiseMultMaskSizeMismatch(t *testing.T) {
	u, v := scenarioOperands()
	mask := NewVectorDense([]int{0, 1, 1, 0, 1}, 0)
	w := NewVectorDense([]float64{9, 9, 9, 9}, 0)
	before := w.Clone()

	err := EWiseMult(w, VecMask(mask), NoAccumulate[float64](), Times[float64](), u, v, false)
	if _, ok := err.(*DimensionError); !ok {
		t.Fatalf("expected *DimensionError, got %v", err)
	}
	if !VectorEqual(before, w) {
		t.Fatalf("output must remain unchanged after a mask-size error")
	}
}

func TestEWiseAddMaskSizeMismatch(t *testing.T) {
	u, v := scenarioOperands()
	mask := NewVectorDense([]int{0, 1}, 0)
	w := NewVectorDense([]float64{9, 9, 9, 9}, 0)
	before := w.Clone()

	err := EWiseAdd(w, VecMask(mask), NoAccumulate[float64](), Plus[float64](), u, v, false)
	if _, ok := err.(*DimensionError); !ok {
		t.Fatalf("expected *DimensionError, got %v", err)
	}
	if !VectorEqual(before, w) {
		t.Fatalf("output must remain unchanged after a mask-size error")
	}
}
