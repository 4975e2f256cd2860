package graphblas

// Apply computes w := accum(w, T) under mask/replace where T[i] =
// op(u[i]) for every stored i of u.
func Apply[D1, D3 any](
	w *Vector[D3],
	mask VectorMask,
	accum accumulator[D3],
	op UnaryOp[D1, D3],
	u *Vector[D1],
	replace bool,
) error {
	if err := checkVectorSize("Apply", "w", w.Size(), "u", u.Size()); err != nil {
		return err
	}
	if err := checkVectorMaskSize("Apply", mask, w.Size()); err != nil {
		return err
	}
	src := u.GetContents()
	computed := make([]Entry[D3], len(src))
	for k, e := range src {
		computed[k] = Entry[D3]{Index: e.Index, Value: op.Eval(e.Value)}
	}
	writeVector(w, computed, accum, mask, replace)
	return nil
}

// ApplyMatrix is the Matrix equivalent of Apply, applied independently to
// each row.
func ApplyMatrix[D1, D3 any](
	C *Matrix[D3],
	mask MatrixMask,
	accum accumulator[D3],
	op UnaryOp[D1, D3],
	A MatrixLike[D1],
	replace bool,
) error {
	if C.Nrows() != A.Nrows() || C.Ncols() != A.Ncols() {
		return &DimensionError{Op: "ApplyMatrix", Want: "shape(C) == shape(A)", Got: shapeString(C, A)}
	}
	if err := checkMatrixMaskShape("ApplyMatrix", mask, C.Nrows(), C.Ncols()); err != nil {
		return err
	}
	for i := IndexType(0); i < C.Nrows(); i++ {
		src := A.GetRow(i)
		computed := make([]Entry[D3], len(src))
		for k, e := range src {
			computed[k] = Entry[D3]{Index: e.Index, Value: op.Eval(e.Value)}
		}
		writeMatrixRow(C, i, computed, accum, mask, replace)
	}
	return nil
}
