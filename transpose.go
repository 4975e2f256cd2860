package graphblas

// TransposeInto computes C := accum(C, A^T) under mask/replace, row by row,
// reusing TransposeView to avoid a second materialization of A. Transposing
// A into B and then B into C leaves C equal to A, matching the transpose
// involution property. C must not be A itself (or a view of it); that case
// is rejected with InvalidObjectError.
func TransposeInto[T any](
	C *Matrix[T],
	mask MatrixMask,
	accum accumulator[T],
	A MatrixLike[T],
	replace bool,
) error {
	if C.Nrows() != A.Ncols() || C.Ncols() != A.Nrows() {
		return &DimensionError{
			Op:   "TransposeInto",
			Want: "shape(C) == reverse(shape(A))",
			Got:  formatShape(C.Nrows(), C.Ncols()) + " vs " + formatShape(A.Ncols(), A.Nrows()),
		}
	}
	if err := checkMatrixMaskShape("TransposeInto", mask, C.Nrows(), C.Ncols()); err != nil {
		return err
	}
	if matrixAliasesDestination(any(A), any(C)) {
		return &InvalidObjectError{Reason: "TransposeInto: output C must not alias input A"}
	}

	view := Transpose(A)
	for i := IndexType(0); i < C.Nrows(); i++ {
		writeMatrixRow(C, i, view.GetRow(i), accum, mask, replace)
	}
	return nil
}
