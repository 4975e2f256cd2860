package graphblas

import "fmt"

// EWiseMultMatrix is the Matrix equivalent of EWiseMult, applied
// independently to each row: C[i,j] := accum(C[i,j], op(A[i,j], B[i,j]))
// for j stored in both A and B's row i.
func EWiseMultMatrix[D1, D2, D3 any](
	C *Matrix[D3],
	mask MatrixMask,
	accum accumulator[D3],
	op BinaryOp[D1, D2, D3],
	A MatrixLike[D1],
	B MatrixLike[D2],
	replace bool,
) error {
	if A.Nrows() != B.Nrows() || A.Ncols() != B.Ncols() {
		return &DimensionError{Op: "EWiseMultMatrix", Want: "shape(A) == shape(B)", Got: shapeString(A, B)}
	}
	if C.Nrows() != A.Nrows() || C.Ncols() != A.Ncols() {
		return &DimensionError{Op: "EWiseMultMatrix", Want: "shape(C) == shape(A)", Got: shapeString(C, A)}
	}
	if err := checkMatrixMaskShape("EWiseMultMatrix", mask, C.Nrows(), C.Ncols()); err != nil {
		return err
	}

	for i := IndexType(0); i < C.Nrows(); i++ {
		computed := intersectMerge(A.GetRow(i), B.GetRow(i), op.Eval)
		writeMatrixRow(C, i, computed, accum, mask, replace)
	}
	return nil
}

// EWiseAddMatrix is the Matrix equivalent of EWiseAdd, applied
// independently to each row over the union of A's and B's stored columns.
func EWiseAddMatrix[T any](
	C *Matrix[T],
	mask MatrixMask,
	accum accumulator[T],
	op BinaryOp[T, T, T],
	A MatrixLike[T],
	B MatrixLike[T],
	replace bool,
) error {
	if A.Nrows() != B.Nrows() || A.Ncols() != B.Ncols() {
		return &DimensionError{Op: "EWiseAddMatrix", Want: "shape(A) == shape(B)", Got: shapeString(A, B)}
	}
	if C.Nrows() != A.Nrows() || C.Ncols() != A.Ncols() {
		return &DimensionError{Op: "EWiseAddMatrix", Want: "shape(C) == shape(A)", Got: shapeString(C, A)}
	}
	if err := checkMatrixMaskShape("EWiseAddMatrix", mask, C.Nrows(), C.Ncols()); err != nil {
		return err
	}

	for i := IndexType(0); i < C.Nrows(); i++ {
		computed := unionMerge(A.GetRow(i), B.GetRow(i), op.Eval)
		writeMatrixRow(C, i, computed, accum, mask, replace)
	}
	return nil
}

func shapeString[T1, T2 any](a MatrixLike[T1], b MatrixLike[T2]) string {
	return formatShape(a.Nrows(), a.Ncols()) + " vs " + formatShape(b.Nrows(), b.Ncols())
}

func formatShape(rows, cols IndexType) string {
	return fmt.Sprintf("%dx%d", rows, cols)
}
