package graphblas

import "github.com/james-bowman/graphblas/internal/spblas"

// Mxv computes w := accum(w, A +.* u) under mask/replace, where +.* is the
// semiring sr's additive monoid and multiplicative operator. For each row
// i of A, T[i] is the sparse dot product of row i against u, restricted to
// the intersection of their stored indices; a row contributes no entry to
// T at all when that intersection is empty, regardless of the semiring's
// additive identity. Rows of A with no stored entries are skipped without
// ever consulting u.
func Mxv[D1, D2, D3 any](
	w *Vector[D3],
	mask VectorMask,
	accum accumulator[D3],
	sr Semiring[D1, D2, D3],
	A MatrixLike[D1],
	u *Vector[D2],
	replace bool,
) error {
	if err := checkVectorSizeNrows("Mxv", "w", w.Size(), "A", A.Nrows()); err != nil {
		return err
	}
	if err := checkVectorSizeNcols("Mxv", "u", u.Size(), "A", A.Ncols()); err != nil {
		return err
	}
	if err := checkVectorMaskSize("Mxv", mask, w.Size()); err != nil {
		return err
	}

	uIdx, uVal := splitEntries(u.GetContents())

	var computed []Entry[D3]
	if A.Nrows() > 0 && len(uIdx) > 0 {
		for i := IndexType(0); i < w.Size(); i++ {
			row := A.GetRow(i)
			if len(row) == 0 {
				continue
			}
			aIdx, aVal := splitEntries(row)
			val, nonEmpty := spblas.Dot(aIdx, aVal, uIdx, uVal, sr.mul, sr.add, sr.AddIdentity())
			if nonEmpty {
				computed = append(computed, Entry[D3]{Index: i, Value: val})
			}
		}
	}

	writeVector(w, computed, accum, mask, replace)
	return nil
}

// Vxm computes w := accum(w, u^T +.* A) under mask/replace - the dual of
// Mxv, multiplying a row vector by a matrix. It is defined directly in
// terms of Mxv against a TransposeView of A, matching the testable
// property mxv(w, _, _, sr, A, u) == vxm(w, _, _, sr, u, transpose(A)).
func Vxm[D1, D2, D3 any](
	w *Vector[D3],
	mask VectorMask,
	accum accumulator[D3],
	sr Semiring[D2, D1, D3],
	u *Vector[D1],
	A MatrixLike[D2],
	replace bool,
) error {
	return Mxv(w, mask, accum, sr, Transpose(A), u, replace)
}
