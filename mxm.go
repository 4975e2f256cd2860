package graphblas

import (
	"fmt"
	"sort"

	"github.com/james-bowman/graphblas/internal/pool"
	"github.com/james-bowman/graphblas/internal/spblas"
)

// Mxm computes C := accum(C, A +.* B) under mask/replace using the
// row-by-row Gustavson algorithm: for each row i of A, scatter the
// contributions of A[i,k] * B[k,j] into a dense accumulator row indexed by
// j via internal/spblas.Scatter/Axpy, then gather the touched columns back
// into a sorted sparse row before handing it to the write-back engine. The
// dense accumulator and its touched-column bookkeeping are reused across
// rows via internal/pool, one reset per Mxm call rather than per row.
func Mxm[D1, D2, D3 any](
	C *Matrix[D3],
	mask MatrixMask,
	accum accumulator[D3],
	sr Semiring[D1, D2, D3],
	A MatrixLike[D1],
	B MatrixLike[D2],
	replace bool,
) error {
	if A.Ncols() != B.Nrows() {
		return &DimensionError{
			Op:   "Mxm",
			Want: "ncols(A) == nrows(B)",
			Got:  fmt.Sprintf("ncols(A)=%d, nrows(B)=%d", A.Ncols(), B.Nrows()),
		}
	}
	if C.Nrows() != A.Nrows() {
		return &DimensionError{
			Op:   "Mxm",
			Want: "nrows(C) == nrows(A)",
			Got:  fmt.Sprintf("nrows(C)=%d, nrows(A)=%d", C.Nrows(), A.Nrows()),
		}
	}
	if C.Ncols() != B.Ncols() {
		return &DimensionError{
			Op:   "Mxm",
			Want: "ncols(C) == ncols(B)",
			Got:  fmt.Sprintf("ncols(C)=%d, ncols(B)=%d", C.Ncols(), B.Ncols()),
		}
	}
	if err := checkMatrixMaskShape("Mxm", mask, C.Nrows(), C.Ncols()); err != nil {
		return err
	}
	if matrixAliasesDestination(any(A), any(C)) {
		return &InvalidObjectError{Reason: "Mxm: output C must not alias input A"}
	}
	if matrixAliasesDestination(any(B), any(C)) {
		return &InvalidObjectError{Reason: "Mxm: output C must not alias input B"}
	}

	ncols := int(C.Ncols())
	accRow := pool.GetValues[D3](ncols)
	version := pool.GetInts(ncols)
	defer pool.PutValues(accRow)
	defer pool.PutInts(version)
	for k := range version {
		version[k] = -1
	}

	touched := make([]IndexType, 0, 16)
	currentVersion := 0

	for i := IndexType(0); i < C.Nrows(); i++ {
		aRow := A.GetRow(i)
		var computed []Entry[D3]

		if len(aRow) > 0 {
			touched = touched[:0]
			currentVersion++
			for _, ae := range aRow {
				bRow := B.GetRow(ae.Index)
				bIdx, bVal := splitEntries(bRow)

				var newIdx []IndexType
				var newVal []D3
				for _, j := range bIdx {
					if version[j] != currentVersion {
						version[j] = currentVersion
						touched = append(touched, j)
						newIdx = append(newIdx, j)
						newVal = append(newVal, sr.AddIdentity())
					}
				}
				if len(newIdx) > 0 {
					spblas.Scatter(newIdx, newVal, accRow)
				}
				spblas.Axpy(ae.Value, bIdx, bVal, accRow, sr.mul, sr.add)
			}

			sort.Slice(touched, func(a, b int) bool { return touched[a] < touched[b] })
			vals := spblas.Gather(accRow, touched)
			computed = make([]Entry[D3], len(touched))
			for k, j := range touched {
				computed[k] = Entry[D3]{Index: j, Value: vals[k]}
			}
		}

		writeMatrixRow(C, i, computed, accum, mask, replace)
	}
	return nil
}
