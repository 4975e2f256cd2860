package graphblas

import (
	"fmt"
	"sort"
)

// Assign computes C := accum(C, T) under mask/replace where T is the
// scatter of u's stored entries into the positions of C named by indices:
// for each stored (i, v) in u, T[indices[i]] = v. len(indices) must equal
// u.Size(). It is the dual of Extract. Any index named in indices that
// falls outside C's bounds is a usage error and is reported immediately,
// before any part of C is touched. If two stored entries of u map to the
// same destination index, the one with the larger source index wins.
func Assign[T any](
	C *Vector[T],
	mask VectorMask,
	accum accumulator[T],
	u *Vector[T],
	indices []IndexType,
	replace bool,
) error {
	if IndexType(len(indices)) != u.Size() {
		return &DimensionError{
			Op:   "Assign",
			Want: "size(u) == len(indices)",
			Got:  fmt.Sprintf("size(u)=%d, len(indices)=%d", u.Size(), len(indices)),
		}
	}
	for _, idx := range indices {
		if idx >= C.Size() {
			return &IndexOutOfBoundsError{Index: idx, Dim: C.Size()}
		}
	}
	if err := checkVectorMaskSize("Assign", mask, C.Size()); err != nil {
		return err
	}

	contents := u.GetContents()
	computed := make([]Entry[T], len(contents))
	for k, e := range contents {
		computed[k] = Entry[T]{Index: indices[e.Index], Value: e.Value}
	}
	sort.SliceStable(computed, func(a, b int) bool { return computed[a].Index < computed[b].Index })
	computed = dedupeKeepLast(computed)

	writeVector(C, computed, accum, mask, replace)
	return nil
}

// dedupeKeepLast collapses runs of equal-Index entries in an
// ascending-sorted slice, keeping the last entry of each run.
func dedupeKeepLast[T any](sorted []Entry[T]) []Entry[T] {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:0:0]
	out = append(out, sorted[0])
	for _, e := range sorted[1:] {
		if e.Index == out[len(out)-1].Index {
			out[len(out)-1] = e
		} else {
			out = append(out, e)
		}
	}
	return out
}
