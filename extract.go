package graphblas

import "fmt"

// Extract computes w := accum(w, T) under mask/replace where T[i] =
// u[indices[i]] for every i where u has a value stored at indices[i].
// len(indices) must equal w.Size(). Any index named in indices that falls
// outside u's bounds is a usage error and is reported immediately, before
// any part of w is touched.
func Extract[T any](
	w *Vector[T],
	mask VectorMask,
	accum accumulator[T],
	u *Vector[T],
	indices []IndexType,
	replace bool,
) error {
	if IndexType(len(indices)) != w.Size() {
		return &DimensionError{
			Op:   "Extract",
			Want: "size(w) == len(indices)",
			Got:  fmt.Sprintf("size(w)=%d, len(indices)=%d", w.Size(), len(indices)),
		}
	}
	for _, idx := range indices {
		if idx >= u.Size() {
			return &IndexOutOfBoundsError{Index: idx, Dim: u.Size()}
		}
	}
	if err := checkVectorMaskSize("Extract", mask, w.Size()); err != nil {
		return err
	}

	var computed []Entry[T]
	for i, idx := range indices {
		if val, err := u.ExtractElement(idx); err == nil {
			computed = append(computed, Entry[T]{Index: IndexType(i), Value: val})
		}
	}
	writeVector(w, computed, accum, mask, replace)
	return nil
}
