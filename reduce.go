package graphblas

// ReduceVector folds every stored entry of v with monoid, starting from
// monoid's identity (not any implicit zero of v - spec.md's design notes
// call this out explicitly: the monoid's identity is always the correct
// additive start of a reduction, even for non-arithmetic semirings like
// MinPlus where the identity is +Inf rather than a container's stored
// zero). The fold is then combined with s via accum, or replaces it
// outright under NoAccumulate.
func ReduceVector[T any](s T, accum accumulator[T], monoid Monoid[T], v *Vector[T]) T {
	folded := monoid.Identity
	for _, e := range v.GetContents() {
		folded = monoid.Op.Eval(folded, e.Value)
	}
	if accum.isNoAccumulate() {
		return folded
	}
	return accum.combine(s, folded)
}

// ReduceMatrix folds every stored entry of A (across every row) with
// monoid, starting from monoid's identity, then combines with s via accum
// (or replaces it outright under NoAccumulate).
func ReduceMatrix[T any](s T, accum accumulator[T], monoid Monoid[T], A MatrixLike[T]) T {
	folded := monoid.Identity
	for i := IndexType(0); i < A.Nrows(); i++ {
		for _, e := range A.GetRow(i) {
			folded = monoid.Op.Eval(folded, e.Value)
		}
	}
	if accum.isNoAccumulate() {
		return folded
	}
	return accum.combine(s, folded)
}

// ReduceMatrixToVector folds each row of A independently with monoid,
// writing w[i] := accum(w[i], folded row i) under mask/replace. This is
// the row-reduce form of Reduce used to collapse an adjacency matrix into
// a per-vertex summary (e.g. out-degree via PlusMonoid).
func ReduceMatrixToVector[T any](
	w *Vector[T],
	mask VectorMask,
	accum accumulator[T],
	monoid Monoid[T],
	A MatrixLike[T],
	replace bool,
) error {
	if err := checkVectorSizeNrows("ReduceMatrixToVector", "w", w.Size(), "A", A.Nrows()); err != nil {
		return err
	}
	if err := checkVectorMaskSize("ReduceMatrixToVector", mask, w.Size()); err != nil {
		return err
	}
	var computed []Entry[T]
	for i := IndexType(0); i < A.Nrows(); i++ {
		row := A.GetRow(i)
		if len(row) == 0 {
			continue
		}
		folded := monoid.Identity
		for _, e := range row {
			folded = monoid.Op.Eval(folded, e.Value)
		}
		computed = append(computed, Entry[T]{Index: i, Value: folded})
	}
	writeVector(w, computed, accum, mask, replace)
	return nil
}
