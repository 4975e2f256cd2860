package graphblas

// ewiseOrOptAccum merges an existing entry list with a freshly computed
// one under an optional accumulator, implementing stage 2 of the
// write-back pipeline (spec stage "Accumulate"):
//
//   - NoAccumulate: Z := T (the computed list only).
//   - otherwise:    Z is the union of existing and computed; at indices
//     present in both, Z[i] = accum(existing[i], computed[i]); at indices
//     present in only one, that side's value carries through unchanged.
//
// Both input lists must already be sorted ascending by Index with unique
// indices; the result is too.
func ewiseOrOptAccum[T any](existing, computed []Entry[T], accum accumulator[T]) []Entry[T] {
	if accum.isNoAccumulate() {
		out := make([]Entry[T], len(computed))
		copy(out, computed)
		return out
	}

	out := make([]Entry[T], 0, len(existing)+len(computed))
	i, j := 0, 0
	for i < len(existing) && j < len(computed) {
		switch {
		case existing[i].Index < computed[j].Index:
			out = append(out, existing[i])
			i++
		case existing[i].Index > computed[j].Index:
			out = append(out, computed[j])
			j++
		default:
			out = append(out, Entry[T]{
				Index: existing[i].Index,
				Value: accum.combine(existing[i].Value, computed[j].Value),
			})
			i++
			j++
		}
	}
	out = append(out, existing[i:]...)
	out = append(out, computed[j:]...)
	return out
}

// maskedMerge implements stage 3 of the write-back pipeline (mask +
// replace/merge) given:
//
//   - existing: the destination's stored entries before this call (used
//     as the carry-through source under merge semantics)
//   - z:        the accumulated intermediate from stage 2
//   - inMask:   reports whether a given index is selected by the mask
//   - replace:  true clears everything outside the mask (and anything
//     inside the mask absent from z); false (merge) leaves
//     out-of-mask positions untouched and clears in-mask
//     positions absent from z
//
// Only indices present in existing or z are visited, since any index
// absent from both produces no output under either replace or merge.
func maskedMerge[T any](existing, z []Entry[T], inMask func(IndexType) bool, replace bool) []Entry[T] {
	out := make([]Entry[T], 0, len(z))
	i, j := 0, 0
	for i < len(existing) || j < len(z) {
		var idx IndexType
		switch {
		case i >= len(existing):
			idx = z[j].Index
		case j >= len(z):
			idx = existing[i].Index
		case existing[i].Index < z[j].Index:
			idx = existing[i].Index
		default:
			idx = z[j].Index
		}

		inExisting := i < len(existing) && existing[i].Index == idx
		inZ := j < len(z) && z[j].Index == idx

		if inMask(idx) {
			if inZ {
				out = append(out, z[j])
			}
			// in mask but absent from z: cleared, emit nothing.
		} else if !replace && inExisting {
			out = append(out, existing[i])
		}
		// not in mask and replace=true: cleared, emit nothing.
		// not in mask, replace=false, not in existing: nothing to carry.

		if inExisting {
			i++
		}
		if inZ {
			j++
		}
	}
	return out
}

// writeVector runs the full three-stage write-back pipeline against a
// destination Vector: accumulate computed against the vector's current
// contents, then merge into the vector under mask/replace. Every kernel
// that produces a Vector result (Mxv, Vxm, EWiseAdd, EWiseMult, Extract,
// Assign, Apply, ReduceMatrixToVector) funnels its computed intermediate through this one routine.
func writeVector[T any](dst *Vector[T], computed []Entry[T], accum accumulator[T], mask VectorMask, replace bool) {
	existing := dst.GetContents()
	z := ewiseOrOptAccum(existing, computed, accum)
	final := maskedMerge(existing, z, mask.vecIsSet, replace)
	dst.setContents(final)
}

// writeMatrixRow is the 2-D equivalent of writeVector, applied
// independently to a single row of a destination Matrix. Kernels that
// produce a Matrix result (Mxm, EWiseAddMatrix, EWiseMultMatrix,
// ApplyMatrix, TransposeInto) call this once per row.
func writeMatrixRow[T any](dst *Matrix[T], row IndexType, computed []Entry[T], accum accumulator[T], mask MatrixMask, replace bool) {
	existing := dst.GetRow(row)
	existingCopy := make([]Entry[T], len(existing))
	copy(existingCopy, existing)
	z := ewiseOrOptAccum(existingCopy, computed, accum)
	inMask := func(j IndexType) bool { return mask.matIsSet(row, j) }
	final := maskedMerge(existingCopy, z, inMask, replace)
	dst.setRow(row, final)
}
