package graphblas

// intersectMerge implements the element-wise multiply merge rule: produce
// an entry only at indices present in both a and b, applying op to the
// matched pair. a and b must be sorted ascending by Index.
func intersectMerge[D1, D2, D3 any](a []Entry[D1], b []Entry[D2], op func(D1, D2) D3) []Entry[D3] {
	var out []Entry[D3]
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Index < b[j].Index:
			i++
		case a[i].Index > b[j].Index:
			j++
		default:
			out = append(out, Entry[D3]{Index: a[i].Index, Value: op(a[i].Value, b[j].Value)})
			i++
			j++
		}
	}
	return out
}

// unionMerge implements the element-wise add merge rule: produce an entry
// at every index present in either a or b; where present in both, apply op
// to the pair; where present in only one, carry that side's value through
// unchanged. a and b must be sorted ascending by Index.
func unionMerge[T any](a, b []Entry[T], op func(T, T) T) []Entry[T] {
	out := make([]Entry[T], 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Index < b[j].Index:
			out = append(out, a[i])
			i++
		case a[i].Index > b[j].Index:
			out = append(out, b[j])
			j++
		default:
			out = append(out, Entry[T]{Index: a[i].Index, Value: op(a[i].Value, b[j].Value)})
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// EWiseMult computes w := accum(w, op(u, v)) under mask/replace, where op
// is evaluated only at indices stored in both u and v (set intersection).
// op may be a plain BinaryOp or the lifted multiply of a semiring (see
// MultiplyOp).
func EWiseMult[D1, D2, D3 any](
	w *Vector[D3],
	mask VectorMask,
	accum accumulator[D3],
	op BinaryOp[D1, D2, D3],
	u *Vector[D1],
	v *Vector[D2],
	replace bool,
) error {
	if err := checkVectorSize("EWiseMult", "u", u.Size(), "v", v.Size()); err != nil {
		return err
	}
	if err := checkVectorSize("EWiseMult", "w", w.Size(), "u", u.Size()); err != nil {
		return err
	}
	if err := checkVectorMaskSize("EWiseMult", mask, w.Size()); err != nil {
		return err
	}
	computed := intersectMerge(u.GetContents(), v.GetContents(), op.Eval)
	writeVector(w, computed, accum, mask, replace)
	return nil
}

// EWiseAdd computes w := accum(w, op(u, v)) under mask/replace, where op is
// evaluated at indices stored in either u or v (set union): at indices
// stored in both, w's intermediate is op(u[i], v[i]); at indices stored in
// only one, that side's value carries through unchanged.
func EWiseAdd[T any](
	w *Vector[T],
	mask VectorMask,
	accum accumulator[T],
	op BinaryOp[T, T, T],
	u *Vector[T],
	v *Vector[T],
	replace bool,
) error {
	if err := checkVectorSize("EWiseAdd", "u", u.Size(), "v", v.Size()); err != nil {
		return err
	}
	if err := checkVectorSize("EWiseAdd", "w", w.Size(), "u", u.Size()); err != nil {
		return err
	}
	if err := checkVectorMaskSize("EWiseAdd", mask, w.Size()); err != nil {
		return err
	}
	computed := unionMerge(u.GetContents(), v.GetContents(), op.Eval)
	writeVector(w, computed, accum, mask, replace)
	return nil
}
