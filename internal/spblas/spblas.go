// Package spblas provides the low-level gather/scatter/axpy/dot loops
// shared by the graphblas kernels, adapted from
// github.com/james-bowman/sparse's blas subpackage (Dusga/Dusgz/Dussc,
// Dusmv, Dusdot, Dusaxpy). Where the original hardwired float64 + and *,
// these operate over caller-supplied add/mul functions so a single set of
// loops serves every semiring.
package spblas

// Dot computes the sparse dot product of two ascending, unique-index
// (index, value) lists restricted to their index intersection, using mul
// to combine a matched pair and add/addIdentity as the fold. It reports
// whether the intersection was non-empty: per the mxv/mxm contract, an
// empty intersection must emit no result entry at all, not an entry
// holding the additive identity.
func Dot[D1, D2, D3 any](
	aIdx []uint, aVal []D1,
	bIdx []uint, bVal []D2,
	mul func(D1, D2) D3,
	add func(D3, D3) D3,
	addIdentity D3,
) (result D3, nonEmpty bool) {
	result = addIdentity
	i, j := 0, 0
	for i < len(aIdx) && j < len(bIdx) {
		switch {
		case aIdx[i] < bIdx[j]:
			i++
		case aIdx[i] > bIdx[j]:
			j++
		default:
			result = add(result, mul(aVal[i], bVal[j]))
			nonEmpty = true
			i++
			j++
		}
	}
	return result, nonEmpty
}

// Gather copies the elements of a dense slice y at the positions named by
// idx into a freshly-sized slice x, x[k] = y[idx[k]].
func Gather[T any](y []T, idx []uint) []T {
	x := make([]T, len(idx))
	for k, index := range idx {
		x[k] = y[index]
	}
	return x
}

// Scatter writes the sparse (idx, val) pairs into the dense slice y,
// y[idx[k]] = val[k]. y must already be sized to accommodate the largest
// index in idx.
func Scatter[T any](idx []uint, val []T, y []T) {
	for k, index := range idx {
		y[index] = val[k]
	}
}

// Axpy computes y[idx[k]] = add(y[idx[k]], mul(alpha, val[k])) for each
// sparse element, the scaled accumulate used by Gustavson's algorithm when
// scattering a row of B into a dense accumulator row while computing Mxm.
func Axpy[D1, D2, D3 any](alpha D1, idx []uint, val []D2, y []D3, mul func(D1, D2) D3, add func(D3, D3) D3) {
	for k, index := range idx {
		y[index] = add(y[index], mul(alpha, val[k]))
	}
}
