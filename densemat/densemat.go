// Package densemat adapts the float64 instantiations of graphblas's sparse
// containers to and from gonum's dense matrix/vector types, so results can
// be handed to the wider gonum ecosystem (plotting, further dense linear
// algebra, statistics) without graphblas itself depending on mat.Matrix's
// float64-only At/Set contract. Grounded on the teacher's ToDense()
// conversions (coordinate.go, dictionaryofkeys.go, compressed.go) and its
// use of gonum/floats for vector norms (vector.go, veccoordinate.go).
package densemat

import (
	"github.com/james-bowman/graphblas"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ToDense converts a sparse float64 Matrix into a gonum *mat.Dense. The
// returned matrix does not share storage with m.
func ToDense(m *graphblas.Matrix[float64]) *mat.Dense {
	dense := mat.NewDense(int(m.Nrows()), int(m.Ncols()), nil)
	for i := graphblas.IndexType(0); i < m.Nrows(); i++ {
		for _, e := range m.GetRow(i) {
			dense.Set(int(i), int(e.Index), e.Value)
		}
	}
	return dense
}

// FromDense converts a gonum *mat.Dense into a sparse float64 Matrix,
// dropping entries equal to implicitZero.
func FromDense(d *mat.Dense, implicitZero float64) *graphblas.Matrix[float64] {
	r, c := d.Dims()
	m := graphblas.NewMatrix[float64](graphblas.IndexType(r), graphblas.IndexType(c))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := d.At(i, j); v != implicitZero {
				_ = m.SetElement(graphblas.IndexType(i), graphblas.IndexType(j), v)
			}
		}
	}
	return m
}

// ToVecDense converts a sparse float64 Vector into a gonum *mat.VecDense.
func ToVecDense(v *graphblas.Vector[float64]) *mat.VecDense {
	dense := mat.NewVecDense(int(v.Size()), nil)
	for _, e := range v.GetContents() {
		dense.SetVec(int(e.Index), e.Value)
	}
	return dense
}

// FromVecDense converts a gonum *mat.VecDense into a sparse float64
// Vector, dropping entries equal to implicitZero.
func FromVecDense(d *mat.VecDense, implicitZero float64) *graphblas.Vector[float64] {
	n := d.Len()
	v := graphblas.NewVector[float64](graphblas.IndexType(n))
	for i := 0; i < n; i++ {
		if val := d.AtVec(i); val != implicitZero {
			_ = v.SetElement(graphblas.IndexType(i), val)
		}
	}
	return v
}

// EqualDense reports whether the dense rendering of a sparse float64
// Matrix equals d, via mat.Equal.
func EqualDense(m *graphblas.Matrix[float64], d mat.Matrix) bool {
	return mat.Equal(ToDense(m), d)
}

// EqualApproxVec reports whether v and d are pointwise equal within tol,
// via gonum/floats.EqualApprox.
func EqualApproxVec(v *graphblas.Vector[float64], d *mat.VecDense, tol float64) bool {
	a := denseVecSlice(ToVecDense(v))
	b := denseVecSlice(d)
	return floats.EqualApprox(a, b, tol)
}

func denseVecSlice(d *mat.VecDense) []float64 {
	n := d.Len()
	s := make([]float64, n)
	for i := 0; i < n; i++ {
		s[i] = d.AtVec(i)
	}
	return s
}

// NormFloat64 returns the L-norm of a sparse float64 Vector's stored
// values, via gonum/floats.Norm. Absent entries do not contribute, which
// matches the L2/L1 norm of the vector only when its implicit zero is the
// arithmetic zero.
func NormFloat64(v *graphblas.Vector[float64], l float64) float64 {
	_, vals := splitContents(v)
	return floats.Norm(vals, l)
}

// Describe summarizes the stored values of a sparse float64 Vector via
// gonum/stat, returning their unweighted mean and standard deviation. It
// ignores absent positions entirely - it describes the distribution of
// what is stored, not a dense reading of the vector.
func Describe(v *graphblas.Vector[float64]) (mean, stdDev float64) {
	_, vals := splitContents(v)
	mean = stat.Mean(vals, nil)
	stdDev = stat.StdDev(vals, nil)
	return mean, stdDev
}

func splitContents(v *graphblas.Vector[float64]) ([]graphblas.IndexType, []float64) {
	contents := v.GetContents()
	idx := make([]graphblas.IndexType, len(contents))
	vals := make([]float64, len(contents))
	for k, e := range contents {
		idx[k] = e.Index
		vals[k] = e.Value
	}
	return idx, vals
}
