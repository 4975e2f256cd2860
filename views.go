package graphblas

// MatrixLike is the read API shared by Matrix and TransposeView, letting
// every kernel accept either an owning container or a non-materializing
// view wherever a matrix operand is expected.
type MatrixLike[T any] interface {
	Nrows() IndexType
	Ncols() IndexType
	GetRow(r IndexType) []Entry[T]
}

var _ MatrixLike[float64] = (*Matrix[float64])(nil)

// TransposeView presents the transpose of any MatrixLike subject without
// materializing it: GetRow(r) reports column r of the subject. It borrows
// its subject and allocates only the small per-call result slice: finding
// column r requires scanning every row of the subject, since the
// canonical representation is row-compressed and keeps no column index.
// Wrapping a TransposeView in another TransposeView is well-defined and
// observationally equal to the original subject (transpose is an
// involution), it simply costs an extra layer of row scans.
type TransposeView[T any] struct {
	subject MatrixLike[T]
}

// Transpose returns a read-only view of m with rows and columns swapped.
// It does not copy or mutate m.
func Transpose[T any](m MatrixLike[T]) *TransposeView[T] {
	return &TransposeView[T]{subject: m}
}

// Nrows returns the subject's column count.
func (t *TransposeView[T]) Nrows() IndexType { return t.subject.Ncols() }

// Ncols returns the subject's row count.
func (t *TransposeView[T]) Ncols() IndexType { return t.subject.Nrows() }

// GetRow returns column r of the subject as an ascending-index entry list.
func (t *TransposeView[T]) GetRow(r IndexType) []Entry[T] {
	var out []Entry[T]
	for i := IndexType(0); i < t.subject.Nrows(); i++ {
		row := t.subject.GetRow(i)
		if pos, found := searchRow(row, r); found {
			out = append(out, Entry[T]{Index: i, Value: row[pos].Value})
		}
	}
	return out
}

var _ MatrixLike[float64] = (*TransposeView[float64])(nil)

// aliasResolver lets a view unwrap itself down to its ultimate subject
// without either side needing to agree on a type parameter - resolveAlias
// returns the subject boxed as any, so matrixAliasesDestination can keep
// unwrapping through a chain of views regardless of what T each layer was
// instantiated with.
type aliasResolver interface {
	resolveAlias() any
}

func (t *TransposeView[T]) resolveAlias() any { return t.subject }

// matrixAliasesDestination reports whether subject, once unwrapped through
// any chain of views down to a concrete *Matrix, is the same object as
// dst. Both arguments should be passed already boxed via any(...). This is
// the "view never aliases its subject for writes" precondition: a
// write-back kernel that re-reads its source matrix row by row as it
// writes its destination row by row can observe its own half-finished
// output if the two are the same object.
func matrixAliasesDestination(subject, dst any) bool {
	for {
		if r, ok := subject.(aliasResolver); ok {
			subject = r.resolveAlias()
			continue
		}
		return subject == dst
	}
}

// truthy implements the mask interpretation rule shared by every masked
// primitive: the zero value of a stored type is "false", anything else is
// "true". An absent position is never truthy - callers check presence
// before calling truthy.
func truthy[T comparable](v T) bool {
	var zero T
	return v != zero
}

// VectorMask is satisfied by anything that can answer "is position i
// selected for a write" for a Vector-shaped primitive: NoMask, a Vector
// wrapped with VecMask, or a ComplementView of either. size reports the
// mask's own length and whether it carries one at all - NoMask and a
// complement of NoMask report ok=false, since they are valid against any
// output length, while a wrapped Vector always reports its own Size().
// Primitives check this against the output's size before doing any work,
// mirroring the Boundaries requirement that a mismatched mask size fails
// with DimensionError before the destination is touched.
type VectorMask interface {
	vecIsSet(i IndexType) bool
	size() (n IndexType, ok bool)
}

// MatrixMask is the 2-D equivalent of VectorMask.
type MatrixMask interface {
	matIsSet(i, j IndexType) bool
	shape() (rows, cols IndexType, ok bool)
}

// noMaskType is the universal mask: every position is selected.
type noMaskType struct{}

func (noMaskType) vecIsSet(IndexType) bool            { return true }
func (noMaskType) matIsSet(IndexType, IndexType) bool { return true }
func (noMaskType) size() (IndexType, bool)            { return 0, false }
func (noMaskType) shape() (IndexType, IndexType, bool) { return 0, 0, false }

// NoMask is the universal mask: it permits writes to every position. It
// satisfies both VectorMask and MatrixMask.
func NoMask() noMaskType { return noMaskType{} }

// vectorMaskAdapter adapts a Vector into a VectorMask, applying the
// stored-zero-is-false interpretation rule via truthy.
type vectorMaskAdapter[M comparable] struct {
	v *Vector[M]
}

func (a vectorMaskAdapter[M]) vecIsSet(i IndexType) bool {
	val, err := a.v.ExtractElement(i)
	if err != nil {
		return false
	}
	return truthy(val)
}

func (a vectorMaskAdapter[M]) size() (IndexType, bool) { return a.v.Size(), true }

// VecMask wraps a Vector for use in the mask slot of a vector primitive.
func VecMask[M comparable](v *Vector[M]) VectorMask {
	return vectorMaskAdapter[M]{v: v}
}

// matrixMaskAdapter is the 2-D equivalent of vectorMaskAdapter.
type matrixMaskAdapter[M comparable] struct {
	m *Matrix[M]
}

func (a matrixMaskAdapter[M]) matIsSet(i, j IndexType) bool {
	val, err := a.m.ExtractElement(i, j)
	if err != nil {
		return false
	}
	return truthy(val)
}

func (a matrixMaskAdapter[M]) shape() (IndexType, IndexType, bool) {
	return a.m.Nrows(), a.m.Ncols(), true
}

// MatMask wraps a Matrix for use in the mask slot of a matrix primitive.
func MatMask[M comparable](m *Matrix[M]) MatrixMask {
	return matrixMaskAdapter[M]{m: m}
}

// complementVectorMask inverts the structural-plus-value presence of its
// subject: a position is "in mask" here iff it is NOT in mask for the
// subject.
type complementVectorMask struct {
	subject VectorMask
}

func (c complementVectorMask) vecIsSet(i IndexType) bool {
	return !c.subject.vecIsSet(i)
}

func (c complementVectorMask) size() (IndexType, bool) { return c.subject.size() }

// Complement returns the structural inversion of a VectorMask. Applying
// Complement twice is observationally equal to the original mask.
func Complement(m VectorMask) VectorMask {
	return complementVectorMask{subject: m}
}

// complementMatrixMask is the 2-D equivalent of complementVectorMask.
type complementMatrixMask struct {
	subject MatrixMask
}

func (c complementMatrixMask) matIsSet(i, j IndexType) bool {
	return !c.subject.matIsSet(i, j)
}

func (c complementMatrixMask) shape() (IndexType, IndexType, bool) { return c.subject.shape() }

// ComplementMatrix returns the structural inversion of a MatrixMask.
func ComplementMatrix(m MatrixMask) MatrixMask {
	return complementMatrixMask{subject: m}
}
