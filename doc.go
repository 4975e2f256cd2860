/*
Package graphblas provides a sparse linear-algebra engine implementing the
core of the GraphBLAS mathematical framework: graph algorithms expressed as
operations over sparse matrices and vectors parameterized by a user-chosen
algebraic semiring.

The package centres on a family of masked, accumulated sparse primitives -
Mxv, Mxm, EWiseAdd, EWiseMult, Extract, Assign, Apply, Reduce and Transpose -
that evaluate sparse operands over a semiring, combine the result with an
optional accumulator, and commit it to a destination container under a mask
with either replace or merge semantics.

Sparse containers (Matrix and Vector) distinguish an implicit zero, dropped
on construction from a dense source, from explicitly stored zero-valued
entries, which remain part of the structural set. All primitives are
generic over the payload type T via the algebra supplied to them, so the
same kernels serve numeric semirings (ArithmeticSemiring, MinPlusSemiring)
and logical ones (LogicalSemiring) alike.

This package is single-threaded and synchronous: every call runs to
completion or returns an error before any part of its output is mutated.
*/
package graphblas
