package graphblas

import "fmt"

// checkVectorSize reports a DimensionError if a and b (two vector lengths)
// differ, naming op and the two operand roles in the message.
func checkVectorSize(op string, aName string, a IndexType, bName string, b IndexType) error {
	if a != b {
		return &DimensionError{
			Op:   op,
			Want: fmt.Sprintf("size(%s) == size(%s)", aName, bName),
			Got:  fmt.Sprintf("size(%s)=%d, size(%s)=%d", aName, a, bName, b),
		}
	}
	return nil
}

// checkVectorSizeNrows reports a DimensionError if a vector's length does
// not equal a matrix's row count.
func checkVectorSizeNrows(op string, vName string, v IndexType, mName string, rows IndexType) error {
	if v != rows {
		return &DimensionError{
			Op:   op,
			Want: fmt.Sprintf("size(%s) == nrows(%s)", vName, mName),
			Got:  fmt.Sprintf("size(%s)=%d, nrows(%s)=%d", vName, v, mName, rows),
		}
	}
	return nil
}

// checkVectorSizeNcols reports a DimensionError if a vector's length does
// not equal a matrix's column count.
func checkVectorSizeNcols(op string, vName string, v IndexType, mName string, cols IndexType) error {
	if v != cols {
		return &DimensionError{
			Op:   op,
			Want: fmt.Sprintf("size(%s) == ncols(%s)", vName, mName),
			Got:  fmt.Sprintf("size(%s)=%d, ncols(%s)=%d", vName, v, mName, cols),
		}
	}
	return nil
}

// checkMatrixShape reports a DimensionError if (aRows, aCols) != (bRows, bCols).
func checkMatrixShape(op string, aName string, aRows, aCols IndexType, bName string, bRows, bCols IndexType) error {
	if aRows != bRows || aCols != bCols {
		return &DimensionError{
			Op:   op,
			Want: fmt.Sprintf("shape(%s) == shape(%s)", aName, bName),
			Got:  fmt.Sprintf("%s=%dx%d, %s=%dx%d", aName, aRows, aCols, bName, bRows, bCols),
		}
	}
	return nil
}

// checkVectorMaskSize reports a DimensionError if mask carries an explicit
// size (i.e. is not NoMask or a complement of NoMask) that disagrees with
// size. NoMask reports no size and is therefore exempt - it is valid
// against any length.
func checkVectorMaskSize(op string, mask VectorMask, size IndexType) error {
	sz, ok := mask.size()
	if !ok || sz == size {
		return nil
	}
	return &DimensionError{
		Op:   op,
		Want: fmt.Sprintf("size(mask) == %d", size),
		Got:  fmt.Sprintf("size(mask)=%d", sz),
	}
}

// checkMatrixMaskShape is the 2-D equivalent of checkVectorMaskSize.
func checkMatrixMaskShape(op string, mask MatrixMask, rows, cols IndexType) error {
	r, c, ok := mask.shape()
	if !ok || (r == rows && c == cols) {
		return nil
	}
	return &DimensionError{
		Op:   op,
		Want: fmt.Sprintf("shape(mask) == %dx%d", rows, cols),
		Got:  fmt.Sprintf("shape(mask)=%dx%d", r, c),
	}
}
