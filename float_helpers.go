package graphblas

import "math"

var (
	positiveInfFloat64 = math.Inf(1)
	negativeInfFloat64 = math.Inf(-1)
)
