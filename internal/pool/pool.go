// Package pool provides workspace reuse for the scratch buffers used by
// Mxm's row-by-row Gustavson accumulation, adapted from
// github.com/james-bowman/sparse's pool.go (getFloats/putFloats,
// getInts/putInts backed by sync.Pool). The teacher pools fixed float64/int
// slices; this repo's containers are generic over T, so the value pool is
// keyed by reflect.Type to offer the same reuse across every instantiation.
package pool

import (
	"reflect"
	"sync"
)

const defaultCap = 64

var (
	intPool = sync.Pool{
		New: func() any { return make([]int, 0, defaultCap) },
	}
	valuePools sync.Map // reflect.Type -> *sync.Pool
)

// GetInts returns an []int of length n, reused from the pool when
// possible. The returned slice's contents are unspecified; callers must
// overwrite every element they read.
func GetInts(n int) []int {
	s := intPool.Get().([]int)
	if cap(s) < n {
		return make([]int, n)
	}
	return s[:n]
}

// PutInts returns s to the pool. Callers must not retain references into s
// after calling PutInts.
func PutInts(s []int) {
	intPool.Put(s[:0]) //nolint:staticcheck // zero-length reuse is intentional
}

func valuePoolFor[T any]() *sync.Pool {
	var zero T
	key := reflect.TypeOf(zero)
	if p, ok := valuePools.Load(key); ok {
		return p.(*sync.Pool)
	}
	p := &sync.Pool{New: func() any { return make([]T, 0, defaultCap) }}
	actual, _ := valuePools.LoadOrStore(key, p)
	return actual.(*sync.Pool)
}

// GetValues returns a []T of length n, reused from the type-specific pool
// when possible.
func GetValues[T any](n int) []T {
	p := valuePoolFor[T]()
	s := p.Get().([]T)
	if cap(s) < n {
		return make([]T, n)
	}
	return s[:n]
}

// PutValues returns s to its type-specific pool.
func PutValues[T any](s []T) {
	p := valuePoolFor[T]()
	p.Put(s[:0])
}
