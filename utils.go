package synco

import "reflect"

// growTo extends s to at least n elements, reallocating with doubled capacity
// when needed. Elements past the old length are zero values.
func growTo[T any](s []T, n int) []T {
	if len(s) >= n {
		return s
	}
	if cap(s) >= n {
		ext := s[len(s):n]
		clear(ext)
		return s[:n]
	}
	ns := make([]T, n, max(2*cap(s), n))
	copy(ns, s)
	return ns
}

// typeName returns a readable name for T, used in panic messages and logs.
func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
