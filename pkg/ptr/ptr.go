// Package ptr provides helpers for taking pointers to values.
package ptr

// Ptr returns a pointer to the given value
func Ptr[T any](v T) *T {
	return &v
}
