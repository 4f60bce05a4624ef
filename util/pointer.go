package util

// Ptr returns a pointer to v. Handy for inline option defaults.
func Ptr[T any](v T) *T {
	return &v
}
