package vaultsfyi

// Ptr returns a pointer to v, for filling optional parameter fields
// inline the way the documented examples do.
func Ptr[T any](v T) *T {
	return &v
}
