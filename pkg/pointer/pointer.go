package pointer

// PtrWithZeroAsNil returns pointer to value v.
// But if v has zero value then PtrWithZeroAsNil returns nil.
func PtrWithZeroAsNil[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}
