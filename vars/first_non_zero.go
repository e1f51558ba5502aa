package vars

// FirstNonZero returns the first value that is not the zero value of
// T, or the zero value when all are.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}
