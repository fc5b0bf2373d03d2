package functools

// MapIndexedWithError transforms elements with an error-returning function
// that also receives the element's 0-based index. The first error stops the
// iteration and is returned unchanged, so callers keep their error types.
func MapIndexedWithError[T any, R any](slice []T, fn func(int, T) (R, error)) ([]R, error) {
	result := make([]R, 0, len(slice))
	for i, v := range slice {
		r, err := fn(i, v)
		if err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, nil
}

// Map - pure transformation, no errors
func Map[T any, R any](slice []T, fn func(T) R) []R {
	if slice == nil {
		return nil
	}
	result := make([]R, len(slice))
	for i, v := range slice {
		result[i] = fn(v)
	}
	return result
}

// Filter - predicate testing, no errors. Relative order is preserved.
func Filter[T any](slice []T, predicate func(T) bool) []T {
	result := make([]T, 0, len(slice))
	for _, v := range slice {
		if predicate(v) {
			result = append(result, v)
		}
	}
	return result
}

// Reduce - accumulation, no errors
func Reduce[T any, R any](slice []T, initialValue R, fn func(R, T) R) R {
	result := initialValue
	for _, v := range slice {
		result = fn(result, v)
	}
	return result
}
