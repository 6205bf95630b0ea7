package utils

// FindIndex returns the position of the first item in slice, or -1.
func FindIndex[S ~[]T, T comparable](slice S, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}
