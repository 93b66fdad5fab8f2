package pure_utils

// Without returns a new slice with every occurrence of item removed. The input
// slice is left untouched.
func Without[T comparable](src []T, item T) []T {
	out := make([]T, 0, len(src))
	for _, value := range src {
		if value != item {
			out = append(out, value)
		}
	}
	return out
}
