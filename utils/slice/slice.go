package sliceUtils

// RemoveDuplicates keeps the first occurrence of each element, preserving
// the original order.
func RemoveDuplicates[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	result := make([]T, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

// Intersection returns the elements of a that also appear in b, preserving
// a's order.
func Intersection[T comparable](a, b []T) []T {
	inB := make(map[T]struct{}, len(b))
	for _, v := range b {
		inB[v] = struct{}{}
	}

	var result []T
	for _, v := range a {
		if _, ok := inB[v]; ok {
			result = append(result, v)
		}
	}
	return result
}
