package collections

import "iter"

// Apply applies the applicator function to each item in the input slice.
func Apply[T, V any](items []T, applicator func(T) V) []V {
	result := make([]V, len(items))
	for i, item := range items {
		result[i] = applicator(item)
	}
	return result
}

// ApplySeq applies the applicator function to each item yielded by seq.
// The sequence is consumed once.
func ApplySeq[T, V any](seq iter.Seq[T], applicator func(T) V) []V {
	var result []V
	for item := range seq {
		result = append(result, applicator(item))
	}
	return result
}

// SetOf collects items into a membership set.
func SetOf[T comparable](items []T) map[T]struct{} {
	set := make(map[T]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
