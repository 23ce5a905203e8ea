package utils

import "strings"

func JoinWithDelimiter(values []string, delimiter string) string {
	return strings.Join(values, delimiter)
}

// MakeRange lists the integers from start through end inclusive. An empty
// range (end < start) yields an empty slice.
func MakeRange(start, end int) []int {
	if end < start {
		return []int{}
	}
	result := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		result = append(result, i)
	}
	return result
}

// AppendUnique adds v to list unless it is already present.
func AppendUnique[T comparable](list []T, v T) []T {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}

// Remove drops every occurrence of v from list, preserving order.
func Remove[T comparable](list []T, v T) []T {
	out := list[:0]
	for _, existing := range list {
		if existing != v {
			out = append(out, existing)
		}
	}
	return out
}
