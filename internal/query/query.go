// Package query provides ordering, filtering, and pagination over
// event and projection collections. All operations are pure: they
// take explicit parameters and return fresh slices, replacing the
// ambient filter/sort/page state the views used to hold.
package query

import (
	"cmp"
	"slices"
	"sort"
)

// Direction orders a sort.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// SortBy returns a stably sorted copy of items ordered by key.
// Equal keys preserve their original relative order.
func SortBy[T any, K cmp.Ordered](items []T, key func(T) K, dir Direction) []T {
	out := slices.Clone(items)
	sort.SliceStable(out, func(i, j int) bool {
		if dir == Desc {
			return key(out[j]) < key(out[i])
		}
		return key(out[i]) < key(out[j])
	})
	return out
}

// Filter returns the elements satisfying every predicate, in input
// order. No predicates means a copy of the input.
func Filter[T any](items []T, predicates ...func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		keep := true
		for _, p := range predicates {
			if !p(item) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, item)
		}
	}
	return out
}

// Page slices out one page using a 1-based page number and fixed
// size. Pages beyond the data yield an empty slice, not an error.
func Page[T any](items []T, page, size int) []T {
	if page < 1 || size <= 0 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := min(start+size, len(items))
	return items[start:end]
}

// TopN truncates a sorted slice to its first n elements.
func TopN[T any](items []T, n int) []T {
	if n <= 0 || n >= len(items) {
		return items
	}
	return items[:n]
}
