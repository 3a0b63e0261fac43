// SPDX-License-Identifier: MIT
// Package: sequence
//
// Purpose:
//   - Membership and index lookup: Contains (linear scan), BinarySearch
//     (pure, requires sorted input), SortedIndexOf (sorts, then searches).
//   - SortInPlace and IsSorted for callers who split the sort from the lookup.
//
// Note:
//   - SortedIndexOf MUTATES its argument. See its doc comment.

package sequence

import "slices"

// notFound is returned by the index lookups when target is absent.
const notFound = -1

// Contains reports whether target occurs anywhere in seq.
// Single linear scan; no ordering requirement; seq is not written.
//
// Complexity: O(n) time, O(1) space.
func Contains(seq []int32, target int32) bool {
	for _, v := range seq {
		if v == target {
			return true
		}
	}

	return false
}

// BinarySearch returns the index of an element equal to target in sorted,
// or -1 if there is none. sorted must be in ascending order; on unsorted
// input the result is unspecified. sorted is not written.
//
// Implementation:
//   - low=0, high=len-1; loop while low <= high.
//   - mid = low + (high-low)/2 (no overflow on large lengths).
//   - Narrow to the half that can still contain target.
//
// Behavior highlights:
//   - With duplicates, the index returned is the first mid the probe lands
//     on, which is not necessarily the first occurrence.
//
// Complexity: O(log n) time, O(1) space.
func BinarySearch(sorted []int32, target int32) int {
	low, high := 0, len(sorted)-1
	for low <= high {
		mid := low + (high-low)/2
		switch v := sorted[mid]; {
		case v == target:
			return mid
		case v < target:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return notFound
}

// SortInPlace sorts buf ascending in place and returns buf.
//
// Complexity: O(n log n) time.
func SortInPlace(buf []int32) []int32 {
	slices.Sort(buf)

	return buf
}

// IsSorted reports whether seq is in non-decreasing order.
// Empty and single-element sequences are sorted.
func IsSorted(seq []int32) bool {
	return slices.IsSorted(seq)
}

// SortedIndexOf SORTS buf IN PLACE (ascending) and then returns the index of
// an element equal to target in the now-sorted buf, or -1 if absent.
//
// ⚠️ Side effect: after the call the caller's buf is sorted. Callers that need
// the original order must pass a copy:
//
//	idx := sequence.SortedIndexOf(sequence.Clone(nums), 8)
//
// The returned index refers to the sorted order, not to the position target
// had before the call. Equivalent to:
//
//	sequence.BinarySearch(sequence.SortInPlace(buf), target)
//
// Complexity: O(n log n) time for the sort plus O(log n) for the search.
func SortedIndexOf(buf []int32, target int32) int {
	return BinarySearch(SortInPlace(buf), target)
}
