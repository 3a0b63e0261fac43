// SPDX-License-Identifier: MIT
// Package: sequence
//
// Purpose:
//   - Structural edits: ReverseInPlace, Concatenate, InsertAt, RemoveAt.
//
// Allocation policy:
//   - ReverseInPlace rewrites the caller's buffer and allocates nothing.
//   - Every other edit allocates exactly one new slice of the contracted
//     length and never aliases its inputs.
//   - Out-of-range indices fail with ErrInvalidIndex; the input is never
//     returned as a silent fallback.

package sequence

// ReverseInPlace reverses buf in place and returns it.
//
// Implementation:
//   - Two pointers start at both ends and swap while moving inward.
//   - The loop runs while left < right, so the middle element of an
//     odd-length buffer is left alone.
//
// Complexity: O(n) time, O(1) space.
func ReverseInPlace(buf []int32) []int32 {
	for left, right := 0, len(buf)-1; left < right; left, right = left+1, right-1 {
		buf[left], buf[right] = buf[right], buf[left]
	}

	return buf
}

// Concatenate returns a new sequence holding a's elements followed by b's.
// len(result) == len(a)+len(b). Neither input is written, and the result
// shares no storage with them. Two empty inputs yield an empty, non-nil slice.
//
// Complexity: O(len(a)+len(b)) time and space.
func Concatenate(a, b []int32) []int32 {
	out := make([]int32, len(a)+len(b))
	copy(out, a)
	copy(out[len(a):], b)

	return out
}

// InsertAt returns a new sequence of length len(seq)+1 with element placed at
// index and the elements from index onward shifted one position right.
//
// Inputs:
//   - index in [0, len(seq)]; index == len(seq) appends.
//
// Errors:
//   - ErrInvalidIndex if index < 0 or index > len(seq). The result is nil.
//
// Complexity: O(n) time and space.
func InsertAt(seq []int32, index int, element int32) ([]int32, error) {
	if index < 0 || index > len(seq) {
		return nil, indexErrorf(opInsertAt, index, 0, len(seq))
	}

	out := make([]int32, len(seq)+1)
	copy(out, seq[:index])
	out[index] = element
	copy(out[index+1:], seq[index:])

	return out, nil
}

// RemoveAt returns a new sequence of length len(seq)-1 without the element at
// index; later elements shift one position left.
//
// Inputs:
//   - index in [0, len(seq)-1]. An empty seq has no valid index.
//
// Errors:
//   - ErrInvalidIndex if index is outside that range. The result is nil.
//
// Complexity: O(n) time and space.
func RemoveAt(seq []int32, index int) ([]int32, error) {
	if index < 0 || index >= len(seq) {
		return nil, indexErrorf(opRemoveAt, index, 0, len(seq)-1)
	}

	out := make([]int32, len(seq)-1)
	copy(out, seq[:index])
	copy(out[index:], seq[index+1:])

	return out, nil
}
