// SPDX-License-Identifier: MIT
// Package: sequence
//
// Purpose:
//   - Summarize a sequence to a single scalar: Max, Min, Sum, Average.
//
// Determinism & Performance:
//   - One left-to-right pass per call, no allocations.
//   - Inputs are never written.

package sequence

// Max returns the greatest element of seq.
//
// The running maximum is seeded from seq[0] rather than from a sentinel,
// so sequences made entirely of math.MinInt32 are handled correctly.
//
// Errors:
//   - ErrEmptyInput if len(seq) == 0.
//
// Complexity: O(n) time, O(1) space.
func Max(seq []int32) (int32, error) {
	if len(seq) == 0 {
		return 0, seqErrorf(opMax, ErrEmptyInput)
	}

	best := seq[0]
	for _, v := range seq[1:] {
		if v > best {
			best = v
		}
	}

	return best, nil
}

// Min returns the smallest element of seq.
//
// Errors:
//   - ErrEmptyInput if len(seq) == 0.
//
// Complexity: O(n) time, O(1) space.
func Min(seq []int32) (int32, error) {
	if len(seq) == 0 {
		return 0, seqErrorf(opMin, ErrEmptyInput)
	}

	best := seq[0]
	for _, v := range seq[1:] {
		if v < best {
			best = v
		}
	}

	return best, nil
}

// Sum returns the total of all elements; 0 for an empty sequence.
// The accumulator is int64, wide enough for any int32 slice with fewer
// than 2^32 elements.
func Sum(seq []int32) int64 {
	var total int64
	for _, v := range seq {
		total += int64(v)
	}

	return total
}

// Average returns Sum(seq) / len(seq) using exact floating division.
// The result is never truncated toward zero: Average([1, 2]) == 1.5.
//
// Errors:
//   - ErrEmptyInput if len(seq) == 0.
func Average(seq []int32) (float64, error) {
	if len(seq) == 0 {
		return 0, seqErrorf(opAverage, ErrEmptyInput)
	}

	return float64(Sum(seq)) / float64(len(seq)), nil
}
