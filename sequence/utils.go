// SPDX-License-Identifier: MIT
// Package: sequence
//
// Purpose:
//   - Shared sequence utilities: copies (Clone, CopyOf, CopyOfRange),
//     bulk writes (Fill, FillRange) and comparison (Equal).
//
// Note:
//   - Copies always allocate; Fill/FillRange write the caller's buffer.
//   - Range arguments are half-open: [from, to).

package sequence

import "slices"

// Clone returns an independent copy of seq. A nil seq yields an empty,
// non-nil slice so the result is always safe to hand to in-place operations.
func Clone(seq []int32) []int32 {
	out := make([]int32, len(seq))
	copy(out, seq)

	return out
}

// CopyOf returns a copy of seq with length newLen: truncated when newLen is
// shorter than seq, zero-padded when it is longer.
//
// Errors:
//   - ErrNegativeLength if newLen < 0.
func CopyOf(seq []int32, newLen int) ([]int32, error) {
	if newLen < 0 {
		return nil, seqErrorf(opCopyOf, ErrNegativeLength)
	}

	out := make([]int32, newLen)
	copy(out, seq)

	return out, nil
}

// CopyOfRange returns a copy of seq[from:to]. to may exceed len(seq); the
// positions past the end are zero. len(result) == to-from.
//
// Errors (checked in this order):
//   - ErrInvalidIndex if from < 0 or from > len(seq).
//   - ErrInvalidRange if from > to.
func CopyOfRange(seq []int32, from, to int) ([]int32, error) {
	if from < 0 || from > len(seq) {
		return nil, indexErrorf(opCopyOfRange, from, 0, len(seq))
	}
	if from > to {
		return nil, rangeErrorf(opCopyOfRange, from, to)
	}

	out := make([]int32, to-from)
	copy(out, seq[from:min(to, len(seq))])

	return out, nil
}

// Fill sets every element of buf to v in place and returns buf.
func Fill(buf []int32, v int32) []int32 {
	for i := range buf {
		buf[i] = v
	}

	return buf
}

// FillRange sets buf[from:to] to v in place and returns buf.
// An empty range (from == to) is a no-op.
//
// Errors (checked in this order):
//   - ErrInvalidRange if from > to.
//   - ErrInvalidIndex if from < 0 or to > len(buf).
func FillRange(buf []int32, from, to int, v int32) ([]int32, error) {
	if from > to {
		return nil, rangeErrorf(opFillRange, from, to)
	}
	if from < 0 {
		return nil, indexErrorf(opFillRange, from, 0, len(buf))
	}
	if to > len(buf) {
		return nil, indexErrorf(opFillRange, to, 0, len(buf))
	}

	Fill(buf[from:to], v)

	return buf, nil
}

// Equal reports whether a and b have the same length and the same elements
// in the same order. nil and empty sequences are equal.
func Equal(a, b []int32) bool {
	return slices.Equal(a, b)
}
