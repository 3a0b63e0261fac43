// SPDX-License-Identifier: MIT
// Package sequence: sentinel error set.
// Every operation returns one of these sentinels, wrapped with the operation
// name via seqErrorf, and tests check them via errors.Is.

package sequence

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sequence: ..." so wrapped errors read
// "InsertAt: sequence: index out of range: index 7 outside [0, 5]".

var (
	// ErrEmptyInput is returned by Max, Min and Average when the input has no elements.
	ErrEmptyInput = errors.New("sequence: input sequence is empty")

	// ErrInvalidIndex indicates an index outside the valid range of the operation,
	// e.g. InsertAt outside [0, len] or RemoveAt outside [0, len-1].
	ErrInvalidIndex = errors.New("sequence: index out of range")

	// ErrInvalidRange indicates a half-open range [from, to) with from > to.
	ErrInvalidRange = errors.New("sequence: range start after range end")

	// ErrNegativeLength indicates a negative target length for CopyOf.
	ErrNegativeLength = errors.New("sequence: negative length")
)

// Operation name constants for unified error wrapping.
const (
	opMax         = "Max"
	opMin         = "Min"
	opAverage     = "Average"
	opInsertAt    = "InsertAt"
	opRemoveAt    = "RemoveAt"
	opCopyOf      = "CopyOf"
	opCopyOfRange = "CopyOfRange"
	opFillRange   = "FillRange"
)

// seqErrorf wraps err with the operation tag.
func seqErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// indexErrorf wraps ErrInvalidIndex with the operation tag and the
// offending index against the inclusive bounds [lo, hi].
func indexErrorf(op string, index, lo, hi int) error {
	return fmt.Errorf("%s: %w: index %d outside [%d, %d]", op, ErrInvalidIndex, index, lo, hi)
}

// rangeErrorf wraps ErrInvalidRange with the operation tag and the range.
func rangeErrorf(op string, from, to int) error {
	return fmt.Errorf("%s: %w: from=%d to=%d", op, ErrInvalidRange, from, to)
}
