// Package sequence is a small kernel of operations over fixed-length
// sequences of signed 32-bit integers.
//
// 🚀 What is in the box?
//
//   - Aggregates: Max, Min, Sum, Average
//   - Search: Contains (linear), SortedIndexOf (sort, then binary search),
//     BinarySearch over an already sorted view
//   - Structural edits: ReverseInPlace, Concatenate, InsertAt, RemoveAt
//   - Utilities: Clone, CopyOf, CopyOfRange, Fill, FillRange, Equal
//
// ✨ Ownership model:
//
//	A sequence is a plain []int32 owned by the caller. A nil slice is a
//	valid empty sequence. The package never keeps a reference past the
//	call that received it.
//
//	Read-only operations never write their input. Operations that return
//	a new sequence always allocate fresh storage of exactly the length
//	their contract states. In-place operations (ReverseInPlace,
//	SortInPlace, SortedIndexOf, Fill, FillRange) rewrite the buffer they
//	are given and return that same slice.
//
// ⚠️ SortedIndexOf sorts its input:
//
//	SortedIndexOf(buf, x) leaves buf sorted ascending. Callers that must
//	keep the original order pass Clone(buf). To make the side effect
//	explicit, call SortInPlace and BinarySearch separately.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/arraykit/sequence"
//
//	nums := []int32{10, 5, 8, 3, 9, 1, 7}
//	hi, err := sequence.Max(nums)          // 10, nil
//	total := sequence.Sum(nums)            // 43
//	out, err := sequence.InsertAt(nums, 2, 99)
//
// Errors:
//
//	All failures are sentinel errors (ErrEmptyInput, ErrInvalidIndex,
//	ErrInvalidRange, ErrNegativeLength) wrapped with the operation name;
//	match them with errors.Is. Nothing in this package panics on caller
//	input.
//
// Concurrency:
//
//	Functions hold no shared state. Concurrent calls that share a mutable
//	buffer must be synchronized by the caller.
package sequence
