// Package arraykit is a small, dependency-light kernel for working with
// fixed-length integer sequences: aggregates, search and structural edits.
//
// 🚀 What is inside?
//
//	sequence/     the kernel: Max, Min, Sum, Average, Contains,
//	              SortedIndexOf, BinarySearch, ReverseInPlace,
//	              Concatenate, InsertAt, RemoveAt and copy/fill helpers
//	cmd/seqdemo/  command-line walkthrough that runs every operation
//	              on one input and prints the results
//
// ✨ Guarantees:
//
//   - Plain []int32 in, plain values out; no formatting or I/O in the kernel
//   - Typed sentinel errors (errors.Is) instead of silent fallbacks
//   - New sequences never alias caller storage; in-place edits say so
//
// Quick example:
//
//	nums := []int32{10, 5, 8, 3, 9, 1, 7}
//	idx := sequence.SortedIndexOf(sequence.Clone(nums), 8) // 4
//
//	go get github.com/katalvlaran/arraykit/sequence
package arraykit
