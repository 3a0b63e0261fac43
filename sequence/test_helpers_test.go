// SPDX-License-Identifier: MIT
// Package sequence_test contains shared fixtures for the kernel tests.

package sequence_test

import (
	"math/rand"
	"testing"
)

// demoValues is the walkthrough sequence used across scenarios.
func demoValues() []int32 {
	return []int32{10, 5, 8, 3, 9, 1, 7}
}

// oneToFive returns a fresh [1 2 3 4 5].
func oneToFive() []int32 {
	return []int32{1, 2, 3, 4, 5}
}

// randomSeq returns n pseudo-random values in [-span, span] from a fixed seed,
// so failures reproduce.
func randomSeq(tb testing.TB, seed int64, n int, span int32) []int32 {
	tb.Helper()

	r := rand.New(rand.NewSource(seed))
	out := make([]int32, n)
	for i := range out {
		out[i] = r.Int31n(2*span+1) - span
	}

	return out
}
