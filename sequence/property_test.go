// SPDX-License-Identifier: MIT

package sequence_test

import (
	"slices"
	"testing"
	"testing/quick"

	"github.com/katalvlaran/arraykit/sequence"
)

// TestPropertyMinMaxBound checks Min(S) <= s <= Max(S) for every element.
func TestPropertyMinMaxBound(t *testing.T) {
	t.Parallel()

	prop := func(s []int32) bool {
		if len(s) == 0 {
			return true
		}
		hi, errHi := sequence.Max(s)
		lo, errLo := sequence.Min(s)
		if errHi != nil || errLo != nil {
			return false
		}
		for _, v := range s {
			if v < lo || v > hi {
				return false
			}
		}

		return true
	}
	if err := quick.Check(prop, nil); err != nil {
		t.Fatal(err)
	}
}

// TestPropertyReverseKeepsSum checks that reversal does not change the total.
func TestPropertyReverseKeepsSum(t *testing.T) {
	t.Parallel()

	prop := func(s []int32) bool {
		return sequence.Sum(s) == sequence.Sum(sequence.ReverseInPlace(sequence.Clone(s)))
	}
	if err := quick.Check(prop, nil); err != nil {
		t.Fatal(err)
	}
}

// TestPropertyReverseTwiceIdentity checks that reversing twice restores S.
func TestPropertyReverseTwiceIdentity(t *testing.T) {
	t.Parallel()

	prop := func(s []int32) bool {
		c := sequence.Clone(s)
		sequence.ReverseInPlace(sequence.ReverseInPlace(c))

		return sequence.Equal(s, c)
	}
	if err := quick.Check(prop, nil); err != nil {
		t.Fatal(err)
	}
}

// TestPropertyContainsBruteForce cross-checks Contains against a direct scan.
// The target is drawn from S half of the time so hits are exercised.
func TestPropertyContainsBruteForce(t *testing.T) {
	t.Parallel()

	prop := func(s []int32, x int32, pick uint8) bool {
		if len(s) > 0 && pick%2 == 0 {
			x = s[int(pick)%len(s)]
		}
		want := false
		for i := range s {
			if s[i] == x {
				want = true
			}
		}

		return sequence.Contains(s, x) == want
	}
	if err := quick.Check(prop, nil); err != nil {
		t.Fatal(err)
	}
}

// TestPropertySortedIndexOfRoundTrip checks that for every element e of S the
// returned index points at e in the sorted copy and the buffer ends sorted.
func TestPropertySortedIndexOfRoundTrip(t *testing.T) {
	t.Parallel()

	prop := func(s []int32) bool {
		want := slices.Clone(s)
		slices.Sort(want)

		for _, e := range s {
			buf := sequence.Clone(s)
			i := sequence.SortedIndexOf(buf, e)
			if i < 0 || i >= len(want) || want[i] != e {
				return false
			}
			if !sequence.Equal(buf, want) {
				return false
			}
		}

		return true
	}
	if err := quick.Check(prop, nil); err != nil {
		t.Fatal(err)
	}
}

// TestPropertyConcatenateLayout checks length, prefix and suffix.
func TestPropertyConcatenateLayout(t *testing.T) {
	t.Parallel()

	prop := func(a, b []int32) bool {
		c := sequence.Concatenate(a, b)

		return len(c) == len(a)+len(b) &&
			sequence.Equal(c[:len(a)], a) &&
			sequence.Equal(c[len(a):], b)
	}
	if err := quick.Check(prop, nil); err != nil {
		t.Fatal(err)
	}
}

// TestPropertyInsertRemoveRoundTrip checks RemoveAt(InsertAt(S, i, x), i) == S
// for every valid i.
func TestPropertyInsertRemoveRoundTrip(t *testing.T) {
	t.Parallel()

	prop := func(s []int32, x int32) bool {
		for i := 0; i <= len(s); i++ {
			ins, err := sequence.InsertAt(s, i, x)
			if err != nil || len(ins) != len(s)+1 || ins[i] != x {
				return false
			}
			back, err := sequence.RemoveAt(ins, i)
			if err != nil || !sequence.Equal(back, s) {
				return false
			}
		}

		return true
	}
	if err := quick.Check(prop, nil); err != nil {
		t.Fatal(err)
	}
}

// TestPropertyCopyOfRangeWhole checks that the full range copies S exactly.
func TestPropertyCopyOfRangeWhole(t *testing.T) {
	t.Parallel()

	prop := func(s []int32) bool {
		c, err := sequence.CopyOfRange(s, 0, len(s))

		return err == nil && sequence.Equal(c, s)
	}
	if err := quick.Check(prop, nil); err != nil {
		t.Fatal(err)
	}
}

// TestPropertyLargeRandom runs the sort-then-search law on longer seeded inputs
// than quick generates by default.
func TestPropertyLargeRandom(t *testing.T) {
	t.Parallel()

	s := randomSeq(t, 1337, 2048, 50)
	for _, e := range s[:64] {
		buf := sequence.Clone(s)
		i := sequence.SortedIndexOf(buf, e)
		if i < 0 || buf[i] != e || !sequence.IsSorted(buf) {
			t.Fatalf("SortedIndexOf(%d) = %d on %d elements", e, i, len(s))
		}
	}
}
