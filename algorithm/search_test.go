package algorithm

import (
	"slices"
	"testing"

	"github.com/tychoish/fun/assert/check"
	"golang.org/x/exp/rand"
)

func TestMiddle(t *testing.T) {
	for n := 1; n <= 12; n++ {
		vals := make([]int64, n)
		for i := range vals {
			vals[i] = int64(i)
		}
		list := NewList(vals...)
		mid := list.Middle(list.Head(), End)
		if got, want := list.Value(mid), int64((n-1)/2); got != want {
			t.Fatalf("n=%d: expected: %d, got: %d", n, want, got)
		}
	}

	list := NewList(0, 1, 2, 3, 4, 5, 6)
	check.Equal(t, Nil, list.Middle(list.Head(), list.Head()))
	check.Equal(t, Nil, (&List{}).Middle(Nil, End))

	// [1, 5) holds 1 2 3 4
	start := list.Next(list.Head())
	end := start
	for i := 0; i < 4; i++ {
		end = list.Next(end)
	}
	check.Equal(t, int64(2), list.Value(list.Middle(start, end)))
}

func TestSearch(t *testing.T) {
	list := NewList(1, 3, 3, 5, 7)
	cases := []struct {
		target int64
		found  bool
	}{
		{3, true},
		{6, false},
		{0, false},
		{7, true},
		{1, true},
		{5, true},
		{8, false},
		{2, false},
	}
	for _, c := range cases {
		check.Equal(t, c.found, Search(list, c.target, Binary))
		check.Equal(t, c.found, Search(list, c.target, Exponential))
	}
}

func TestSearchEmpty(t *testing.T) {
	list := Sort(&List{}, MergeSort)
	check.True(t, list.Empty())
	check.True(t, !Search(list, 7, Binary))
	check.True(t, !Search(list, 7, Exponential))
}

func TestSearchRandom(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, n := range []int{1, 2, 5, 16, 17, 100, 513} {
		vals := sorted(randomValues(r, n, int64(2*n)))
		list := NewList(vals...)
		for v := int64(-1); v <= int64(2*n); v++ {
			_, want := slices.BinarySearch(vals, v)
			binary := list.BinarySearch(v)
			exp := list.ExponentialSearch(v)
			if binary != want || exp != want {
				t.Fatalf("n=%d v=%d: expected: %v, got binary %v exponential %v", n, v, want, binary, exp)
			}
		}
	}
}

func TestSearchAfterSort(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	input := randomValues(r, 300, 1000)
	for _, alg := range sortAlgorithms {
		list := Sort(NewList(input...), alg)
		for _, v := range input {
			check.True(t, Search(list, v, Binary))
			check.True(t, Search(list, v, Exponential))
		}
		check.True(t, !Search(list, 1000, Binary))
		check.True(t, !Search(list, -1, Exponential))
	}
}
