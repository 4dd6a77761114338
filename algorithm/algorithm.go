package algorithm

import (
	"strings"

	"github.com/cockroachdb/errors"
)

var ErrUnknownAlgorithm = errors.New("unknown algorithm")

type SortAlgorithm int

const (
	QuickSort SortAlgorithm = iota
	MergeSort
	SelectionSort
)

var sortNames = []string{"quick", "merge", "selection"}

func (a SortAlgorithm) String() string {
	if a < 0 || int(a) >= len(sortNames) {
		return "unknown"
	}
	return sortNames[a]
}

type SearchAlgorithm int

const (
	Binary SearchAlgorithm = iota
	Exponential
)

var searchNames = []string{"binary", "exponential"}

func (a SearchAlgorithm) String() string {
	if a < 0 || int(a) >= len(searchNames) {
		return "unknown"
	}
	return searchNames[a]
}

func ParseSortAlgorithm(name string) (SortAlgorithm, error) {
	name = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), "sort")
	for i, n := range sortNames {
		if n == name {
			return SortAlgorithm(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownAlgorithm, "sort %q", name)
}

func ParseSearchAlgorithm(name string) (SearchAlgorithm, error) {
	name = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), "search")
	for i, n := range searchNames {
		if n == name {
			return SearchAlgorithm(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownAlgorithm, "search %q", name)
}

/*
 * Sort orders l ascending and returns it.
 * 1.the head of the list may be changed after sort, so only the returned
 *   list may be used afterwards
 * 2.an empty list is returned unchanged
 */
func Sort(l *List, alg SortAlgorithm) *List {
	if l.Empty() {
		return l
	}
	switch alg {
	case QuickSort:
		l.quickSort()
	case MergeSort:
		l.head = l.mergeSort(l.head)
	case SelectionSort:
		l.selectionSort()
	default:
		panic(errors.AssertionFailedf("sort algorithm %d", alg))
	}
	return l
}

// Search reports whether target is in l, which must already be sorted.
func Search(l *List, target int64, alg SearchAlgorithm) bool {
	switch alg {
	case Binary:
		return l.BinarySearch(target)
	case Exponential:
		return l.ExponentialSearch(target)
	default:
		panic(errors.AssertionFailedf("search algorithm %d", alg))
	}
}
