package main

import (
	"fmt"
	"io"
	"time"

	"github.com/alanpx/listsort/algorithm"
	"github.com/alanpx/listsort/gen"
)

type timing struct {
	n           int
	quick       time.Duration
	merge       time.Duration
	selection   time.Duration
	binary      time.Duration
	exponential time.Duration
}

func timedSort(list *algorithm.List, alg algorithm.SortAlgorithm) (*algorithm.List, time.Duration) {
	beginTime := time.Now()
	list = algorithm.Sort(list, alg)
	endTime := time.Now()
	return list, endTime.Sub(beginTime)
}

func timedSearch(list *algorithm.List, target int64, alg algorithm.SearchAlgorithm) (bool, time.Duration) {
	beginTime := time.Now()
	found := algorithm.Search(list, target, alg)
	endTime := time.Now()
	return found, endTime.Sub(beginTime)
}

func millis(d time.Duration) string {
	return fmt.Sprintf("%.4f", float64(d.Microseconds())/1000)
}

// analyze sorts a fresh random list per algorithm and size, then searches a
// sorted list for its head value, which is always present.
func analyze(g *gen.Generator, sizes []int) ([]timing, error) {
	rows := make([]timing, 0, len(sizes))
	list := &algorithm.List{}
	for _, n := range sizes {
		row := timing{n: n}
		for _, s := range []struct {
			alg algorithm.SortAlgorithm
			d   *time.Duration
		}{
			{algorithm.QuickSort, &row.quick},
			{algorithm.MergeSort, &row.merge},
			{algorithm.SelectionSort, &row.selection},
		} {
			if err := g.Fill(list, n); err != nil {
				return nil, err
			}
			list, *s.d = timedSort(list, s.alg)
		}

		target := list.Value(list.Head())
		_, row.binary = timedSearch(list, target, algorithm.Binary)
		_, row.exponential = timedSearch(list, target, algorithm.Exponential)
		rows = append(rows, row)
		algorithm.DPrintf("analysis: n=%d done", n)
	}
	list.Release()
	return rows, nil
}

func printAnalysis(w io.Writer, rows []timing) {
	fmt.Fprintln(w, "Runtime Analysis (times in milliseconds)")
	fmt.Fprintln(w, "---------------------------------------")
	fmt.Fprintln(w, "N\tQuick Sort\tMerge Sort\tSelection Sort\tBinary Search\tExponential Search")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%s\t\t%s\t\t%s\t\t%s\t\t%s\n", r.n,
			millis(r.quick), millis(r.merge), millis(r.selection), millis(r.binary), millis(r.exponential))
	}
}
