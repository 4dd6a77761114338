package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alanpx/listsort/algorithm"
	"github.com/alanpx/listsort/gen"
)

// parsed is the outcome of reading one value: either val, or the reason the
// input was rejected.
type parsed[T any] struct {
	val    T
	reason string
}

func (p parsed[T]) ok() bool {
	return p.reason == ""
}

func parseInt(s string) parsed[int64] {
	s = strings.TrimSpace(s)
	if s == "" {
		return parsed[int64]{reason: "empty input"}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return parsed[int64]{reason: fmt.Sprintf("%q is out of range", s)}
		}
		return parsed[int64]{reason: fmt.Sprintf("%q is not an integer", s)}
	}
	return parsed[int64]{val: v}
}

func parsePositive(s string) parsed[int64] {
	p := parseInt(s)
	if p.ok() && p.val <= 0 {
		return parsed[int64]{reason: "please enter a positive number"}
	}
	return p
}

// menu owns the list of one interactive session.
type menu struct {
	in    *bufio.Scanner
	out   io.Writer
	gen   *gen.Generator
	sizes []int
	list  *algorithm.List
}

func newMenu(in io.Reader, out io.Writer, g *gen.Generator, sizes []int) *menu {
	return &menu{bufio.NewScanner(in), out, g, sizes, &algorithm.List{}}
}

const menuText = `
Menu Options:
1. Generate random numbers
2. Quick Sort
3. Merge Sort
4. Selection Sort
5. Binary Search
6. Exponential Search
7. Print list
8. Run complete runtime analysis
9. Exit
`

// ask prompts until parse accepts a line. It returns false once input ends.
func (m *menu) ask(prompt string, parse func(string) parsed[int64]) (int64, bool) {
	for {
		fmt.Fprint(m.out, prompt)
		if !m.in.Scan() {
			return 0, false
		}
		p := parse(m.in.Text())
		if p.ok() {
			return p.val, true
		}
		fmt.Fprintf(m.out, "Invalid input: %s. Try again.\n", p.reason)
	}
}

func (m *menu) run() error {
	defer m.list.Release()
	for {
		fmt.Fprint(m.out, menuText)
		choice, ok := m.ask("Enter choice: ", parseInt)
		if !ok || choice == 9 {
			return m.in.Err()
		}

		switch choice {
		case 1:
			n, ok := m.ask("Enter number of random values to generate: ", parsePositive)
			if !ok {
				return m.in.Err()
			}
			if err := m.gen.Fill(m.list, int(n)); err != nil {
				fmt.Fprintln(m.out, err)
				continue
			}
			fmt.Fprintf(m.out, "%d random numbers generated.\n", n)
		case 2, 3, 4:
			if m.list.Empty() {
				fmt.Fprintln(m.out, "List is empty. Generate numbers first.")
				continue
			}
			alg := algorithm.SortAlgorithm(choice - 2)
			elapsed := m.sort(alg)
			fmt.Fprintf(m.out, "%s sort completed in %s ms\n", alg, millis(elapsed))
		case 5, 6:
			if m.list.Empty() {
				fmt.Fprintln(m.out, "List is empty. Generate numbers first.")
				continue
			}
			target, ok := m.ask("Enter value to search: ", parseInt)
			if !ok {
				return m.in.Err()
			}
			alg := algorithm.SearchAlgorithm(choice - 5)
			found, elapsed := timedSearch(m.list, target, alg)
			reportSearch(m.out, alg, target, found, elapsed)
		case 7:
			if m.list.Empty() {
				fmt.Fprintln(m.out, "List is empty. Nothing to print.")
			} else {
				fmt.Fprintln(m.out, m.list)
			}
		case 8:
			rows, err := analyze(m.gen, m.sizes)
			if err != nil {
				fmt.Fprintln(m.out, err)
				continue
			}
			printAnalysis(m.out, rows)
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
	}
}

func (m *menu) sort(alg algorithm.SortAlgorithm) time.Duration {
	var elapsed time.Duration
	m.list, elapsed = timedSort(m.list, alg)
	return elapsed
}
