package algorithm

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Index addresses a node in the arena of a List.
type Index int32

const (
	// Nil marks "no node": the next of a tail, or the head of an empty list.
	Nil Index = -1
	// End is the exclusive bound one past the true tail.
	End Index = -2
)

type Node struct {
	val  int64
	next Index
}

/*
 * List is a singly linked chain whose nodes live in an arena.
 * 1.nodes are only ever relinked, never copied between lists
 * 2.a sort consumes the list; use the list it returns
 */
type List struct {
	nodes []Node
	head  Index
}

// NewList builds a list holding values in the given order.
func NewList(values ...int64) *List {
	l := &List{head: Nil}
	for i := len(values) - 1; i >= 0; i-- {
		l.Prepend(values[i])
	}
	return l
}

func (l *List) Prepend(val int64) {
	l.nodes = append(l.nodes, Node{val, l.Head()})
	l.head = Index(len(l.nodes) - 1)
}

// Release drops every node; the list is empty afterwards.
func (l *List) Release() {
	l.nodes = nil
	l.head = Nil
}

func (l *List) Empty() bool {
	return len(l.nodes) == 0
}

func (l *List) Len() int {
	return len(l.nodes)
}

func (l *List) Head() Index {
	if l.Empty() {
		return Nil
	}
	return l.head
}

func (l *List) Next(i Index) Index {
	return l.nodes[i].next
}

func (l *List) Value(i Index) int64 {
	return l.nodes[i].val
}

// TailOf returns the last node reachable from i.
func (l *List) TailOf(i Index) Index {
	if i == Nil || i == End {
		panic(errors.AssertionFailedf("tail of a missing node"))
	}
	for l.nodes[i].next != Nil {
		i = l.nodes[i].next
	}
	return i
}

func (l *List) Values() []int64 {
	vals := make([]int64, 0, len(l.nodes))
	for i := l.Head(); i != Nil; i = l.nodes[i].next {
		vals = append(vals, l.nodes[i].val)
	}
	return vals
}

// Validate checks that every link is in bounds and that the chain from head
// visits each arena node exactly once.
func (l *List) Validate() error {
	if l.Empty() {
		return nil
	}
	seen := make([]bool, len(l.nodes))
	count := 0
	for i := l.head; i != Nil; i = l.nodes[i].next {
		if i < 0 || int(i) >= len(l.nodes) {
			return errors.AssertionFailedf("index %d out of arena of %d", i, len(l.nodes))
		}
		if seen[i] {
			return errors.AssertionFailedf("cycle at node %d", i)
		}
		seen[i] = true
		count++
	}
	if count != len(l.nodes) {
		return errors.Newf("%d of %d nodes unreachable", len(l.nodes)-count, len(l.nodes))
	}
	return nil
}

// step advances one link inside a range, turning the tail's Nil into End.
func (l *List) step(i Index) Index {
	if n := l.nodes[i].next; n != Nil {
		return n
	}
	return End
}

// link makes x follow prev, or the head when prev is Nil.
func (l *List) link(prev, x Index) {
	if prev == Nil {
		l.head = x
	} else {
		l.nodes[prev].next = x
	}
}

func (l *List) String() string {
	var b strings.Builder
	for i := l.Head(); i != Nil; i = l.nodes[i].next {
		b.WriteString(strconv.FormatInt(l.nodes[i].val, 10))
		b.WriteString(" -> ")
	}
	b.WriteString("nil")
	return b.String()
}
