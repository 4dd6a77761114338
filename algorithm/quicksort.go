package algorithm

// segment is a run of n nodes hanging off prev (Nil for the list head) and
// followed by stop (Nil past the tail).
type segment struct {
	prev Index
	head Index
	stop Index
	n    int
}

/*
 * quick sort for linked list
 * 1.the pivot is the last node of each segment
 * 2.nodes are relinked around the pivot, values never move
 * 3.pending segments live on an explicit stack and the smaller one is sorted
 *   first, so sorted or reverse sorted input cannot grow the stack past log n
 */
func (l *List) quickSort() {
	stack := []segment{{Nil, l.head, Nil, len(l.nodes)}}
	for len(stack) > 0 {
		seg := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seg.n < 2 {
			continue
		}
		less, rest := l.partition(seg)
		if less.n > rest.n {
			stack = append(stack, less, rest)
		} else {
			stack = append(stack, rest, less)
		}
	}
}

/*
 * partition relinks seg into: less -> pivot -> rest.
 * Nodes smaller than the pivot go to less, the others follow the pivot; both
 * keep their encounter order.
 */
func (l *List) partition(seg segment) (segment, segment) {
	pivot := seg.head
	for i := 1; i < seg.n; i++ {
		pivot = l.nodes[pivot].next
	}
	pv := l.nodes[pivot].val

	lessHead, lessTail, restTail := Nil, Nil, pivot
	lessN, restN := 0, 0
	for node := seg.head; node != pivot; {
		next := l.nodes[node].next
		if l.nodes[node].val < pv {
			if lessTail == Nil {
				lessHead = node
			} else {
				l.nodes[lessTail].next = node
			}
			lessTail = node
			lessN++
		} else {
			l.nodes[restTail].next = node
			restTail = node
			restN++
		}
		node = next
	}
	l.nodes[restTail].next = seg.stop

	first := pivot
	if lessTail != Nil {
		l.nodes[lessTail].next = pivot
		first = lessHead
	}
	l.link(seg.prev, first)
	DPrintf("quicksort: %d nodes around pivot %d: %d less, %d greater or equal", seg.n, pv, lessN, restN)

	return segment{seg.prev, lessHead, pivot, lessN},
		segment{pivot, l.nodes[pivot].next, seg.stop, restN}
}
