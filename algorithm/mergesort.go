package algorithm

func (l *List) mergeSort(head Index) Index {
	if head == Nil || l.nodes[head].next == Nil {
		return head
	}
	second := l.split(head)
	return l.merge(l.mergeSort(head), l.mergeSort(second))
}

// split cuts the chain after position ceil(n/2)-1 and returns the second half.
func (l *List) split(head Index) Index {
	slow, fast := head, l.nodes[head].next
	for fast != Nil && l.nodes[fast].next != Nil {
		slow = l.nodes[slow].next
		fast = l.nodes[l.nodes[fast].next].next
	}
	second := l.nodes[slow].next
	l.nodes[slow].next = Nil
	return second
}

/*
 * merge relinks two ascending chains into one.
 * On equal values the left node goes first.
 */
func (l *List) merge(left, right Index) Index {
	head, tail := Nil, Nil
	for left != Nil && right != Nil {
		var node Index
		if l.nodes[left].val <= l.nodes[right].val {
			node, left = left, l.nodes[left].next
		} else {
			node, right = right, l.nodes[right].next
		}
		if tail == Nil {
			head = node
		} else {
			l.nodes[tail].next = node
		}
		tail = node
	}

	rest := left
	if rest == Nil {
		rest = right
	}
	if tail == Nil {
		return rest
	}
	l.nodes[tail].next = rest
	return head
}
