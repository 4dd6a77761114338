package algorithm

// selectionSort exchanges values, not nodes. Kept as a baseline for timing.
func (l *List) selectionSort() {
	for i := l.head; i != Nil; i = l.nodes[i].next {
		least := i
		for j := l.nodes[i].next; j != Nil; j = l.nodes[j].next {
			if l.nodes[j].val < l.nodes[least].val {
				least = j
			}
		}
		l.nodes[i].val, l.nodes[least].val = l.nodes[least].val, l.nodes[i].val
	}
}
