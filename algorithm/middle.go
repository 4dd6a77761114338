package algorithm

/*
 * Middle returns the lower-middle node of [start, end) without counting the
 * range first: fast starts one link ahead of slow and moves two links for
 * each link slow moves. end may be a node or End.
 * It returns Nil for an empty range.
 */
func (l *List) Middle(start, end Index) Index {
	if start == end || start == Nil {
		return Nil
	}
	slow := start
	fast := l.step(start)
	for fast != end {
		fast = l.step(fast)
		if fast != end {
			slow = l.step(slow)
			fast = l.step(fast)
		}
	}
	return slow
}
