package algorithm

/*
 * Both searches expect an ascending list and do not check it.
 *
 * Without index access every Middle call walks the current range, so a
 * search costs O(n) link steps in total even though it only makes O(log n)
 * comparisons.
 */

func (l *List) BinarySearch(target int64) bool {
	if l.Empty() {
		return false
	}
	return l.narrow(l.head, End, target)
}

/*
 * ExponentialSearch doubles a step count from 1 and moves a cursor forward by
 * each new step until the cursor holds a value greater than target or runs
 * off the tail, then binary searches [head, cursor). An overrun clips the
 * window to End.
 */
func (l *List) ExponentialSearch(target int64) bool {
	if l.Empty() {
		return false
	}
	if l.nodes[l.head].val == target {
		return true
	}

	bound := l.step(l.head)
	step := 1
	for bound != End && l.nodes[bound].val <= target {
		step *= 2
		for j := 0; j < step && bound != End; j++ {
			bound = l.step(bound)
		}
	}
	DPrintf("exponential search: target %d, window closed after step %d", target, step)
	return l.narrow(l.head, bound, target)
}

// narrow binary searches [start, end).
func (l *List) narrow(start, end Index, target int64) bool {
	for start != end {
		mid := l.Middle(start, end)
		if mid == Nil {
			break
		}
		val := l.nodes[mid].val
		if val == target {
			return true
		} else if val < target {
			start = l.step(mid)
		} else {
			end = mid
		}
	}
	return false
}
