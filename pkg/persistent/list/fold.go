package list

// ForEach calls fn with each element of the list, from first to last. It
// returns l.
func (l *List[T]) ForEach(fn func(T)) *List[T] {
	for p := l; p != nil; p = p.rest {
		fn(p.first)
	}
	return l
}

// FoldLeft combines acc with each element of the list from first to last,
// replacing acc with fn(acc, elem) at each step, and returns the final acc.
//
//	FoldLeft(Of(1, 2, 3, 4), 0, func(acc, x int) int { return x - acc }) == 2
func FoldLeft[T, K any](l *List[T], acc K, fn func(acc K, elem T) K) K {
	for ; l != nil; l = l.rest {
		acc = fn(acc, l.first)
	}
	return acc
}

// FoldRight is like FoldLeft, but starts from the last element.
//
//	FoldRight(Of(1, 2, 3, 4), 0, func(acc, x int) int { return x - acc }) == -2
func FoldRight[T, K any](l *List[T], acc K, fn func(acc K, elem T) K) K {
	return FoldLeft(l.Reverse(), acc, fn)
}

// Reduce folds the list from the left, using the first element as the initial
// accumulator. The second return value is false if the list is empty. Use
// ReduceFrom or FoldLeft to supply an initial accumulator.
func Reduce[T any](l *List[T], fn func(acc, elem T) T) (T, bool) {
	if l == nil {
		var zero T
		return zero, false
	}
	return FoldLeft(l.rest, l.first, fn), true
}

// ReduceFrom folds the list from the left, starting with init. It is the same
// as FoldLeft.
func ReduceFrom[T, K any](l *List[T], init K, fn func(acc K, elem T) K) K {
	return FoldLeft(l, init, fn)
}

// Reverse returns a list with the elements of l in the opposite order. It
// shares no nodes with l.
func (l *List[T]) Reverse() *List[T] {
	return FoldLeft(l, Empty[T](), (*List[T]).Cons)
}
