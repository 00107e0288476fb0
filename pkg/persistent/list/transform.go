package list

// Map returns a list where each element is the result of calling fn on the
// corresponding element of l. The function is called from first to last.
func Map[T, K any](l *List[T], fn func(T) K) *List[K] {
	return FoldLeft(l, Empty[K](), func(acc *List[K], v T) *List[K] {
		return acc.Cons(fn(v))
	}).Reverse()
}

// Concat returns a list with the elements of l followed by the elements of r.
// The nodes of l are copied, while r is shared as the tail of the result.
func Concat[T any](l, r *List[T]) *List[T] {
	return FoldRight(l, r, (*List[T]).Cons)
}

// Concat is the method form of Concat.
func (l *List[T]) Concat(r *List[T]) *List[T] { return Concat(l, r) }

// At returns the element at the zero-based index i. A negative index counts
// from the end, with -1 being the last element. The second return value is
// false if the index is out of range.
func (l *List[T]) At(i int) (T, bool) {
	if i < 0 {
		return l.Reverse().nth(-i - 1)
	}
	return l.nth(i)
}

func (l *List[T]) nth(i int) (T, bool) {
	for ; i > 0 && l != nil; i-- {
		l = l.rest
	}
	return l.Head()
}

// Update returns a list that is identical to l, except that the element at
// index i is replaced by fn applied to it. Negative indices are resolved like
// in At. If the index is out of range, l itself is returned.
//
// The part of l after index i is shared with the result.
func (l *List[T]) Update(i int, fn func(T) T) *List[T] {
	if i < 0 {
		i += l.Len()
	}
	if i < 0 || i >= l.Len() {
		return l
	}
	prefix := make([]T, 0, i)
	p := l
	for ; i > 0; i-- {
		prefix = append(prefix, p.first)
		p = p.rest
	}
	result := Cons(fn(p.first), p.rest)
	for j := len(prefix) - 1; j >= 0; j-- {
		result = Cons(prefix[j], result)
	}
	return result
}

// Zip returns a list of rows, where the k-th row contains the k-th element of
// each list in ls, in the same order as ls. It stops as soon as any of the
// lists is exhausted; zipping an empty list of lists yields an empty list.
func Zip[T any](ls *List[*List[T]]) *List[*List[T]] {
	if ls == nil {
		return nil
	}
	var rows *List[*List[T]]
	for cursors := ls; ; {
		exhausted := false
		row := FoldLeft(cursors, Empty[T](), func(acc *List[T], c *List[T]) *List[T] {
			if c == nil {
				exhausted = true
				return acc
			}
			return acc.Cons(c.first)
		})
		if exhausted {
			break
		}
		rows = rows.Cons(row.Reverse())
		cursors = Map(cursors, (*List[T]).Rest)
	}
	return rows.Reverse()
}

// Pair returns the two-element list (a b).
func Pair[T any](a, b T) *List[T] {
	return Cons(a, Cons(b, nil))
}
