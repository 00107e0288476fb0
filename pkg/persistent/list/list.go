// Package list implements a persistent singly-linked list.
//
// A list is either empty or a node holding one element and the rest of the
// list. Lists are never modified after construction; every operation that
// "changes" a list builds new nodes and shares whatever suffix it can with its
// input. Since no operation ever writes through an existing node, lists can be
// read from multiple goroutines without synchronization.
//
// The empty list of element type T is the nil *List[T]. All methods accept a
// nil receiver.
//
// Operations that may find no element, like Head and At, use the comma-ok
// idiom instead of a sentinel value, so a list of zero values is never
// mistaken for an empty position.
//
// None of the operations recurse once per element; lists with millions of
// elements are fine to traverse.
package list

import "src.elv.sh/cons/pkg/persistent/hash"

// List is a persistent list. The nil *List[T] is the empty list.
type List[T any] struct {
	first T
	rest  *List[T]
	// Number of elements in the list headed by this node.
	count int
}

// Empty returns the empty list of element type T. It is always nil, which
// makes all empty lists of the same element type identical.
func Empty[T any]() *List[T] { return nil }

// Cons returns a new list with head in front of rest. Passing a nil rest
// creates a single-element list.
func Cons[T any](head T, rest *List[T]) *List[T] {
	return &List[T]{head, rest, rest.Len() + 1}
}

// Of returns a list containing the given values in order.
func Of[T any](vs ...T) *List[T] {
	return FromSlice(vs)
}

// FromSlice returns a list containing the elements of s in order. The slice is
// not retained.
func FromSlice[T any](s []T) *List[T] {
	var l *List[T]
	for i := len(s) - 1; i >= 0; i-- {
		l = Cons(s[i], l)
	}
	return l
}

// IsEmpty returns whether the list has no elements.
func (l *List[T]) IsEmpty() bool { return l == nil }

// Cons returns a new list with an additional value in the front.
func (l *List[T]) Cons(v T) *List[T] { return Cons(v, l) }

// Len returns the number of values in the list. It takes constant time.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.count
}

// Head returns the first value in the list. The second return value is false
// if the list is empty.
func (l *List[T]) Head() (T, bool) {
	if l == nil {
		var zero T
		return zero, false
	}
	return l.first, true
}

// First is the same as Head.
func (l *List[T]) First() (T, bool) { return l.Head() }

// Rest returns the list after the first value. The rest of an empty list is
// empty.
func (l *List[T]) Rest() *List[T] {
	if l == nil {
		return nil
	}
	return l.rest
}

// Last returns the last value in the list. The second return value is false if
// the list is empty. It takes linear time.
func (l *List[T]) Last() (T, bool) {
	if l == nil {
		var zero T
		return zero, false
	}
	for l.rest != nil {
		l = l.rest
	}
	return l.first, true
}

// ToSlice returns a new slice containing the elements of the list in order.
func (l *List[T]) ToSlice() []T {
	s := make([]T, 0, l.Len())
	for ; l != nil; l = l.rest {
		s = append(s, l.first)
	}
	return s
}

// Iterator returns an iterator over the list. It can be used like this:
//
//	for it := l.Iterator(); it.HasElem(); it.Next() {
//	    elem := it.Elem()
//	    // do something with elem...
//	}
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{l}
}

// Iterator is an iterator over list elements.
type Iterator[T any] struct {
	l *List[T]
}

// Elem returns the element at the current position. It must only be called
// when HasElem returns true.
func (it *Iterator[T]) Elem() T { return it.l.first }

// HasElem returns whether the iterator is pointing to an element.
func (it *Iterator[T]) HasElem() bool { return it.l != nil }

// Next moves the iterator to the next position.
func (it *Iterator[T]) Next() { it.l = it.l.rest }

// Equal returns whether two lists of comparable elements have the same
// elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal, but uses eq to compare elements.
func EqualFunc[T any](a, b *List[T], eq func(T, T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for ; a != b; a, b = a.rest, b.rest {
		if !eq(a.first, b.first) {
			return false
		}
	}
	return true
}

// Hash returns a hash of the list, combining the hashes of its elements in
// order. Lists that are equal have the same hash as long as elemHash returns
// the same hash for equal elements.
func Hash[T any](l *List[T], elemHash func(T) uint32) uint32 {
	return FoldLeft(l, hash.DJBInit, func(acc uint32, v T) uint32 {
		return hash.DJBCombine(acc, elemHash(v))
	})
}
