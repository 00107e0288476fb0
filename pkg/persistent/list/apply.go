package list

import (
	"errors"
	"fmt"
)

// Apply returns a function that calls the curried function fn with the
// elements of a list as successive arguments. Each stage of fn, except for the
// last one, must return a func(T) any:
//
//	add3 := func(a int) any {
//		return func(b int) any {
//			return func(c int) any { return a + b + c }
//		}
//	}
//	Apply(add3)(Of(1, 2, 3)) // 6, nil
//
// If the list has fewer elements than fn takes arguments, the partially
// applied stage is returned; for an empty list, that is fn itself. If the
// list has more elements, an *ArityError is returned. If fn is nil,
// ErrNilFunction is returned.
func Apply[T any](fn func(T) any) func(*List[T]) (any, error) {
	return func(l *List[T]) (any, error) {
		if fn == nil {
			return nil, ErrNilFunction
		}
		var f any = fn
		n := 0
		for ; l != nil; l = l.rest {
			stage, ok := f.(func(T) any)
			if !ok {
				return nil, &ArityError{n, l.Len() + n}
			}
			f = stage(l.first)
			n++
		}
		return f, nil
	}
}

// ErrNilFunction is returned by the function built by Apply when the curried
// function is nil.
var ErrNilFunction = errors.New("curried function is nil")

// ArityError is returned by the function built by Apply when a list has more
// elements than the curried function takes.
type ArityError struct {
	Accepted int
	Given    int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("curried function accepts %d arguments, given %d", e.Accepted, e.Given)
}
