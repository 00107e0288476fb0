package list

import (
	"fmt"
	"io"
	"strings"
)

// String returns the elements of the list separated by spaces and surrounded
// by parentheses, like "(1 2 3)". Elements are formatted with fmt.Sprint. The
// empty list is "()".
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for p := l; p != nil; p = p.rest {
		if p != l {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, p.first)
	}
	sb.WriteByte(')')
	return sb.String()
}

// Print writes the string form of l to w, followed by a newline.
func Print[T any](w io.Writer, l *List[T]) error {
	_, err := io.WriteString(w, l.String()+"\n")
	return err
}
