package list

import (
	"strconv"
	"testing"

	"src.elv.sh/cons/pkg/tt"
)

func double(x int) int { return x * 2 }

func TestMap(t *testing.T) {
	Test(t, Fn("Map", Map[int, int]), tt.Table{
		Args(Of(1, 2, 3), double).Rets(tt.Stringifies("(2 4 6)")),
		Args(nil, double).Rets(tt.Stringifies("()")),
	})
	if s := Map(Of(1, 2), strconv.Itoa).String(); s != "(1 2)" {
		t.Errorf("Map with Itoa -> %s", s)
	}
}

func TestMap_CallsInOrder(t *testing.T) {
	var seen []int
	Map(Of(1, 2, 3), func(x int) int { seen = append(seen, x); return x })
	if !Equal(FromSlice(seen), Of(1, 2, 3)) {
		t.Errorf("Map called fn with %v, want [1 2 3]", seen)
	}
}

func TestMap_Composition(t *testing.T) {
	l := Range(1, 100)
	inc := func(x int) int { return x + 1 }
	if !Equal(Map(Map(l, inc), double), Map(l, func(x int) int { return double(inc(x)) })) {
		t.Errorf("Map does not compose")
	}
}

func TestMap_Large(t *testing.T) {
	m := Map(Range(1, NLarge), double)
	if h, _ := m.Head(); h != 2 {
		t.Errorf("head of mapped list is %d, want 2", h)
	}
	if v, _ := m.Last(); v != 2*NLarge {
		t.Errorf("last of mapped list is %d, want %d", v, 2*NLarge)
	}
}

func TestConcat(t *testing.T) {
	Test(t, Fn("Concat", Concat[int]), tt.Table{
		Args(Range(1, 5), Range(1, 5)).Rets(tt.Stringifies("(1 2 3 4 5 1 2 3 4 5)")),
		Args(nil, Of(1)).Rets(tt.Stringifies("(1)")),
		Args(Of(1), nil).Rets(tt.Stringifies("(1)")),
		Args(nil, nil).Rets(tt.Stringifies("()")),
	})
}

func TestConcat_SharesRight(t *testing.T) {
	l, r := Of(1, 2), Of(3, 4)
	c := l.Concat(r)
	if c.Rest().Rest() != r {
		t.Errorf("Concat copied the right list")
	}
	if l.String() != "(1 2)" {
		t.Errorf("Concat modified the left list: %s", l)
	}
}

func TestConcat_Large(t *testing.T) {
	l := Range(1, NLarge)
	if n := Concat(l, l).Len(); n != 2*NLarge {
		t.Errorf("Len() of concatenation is %d, want %d", n, 2*NLarge)
	}
}

func TestAt(t *testing.T) {
	l := Range(1, NLarge)
	Test(t, Fn("At", (*List[int]).At), tt.Table{
		Args(l, 0).Rets(1, true),
		Args(l, 100).Rets(101, true),
		Args(l, NLarge-1).Rets(NLarge, true),
		Args(l, -1).Rets(NLarge, true),
		Args(l, -NLarge).Rets(1, true),
		Args(l, NLarge).Rets(0, false),
		Args(l, NLarge+1).Rets(0, false),
		Args(l, -NLarge-1).Rets(0, false),
		Args(nil, 0).Rets(0, false),
		Args(nil, -1).Rets(0, false),
	})
}

func TestAt_AgreesWithReverse(t *testing.T) {
	l := Of(3, 1, 4, 1, 5, 9, 2, 6)
	r := l.Reverse()
	n := l.Len()
	for i := 0; i < n; i++ {
		a, _ := l.At(i)
		b, _ := r.At(n - 1 - i)
		if a != b {
			t.Errorf("At(%d) = %d, but reversed At(%d) = %d", i, a, n-1-i, b)
		}
	}
	last, _ := l.Last()
	if v, _ := l.At(-1); v != last {
		t.Errorf("At(-1) = %d, Last() = %d", v, last)
	}
}

func zero(int) int { return 0 }

func TestUpdate(t *testing.T) {
	Test(t, Fn("Update", (*List[int]).Update), tt.Table{
		Args(Range(1, 5), -1, zero).Rets(tt.Stringifies("(1 2 3 4 0)")),
		Args(Range(1, 5), 0, zero).Rets(tt.Stringifies("(0 2 3 4 5)")),
		Args(Range(1, 5), 2, double).Rets(tt.Stringifies("(1 2 6 4 5)")),
		Args(Range(1, 5), -5, double).Rets(tt.Stringifies("(2 2 3 4 5)")),
		Args(Range(1, 5), 5, zero).Rets(tt.Stringifies("(1 2 3 4 5)")),
		Args(Range(1, 5), -6, zero).Rets(tt.Stringifies("(1 2 3 4 5)")),
		Args(nil, 0, zero).Rets(tt.Stringifies("()")),
	})
}

func TestUpdate_Locality(t *testing.T) {
	l := Range(1, 10)
	u := l.Update(4, double)
	for i := 0; i < l.Len(); i++ {
		a, _ := l.At(i)
		b, _ := u.At(i)
		if i == 4 {
			if b != 10 {
				t.Errorf("updated element is %d, want 10", b)
			}
		} else if a != b {
			t.Errorf("element %d changed from %d to %d", i, a, b)
		}
	}
	if s := l.String(); s != "(1 2 3 4 5 6 7 8 9 10)" {
		t.Errorf("Update modified its input: %s", s)
	}
	// The tail after the updated index is shared.
	p, q := l, u
	for i := 0; i <= 4; i++ {
		p, q = p.Rest(), q.Rest()
	}
	if p != q {
		t.Errorf("Update did not share the tail")
	}
}

func TestUpdate_OutOfRangeReturnsInput(t *testing.T) {
	l := Of(1, 2)
	if l.Update(2, zero) != l {
		t.Errorf("Update out of range did not return its input")
	}
}

func TestZip(t *testing.T) {
	Test(t, Fn("Zip", Zip[int]), tt.Table{
		Args(Of(Of(1, 2, 3), Of(4, 5, 6))).Rets(tt.Stringifies("((1 4) (2 5) (3 6))")),
		Args(Of(Of(1, 2, 3), Of(4, 5))).Rets(tt.Stringifies("((1 4) (2 5))")),
		Args(Of(Of(1), Of(2), Of(3))).Rets(tt.Stringifies("((1 2 3))")),
		Args(Of(Of(1, 2))).Rets(tt.Stringifies("((1) (2))")),
		Args(Of(Of(1, 2), Empty[int]())).Rets(tt.Stringifies("()")),
		Args(nil).Rets(tt.Stringifies("()")),
	})
}

func TestZip_ShortestLength(t *testing.T) {
	for _, c := range [][2]int{{3, 7}, {7, 3}, {0, 5}, {10, 10}} {
		rows := Zip(Of(Range(1, c[0]), Range(1, c[1])))
		want := min(c[0], c[1])
		if rows.Len() != want {
			t.Errorf("zipping %d and %d elements gives %d rows, want %d",
				c[0], c[1], rows.Len(), want)
		}
	}
}

func TestPair(t *testing.T) {
	Test(t, Fn("Pair", Pair[int]), tt.Table{
		Args(1, 2).Rets(tt.Stringifies("(1 2)")),
	})
	if n := Pair("a", "b").Len(); n != 2 {
		t.Errorf("Len() of pair is %d", n)
	}
}

func BenchmarkMap(b *testing.B) {
	l := Range(1, 10000)
	b.ResetTimer()
	for r := 0; r < b.N; r++ {
		Map(l, double)
	}
}

func BenchmarkAtNegative(b *testing.B) {
	l := Range(1, 10000)
	b.ResetTimer()
	for r := 0; r < b.N; r++ {
		l.At(-1)
	}
}
