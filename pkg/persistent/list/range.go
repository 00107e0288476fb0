package list

// Number is the constraint for the element types of Range and RangeStep.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Range is equivalent to RangeStep(from, to, 1).
func Range[N Number](from, to N) *List[N] {
	return RangeStep(from, to, 1)
}

// RangeStep returns the ascending list from, from+step, from+2*step, ..., up
// to and including the last such value that does not exceed to. It returns an
// empty list if from > to or step is not positive.
//
// For integer types, the range may span the whole type; no element is computed
// by an addition that overflows.
func RangeStep[N Number](from, to, step N) *List[N] {
	if from > to || step <= 0 {
		return nil
	}
	if isFloat[N]() {
		// Elements are computed from their index rather than by accumulating
		// step, so that floating point errors don't build up.
		n := int((float64(to)-float64(from))/float64(step)) + 1
		var l *List[N]
		for i := n - 1; i >= 0; i-- {
			l = Cons(from+N(i)*step, l)
		}
		return l
	}
	var s []N
	for v := from; ; v += step {
		s = append(s, v)
		// The distance to the upper bound is computed in uint64, where it is
		// exact for every integer type even if to-v overflows N.
		if uint64(to)-uint64(v) < uint64(step) {
			break
		}
	}
	return FromSlice(s)
}

func isFloat[N Number]() bool {
	var one N = 1
	return one/2 != 0
}
