// Package hash contains hash functions for building hashes of composite
// values out of hashes of their parts.
package hash

// DJBInit is the initial accumulator of DJB.
const DJBInit uint32 = 5381

// DJBCombine combines an accumulator with the hash of one more part.
func DJBCombine(acc, h uint32) uint32 {
	return mul33(acc) + h
}

// DJB combines the hashes of all parts, in order.
func DJB(hs ...uint32) uint32 {
	acc := DJBInit
	for _, h := range hs {
		acc = DJBCombine(acc, h)
	}
	return acc
}

// UInt64 returns a hash of a uint64.
func UInt64(u uint64) uint32 {
	return mul33(uint32(u>>32)) + uint32(u&0xffffffff)
}

// Int returns a hash of an int.
func Int(i int) uint32 {
	return UInt64(uint64(i))
}

// String returns the DJB hash of the bytes of a string.
func String(s string) uint32 {
	h := DJBInit
	for i := 0; i < len(s); i++ {
		h = DJBCombine(h, uint32(s[i]))
	}
	return h
}

func mul33(u uint32) uint32 {
	return u<<5 + u
}
