// Package simd provides portable, allocation-free byte-scanning primitives
// used to accelerate the element and element-set patterns in package
// pattern.
//
// These are the portable SWAR (SIMD Within A Register) fallbacks used
// unconditionally rather than dispatching to CPU-feature-gated assembly.
// Memchr, LastIndex and FirstNonASCII process 8 bytes per iteration using
// uint64 bitwise tricks instead of a naive byte-by-byte loop; the 256-entry
// table scans (MemchrInTable and its siblings) test one byte at a time.
package simd

import (
	"encoding/binary"
	"math/bits"
)

// Memchr returns the index of the first instance of needle in haystack, or
// -1 if needle does not appear.
//
// Equivalent to bytes.IndexByte. The element pattern (package pattern)
// uses it for byte elements, with LastIndex as its reverse counterpart.
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	// Broadcast needle into every byte of a uint64, then use the classic
	// "zero byte in a word" trick: after XOR-ing with the haystack chunk,
	// any byte that matched needle becomes 0x00, which the formula below
	// isolates without a data-dependent branch per byte.
	mask := uint64(needle) * 0x0101010101010101
	const lo8 = 0x0101010101010101
	const hi8 = 0x8080808080808080

	i := 0
	for i+8 <= n {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		xor := chunk ^ mask
		hasZero := (xor - lo8) &^ xor & hi8
		if hasZero != 0 {
			return i + bits.TrailingZeros64(hasZero)/8
		}
		i += 8
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// LastIndex returns the index of the last instance of needle in haystack,
// or -1 if needle does not appear. Used by the element pattern's reverse
// search so that forward and reverse element scans share one SWAR core.
func LastIndex(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := n - 1; i >= 0; i-- {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := uint64(needle) * 0x0101010101010101
	const lo7 = 0x7f7f7f7f7f7f7f7f
	const hi8 = 0x8080808080808080

	i := n
	for i-8 >= 0 {
		i -= 8
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		xor := chunk ^ mask
		// Exact zero-byte test: Memchr's formula can also flag the byte
		// just above a real match through a borrow, which is harmless when
		// taking the lowest flag but not the highest. Here no carry crosses
		// a byte, so the highest flagged byte is the last match.
		hasZero := ^(((xor & lo7) + lo7) | xor) & hi8
		if hasZero != 0 {
			return i + 7 - bits.LeadingZeros64(hasZero)/8
		}
	}
	for j := i - 1; j >= 0; j-- {
		if haystack[j] == needle {
			return j
		}
	}
	return -1
}
