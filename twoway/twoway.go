// Package twoway implements the Crochemore-Perrin Two-Way substring search
// algorithm: worst-case linear time, constant extra space, used for every
// non-empty sub-sequence pattern in package pattern. It generalizes the
// classic TwoWaySearcher from bytes to any totally ordered element type.
//
// The algorithm factors the needle into a critical factorization (u, v),
// checks v (right of the critical position) first at each alignment, and
// falls back to u only once v has fully matched. Two period regimes are handled: a "short period" regime that
// remembers how much of the needle matched on the previous attempt
// (fields memory/memoryBack) so it's never rechecked, and a "long period"
// regime that skips that memoization because it isn't sound when the
// period exceeds half the needle's length.
package twoway

import "github.com/coregx/patterncore/internal/conv"

// FastSkipByteset is a 64-bit fingerprint of which (byte & 63) values occur
// in the needle, used to skip positions that cannot possibly match without
// running the full comparison. This is a practical extension layered on
// top of the Two-Way algorithm proper, not part of it.
type FastSkipByteset = uint64

// byteSetMask returns v's contribution to a FastSkipByteset. Only byte
// needles get a real filter: the mask for any other element type is all
// ones, so byteSetContains never rejects a position. The fast-skip
// optimization only makes sense for byte-sized alphabets; every other
// element type falls back to the non-filtering default.
func byteSetMask[T Elem](v T) FastSkipByteset {
	if b, ok := any(v).(byte); ok {
		return 1 << (b & 63)
	}
	return ^FastSkipByteset(0)
}

func byteSetCreate[T Elem](needle []T) FastSkipByteset {
	var set FastSkipByteset
	for _, v := range needle {
		set |= byteSetMask(v)
	}
	return set
}

// Searcher runs the Two-Way algorithm over a needle of element type T.
// Zero value is not usable; construct with New. A Searcher carries mutable
// scan state (memory/memoryBack) and is not safe for concurrent use by
// multiple goroutines scanning independent hays; give each goroutine its
// own Searcher over the same needle (construction is cheap, O(len(needle))).
type Searcher[T Elem] struct {
	needle []T

	critPos     int
	critPosBack int
	period      int
	byteset     FastSkipByteset

	// longPeriod selects the algorithm regime. Short-period needles (the
	// common case) get the memory/memoryBack skip optimization below;
	// long-period needles disable it because it is unsound once the
	// period exceeds half the needle's length (see New).
	longPeriod bool
	memory     int
	memoryBack int
}

// New builds a Searcher for needle, which must be non-empty: empty
// patterns are handled by searcher.Empty, one layer up, checked before
// ever constructing a Searcher.
func New[T Elem](needle []T) *Searcher[T] {
	if len(needle) == 0 {
		panic("twoway: New requires a non-empty needle")
	}
	lLeft, lPeriod := maximalSuffix(needle, false)
	gLeft, gPeriod := maximalSuffix(needle, true)
	critPos, period := lLeft, lPeriod
	if gLeft > lLeft || (gLeft == lLeft && gPeriod > lPeriod) {
		critPos, period = gLeft, gPeriod
	}

	byteset := byteSetCreate(needle)

	// Algorithm CP1 vs CP2 from Crochemore & Rytter, "Text Algorithms"
	// ch. 13: short period when u is a suffix of v[:period]. This compares
	// needle[:critPos] == needle[period:period+critPos] directly;
	// critPos+period can exceed len(needle) for some needles (the forward
	// factorization's period is only a lower bound in the long-period
	// case), so that slice is bounds-checked here before the comparison
	// instead of trusting the invariant blindly.
	if critPos+period <= len(needle) && equal(needle[:critPos], needle[period:period+critPos]) {
		r1 := reverseMaximalSuffix(needle, period, true)
		r2 := reverseMaximalSuffix(needle, period, false)
		critPosBack := len(needle) - max(r1, r2)
		return &Searcher[T]{
			needle:      needle,
			critPos:     critPos,
			critPosBack: critPosBack,
			period:      period,
			byteset:     byteset,
			longPeriod:  false,
			memory:      0,
			memoryBack:  len(needle),
		}
	}

	approxPeriod := max(critPos, len(needle)-critPos) + 1
	return &Searcher[T]{
		needle:      needle,
		critPos:     critPos,
		critPosBack: critPos,
		period:      approxPeriod,
		byteset:     byteset,
		longPeriod:  true,
	}
}

func (s *Searcher[T]) byteSetContains(v T) bool {
	return s.byteset&byteSetMask(v) != 0
}

// Next finds the first match of the needle in hay[start:end], returning
// its bounds and true, or false if none occurs. Successive calls over
// advancing ranges of the same hay reuse the memory field to avoid
// rechecking already-matched needle characters (short-period regime only).
func (s *Searcher[T]) Next(hay []T, start, end int) (matchStart, matchEnd int, ok bool) {
	needle := s.needle
	position := start
	for {
		i, inBounds := conv.CheckedAdd(position, len(needle)-1)
		if !inBounds || i >= end {
			return 0, 0, false
		}
		tail := hay[i]

		if !s.byteSetContains(tail) {
			position += len(needle)
			if !s.longPeriod {
				s.memory = 0
			}
			continue
		}

		from := s.critPos
		if !s.longPeriod {
			from = max(s.critPos, s.memory)
		}
		mismatch := -1
		for k := from; k < len(needle); k++ {
			if needle[k] != hay[position+k] {
				mismatch = k
				break
			}
		}
		if mismatch >= 0 {
			position += mismatch - s.critPos + 1
			if !s.longPeriod {
				s.memory = 0
			}
			continue
		}

		from2 := 0
		if !s.longPeriod {
			from2 = s.memory
		}
		mismatch = -1
		for k := s.critPos - 1; k >= from2; k-- {
			if needle[k] != hay[position+k] {
				mismatch = k
				break
			}
		}
		if mismatch >= 0 {
			position += s.period
			if !s.longPeriod {
				s.memory = len(needle) - s.period
			}
			continue
		}

		if !s.longPeriod {
			s.memory = 0
		}
		return position, position + len(needle), true
	}
}

// NextBack is Next's mirror image: the last match of the needle in
// hay[start:end], scanning from the back. It does not, in general, visit
// matches in the reverse order Next visits them (overlapping matches can
// disagree on which occurrence is "the" match at a given position), so
// Searcher does not claim the DoubleEnded capability.
func (s *Searcher[T]) NextBack(hay []T, start, end int) (matchStart, matchEnd int, ok bool) {
	needle := s.needle
	e := end
	for {
		if len(needle)+start > e {
			return 0, 0, false
		}
		front := hay[e-len(needle)]

		if !s.byteSetContains(front) {
			e -= len(needle)
			if !s.longPeriod {
				s.memoryBack = len(needle)
			}
			continue
		}

		crit := s.critPosBack
		if !s.longPeriod {
			crit = min(s.critPosBack, s.memoryBack)
		}
		mismatch := -1
		for k := crit - 1; k >= 0; k-- {
			if needle[k] != hay[e-len(needle)+k] {
				mismatch = k
				break
			}
		}
		if mismatch >= 0 {
			e -= s.critPosBack - mismatch
			if !s.longPeriod {
				s.memoryBack = len(needle)
			}
			continue
		}

		needleEnd := len(needle)
		if !s.longPeriod {
			needleEnd = s.memoryBack
		}
		mismatch = -1
		for k := s.critPosBack; k < needleEnd; k++ {
			if needle[k] != hay[e-len(needle)+k] {
				mismatch = k
				break
			}
		}
		if mismatch >= 0 {
			e -= s.period
			if !s.longPeriod {
				s.memoryBack = s.period
			}
			continue
		}

		if !s.longPeriod {
			s.memoryBack = len(needle)
		}
		return e - len(needle), e, true
	}
}

func equal[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
