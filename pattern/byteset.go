package pattern

import (
	"github.com/coregx/patterncore/hay"
	"github.com/coregx/patterncore/searcher"
	"github.com/coregx/patterncore/simd"
	"github.com/coregx/patterncore/span"
)

// ByteSet matches any single byte in a fixed set, implemented as a
// predicate over a precomputed 256-entry membership table for O(1) lookup.
// It matches exactly one byte per occurrence rather than a greedy run of
// consecutive members — an element-set pattern is a single-codeword match,
// not a quantified class.
type ByteSet struct {
	searcher.DoubleEndedTag

	membership [256]bool
}

// NewByteSet builds a ByteSet from the given bytes.
func NewByteSet(bytes ...byte) ByteSet {
	var b ByteSet
	for _, v := range bytes {
		b.membership[v] = true
	}
	return b
}

// NewByteRanges builds a ByteSet from inclusive [lo, hi] byte ranges.
func NewByteRanges(ranges ...[2]byte) ByteSet {
	var b ByteSet
	for _, r := range ranges {
		lo, hi := r[0], r[1]
		for v := int(lo); v <= int(hi); v++ {
			b.membership[v] = true
		}
	}
	return b
}

func (b ByteSet) IntoSearcher() searcher.Forward[hay.SliceHay[byte]] { return b }
func (b ByteSet) IntoConsumer() searcher.Forward[hay.SliceHay[byte]] { return b }

func (b ByteSet) Search(s span.Span[hay.SliceHay[byte]]) (hay.Range, bool) {
	h, r := s.IntoParts()
	i := simd.MemchrInTable(h.Data()[r.Start:r.End], &b.membership)
	if i < 0 {
		return hay.Range{}, false
	}
	pos := r.Start + i
	return hay.Range{Start: pos, End: pos + 1}, true
}

func (b ByteSet) Consume(s span.Span[hay.SliceHay[byte]]) (int, bool) {
	h, r := s.IntoParts()
	if r.Start >= r.End || !b.membership[h.Data()[r.Start]] {
		return 0, false
	}
	return r.Start + 1, true
}

// TrimStart returns the index past the longest run of consecutive member
// bytes starting at h's front. A run of single-byte matches is exactly the
// prefix up to the first non-member byte, so this skips the generic
// Consume-loop in favor of one linear scan.
func (b ByteSet) TrimStart(h hay.SliceHay[byte]) int {
	data := h.Data()
	i := simd.MemchrNotInTable(data, &b.membership)
	if i < 0 {
		return len(data)
	}
	return i
}

func (b ByteSet) RSearch(s span.Span[hay.SliceHay[byte]]) (hay.Range, bool) {
	h, r := s.IntoParts()
	i := simd.LastIndexInTable(h.Data()[r.Start:r.End], &b.membership)
	if i < 0 {
		return hay.Range{}, false
	}
	pos := r.Start + i
	return hay.Range{Start: pos, End: pos + 1}, true
}

func (b ByteSet) RConsume(s span.Span[hay.SliceHay[byte]]) (int, bool) {
	h, r := s.IntoParts()
	if r.End <= r.Start || !b.membership[h.Data()[r.End-1]] {
		return 0, false
	}
	return r.End - 1, true
}

// TrimEnd is TrimStart's mirror: the index before the longest run of
// consecutive member bytes ending at h's back.
func (b ByteSet) TrimEnd(h hay.SliceHay[byte]) int {
	data := h.Data()
	i := simd.LastIndexNotInTable(data, &b.membership)
	if i < 0 {
		return 0
	}
	return i + 1
}

var (
	_ Pattern[hay.SliceHay[byte]]              = ByteSet{}
	_ searcher.DoubleEnded[hay.SliceHay[byte]] = ByteSet{}
)
