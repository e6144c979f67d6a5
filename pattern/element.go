package pattern

import (
	"github.com/coregx/patterncore/hay"
	"github.com/coregx/patterncore/searcher"
	"github.com/coregx/patterncore/simd"
	"github.com/coregx/patterncore/span"
)

// Element matches a single fixed value of type T. It scans one element at
// a time and is double-ended: forward and reverse enumeration of matches
// are exact reverses of each other because a single-element match can
// never straddle or overlap another in a way the two directions would
// disagree on.
type Element[T comparable] struct {
	searcher.DoubleEndedTag

	v T
}

// NewElement builds an Element pattern matching v.
func NewElement[T comparable](v T) Element[T] {
	return Element[T]{v: v}
}

func (e Element[T]) IntoSearcher() searcher.Forward[hay.SliceHay[T]] { return e }
func (e Element[T]) IntoConsumer() searcher.Forward[hay.SliceHay[T]] { return e }

// Search finds the first occurrence of e.v in span's restricted range. For
// byte elements this delegates to simd.Memchr's SWAR scan instead of the
// naive byte-by-byte loop used for every other element type.
func (e Element[T]) Search(s span.Span[hay.SliceHay[T]]) (hay.Range, bool) {
	h, r := s.IntoParts()
	data := h.Data()
	if b, ok := any(e.v).(byte); ok {
		bytes := any(data).([]byte)
		i := simd.Memchr(bytes[r.Start:r.End], b)
		if i < 0 {
			return hay.Range{}, false
		}
		pos := r.Start + i
		return hay.Range{Start: pos, End: pos + 1}, true
	}
	for i := r.Start; i < r.End; i++ {
		if data[i] == e.v {
			return hay.Range{Start: i, End: i + 1}, true
		}
	}
	return hay.Range{}, false
}

func (e Element[T]) Consume(s span.Span[hay.SliceHay[T]]) (int, bool) {
	h, r := s.IntoParts()
	if r.Start >= r.End || h.Data()[r.Start] != e.v {
		return 0, false
	}
	return r.Start + 1, true
}

func (e Element[T]) TrimStart(h hay.SliceHay[T]) int {
	return searcher.DefaultTrimStart[hay.SliceHay[T]](e, h)
}

func (e Element[T]) RSearch(s span.Span[hay.SliceHay[T]]) (hay.Range, bool) {
	h, r := s.IntoParts()
	data := h.Data()
	if b, ok := any(e.v).(byte); ok {
		bytes := any(data).([]byte)
		i := simd.LastIndex(bytes[r.Start:r.End], b)
		if i < 0 {
			return hay.Range{}, false
		}
		pos := r.Start + i
		return hay.Range{Start: pos, End: pos + 1}, true
	}
	for i := r.End; i > r.Start; i-- {
		if data[i-1] == e.v {
			return hay.Range{Start: i - 1, End: i}, true
		}
	}
	return hay.Range{}, false
}

func (e Element[T]) RConsume(s span.Span[hay.SliceHay[T]]) (int, bool) {
	h, r := s.IntoParts()
	if r.End <= r.Start || h.Data()[r.End-1] != e.v {
		return 0, false
	}
	return r.End - 1, true
}

func (e Element[T]) TrimEnd(h hay.SliceHay[T]) int {
	return searcher.DefaultTrimEnd[hay.SliceHay[T]](e, h)
}

var (
	_ Pattern[hay.SliceHay[byte]]              = Element[byte]{}
	_ searcher.DoubleEnded[hay.SliceHay[byte]] = Element[byte]{}
)
