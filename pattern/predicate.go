package pattern

import (
	"github.com/coregx/patterncore/hay"
	"github.com/coregx/patterncore/searcher"
	"github.com/coregx/patterncore/span"
)

// Predicate matches any element for which fn reports true. fn must be
// pure — same input always yields the same result, no observable side
// effects — because Predicate claims the DoubleEnded capability on that
// promise; the caller, not this package, is responsible for it.
type Predicate[T any] struct {
	searcher.DoubleEndedTag

	fn func(T) bool
}

// NewPredicate builds a Predicate pattern from fn. fn must be pure.
func NewPredicate[T any](fn func(T) bool) Predicate[T] {
	return Predicate[T]{fn: fn}
}

func (p Predicate[T]) IntoSearcher() searcher.Forward[hay.SliceHay[T]] { return p }
func (p Predicate[T]) IntoConsumer() searcher.Forward[hay.SliceHay[T]] { return p }

func (p Predicate[T]) Search(s span.Span[hay.SliceHay[T]]) (hay.Range, bool) {
	h, r := s.IntoParts()
	data := h.Data()
	for i := r.Start; i < r.End; i++ {
		if p.fn(data[i]) {
			return hay.Range{Start: i, End: i + 1}, true
		}
	}
	return hay.Range{}, false
}

func (p Predicate[T]) Consume(s span.Span[hay.SliceHay[T]]) (int, bool) {
	h, r := s.IntoParts()
	if r.Start >= r.End || !p.fn(h.Data()[r.Start]) {
		return 0, false
	}
	return r.Start + 1, true
}

func (p Predicate[T]) TrimStart(h hay.SliceHay[T]) int {
	return searcher.DefaultTrimStart[hay.SliceHay[T]](p, h)
}

func (p Predicate[T]) RSearch(s span.Span[hay.SliceHay[T]]) (hay.Range, bool) {
	h, r := s.IntoParts()
	data := h.Data()
	for i := r.End; i > r.Start; i-- {
		if p.fn(data[i-1]) {
			return hay.Range{Start: i - 1, End: i}, true
		}
	}
	return hay.Range{}, false
}

func (p Predicate[T]) RConsume(s span.Span[hay.SliceHay[T]]) (int, bool) {
	h, r := s.IntoParts()
	if r.End <= r.Start || !p.fn(h.Data()[r.End-1]) {
		return 0, false
	}
	return r.End - 1, true
}

func (p Predicate[T]) TrimEnd(h hay.SliceHay[T]) int {
	return searcher.DefaultTrimEnd[hay.SliceHay[T]](p, h)
}

var (
	_ Pattern[hay.SliceHay[byte]]              = Predicate[byte]{}
	_ searcher.DoubleEnded[hay.SliceHay[byte]] = Predicate[byte]{}
)
