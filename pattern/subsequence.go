package pattern

import (
	"github.com/coregx/patterncore/hay"
	"github.com/coregx/patterncore/searcher"
	"github.com/coregx/patterncore/span"
	"github.com/coregx/patterncore/twoway"
)

// Subsequence matches a (possibly multi-element) needle anywhere in a
// slice hay. A non-empty needle searches with the Two-Way engine and
// consumes with the naive anchored checker — the two roles may
// legitimately use different algorithms; an empty needle dispatches to
// searcher.Empty for both, checking needle length before ever constructing
// the Two-Way state.
type Subsequence[T twoway.Elem] struct {
	needle []T
}

// NewSubsequence builds a Subsequence pattern matching needle.
func NewSubsequence[T twoway.Elem](needle []T) Subsequence[T] {
	return Subsequence[T]{needle: needle}
}

func (p Subsequence[T]) IntoSearcher() searcher.Forward[hay.SliceHay[T]] {
	if len(p.needle) == 0 {
		return searcher.Empty[hay.SliceHay[T]]{}
	}
	return &subsequenceSearcher[T]{inner: twoway.New(p.needle)}
}

func (p Subsequence[T]) IntoConsumer() searcher.Forward[hay.SliceHay[T]] {
	if len(p.needle) == 0 {
		return searcher.Empty[hay.SliceHay[T]]{}
	}
	return &subsequenceConsumer[T]{needle: p.needle, cons: twoway.NewConsumer(p.needle)}
}

// subsequenceSearcher adapts twoway.Searcher[T] to searcher.Reverse.
type subsequenceSearcher[T twoway.Elem] struct {
	inner *twoway.Searcher[T]
}

func (s *subsequenceSearcher[T]) Search(sp span.Span[hay.SliceHay[T]]) (hay.Range, bool) {
	h, r := sp.IntoParts()
	start, end, ok := s.inner.Next(h.Data(), r.Start, r.End)
	if !ok {
		return hay.Range{}, false
	}
	return hay.Range{Start: start, End: end}, true
}

func (s *subsequenceSearcher[T]) Consume(sp span.Span[hay.SliceHay[T]]) (int, bool) {
	h, r := sp.IntoParts()
	start, end, ok := s.inner.Next(h.Data(), r.Start, r.End)
	if !ok || start != r.Start {
		return 0, false
	}
	return end, true
}

func (s *subsequenceSearcher[T]) TrimStart(h hay.SliceHay[T]) int {
	return searcher.DefaultTrimStart[hay.SliceHay[T]](s, h)
}

func (s *subsequenceSearcher[T]) RSearch(sp span.Span[hay.SliceHay[T]]) (hay.Range, bool) {
	h, r := sp.IntoParts()
	start, end, ok := s.inner.NextBack(h.Data(), r.Start, r.End)
	if !ok {
		return hay.Range{}, false
	}
	return hay.Range{Start: start, End: end}, true
}

func (s *subsequenceSearcher[T]) RConsume(sp span.Span[hay.SliceHay[T]]) (int, bool) {
	h, r := sp.IntoParts()
	start, end, ok := s.inner.NextBack(h.Data(), r.Start, r.End)
	if !ok || end != r.End {
		return 0, false
	}
	return start, true
}

func (s *subsequenceSearcher[T]) TrimEnd(h hay.SliceHay[T]) int {
	return searcher.DefaultTrimEnd[hay.SliceHay[T]](s, h)
}

// subsequenceConsumer adapts twoway.Consumer[T] (anchored, no
// preprocessing) to searcher.Reverse, used for the IntoConsumer role
// where only Consume/RConsume/TrimStart/TrimEnd ever get called.
type subsequenceConsumer[T twoway.Elem] struct {
	needle []T
	cons   twoway.Consumer[T]
}

func (c *subsequenceConsumer[T]) Search(sp span.Span[hay.SliceHay[T]]) (hay.Range, bool) {
	pos, ok := c.Consume(sp)
	if !ok {
		return hay.Range{}, false
	}
	r := sp.Range()
	return hay.Range{Start: r.Start, End: pos}, true
}

func (c *subsequenceConsumer[T]) Consume(sp span.Span[hay.SliceHay[T]]) (int, bool) {
	h, r := sp.IntoParts()
	if !c.cons.IsPrefixOf(h.Data()[r.Start:r.End]) {
		return 0, false
	}
	return r.Start + len(c.needle), true
}

func (c *subsequenceConsumer[T]) TrimStart(h hay.SliceHay[T]) int {
	return c.cons.TrimStart(h.Data())
}

func (c *subsequenceConsumer[T]) RSearch(sp span.Span[hay.SliceHay[T]]) (hay.Range, bool) {
	pos, ok := c.RConsume(sp)
	if !ok {
		return hay.Range{}, false
	}
	r := sp.Range()
	return hay.Range{Start: pos, End: r.End}, true
}

func (c *subsequenceConsumer[T]) RConsume(sp span.Span[hay.SliceHay[T]]) (int, bool) {
	h, r := sp.IntoParts()
	if !c.cons.IsSuffixOf(h.Data()[r.Start:r.End]) {
		return 0, false
	}
	return r.End - len(c.needle), true
}

func (c *subsequenceConsumer[T]) TrimEnd(h hay.SliceHay[T]) int {
	return c.cons.TrimEnd(h.Data())
}

var (
	_ Pattern[hay.SliceHay[byte]]          = Subsequence[byte]{}
	_ searcher.Reverse[hay.SliceHay[byte]] = &subsequenceSearcher[byte]{}
	_ searcher.Reverse[hay.SliceHay[byte]] = &subsequenceConsumer[byte]{}
)
