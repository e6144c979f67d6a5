package searcher

import (
	"github.com/coregx/patterncore/hay"
	"github.com/coregx/patterncore/span"
)

// Empty implements DoubleEnded for the empty pattern: it matches a
// zero-width range at every codeword boundary, including both ends of an
// empty hay.
//
// Empty carries no state: every method is a pure function of the span it's
// given. A stateful searcher would instead track consumed-start/consumed-end
// flags on an internal scanning cursor that advances on every call; here the
// cursor lives in the caller (package match's Find/Split loops), which must
// itself step one codeword past a zero-width match to avoid reporting the
// same boundary twice. That split keeps Empty safe to share across
// goroutines and share across a forward/backward scan pair.
type Empty[H hay.Hay] struct{}

// Search reports a zero-width match at the front of span's restricted
// range. An empty pattern always matches, even against an empty span.
func (Empty[H]) Search(s span.Span[H]) (hay.Range, bool) {
	r := s.Range()
	return hay.Range{Start: r.Start, End: r.Start}, true
}

// Consume always succeeds without advancing past the span's start.
func (Empty[H]) Consume(s span.Span[H]) (int, bool) {
	return s.Range().Start, true
}

// TrimStart is a no-op: removing a zero-width prefix changes nothing.
func (Empty[H]) TrimStart(h H) int {
	return h.StartIndex()
}

// RSearch reports a zero-width match at the back of span's restricted
// range.
func (Empty[H]) RSearch(s span.Span[H]) (hay.Range, bool) {
	r := s.Range()
	return hay.Range{Start: r.End, End: r.End}, true
}

// RConsume always succeeds without moving past the span's end.
func (Empty[H]) RConsume(s span.Span[H]) (int, bool) {
	return s.Range().End, true
}

// TrimEnd is a no-op for the same reason as TrimStart.
func (Empty[H]) TrimEnd(h H) int {
	return h.EndIndex()
}

func (Empty[H]) doubleEnded() {}

var (
	_ Forward[hay.SliceHay[byte]]     = Empty[hay.SliceHay[byte]]{}
	_ DoubleEnded[hay.SliceHay[byte]] = Empty[hay.SliceHay[byte]]{}
)
