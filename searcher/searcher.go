// Package searcher defines the three-tier capability hierarchy every
// pattern-specific matcher in package pattern implements, plus the one
// searcher that needs no pattern-specific state at all: Empty.
//
// The hierarchy is a chain of widening interfaces (Forward -> Reverse ->
// DoubleEnded). The returned ranges must lie on codeword boundaries for
// callers to slice without re-validating; the type system cannot enforce
// that, so the obligation is carried only in documentation and in the
// "unchecked" naming used throughout package hay and package span.
package searcher

import (
	"github.com/coregx/patterncore/hay"
	"github.com/coregx/patterncore/span"
)

// Forward searches for non-overlapping matches of a pattern starting from
// the front of a hay.
type Forward[H hay.Hay] interface {
	// Search returns the first match range within span, or false if the
	// pattern does not occur there. The returned range is always
	// contained in span's restricted range.
	Search(s span.Span[H]) (hay.Range, bool)

	// Consume checks whether the pattern occurs at the very front of
	// span's restricted range and, if so, returns the end index of that
	// occurrence.
	Consume(s span.Span[H]) (int, bool)

	// TrimStart repeatedly removes a prefix matching the pattern and
	// returns the index past the last one removed.
	TrimStart(h H) int
}

// Reverse extends Forward with the mirror-image operations needed to
// search, consume, and trim from the back of a hay.
type Reverse[H hay.Hay] interface {
	Forward[H]

	// RSearch returns the last match range within span, or false if none.
	RSearch(s span.Span[H]) (hay.Range, bool)

	// RConsume checks whether the pattern occurs at the very back of
	// span's restricted range and, if so, returns the start index of that
	// occurrence.
	RConsume(s span.Span[H]) (int, bool)

	// TrimEnd repeatedly removes a suffix matching the pattern and
	// returns the index before the last one removed.
	TrimEnd(h H) int
}

// DoubleEnded is a capability marker: a searcher only implements it when
// its forward and reverse enumerations of matches are exact reverses of
// each other. Sub-sequence search (the Two-Way engine) does not claim
// this — see twoway and pattern.Subsequence.
type DoubleEnded[H hay.Hay] interface {
	Reverse[H]

	// doubleEnded is unexported so the marker can only be claimed by
	// embedding DoubleEndedTag; a type gaining it by accident (merely
	// implementing Reverse) would silently break the reversal-agreement
	// property callers rely on.
	doubleEnded()
}

// DoubleEndedTag is embedded by a searcher to claim the DoubleEnded
// capability. Embedding it is the only way to satisfy the marker from
// outside this package.
type DoubleEndedTag struct{}

func (DoubleEndedTag) doubleEnded() {}

// DefaultTrimStart implements Forward.TrimStart purely in terms of Consume:
// loop on Consume, stopping once it stops advancing or the span empties.
// Searchers with a cheaper specialization (package twoway's naive trim)
// should not call this.
func DefaultTrimStart[H hay.Hay](f Forward[H], h H) int {
	offset := h.StartIndex()
	r := hay.Range{Start: h.StartIndex(), End: h.EndIndex()}
	for {
		pos, ok := f.Consume(span.FromParts(h, r))
		if !ok {
			return offset
		}
		offset = pos
		if pos == r.Start {
			return offset
		}
		r = hay.Range{Start: pos, End: r.End}
	}
}

// DefaultTrimEnd implements Reverse.TrimEnd in terms of RConsume,
// symmetric to DefaultTrimStart.
func DefaultTrimEnd[H hay.Hay](r Reverse[H], h H) int {
	offset := h.EndIndex()
	rng := hay.Range{Start: h.StartIndex(), End: h.EndIndex()}
	for {
		pos, ok := r.RConsume(span.FromParts(h, rng))
		if !ok {
			return offset
		}
		offset = pos
		if pos == rng.End {
			return offset
		}
		rng = hay.Range{Start: rng.Start, End: pos}
	}
}
