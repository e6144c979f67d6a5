// Package match is the consumer layer this core's algorithm packages are
// built to support: it turns pattern.Pattern + searcher.Forward results
// into user-facing operations (find, iterate matches, trim, split,
// replace, starts-/ends-with). It owns no matching algorithm of its own.
package match

import (
	"iter"

	"github.com/coregx/patterncore/hay"
	"github.com/coregx/patterncore/pattern"
	"github.com/coregx/patterncore/searcher"
	"github.com/coregx/patterncore/span"
)

// Match is one reported occurrence of a pattern in a byte or text hay.
type Match struct {
	Start, End int
}

// Find returns the first match of p in data, or false if none.
func Find(data []byte, p pattern.Pattern[hay.SliceHay[byte]]) (Match, bool) {
	h := hay.NewSlice(data)
	r, ok := p.IntoSearcher().Search(span.From[hay.SliceHay[byte]](h))
	if !ok {
		return Match{}, false
	}
	return Match{Start: r.Start, End: r.End}, true
}

// FindAll returns every non-overlapping match of p in data, left to
// right.
func FindAll(data []byte, p pattern.Pattern[hay.SliceHay[byte]]) []Match {
	h := hay.NewSlice(data)
	s := p.IntoSearcher()
	var matches []Match
	pos := h.StartIndex()
	for pos <= h.EndIndex() {
		r, ok := s.Search(span.FromParts[hay.SliceHay[byte]](h, hay.Range{Start: pos, End: h.EndIndex()}))
		if !ok {
			break
		}
		matches = append(matches, Match{Start: r.Start, End: r.End})
		if r.End > pos {
			pos = r.End
		} else {
			pos = h.NextIndex(pos)
		}
	}
	return matches
}

// All returns an iterator over every non-overlapping match of p in data,
// left to right, without materializing the full slice FindAll builds.
// Stopping early (the consumer returning false from yield) stops scanning.
func All(data []byte, p pattern.Pattern[hay.SliceHay[byte]]) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		h := hay.NewSlice(data)
		s := p.IntoSearcher()
		pos := h.StartIndex()
		for pos <= h.EndIndex() {
			r, ok := s.Search(span.FromParts[hay.SliceHay[byte]](h, hay.Range{Start: pos, End: h.EndIndex()}))
			if !ok {
				return
			}
			if !yield(Match{Start: r.Start, End: r.End}) {
				return
			}
			if r.End > pos {
				pos = r.End
			} else {
				pos = h.NextIndex(pos)
			}
		}
	}
}

// Split divides data around every non-overlapping match of p.
func Split(data []byte, p pattern.Pattern[hay.SliceHay[byte]]) [][]byte {
	matches := FindAll(data, p)
	parts := make([][]byte, 0, len(matches)+1)
	prev := 0
	for _, m := range matches {
		parts = append(parts, data[prev:m.Start])
		prev = m.End
	}
	parts = append(parts, data[prev:])
	return parts
}

// Replace substitutes the first n non-overlapping matches of p in data
// with repl. n < 0 replaces all matches.
func Replace(data []byte, p pattern.Pattern[hay.SliceHay[byte]], repl []byte, n int) []byte {
	matches := FindAll(data, p)
	if n >= 0 && n < len(matches) {
		matches = matches[:n]
	}
	var out []byte
	prev := 0
	for _, m := range matches {
		out = append(out, data[prev:m.Start]...)
		out = append(out, repl...)
		prev = m.End
	}
	out = append(out, data[prev:]...)
	return out
}

// TrimPrefix removes p from the front of data, once, if present.
func TrimPrefix(data []byte, p pattern.Pattern[hay.SliceHay[byte]]) []byte {
	h := hay.NewSlice(data)
	pos, ok := p.IntoConsumer().Consume(span.From[hay.SliceHay[byte]](h))
	if !ok {
		return data
	}
	return data[pos:]
}

// TrimSuffix removes p from the back of data, once, if present. It
// requires the consumer searcher for p also implement searcher.Reverse;
// every pattern kind in package pattern does.
func TrimSuffix(data []byte, p pattern.Pattern[hay.SliceHay[byte]]) []byte {
	h := hay.NewSlice(data)
	rev := p.IntoConsumer().(searcher.Reverse[hay.SliceHay[byte]])
	pos, ok := rev.RConsume(span.From[hay.SliceHay[byte]](h))
	if !ok {
		return data
	}
	return data[:pos]
}

// TrimStart repeatedly removes p from the front of data.
func TrimStart(data []byte, p pattern.Pattern[hay.SliceHay[byte]]) []byte {
	h := hay.NewSlice(data)
	pos := p.IntoConsumer().TrimStart(h)
	return data[pos:]
}

// TrimEnd repeatedly removes p from the back of data.
func TrimEnd(data []byte, p pattern.Pattern[hay.SliceHay[byte]]) []byte {
	h := hay.NewSlice(data)
	rev := p.IntoConsumer().(searcher.Reverse[hay.SliceHay[byte]])
	pos := rev.TrimEnd(h)
	return data[:pos]
}

// Trim repeatedly removes p from both the front and back of data.
func Trim(data []byte, p pattern.Pattern[hay.SliceHay[byte]]) []byte {
	return TrimEnd(TrimStart(data, p), p)
}

// StartsWith reports whether p matches at the front of data.
func StartsWith(data []byte, p pattern.Pattern[hay.SliceHay[byte]]) bool {
	h := hay.NewSlice(data)
	_, ok := p.IntoConsumer().Consume(span.From[hay.SliceHay[byte]](h))
	return ok
}

// EndsWith reports whether p matches at the back of data.
func EndsWith(data []byte, p pattern.Pattern[hay.SliceHay[byte]]) bool {
	h := hay.NewSlice(data)
	rev := p.IntoConsumer().(searcher.Reverse[hay.SliceHay[byte]])
	_, ok := rev.RConsume(span.From[hay.SliceHay[byte]](h))
	return ok
}
