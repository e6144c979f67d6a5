package match

import (
	"iter"
	"strings"

	"github.com/coregx/patterncore/hay"
	"github.com/coregx/patterncore/pattern"
	"github.com/coregx/patterncore/searcher"
	"github.com/coregx/patterncore/span"
)

// FindString returns the first match of p in s, or false if none.
func FindString(s string, p pattern.Pattern[hay.Text]) (Match, bool) {
	h := hay.NewText(s)
	r, ok := p.IntoSearcher().Search(span.From[hay.Text](h))
	if !ok {
		return Match{}, false
	}
	return Match{Start: r.Start, End: r.End}, true
}

// FindAllString returns every non-overlapping match of p in s, left to
// right.
func FindAllString(s string, p pattern.Pattern[hay.Text]) []Match {
	h := hay.NewText(s)
	se := p.IntoSearcher()
	var matches []Match
	pos := h.StartIndex()
	for pos <= h.EndIndex() {
		r, ok := se.Search(span.FromParts[hay.Text](h, hay.Range{Start: pos, End: h.EndIndex()}))
		if !ok {
			break
		}
		matches = append(matches, Match{Start: r.Start, End: r.End})
		if r.End > pos {
			pos = r.End
		} else if pos == h.EndIndex() {
			// The span is already exhausted (e.g. the boundary match an
			// empty pattern reports at the very end of s) — there is no
			// codeword left to step over, and pos is no longer strictly
			// less than EndIndex(), so NextIndex's boundary precondition
			// no longer holds. Stop instead of calling it.
			break
		} else {
			pos = h.NextIndex(pos)
		}
	}
	return matches
}

// AllString returns an iterator over every non-overlapping match of p in
// s, left to right, without materializing the full slice FindAllString
// builds. Stopping early (the consumer returning false from yield) stops
// scanning.
func AllString(s string, p pattern.Pattern[hay.Text]) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		h := hay.NewText(s)
		se := p.IntoSearcher()
		pos := h.StartIndex()
		for pos <= h.EndIndex() {
			r, ok := se.Search(span.FromParts[hay.Text](h, hay.Range{Start: pos, End: h.EndIndex()}))
			if !ok {
				return
			}
			if !yield(Match{Start: r.Start, End: r.End}) {
				return
			}
			if r.End > pos {
				pos = r.End
			} else if pos == h.EndIndex() {
				// See FindAllString: nothing left to step over once pos
				// has reached EndIndex(), and NextIndex requires a
				// boundary strictly less than it.
				return
			} else {
				pos = h.NextIndex(pos)
			}
		}
	}
}

// SplitString divides s around every non-overlapping match of p.
func SplitString(s string, p pattern.Pattern[hay.Text]) []string {
	matches := FindAllString(s, p)
	parts := make([]string, 0, len(matches)+1)
	prev := 0
	for _, m := range matches {
		parts = append(parts, s[prev:m.Start])
		prev = m.End
	}
	parts = append(parts, s[prev:])
	return parts
}

// ReplaceString substitutes the first n non-overlapping matches of p in s
// with repl. n < 0 replaces all matches.
func ReplaceString(s string, p pattern.Pattern[hay.Text], repl string, n int) string {
	matches := FindAllString(s, p)
	if n >= 0 && n < len(matches) {
		matches = matches[:n]
	}
	var b strings.Builder
	prev := 0
	for _, m := range matches {
		b.WriteString(s[prev:m.Start])
		b.WriteString(repl)
		prev = m.End
	}
	b.WriteString(s[prev:])
	return b.String()
}

// TrimPrefixString removes p from the front of s, once, if present.
func TrimPrefixString(s string, p pattern.Pattern[hay.Text]) string {
	h := hay.NewText(s)
	pos, ok := p.IntoConsumer().Consume(span.From[hay.Text](h))
	if !ok {
		return s
	}
	return s[pos:]
}

// TrimSuffixString removes p from the back of s, once, if present.
func TrimSuffixString(s string, p pattern.Pattern[hay.Text]) string {
	h := hay.NewText(s)
	rev := p.IntoConsumer().(searcher.Reverse[hay.Text])
	pos, ok := rev.RConsume(span.From[hay.Text](h))
	if !ok {
		return s
	}
	return s[:pos]
}

// TrimStartString repeatedly removes p from the front of s.
func TrimStartString(s string, p pattern.Pattern[hay.Text]) string {
	h := hay.NewText(s)
	pos := p.IntoConsumer().TrimStart(h)
	return s[pos:]
}

// TrimEndString repeatedly removes p from the back of s.
func TrimEndString(s string, p pattern.Pattern[hay.Text]) string {
	h := hay.NewText(s)
	rev := p.IntoConsumer().(searcher.Reverse[hay.Text])
	pos := rev.TrimEnd(h)
	return s[:pos]
}

// TrimString repeatedly removes p from both ends of s.
func TrimString(s string, p pattern.Pattern[hay.Text]) string {
	return TrimEndString(TrimStartString(s, p), p)
}

// StartsWithString reports whether p matches at the front of s.
func StartsWithString(s string, p pattern.Pattern[hay.Text]) bool {
	h := hay.NewText(s)
	_, ok := p.IntoConsumer().Consume(span.From[hay.Text](h))
	return ok
}

// EndsWithString reports whether p matches at the back of s.
func EndsWithString(s string, p pattern.Pattern[hay.Text]) bool {
	h := hay.NewText(s)
	rev := p.IntoConsumer().(searcher.Reverse[hay.Text])
	_, ok := rev.RConsume(span.From[hay.Text](h))
	return ok
}
