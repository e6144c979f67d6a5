package pattern

import (
	"github.com/coregx/patterncore/hay"
	"github.com/coregx/patterncore/searcher"
	"github.com/coregx/patterncore/span"
)

// TextPredicate is Predicate specialized to hay.Text: fn is tested against
// decoded runes rather than raw bytes, and matches are always whole
// codewords wide (1-4 bytes).
type TextPredicate struct {
	searcher.DoubleEndedTag

	fn func(rune) bool
}

// NewTextPredicate builds a rune predicate pattern over hay.Text. fn must
// be pure.
func NewTextPredicate(fn func(rune) bool) TextPredicate {
	return TextPredicate{fn: fn}
}

func (p TextPredicate) IntoSearcher() searcher.Forward[hay.Text] { return p }
func (p TextPredicate) IntoConsumer() searcher.Forward[hay.Text] { return p }

func (p TextPredicate) Search(s span.Span[hay.Text]) (hay.Range, bool) {
	h, r := s.IntoParts()
	for i := r.Start; i < r.End; i = h.NextIndex(i) {
		ch, size := h.At(i)
		if p.fn(ch) {
			return hay.Range{Start: i, End: i + size}, true
		}
	}
	return hay.Range{}, false
}

func (p TextPredicate) Consume(s span.Span[hay.Text]) (int, bool) {
	h, r := s.IntoParts()
	if r.Start >= r.End {
		return 0, false
	}
	ch, size := h.At(r.Start)
	if !p.fn(ch) {
		return 0, false
	}
	return r.Start + size, true
}

func (p TextPredicate) TrimStart(h hay.Text) int {
	return searcher.DefaultTrimStart[hay.Text](p, h)
}

func (p TextPredicate) RSearch(s span.Span[hay.Text]) (hay.Range, bool) {
	h, r := s.IntoParts()
	for i := r.End; i > r.Start; {
		prev := h.PrevIndex(i)
		ch, _ := h.At(prev)
		if p.fn(ch) {
			return hay.Range{Start: prev, End: i}, true
		}
		i = prev
	}
	return hay.Range{}, false
}

func (p TextPredicate) RConsume(s span.Span[hay.Text]) (int, bool) {
	h, r := s.IntoParts()
	if r.End <= r.Start {
		return 0, false
	}
	prev := h.PrevIndex(r.End)
	ch, _ := h.At(prev)
	if !p.fn(ch) {
		return 0, false
	}
	return prev, true
}

func (p TextPredicate) TrimEnd(h hay.Text) int {
	return searcher.DefaultTrimEnd[hay.Text](p, h)
}

var (
	_ Pattern[hay.Text]              = TextPredicate{}
	_ searcher.DoubleEnded[hay.Text] = TextPredicate{}
)
