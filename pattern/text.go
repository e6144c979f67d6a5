package pattern

import (
	"github.com/coregx/patterncore/hay"
	"github.com/coregx/patterncore/searcher"
	"github.com/coregx/patterncore/span"
	"github.com/coregx/patterncore/twoway"
)

// Text matches a contiguous run of text anywhere in a hay.Text. It
// delegates to the byte-level Two-Way engine over the UTF-8 encoding of
// both needle and haystack; because a valid (non-empty) text pattern is
// itself valid UTF-8, every match the byte engine reports starts and ends
// on a rune boundary in the source text, so ranges are returned unchanged
// rather than re-validated.
type Text struct {
	needle string
}

// NewText builds a Text pattern matching needle.
func NewText(needle string) Text {
	return Text{needle: needle}
}

func (p Text) IntoSearcher() searcher.Forward[hay.Text] {
	if len(p.needle) == 0 {
		return searcher.Empty[hay.Text]{}
	}
	return &textSearcher{inner: twoway.New([]byte(p.needle))}
}

func (p Text) IntoConsumer() searcher.Forward[hay.Text] {
	if len(p.needle) == 0 {
		return searcher.Empty[hay.Text]{}
	}
	return &textConsumer{needle: []byte(p.needle), cons: twoway.NewConsumer([]byte(p.needle))}
}

type textSearcher struct {
	inner *twoway.Searcher[byte]
}

func (s *textSearcher) Search(sp span.Span[hay.Text]) (hay.Range, bool) {
	h, r := sp.IntoParts()
	start, end, ok := s.inner.Next(h.Bytes(), r.Start, r.End)
	if !ok {
		return hay.Range{}, false
	}
	return hay.Range{Start: start, End: end}, true
}

func (s *textSearcher) Consume(sp span.Span[hay.Text]) (int, bool) {
	h, r := sp.IntoParts()
	start, end, ok := s.inner.Next(h.Bytes(), r.Start, r.End)
	if !ok || start != r.Start {
		return 0, false
	}
	return end, true
}

func (s *textSearcher) TrimStart(h hay.Text) int {
	return searcher.DefaultTrimStart[hay.Text](s, h)
}

func (s *textSearcher) RSearch(sp span.Span[hay.Text]) (hay.Range, bool) {
	h, r := sp.IntoParts()
	start, end, ok := s.inner.NextBack(h.Bytes(), r.Start, r.End)
	if !ok {
		return hay.Range{}, false
	}
	return hay.Range{Start: start, End: end}, true
}

func (s *textSearcher) RConsume(sp span.Span[hay.Text]) (int, bool) {
	h, r := sp.IntoParts()
	start, end, ok := s.inner.NextBack(h.Bytes(), r.Start, r.End)
	if !ok || end != r.End {
		return 0, false
	}
	return start, true
}

func (s *textSearcher) TrimEnd(h hay.Text) int {
	return searcher.DefaultTrimEnd[hay.Text](s, h)
}

type textConsumer struct {
	needle []byte
	cons   twoway.Consumer[byte]
}

func (c *textConsumer) Search(sp span.Span[hay.Text]) (hay.Range, bool) {
	pos, ok := c.Consume(sp)
	if !ok {
		return hay.Range{}, false
	}
	r := sp.Range()
	return hay.Range{Start: r.Start, End: pos}, true
}

func (c *textConsumer) Consume(sp span.Span[hay.Text]) (int, bool) {
	h, r := sp.IntoParts()
	if !c.cons.IsPrefixOf(h.Bytes()[r.Start:r.End]) {
		return 0, false
	}
	return r.Start + len(c.needle), true
}

func (c *textConsumer) TrimStart(h hay.Text) int {
	return c.cons.TrimStart(h.Bytes())
}

func (c *textConsumer) RSearch(sp span.Span[hay.Text]) (hay.Range, bool) {
	pos, ok := c.RConsume(sp)
	if !ok {
		return hay.Range{}, false
	}
	r := sp.Range()
	return hay.Range{Start: pos, End: r.End}, true
}

func (c *textConsumer) RConsume(sp span.Span[hay.Text]) (int, bool) {
	h, r := sp.IntoParts()
	if !c.cons.IsSuffixOf(h.Bytes()[r.Start:r.End]) {
		return 0, false
	}
	return r.End - len(c.needle), true
}

func (c *textConsumer) TrimEnd(h hay.Text) int {
	return c.cons.TrimEnd(h.Bytes())
}

var (
	_ Pattern[hay.Text]          = Text{}
	_ searcher.Reverse[hay.Text] = &textSearcher{}
	_ searcher.Reverse[hay.Text] = &textConsumer{}
)
