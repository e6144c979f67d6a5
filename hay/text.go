package hay

import (
	"unicode/utf8"

	"github.com/coregx/patterncore/simd"
)

// Text is a Hay over UTF-8 text. Its index type is the byte offset, but its
// codeword is a full scalar value (rune): NextIndex/PrevIndex always land on
// a rune boundary, never inside a multi-byte encoding.
//
// asciiPrefix is the offset of the first non-ASCII byte, located once at
// construction. Below it every byte is its own codeword, so boundary
// navigation there is plain +1/-1 arithmetic; only positions at or past it
// pay for a UTF-8 decode. For all-ASCII text — overwhelmingly the common
// case for log lines, identifiers, and most structured text — the prefix
// covers the whole string and no step ever decodes.
type Text struct {
	s           string
	b           []byte
	asciiPrefix int
}

// NewText wraps s as a Hay. The byte view handed to the Two-Way engine is
// built here, once, so no Search call over this hay allocates.
func NewText(s string) Text {
	b := []byte(s)
	return Text{s: s, b: b, asciiPrefix: simd.FirstNonASCII(b)}
}

// String returns the full underlying text.
func (h Text) String() string { return h.s }

// Bytes returns the underlying text as a byte slice, for delegating
// sub-sequence search to the byte-level Two-Way engine (see pattern.Text).
// Callers must not mutate it.
func (h Text) Bytes() []byte { return h.b }

// Slice returns the sub-hay covering the byte range r. Both endpoints must
// already lie on rune boundaries of h. The ASCII prefix is inherited rather
// than recomputed: it stays a guarantee (every byte below it is ASCII)
// without necessarily being maximal for the sliced text.
func (h Text) Slice(r Range) Text {
	prefix := 0
	if h.asciiPrefix > r.Start {
		prefix = min(h.asciiPrefix, r.End) - r.Start
	}
	return Text{s: h.s[r.Start:r.End], b: h.b[r.Start:r.End], asciiPrefix: prefix}
}

// At decodes the rune starting at byte offset i and returns it along with
// its width in bytes. i must lie on a rune boundary strictly less than
// EndIndex().
func (h Text) At(i int) (rune, int) {
	if i < h.asciiPrefix {
		return rune(h.s[i]), 1
	}
	return utf8.DecodeRuneInString(h.s[i:])
}

func (h Text) StartIndex() int { return 0 }
func (h Text) EndIndex() int   { return len(h.s) }

func (h Text) NextIndex(i int) int {
	if i < h.asciiPrefix {
		return i + 1
	}
	_, size := utf8.DecodeRuneInString(h.s[i:])
	return i + size
}

func (h Text) PrevIndex(i int) int {
	if i <= h.asciiPrefix {
		return i - 1
	}
	_, size := utf8.DecodeLastRuneInString(h.s[:i])
	return i - size
}
