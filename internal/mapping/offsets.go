package mapping

import (
	"unicode/utf8"

	"github.com/varspan/varspan/internal/invariant"
)

// CodepointIndex converts between code-point indices (the unit the engine
// operates on internally, per SPEC_FULL.md §4.6) and byte offsets into the
// original text (the unit consumers see).
type CodepointIndex struct {
	// byteOffset[i] is the byte offset of the i-th code point. An extra
	// trailing entry holds len(text), so End-of-text is representable.
	byteOffset []int
	text       string
}

// NewCodepointIndex builds the offset table for text in a single pass.
func NewCodepointIndex(text string) *CodepointIndex {
	offsets := make([]int, 0, len(text)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(text))
	return &CodepointIndex{byteOffset: offsets, text: text}
}

// Len returns the number of code points in the indexed text.
func (c *CodepointIndex) Len() int {
	if len(c.byteOffset) == 0 {
		return 0
	}
	return len(c.byteOffset) - 1
}

// ByteOffset converts a code-point index (0..Len()) to a byte offset. A
// codepoint index the engine itself produced should never fall outside
// [0, Len()]; anything else is a bug in the caller, not malformed input.
func (c *CodepointIndex) ByteOffset(codepoint int) int {
	invariant.Check(codepoint >= 0 && codepoint < len(c.byteOffset), "codepoint index %d out of bounds (len=%d)", codepoint, c.Len())
	return c.byteOffset[codepoint]
}

// RuneAt returns the rune starting at the given code-point index.
func (c *CodepointIndex) RuneAt(codepoint int) rune {
	invariant.Check(codepoint >= 0 && codepoint < c.Len(), "codepoint index %d out of bounds (len=%d)", codepoint, c.Len())
	r, _ := utf8.DecodeRuneInString(c.text[c.byteOffset[codepoint]:])
	return r
}
