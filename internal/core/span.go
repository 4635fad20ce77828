package core

// Span is a half-open byte range [Start, End) into a buffer that outlives
// it. Spans are never re-indexed after creation.
type Span struct {
	Start int
	End   int
}

// Len reports the number of bytes the span covers.
func (s Span) Len() int { return s.End - s.Start }

// Bytes returns the slice of buf the span covers.
func (s Span) Bytes(buf []byte) []byte { return buf[s.Start:s.End] }

// ParagraphBlock is a paragraph-level span, plus dedup bookkeeping. The
// buffer partitions into ParagraphBlocks separated by literal "\n\n"
// blocks of length 2, so that concatenating the surviving blocks in order
// preserves paragraph structure.
type ParagraphBlock struct {
	Span Span
	Drop bool
	Hash uint64
}

// Sentence is a sentence-level span plus the bookkeeping the dedup and
// scoring stages need. Once Drop is true a sentence never re-enters later
// stages.
type Sentence struct {
	Span         Span
	TermFreq     map[string]int
	UniqueTokens []string
	Anchor       bool
	Score        float64
	Drop         bool
}
