package core

// abbreviations that a following '.' does not terminate a sentence for.
// Looked up lowercase, without the trailing dot.
var abbreviations = map[string]bool{
	"e.g": true, "i.e": true, "mr": true, "mrs": true, "ms": true,
	"dr": true, "vs": true, "etc": true, "prof": true, "sr": true, "jr": true,
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func lowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func hasDoubleNewline(s []byte, i int) bool {
	return i+1 < len(s) && s[i] == '\n' && s[i+1] == '\n'
}

// isAbbrevBefore reports whether the '.' at index i in s terminates an
// abbreviation rather than a sentence. It scans both behind and ahead of
// i to recover the full alpha-or-dot token the period sits in, so every
// period inside a multi-dot compound like "e.g." or "i.e." resolves the
// same way regardless of which one triggered the check.
func isAbbrevBefore(s []byte, i int) bool {
	if s[i] != '.' {
		return false
	}
	start := i
	for start > 0 && (isAlpha(s[start-1]) || s[start-1] == '.') {
		start--
	}
	end := i + 1
	for end < len(s) && (isAlpha(s[end]) || s[end] == '.') {
		end++
	}
	if end-start < 1 || end-start > 6 {
		return false
	}
	buf := make([]byte, end-start)
	for k := start; k < end; k++ {
		buf[k-start] = lowerASCII(s[k])
	}
	if len(buf) > 0 && buf[len(buf)-1] == '.' {
		buf = buf[:len(buf)-1]
	}
	return abbreviations[string(buf)]
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// SegmentParagraphs splits buf into ParagraphBlocks separated by literal
// "\n\n" blocks of length 2, per §4.1. The final unterminated block (if
// non-empty) is emitted.
func SegmentParagraphs(buf []byte) []ParagraphBlock {
	var blocks []ParagraphBlock
	pstart := 0
	i := 0
	for i < len(buf) {
		if hasDoubleNewline(buf, i) {
			blocks = append(blocks, ParagraphBlock{Span: Span{pstart, i}})
			blocks = append(blocks, ParagraphBlock{Span: Span{i, i + 2}})
			i += 2
			pstart = i
			continue
		}
		i++
	}
	if pstart < len(buf) {
		blocks = append(blocks, ParagraphBlock{Span: Span{pstart, len(buf)}})
	}
	return blocks
}

// SegmentSentences splits buf into sentence spans per §4.1: '.', '?', '!'
// terminate (subject to the abbreviation check for '.'), as does "\n\n".
// Trailing inter-sentence whitespace up to (not including) a "\n\n" is
// absorbed into the preceding sentence.
func SegmentSentences(buf []byte) []Span {
	var spans []Span
	if len(buf) == 0 {
		return spans
	}
	start := 0
	for i := 0; i < len(buf); i++ {
		if hasDoubleNewline(buf, i) {
			if i > start {
				spans = append(spans, Span{start, i})
			}
			spans = append(spans, Span{i, i + 2})
			start = i + 2
			i++
			continue
		}

		c := buf[i]
		if (c == '.' || c == '?' || c == '!') && !(c == '.' && isAbbrevBefore(buf, i)) {
			end := i + 1
			for end < len(buf) && (buf[end] == ' ' || buf[end] == '\t' || buf[end] == '\r' ||
				(buf[end] == '\n' && !hasDoubleNewline(buf, end))) {
				end++
			}
			spans = append(spans, Span{start, end})
			start = end
			if end > 0 {
				i = end - 1
			} else {
				i = end
			}
		}
	}
	if start < len(buf) {
		spans = append(spans, Span{start, len(buf)})
	}
	return spans
}
