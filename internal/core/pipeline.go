// Package core implements the compression pipeline: paragraph-block
// dedup, sentence segmentation, per-sentence near-duplicate detection,
// TF-IDF scoring, anchor protection, and deterministic drop selection.
// It is a pure, single-pass-per-stage transform: no logging, no
// goroutines, no reliance on map iteration order for output bytes.
package core

import "contextsqueeze/internal/metrics"

// Compress runs the full pipeline over buf at the given aggressiveness
// (already clamped to [0,9] by the caller) and returns the surviving
// bytes in original order. Compress does not special-case aggressiveness
// 0 or empty input; callers handle those per §6 before calling in.
func Compress(buf []byte, aggressiveness int) []byte {
	blocks := SegmentParagraphs(buf)
	DedupBlocks(buf, blocks, aggressiveness)
	filtered := FilterBlocks(buf, blocks)

	spans := SegmentSentences(filtered)
	if len(spans) == 0 {
		return filtered
	}
	metrics.AddSentences(uint64(len(spans)))

	sentences := make([]Sentence, len(spans))
	for i, sp := range spans {
		sv := sp.Bytes(filtered)
		tf, keys, tokenCount := TermFreq(sv)
		metrics.AddTokens(uint64(tokenCount))
		sentences[i] = Sentence{
			Span:         sp,
			TermFreq:     tf,
			UniqueTokens: keys,
			Anchor:       IsAnchor(sv),
		}
	}

	DedupSentences(sentences, aggressiveness)
	ScoreAndSelect(sentences, aggressiveness)

	return Emit(filtered, sentences)
}
