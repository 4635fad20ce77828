// Package metrics holds process-global, best-effort observability
// counters for the compression pipeline. They are a collaborator, not a
// core concern: nothing in the pipeline's output depends on them, and
// concurrent calls that share them may interleave increments.
package metrics

import "sync/atomic"

// Snapshot is a point-in-time read of the counters.
type Snapshot struct {
	TokensParsed               uint64
	SentencesTotal             uint64
	SimilarityCandidatesChecked uint64
	SimilarityPairsCompared    uint64
}

var (
	tokensParsed                uint64
	sentencesTotal              uint64
	similarityCandidatesChecked uint64
	similarityPairsCompared     uint64
)

// Reset zeroes all counters. Called at the start of every squeeze call.
func Reset() {
	atomic.StoreUint64(&tokensParsed, 0)
	atomic.StoreUint64(&sentencesTotal, 0)
	atomic.StoreUint64(&similarityCandidatesChecked, 0)
	atomic.StoreUint64(&similarityPairsCompared, 0)
}

// AddTokens increments tokens_parsed, called after tokenization.
func AddTokens(n uint64) {
	if n != 0 {
		atomic.AddUint64(&tokensParsed, n)
	}
}

// AddSentences increments sentences_total, called after segmentation.
func AddSentences(n uint64) {
	if n != 0 {
		atomic.AddUint64(&sentencesTotal, n)
	}
}

// AddCandidates increments similarity_candidates_checked, called before
// the dedup inner loop for each sentence.
func AddCandidates(n uint64) {
	if n != 0 {
		atomic.AddUint64(&similarityCandidatesChecked, n)
	}
}

// AddPairs increments similarity_pairs_compared, called inside the dedup
// inner loop for each cosine comparison performed.
func AddPairs(n uint64) {
	if n != 0 {
		atomic.AddUint64(&similarityPairsCompared, n)
	}
}

// Get returns a snapshot of the current counters.
func Get() Snapshot {
	return Snapshot{
		TokensParsed:                atomic.LoadUint64(&tokensParsed),
		SentencesTotal:              atomic.LoadUint64(&sentencesTotal),
		SimilarityCandidatesChecked: atomic.LoadUint64(&similarityCandidatesChecked),
		SimilarityPairsCompared:     atomic.LoadUint64(&similarityPairsCompared),
	}
}
