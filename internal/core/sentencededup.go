package core

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"contextsqueeze/internal/metrics"
)

// DupThreshold returns the cosine-similarity floor above which a later
// sentence in the same bucket is considered a duplicate, per §4.5.
func DupThreshold(aggressiveness int) float64 {
	switch {
	case aggressiveness <= 3:
		return 0.95
	case aggressiveness <= 6:
		return 0.90
	default:
		return 0.85
	}
}

// bucketKey builds the BucketKey from §4.5: length-bucket (span length /
// 20) concatenated with the top-3 tokens by count desc, lex asc.
func bucketKey(span Span, tf map[string]int) string {
	type tc struct {
		term  string
		count int
	}
	pairs := make([]tc, 0, len(tf))
	for t, c := range tf {
		pairs = append(pairs, tc{t, c})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].count != pairs[j].count {
			return pairs[i].count > pairs[j].count
		}
		return pairs[i].term < pairs[j].term
	})
	n := len(pairs)
	if n > 3 {
		n = 3
	}
	top := make([]string, n)
	for i := 0; i < n; i++ {
		top[i] = pairs[i].term
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d", span.Len()/20)
	for _, t := range top {
		b.WriteByte('|')
		b.WriteString(t)
	}
	return b.String()
}

func cosineTF(a, b map[string]int) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	var dot, na, nb float64
	for t, ca := range a {
		if cb, ok := b[t]; ok {
			dot += float64(ca) * float64(cb)
		}
		na += float64(ca) * float64(ca)
	}
	for _, cb := range b {
		nb += float64(cb) * float64(cb)
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// DedupSentences marks near-duplicate sentences per §4.5, skipping
// anchors and sentences with an empty term-frequency map. Sentences are
// processed in document order; buckets are iterated in insertion order
// so the result is deterministic.
func DedupSentences(sentences []Sentence, aggressiveness int) {
	threshold := DupThreshold(aggressiveness)
	buckets := make(map[string][]int)

	for i := range sentences {
		s := &sentences[i]
		if s.Anchor || len(s.TermFreq) == 0 {
			continue
		}
		key := bucketKey(s.Span, s.TermFreq)
		cand := buckets[key]

		metrics.AddCandidates(uint64(len(cand)))
		dup := false
		for _, j := range cand {
			metrics.AddPairs(1)
			if cosineTF(sentences[j].TermFreq, s.TermFreq) >= threshold {
				dup = true
				break
			}
		}
		if dup {
			s.Drop = true
		} else {
			buckets[key] = append(cand, i)
		}
	}
}
