package core

import (
	"math"
	"sort"
)

// DropRatio returns the fraction of removable sentences to drop for a
// given aggressiveness, per §4.6.
func DropRatio(aggressiveness int) float64 {
	ratios := [10]float64{0.00, 0.05, 0.10, 0.15, 0.20, 0.25, 0.30, 0.35, 0.40, 0.45}
	if aggressiveness < 0 {
		aggressiveness = 0
	}
	if aggressiveness > 9 {
		aggressiveness = 9
	}
	return ratios[aggressiveness]
}

// ScoreAndSelect computes the TF-IDF importance score for every surviving
// sentence and marks the lowest-scoring non-anchor sentences for removal
// up to the aggressiveness-dependent drop target, per §4.6.
func ScoreAndSelect(sentences []Sentence, aggressiveness int) {
	df := make(map[string]int)
	n := 0
	for i := range sentences {
		if sentences[i].Drop {
			continue
		}
		n++
		for t := range sentences[i].TermFreq {
			df[t]++
		}
	}

	idf := func(t string) float64 {
		return math.Log(1 + float64(n)/(1+float64(df[t])))
	}

	for i := range sentences {
		s := &sentences[i]
		if s.Drop {
			continue
		}
		var score float64
		for _, t := range s.UniqueTokens {
			score += float64(s.TermFreq[t]) * idf(t)
		}
		if s.Span.Len() < 25 {
			rare := false
			for _, t := range s.UniqueTokens {
				if idf(t) > 1.2 {
					rare = true
					break
				}
			}
			if !rare {
				score *= 0.4
			}
		}
		s.Score = score
	}

	type cand struct {
		score float64
		idx   int
	}
	var candidates []cand
	for i := range sentences {
		if !sentences[i].Drop && !sentences[i].Anchor {
			candidates = append(candidates, cand{sentences[i].Score, i})
		}
	}

	dropTarget := int(math.Floor(DropRatio(aggressiveness) * float64(len(candidates))))
	if dropTarget > len(candidates) {
		dropTarget = len(candidates)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score < candidates[j].score
		}
		return candidates[i].idx < candidates[j].idx
	})

	for i := 0; i < dropTarget; i++ {
		sentences[candidates[i].idx].Drop = true
	}
}
