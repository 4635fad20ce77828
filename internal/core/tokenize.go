package core

import "sort"

// Stopwords per the glossary. Dropped from term-frequency maps.
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "has": true, "he": true,
	"in": true, "is": true, "it": true, "its": true, "of": true, "on": true,
	"or": true, "that": true, "the": true, "to": true, "was": true, "were": true,
	"will": true, "with": true, "this": true, "they": true, "we": true,
	"you": true, "i": true, "but": true,
}

func isAlphaNum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// Tokenize lowercases ASCII alphanumeric runs in sv into terms, dropping
// stopwords. All non-ASCII bytes and punctuation act as separators.
func Tokenize(sv []byte) []string {
	var out []string
	var cur []byte
	flush := func() {
		if len(cur) == 0 {
			return
		}
		t := string(cur)
		if !stopwords[t] {
			out = append(out, t)
		}
		cur = cur[:0]
	}
	for _, c := range sv {
		if isAlphaNum(c) {
			cur = append(cur, lowerASCII(c))
		} else {
			flush()
		}
	}
	flush()
	return out
}

// TermFreq builds a term-frequency map and its sorted key list from sv,
// along with the total number of tokens produced (including repeats).
func TermFreq(sv []byte) (tf map[string]int, keys []string, tokenCount int) {
	tokens := Tokenize(sv)
	tf = make(map[string]int, len(tokens))
	for _, t := range tokens {
		tf[t]++
	}
	keys = make([]string, 0, len(tf))
	for k := range tf {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return tf, keys, len(tokens)
}
