// Package tokencount estimates how many tokens a buffer would consume in a
// downstream LLM context window, using a named tiktoken-go encoding. It
// exists so callers can report a
// before/after token estimate alongside the byte-level compression ratio.
package tokencount

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	mu       sync.Mutex
	encoders = map[string]*tiktoken.Tiktoken{}
)

func encoderFor(name string) (*tiktoken.Tiktoken, error) {
	mu.Lock()
	defer mu.Unlock()

	if enc, ok := encoders[name]; ok {
		return enc, nil
	}
	enc, err := tiktoken.GetEncoding(name)
	if err != nil {
		return nil, err
	}
	encoders[name] = enc
	return enc, nil
}

// Estimate returns the token count of text under the named tiktoken
// encoding. If the encoding can't be loaded it falls back to a coarse
// whitespace-based estimate rather than failing the caller's request path.
func Estimate(text []byte, encoding string) int {
	enc, err := encoderFor(encoding)
	if err != nil {
		return fallbackEstimate(text)
	}
	return len(enc.Encode(string(text), nil, nil))
}

func fallbackEstimate(text []byte) int {
	count := 0
	inWord := false
	for _, b := range text {
		isSpace := b == ' ' || b == '\n' || b == '\t' || b == '\r'
		if !isSpace && !inWord {
			count++
		}
		inWord = !isSpace
	}
	return count
}
