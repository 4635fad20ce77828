package core

import "bytes"

// IsAnchor implements §4.3: a sentence is an anchor (never droppable) if
// it contains a fenced-code marker, a URL, starts with '#', has 4+
// digits, or reads as a heading (mostly uppercase letters, 4+ of them).
func IsAnchor(sv []byte) bool {
	if bytes.Contains(sv, []byte("```")) {
		return true
	}
	if bytes.Contains(sv, []byte("http://")) || bytes.Contains(sv, []byte("https://")) {
		return true
	}

	digits := 0
	for _, c := range sv {
		if c >= '0' && c <= '9' {
			digits++
		}
	}
	if digits >= 4 {
		return true
	}

	trimmed := bytes.TrimFunc(sv, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(trimmed) > 0 && trimmed[0] == '#' {
		return true
	}

	letters := 0
	upper := 0
	for _, c := range trimmed {
		if c >= 'A' && c <= 'Z' {
			letters++
			upper++
		} else if c >= 'a' && c <= 'z' {
			letters++
		}
	}
	if letters >= 4 && float64(upper)/float64(letters) >= 0.8 {
		return true
	}
	return false
}
