package core

const (
	blockDedupMinLen  = 120
	lowEntropyMinLen  = 120
	lowEntropyRatio   = 0.03
	lowEntropyMinAggr = 8
)

// DedupBlocks marks blocks >=120 bytes for removal on repeat FNV-1a hash
// (first copy always survives) and, at aggressiveness>=8, marks blocks
// whose unique-byte ratio is below 0.03 as low-entropy filler. The
// "\n\n" separator blocks and blocks shorter than 120 bytes are never
// touched.
func DedupBlocks(buf []byte, blocks []ParagraphBlock, aggressiveness int) {
	firstSeen := make(map[uint64]int)
	for i := range blocks {
		b := &blocks[i]
		if b.Span.Len() <= 0 {
			continue
		}
		sv := b.Span.Bytes(buf)
		if b.Span.Len() == 2 && sv[0] == '\n' && sv[1] == '\n' {
			continue
		}
		if len(sv) >= blockDedupMinLen {
			h := FNV1a64(sv)
			b.Hash = h
			if _, ok := firstSeen[h]; !ok {
				firstSeen[h] = i
			} else {
				b.Drop = true
			}
		}

		if aggressiveness >= lowEntropyMinAggr && len(sv) >= lowEntropyMinLen {
			var seen [256]bool
			uniq := 0
			for _, c := range sv {
				if !seen[c] {
					seen[c] = true
					uniq++
				}
			}
			if float64(uniq)/float64(len(sv)) < lowEntropyRatio {
				b.Drop = true
			}
		}
	}
}

// FilterBlocks concatenates the surviving blocks' bytes in order.
func FilterBlocks(buf []byte, blocks []ParagraphBlock) []byte {
	out := make([]byte, 0, len(buf))
	for _, b := range blocks {
		if !b.Drop {
			out = append(out, b.Span.Bytes(buf)...)
		}
	}
	return out
}
