package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"contextsqueeze/internal/config"
	"contextsqueeze/internal/core"
	"contextsqueeze/internal/core/registry"
	"contextsqueeze/internal/metrics"
	"contextsqueeze/internal/tokencount"
	"contextsqueeze/pkg/squeeze"
)

var (
	inPath         = flag.String("in", "", "input file path (empty = stdin)")
	outPath        = flag.String("out", "", "output file path (empty = stdout)")
	aggressiveness = flag.Int("aggressiveness", -1, "compression aggressiveness 0-9 (negative = use config default)")
	stream         = flag.Bool("stream", false, "chunk input on blank lines and dedup chunks against a signature registry as they stream")
	showStats      = flag.Bool("stats", false, "print byte and token counts to stderr after compressing")
	version        = flag.Bool("version", false, "print version and exit")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Println(squeeze.Version())
		return
	}

	cfg := config.Get()
	aggr := cfg.DefaultAggressiveness
	if *aggressiveness >= 0 {
		aggr = *aggressiveness
	}

	in, err := openInput(*inPath)
	if err != nil {
		log.Fatalf("squeezecli: %v", err)
	}
	defer in.Close()

	out, err := openOutput(*outPath)
	if err != nil {
		log.Fatalf("squeezecli: %v", err)
	}
	defer out.Close()

	input, err := io.ReadAll(in)
	if err != nil {
		log.Fatalf("squeezecli: reading input: %v", err)
	}

	var result []byte
	if *stream {
		result, err = runStream(input, aggr, cfg.RegistryCapacity)
	} else {
		result, err = squeeze.SqueezeEx(input, aggr)
	}
	if err != nil {
		log.Fatalf("squeezecli: %v", err)
	}

	if _, err := out.Write(result); err != nil {
		log.Fatalf("squeezecli: writing output: %v", err)
	}

	if *showStats {
		printStats(input, result, cfg.TokenEncoding)
	}
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// runStream splits input into chunks separated by blank lines, compresses
// each one independently, and uses a SignatureRegistry keyed by the chunk's
// FNV-1a hash so a chunk that is a byte-for-byte repeat of one already seen
// in this stream is dropped entirely rather than re-emitted in compressed
// form. Chunks that differ in any byte are compressed separately.
func runStream(input []byte, aggressiveness, capacity int) ([]byte, error) {
	chunks := splitOnBlankLines(input)
	reg := registry.New(capacity)

	var buf bytes.Buffer
	for i, chunk := range chunks {
		if len(bytes.TrimSpace(chunk)) == 0 {
			continue
		}
		sig := fmt.Sprintf("%x", core.FNV1a64(chunk))
		if reg.ContainsAndTouch(sig) {
			continue
		}
		reg.Insert(sig)

		compressed, err := squeeze.SqueezeEx(chunk, aggressiveness)
		if err != nil {
			return nil, err
		}
		if i > 0 && buf.Len() > 0 {
			buf.WriteString("\n\n")
		}
		buf.Write(compressed)
	}
	return buf.Bytes(), nil
}

func splitOnBlankLines(input []byte) [][]byte {
	var chunks [][]byte
	var current bytes.Buffer
	scanner := bufio.NewScanner(bytes.NewReader(input))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			if current.Len() > 0 {
				chunks = append(chunks, append([]byte(nil), current.Bytes()...))
				current.Reset()
			}
			continue
		}
		if current.Len() > 0 {
			current.WriteByte('\n')
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		chunks = append(chunks, append([]byte(nil), current.Bytes()...))
	}
	return chunks
}

func printStats(input, output []byte, encoding string) {
	tokensBefore := tokencount.Estimate(input, encoding)
	tokensAfter := tokencount.Estimate(output, encoding)
	ratio := 1.0
	if len(input) > 0 {
		ratio = float64(len(output)) / float64(len(input))
	}
	snap := metrics.Get()
	fmt.Fprintf(os.Stderr, "bytes: %d -> %d (ratio %.3f)\n", len(input), len(output), ratio)
	fmt.Fprintf(os.Stderr, "tokens (%s): %d -> %d\n", encoding, tokensBefore, tokensAfter)
	fmt.Fprintf(os.Stderr, "sentences seen: %d, candidates checked: %d, pairs compared: %d\n",
		snap.SentencesTotal, snap.SimilarityCandidatesChecked, snap.SimilarityPairsCompared)
}
