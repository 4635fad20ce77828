package core

import "testing"

func spanText(buf []byte, s Span) string {
	return string(s.Bytes(buf))
}

func TestSegmentSentencesAbbreviations(t *testing.T) {
	buf := []byte("Dr. A met Mr. B.\nStill same paragraph.\n\nNew section starts here! i.e. keep sentence.")
	spans := SegmentSentences(buf)
	if len(spans) == 0 {
		t.Fatal("expected at least one sentence span")
	}
	joined := ""
	for _, s := range spans {
		joined += spanText(buf, s)
	}
	if joined != string(buf) {
		t.Fatalf("spans do not reconstruct input: got %q want %q", joined, string(buf))
	}
	if spanText(buf, spans[0]) != "Dr. A met Mr. B.\n" {
		t.Fatalf("first sentence wrong: %q", spanText(buf, spans[0]))
	}
	found := false
	for _, s := range spans {
		if spanText(buf, s) == "i.e. keep sentence." {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected \"i.e.\" to stay embedded in its sentence, got spans: %v", spansText(buf, spans))
	}
}

func TestSegmentSentencesEmbeddedAbbreviationDots(t *testing.T) {
	buf := []byte("Bring fruit, e.g. apples, bananas, or pears. Next sentence.")
	spans := SegmentSentences(buf)
	if len(spans) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %v", len(spans), spansText(buf, spans))
	}
	if spanText(buf, spans[0]) != "Bring fruit, e.g. apples, bananas, or pears. " {
		t.Fatalf("e.g. split the sentence early: %q", spanText(buf, spans[0]))
	}
}

func spansText(buf []byte, spans []Span) []string {
	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = spanText(buf, s)
	}
	return out
}

func TestSegmentSentencesQuestionAndExclamation(t *testing.T) {
	buf := []byte("Is this real? Yes it is!")
	spans := SegmentSentences(buf)
	if len(spans) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %v", len(spans), spans)
	}
	if spanText(buf, spans[0]) != "Is this real? " {
		t.Fatalf("unexpected first sentence: %q", spanText(buf, spans[0]))
	}
}

func TestSegmentSentencesEmpty(t *testing.T) {
	if spans := SegmentSentences(nil); len(spans) != 0 {
		t.Fatalf("expected no spans for empty input, got %v", spans)
	}
}

func TestSegmentParagraphsPreservesSeparator(t *testing.T) {
	buf := []byte("first paragraph\n\nsecond paragraph")
	blocks := SegmentParagraphs(buf)
	var rebuilt []byte
	for _, b := range blocks {
		rebuilt = append(rebuilt, b.Span.Bytes(buf)...)
	}
	if string(rebuilt) != string(buf) {
		t.Fatalf("blocks do not reconstruct input: got %q", rebuilt)
	}
	foundSep := false
	for _, b := range blocks {
		if b.Span.Len() == 2 && spanText(buf, b.Span) == "\n\n" {
			foundSep = true
		}
	}
	if !foundSep {
		t.Fatal("expected an explicit separator block")
	}
}
