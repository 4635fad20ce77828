package squeeze

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionNonEmpty(t *testing.T) {
	if Version() == "" {
		t.Fatal("Version must be non-empty")
	}
}

func TestSqueezeExIdentityAtZero(t *testing.T) {
	input := []byte("Repeated sentence here. Repeated sentence here. Unique tail.")
	out, err := SqueezeEx(input, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(out, input) {
		t.Fatalf("aggressiveness 0 must return input verbatim, got %q want %q", out, input)
	}
}

func TestSqueezeExEmptyInput(t *testing.T) {
	out, err := SqueezeEx(nil, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil output for empty input, got %q", out)
	}

	out, err = SqueezeEx([]byte{}, 5)
	if err != nil || out != nil {
		t.Fatalf("expected (nil, nil) for empty slice input, got (%q, %v)", out, err)
	}
}

func TestSqueezeExBinarySafety(t *testing.T) {
	input := []byte{0x00, 0x01, 0xff, 0xfe, 'a', 0x00, 'b'}

	out, err := SqueezeEx(input, 0)
	if err != nil {
		t.Fatalf("unexpected error at aggressiveness 0: %v", err)
	}
	if !bytes.Equal(out, input) {
		t.Fatalf("binary bytes must survive verbatim at aggressiveness 0, got %v want %v", out, input)
	}

	if _, err := SqueezeEx(input, 5); err != nil {
		t.Fatalf("unexpected error compressing binary input: %v", err)
	}
}

func TestSqueezeExAggressivenessClamped(t *testing.T) {
	input := []byte("Some sentence content that is long enough to matter here today.")
	low, err := SqueezeEx(append([]byte(nil), input...), -3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	exact, err := SqueezeEx(append([]byte(nil), input...), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(low, exact) {
		t.Fatal("negative aggressiveness should clamp to 0")
	}

	high, err := SqueezeEx(append([]byte(nil), input...), 99)
	if err != nil {
		t.Fatalf("unexpected error at high aggressiveness: %v", err)
	}
	nine, err := SqueezeEx(append([]byte(nil), input...), 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(high, nine) {
		t.Fatal("aggressiveness above 9 should clamp to 9")
	}
}

func TestSqueezeExDeterministic(t *testing.T) {
	input := []byte("Alpha detail sentence. Alpha detail sentence. Beta sentence with unique token xyz123.")
	out1, err1 := SqueezeEx(append([]byte(nil), input...), 6)
	out2, err2 := SqueezeEx(append([]byte(nil), input...), 6)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if !bytes.Equal(out1, out2) {
		t.Fatalf("SqueezeEx is not deterministic: %q vs %q", out1, out2)
	}
}

func TestSqueezeExAnchorPreservation(t *testing.T) {
	input := []byte("# HEADER TITLE\n\nVisit https://example.com/docs for details. ok. sure. fine. meh. yes. no.")
	out, err := SqueezeEx(input, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := string(out)
	if !strings.Contains(got, "# HEADER TITLE") {
		t.Errorf("expected heading anchor to survive, got %q", got)
	}
	if !strings.Contains(got, "https://example.com/docs") {
		t.Errorf("expected URL anchor to survive, got %q", got)
	}
}

func TestSqueezeExFirstCopyPreservation(t *testing.T) {
	disclaimer := strings.Repeat("DISCLAIMER this text is boilerplate and repeats across documents. ", 3)
	input := []byte(disclaimer + "\n\n" + disclaimer + "\n\n" + "Unique content here.")
	out, err := SqueezeEx(input, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := string(out)
	if strings.Count(got, "DISCLAIMER") != 1 {
		t.Fatalf("expected exactly one surviving copy of the repeated block, got %d in %q", strings.Count(got, "DISCLAIMER"), got)
	}
}

func TestSqueeze(t *testing.T) {
	input := []byte("Plain text with no duplication whatsoever present.")
	out, err := Squeeze(append([]byte(nil), input...))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(out, input) {
		t.Fatalf("Squeeze must behave as SqueezeEx(input, 0), got %q want %q", out, input)
	}
}

func TestSqueezeIntoAndFree(t *testing.T) {
	input := []byte("Some content to compress into a pooled buffer today.")
	buf, err := SqueezeInto(append([]byte(nil), input...), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), input) {
		t.Fatalf("pooled buffer contents mismatch: got %q want %q", buf.Bytes(), input)
	}
	Free(buf)
	Free(buf)
	Free(nil)
}

func TestErrorImplementsErrorInterface(t *testing.T) {
	var err error = &Error{Code: CodeInternal, Message: "boom"}
	if err.Error() != "boom" {
		t.Fatalf("unexpected error message: %q", err.Error())
	}
}
