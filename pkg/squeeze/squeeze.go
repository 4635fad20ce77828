// Package squeeze is the public API of the context compressor: given a
// byte buffer and an aggressiveness level, it returns a shorter buffer
// that preserves anchors and high-scoring sentences while dropping
// redundant or boilerplate content. See internal/core for the pipeline.
package squeeze

import (
	"sync"

	"contextsqueeze/internal/core"
	"contextsqueeze/internal/metrics"
)

const version = "1.0.0"

// Code identifies the broad error taxonomy from §7: invalid-argument,
// resource-exhausted, and internal. Go callers mostly check err != nil;
// Code exists for callers ported from the C ABI's status-code surface.
type Code int

const (
	// CodeInvalidArgument covers a nil input with non-zero length, or an
	// aggressiveness value so malformed it can't be clamped (never
	// actually reachable from Go's typed int, kept for taxonomy parity).
	CodeInvalidArgument Code = iota + 1
	// CodeResourceExhausted covers allocation failure equivalents (out
	// of memory growing the output buffer).
	CodeResourceExhausted
	// CodeInternal covers any condition caught at the top-level boundary
	// that isn't one of the above.
	CodeInternal
)

// Error is the structured error type returned by Squeeze/SqueezeEx.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string { return e.Message }

// Version returns the non-empty, static version string.
func Version() string { return version }

// Squeeze is equivalent to SqueezeEx(input, 0).
func Squeeze(input []byte) ([]byte, error) {
	return SqueezeEx(input, 0)
}

// SqueezeEx compresses input at the given aggressiveness, clamped to
// [0,9]. Aggressiveness 0 returns a copy of input verbatim. Empty input
// returns (nil, nil). The returned slice is freshly allocated and owned
// by the caller.
func SqueezeEx(input []byte, aggressiveness int) (output []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			output = nil
			err = &Error{Code: CodeInternal, Message: "squeeze: internal error"}
		}
	}()

	metrics.Reset()

	if len(input) == 0 {
		return nil, nil
	}

	if aggressiveness < 0 {
		aggressiveness = 0
	}
	if aggressiveness > 9 {
		aggressiveness = 9
	}

	if aggressiveness == 0 {
		out := make([]byte, len(input))
		copy(out, input)
		return out, nil
	}

	result := core.Compress(input, aggressiveness)
	if len(result) == 0 {
		return nil, nil
	}
	out := make([]byte, len(result))
	copy(out, result)
	return out, nil
}

// Buffer is a pooled wrapper around an output slice, standing in for the
// spec's callee-allocated/paired-free ABI contract. Only the wrapper is
// reused through a sync.Pool; the output bytes it holds are freshly
// allocated by every SqueezeInto call. One-shot callers should just use
// Squeeze/SqueezeEx directly.
type Buffer struct {
	data  []byte
	freed bool
}

// Bytes returns the buffer's current contents.
func (b *Buffer) Bytes() []byte { return b.data }

var bufferPool = sync.Pool{New: func() any { return &Buffer{} }}

// SqueezeInto behaves like SqueezeEx but returns the result held in a
// Buffer obtained from the package pool. The caller must call Free(buf)
// when done to return it to the pool.
func SqueezeInto(input []byte, aggressiveness int) (*Buffer, error) {
	out, err := SqueezeEx(input, aggressiveness)
	if err != nil {
		return nil, err
	}
	buf := bufferPool.Get().(*Buffer)
	buf.data = out
	buf.freed = false
	return buf, nil
}

// Free releases buf back to the pool. Free is nil-safe and idempotent:
// calling it twice on the same buffer or on nil does nothing harmful.
func Free(buf *Buffer) {
	if buf == nil || buf.freed {
		return
	}
	buf.data = nil
	buf.freed = true
	bufferPool.Put(buf)
}
