package codec

import "github.com/nomlib/dataenc/cursor"

// byteSource is the low-level primitive the shared decode logic pulls
// bytes from. sliceSource (below) implements it non-blocking for one-shot
// reads; the streaming reader's blockingSource (stream.go) implements the
// same interface but suspends the calling goroutine instead of failing
// when data isn't yet available. Sharing one interface means every
// descriptor's decode() method is written exactly once and both readers
// get its behavior for free.
type byteSource interface {
	// take returns exactly n bytes and advances past them, or a
	// *ReadError (ErrNotEnoughData for sliceSource; the streaming source
	// only returns it once it knows no more chunks are coming).
	take(n int) ([]byte, error)
	// pos returns the total number of bytes taken so far. Composition
	// nodes (Array, Objs, DynamicSize, ...) diff pos() before/after a
	// sub-decode to learn how much of their own budget it consumed,
	// without threading a consumed-count through every decode call.
	pos() int
}

// sliceSource is a byteSource over a fixed, already-fully-available
// buffer: the one-shot reader's view of its input.
type sliceSource struct {
	buf *cursor.Buffer
	off int
}

func (s *sliceSource) take(n int) ([]byte, error) {
	if !s.buf.InBounds(s.off, n) {
		return nil, &ReadError{Code: ErrNotEnoughData}
	}
	b := s.buf.Slice(s.off, s.off+n)
	s.off += n
	return b, nil
}

func (s *sliceSource) remainingBytes() int { return s.buf.Len() - s.off }

func (s *sliceSource) pos() int { return s.off }

// Read parses a value of type T from buf starting at offset, bounded to
// length bytes, and returns the number of bytes consumed and the value.
func Read[T any](d Desc[T], buf []byte, offset, length int) (consumed int, value T, err error) {
	if offset < 0 || length < 0 || offset+length > len(buf) {
		return 0, value, &ReadError{Code: ErrNotEnoughData}
	}
	src := &sliceSource{buf: cursor.New(buf[:offset+length]), off: offset}
	v, err := unwrap(d).decode(src, length)
	if err != nil {
		var zero T
		return 0, zero, err
	}
	return src.off - offset, v.(T), nil
}

// OfBytes parses a whole buffer as a single value of type T, and fails
// with ErrExtraBytes if any byte is left unconsumed.
func OfBytes[T any](d Desc[T], buf []byte) (T, error) {
	consumed, v, err := Read(d, buf, 0, len(buf))
	if err != nil {
		var zero T
		return zero, err
	}
	if consumed != len(buf) {
		var zero T
		return zero, &ReadError{Code: ErrExtraBytes}
	}
	return v, nil
}

// OfBytesExn is like OfBytes but panics with the error instead of
// returning it, for callers that have already established the input is
// well-formed and want the error surfaced directly rather than threaded.
func OfBytesExn[T any](d Desc[T], buf []byte) T {
	v, err := OfBytes(d, buf)
	if err != nil {
		panic(err)
	}
	return v
}
