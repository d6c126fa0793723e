package codec

import "github.com/nomlib/dataenc/cursor"

// Writer serializes a value into a pre-sized byte buffer at an advancing
// offset. Callers pre-size the buffer using Length; the writer never
// grows it. A Writer is not safe for concurrent use, but distinct Writer
// values over distinct buffers are fully independent (re-entrant).
type Writer struct {
	buf *cursor.Buffer
	off int
}

// NewWriter allocates a Writer over a freshly allocated buffer of size
// bytes.
func NewWriter(size int) *Writer {
	return &Writer{buf: cursor.New(make([]byte, size))}
}

// newWriterOver wraps an existing, already-sized buffer for writing
// starting at off, without copying.
func newWriterOver(buf []byte, off int) *Writer {
	return &Writer{buf: cursor.New(buf), off: off}
}

// Offset returns the writer's current position.
func (w *Writer) Offset() int { return w.off }

// Bytes returns everything written so far.
func (w *Writer) Bytes() []byte { return w.buf.Slice(0, w.off) }

func (w *Writer) putUint8(v uint8) {
	w.buf.PutUint8(w.off, v)
	w.off++
}

func (w *Writer) putInt8(v int8) {
	w.buf.PutInt8(w.off, v)
	w.off++
}

func (w *Writer) putUint16(v uint16) {
	w.buf.PutUint16(w.off, v)
	w.off += 2
}

func (w *Writer) putInt16(v int16) {
	w.buf.PutInt16(w.off, v)
	w.off += 2
}

func (w *Writer) putUint32(v uint32) {
	w.buf.PutUint32(w.off, v)
	w.off += 4
}

func (w *Writer) putInt32(v int32) {
	w.buf.PutInt32(w.off, v)
	w.off += 4
}

func (w *Writer) putInt64(v int64) {
	w.buf.PutInt64(w.off, v)
	w.off += 8
}

func (w *Writer) putFloat64(v float64) {
	w.buf.PutFloat64(w.off, v)
	w.off += 8
}

func (w *Writer) putBytes(v []byte) {
	w.buf.Copy(w.off, v)
	w.off += len(v)
}

// reserve advances the offset by n without writing, returning the offset
// to back-patch once the deferred value (e.g. a DynamicSize length
// prefix) is known.
func (w *Writer) reserve(n int) int {
	off := w.off
	w.off += n
	return off
}

func (w *Writer) putUint8At(off int, v uint8)   { w.buf.PutUint8(off, v) }
func (w *Writer) putUint16At(off int, v uint16) { w.buf.PutUint16(off, v) }
func (w *Writer) putInt32At(off int, v int32)   { w.buf.PutInt32(off, v) }
