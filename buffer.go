package arkiv

// Buffer is a growable in-memory serializer backend. The zero value is
// ready to use; Reset keeps the allocation for reuse.
type Buffer struct {
	buf []byte
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) Pos() int {
	return len(b.buf)
}

func (b *Buffer) Write(p []byte) (int, error) {
	pos := len(b.buf)
	b.buf = append(b.buf, p...)
	return pos, nil
}

func (b *Buffer) Reserve(n int) ([]byte, int, error) {
	pos := len(b.buf)
	total := pos + n
	if cap(b.buf) < total {
		grown := make([]byte, pos, total*2)
		copy(grown, b.buf)
		b.buf = grown
	}
	b.buf = b.buf[:total]
	return b.buf[pos:total], pos, nil
}

// Bytes returns the archived buffer. Valid until the next Reset.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
}

// FixedBuffer serializes into a caller-supplied slice and fails with
// ErrBufferFull once the capacity is exhausted. A failed archive leaves
// the buffer partially written; callers must discard it.
type FixedBuffer struct {
	buf []byte
	n   int
}

func NewFixedBuffer(buf []byte) *FixedBuffer {
	return &FixedBuffer{buf: buf}
}

func (f *FixedBuffer) Pos() int {
	return f.n
}

func (f *FixedBuffer) Write(p []byte) (int, error) {
	if f.n+len(p) > len(f.buf) {
		return 0, ErrBufferFull
	}
	pos := f.n
	copy(f.buf[pos:], p)
	f.n += len(p)
	return pos, nil
}

func (f *FixedBuffer) Reserve(n int) ([]byte, int, error) {
	if f.n+n > len(f.buf) {
		return nil, 0, ErrBufferFull
	}
	pos := f.n
	f.n += n
	return f.buf[pos : pos+n], pos, nil
}

// Bytes returns the written prefix of the underlying slice.
func (f *FixedBuffer) Bytes() []byte {
	return f.buf[:f.n]
}

// HeapDeserializer hands out auxiliary storage from the Go heap and never
// fails. Most reconstruction goes through it; pooled or arena-backed
// deserializers can replace it behind the same interface.
type HeapDeserializer struct{}

func (HeapDeserializer) Alloc(n int) ([]byte, error) {
	return make([]byte, n), nil
}
