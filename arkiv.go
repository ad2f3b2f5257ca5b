package arkiv

import "errors"

var (
	ErrBufferFull = errors.New("arkiv: buffer capacity exhausted")
)

// Resolver carries the ancillary data computed during the serialize step
// and consumed by the later resolve step. Leaf types with no out-of-line
// data use a nil Resolver.
type Resolver any

// Archiver is implemented by values that have a fixed archived layout.
type Archiver interface {
	// ArchivedLen reports the exact byte size of the archived representation.
	ArchivedLen() int

	// Resolve writes the complete archived representation into out, a slot of
	// exactly ArchivedLen() bytes located at absolute position pos within the
	// destination buffer. Every byte of out is written. Resolve never fails;
	// all fallibility belongs to Serialize.
	Resolve(pos int, res Resolver, out []byte)
}

// Serializer is the caller-supplied backend a value serializes through.
// Implementations own growth, capacity and alignment policy.
type Serializer interface {
	// Pos reports the current end of the buffer.
	Pos() int

	// Write stores out-of-line bytes and returns the absolute position they
	// were written at.
	Write(p []byte) (int, error)

	// Reserve claims an n-byte slot for a later Resolve and returns the slot
	// together with its absolute position. The slot contents are unspecified
	// until resolved.
	Reserve(n int) ([]byte, int, error)
}

// Serializable is an Archiver whose ancillary data can be computed against
// a backend. Serialize may write out-of-line bytes through s and is the
// only step allowed to fail.
type Serializable interface {
	Archiver
	Serialize(s Serializer) (Resolver, error)
}

// Deserializer is the backend for reconstructing owned values. Leaf types
// never touch it; composite types may use it to obtain auxiliary storage.
type Deserializer interface {
	Alloc(n int) ([]byte, error)
}

// ArchiveValue runs the two-phase write: serialize v for its resolver, then
// reserve a slot and resolve v at the slot's final absolute position. The
// returned position locates v's archived representation in the backend.
// On error the buffer is incomplete and must be discarded.
func ArchiveValue(s Serializer, v Serializable) (int, error) {
	res, err := v.Serialize(s)
	if err != nil {
		return 0, err
	}
	out, pos, err := s.Reserve(v.ArchivedLen())
	if err != nil {
		return 0, err
	}
	v.Resolve(pos, res, out)
	return pos, nil
}

// ToBytes archives v into a fresh growable buffer. The returned position
// locates v's slot; out-of-line data written during serialization precedes
// it.
func ToBytes(v Serializable) ([]byte, int, error) {
	b := NewBuffer()
	pos, err := ArchiveValue(b, v)
	if err != nil {
		return nil, 0, err
	}
	return b.Bytes(), pos, nil
}
