package arkiv

import (
	"encoding/binary"
	"unsafe"
)

// Bytes archives a byte string out of line: the slot holds a relative
// offset back to the bytes plus their length, so the slot contents depend
// on the slot's absolute position. This is the type that makes the pos
// parameter of Resolve load-bearing.
type Bytes []byte

// ArchivedBytesLen is the slot size: int32 relative offset + uint32 length.
const ArchivedBytesLen = 8

type bytesResolver struct {
	pos int // absolute position of the out-of-line bytes
}

func (b Bytes) ArchivedLen() int {
	return ArchivedBytesLen
}

// Serialize writes the byte string through the backend and records where
// it landed for Resolve.
func (b Bytes) Serialize(s Serializer) (Resolver, error) {
	pos, err := s.Write(b)
	if err != nil {
		return nil, err
	}
	return bytesResolver{pos: pos}, nil
}

func (b Bytes) Resolve(pos int, res Resolver, out []byte) {
	rel := res.(bytesResolver).pos - pos
	binary.LittleEndian.PutUint32(out[0:], uint32(int32(rel)))
	binary.LittleEndian.PutUint32(out[4:], uint32(len(b)))
}

// ArchivedBytes is the slot overlay for Bytes.
type ArchivedBytes [ArchivedBytesLen]byte

// ArchivedBytesAt overlays the slot at absolute position pos in buf. The
// overlay has byte alignment, so the cast is always valid.
func ArchivedBytesAt(buf []byte, pos int) *ArchivedBytes {
	return (*ArchivedBytes)(unsafe.Pointer(&buf[pos : pos+ArchivedBytesLen][0]))
}

// RelOffset is the signed offset from the slot to the out-of-line bytes.
func (a *ArchivedBytes) RelOffset() int32 {
	return int32(binary.LittleEndian.Uint32(a[0:]))
}

func (a *ArchivedBytes) Len() int {
	return int(binary.LittleEndian.Uint32(a[4:]))
}

// Bytes returns the out-of-line byte string as a view into buf, no copy.
// pos is the absolute position of the slot within buf; the view shares
// buf's lifetime.
func (a *ArchivedBytes) Bytes(buf []byte, pos int) []byte {
	start := pos + int(a.RelOffset())
	return buf[start : start+a.Len()]
}

// Deserialize reconstructs an independently owned copy of the byte string
// through d.
func (a *ArchivedBytes) Deserialize(d Deserializer, buf []byte, pos int) (Bytes, error) {
	src := a.Bytes(buf, pos)
	dst, err := d.Alloc(len(src))
	if err != nil {
		return nil, err
	}
	copy(dst, src)
	return Bytes(dst), nil
}
