package arkiv

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

// testWord is a 2-byte leaf archiver with a trivial resolver.
type testWord uint16

func (w testWord) ArchivedLen() int {
	return 2
}

func (w testWord) Serialize(Serializer) (Resolver, error) {
	return nil, nil
}

func (w testWord) Resolve(_ int, _ Resolver, out []byte) {
	binary.LittleEndian.PutUint16(out, uint16(w))
}

func TestBufferPositions(t *testing.T) {
	b := NewBuffer()
	require.Equal(t, 0, b.Pos())

	pos, err := b.Write([]byte("abc"))
	require.NoError(t, err)
	require.Equal(t, 0, pos)
	require.Equal(t, 3, b.Pos())

	slot, pos, err := b.Reserve(2)
	require.NoError(t, err)
	require.Equal(t, 3, pos)
	require.Len(t, slot, 2)
	testWord(0x0201).Resolve(pos, nil, slot)
	require.Equal(t, []byte("abc\x01\x02"), b.Bytes())

	b.Reset()
	require.Equal(t, 0, b.Pos())
}

func TestBufferReserveGrows(t *testing.T) {
	b := NewBuffer()
	for i := 0; i < 100; i++ {
		slot, pos, err := b.Reserve(3)
		require.NoError(t, err)
		require.Equal(t, i*3, pos)
		slot[0], slot[1], slot[2] = byte(i), byte(i), byte(i)
	}
	require.Equal(t, 300, b.Pos())
	require.Equal(t, byte(99), b.Bytes()[299])
}

func TestArchiveValueTwoPhase(t *testing.T) {
	payload := Bytes("hello zero-copy")
	buf, pos, err := ToBytes(payload)
	require.NoError(t, err)

	// out-of-line bytes precede the slot
	require.Equal(t, len(payload), pos)
	require.Len(t, buf, len(payload)+ArchivedBytesLen)

	arch := ArchivedBytesAt(buf, pos)
	require.Equal(t, int32(-len(payload)), arch.RelOffset())
	require.Equal(t, len(payload), arch.Len())
	require.Equal(t, []byte(payload), arch.Bytes(buf, pos))
}

func TestBytesSlotDependsOnPosition(t *testing.T) {
	// the same value archived after a different amount of out-of-line data
	// must encode a different relative offset
	b := NewBuffer()
	_, err := b.Write(make([]byte, 32))
	require.NoError(t, err)
	pos, err := ArchiveValue(b, Bytes("xyz"))
	require.NoError(t, err)
	require.Equal(t, 35, pos)
	arch := ArchivedBytesAt(b.Bytes(), pos)
	require.Equal(t, int32(-3), arch.RelOffset())
	require.Equal(t, []byte("xyz"), arch.Bytes(b.Bytes(), pos))
}

func TestBytesDeserializeOwnsItsMemory(t *testing.T) {
	buf, pos, err := ToBytes(Bytes("immutable?"))
	require.NoError(t, err)

	arch := ArchivedBytesAt(buf, pos)
	owned, err := arch.Deserialize(HeapDeserializer{}, buf, pos)
	require.NoError(t, err)
	require.Equal(t, Bytes("immutable?"), owned)

	buf[0] ^= 0xFF
	require.Equal(t, Bytes("immutable?"), owned)
}

func TestFixedBufferExhaustion(t *testing.T) {
	// write phase fails
	fb := NewFixedBuffer(make([]byte, 4))
	_, err := ArchiveValue(fb, Bytes("too long for four bytes"))
	require.ErrorIs(t, err, ErrBufferFull)

	// reserve phase fails: the out-of-line bytes fit, the slot does not
	fb = NewFixedBuffer(make([]byte, 6))
	_, err = ArchiveValue(fb, Bytes("abcd"))
	require.ErrorIs(t, err, ErrBufferFull)

	// exact fit succeeds
	fb = NewFixedBuffer(make([]byte, 4+ArchivedBytesLen))
	pos, err := ArchiveValue(fb, Bytes("abcd"))
	require.NoError(t, err)
	require.Equal(t, 4, pos)
	require.Len(t, fb.Bytes(), 4+ArchivedBytesLen)
}

func TestFixedBufferMatchesBuffer(t *testing.T) {
	grow := NewBuffer()
	posG, err := ArchiveValue(grow, Bytes("same bytes either way"))
	require.NoError(t, err)

	fixed := NewFixedBuffer(make([]byte, 64))
	posF, err := ArchiveValue(fixed, Bytes("same bytes either way"))
	require.NoError(t, err)

	require.Equal(t, posG, posF)
	require.Equal(t, grow.Bytes(), fixed.Bytes())
}
