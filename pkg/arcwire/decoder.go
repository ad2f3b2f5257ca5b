package arcwire

import (
	"crypto/subtle"
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/zeebo/blake3"

	"github.com/rawbytedev/arkiv/internal/common"
)

// Decoder unwraps frames back into archive buffers. The returned slice is
// reused across calls unless the frame was stored raw, in which case it
// aliases the input.
type Decoder struct {
	raw []byte
}

// Decode verifies magic, version and the integrity trailer, then returns
// the decompressed archive bytes.
func (d *Decoder) Decode(frame []byte) ([]byte, error) {
	if len(frame) < HeaderSize+1+4 {
		return nil, ErrShortFrame
	}
	if binary.LittleEndian.Uint32(frame[0:]) != MagicV1 {
		return nil, ErrBadMagic
	}
	if v := binary.LittleEndian.Uint16(frame[4:]); v != VersionV1 {
		return nil, fmt.Errorf("arcwire: unsupported version: %d", v)
	}
	flags := binary.LittleEndian.Uint16(frame[6:])

	var digestLen int
	switch flags & ChecksumMask {
	case ChecksumCRC32:
		digestLen = 4
	case ChecksumBLAKE3:
		digestLen = 32
	default:
		return nil, fmt.Errorf("arcwire: unknown checksum flag: %#x", flags&ChecksumMask)
	}
	if len(frame) < HeaderSize+1+digestLen {
		return nil, ErrShortFrame
	}
	body := frame[:len(frame)-digestLen]
	trailer := frame[len(frame)-digestLen:]

	switch flags & ChecksumMask {
	case ChecksumCRC32:
		if crc32.ChecksumIEEE(body) != binary.LittleEndian.Uint32(trailer) {
			return nil, ErrChecksum
		}
	case ChecksumBLAKE3:
		sum := blake3.Sum256(body)
		if subtle.ConstantTimeCompare(sum[:], trailer) != 1 {
			return nil, ErrChecksum
		}
	}

	rawLen, n := common.ReadVarUint(body[HeaderSize:])
	if n == 0 {
		return nil, ErrShortFrame
	}
	payload := body[HeaderSize+n:]

	switch flags & CompressionMask {
	case CompNone:
		if uint64(len(payload)) != rawLen {
			return nil, fmt.Errorf("arcwire: length mismatch: header %d, payload %d", rawLen, len(payload))
		}
		return payload, nil
	case CompZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		d.raw, err = dec.DecodeAll(payload, d.raw[:0])
		if err != nil {
			return nil, fmt.Errorf("arcwire: zstd: %w", err)
		}
		if uint64(len(d.raw)) != rawLen {
			return nil, fmt.Errorf("arcwire: length mismatch: header %d, decompressed %d", rawLen, len(d.raw))
		}
		return d.raw, nil
	case CompLZ4:
		if cap(d.raw) < int(rawLen) {
			d.raw = make([]byte, rawLen)
		}
		d.raw = d.raw[:rawLen]
		n, err := lz4.UncompressBlock(payload, d.raw)
		if err != nil {
			return nil, fmt.Errorf("arcwire: lz4: %w", err)
		}
		if uint64(n) != rawLen {
			return nil, fmt.Errorf("arcwire: length mismatch: header %d, decompressed %d", rawLen, n)
		}
		return d.raw, nil
	default:
		return nil, fmt.Errorf("arcwire: unknown compression flag: %#x", flags&CompressionMask)
	}
}
