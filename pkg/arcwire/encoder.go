package arcwire

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/zeebo/blake3"

	"github.com/rawbytedev/arkiv/internal/common"
)

// Encoder frames archive buffers. Buffers are reused across calls; the
// returned slice is valid until the next Encode.
type Encoder struct {
	opts Options
	out  []byte
	comp []byte
}

func NewEncoder(opts Options) *Encoder {
	return &Encoder{opts: opts}
}

// Encode wraps archive in a frame: header, varint raw length, payload
// (compressed per the options), integrity trailer over everything before
// it.
func (e *Encoder) Encode(archive []byte) ([]byte, error) {
	comp := e.opts.Compression
	payload, err := e.compress(comp, archive)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		// incompressible input, store raw
		comp = CompNone
		payload = archive
	}

	e.out = e.out[:0]
	e.out = binary.LittleEndian.AppendUint32(e.out, MagicV1)
	e.out = binary.LittleEndian.AppendUint16(e.out, VersionV1)
	e.out = binary.LittleEndian.AppendUint16(e.out, comp|e.opts.Checksum)
	e.out = common.WriteVarUintTo(e.out, uint64(len(archive)))
	e.out = append(e.out, payload...)

	switch e.opts.Checksum & ChecksumMask {
	case ChecksumCRC32:
		e.out = binary.LittleEndian.AppendUint32(e.out, crc32.ChecksumIEEE(e.out))
	case ChecksumBLAKE3:
		sum := blake3.Sum256(e.out)
		e.out = append(e.out, sum[:]...)
	default:
		return nil, fmt.Errorf("arcwire: unknown checksum flag: %#x", e.opts.Checksum)
	}
	return e.out, nil
}

// compress returns nil when the input should be stored raw instead.
func (e *Encoder) compress(comp uint16, raw []byte) ([]byte, error) {
	switch comp & CompressionMask {
	case CompNone:
		return raw, nil
	case CompZstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		if err != nil {
			return nil, err
		}
		e.comp = enc.EncodeAll(raw, e.comp[:0])
		return e.comp, nil
	case CompLZ4:
		bound := lz4.CompressBlockBound(len(raw))
		if cap(e.comp) < bound {
			e.comp = make([]byte, bound)
		}
		e.comp = e.comp[:bound]
		var c lz4.Compressor
		n, err := c.CompressBlock(raw, e.comp)
		if err != nil {
			return nil, fmt.Errorf("arcwire: lz4: %w", err)
		}
		if n == 0 {
			return nil, nil
		}
		return e.comp[:n], nil
	default:
		return nil, fmt.Errorf("arcwire: unknown compression flag: %#x", comp)
	}
}
