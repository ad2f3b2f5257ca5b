// Package arcwire frames finished archive buffers for storage or
// transport: a fixed header, optional compression, and an integrity
// trailer. The archive bytes inside a verified frame are handed back
// untouched, ready for zero-copy access.
package arcwire

import "errors"

const (
	MagicV1   = 0x31564B41 // "AKV1"
	VersionV1 = 1

	// flags & CompressionMask selects the payload compression
	CompressionMask = 0x000F
	CompNone        = 0x0000
	CompZstd        = 0x0001
	CompLZ4         = 0x0002

	// flags & ChecksumMask selects the integrity trailer
	ChecksumMask   = 0x00F0
	ChecksumCRC32  = 0x0000
	ChecksumBLAKE3 = 0x0010

	HeaderSize = 8 // magic + version + flags, before the varint raw length
)

var (
	ErrShortFrame = errors.New("arcwire: frame too short")
	ErrBadMagic   = errors.New("arcwire: bad magic")
	ErrChecksum   = errors.New("arcwire: checksum mismatch")
)

// Options selects the frame features. The zero value means no compression
// with a CRC32 trailer.
type Options struct {
	Compression uint16
	Checksum    uint16
}
