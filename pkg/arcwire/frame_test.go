package arcwire

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/rawbytedev/arkiv"
	"github.com/rawbytedev/arkiv/pkg/netarc"
)

func makeArchive(t *testing.T) []byte {
	t.Helper()
	b := arkiv.NewBuffer()
	for port := uint16(1); port <= 64; port++ {
		ep := netarc.SockV4(netarc.SockAddrV4{IP: netarc.IPv4Addr{10, 0, 0, byte(port)}, Port: port})
		if _, err := arkiv.ArchiveValue(b, ep); err != nil {
			t.Fatal(err)
		}
	}
	return b.Bytes()
}

func TestFrameRoundTrip(t *testing.T) {
	archive := makeArchive(t)
	comps := []uint16{CompNone, CompZstd, CompLZ4}
	sums := []uint16{ChecksumCRC32, ChecksumBLAKE3}

	for _, comp := range comps {
		for _, sum := range sums {
			e := NewEncoder(Options{Compression: comp, Checksum: sum})
			frame, err := e.Encode(archive)
			if err != nil {
				t.Fatalf("encode comp=%#x sum=%#x: %v", comp, sum, err)
			}
			var d Decoder
			got, err := d.Decode(frame)
			if err != nil {
				t.Fatalf("decode comp=%#x sum=%#x: %v", comp, sum, err)
			}
			if !bytes.Equal(got, archive) {
				t.Fatalf("payload mismatch comp=%#x sum=%#x", comp, sum)
			}
		}
	}
}

func TestFrameZeroCopyAfterDecode(t *testing.T) {
	archive := makeArchive(t)
	e := NewEncoder(Options{Compression: CompZstd, Checksum: ChecksumBLAKE3})
	frame, err := e.Encode(archive)
	if err != nil {
		t.Fatal(err)
	}
	var d Decoder
	got, err := d.Decode(frame)
	if err != nil {
		t.Fatal(err)
	}
	// overlay the first endpoint straight off the unwrapped buffer
	arch := netarc.ArchivedSockAddrAt(got, 0)
	want := netarc.SockV4(netarc.SockAddrV4{IP: netarc.IPv4Addr{10, 0, 0, 1}, Port: 1})
	if !arch.EqualAddr(want) {
		t.Fatalf("overlay mismatch: %v", arch)
	}
}

func TestFrameChecksumRejection(t *testing.T) {
	archive := makeArchive(t)
	for _, sum := range []uint16{ChecksumCRC32, ChecksumBLAKE3} {
		e := NewEncoder(Options{Checksum: sum})
		frame, err := e.Encode(archive)
		if err != nil {
			t.Fatal(err)
		}
		corrupt := append([]byte(nil), frame...)
		corrupt[len(corrupt)/2] ^= 0x01
		var d Decoder
		if _, err := d.Decode(corrupt); !errors.Is(err, ErrChecksum) {
			t.Fatalf("sum=%#x: want ErrChecksum, got %v", sum, err)
		}
	}
}

func TestFrameBadMagic(t *testing.T) {
	e := NewEncoder(Options{})
	frame, err := e.Encode([]byte("payload"))
	if err != nil {
		t.Fatal(err)
	}
	bad := append([]byte(nil), frame...)
	bad[0] ^= 0xFF
	var d Decoder
	if _, err := d.Decode(bad); !errors.Is(err, ErrBadMagic) {
		t.Fatalf("want ErrBadMagic, got %v", err)
	}
}

func TestFrameTooShort(t *testing.T) {
	var d Decoder
	if _, err := d.Decode([]byte{0x41, 0x4B}); !errors.Is(err, ErrShortFrame) {
		t.Fatalf("want ErrShortFrame, got %v", err)
	}
}

func TestFrameUnsupportedVersion(t *testing.T) {
	e := NewEncoder(Options{})
	frame, err := e.Encode([]byte("payload"))
	if err != nil {
		t.Fatal(err)
	}
	bad := append([]byte(nil), frame...)
	bad[4] = 0xEE
	var d Decoder
	if _, err := d.Decode(bad); err == nil {
		t.Fatal("expected version error")
	}
}

func TestFrameIncompressibleLZ4(t *testing.T) {
	// random bytes do not compress; the encoder must fall back to raw
	// storage and the frame must still round-trip
	rng := rand.New(rand.NewSource(1))
	raw := make([]byte, 512)
	rng.Read(raw)

	e := NewEncoder(Options{Compression: CompLZ4})
	frame, err := e.Encode(raw)
	if err != nil {
		t.Fatal(err)
	}
	var d Decoder
	got, err := d.Decode(frame)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, raw) {
		t.Fatal("payload mismatch")
	}
}

func TestFrameEmptyArchive(t *testing.T) {
	e := NewEncoder(Options{Compression: CompZstd})
	frame, err := e.Encode(nil)
	if err != nil {
		t.Fatal(err)
	}
	var d Decoder
	got, err := d.Decode(frame)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty payload, got %d bytes", len(got))
	}
}
