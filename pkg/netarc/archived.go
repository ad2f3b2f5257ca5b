package netarc

import (
	"encoding/binary"
	"unsafe"
)

// Archived sizes are wire-format commitments. Unions span the tag cell
// plus the widest arm; shorter arms are zero-padded at resolve time.
const (
	SizeIPv4Addr   = 4
	SizeIPv6Addr   = 16
	SizeIPAddr     = 1 + SizeIPv6Addr
	SizeSockAddrV4 = SizeIPv4Addr + 2
	SizeSockAddrV6 = SizeIPv6Addr + 2 + 4 + 4
	SizeSockAddr   = 1 + SizeSockAddrV6
)

// Every overlay below is a fixed byte array with alignment 1, so pointing
// one at any in-bounds buffer offset is always a valid cast. The loaders
// slice first to keep the bounds check.

// ArchivedIPv4Addr is the archived form of IPv4Addr: four octets verbatim.
type ArchivedIPv4Addr [SizeIPv4Addr]byte

func ArchivedIPv4AddrAt(buf []byte, pos int) *ArchivedIPv4Addr {
	return (*ArchivedIPv4Addr)(unsafe.Pointer(&buf[pos : pos+SizeIPv4Addr][0]))
}

func (a *ArchivedIPv4Addr) Octets() [4]byte {
	return *a
}

// Unarchive returns an independently owned IPv4Addr with the same value.
func (a *ArchivedIPv4Addr) Unarchive() IPv4Addr {
	return IPv4Addr(*a)
}

func (a *ArchivedIPv4Addr) IsLoopback() bool      { return a.Unarchive().IsLoopback() }
func (a *ArchivedIPv4Addr) IsBroadcast() bool     { return a.Unarchive().IsBroadcast() }
func (a *ArchivedIPv4Addr) IsUnspecified() bool   { return a.Unarchive().IsUnspecified() }
func (a *ArchivedIPv4Addr) IsMulticast() bool     { return a.Unarchive().IsMulticast() }
func (a *ArchivedIPv4Addr) IsLinkLocal() bool     { return a.Unarchive().IsLinkLocal() }
func (a *ArchivedIPv4Addr) IsPrivate() bool       { return a.Unarchive().IsPrivate() }
func (a *ArchivedIPv4Addr) IsDocumentation() bool { return a.Unarchive().IsDocumentation() }

func (a *ArchivedIPv4Addr) String() string {
	return a.Unarchive().String()
}

// ArchivedIPv6Addr is the archived form of IPv6Addr: eight 16-bit segments
// stored big-endian regardless of host byte order.
type ArchivedIPv6Addr [SizeIPv6Addr]byte

func ArchivedIPv6AddrAt(buf []byte, pos int) *ArchivedIPv6Addr {
	return (*ArchivedIPv6Addr)(unsafe.Pointer(&buf[pos : pos+SizeIPv6Addr][0]))
}

func (a *ArchivedIPv6Addr) Octets() [16]byte {
	return *a
}

func (a *ArchivedIPv6Addr) Segments() [8]uint16 {
	var s [8]uint16
	for i := range s {
		s[i] = binary.BigEndian.Uint16(a[2*i:])
	}
	return s
}

func (a *ArchivedIPv6Addr) Unarchive() IPv6Addr {
	return IPv6Addr(a.Segments())
}

func (a *ArchivedIPv6Addr) IsLoopback() bool    { return a.Unarchive().IsLoopback() }
func (a *ArchivedIPv6Addr) IsUnspecified() bool { return a.Unarchive().IsUnspecified() }
func (a *ArchivedIPv6Addr) IsMulticast() bool   { return a.Unarchive().IsMulticast() }

func (a *ArchivedIPv6Addr) String() string {
	return a.Unarchive().String()
}

// ArchivedIPAddr is the archived address union: tag byte then the selected
// arm's payload, v4 slack zeroed.
type ArchivedIPAddr [SizeIPAddr]byte

func ArchivedIPAddrAt(buf []byte, pos int) *ArchivedIPAddr {
	return (*ArchivedIPAddr)(unsafe.Pointer(&buf[pos : pos+SizeIPAddr][0]))
}

func (a *ArchivedIPAddr) Family() Family {
	return Family(a[0])
}

func (a *ArchivedIPAddr) IsV4() bool {
	return a.Family() == V4
}

func (a *ArchivedIPAddr) IsV6() bool {
	return a.Family() == V6
}

// V4 overlays the payload as an IPv4 arm. Only meaningful when IsV4.
func (a *ArchivedIPAddr) V4() *ArchivedIPv4Addr {
	return (*ArchivedIPv4Addr)(unsafe.Pointer(&a[ipAddrV4Variant.PayloadOffset()]))
}

// V6 overlays the payload as an IPv6 arm. Only meaningful when IsV6.
func (a *ArchivedIPAddr) V6() *ArchivedIPv6Addr {
	return (*ArchivedIPv6Addr)(unsafe.Pointer(&a[ipAddrV6Variant.PayloadOffset()]))
}

func (a *ArchivedIPAddr) Unarchive() IPAddr {
	switch a.Family() {
	case V4:
		return IPv4(a.V4().Unarchive())
	case V6:
		return IPv6(a.V6().Unarchive())
	}
	panic("netarc: invalid archived family tag")
}

func (a *ArchivedIPAddr) IsLoopback() bool    { return a.Unarchive().IsLoopback() }
func (a *ArchivedIPAddr) IsUnspecified() bool { return a.Unarchive().IsUnspecified() }
func (a *ArchivedIPAddr) IsMulticast() bool   { return a.Unarchive().IsMulticast() }

func (a *ArchivedIPAddr) String() string {
	return a.Unarchive().String()
}

// ArchivedSockAddrV4 is the archived IPv4 endpoint: ip then port. The port
// is little-endian, the house order for non-segment scalars.
type ArchivedSockAddrV4 [SizeSockAddrV4]byte

func ArchivedSockAddrV4At(buf []byte, pos int) *ArchivedSockAddrV4 {
	return (*ArchivedSockAddrV4)(unsafe.Pointer(&buf[pos : pos+SizeSockAddrV4][0]))
}

func (a *ArchivedSockAddrV4) IP() *ArchivedIPv4Addr {
	return (*ArchivedIPv4Addr)(unsafe.Pointer(&a[offSockV4IP]))
}

func (a *ArchivedSockAddrV4) Port() uint16 {
	return binary.LittleEndian.Uint16(a[offSockV4Port:])
}

func (a *ArchivedSockAddrV4) Unarchive() SockAddrV4 {
	return SockAddrV4{IP: a.IP().Unarchive(), Port: a.Port()}
}

func (a *ArchivedSockAddrV4) String() string {
	return a.Unarchive().String()
}

// ArchivedSockAddrV6 is the archived IPv6 endpoint: ip, port, flowinfo,
// scope id.
type ArchivedSockAddrV6 [SizeSockAddrV6]byte

func ArchivedSockAddrV6At(buf []byte, pos int) *ArchivedSockAddrV6 {
	return (*ArchivedSockAddrV6)(unsafe.Pointer(&buf[pos : pos+SizeSockAddrV6][0]))
}

func (a *ArchivedSockAddrV6) IP() *ArchivedIPv6Addr {
	return (*ArchivedIPv6Addr)(unsafe.Pointer(&a[offSockV6IP]))
}

func (a *ArchivedSockAddrV6) Port() uint16 {
	return binary.LittleEndian.Uint16(a[offSockV6Port:])
}

func (a *ArchivedSockAddrV6) Flowinfo() uint32 {
	return binary.LittleEndian.Uint32(a[offSockV6Flow:])
}

func (a *ArchivedSockAddrV6) ScopeID() uint32 {
	return binary.LittleEndian.Uint32(a[offSockV6Scope:])
}

func (a *ArchivedSockAddrV6) Unarchive() SockAddrV6 {
	return SockAddrV6{
		IP:       a.IP().Unarchive(),
		Port:     a.Port(),
		Flowinfo: a.Flowinfo(),
		ScopeID:  a.ScopeID(),
	}
}

func (a *ArchivedSockAddrV6) String() string {
	return a.Unarchive().String()
}

// ArchivedSockAddr is the archived endpoint union.
type ArchivedSockAddr [SizeSockAddr]byte

func ArchivedSockAddrAt(buf []byte, pos int) *ArchivedSockAddr {
	return (*ArchivedSockAddr)(unsafe.Pointer(&buf[pos : pos+SizeSockAddr][0]))
}

func (a *ArchivedSockAddr) Family() Family {
	return Family(a[0])
}

func (a *ArchivedSockAddr) IsV4() bool {
	return a.Family() == V4
}

func (a *ArchivedSockAddr) IsV6() bool {
	return a.Family() == V6
}

func (a *ArchivedSockAddr) V4() *ArchivedSockAddrV4 {
	return (*ArchivedSockAddrV4)(unsafe.Pointer(&a[sockAddrV4Variant.PayloadOffset()]))
}

func (a *ArchivedSockAddr) V6() *ArchivedSockAddrV6 {
	return (*ArchivedSockAddrV6)(unsafe.Pointer(&a[sockAddrV6Variant.PayloadOffset()]))
}

func (a *ArchivedSockAddr) IP() IPAddr {
	if a.IsV4() {
		return IPv4(a.V4().IP().Unarchive())
	}
	return IPv6(a.V6().IP().Unarchive())
}

func (a *ArchivedSockAddr) Port() uint16 {
	if a.IsV4() {
		return a.V4().Port()
	}
	return a.V6().Port()
}

func (a *ArchivedSockAddr) Unarchive() SockAddr {
	switch a.Family() {
	case V4:
		return SockV4(a.V4().Unarchive())
	case V6:
		return SockV6(a.V6().Unarchive())
	}
	panic("netarc: invalid archived family tag")
}

func (a *ArchivedSockAddr) String() string {
	return a.Unarchive().String()
}
