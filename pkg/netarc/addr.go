// Package netarc archives network address and endpoint values with fixed,
// platform-independent layouts: IPv4/IPv6 addresses, the tagged address
// union, and socket endpoints. The owned types here are plain host
// representations; their archived counterparts live in archived.go.
package netarc

import (
	"bytes"
	"fmt"
)

// IPv4Addr is an owned IPv4 address as four octets.
type IPv4Addr [4]byte

func (a IPv4Addr) Octets() [4]byte {
	return a
}

// IsLoopback reports 127.0.0.0/8.
func (a IPv4Addr) IsLoopback() bool {
	return a[0] == 127
}

// IsBroadcast reports 255.255.255.255.
func (a IPv4Addr) IsBroadcast() bool {
	return a == IPv4Addr{255, 255, 255, 255}
}

// IsUnspecified reports 0.0.0.0.
func (a IPv4Addr) IsUnspecified() bool {
	return a == IPv4Addr{}
}

// IsMulticast reports 224.0.0.0/4.
func (a IPv4Addr) IsMulticast() bool {
	return a[0] >= 224 && a[0] <= 239
}

// IsLinkLocal reports 169.254.0.0/16.
func (a IPv4Addr) IsLinkLocal() bool {
	return a[0] == 169 && a[1] == 254
}

// IsPrivate reports 10.0.0.0/8, 172.16.0.0/12 and 192.168.0.0/16.
func (a IPv4Addr) IsPrivate() bool {
	switch {
	case a[0] == 10:
		return true
	case a[0] == 172 && a[1]&0xf0 == 16:
		return true
	case a[0] == 192 && a[1] == 168:
		return true
	}
	return false
}

// IsDocumentation reports the TEST-NET ranges 192.0.2.0/24, 198.51.100.0/24
// and 203.0.113.0/24.
func (a IPv4Addr) IsDocumentation() bool {
	switch {
	case a[0] == 192 && a[1] == 0 && a[2] == 2:
		return true
	case a[0] == 198 && a[1] == 51 && a[2] == 100:
		return true
	case a[0] == 203 && a[1] == 0 && a[2] == 113:
		return true
	}
	return false
}

// ToIPv6Mapped returns ::ffff:a.b.c.d.
func (a IPv4Addr) ToIPv6Mapped() IPv6Addr {
	return IPv6Addr{0, 0, 0, 0, 0, 0xffff,
		uint16(a[0])<<8 | uint16(a[1]),
		uint16(a[2])<<8 | uint16(a[3])}
}

// ToIPv6Compatible returns ::a.b.c.d.
func (a IPv4Addr) ToIPv6Compatible() IPv6Addr {
	return IPv6Addr{0, 0, 0, 0, 0, 0,
		uint16(a[0])<<8 | uint16(a[1]),
		uint16(a[2])<<8 | uint16(a[3])}
}

func (a IPv4Addr) Compare(o IPv4Addr) int {
	return bytes.Compare(a[:], o[:])
}

func (a IPv4Addr) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", a[0], a[1], a[2], a[3])
}

// IPv6Addr is an owned IPv6 address as eight 16-bit segments in host
// representation. Byte-order normalization happens only at the archive
// boundary.
type IPv6Addr [8]uint16

func (a IPv6Addr) Segments() [8]uint16 {
	return a
}

// Octets expands the segments big-endian into sixteen bytes.
func (a IPv6Addr) Octets() [16]byte {
	var o [16]byte
	for i, s := range a {
		o[2*i] = byte(s >> 8)
		o[2*i+1] = byte(s)
	}
	return o
}

// IsLoopback reports ::1.
func (a IPv6Addr) IsLoopback() bool {
	return a == IPv6Addr{0, 0, 0, 0, 0, 0, 0, 1}
}

// IsUnspecified reports ::.
func (a IPv6Addr) IsUnspecified() bool {
	return a == IPv6Addr{}
}

// IsMulticast reports ff00::/8.
func (a IPv6Addr) IsMulticast() bool {
	return a[0]&0xff00 == 0xff00
}

// ToIPv4 extracts an IPv4 address from an IPv4-compatible (::a.b.c.d) or
// IPv4-mapped (::ffff:a.b.c.d) address.
func (a IPv6Addr) ToIPv4() (IPv4Addr, bool) {
	if a[0] != 0 || a[1] != 0 || a[2] != 0 || a[3] != 0 || a[4] != 0 {
		return IPv4Addr{}, false
	}
	if a[5] != 0 && a[5] != 0xffff {
		return IPv4Addr{}, false
	}
	return IPv4Addr{byte(a[6] >> 8), byte(a[6]), byte(a[7] >> 8), byte(a[7])}, true
}

func (a IPv6Addr) Compare(o IPv6Addr) int {
	for i := range a {
		switch {
		case a[i] < o[i]:
			return -1
		case a[i] > o[i]:
			return 1
		}
	}
	return 0
}

func (a IPv6Addr) String() string {
	return fmt.Sprintf("%x:%x:%x:%x:%x:%x:%x:%x",
		a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7])
}

// Family discriminates address families. The numeric values follow
// declaration order and are the archived tag bytes; they never change.
type Family uint8

const (
	V4 Family = iota
	V6
)

func (f Family) String() string {
	switch f {
	case V4:
		return "v4"
	case V6:
		return "v6"
	}
	return fmt.Sprintf("family(%d)", uint8(f))
}

// IPAddr is the sum of the two address families with an explicit tag.
// Constructors zero the unused arm so values compare with ==.
type IPAddr struct {
	family Family
	v4     IPv4Addr
	v6     IPv6Addr
}

func IPv4(a IPv4Addr) IPAddr {
	return IPAddr{family: V4, v4: a}
}

func IPv6(a IPv6Addr) IPAddr {
	return IPAddr{family: V6, v6: a}
}

func (a IPAddr) Family() Family {
	return a.family
}

func (a IPAddr) IsV4() bool {
	return a.family == V4
}

func (a IPAddr) IsV6() bool {
	return a.family == V6
}

// V4 returns the IPv4 arm; ok is false for a V6 value.
func (a IPAddr) V4() (IPv4Addr, bool) {
	return a.v4, a.family == V4
}

// V6 returns the IPv6 arm; ok is false for a V4 value.
func (a IPAddr) V6() (IPv6Addr, bool) {
	return a.v6, a.family == V6
}

func (a IPAddr) IsLoopback() bool {
	if a.family == V4 {
		return a.v4.IsLoopback()
	}
	return a.v6.IsLoopback()
}

func (a IPAddr) IsUnspecified() bool {
	if a.family == V4 {
		return a.v4.IsUnspecified()
	}
	return a.v6.IsUnspecified()
}

func (a IPAddr) IsMulticast() bool {
	if a.family == V4 {
		return a.v4.IsMulticast()
	}
	return a.v6.IsMulticast()
}

// Compare orders by family first (V4 before V6), then within the family.
func (a IPAddr) Compare(o IPAddr) int {
	if c := compareFamily(a.family, o.family); c != 0 {
		return c
	}
	if a.family == V4 {
		return a.v4.Compare(o.v4)
	}
	return a.v6.Compare(o.v6)
}

func (a IPAddr) String() string {
	if a.family == V4 {
		return a.v4.String()
	}
	return a.v6.String()
}

func compareFamily(a, b Family) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// SockAddrV4 is an IPv4 endpoint.
type SockAddrV4 struct {
	IP   IPv4Addr
	Port uint16
}

func (s SockAddrV4) Compare(o SockAddrV4) int {
	if c := s.IP.Compare(o.IP); c != 0 {
		return c
	}
	return compareU32(uint32(s.Port), uint32(o.Port))
}

func (s SockAddrV4) String() string {
	return fmt.Sprintf("%s:%d", s.IP, s.Port)
}

// SockAddrV6 is an IPv6 endpoint with flow and scope metadata.
type SockAddrV6 struct {
	IP       IPv6Addr
	Port     uint16
	Flowinfo uint32
	ScopeID  uint32
}

func (s SockAddrV6) Compare(o SockAddrV6) int {
	if c := s.IP.Compare(o.IP); c != 0 {
		return c
	}
	if c := compareU32(uint32(s.Port), uint32(o.Port)); c != 0 {
		return c
	}
	if c := compareU32(s.Flowinfo, o.Flowinfo); c != 0 {
		return c
	}
	return compareU32(s.ScopeID, o.ScopeID)
}

func (s SockAddrV6) String() string {
	return fmt.Sprintf("[%s]:%d", s.IP, s.Port)
}

// SockAddr is the endpoint union over both families.
type SockAddr struct {
	family Family
	v4     SockAddrV4
	v6     SockAddrV6
}

func SockV4(s SockAddrV4) SockAddr {
	return SockAddr{family: V4, v4: s}
}

func SockV6(s SockAddrV6) SockAddr {
	return SockAddr{family: V6, v6: s}
}

func (s SockAddr) Family() Family {
	return s.family
}

func (s SockAddr) IsV4() bool {
	return s.family == V4
}

func (s SockAddr) IsV6() bool {
	return s.family == V6
}

func (s SockAddr) V4() (SockAddrV4, bool) {
	return s.v4, s.family == V4
}

func (s SockAddr) V6() (SockAddrV6, bool) {
	return s.v6, s.family == V6
}

func (s SockAddr) IP() IPAddr {
	if s.family == V4 {
		return IPv4(s.v4.IP)
	}
	return IPv6(s.v6.IP)
}

func (s SockAddr) Port() uint16 {
	if s.family == V4 {
		return s.v4.Port
	}
	return s.v6.Port
}

func (s SockAddr) Compare(o SockAddr) int {
	if c := compareFamily(s.family, o.family); c != 0 {
		return c
	}
	if s.family == V4 {
		return s.v4.Compare(o.v4)
	}
	return s.v6.Compare(o.v6)
}

func (s SockAddr) String() string {
	if s.family == V4 {
		return s.v4.String()
	}
	return s.v6.String()
}

func compareU32(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
