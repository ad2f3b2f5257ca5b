package netarc

import (
	"encoding/binary"

	"github.com/rawbytedev/arkiv"
)

// Declared layouts for every archived shape. The address family opts into
// packed mode; the offsets feeding Resolve and the overlay accessors all
// come from here, so layout and access cannot drift apart (the tests
// cross-check these against the Size constants).
var (
	sockAddrV4Layout = arkiv.NewRecordLayout(arkiv.LayoutPacked,
		arkiv.Field{Name: "ip", Size: SizeIPv4Addr, Align: 1},
		arkiv.Field{Name: "port", Size: 2},
	)
	sockAddrV6Layout = arkiv.NewRecordLayout(arkiv.LayoutPacked,
		arkiv.Field{Name: "ip", Size: SizeIPv6Addr, Align: 1},
		arkiv.Field{Name: "port", Size: 2},
		arkiv.Field{Name: "flowinfo", Size: 4},
		arkiv.Field{Name: "scope_id", Size: 4},
	)

	ipAddrV4Variant = arkiv.NewVariantLayout(arkiv.LayoutPacked, uint8(V4),
		arkiv.Field{Name: "v4", Size: SizeIPv4Addr, Align: 1})
	ipAddrV6Variant = arkiv.NewVariantLayout(arkiv.LayoutPacked, uint8(V6),
		arkiv.Field{Name: "v6", Size: SizeIPv6Addr, Align: 1})

	sockAddrV4Variant = arkiv.NewVariantLayout(arkiv.LayoutPacked, uint8(V4),
		arkiv.Field{Name: "v4", Size: SizeSockAddrV4, Align: 1})
	sockAddrV6Variant = arkiv.NewVariantLayout(arkiv.LayoutPacked, uint8(V6),
		arkiv.Field{Name: "v6", Size: SizeSockAddrV6, Align: 1})
)

var (
	offSockV4IP   = sockAddrV4Layout.Offset(0)
	offSockV4Port = sockAddrV4Layout.Offset(1)

	offSockV6IP    = sockAddrV6Layout.Offset(0)
	offSockV6Port  = sockAddrV6Layout.Offset(1)
	offSockV6Flow  = sockAddrV6Layout.Offset(2)
	offSockV6Scope = sockAddrV6Layout.Offset(3)
)

// IPv4Addr

func (a IPv4Addr) ArchivedLen() int {
	return SizeIPv4Addr
}

// Serialize is trivial: the archived form has no out-of-line data.
func (a IPv4Addr) Serialize(arkiv.Serializer) (arkiv.Resolver, error) {
	return nil, nil
}

func (a IPv4Addr) Resolve(_ int, _ arkiv.Resolver, out []byte) {
	copy(out, a[:])
}

func (a *ArchivedIPv4Addr) Deserialize(arkiv.Deserializer) (IPv4Addr, error) {
	return a.Unarchive(), nil
}

// IPv6Addr

func (a IPv6Addr) ArchivedLen() int {
	return SizeIPv6Addr
}

func (a IPv6Addr) Serialize(arkiv.Serializer) (arkiv.Resolver, error) {
	return nil, nil
}

// Resolve normalizes each segment to big-endian storage.
func (a IPv6Addr) Resolve(_ int, _ arkiv.Resolver, out []byte) {
	for i, s := range a {
		binary.BigEndian.PutUint16(out[2*i:], s)
	}
}

func (a *ArchivedIPv6Addr) Deserialize(arkiv.Deserializer) (IPv6Addr, error) {
	return a.Unarchive(), nil
}

// IPAddr

func (a IPAddr) ArchivedLen() int {
	return SizeIPAddr
}

func (a IPAddr) Serialize(s arkiv.Serializer) (arkiv.Resolver, error) {
	if a.family == V4 {
		return a.v4.Serialize(s)
	}
	return a.v6.Serialize(s)
}

func (a IPAddr) Resolve(pos int, res arkiv.Resolver, out []byte) {
	if a.family == V4 {
		arkiv.ResolveVariant(pos, ipAddrV4Variant, a.v4, res, out)
		return
	}
	arkiv.ResolveVariant(pos, ipAddrV6Variant, a.v6, res, out)
}

func (a *ArchivedIPAddr) Deserialize(d arkiv.Deserializer) (IPAddr, error) {
	if a.IsV4() {
		v, err := a.V4().Deserialize(d)
		return IPv4(v), err
	}
	v, err := a.V6().Deserialize(d)
	return IPv6(v), err
}

// SockAddrV4

func (s SockAddrV4) ArchivedLen() int {
	return SizeSockAddrV4
}

func (s SockAddrV4) Serialize(arkiv.Serializer) (arkiv.Resolver, error) {
	return nil, nil
}

// Resolve recurses into the address field at its true absolute position.
func (s SockAddrV4) Resolve(pos int, res arkiv.Resolver, out []byte) {
	s.IP.Resolve(pos+offSockV4IP, res, out[offSockV4IP:offSockV4IP+SizeIPv4Addr])
	binary.LittleEndian.PutUint16(out[offSockV4Port:], s.Port)
}

func (a *ArchivedSockAddrV4) Deserialize(d arkiv.Deserializer) (SockAddrV4, error) {
	ip, err := a.IP().Deserialize(d)
	if err != nil {
		return SockAddrV4{}, err
	}
	return SockAddrV4{IP: ip, Port: a.Port()}, nil
}

// SockAddrV6

func (s SockAddrV6) ArchivedLen() int {
	return SizeSockAddrV6
}

func (s SockAddrV6) Serialize(arkiv.Serializer) (arkiv.Resolver, error) {
	return nil, nil
}

func (s SockAddrV6) Resolve(pos int, res arkiv.Resolver, out []byte) {
	s.IP.Resolve(pos+offSockV6IP, res, out[offSockV6IP:offSockV6IP+SizeIPv6Addr])
	binary.LittleEndian.PutUint16(out[offSockV6Port:], s.Port)
	binary.LittleEndian.PutUint32(out[offSockV6Flow:], s.Flowinfo)
	binary.LittleEndian.PutUint32(out[offSockV6Scope:], s.ScopeID)
}

func (a *ArchivedSockAddrV6) Deserialize(d arkiv.Deserializer) (SockAddrV6, error) {
	ip, err := a.IP().Deserialize(d)
	if err != nil {
		return SockAddrV6{}, err
	}
	return SockAddrV6{
		IP:       ip,
		Port:     a.Port(),
		Flowinfo: a.Flowinfo(),
		ScopeID:  a.ScopeID(),
	}, nil
}

// SockAddr

func (s SockAddr) ArchivedLen() int {
	return SizeSockAddr
}

func (s SockAddr) Serialize(sz arkiv.Serializer) (arkiv.Resolver, error) {
	if s.family == V4 {
		return s.v4.Serialize(sz)
	}
	return s.v6.Serialize(sz)
}

func (s SockAddr) Resolve(pos int, res arkiv.Resolver, out []byte) {
	if s.family == V4 {
		arkiv.ResolveVariant(pos, sockAddrV4Variant, s.v4, res, out)
		return
	}
	arkiv.ResolveVariant(pos, sockAddrV6Variant, s.v6, res, out)
}

func (a *ArchivedSockAddr) Deserialize(d arkiv.Deserializer) (SockAddr, error) {
	if a.IsV4() {
		v, err := a.V4().Deserialize(d)
		return SockV4(v), err
	}
	v, err := a.V6().Deserialize(d)
	return SockV6(v), err
}
