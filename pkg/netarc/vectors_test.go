package netarc

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/arkiv"
)

// Golden wire vectors. The hex strings are a format commitment: a failure
// here means the archived layout changed, not that the test is stale.
const endpointVectors = `
- name: v4 loopback http-alt
  family: v4
  octets: [127, 0, 0, 1]
  port: 8080
  loopback: true
  hex: 007f000001901f0000000000000000000000000000000000000000
- name: v6 loopback https
  family: v6
  segments: [0, 0, 0, 0, 0, 0, 0, 1]
  port: 443
  loopback: true
  hex: 0100000000000000000000000000000001bb010000000000000000
- name: v6 link-local mdns
  family: v6
  segments: [0xfe80, 0, 0, 0, 0, 0, 0, 1]
  port: 5353
  flowinfo: 7
  scope_id: 2
  loopback: false
  hex: 01fe800000000000000000000000000001e9140700000002000000
- name: v4 private dns
  family: v4
  octets: [192, 168, 1, 10]
  port: 53
  loopback: false
  hex: 00c0a8010a35000000000000000000000000000000000000000000
`

type endpointVector struct {
	Name     string   `yaml:"name"`
	Family   string   `yaml:"family"`
	Octets   []int    `yaml:"octets"`
	Segments []uint16 `yaml:"segments"`
	Port     uint16   `yaml:"port"`
	Flowinfo uint32   `yaml:"flowinfo"`
	ScopeID  uint32   `yaml:"scope_id"`
	Loopback bool     `yaml:"loopback"`
	Hex      string   `yaml:"hex"`
}

func (v endpointVector) sockAddr(t *testing.T) SockAddr {
	t.Helper()
	switch v.Family {
	case "v4":
		require.Len(t, v.Octets, 4)
		var ip IPv4Addr
		for i, o := range v.Octets {
			ip[i] = byte(o)
		}
		return SockV4(SockAddrV4{IP: ip, Port: v.Port})
	case "v6":
		require.Len(t, v.Segments, 8)
		return SockV6(SockAddrV6{
			IP:       IPv6Addr(v.Segments),
			Port:     v.Port,
			Flowinfo: v.Flowinfo,
			ScopeID:  v.ScopeID,
		})
	}
	t.Fatalf("unknown family %q", v.Family)
	return SockAddr{}
}

func TestEndpointWireVectors(t *testing.T) {
	var vectors []endpointVector
	require.NoError(t, yaml.Unmarshal([]byte(endpointVectors), &vectors))
	require.NotEmpty(t, vectors)

	for _, vec := range vectors {
		t.Run(vec.Name, func(t *testing.T) {
			ep := vec.sockAddr(t)

			buf, pos, err := arkiv.ToBytes(ep)
			require.NoError(t, err)
			require.Equal(t, vec.Hex, hex.EncodeToString(buf[pos:pos+SizeSockAddr]))

			arch := ArchivedSockAddrAt(buf, pos)
			require.Equal(t, vec.Loopback, arch.IP().IsLoopback())
			require.Equal(t, vec.Port, arch.Port())

			got, err := arch.Deserialize(arkiv.HeapDeserializer{})
			require.NoError(t, err)
			require.Equal(t, ep, got)
		})
	}
}
