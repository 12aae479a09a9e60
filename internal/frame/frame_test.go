package frame

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildIPv4UDP assembles a minimal Ethernet/IPv4/UDP frame carrying payload,
// optionally preceded by vlanTags 802.1Q tags.
func buildIPv4UDP(t *testing.T, payload []byte, protocol byte, vlanTags int) []byte {
	t.Helper()
	buf := make([]byte, 0, 64+len(payload))
	buf = append(buf, make([]byte, ethernetHeaderLen)...) // dst+src MAC, contents irrelevant

	for i := 0; i < vlanTags; i++ {
		buf = append(buf, 0x81, 0x00, 0x00, 0x01) // 802.1Q tag, TPID then tag info
	}
	buf = append(buf, 0x08, 0x00) // IPv4 ethertype

	ipHeader := make([]byte, 20)
	ipHeader[0] = 0x45 // version 4, IHL 5 (20 bytes)
	ipHeader[9] = protocol
	buf = append(buf, ipHeader...)

	udpHeader := make([]byte, 8)
	binary.BigEndian.PutUint16(udpHeader[4:6], uint16(8+len(payload)))
	buf = append(buf, udpHeader...)
	buf = append(buf, payload...)
	return buf
}

func TestExtractPlainFrame(t *testing.T) {
	payload := []byte("hello itch payload")
	pkt := buildIPv4UDP(t, payload, ipProtocolUDP, 0)
	got, ok := Extract(pkt)
	require.True(t, ok)
	assert.Equal(t, payload, got)
}

func TestExtractVLANTaggedFrameMatchesUntagged(t *testing.T) {
	payload := []byte("hello itch payload")
	tagged := buildIPv4UDP(t, payload, ipProtocolUDP, 1)
	untagged := buildIPv4UDP(t, payload, ipProtocolUDP, 0)

	got, ok := Extract(tagged)
	require.True(t, ok)
	want, ok := Extract(untagged)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestExtractStackedVLANTags(t *testing.T) {
	payload := []byte("qinq")
	pkt := buildIPv4UDP(t, payload, ipProtocolUDP, 2)
	got, ok := Extract(pkt)
	require.True(t, ok)
	assert.Equal(t, payload, got)
}

func TestExtractNonUDPIsRejected(t *testing.T) {
	pkt := buildIPv4UDP(t, []byte("tcp data"), 6 /* TCP */, 0)
	_, ok := Extract(pkt)
	assert.False(t, ok)
}

func TestExtractTruncatedFrameIsRejected(t *testing.T) {
	pkt := []byte{0, 1, 2}
	_, ok := Extract(pkt)
	assert.False(t, ok)
}

func TestExtractNonIPv4EthertypeIsRejected(t *testing.T) {
	// A non-VLAN, non-IPv4 ethertype with nothing else: should be rejected,
	// not loop forever or panic, once bytes run out.
	pkt := make([]byte, ethernetHeaderLen+2)
	binary.BigEndian.PutUint16(pkt[ethernetHeaderLen:], 0x86DD) // IPv6 ethertype
	_, ok := Extract(pkt)
	assert.False(t, ok)
}
