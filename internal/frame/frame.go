// Package frame strips Ethernet (with any 802.1Q VLAN tags), IPv4, and UDP
// framing from a raw captured packet, yielding the UDP payload that carries
// an ITCH MoldUDP-style packet. It deliberately reads the bytes by hand
// rather than through gopacket's layered decoder, matching the minimal
// "skip N bytes, read ethertype, loop" algorithm the protocol needs.
package frame

import "encoding/binary"

const (
	ethernetHeaderLen  = 12 // source + destination MAC addresses
	vlanTagLen         = 4
	ethertypeIPv4       = 0x0800
	ipProtocolUDP      = 17
	udpHeaderLen       = 8
)

// Extract returns the UDP payload of packet, or ok=false if packet is not an
// Ethernet/IPv4/UDP frame (truncated, non-IPv4, or non-UDP). It does not
// verify IP or UDP checksums.
func Extract(packet []byte) (payload []byte, ok bool) {
	if len(packet) < ethernetHeaderLen+2 {
		return nil, false
	}
	pos := ethernetHeaderLen

	for {
		if pos+2 > len(packet) {
			return nil, false
		}
		ethertype := binary.BigEndian.Uint16(packet[pos : pos+2])
		if ethertype == ethertypeIPv4 {
			break
		}
		pos += vlanTagLen
	}
	pos += 2 // past the IPv4 ethertype field itself

	if pos+1 > len(packet) {
		return nil, false
	}
	ihl := int(packet[pos] & 0x0F)
	ipHeaderLen := ihl * 4
	if ipHeaderLen < 20 || pos+ipHeaderLen > len(packet) {
		return nil, false
	}
	protocol := packet[pos+9]
	pos += ipHeaderLen

	if protocol != ipProtocolUDP {
		return nil, false
	}
	if pos+udpHeaderLen > len(packet) {
		return nil, false
	}
	udpTotalLength := int(binary.BigEndian.Uint16(packet[pos+4 : pos+6]))
	if udpTotalLength < udpHeaderLen {
		return nil, false
	}
	pos += udpHeaderLen
	length := udpTotalLength - udpHeaderLen
	if pos+length > len(packet) {
		return nil, false
	}
	if length < 0 {
		return nil, false
	}
	return packet[pos : pos+length], true
}
