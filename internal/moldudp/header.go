// Package moldudp decodes the MoldUDP-style packet header shared verbatim
// by both ITCH dialects: a 10-byte session identifier, an 8-byte sequence
// number for the first message in the packet, and a 2-byte message count.
package moldudp

import "github.com/marketfeeds/itchconv/internal/codec"

// Header is the fixed preamble of every ITCH packet, before the
// count-prefixed batch of messages.
type Header struct {
	Session       [10]byte
	FirstSequence uint64
	Count         uint16
}

// Decode reads a Header from the front of c, advancing it past the header.
func Decode(c *codec.Cursor) Header {
	var h Header
	copy(h.Session[:], c.Raw(10))
	h.FirstSequence = c.Uint64()
	h.Count = c.Uint16()
	return h
}

// SessionString renders the session identifier verbatim (no trimming, per
// spec.md §9 — unlike every other string field, session is copied whole).
func (h Header) SessionString() string {
	return string(h.Session[:])
}
