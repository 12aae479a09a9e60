// Package codec provides the field-level decode primitives shared by every
// ITCH dialect: a bounds-checked big-endian byte cursor and a generic
// optional-value holder. Every dialect record is built from these two
// pieces instead of one hand-rolled struct per field.
package codec

import "fmt"

// shortBodyError marks a read that ran past the end of the current message
// body. Decoders never check bounds themselves (per the field-codec
// contract: decoding is infallible given the caller already sliced enough
// bytes); Cursor panics with this type instead, and only the dispatcher
// recovers from it, turning it into the message- or packet-level skip
// described in the failure semantics table.
type shortBodyError struct {
	need, have int
}

func (e shortBodyError) Error() string {
	return fmt.Sprintf("codec: need %d bytes, have %d", e.need, e.have)
}

// Cursor reads big-endian fields from a single message body in sequence.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor wraps a message body slice. The slice must outlive the cursor;
// callers that need to retain a field's bytes (e.g. a fixed-width string)
// must copy them out before requesting the next packet.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Len reports the number of unread bytes.
func (c *Cursor) Len() int {
	return len(c.data) - c.pos
}

func (c *Cursor) take(n int) []byte {
	if c.pos+n > len(c.data) {
		panic(shortBodyError{need: n, have: c.Len()})
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b
}

// Skip advances the cursor by n bytes without interpreting them.
func (c *Cursor) Skip(n int) {
	c.take(n)
}

// Uint8 reads one unsigned byte.
func (c *Cursor) Uint8() uint8 {
	return c.take(1)[0]
}

// Uint16 reads a 2-byte big-endian unsigned integer.
func (c *Cursor) Uint16() uint16 {
	b := c.take(2)
	return uint16(b[0])<<8 | uint16(b[1])
}

// Uint32 reads a 4-byte big-endian unsigned integer.
func (c *Cursor) Uint32() uint32 {
	b := c.take(4)
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// Uint64 reads an 8-byte big-endian unsigned integer.
func (c *Cursor) Uint64() uint64 {
	b := c.take(8)
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v
}

// Uint48 reads a 6-byte big-endian unsigned integer widened to uint64, used
// for the NASDAQ "timestamp" field (nanoseconds since midnight).
func (c *Cursor) Uint48() uint64 {
	b := c.take(6)
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v
}

// Raw returns a copy of the next n bytes verbatim, with no trimming. Used
// only for the "session" field, which unlike every other string field is not
// space-trimmed.
func (c *Cursor) Raw(n int) []byte {
	b := c.take(n)
	out := make([]byte, n)
	copy(out, b)
	return out
}

// FixedString reads n bytes and returns the prefix up to (but not
// including) the first space, per the space-padded-string field atom.
func (c *Cursor) FixedString(n int) string {
	b := c.take(n)
	k := 0
	for k < len(b) && b[k] != ' ' {
		k++
	}
	return string(b[:k])
}

// Recover converts a shortBodyError panic recovered via defer/recover into
// an error, and re-panics anything else. Call from a deferred function as:
//
//	defer func() { err = codec.Recover(recover()) }()
func Recover(r any) error {
	if r == nil {
		return nil
	}
	if sb, ok := r.(shortBodyError); ok {
		return sb
	}
	panic(r)
}
