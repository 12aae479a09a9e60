package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorBigEndian(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08})
	assert.Equal(t, uint8(0x01), c.Uint8())
	assert.Equal(t, uint16(0x0203), c.Uint16())
	assert.Equal(t, uint32(0x04050607), c.Uint32())
	assert.Equal(t, uint8(0x08), c.Uint8())
}

func TestCursorUint48Widening(t *testing.T) {
	// 9:30:00.000000000 am in ns-since-midnight, as a 6-byte BE integer.
	c := NewCursor([]byte{0x1F, 0x1A, 0xCE, 0xD9, 0xF0, 0x00})
	got := c.Uint48()
	assert.Equal(t, uint64(34200000000000), got)
}

func TestCursorUint64(t *testing.T) {
	c := NewCursor([]byte{0, 0, 0, 0, 0, 0, 0x1e, 0x61})
	assert.Equal(t, uint64(7777), c.Uint64())
}

func TestFixedStringTrimsAtFirstSpace(t *testing.T) {
	c := NewCursor([]byte("STD "))
	assert.Equal(t, "STD", c.FixedString(4))
}

func TestFixedStringTrimsTrailingPadding(t *testing.T) {
	c := NewCursor([]byte("AAPL    "))
	assert.Equal(t, "AAPL", c.FixedString(8))
}

func TestFixedStringAllSpaces(t *testing.T) {
	c := NewCursor([]byte("        "))
	assert.Equal(t, "", c.FixedString(8))
}

func TestRawDoesNotTrim(t *testing.T) {
	c := NewCursor([]byte("SESSION001"))
	got := c.Raw(10)
	assert.Equal(t, []byte("SESSION001"), got)
}

func TestCursorShortReadPanicsAndRecovers(t *testing.T) {
	c := NewCursor([]byte{0x01})
	var err error
	func() {
		defer func() { err = Recover(recover()) }()
		c.Uint32()
	}()
	require.Error(t, err)
}

func TestFieldResetAndGet(t *testing.T) {
	var f Field[uint32]
	_, present := f.Get()
	assert.False(t, present)
	assert.Nil(t, f.Value())

	f.Set(42)
	v, present := f.Get()
	assert.True(t, present)
	assert.Equal(t, uint32(42), v)
	assert.Equal(t, uint32(42), f.Value())

	f.Reset()
	_, present = f.Get()
	assert.False(t, present)
}
