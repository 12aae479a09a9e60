package jnx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketfeeds/itchconv/internal/codec"
)

func decodeBody(t *testing.T, r *Record, msgType byte, fields ...[]byte) {
	t.Helper()
	var body []byte
	for _, f := range fields {
		body = append(body, f...)
	}
	r.Reset()
	r.Decode(msgType, body)
}

func u32(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

func u64(v uint64) []byte {
	b := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
	return b
}

// TestOrderAddedWithoutAttribution implements spec.md §8 scenario 1.
func TestOrderAddedWithoutAttribution(t *testing.T) {
	r := NewRecord()
	var session [10]byte
	copy(session[:], "SESSION001")
	r.SetHeader(1, 0, session, 100, 1)

	decodeBody(t, r, 'A',
		u32(500000000),      // timestamp_nanoseconds
		u64(7777),           // order_number
		[]byte{'B'},         // buy_sell_indicator
		u32(200),            // quantity
		u32(1301),           // orderbook_id
		[]byte("STD "),      // group
		u32(1234500),        // price
	)

	values := r.Values()
	cols := Columns()
	byName := func(name string) any {
		for i, c := range cols {
			if c.Name == name {
				return values[i]
			}
		}
		t.Fatalf("no such column %q", name)
		return nil
	}

	assert.Equal(t, uint64(100), byName("message_sequence"))
	assert.Equal(t, byte('A'), byName("message_type"))
	assert.Equal(t, "STD", byName("group"))
	assert.Nil(t, byName("attribution"))
	assert.Nil(t, byName("order_type"))
	assert.Equal(t, uint64(7777), byName("order_number"))
	assert.Equal(t, uint32(1234500), byName("price"))
}

func TestOrderAddedWithAttribution(t *testing.T) {
	r := NewRecord()
	var session [10]byte
	copy(session[:], "SESSION001")
	r.SetHeader(1, 0, session, 100, 1)

	decodeBody(t, r, 'F',
		u32(500000000),
		u64(7777),
		[]byte{'S'},
		u32(200),
		u32(1301),
		[]byte("STD "),
		u32(1234500),
		[]byte("ABCD"),
		[]byte{'1'},
	)
	val, ok := r.attribution.Get()
	require.True(t, ok)
	assert.Equal(t, "ABCD", val)
	otVal, ok := r.orderType.Get()
	require.True(t, ok)
	assert.Equal(t, byte('1'), otVal)
}

func TestUnknownMessageTypeHeaderOnly(t *testing.T) {
	r := NewRecord()
	var session [10]byte
	copy(session[:], "SESSION001")
	r.SetHeader(4, 0, session, 100, 1)
	r.Reset()
	r.Decode('Z', nil)

	for i, c := range Columns() {
		if c.Required {
			continue
		}
		assert.Nilf(t, r.Values()[i], "column %s should be null for unknown message type", c.Name)
	}
	assert.Equal(t, byte('Z'), r.messageType)
}

func TestShortBodyPanicsRecoverable(t *testing.T) {
	r := NewRecord()
	r.Reset()
	assert.Panics(t, func() {
		r.Decode('A', []byte{0x00}) // far too short for an 'A' message
	})
	func() {
		defer func() {
			err := codec.Recover(recover())
			require.Error(t, err)
		}()
		r.Decode('A', []byte{0x00})
	}()
}
