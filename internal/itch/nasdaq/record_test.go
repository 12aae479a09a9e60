package nasdaq

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u16(v uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return b
}

func u32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

func u48(v uint64) []byte {
	b := make([]byte, 6)
	b[0] = byte(v >> 40)
	b[1] = byte(v >> 32)
	b[2] = byte(v >> 24)
	b[3] = byte(v >> 16)
	b[4] = byte(v >> 8)
	b[5] = byte(v)
	return b
}

func u64(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

func decodeBody(t *testing.T, r *Record, msgType byte, chunks ...[]byte) {
	t.Helper()
	var body []byte
	for _, c := range chunks {
		body = append(body, c...)
	}
	r.Reset()
	r.Decode(msgType, body)
}

func TestAddOrderWithMPID(t *testing.T) {
	r := NewRecord()
	r.SetHeader(1, 0, [10]byte{}, 100, 0)
	decodeBody(t, r, 'F',
		u16(42),                  // stock_locate
		u16(0),                   // tracking_number
		u48(34200000000000),      // timestamp
		u64(1),                   // order_reference_number
		[]byte("B"),              // buy_sell_indicator
		u32(100),                 // shares
		[]byte("AAPL    "),       // stock, space padded to 8
		u32(1500000),             // price
		[]byte("MMAA"),           // attribution
	)

	values := valuesByName(r)
	assert.Equal(t, "AAPL", values["stock"])
	assert.Equal(t, "MMAA", values["attribution"])
	assert.Equal(t, uint64(34200000000000), values["timestamp"])
	assert.Equal(t, uint16(42), values["stock_locate"])
	require.Nil(t, values["locate_code"])
}

func TestRegShoUsesLocateCodeNotStockLocate(t *testing.T) {
	r := NewRecord()
	r.SetHeader(2, 0, [10]byte{}, 101, 0)
	decodeBody(t, r, 'Y',
		u16(77),             // locate_code
		u16(0),              // tracking_number
		u48(34200000000000), // timestamp
		[]byte("MSFT    "),  // stock
		[]byte("0"),         // reg_sho_action
	)

	values := valuesByName(r)
	assert.Equal(t, uint16(77), values["locate_code"])
	assert.Nil(t, values["stock_locate"])
	assert.Equal(t, "MSFT", values["stock"])
	assert.Equal(t, byte('0'), values["reg_sho_action"])
}

func TestStockDirectoryIssueSubTypeIsString(t *testing.T) {
	r := NewRecord()
	r.SetHeader(3, 0, [10]byte{}, 102, 0)
	decodeBody(t, r, 'R',
		u16(1), u16(0), u48(0),
		[]byte("ZVZZT   "), // stock
		[]byte("N"),        // market_category
		[]byte("N"),        // financial_status_indicator
		u32(100),           // round_lot_size
		[]byte("Y"),        // round_lots_only
		[]byte("C"),        // issue_classification
		[]byte("IF"),       // issue_sub_type (two-char code, not numeric)
		[]byte("P"),        // authenticity
		[]byte(" "),        // short_sale_threshold_indicator
		[]byte("N"),        // ipo_flag
		[]byte(" "),        // luld_reference_price_tier
		[]byte("N"),        // etp_flag
		u32(0),             // etp_leverage_factor
		[]byte("N"),        // inverse_indicator
	)

	values := valuesByName(r)
	assert.Equal(t, "IF", values["issue_sub_type"])
	assert.Equal(t, "ZVZZT", values["stock"])
}

func TestUnknownMessageTypeHeaderOnly(t *testing.T) {
	r := NewRecord()
	r.SetHeader(4, 0, [10]byte{}, 103, 0)
	decodeBody(t, r, 'Z', u16(1), u16(0), u48(0))

	values := valuesByName(r)
	assert.Equal(t, byte('Z'), values["message_type"])
	assert.Nil(t, values["stock"])
}

func TestShortBodyPanicsRecoverable(t *testing.T) {
	r := NewRecord()
	r.SetHeader(5, 0, [10]byte{}, 104, 0)

	func() {
		defer func() {
			rec := recover()
			require.NotNil(t, rec)
		}()
		r.Decode('F', u16(1))
	}()
}

func valuesByName(r *Record) map[string]any {
	cols := Columns()
	vals := r.Values()
	out := make(map[string]any, len(cols))
	for i, c := range cols {
		out[c.Name] = vals[i]
	}
	return out
}
