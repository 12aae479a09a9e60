// Package jnx implements the JNX Equities PTS ITCH v1.6 dialect: an 11
// message-type table over a 31-column superset row. Field order and widths
// are grounded on original_source/jnx/jnx_equities_pts_itch_v1_6.cpp.
package jnx

import (
	"time"

	"github.com/marketfeeds/itchconv/internal/codec"
)

// Record is the mutable, reused superset row for one JNX message.
type Record struct {
	pcapIndex      uint64
	pcapTimestamp  time.Time
	session        [10]byte
	messageSeq     uint64
	messageIndex   uint16
	messageType    byte

	attribution            codec.Field[string]
	buySellIndicator       codec.Field[byte]
	executedQuantity       codec.Field[uint32]
	group                  codec.Field[string]
	lowerPriceLimit        codec.Field[uint32]
	matchNumber            codec.Field[uint64]
	newOrderNumber         codec.Field[uint64]
	orderNumber            codec.Field[uint64]
	orderType              codec.Field[byte]
	orderbookCode          codec.Field[string]
	orderbookID            codec.Field[uint32]
	originalOrderNumber    codec.Field[uint64]
	price                  codec.Field[uint32]
	priceDecimals          codec.Field[uint32]
	priceStart             codec.Field[uint32]
	priceTickSize          codec.Field[uint32]
	priceTickSizeTableID   codec.Field[uint32]
	quantity               codec.Field[uint32]
	roundLotSize           codec.Field[uint32]
	shortSellingState      codec.Field[byte]
	systemEvent            codec.Field[byte]
	timestampNanoseconds   codec.Field[uint32]
	timestampSeconds       codec.Field[uint32]
	tradingState           codec.Field[byte]
	upperPriceLimit        codec.Field[uint32]
}

// NewRecord returns a fresh, zeroed JNX record.
func NewRecord() *Record {
	return &Record{}
}

// Reset clears every optional payload column, per spec.md §3.2: invoked
// before each message is dispatched.
func (r *Record) Reset() {
	r.attribution.Reset()
	r.buySellIndicator.Reset()
	r.executedQuantity.Reset()
	r.group.Reset()
	r.lowerPriceLimit.Reset()
	r.matchNumber.Reset()
	r.newOrderNumber.Reset()
	r.orderNumber.Reset()
	r.orderType.Reset()
	r.orderbookCode.Reset()
	r.orderbookID.Reset()
	r.originalOrderNumber.Reset()
	r.price.Reset()
	r.priceDecimals.Reset()
	r.priceStart.Reset()
	r.priceTickSize.Reset()
	r.priceTickSizeTableID.Reset()
	r.quantity.Reset()
	r.roundLotSize.Reset()
	r.shortSellingState.Reset()
	r.systemEvent.Reset()
	r.timestampNanoseconds.Reset()
	r.timestampSeconds.Reset()
	r.tradingState.Reset()
	r.upperPriceLimit.Reset()
}

// SetHeader stamps the frame-context and packet-header columns.
func (r *Record) SetHeader(pcapIndex uint64, pcapTimestampMicros int64, session [10]byte, sequence uint64, messageIndex uint16) {
	r.pcapIndex = pcapIndex
	r.pcapTimestamp = time.UnixMicro(pcapTimestampMicros).UTC()
	r.session = session
	r.messageSeq = sequence
	r.messageIndex = messageIndex
}

// Decode dispatches on messageType, decoding body (the message bytes after
// the type byte) into whichever payload columns that message defines.
func (r *Record) Decode(messageType byte, body []byte) {
	r.messageType = messageType
	c := codec.NewCursor(body)
	switch messageType {
	case 'T':
		r.timestampSeconds.Set(c.Uint32())
	case 'S':
		r.timestampNanoseconds.Set(c.Uint32())
		r.group.Set(c.FixedString(groupWidth))
		r.systemEvent.Set(c.Uint8())
	case 'L':
		r.timestampNanoseconds.Set(c.Uint32())
		r.priceTickSizeTableID.Set(c.Uint32())
		r.priceTickSize.Set(c.Uint32())
		r.priceStart.Set(c.Uint32())
	case 'R':
		r.timestampNanoseconds.Set(c.Uint32())
		r.orderbookID.Set(c.Uint32())
		r.orderbookCode.Set(c.FixedString(orderbookCodeWidth))
		r.group.Set(c.FixedString(groupWidth))
		r.roundLotSize.Set(c.Uint32())
		r.priceTickSizeTableID.Set(c.Uint32())
		r.priceDecimals.Set(c.Uint32())
		r.upperPriceLimit.Set(c.Uint32())
		r.lowerPriceLimit.Set(c.Uint32())
	case 'H':
		r.timestampNanoseconds.Set(c.Uint32())
		r.orderbookID.Set(c.Uint32())
		r.group.Set(c.FixedString(groupWidth))
		r.tradingState.Set(c.Uint8())
	case 'Y':
		r.timestampNanoseconds.Set(c.Uint32())
		r.orderbookID.Set(c.Uint32())
		r.group.Set(c.FixedString(groupWidth))
		r.shortSellingState.Set(c.Uint8())
	case 'A':
		r.decodeOrderAdded(c)
	case 'F':
		r.decodeOrderAdded(c)
		r.attribution.Set(c.FixedString(attributionWidth))
		r.orderType.Set(c.Uint8())
	case 'E':
		r.timestampNanoseconds.Set(c.Uint32())
		r.orderNumber.Set(c.Uint64())
		r.executedQuantity.Set(c.Uint32())
		r.matchNumber.Set(c.Uint64())
	case 'D':
		r.timestampNanoseconds.Set(c.Uint32())
		r.orderNumber.Set(c.Uint64())
	case 'U':
		r.timestampNanoseconds.Set(c.Uint32())
		r.originalOrderNumber.Set(c.Uint64())
		r.newOrderNumber.Set(c.Uint64())
		r.quantity.Set(c.Uint32())
		r.price.Set(c.Uint32())
	default:
		// Unknown message type: header-only row, per spec.md §4.7.
	}
}

func (r *Record) decodeOrderAdded(c *codec.Cursor) {
	r.timestampNanoseconds.Set(c.Uint32())
	r.orderNumber.Set(c.Uint64())
	r.buySellIndicator.Set(c.Uint8())
	r.quantity.Set(c.Uint32())
	r.orderbookID.Set(c.Uint32())
	r.group.Set(c.FixedString(groupWidth))
	r.price.Set(c.Uint32())
}

// Values renders the row in the same order as Columns().
func (r *Record) Values() []any {
	return []any{
		r.pcapIndex,
		r.pcapTimestamp,
		string(r.session[:]),
		r.messageSeq,
		r.messageIndex,
		r.messageType,
		r.attribution.Value(),
		r.buySellIndicator.Value(),
		r.executedQuantity.Value(),
		r.group.Value(),
		r.lowerPriceLimit.Value(),
		r.matchNumber.Value(),
		r.newOrderNumber.Value(),
		r.orderNumber.Value(),
		r.orderType.Value(),
		r.orderbookCode.Value(),
		r.orderbookID.Value(),
		r.originalOrderNumber.Value(),
		r.price.Value(),
		r.priceDecimals.Value(),
		r.priceStart.Value(),
		r.priceTickSize.Value(),
		r.priceTickSizeTableID.Value(),
		r.quantity.Value(),
		r.roundLotSize.Value(),
		r.shortSellingState.Value(),
		r.systemEvent.Value(),
		r.timestampNanoseconds.Value(),
		r.timestampSeconds.Value(),
		r.tradingState.Value(),
		r.upperPriceLimit.Value(),
	}
}
