package jnx

import "github.com/marketfeeds/itchconv/internal/colschema"

// Columns is the JNX PTS ITCH v1.6 31-column schema, in record-declaration
// order, grounded on record::nodes() in
// original_source/jnx/jnx_equities_pts_itch_v1_6.cpp.
func Columns() []colschema.Column {
	return []colschema.Column{
		{Name: "pcap_index", Kind: colschema.KindUint64, Required: true},
		{Name: "pcap_timestamp", Kind: colschema.KindTimestampMicros, Required: true},
		{Name: "session", Kind: colschema.KindRawString, Required: true},
		{Name: "message_sequence", Kind: colschema.KindUint64, Required: true},
		{Name: "message_index", Kind: colschema.KindUint16, Required: true},
		{Name: "message_type", Kind: colschema.KindCode, Required: true},
		{Name: "attribution", Kind: colschema.KindString},
		{Name: "buy_sell_indicator", Kind: colschema.KindCode},
		{Name: "executed_quantity", Kind: colschema.KindUint32},
		{Name: "group", Kind: colschema.KindString},
		{Name: "lower_price_limit", Kind: colschema.KindUint32},
		{Name: "match_number", Kind: colschema.KindUint64},
		{Name: "new_order_number", Kind: colschema.KindUint64},
		{Name: "order_number", Kind: colschema.KindUint64},
		{Name: "order_type", Kind: colschema.KindCode},
		{Name: "orderbook_code", Kind: colschema.KindString},
		{Name: "orderbook_id", Kind: colschema.KindUint32},
		{Name: "original_order_number", Kind: colschema.KindUint64},
		{Name: "price", Kind: colschema.KindUint32},
		{Name: "price_decimals", Kind: colschema.KindUint32},
		{Name: "price_start", Kind: colschema.KindUint32},
		{Name: "price_tick_size", Kind: colschema.KindUint32},
		{Name: "price_tick_size_table_id", Kind: colschema.KindUint32},
		{Name: "quantity", Kind: colschema.KindUint32},
		{Name: "round_lot_size", Kind: colschema.KindUint32},
		{Name: "short_selling_state", Kind: colschema.KindCode},
		{Name: "system_event", Kind: colschema.KindCode},
		{Name: "timestamp_nanoseconds", Kind: colschema.KindUint32},
		{Name: "timestamp_seconds", Kind: colschema.KindUint32},
		{Name: "trading_state", Kind: colschema.KindCode},
		{Name: "upper_price_limit", Kind: colschema.KindUint32},
	}
}

// Widths, in bytes, for the fixed-width string columns.
const (
	attributionWidth  = 4
	groupWidth        = 4
	orderbookCodeWidth = 12
)
