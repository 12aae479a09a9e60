package nasdaq

import "github.com/marketfeeds/itchconv/internal/colschema"

// Columns is the NASDAQ TotalView-ITCH v5.0 67-column schema, in
// record-declaration order, grounded on record::nodes() in
// original_source/nasdaq/nasdaq_equities_totalview_itch_v5_0.cpp.
func Columns() []colschema.Column {
	return []colschema.Column{
		{Name: "pcap_index", Kind: colschema.KindUint64, Required: true},
		{Name: "pcap_timestamp", Kind: colschema.KindTimestampMicros, Required: true},
		{Name: "session", Kind: colschema.KindRawString, Required: true},
		{Name: "message_sequence", Kind: colschema.KindUint64, Required: true},
		{Name: "message_index", Kind: colschema.KindUint16, Required: true},
		{Name: "message_type", Kind: colschema.KindCode, Required: true},

		{Name: "attribution", Kind: colschema.KindString},
		{Name: "auction_collar_extension", Kind: colschema.KindUint32},
		{Name: "auction_collar_reference_price", Kind: colschema.KindUint32},
		{Name: "authenticity", Kind: colschema.KindCode},
		{Name: "breached_level", Kind: colschema.KindCode},
		{Name: "buy_sell_indicator", Kind: colschema.KindCode},
		{Name: "canceled_shares", Kind: colschema.KindUint32},
		{Name: "cross_price", Kind: colschema.KindUint32},
		{Name: "cross_shares", Kind: colschema.KindUint64},
		{Name: "cross_type", Kind: colschema.KindCode},
		{Name: "current_reference_price", Kind: colschema.KindUint32},
		{Name: "etp_flag", Kind: colschema.KindCode},
		{Name: "etp_leverage_factor", Kind: colschema.KindUint32},
		{Name: "event_code", Kind: colschema.KindCode},
		{Name: "executed_shares", Kind: colschema.KindUint32},
		{Name: "execution_price", Kind: colschema.KindUint32},
		{Name: "far_price", Kind: colschema.KindUint32},
		{Name: "financial_status_indicator", Kind: colschema.KindCode},
		{Name: "imbalance_direction", Kind: colschema.KindCode},
		{Name: "imbalance_shares", Kind: colschema.KindUint64},
		{Name: "interest_flag", Kind: colschema.KindCode},
		{Name: "inverse_indicator", Kind: colschema.KindCode},
		{Name: "ipo_flag", Kind: colschema.KindCode},
		{Name: "ipo_price", Kind: colschema.KindUint32},
		{Name: "ipo_quotation_release_qualifier", Kind: colschema.KindCode},
		{Name: "ipo_quotation_release_time", Kind: colschema.KindUint32},
		{Name: "issue_classification", Kind: colschema.KindCode},
		{Name: "issue_sub_type", Kind: colschema.KindString},
		{Name: "level_1", Kind: colschema.KindUint64},
		{Name: "level_2", Kind: colschema.KindUint64},
		{Name: "level_3", Kind: colschema.KindUint64},
		{Name: "locate_code", Kind: colschema.KindUint16},
		{Name: "lower_auction_collar_price", Kind: colschema.KindUint32},
		{Name: "luld_reference_price_tier", Kind: colschema.KindCode},
		{Name: "market_category", Kind: colschema.KindCode},
		{Name: "market_maker_mode", Kind: colschema.KindCode},
		{Name: "market_participant_state", Kind: colschema.KindCode},
		{Name: "match_number", Kind: colschema.KindUint64},
		{Name: "mpid", Kind: colschema.KindString},
		{Name: "near_price", Kind: colschema.KindUint32},
		{Name: "new_order_reference_number", Kind: colschema.KindUint64},
		{Name: "order_reference_number", Kind: colschema.KindUint64},
		{Name: "original_order_reference_number", Kind: colschema.KindUint64},
		{Name: "paired_shares", Kind: colschema.KindUint64},
		{Name: "price", Kind: colschema.KindUint32},
		{Name: "price_variation_indicator", Kind: colschema.KindCode},
		{Name: "primary_market_maker", Kind: colschema.KindCode},
		{Name: "printable", Kind: colschema.KindCode},
		{Name: "reason", Kind: colschema.KindString},
		{Name: "reg_sho_action", Kind: colschema.KindCode},
		{Name: "reserved", Kind: colschema.KindCode},
		{Name: "round_lot_size", Kind: colschema.KindUint32},
		{Name: "round_lots_only", Kind: colschema.KindCode},
		{Name: "shares", Kind: colschema.KindUint32},
		{Name: "short_sale_threshold_indicator", Kind: colschema.KindCode},
		{Name: "stock", Kind: colschema.KindString},
		{Name: "stock_locate", Kind: colschema.KindUint16},
		{Name: "timestamp", Kind: colschema.KindUint64},
		{Name: "tracking_number", Kind: colschema.KindUint16},
		{Name: "trading_state", Kind: colschema.KindCode},
		{Name: "upper_auction_collar_price", Kind: colschema.KindUint32},
	}
}

// Fixed widths, in bytes, for the string-valued columns.
const (
	attributionWidth  = 4
	issueSubTypeWidth = 2
	mpidWidth         = 4
	reasonWidth       = 4
	stockWidth        = 8
)
