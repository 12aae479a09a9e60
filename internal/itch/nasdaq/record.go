// Package nasdaq implements the NASDAQ TotalView-ITCH v5.0 dialect: a
// 21 message-type table over a 67-column superset row. Field order and
// widths are grounded on the process_*_message methods in
// original_source/nasdaq/nasdaq_equities_totalview_itch_v5_0.cpp.
package nasdaq

import (
	"time"

	"github.com/marketfeeds/itchconv/internal/codec"
)

// Record is the mutable, reused superset row for one NASDAQ message.
type Record struct {
	pcapIndex     uint64
	pcapTimestamp time.Time
	session       [10]byte
	messageSeq    uint64
	messageIndex  uint16
	messageType   byte

	attribution                  codec.Field[string]
	auctionCollarExtension       codec.Field[uint32]
	auctionCollarReferencePrice  codec.Field[uint32]
	authenticity                 codec.Field[byte]
	breachedLevel                codec.Field[byte]
	buySellIndicator             codec.Field[byte]
	canceledShares               codec.Field[uint32]
	crossPrice                   codec.Field[uint32]
	crossShares                  codec.Field[uint64]
	crossType                    codec.Field[byte]
	currentReferencePrice        codec.Field[uint32]
	etpFlag                      codec.Field[byte]
	etpLeverageFactor            codec.Field[uint32]
	eventCode                    codec.Field[byte]
	executedShares               codec.Field[uint32]
	executionPrice               codec.Field[uint32]
	farPrice                     codec.Field[uint32]
	financialStatusIndicator     codec.Field[byte]
	imbalanceDirection           codec.Field[byte]
	imbalanceShares              codec.Field[uint64]
	interestFlag                 codec.Field[byte]
	inverseIndicator             codec.Field[byte]
	ipoFlag                      codec.Field[byte]
	ipoPrice                     codec.Field[uint32]
	ipoQuotationReleaseQualifier codec.Field[byte]
	ipoQuotationReleaseTime      codec.Field[uint32]
	issueClassification          codec.Field[byte]
	issueSubType                 codec.Field[string]
	level1                       codec.Field[uint64]
	level2                       codec.Field[uint64]
	level3                       codec.Field[uint64]
	locateCode                   codec.Field[uint16]
	lowerAuctionCollarPrice      codec.Field[uint32]
	luldReferencePriceTier       codec.Field[byte]
	marketCategory               codec.Field[byte]
	marketMakerMode              codec.Field[byte]
	marketParticipantState       codec.Field[byte]
	matchNumber                  codec.Field[uint64]
	mpid                         codec.Field[string]
	nearPrice                    codec.Field[uint32]
	newOrderReferenceNumber      codec.Field[uint64]
	orderReferenceNumber         codec.Field[uint64]
	originalOrderReferenceNumber codec.Field[uint64]
	pairedShares                 codec.Field[uint64]
	price                        codec.Field[uint32]
	priceVariationIndicator      codec.Field[byte]
	primaryMarketMaker           codec.Field[byte]
	printable                    codec.Field[byte]
	reason                       codec.Field[string]
	regShoAction                 codec.Field[byte]
	reserved                     codec.Field[byte]
	roundLotSize                 codec.Field[uint32]
	roundLotsOnly                codec.Field[byte]
	shares                       codec.Field[uint32]
	shortSaleThresholdIndicator  codec.Field[byte]
	stock                        codec.Field[string]
	stockLocate                  codec.Field[uint16]
	timestamp                    codec.Field[uint64]
	trackingNumber               codec.Field[uint16]
	tradingState                 codec.Field[byte]
	upperAuctionCollarPrice      codec.Field[uint32]
}

// NewRecord returns a fresh, zeroed NASDAQ record.
func NewRecord() *Record {
	return &Record{}
}

// Reset clears every optional payload column, per spec.md §3.2.
func (r *Record) Reset() {
	r.attribution.Reset()
	r.auctionCollarExtension.Reset()
	r.auctionCollarReferencePrice.Reset()
	r.authenticity.Reset()
	r.breachedLevel.Reset()
	r.buySellIndicator.Reset()
	r.canceledShares.Reset()
	r.crossPrice.Reset()
	r.crossShares.Reset()
	r.crossType.Reset()
	r.currentReferencePrice.Reset()
	r.etpFlag.Reset()
	r.etpLeverageFactor.Reset()
	r.eventCode.Reset()
	r.executedShares.Reset()
	r.executionPrice.Reset()
	r.farPrice.Reset()
	r.financialStatusIndicator.Reset()
	r.imbalanceDirection.Reset()
	r.imbalanceShares.Reset()
	r.interestFlag.Reset()
	r.inverseIndicator.Reset()
	r.ipoFlag.Reset()
	r.ipoPrice.Reset()
	r.ipoQuotationReleaseQualifier.Reset()
	r.ipoQuotationReleaseTime.Reset()
	r.issueClassification.Reset()
	r.issueSubType.Reset()
	r.level1.Reset()
	r.level2.Reset()
	r.level3.Reset()
	r.locateCode.Reset()
	r.lowerAuctionCollarPrice.Reset()
	r.luldReferencePriceTier.Reset()
	r.marketCategory.Reset()
	r.marketMakerMode.Reset()
	r.marketParticipantState.Reset()
	r.matchNumber.Reset()
	r.mpid.Reset()
	r.nearPrice.Reset()
	r.newOrderReferenceNumber.Reset()
	r.orderReferenceNumber.Reset()
	r.originalOrderReferenceNumber.Reset()
	r.pairedShares.Reset()
	r.price.Reset()
	r.priceVariationIndicator.Reset()
	r.primaryMarketMaker.Reset()
	r.printable.Reset()
	r.reason.Reset()
	r.regShoAction.Reset()
	r.reserved.Reset()
	r.roundLotSize.Reset()
	r.roundLotsOnly.Reset()
	r.shares.Reset()
	r.shortSaleThresholdIndicator.Reset()
	r.stock.Reset()
	r.stockLocate.Reset()
	r.timestamp.Reset()
	r.trackingNumber.Reset()
	r.tradingState.Reset()
	r.upperAuctionCollarPrice.Reset()
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
	case 'S':
		r.stockLocate.Set(c.Uint16())
		r.trackingNumber.Set(c.Uint16())
		r.timestamp.Set(c.Uint48())
		r.eventCode.Set(c.Uint8())
	case 'R':
		r.stockLocate.Set(c.Uint16())
		r.trackingNumber.Set(c.Uint16())
		r.timestamp.Set(c.Uint48())
		r.stock.Set(c.FixedString(stockWidth))
		r.marketCategory.Set(c.Uint8())
		r.financialStatusIndicator.Set(c.Uint8())
		r.roundLotSize.Set(c.Uint32())
		r.roundLotsOnly.Set(c.Uint8())
		r.issueClassification.Set(c.Uint8())
		r.issueSubType.Set(c.FixedString(issueSubTypeWidth))
		r.authenticity.Set(c.Uint8())
		r.shortSaleThresholdIndicator.Set(c.Uint8())
		r.ipoFlag.Set(c.Uint8())
		r.luldReferencePriceTier.Set(c.Uint8())
		r.etpFlag.Set(c.Uint8())
		r.etpLeverageFactor.Set(c.Uint32())
		r.inverseIndicator.Set(c.Uint8())
	case 'H':
		r.stockLocate.Set(c.Uint16())
		r.trackingNumber.Set(c.Uint16())
		r.timestamp.Set(c.Uint48())
		r.stock.Set(c.FixedString(stockWidth))
		r.tradingState.Set(c.Uint8())
		r.reserved.Set(c.Uint8())
		r.reason.Set(c.FixedString(reasonWidth))
	case 'Y':
		r.locateCode.Set(c.Uint16())
		r.trackingNumber.Set(c.Uint16())
		r.timestamp.Set(c.Uint48())
		r.stock.Set(c.FixedString(stockWidth))
		r.regShoAction.Set(c.Uint8())
	case 'L':
		r.stockLocate.Set(c.Uint16())
		r.trackingNumber.Set(c.Uint16())
		r.timestamp.Set(c.Uint48())
		r.mpid.Set(c.FixedString(mpidWidth))
		r.stock.Set(c.FixedString(stockWidth))
		r.primaryMarketMaker.Set(c.Uint8())
		r.marketMakerMode.Set(c.Uint8())
		r.marketParticipantState.Set(c.Uint8())
	case 'V':
		r.stockLocate.Set(c.Uint16())
		r.trackingNumber.Set(c.Uint16())
		r.timestamp.Set(c.Uint48())
		r.level1.Set(c.Uint64())
		r.level2.Set(c.Uint64())
		r.level3.Set(c.Uint64())
	case 'W':
		r.stockLocate.Set(c.Uint16())
		r.trackingNumber.Set(c.Uint16())
		r.timestamp.Set(c.Uint48())
		r.breachedLevel.Set(c.Uint8())
	case 'K':
		r.stockLocate.Set(c.Uint16())
		r.trackingNumber.Set(c.Uint16())
		r.timestamp.Set(c.Uint48())
		r.stock.Set(c.FixedString(stockWidth))
		r.ipoQuotationReleaseTime.Set(c.Uint32())
		r.ipoQuotationReleaseQualifier.Set(c.Uint8())
		r.ipoPrice.Set(c.Uint32())
	case 'A':
		r.decodeAddOrder(c)
	case 'J':
		r.stockLocate.Set(c.Uint16())
		r.trackingNumber.Set(c.Uint16())
		r.timestamp.Set(c.Uint48())
		r.stock.Set(c.FixedString(stockWidth))
		r.auctionCollarReferencePrice.Set(c.Uint32())
		r.upperAuctionCollarPrice.Set(c.Uint32())
		r.lowerAuctionCollarPrice.Set(c.Uint32())
		r.auctionCollarExtension.Set(c.Uint32())
	case 'F':
		r.decodeAddOrder(c)
		r.attribution.Set(c.FixedString(attributionWidth))
	case 'E':
		r.stockLocate.Set(c.Uint16())
		r.trackingNumber.Set(c.Uint16())
		r.timestamp.Set(c.Uint48())
		r.orderReferenceNumber.Set(c.Uint64())
		r.executedShares.Set(c.Uint32())
		r.matchNumber.Set(c.Uint64())
	case 'C':
		r.stockLocate.Set(c.Uint16())
		r.trackingNumber.Set(c.Uint16())
		r.timestamp.Set(c.Uint48())
		r.orderReferenceNumber.Set(c.Uint64())
		r.executedShares.Set(c.Uint32())
		r.matchNumber.Set(c.Uint64())
		r.printable.Set(c.Uint8())
		r.executionPrice.Set(c.Uint32())
	case 'X':
		r.stockLocate.Set(c.Uint16())
		r.trackingNumber.Set(c.Uint16())
		r.timestamp.Set(c.Uint48())
		r.orderReferenceNumber.Set(c.Uint64())
		r.canceledShares.Set(c.Uint32())
	case 'D':
		r.stockLocate.Set(c.Uint16())
		r.trackingNumber.Set(c.Uint16())
		r.timestamp.Set(c.Uint48())
		r.orderReferenceNumber.Set(c.Uint64())
	case 'U':
		r.stockLocate.Set(c.Uint16())
		r.trackingNumber.Set(c.Uint16())
		r.timestamp.Set(c.Uint48())
		r.originalOrderReferenceNumber.Set(c.Uint64())
		r.newOrderReferenceNumber.Set(c.Uint64())
		r.shares.Set(c.Uint32())
		r.price.Set(c.Uint32())
	case 'P':
		r.stockLocate.Set(c.Uint16())
		r.trackingNumber.Set(c.Uint16())
		r.timestamp.Set(c.Uint48())
		r.orderReferenceNumber.Set(c.Uint64())
		r.buySellIndicator.Set(c.Uint8())
		r.shares.Set(c.Uint32())
		r.stock.Set(c.FixedString(stockWidth))
		r.price.Set(c.Uint32())
		r.matchNumber.Set(c.Uint64())
	case 'Q':
		r.stockLocate.Set(c.Uint16())
		r.trackingNumber.Set(c.Uint16())
		r.timestamp.Set(c.Uint48())
		r.crossShares.Set(c.Uint64())
		r.stock.Set(c.FixedString(stockWidth))
		r.crossPrice.Set(c.Uint32())
		r.matchNumber.Set(c.Uint64())
		r.crossType.Set(c.Uint8())
	case 'B':
		r.stockLocate.Set(c.Uint16())
		r.trackingNumber.Set(c.Uint16())
		r.timestamp.Set(c.Uint48())
		r.matchNumber.Set(c.Uint64())
	case 'I':
		r.stockLocate.Set(c.Uint16())
		r.trackingNumber.Set(c.Uint16())
		r.timestamp.Set(c.Uint48())
		r.pairedShares.Set(c.Uint64())
		r.imbalanceShares.Set(c.Uint64())
		r.imbalanceDirection.Set(c.Uint8())
		r.stock.Set(c.FixedString(stockWidth))
		r.farPrice.Set(c.Uint32())
		r.nearPrice.Set(c.Uint32())
		r.currentReferencePrice.Set(c.Uint32())
		r.crossType.Set(c.Uint8())
		r.priceVariationIndicator.Set(c.Uint8())
	case 'N':
		r.stockLocate.Set(c.Uint16())
		r.trackingNumber.Set(c.Uint16())
		r.timestamp.Set(c.Uint48())
		r.stock.Set(c.FixedString(stockWidth))
		r.interestFlag.Set(c.Uint8())
	default:
		// Unknown message type: header-only row, per spec.md §4.7.
	}
}

func (r *Record) decodeAddOrder(c *codec.Cursor) {
	r.stockLocate.Set(c.Uint16())
	r.trackingNumber.Set(c.Uint16())
	r.timestamp.Set(c.Uint48())
	r.orderReferenceNumber.Set(c.Uint64())
	r.buySellIndicator.Set(c.Uint8())
	r.shares.Set(c.Uint32())
	r.stock.Set(c.FixedString(stockWidth))
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
		r.auctionCollarExtension.Value(),
		r.auctionCollarReferencePrice.Value(),
		r.authenticity.Value(),
		r.breachedLevel.Value(),
		r.buySellIndicator.Value(),
		r.canceledShares.Value(),
		r.crossPrice.Value(),
		r.crossShares.Value(),
		r.crossType.Value(),
		r.currentReferencePrice.Value(),
		r.etpFlag.Value(),
		r.etpLeverageFactor.Value(),
		r.eventCode.Value(),
		r.executedShares.Value(),
		r.executionPrice.Value(),
		r.farPrice.Value(),
		r.financialStatusIndicator.Value(),
		r.imbalanceDirection.Value(),
		r.imbalanceShares.Value(),
		r.interestFlag.Value(),
		r.inverseIndicator.Value(),
		r.ipoFlag.Value(),
		r.ipoPrice.Value(),
		r.ipoQuotationReleaseQualifier.Value(),
		r.ipoQuotationReleaseTime.Value(),
		r.issueClassification.Value(),
		r.issueSubType.Value(),
		r.level1.Value(),
		r.level2.Value(),
		r.level3.Value(),
		r.locateCode.Value(),
		r.lowerAuctionCollarPrice.Value(),
		r.luldReferencePriceTier.Value(),
		r.marketCategory.Value(),
		r.marketMakerMode.Value(),
		r.marketParticipantState.Value(),
		r.matchNumber.Value(),
		r.mpid.Value(),
		r.nearPrice.Value(),
		r.newOrderReferenceNumber.Value(),
		r.orderReferenceNumber.Value(),
		r.originalOrderReferenceNumber.Value(),
		r.pairedShares.Value(),
		r.price.Value(),
		r.priceVariationIndicator.Value(),
		r.primaryMarketMaker.Value(),
		r.printable.Value(),
		r.reason.Value(),
		r.regShoAction.Value(),
		r.reserved.Value(),
		r.roundLotSize.Value(),
		r.roundLotsOnly.Value(),
		r.shares.Value(),
		r.shortSaleThresholdIndicator.Value(),
		r.stock.Value(),
		r.stockLocate.Value(),
		r.timestamp.Value(),
		r.trackingNumber.Value(),
		r.tradingState.Value(),
		r.upperAuctionCollarPrice.Value(),
	}
}
