// Package itch defines the contract every ITCH dialect record implements,
// so the frame extractor, header decoder, and dispatcher loop in
// internal/pipeline are written once and shared by JNX and NASDAQ.
package itch

import "github.com/marketfeeds/itchconv/internal/colschema"

// Row is anything that can render itself as a slice of column values,
// parallel to its Dialect's Columns(), nil for an absent optional column.
type Row interface {
	Values() []any
}

// Record is one mutable, reusable decode target: the frame context and
// packet header columns are stamped once per message, then Decode fills in
// whichever payload columns the dispatched message type defines.
type Record interface {
	Row

	// Reset clears every optional payload column to "not present". Called
	// before each message, per spec.md §3.2.
	Reset()

	// SetHeader stamps the frame-context and packet-header columns that are
	// required on every row.
	SetHeader(pcapIndex uint64, pcapTimestampMicros int64, session [10]byte, sequence uint64, messageIndex uint16)

	// Decode dispatches on messageType and fills whichever payload columns
	// that message defines from body (the message bytes after the type
	// byte). Unknown types are a no-op: the row still carries message_type
	// and the header columns. Decode panics with a recoverable short-body
	// error (see internal/codec) if body is shorter than the dispatched
	// decoder needs; callers must recover at the message boundary.
	Decode(messageType byte, body []byte)
}

// Dialect names one closed ITCH message-type table and knows how to build a
// fresh Record and describe its column schema.
type Dialect interface {
	Name() string
	Columns() []colschema.Column
	NewRecord() Record
}
