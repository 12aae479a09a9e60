// Package colschema defines the shared column-descriptor vocabulary used by
// both ITCH dialects and by the Parquet/CSV adapters. It deliberately knows
// nothing about Arrow or Parquet types; internal/parquetio is the only place
// that translates a Kind into a concrete Arrow column.
package colschema

// Kind is the logical wire type of a column, per the field-atom taxonomy in
// spec.md §3.1.
type Kind int

const (
	// KindUint8 is a plain unsigned byte rendered as a decimal in CSV.
	KindUint8 Kind = iota
	// KindUint16 is a big-endian 16-bit unsigned integer.
	KindUint16
	// KindUint32 is a big-endian 32-bit unsigned integer.
	KindUint32
	// KindUint64 is a big-endian 64-bit unsigned integer.
	KindUint64
	// KindString is a fixed-width, space-padded, trimmed ASCII string.
	KindString
	// KindRawString is a fixed-width string copied verbatim, no trimming
	// (used only for "session").
	KindRawString
	// KindCode is a single-octet field stored as uint8 but rendered as one
	// ASCII character in CSV.
	KindCode
	// KindTimestampMicros is microseconds since the Unix epoch.
	KindTimestampMicros
)

// Column describes one output column in record-declaration order.
type Column struct {
	Name     string
	Kind     Kind
	Required bool
}
