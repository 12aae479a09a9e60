package parquetio

import (
	"io"
	"time"

	"github.com/apache/arrow/go/v12/arrow"
	"github.com/apache/arrow/go/v12/arrow/array"
	"github.com/apache/arrow/go/v12/arrow/memory"
	"github.com/apache/arrow/go/v12/parquet"
	"github.com/apache/arrow/go/v12/parquet/pqarrow"

	"github.com/marketfeeds/itchconv/internal/colschema"
)

// DefaultMaxRowGroupSize matches the original stream writer's row-group
// sizing, per spec.md §4.6.
const DefaultMaxRowGroupSize = 1000

// Writer accumulates rows into Arrow record batches and flushes them to a
// Parquet file as row groups, exactly maxRowGroupSize rows (or fewer, for
// the final partial group) at a time.
type Writer struct {
	columns      []colschema.Column
	schema       *arrow.Schema
	mem          memory.Allocator
	builder      *array.RecordBuilder
	rowGroupSize int
	buffered     int
	fw           *pqarrow.FileWriter
}

// NewWriter opens a Parquet file writer over w for the given dialect
// columns, with row groups of at most maxRowGroupSize rows.
func NewWriter(w io.Writer, columns []colschema.Column, maxRowGroupSize int) (*Writer, error) {
	if maxRowGroupSize <= 0 {
		maxRowGroupSize = DefaultMaxRowGroupSize
	}
	schema := BuildSchema(columns)
	mem := memory.NewGoAllocator()

	props := parquet.NewWriterProperties(parquet.WithDictionaryDefault(false))
	fw, err := pqarrow.NewFileWriter(schema, w, props, pqarrow.DefaultWriterProps())
	if err != nil {
		return nil, err
	}

	return &Writer{
		columns:      columns,
		schema:       schema,
		mem:          mem,
		builder:      array.NewRecordBuilder(mem, schema),
		rowGroupSize: maxRowGroupSize,
		fw:           fw,
	}, nil
}

// WriteRow appends one row, in column order matching the schema. values[i]
// is nil for an absent optional column.
func (w *Writer) WriteRow(values []any) error {
	for i, col := range w.columns {
		appendValue(w.builder.Field(i), col.Kind, values[i])
	}
	w.buffered++
	if w.buffered >= w.rowGroupSize {
		if err := w.flush(); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) flush() error {
	if w.buffered == 0 {
		return nil
	}
	rec := w.builder.NewRecord()
	defer rec.Release()
	w.fw.NewBufferedRowGroup()
	if err := w.fw.WriteBuffered(rec); err != nil {
		return err
	}
	w.buffered = 0
	return nil
}

// Close flushes any buffered rows as a final (possibly partial) row group
// and closes the underlying Parquet writer.
func (w *Writer) Close() error {
	if err := w.flush(); err != nil {
		return err
	}
	return w.fw.Close()
}

func appendValue(b array.Builder, kind colschema.Kind, v any) {
	if v == nil {
		b.AppendNull()
		return
	}
	switch kind {
	case colschema.KindUint8, colschema.KindCode:
		b.(*array.Uint8Builder).Append(v.(uint8))
	case colschema.KindUint16:
		b.(*array.Uint16Builder).Append(v.(uint16))
	case colschema.KindUint32:
		b.(*array.Uint32Builder).Append(v.(uint32))
	case colschema.KindUint64:
		b.(*array.Uint64Builder).Append(v.(uint64))
	case colschema.KindString, colschema.KindRawString:
		b.(*array.StringBuilder).Append(v.(string))
	case colschema.KindTimestampMicros:
		b.(*array.TimestampBuilder).Append(arrow.Timestamp(v.(time.Time).UnixMicro()))
	}
}
