package parquetio

import (
	"context"
	"io"

	"github.com/apache/arrow/go/v12/arrow"
	"github.com/apache/arrow/go/v12/arrow/array"
	"github.com/apache/arrow/go/v12/arrow/memory"
	"github.com/apache/arrow/go/v12/parquet"
	"github.com/apache/arrow/go/v12/parquet/file"
	"github.com/apache/arrow/go/v12/parquet/pqarrow"

	"github.com/marketfeeds/itchconv/internal/colschema"
)

// Reader streams rows back out of a Parquet file written by Writer, one
// Arrow record batch at a time, yielding each row as a []any in column
// order (nil for an absent optional column), for internal/csvreplay.
type Reader struct {
	columns []colschema.Column
	pf      *file.Reader
	fr      *pqarrow.FileReader
	rr      pqarrow.RecordReader
	rec     arrow.Record
	row     int
}

// NewReader opens a Parquet file previously produced by Writer for the
// given dialect's columns.
func NewReader(r parquet.ReaderAtSeeker, columns []colschema.Column) (*Reader, error) {
	pf, err := file.NewParquetReader(r)
	if err != nil {
		return nil, err
	}
	fr, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{}, memory.NewGoAllocator())
	if err != nil {
		return nil, err
	}
	rr, err := fr.GetRecordReader(context.Background(), nil, nil)
	if err != nil {
		return nil, err
	}
	return &Reader{columns: columns, pf: pf, fr: fr, rr: rr}, nil
}

// Next returns the next row, or io.EOF when the file is exhausted.
func (r *Reader) Next() ([]any, error) {
	for r.rec == nil || r.row >= int(r.rec.NumRows()) {
		if r.rec != nil {
			r.rec.Release()
			r.rec = nil
		}
		if !r.rr.Next() {
			return nil, io.EOF
		}
		r.rec = r.rr.Record()
		r.rec.Retain()
		r.row = 0
	}

	values := make([]any, len(r.columns))
	for i, col := range r.columns {
		values[i] = readValue(r.rec.Column(i), col.Kind, r.row)
	}
	r.row++
	return values, nil
}

// Close releases the underlying Parquet file.
func (r *Reader) Close() error {
	if r.rec != nil {
		r.rec.Release()
	}
	return r.pf.Close()
}

func readValue(col arrow.Array, kind colschema.Kind, row int) any {
	if col.IsNull(row) {
		return nil
	}
	switch kind {
	case colschema.KindUint8, colschema.KindCode:
		return col.(*array.Uint8).Value(row)
	case colschema.KindUint16:
		return col.(*array.Uint16).Value(row)
	case colschema.KindUint32:
		return col.(*array.Uint32).Value(row)
	case colschema.KindUint64:
		return col.(*array.Uint64).Value(row)
	case colschema.KindString, colschema.KindRawString:
		return col.(*array.String).Value(row)
	case colschema.KindTimestampMicros:
		ts := col.(*array.Timestamp).Value(row)
		return ts.ToTime(arrow.Microsecond)
	default:
		return nil
	}
}
