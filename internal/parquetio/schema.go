// Package parquetio adapts the superset row model in internal/itch to
// Apache Arrow's columnar in-memory format and on-disk Parquet encoding.
// There is no directly grounding example for this API in the retrieval
// pack (see DESIGN.md); it is built from the apache/arrow/go/v12 package
// already required by the teacher's go.mod, following the row-group
// batching behavior of parquet::StreamWriter in the original C++ sources.
package parquetio

import (
	"fmt"

	"github.com/apache/arrow/go/v12/arrow"
	"github.com/marketfeeds/itchconv/internal/colschema"
)

// BuildSchema converts a dialect's column descriptors into an Arrow schema.
// Every column beyond the required header columns is nullable.
func BuildSchema(columns []colschema.Column) *arrow.Schema {
	fields := make([]arrow.Field, len(columns))
	for i, col := range columns {
		fields[i] = arrow.Field{
			Name:     col.Name,
			Type:     arrowType(col.Kind),
			Nullable: !col.Required,
		}
	}
	return arrow.NewSchema(fields, nil)
}

func arrowType(k colschema.Kind) arrow.DataType {
	switch k {
	case colschema.KindUint8, colschema.KindCode:
		return arrow.PrimitiveTypes.Uint8
	case colschema.KindUint16:
		return arrow.PrimitiveTypes.Uint16
	case colschema.KindUint32:
		return arrow.PrimitiveTypes.Uint32
	case colschema.KindUint64:
		return arrow.PrimitiveTypes.Uint64
	case colschema.KindString, colschema.KindRawString:
		return arrow.BinaryTypes.String
	case colschema.KindTimestampMicros:
		return &arrow.TimestampType{Unit: arrow.Microsecond}
	default:
		panic(fmt.Sprintf("parquetio: unhandled column kind %v", k))
	}
}
