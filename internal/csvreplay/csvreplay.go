// Package csvreplay renders rows read back from a Parquet file as CSV text,
// matching the original stream-writer's row format byte-for-byte: fields in
// record-declaration order, a trailing comma before the newline, and empty
// text for absent optional columns. Grounded on the CSV emission rules in
// spec.md §4.1/§9.
package csvreplay

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/marketfeeds/itchconv/internal/colschema"
)

// Write reads every row from next using columns' schema and writes one CSV
// line per row to w.
func Write(w io.Writer, columns []colschema.Column, next func() ([]any, error)) error {
	bw := bufio.NewWriter(w)
	for {
		row, err := next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("csvreplay: %w", err)
		}
		if err := writeRow(bw, columns, row); err != nil {
			return fmt.Errorf("csvreplay: %w", err)
		}
	}
	return bw.Flush()
}

func writeRow(bw *bufio.Writer, columns []colschema.Column, row []any) error {
	for i, col := range row {
		if _, err := bw.WriteString(formatValue(columns[i].Kind, col)); err != nil {
			return err
		}
		if _, err := bw.WriteString(","); err != nil {
			return err
		}
	}
	_, err := bw.WriteString("\n")
	return err
}

func formatValue(kind colschema.Kind, v any) string {
	if v == nil {
		return ""
	}
	switch kind {
	case colschema.KindCode:
		return string(rune(v.(uint8)))
	case colschema.KindUint8:
		return strconv.FormatUint(uint64(v.(uint8)), 10)
	case colschema.KindUint16:
		return strconv.FormatUint(uint64(v.(uint16)), 10)
	case colschema.KindUint32:
		return strconv.FormatUint(uint64(v.(uint32)), 10)
	case colschema.KindUint64:
		return strconv.FormatUint(v.(uint64), 10)
	case colschema.KindString, colschema.KindRawString:
		return v.(string)
	case colschema.KindTimestampMicros:
		return v.(time.Time).Format("2006-01-02 15:04:05")
	default:
		return ""
	}
}
