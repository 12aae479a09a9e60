// Package pipeline drives the single-threaded conversion from a pcap
// capture to a Parquet file: read packet, strip frame headers, decode the
// packet header, dispatch each message to the active dialect's Record, and
// write the resulting row. It intentionally runs sequentially around one
// shared, reused Record rather than the teacher's goroutine/channel worker
// pool (see DESIGN.md): every message is decoded into that one Record in
// turn, which goroutines in a fan-out pool would race on.
package pipeline

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/gopacket/pcapgo"
	"github.com/klauspost/pgzip"
	"github.com/schollz/progressbar/v3"

	"github.com/marketfeeds/itchconv/internal/codec"
	"github.com/marketfeeds/itchconv/internal/frame"
	"github.com/marketfeeds/itchconv/internal/itch"
	"github.com/marketfeeds/itchconv/internal/moldudp"
	"github.com/marketfeeds/itchconv/internal/parquetio"
)

// rowWriter is the slice of parquetio.Writer that processPacket needs, kept
// narrow so packet-dispatch logic can be tested without opening a real
// Parquet file.
type rowWriter interface {
	WriteRow(values []any) error
}

// Stats summarizes one run, for the CLI's closing report.
type Stats struct {
	PacketsRead     uint64
	PacketsSkipped  uint64
	MessagesWritten uint64
	MessagesSkipped uint64
}

// Run reads pcapPath (transparently gunzipping if it ends in .gz), decodes
// every packet under dialect, and writes one row per message to a Parquet
// writer opened over out with the given row-group size.
func Run(pcapPath string, dialect itch.Dialect, out io.Writer, maxRowGroupSize int) (Stats, error) {
	var stats Stats

	f, err := os.Open(pcapPath)
	if err != nil {
		return stats, fmt.Errorf("pipeline: open %s: %w", pcapPath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return stats, fmt.Errorf("pipeline: stat %s: %w", pcapPath, err)
	}

	bar := progressbar.DefaultBytes(info.Size(), fmt.Sprintf("ingest %s", pcapPath))
	defer bar.Close()
	tee := io.TeeReader(f, bar)

	var src io.Reader = tee
	if isGzip(pcapPath) {
		gz, err := pgzip.NewReader(tee)
		if err != nil {
			return stats, fmt.Errorf("pipeline: gunzip %s: %w", pcapPath, err)
		}
		defer gz.Close()
		src = gz
	}

	r, err := pcapgo.NewReader(src)
	if err != nil {
		return stats, fmt.Errorf("pipeline: open pcap reader: %w", err)
	}

	writer, err := parquetio.NewWriter(out, dialect.Columns(), maxRowGroupSize)
	if err != nil {
		return stats, fmt.Errorf("pipeline: open parquet writer: %w", err)
	}

	record := dialect.NewRecord()

	for {
		data, ci, err := r.ReadPacketData()
		if err != nil {
			// Per spec.md §4.7, a timeout, a read error, and EOF are all the
			// same outcome here: the capture is done, close the output
			// cleanly and stop — none of them is a fatal program error.
			break
		}
		stats.PacketsRead++

		written, skipped := processPacket(data, ci.Timestamp.UnixMicro(), stats.PacketsRead, record, writer)
		stats.MessagesWritten += written
		stats.MessagesSkipped += skipped
		if written == 0 && skipped == 0 {
			stats.PacketsSkipped++
		}
	}

	if err := writer.Close(); err != nil {
		return stats, fmt.Errorf("pipeline: close parquet writer: %w", err)
	}
	return stats, nil
}

// processPacket extracts the UDP payload from one raw captured frame and
// dispatches every message inside it. It never returns an error: framing or
// decode shortfalls are recorded as skipped messages per the failure
// semantics in spec.md §9, not propagated to the caller.
func processPacket(raw []byte, tsMicros int64, pcapIndex uint64, record itch.Record, writer rowWriter) (written, skipped uint64) {
	payload, ok := frame.Extract(raw)
	if !ok {
		return 0, 0
	}

	c := codec.NewCursor(payload)
	var header moldudp.Header
	if err := decodeHeader(c, &header); err != nil {
		return 0, 0
	}

	for i := uint16(0); i < header.Count; i++ {
		body, messageType, ok := nextMessage(c)
		if !ok {
			// The message length itself overran the remaining packet bytes:
			// the rest of the packet cannot be framed, so stop here.
			log.Printf("pipeline: packet %d: message %d/%d truncated, dropping rest of packet", pcapIndex, i+1, header.Count)
			skipped += uint64(header.Count - i)
			return written, skipped
		}

		record.Reset()
		// message_index runs 1..=count within the packet, per spec.md §3.2.
		record.SetHeader(pcapIndex, tsMicros, header.Session, header.FirstSequence+uint64(i), i+1)

		if !decodeRecordBody(record, messageType, body) {
			log.Printf("pipeline: packet %d: message %d/%d type %q ran out of bytes, skipping", pcapIndex, i+1, header.Count, messageType)
			skipped++
			continue
		}
		if err := writer.WriteRow(record.Values()); err != nil {
			log.Printf("pipeline: packet %d: message %d/%d: write row: %v", pcapIndex, i+1, header.Count, err)
			skipped++
			continue
		}
		written++
	}
	return written, skipped
}

// nextMessage reads one length-prefixed message off c. ok is false only when
// the declared length cannot be framed out of the remaining packet bytes.
func nextMessage(c *codec.Cursor) (body []byte, messageType byte, ok bool) {
	if c.Len() < 2 {
		return nil, 0, false
	}
	messageLength := int(c.Uint16())
	if messageLength < 1 || c.Len() < messageLength {
		return nil, 0, false
	}
	raw := c.Raw(messageLength)
	return raw[1:], raw[0], true
}

// decodeHeader recovers from a short packet (fewer bytes than the MoldUDP
// header needs) by reporting the whole packet unusable.
func decodeHeader(c *codec.Cursor, header *moldudp.Header) (err error) {
	defer func() { err = codec.Recover(recover()) }()
	*header = moldudp.Decode(c)
	return nil
}

// decodeRecordBody recovers from a decode-level short read so that one
// malformed message only skips itself, not the rest of the packet. It
// returns false when the dispatched decoder ran out of bytes partway
// through, in which case the row is dropped rather than written with
// partially-filled columns, per the resolved failure semantics in
// SPEC_FULL.md §4.3.
func decodeRecordBody(record itch.Record, messageType byte, body []byte) (ok bool) {
	defer func() {
		if err := codec.Recover(recover()); err != nil {
			ok = false
		}
	}()
	record.Decode(messageType, body)
	return true
}

func isGzip(path string) bool {
	return strings.HasSuffix(path, ".gz")
}
