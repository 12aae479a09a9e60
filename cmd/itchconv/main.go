// Command itchconv converts an ITCH pcap capture into a Parquet file, then
// replays it to stdout as CSV.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/marketfeeds/itchconv/internal/colschema"
	"github.com/marketfeeds/itchconv/internal/csvreplay"
	"github.com/marketfeeds/itchconv/internal/itch"
	"github.com/marketfeeds/itchconv/internal/itch/jnx"
	"github.com/marketfeeds/itchconv/internal/itch/nasdaq"
	"github.com/marketfeeds/itchconv/internal/parquetio"
	"github.com/marketfeeds/itchconv/internal/pipeline"
)

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(-1)
}

func dialectByName(name string) (itch.Dialect, error) {
	switch name {
	case "jnx":
		return jnx.Dialect, nil
	case "nasdaq":
		return nasdaq.Dialect, nil
	default:
		return nil, fmt.Errorf("unknown dialect %q (want jnx or nasdaq)", name)
	}
}

func main() {
	dialectName := flag.String("dialect", "nasdaq", "ITCH dialect: jnx or nasdaq")
	rowGroupSize := flag.Int("row-group", parquetio.DefaultMaxRowGroupSize, "maximum rows per Parquet row group")
	flag.Parse()

	dialect, err := dialectByName(*dialectName)
	if err != nil {
		fatal("itchconv: %v", err)
	}

	pcapPath := "itch.pcap"
	parquetPath := "itch.parquet"
	switch args := flag.Args(); len(args) {
	case 0:
	case 1:
		pcapPath = args[0]
	case 2:
		pcapPath = args[0]
		parquetPath = args[1]
	default:
		fatal("itchconv: usage: itchconv [-dialect jnx|nasdaq] [-row-group N] <pcap_file> [<parquet_file>]")
	}

	out, err := os.Create(parquetPath)
	if err != nil {
		fatal("itchconv: create %s: %v", parquetPath, err)
	}

	stats, err := pipeline.Run(pcapPath, dialect, out, *rowGroupSize)
	closeErr := out.Close()
	if err != nil {
		fatal("itchconv: %v", err)
	}
	if closeErr != nil {
		fatal("itchconv: close %s: %v", parquetPath, closeErr)
	}
	fmt.Fprintf(os.Stderr, "itchconv: %d packets, %d messages written, %d messages skipped, %d packets skipped\n",
		stats.PacketsRead, stats.MessagesWritten, stats.MessagesSkipped, stats.PacketsSkipped)

	if err := replay(parquetPath, dialect.Columns()); err != nil {
		fatal("itchconv: replay %s: %v", parquetPath, err)
	}
}

func replay(parquetPath string, columns []colschema.Column) error {
	f, err := os.Open(parquetPath)
	if err != nil {
		return err
	}
	defer f.Close()

	reader, err := parquetio.NewReader(f, columns)
	if err != nil {
		return err
	}
	defer reader.Close()

	return csvreplay.Write(os.Stdout, columns, reader.Next)
}
