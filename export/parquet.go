package export

import (
	"fmt"
	"io"
	"math"

	parquet "github.com/parquet-go/parquet-go"
)

// Record is one cell of a table in long format. Timestamp is carried as
// microseconds since the Unix epoch; Value is nil for padded cells.
type Record struct {
	Row         int64    `parquet:"row"`
	TimestampUS int64    `parquet:"timestamp_us"`
	Column      string   `parquet:"column"`
	Value       *float64 `parquet:"value,optional"`
}

// Records flattens the numeric columns of t into long format, row by row.
func Records(t *Table) []Record {
	ts, err := t.Column(ColumnTimestamp)
	if err != nil {
		return nil
	}

	out := make([]Record, 0, t.rows*(len(t.columns)-1))
	for row := 0; row < t.rows; row++ {
		us := ts.Times[row].UnixMicro()
		for _, c := range t.columns {
			if c.Kind != KindFloat {
				continue
			}
			r := Record{Row: int64(row), TimestampUS: us, Column: c.Name}
			if v := c.Values[row]; !math.IsNaN(v) {
				r.Value = &v
			}
			out = append(out, r)
		}
	}
	return out
}

// WriteParquet writes t to w as a snappy-compressed parquet file of [Record]s.
func WriteParquet(w io.Writer, t *Table) error {
	pw := parquet.NewGenericWriter[Record](w, parquet.Compression(&parquet.Snappy))
	if _, err := pw.Write(Records(t)); err != nil {
		_ = pw.Close()
		return fmt.Errorf("export: parquet write: %w", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("export: parquet close: %w", err)
	}
	return nil
}

// ReadParquet reads back every [Record] from a file written by [WriteParquet].
func ReadParquet(ra io.ReaderAt) ([]Record, error) {
	gr := parquet.NewGenericReader[Record](ra)
	defer gr.Close()

	out := make([]Record, 0, gr.NumRows())
	batch := make([]Record, 1024)
	for {
		n, err := gr.Read(batch)
		if n > 0 {
			out = append(out, batch[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("export: parquet read: %w", err)
		}
	}
	return out, nil
}
