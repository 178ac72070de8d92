package export

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// TimestampLayout renders timestamps as local wall-clock time with
// microsecond digits.
const TimestampLayout = "2006-01-02 15:04:05.000000"

// WriteCSV writes t as comma-separated values with a header row and no index
// column. NaN cells are left empty.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header()); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}

	record := make([]string, len(t.columns))
	for row := 0; row < t.rows; row++ {
		for i, c := range t.columns {
			record[i] = c.cell(row)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("export: write row %d: %w", row, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: flush: %w", err)
	}
	return nil
}

// WriteFile writes t as CSV to path, replacing any existing file. The output
// is compressed when the extension names a codec (see [CompressionFor]).
func WriteFile(path string, t *Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	cw, err := NewWriter(bw, CompressionFor(path))
	if err != nil {
		return err
	}
	if err := WriteCSV(cw, t); err != nil {
		return err
	}
	if err := cw.Close(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// OpenFile opens a file written by [WriteFile], decoding it according to its
// extension.
func OpenFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	r, err := NewReader(bufio.NewReader(f), CompressionFor(path))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("export: %w", err)
	}
	return &fileReader{ReadCloser: r, file: f}, nil
}

type fileReader struct {
	io.ReadCloser
	file *os.File
}

func (r *fileReader) Close() error {
	err := r.ReadCloser.Close()
	if ferr := r.file.Close(); err == nil {
		err = ferr
	}
	return err
}

func (c Column) cell(row int) string {
	if c.Kind == KindTime {
		return c.Times[row].Format(TimestampLayout)
	}
	return FormatFloat(c.Values[row])
}

// FormatFloat renders v in its shortest round-trip form, keeping a decimal
// point on integral values and switching to exponent notation below 1e-4 and
// from 1e16 on. NaN renders as the empty string.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return ""
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	if a := math.Abs(v); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
