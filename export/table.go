package export

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Fixed column names.
const (
	ColumnTimestamp = "timestamp"
	ColumnSignal    = "original_signal"
)

// RowInterval is the spacing of the synthetic timestamp column.
const RowInterval = time.Millisecond

// Errors returned while assembling a table.
var (
	ErrEmptySignal   = errors.New("export: empty signal")
	ErrBandTooLong   = errors.New("export: band longer than signal")
	ErrBandCount     = errors.New("export: band count does not match level")
	ErrUnknownColumn = errors.New("export: unknown column")
)

// Kind is the value type of a column.
type Kind int

const (
	KindTime Kind = iota
	KindFloat
)

// Dtype returns the dtype label shown in column summaries.
func (k Kind) Dtype() string {
	if k == KindTime {
		return "datetime64[us]"
	}
	return "float64"
}

// Column is a named, typed sequence of values. Exactly one of Times and
// Values is populated, matching Kind.
type Column struct {
	Name   string
	Kind   Kind
	Times  []time.Time
	Values []float64
}

// Len returns the number of entries.
func (c Column) Len() int {
	if c.Kind == KindTime {
		return len(c.Times)
	}
	return len(c.Values)
}

// NonNull returns the number of entries that are not NaN.
func (c Column) NonNull() int {
	if c.Kind == KindTime {
		return len(c.Times)
	}
	n := 0
	for _, v := range c.Values {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}

// Table is a column-major table with a fixed row count.
type Table struct {
	columns []Column
	rows    int
}

// Len returns the row count.
func (t *Table) Len() int {
	return t.rows
}

// Columns returns the columns in output order.
func (t *Table) Columns() []Column {
	return t.columns
}

// Header returns the column names in output order.
func (t *Table) Header() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (Column, error) {
	for _, c := range t.columns {
		if c.Name == name {
			return c, nil
		}
	}
	return Column{}, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}

// BandName returns the column name of band i in a decomposition of depth
// level: band 0 is the approximation, band i >= 1 the detail at level-i+1.
func BandName(i, level int) string {
	if i == 0 {
		return fmt.Sprintf("approximation_L%d", level)
	}
	return fmt.Sprintf("detail_L%d", level-i+1)
}

// Pad returns a copy of band right-padded with NaN to length n. A band that is
// already n long is copied unchanged; a longer band is an error.
func Pad(band []float64, n int) ([]float64, error) {
	if len(band) > n {
		return nil, fmt.Errorf("%w: %d > %d", ErrBandTooLong, len(band), n)
	}
	out := make([]float64, n)
	copy(out, band)
	for i := len(band); i < n; i++ {
		out[i] = math.NaN()
	}
	return out, nil
}

// Timestamps returns n instants starting at start, step apart.
func Timestamps(start time.Time, n int, step time.Duration) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		out[i] = start.Add(time.Duration(i) * step)
	}
	return out
}

// Build assembles the export table for signal and its level+1 bands, with a
// timestamp column starting at start and advancing one millisecond per row.
func Build(start time.Time, signal []float64, bands [][]float64, level int) (*Table, error) {
	n := len(signal)
	if n == 0 {
		return nil, ErrEmptySignal
	}
	if level < 0 || len(bands) != level+1 {
		return nil, fmt.Errorf("%w: %d bands for level %d", ErrBandCount, len(bands), level)
	}

	cols := make([]Column, 0, 2+len(bands))
	cols = append(cols,
		Column{Name: ColumnTimestamp, Kind: KindTime, Times: Timestamps(start, n, RowInterval)},
		Column{Name: ColumnSignal, Kind: KindFloat, Values: append([]float64(nil), signal...)},
	)
	for i, band := range bands {
		padded, err := Pad(band, n)
		if err != nil {
			return nil, fmt.Errorf("export: %s: %w", BandName(i, level), err)
		}
		cols = append(cols, Column{Name: BandName(i, level), Kind: KindFloat, Values: padded})
	}

	return &Table{columns: cols, rows: n}, nil
}
