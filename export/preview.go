package export

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
)

// Head writes the first n rows of t as an aligned text table with a leading
// row index.
func Head(w io.Writer, t *Table, n int) error {
	if n > t.rows {
		n = t.rows
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tw, "\t%s\t\n", strings.Join(t.Header(), "\t")); err != nil {
		return err
	}
	for row := 0; row < n; row++ {
		cells := make([]string, len(t.columns))
		for i, c := range t.columns {
			cells[i] = c.preview(row)
		}
		if _, err := fmt.Fprintf(tw, "%d\t%s\t\n", row, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// Info writes a summary of t: row range, column count and per-column
// non-null count and dtype.
func Info(w io.Writer, t *Table) error {
	if _, err := fmt.Fprintf(w, "RangeIndex: %d entries, 0 to %d\n", t.rows, t.rows-1); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Data columns (total %d columns):\n", len(t.columns)); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, " #\tColumn\tNon-Null Count\tDtype")
	fmt.Fprintln(tw, "---\t------\t--------------\t-----")
	counts := map[string]int{}
	var order []string
	for i, c := range t.columns {
		fmt.Fprintf(tw, " %d\t%s\t%d non-null\t%s\n", i, c.Name, c.NonNull(), c.Kind.Dtype())
		d := c.Kind.Dtype()
		if counts[d] == 0 {
			order = append(order, d)
		}
		counts[d]++
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	parts := make([]string, len(order))
	for i, d := range order {
		parts[i] = fmt.Sprintf("%s(%d)", d, counts[d])
	}
	_, err := fmt.Fprintf(w, "dtypes: %s\n", strings.Join(parts, ", "))
	return err
}

func (c Column) preview(row int) string {
	if c.Kind == KindTime {
		return c.Times[row].Format(TimestampLayout)
	}
	v := c.Values[row]
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.6f", v)
}
