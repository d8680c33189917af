package table

import (
	"encoding/csv"
	"io"
)

// WriteCSV writes rows as CSV: one header row with the visible column labels,
// then one record per row with the visible columns only. Fields are
// quote-escaped by the writer.
func WriteCSV[T any](w io.Writer, columns []Column[T], rows []T) error {
	visible := make([]Column[T], 0, len(columns))
	for _, col := range columns {
		if col.Visible {
			visible = append(visible, col)
		}
	}

	cw := csv.NewWriter(w)

	header := make([]string, len(visible))
	for i, col := range visible {
		header[i] = col.Label
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	record := make([]string, len(visible))
	for _, row := range rows {
		for i, col := range visible {
			record[i] = col.Value(row)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSV exports the currently loaded page with the currently visible
// columns. This deliberately covers the loaded page, not the full filtered
// result set.
func (c *Controller[T]) ExportCSV(w io.Writer) error {
	c.mu.Lock()
	columns := make([]Column[T], len(c.columns))
	copy(columns, c.columns)
	rows := c.rows
	c.mu.Unlock()

	return WriteCSV(w, columns, rows)
}
