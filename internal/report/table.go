// Package report renders prominence records as a fixed-width text
// table: columns prom, row, col, elev, crow, ccol, celev, with NA
// substituted for an absent col.
package report

import (
	"fmt"
	"io"

	"github.com/muka28/TopographicProminence/prominence"
)

const columnWidth = 10

var header = []string{"prom", "row", "col", "elev", "crow", "ccol", "celev"}

// Format writes a header row, a separator line, and one fixed-width line
// per record in the order given (the collector's ranking order).
func Format(w io.Writer, records []prominence.Record) error {
	for i, col := range header {
		if i > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%*s", columnWidth, col); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	sepLen := len(header)*(columnWidth+1) - 1
	for i := 0; i < sepLen; i++ {
		if _, err := io.WriteString(w, "-"); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	for _, rec := range records {
		if err := writeRow(w, rec); err != nil {
			return err
		}
	}

	return nil
}

func writeRow(w io.Writer, rec prominence.Record) error {
	crow, ccol, celev := "NA", "NA", "NA"
	if rec.ColAt != nil {
		crow = fmt.Sprintf("%d", rec.ColAt.Row)
		ccol = fmt.Sprintf("%d", rec.ColAt.Col)
		celev = fmt.Sprintf("%d", rec.ColAt.Elev)
	}

	_, err := fmt.Fprintf(w, "%*d %*d %*d %*d %*s %*s %*s\n",
		columnWidth, rec.Prom,
		columnWidth, rec.PeakRow,
		columnWidth, rec.PeakCol,
		columnWidth, rec.PeakElev,
		columnWidth, crow,
		columnWidth, ccol,
		columnWidth, celev,
	)

	return err
}
