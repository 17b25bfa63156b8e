package engine

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"suicide-analytics-service/internal/model"
)

// WriteDatasetCSV streams a dataset as CSV with the canonical header, for the
// dashboard's "download filtered data" action.
func WriteDatasetCSV(w io.Writer, d model.Dataset) error {
	cw := csv.NewWriter(w)
	header := []string{ColumnState, ColumnYear, ColumnGender, ColumnAgeGroup, ColumnCategory, ColumnCount}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}
	for _, rec := range d.Records() {
		row := []string{
			rec.State,
			strconv.Itoa(rec.Year),
			rec.Gender.String(),
			string(rec.AgeGroup),
			rec.Category,
			strconv.Itoa(rec.Count),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSummaryCSV streams a summary table as CSV: one column per grouping
// dimension plus the aggregated value column, named after the function.
func WriteSummaryCSV(w io.Writer, t *model.SummaryTable) error {
	cw := csv.NewWriter(w)
	header := make([]string, 0, len(t.GroupBy)+1)
	for _, dim := range t.GroupBy {
		header = append(header, string(dim))
	}
	header = append(header, string(t.Fn))
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}
	for _, row := range t.Rows {
		out := make([]string, 0, len(row.Keys)+1)
		out = append(out, row.Keys...)
		out = append(out, strconv.FormatInt(row.Value, 10))
		if err := cw.Write(out); err != nil {
			return fmt.Errorf("write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
