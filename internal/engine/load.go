package engine

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"suicide-analytics-service/internal/model"
)

// Canonical column names the engine works with.
const (
	ColumnState    = "state"
	ColumnYear     = "year"
	ColumnGender   = "gender"
	ColumnAgeGroup = "age_group"
	ColumnCategory = "category"
	ColumnCount    = "count"
)

var requiredColumns = []string{
	ColumnState, ColumnYear, ColumnGender, ColumnAgeGroup, ColumnCategory, ColumnCount,
}

// ColumnMapping maps each canonical column to the header names accepted for
// it. Header matching is case-insensitive.
type ColumnMapping map[string][]string

// DefaultColumnMapping accepts the canonical column names and the headers of
// the NCRB exports the dashboard was built around (State, Year, Type, Gender,
// Age_group, Total).
func DefaultColumnMapping() ColumnMapping {
	return ColumnMapping{
		ColumnState:    {"state", "state/ut"},
		ColumnYear:     {"year"},
		ColumnGender:   {"gender", "sex"},
		ColumnAgeGroup: {"age_group", "age group", "agegroup"},
		ColumnCategory: {"category", "type", "cause"},
		ColumnCount:    {"count", "total", "cases"},
	}
}

// LoadColumnMapping reads a YAML column mapping file. Canonical columns not
// mentioned in the file keep their default header names.
func LoadColumnMapping(path string) (ColumnMapping, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read column mapping: %w", err)
	}
	custom := ColumnMapping{}
	if err := yaml.Unmarshal(raw, &custom); err != nil {
		return nil, fmt.Errorf("parse column mapping: %w", err)
	}
	mapping := DefaultColumnMapping()
	for col, headers := range custom {
		col = strings.ToLower(strings.TrimSpace(col))
		if len(headers) == 0 {
			continue
		}
		if _, known := mapping[col]; !known {
			return nil, fmt.Errorf("column mapping: unknown column %q", col)
		}
		mapping[col] = headers
	}
	return mapping, nil
}

// LoadResult is the outcome of reading one CSV file: the usable dataset plus
// the skipped-row report.
type LoadResult struct {
	Dataset  model.Dataset
	Warnings []RowWarning
	// Rollups counts dropped pre-aggregated total rows; they are excluded by
	// design, not data defects, so they are not warnings.
	Rollups int
}

// Skipped returns the number of rows dropped with a warning.
func (r *LoadResult) Skipped() int { return len(r.Warnings) }

// Load reads a comma-delimited UTF-8 dataset with a header row. Rows that
// fail type coercion on year/count, carry a negative count, or miss a
// required value are skipped with a RowWarning. The load fails with
// *DataFormatError when a required column cannot be resolved through the
// mapping or when no row survives.
func Load(r io.Reader, mapping ColumnMapping) (*LoadResult, error) {
	if mapping == nil {
		mapping = DefaultColumnMapping()
	}

	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, &DataFormatError{Reason: "cannot read header row"}
	}

	index, missing := resolveColumns(header, mapping)
	if len(missing) > 0 {
		return nil, &DataFormatError{Reason: "unrecognized header", MissingColumns: missing}
	}

	res := &LoadResult{}
	var records []model.Record
	line := 1
	for {
		line++
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			res.Warnings = append(res.Warnings, RowWarning{Line: line, Reason: "malformed CSV row"})
			continue
		}

		rec, reason := coerceRow(row, index)
		if reason != "" {
			res.Warnings = append(res.Warnings, RowWarning{Line: line, Reason: reason})
			continue
		}
		if rollupStates[rec.State] {
			res.Rollups++
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, &DataFormatError{Reason: "no usable rows in input"}
	}
	res.Dataset = model.NewDataset(records)
	return res, nil
}

// resolveColumns matches cleaned header cells against the mapping and returns
// the field index of each canonical column.
func resolveColumns(header []string, mapping ColumnMapping) (map[string]int, []string) {
	headerAt := make(map[string]int, len(header))
	for i, h := range header {
		clean := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(h, `"`, "")))
		if _, taken := headerAt[clean]; !taken {
			headerAt[clean] = i
		}
	}

	index := make(map[string]int, len(requiredColumns))
	var missing []string
	for _, col := range requiredColumns {
		found := false
		for _, accepted := range mapping[col] {
			if i, ok := headerAt[strings.ToLower(accepted)]; ok {
				index[col] = i
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, col)
		}
	}
	return index, missing
}

func coerceRow(row []string, index map[string]int) (model.Record, string) {
	field := func(col string) (string, bool) {
		i := index[col]
		if i >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[i]), true
	}

	state, ok := field(ColumnState)
	if !ok || state == "" {
		return model.Record{}, "missing state"
	}
	yearStr, ok := field(ColumnYear)
	if !ok || yearStr == "" {
		return model.Record{}, "missing year"
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return model.Record{}, fmt.Sprintf("year %q is not an integer", yearStr)
	}
	countStr, ok := field(ColumnCount)
	if !ok || countStr == "" {
		return model.Record{}, "missing count"
	}
	count, err := strconv.Atoi(countStr)
	if err != nil {
		return model.Record{}, fmt.Sprintf("count %q is not an integer", countStr)
	}
	if count < 0 {
		return model.Record{}, fmt.Sprintf("count %d is negative", count)
	}
	category, ok := field(ColumnCategory)
	if !ok || category == "" {
		return model.Record{}, "missing category"
	}
	genderStr, _ := field(ColumnGender)
	ageStr, _ := field(ColumnAgeGroup)

	return model.Record{
		State:    titleCase(state),
		Year:     year,
		Gender:   model.ParseGender(genderStr),
		AgeGroup: model.ParseAgeGroup(ageStr),
		Category: titleCase(category),
		Count:    count,
	}, ""
}
