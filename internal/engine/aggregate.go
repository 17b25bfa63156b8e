package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"suicide-analytics-service/internal/model"
)

// groupKeySep joins multi-dimension keys internally; it cannot occur in a
// dimension value.
const groupKeySep = "\x1f"

// Aggregate groups the dataset by the requested dimensions and reduces each
// group with the requested function. Rows come back sorted ascending by group
// key (years numerically, everything else lexically), so identical requests
// over identical data render identically. Returns ErrEmptyResult for an empty
// dataset and ErrInvalidRequest for a malformed request.
func Aggregate(d model.Dataset, req model.AggregationRequest) (*model.SummaryTable, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if d.Len() == 0 {
		return nil, ErrEmptyResult
	}

	groups := make(map[string]*model.SummaryRow)
	for _, rec := range d.Records() {
		keys := make([]string, len(req.GroupBy))
		for i, dim := range req.GroupBy {
			keys[i] = dimensionValue(rec, dim)
		}
		id := strings.Join(keys, groupKeySep)
		row, ok := groups[id]
		if !ok {
			row = &model.SummaryRow{Keys: keys}
			groups[id] = row
		}
		switch req.Fn {
		case model.AggregateSum:
			row.Value += int64(rec.Count)
		case model.AggregateCount:
			row.Value++
		}
	}

	if req.Dense && req.GroupBy[0] == model.DimensionYear {
		fillMissingYears(d, req, groups)
	}

	table := &model.SummaryTable{
		GroupBy: append([]model.Dimension(nil), req.GroupBy...),
		Fn:      req.Fn,
		Rows:    make([]model.SummaryRow, 0, len(groups)),
	}
	for _, row := range groups {
		table.Rows = append(table.Rows, *row)
	}
	sortRows(table.Rows, req.GroupBy)
	return table, nil
}

func validateRequest(req model.AggregationRequest) error {
	if len(req.GroupBy) == 0 {
		return fmt.Errorf("%w: at least one group_by dimension required", ErrInvalidRequest)
	}
	seen := make(map[model.Dimension]bool, len(req.GroupBy))
	for _, dim := range req.GroupBy {
		if !model.ValidDimension(dim) {
			return fmt.Errorf("%w: unknown dimension %q", ErrInvalidRequest, dim)
		}
		if seen[dim] {
			return fmt.Errorf("%w: duplicate dimension %q", ErrInvalidRequest, dim)
		}
		seen[dim] = true
	}
	switch req.Fn {
	case model.AggregateSum, model.AggregateCount:
	default:
		return fmt.Errorf("%w: unknown aggregate function %q", ErrInvalidRequest, req.Fn)
	}
	return nil
}

func dimensionValue(rec model.Record, dim model.Dimension) string {
	switch dim {
	case model.DimensionState:
		return rec.State
	case model.DimensionYear:
		return strconv.Itoa(rec.Year)
	case model.DimensionGender:
		return rec.Gender.String()
	case model.DimensionAgeGroup:
		return string(rec.AgeGroup)
	case model.DimensionCategory:
		return rec.Category
	}
	return ""
}

// fillMissingYears adds zero rows for years absent from the dataset's year
// range, so a year axis never shows a gap where data exists on either side.
// For multi-dimension requests the fill covers every observed combination of
// the trailing dimensions.
func fillMissingYears(d model.Dataset, req model.AggregationRequest, groups map[string]*model.SummaryRow) {
	minYear, maxYear, ok := d.YearRange()
	if !ok {
		return
	}

	// Observed trailing-key combinations; a single-dimension request has
	// exactly one, the empty suffix.
	suffixes := make(map[string][]string)
	for _, row := range groups {
		suffix := row.Keys[1:]
		suffixes[strings.Join(suffix, groupKeySep)] = suffix
	}

	for year := minYear; year <= maxYear; year++ {
		yearKey := strconv.Itoa(year)
		for _, suffix := range suffixes {
			keys := append([]string{yearKey}, suffix...)
			id := strings.Join(keys, groupKeySep)
			if _, ok := groups[id]; !ok {
				groups[id] = &model.SummaryRow{Keys: keys}
			}
		}
	}
}

// sortRows orders rows ascending dimension by dimension. Year keys compare
// numerically so "999" sorts before "1000".
func sortRows(rows []model.SummaryRow, dims []model.Dimension) {
	sort.Slice(rows, func(i, j int) bool {
		for k, dim := range dims {
			a, b := rows[i].Keys[k], rows[j].Keys[k]
			if a == b {
				continue
			}
			if dim == model.DimensionYear {
				ai, aerr := strconv.Atoi(a)
				bi, berr := strconv.Atoi(b)
				if aerr == nil && berr == nil {
					return ai < bi
				}
			}
			return a < b
		}
		return false
	})
}
