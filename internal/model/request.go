package model

// Dimension names a groupable column of the dataset.
type Dimension string

const (
	DimensionState    Dimension = "state"
	DimensionYear     Dimension = "year"
	DimensionGender   Dimension = "gender"
	DimensionAgeGroup Dimension = "age_group"
	DimensionCategory Dimension = "category"
)

// ValidDimension reports whether d names a groupable column.
func ValidDimension(d Dimension) bool {
	switch d {
	case DimensionState, DimensionYear, DimensionGender, DimensionAgeGroup, DimensionCategory:
		return true
	}
	return false
}

// AggregateFunc selects how grouped records are reduced.
type AggregateFunc string

const (
	// AggregateSum sums the count column within each group.
	AggregateSum AggregateFunc = "sum"
	// AggregateCount counts the records within each group.
	AggregateCount AggregateFunc = "count"
)

// AggregationRequest specifies the grouping dimensions and the reduction to
// apply to an already-filtered dataset.
//
// Dense controls gap filling: when the leading dimension is year, missing
// years inside the dataset's year range are emitted as zero rows so
// continuous-axis charts do not show misleading gaps. Sparse output (the
// default) omits empty groups entirely, keeping "no data" distinct from
// "zero incidents".
type AggregationRequest struct {
	GroupBy []Dimension   `json:"group_by"`
	Fn      AggregateFunc `json:"fn"`
	Dense   bool          `json:"dense"`
}

// SummaryRow is one output group: its key values in GroupBy order, plus the
// aggregated value.
type SummaryRow struct {
	Keys  []string `json:"keys"`
	Value int64    `json:"value"`
}

// SummaryTable is the chart-ready aggregation output. Rows are sorted
// ascending by group key (years numerically, everything else lexically), so
// identical requests over identical data produce identical tables. Created
// fresh per request and never mutated.
type SummaryTable struct {
	GroupBy []Dimension   `json:"group_by"`
	Fn      AggregateFunc `json:"fn"`
	Rows    []SummaryRow  `json:"rows"`
}

// Total sums the aggregated values across all rows.
func (t *SummaryTable) Total() int64 {
	var total int64
	for _, row := range t.Rows {
		total += row.Value
	}
	return total
}
