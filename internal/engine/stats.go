package engine

import (
	"suicide-analytics-service/internal/model"
)

// KeyStatistics is the dashboard's headline strip: overall totals and the
// standout values for the currently filtered dataset.
type KeyStatistics struct {
	TotalCases        int64   `json:"total_cases"`
	AvgAnnualCases    float64 `json:"avg_annual_cases"`
	MostAffectedState string  `json:"most_affected_state"`
	MaleSharePercent  float64 `json:"male_share_percent"`
	YearMin           int     `json:"year_min"`
	YearMax           int     `json:"year_max"`
	Records           int     `json:"records"`
}

// Statistics computes the key statistics for a (typically filtered) dataset.
// Returns ErrEmptyResult when the dataset has no records.
func Statistics(d model.Dataset) (*KeyStatistics, error) {
	if d.Len() == 0 {
		return nil, ErrEmptyResult
	}

	var total, maleTotal int64
	years := make(map[int]bool)
	stateTotals := make(map[string]int64)
	for _, rec := range d.Records() {
		total += int64(rec.Count)
		if rec.Gender == model.GenderMale {
			maleTotal += int64(rec.Count)
		}
		years[rec.Year] = true
		stateTotals[rec.State] += int64(rec.Count)
	}

	minYear, maxYear, _ := d.YearRange()

	// Ties on the state total break toward the lexically smaller name, so the
	// headline is stable across runs.
	var topState string
	var topTotal int64 = -1
	for state, t := range stateTotals {
		if t > topTotal || (t == topTotal && state < topState) {
			topState, topTotal = state, t
		}
	}

	stats := &KeyStatistics{
		TotalCases:        total,
		AvgAnnualCases:    float64(total) / float64(len(years)),
		MostAffectedState: topState,
		YearMin:           minYear,
		YearMax:           maxYear,
		Records:           d.Len(),
	}
	if total > 0 {
		stats.MaleSharePercent = float64(maleTotal) / float64(total) * 100
	}
	return stats, nil
}

// MapPoint is one state's total with the GeoJSON-compatible state name the
// choropleth layer expects.
type MapPoint struct {
	State   string `json:"state"`
	GeoName string `json:"geo_name"`
	Total   int64  `json:"total"`
}

// MapTotals aggregates totals by state and attaches geo-canonical names,
// sorted by state ascending. Returns ErrEmptyResult for an empty dataset.
func MapTotals(d model.Dataset) ([]MapPoint, error) {
	table, err := Aggregate(d, model.AggregationRequest{
		GroupBy: []model.Dimension{model.DimensionState},
		Fn:      model.AggregateSum,
	})
	if err != nil {
		return nil, err
	}
	points := make([]MapPoint, 0, len(table.Rows))
	for _, row := range table.Rows {
		points = append(points, MapPoint{
			State:   row.Keys[0],
			GeoName: GeoStateName(row.Keys[0]),
			Total:   row.Value,
		})
	}
	return points, nil
}
