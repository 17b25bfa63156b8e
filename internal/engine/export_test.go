package engine

import (
	"bytes"
	"testing"

	"suicide-analytics-service/internal/model"
)

func TestWriteDatasetCSV(t *testing.T) {
	d := model.NewDataset([]model.Record{
		{State: "Kerala", Year: 2010, Gender: model.GenderMale, AgeGroup: model.AgeGroup30to44, Category: "Other", Count: 20},
	})
	var buf bytes.Buffer
	if err := WriteDatasetCSV(&buf, d); err != nil {
		t.Fatalf("WriteDatasetCSV: %v", err)
	}
	want := "state,year,gender,age_group,category,count\n" +
		"Kerala,2010,Male,30-44,Other,20\n"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
}

func TestWriteSummaryCSV(t *testing.T) {
	table := &model.SummaryTable{
		GroupBy: []model.Dimension{model.DimensionYear, model.DimensionState},
		Fn:      model.AggregateSum,
		Rows: []model.SummaryRow{
			{Keys: []string{"2010", "Kerala"}, Value: 20},
			{Keys: []string{"2010", "Maharashtra"}, Value: 80},
		},
	}
	var buf bytes.Buffer
	if err := WriteSummaryCSV(&buf, table); err != nil {
		t.Fatalf("WriteSummaryCSV: %v", err)
	}
	want := "year,state,sum\n" +
		"2010,Kerala,20\n" +
		"2010,Maharashtra,80\n"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
}
