package engine

import (
	"reflect"
	"testing"

	"suicide-analytics-service/internal/model"
)

func specDataset() model.Dataset {
	return model.NewDataset([]model.Record{
		{State: "Maharashtra", Year: 2010, Gender: model.GenderMale, AgeGroup: model.AgeGroup15to29, Category: "Unemployment", Count: 50},
		{State: "Maharashtra", Year: 2010, Gender: model.GenderFemale, AgeGroup: model.AgeGroup15to29, Category: "Unemployment", Count: 30},
		{State: "Kerala", Year: 2010, Gender: model.GenderMale, AgeGroup: model.AgeGroup30to44, Category: "Other", Count: 20},
	})
}

func wideDataset() model.Dataset {
	var records []model.Record
	states := []string{"Kerala", "Maharashtra", "Goa", "Punjab"}
	genders := []model.Gender{model.GenderMale, model.GenderFemale}
	for year := 2005; year <= 2012; year++ {
		for si, state := range states {
			for gi, g := range genders {
				records = append(records, model.Record{
					State:    state,
					Year:     year,
					Gender:   g,
					AgeGroup: model.KnownAgeGroups[(si+gi+year)%len(model.KnownAgeGroups)],
					Category: []string{"Unemployment", "Illness", "Poverty"}[(si+year)%3],
					Count:    (si+1)*10 + gi + year%7,
				})
			}
		}
	}
	return model.NewDataset(records)
}

func TestFilterIdentityLaw(t *testing.T) {
	d := specDataset()
	got := Filter(d, model.FilterCriteria{})
	if !reflect.DeepEqual(got.Records(), d.Records()) {
		t.Fatal("empty criteria must return the dataset unchanged")
	}
}

func TestFilterConjunctive(t *testing.T) {
	d := specDataset()
	got := Filter(d, model.FilterCriteria{
		States:  []string{"Maharashtra"},
		Genders: []model.Gender{model.GenderFemale},
	})
	if got.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", got.Len())
	}
	if got.Record(0).Count != 30 {
		t.Errorf("wrong record survived: %+v", got.Record(0))
	}
}

func TestFilterYearRange(t *testing.T) {
	d := wideDataset()
	got := Filter(d, model.FilterCriteria{Years: &model.YearRange{Min: 2007, Max: 2009}})
	if got.Len() == 0 {
		t.Fatal("expected records in range")
	}
	for _, rec := range got.Records() {
		if rec.Year < 2007 || rec.Year > 2009 {
			t.Fatalf("record outside year range: %+v", rec)
		}
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	d := wideDataset()
	got := Filter(d, model.FilterCriteria{Genders: []model.Gender{model.GenderMale}})
	prev := -1
	for _, rec := range got.Records() {
		if rec.Year < prev {
			t.Fatal("filter reordered records")
		}
		prev = rec.Year
	}
}

func TestFilterCaseInsensitiveValues(t *testing.T) {
	d := specDataset()
	got := Filter(d, model.FilterCriteria{States: []string{"kerala"}})
	if got.Len() != 1 || got.Record(0).State != "Kerala" {
		t.Fatalf("case-insensitive state match failed: %d records", got.Len())
	}
}

func TestFilterComposability(t *testing.T) {
	d := wideDataset()
	cases := []struct {
		name   string
		c1, c2 model.FilterCriteria
	}{
		{
			name: "state then gender",
			c1:   model.FilterCriteria{States: []string{"Kerala", "Goa"}},
			c2:   model.FilterCriteria{Genders: []model.Gender{model.GenderFemale}},
		},
		{
			name: "overlapping states",
			c1:   model.FilterCriteria{States: []string{"Kerala", "Goa", "Punjab"}},
			c2:   model.FilterCriteria{States: []string{"Goa", "Punjab", "Maharashtra"}},
		},
		{
			name: "narrowing year ranges",
			c1:   model.FilterCriteria{Years: &model.YearRange{Min: 2006, Max: 2011}},
			c2:   model.FilterCriteria{Years: &model.YearRange{Min: 2008, Max: 2012}},
		},
		{
			name: "superset of same criteria",
			c1:   model.FilterCriteria{States: []string{"Kerala"}},
			c2: model.FilterCriteria{
				States: []string{"Kerala"},
				Years:  &model.YearRange{Min: 2005, Max: 2012},
			},
		},
		{
			name: "same state in different case",
			c1:   model.FilterCriteria{States: []string{"kerala"}},
			c2:   model.FilterCriteria{States: []string{"Kerala"}},
		},
		{
			name: "same category in different case",
			c1:   model.FilterCriteria{Category: []string{"UNEMPLOYMENT", "Illness"}},
			c2:   model.FilterCriteria{Category: []string{"unemployment"}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sequential := Filter(Filter(d, tc.c1), tc.c2)
			combined := Filter(d, model.Combine(tc.c1, tc.c2))
			if !reflect.DeepEqual(sequential.Records(), combined.Records()) {
				t.Fatalf("sequential filtering (%d records) disagrees with combined criteria (%d records)",
					sequential.Len(), combined.Len())
			}
		})
	}
}

func TestCombineDisjointAdmitsNothing(t *testing.T) {
	d := specDataset()
	combined := model.Combine(
		model.FilterCriteria{States: []string{"Kerala"}},
		model.FilterCriteria{States: []string{"Goa"}},
	)
	if got := Filter(d, combined); got.Len() != 0 {
		t.Fatalf("disjoint criteria admitted %d records", got.Len())
	}
}
