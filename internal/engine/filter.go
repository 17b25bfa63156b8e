package engine

import (
	"strings"

	"suicide-analytics-service/internal/model"
)

// Filter returns the records admitted by every active constraint in criteria,
// in their original order. A nil constraint admits all values of its
// dimension, so an empty criteria is the identity. The input dataset is never
// mutated; composing Filter calls is equivalent to one call with
// model.Combine of the criteria.
func Filter(d model.Dataset, c model.FilterCriteria) model.Dataset {
	if c.IsEmpty() {
		return d
	}

	var states, categories map[string]bool
	if c.States != nil {
		states = toLowerSet(c.States)
	}
	if c.Category != nil {
		categories = toLowerSet(c.Category)
	}
	var genders map[model.Gender]bool
	if c.Genders != nil {
		genders = make(map[model.Gender]bool, len(c.Genders))
		for _, g := range c.Genders {
			genders[g] = true
		}
	}
	var ageGroups map[model.AgeGroup]bool
	if c.AgeGroups != nil {
		ageGroups = make(map[model.AgeGroup]bool, len(c.AgeGroups))
		for _, ag := range c.AgeGroups {
			ageGroups[ag] = true
		}
	}

	var out []model.Record
	for _, rec := range d.Records() {
		if states != nil && !states[strings.ToLower(rec.State)] {
			continue
		}
		if c.Years != nil && (rec.Year < c.Years.Min || rec.Year > c.Years.Max) {
			continue
		}
		if genders != nil && !genders[rec.Gender] {
			continue
		}
		if ageGroups != nil && !ageGroups[rec.AgeGroup] {
			continue
		}
		if categories != nil && !categories[strings.ToLower(rec.Category)] {
			continue
		}
		out = append(out, rec)
	}
	return model.NewDataset(out)
}

func toLowerSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = true
	}
	return set
}
