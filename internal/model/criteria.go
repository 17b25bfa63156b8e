package model

import "strings"

// YearRange is an inclusive [Min, Max] year constraint.
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// FilterCriteria lists zero or more constraints, one per dimension. A nil
// constraint means "include all values" for that dimension; a non-nil empty
// set admits nothing (it only arises from combining disjoint criteria).
// Constraints are combined with AND across dimensions; the values inside one
// constraint are combined with OR.
type FilterCriteria struct {
	States    []string   `json:"states,omitempty"`
	Years     *YearRange `json:"years,omitempty"`
	Genders   []Gender   `json:"genders,omitempty"`
	AgeGroups []AgeGroup `json:"age_groups,omitempty"`
	Category  []string   `json:"category,omitempty"`
}

// IsEmpty reports whether no constraint is active.
func (c FilterCriteria) IsEmpty() bool {
	return c.States == nil &&
		c.Years == nil &&
		c.Genders == nil &&
		c.AgeGroups == nil &&
		c.Category == nil
}

// Combine merges two criteria into one that admits exactly the records both
// admit: value sets intersect, year ranges narrow. filter(filter(D,a),b) and
// filter(D, Combine(a,b)) therefore agree.
func Combine(a, b FilterCriteria) FilterCriteria {
	out := FilterCriteria{
		States:    intersectFold(a.States, b.States),
		Genders:   intersect(a.Genders, b.Genders),
		AgeGroups: intersect(a.AgeGroups, b.AgeGroups),
		Category:  intersectFold(a.Category, b.Category),
	}
	switch {
	case a.Years == nil:
		out.Years = copyRange(b.Years)
	case b.Years == nil:
		out.Years = copyRange(a.Years)
	default:
		r := YearRange{Min: a.Years.Min, Max: a.Years.Max}
		if b.Years.Min > r.Min {
			r.Min = b.Years.Min
		}
		if b.Years.Max < r.Max {
			r.Max = b.Years.Max
		}
		out.Years = &r
	}
	return out
}

func copyRange(r *YearRange) *YearRange {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

// intersectFold intersects string constraints case-insensitively, matching
// how the filter compares state and category values. Kept values take a's
// spelling; disjoint sets yield a non-nil empty slice, which admits nothing.
func intersectFold(a, b []string) []string {
	if a == nil {
		return append([]string(nil), b...)
	}
	if b == nil {
		return append([]string(nil), a...)
	}
	inB := make(map[string]bool, len(b))
	for _, v := range b {
		inB[strings.ToLower(v)] = true
	}
	out := make([]string, 0, len(a))
	for _, v := range a {
		if inB[strings.ToLower(v)] {
			out = append(out, v)
		}
	}
	return out
}

// intersect treats a nil side as "all values". Values compare exactly, so it
// serves the closed enum constraints; disjoint sets yield a non-nil empty
// slice, which admits nothing.
func intersect[T comparable](a, b []T) []T {
	if a == nil {
		return append([]T(nil), b...)
	}
	if b == nil {
		return append([]T(nil), a...)
	}
	inB := make(map[T]bool, len(b))
	for _, v := range b {
		inB[v] = true
	}
	out := make([]T, 0, len(a))
	for _, v := range a {
		if inB[v] {
			out = append(out, v)
		}
	}
	return out
}
