package model

import (
	"fmt"
	"strings"
)

// Gender is a closed dimension. Anything the source data cannot express as
// male or female collapses to GenderUnspecified instead of leaking raw strings
// into aggregates.
type Gender uint8

const (
	GenderUnspecified Gender = iota
	GenderMale
	GenderFemale
)

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	default:
		return "Unspecified"
	}
}

// ParseGender maps a raw CSV value onto the closed Gender set.
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return GenderMale
	case "female", "f":
		return GenderFemale
	default:
		return GenderUnspecified
	}
}

// ParseGenderValue parses a user-supplied gender filter value. Unlike
// ParseGender it rejects labels outside the closed set instead of collapsing
// them to GenderUnspecified, so a typo cannot silently filter for the
// fallback bucket.
func ParseGenderValue(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return GenderMale, nil
	case "female", "f":
		return GenderFemale, nil
	case "unspecified":
		return GenderUnspecified, nil
	}
	return GenderUnspecified, fmt.Errorf("unknown gender %q", s)
}

// AgeGroup is one of the NCRB age buckets, with an explicit fallback bucket
// for labels outside the known set.
type AgeGroup string

const (
	AgeGroup0to14       AgeGroup = "0-14"
	AgeGroup15to29      AgeGroup = "15-29"
	AgeGroup30to44      AgeGroup = "30-44"
	AgeGroup45to59      AgeGroup = "45-59"
	AgeGroup60Plus      AgeGroup = "60+"
	AgeGroupUnspecified AgeGroup = "unspecified"
)

// KnownAgeGroups lists the closed buckets in ascending age order.
var KnownAgeGroups = []AgeGroup{
	AgeGroup0to14,
	AgeGroup15to29,
	AgeGroup30to44,
	AgeGroup45to59,
	AgeGroup60Plus,
}

// ParseAgeGroup normalizes a raw bucket label. "0-14+" style suffixes and
// spacing differences in the source files are tolerated; unknown labels
// become AgeGroupUnspecified.
func ParseAgeGroup(s string) AgeGroup {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "")
	norm = strings.TrimSuffix(norm, "years")
	for _, ag := range KnownAgeGroups {
		if norm == string(ag) {
			return ag
		}
	}
	// "60+" shows up as "60 +" or "60-100+" in some exports
	if strings.HasPrefix(norm, "60") {
		return AgeGroup60Plus
	}
	return AgeGroupUnspecified
}

// ParseAgeGroupValue parses a user-supplied age-group filter value. Labels
// that ParseAgeGroup would collapse to the fallback bucket are an error here;
// only the literal "unspecified" selects the fallback.
func ParseAgeGroupValue(s string) (AgeGroup, error) {
	ag := ParseAgeGroup(s)
	if ag == AgeGroupUnspecified && !strings.EqualFold(strings.TrimSpace(s), "unspecified") {
		return ag, fmt.Errorf("unknown age group %q", s)
	}
	return ag, nil
}

// Record is one observation: incident count for a
// state/year/gender/age-group/category combination.
type Record struct {
	State    string   `json:"state"`
	Year     int      `json:"year"`
	Gender   Gender   `json:"gender"`
	AgeGroup AgeGroup `json:"age_group"`
	Category string   `json:"category"`
	Count    int      `json:"count"`
}

// Dataset is an ordered, immutable collection of records. It is built once by
// the loader and replaced wholesale on re-upload; nothing mutates it after
// construction.
type Dataset struct {
	records []Record
}

// NewDataset wraps records in an immutable Dataset. The slice is owned by the
// dataset from this point on.
func NewDataset(records []Record) Dataset {
	return Dataset{records: records}
}

// Len returns the number of records.
func (d Dataset) Len() int { return len(d.records) }

// Record returns the record at index i in load order.
func (d Dataset) Record(i int) Record { return d.records[i] }

// Records returns the backing slice. Callers must treat it as read-only.
func (d Dataset) Records() []Record { return d.records }

// TotalCount sums the count column across the whole dataset.
func (d Dataset) TotalCount() int64 {
	var total int64
	for _, r := range d.records {
		total += int64(r.Count)
	}
	return total
}

// YearRange returns the smallest and largest year present. ok is false for an
// empty dataset.
func (d Dataset) YearRange() (min, max int, ok bool) {
	if len(d.records) == 0 {
		return 0, 0, false
	}
	min, max = d.records[0].Year, d.records[0].Year
	for _, r := range d.records[1:] {
		if r.Year < min {
			min = r.Year
		}
		if r.Year > max {
			max = r.Year
		}
	}
	return min, max, true
}

// States returns the distinct states in first-seen order.
func (d Dataset) States() []string {
	return distinct(d.records, func(r Record) string { return r.State })
}

// Categories returns the distinct cause/profession labels in first-seen order.
func (d Dataset) Categories() []string {
	return distinct(d.records, func(r Record) string { return r.Category })
}

// AgeGroups returns the distinct age buckets in first-seen order.
func (d Dataset) AgeGroups() []string {
	return distinct(d.records, func(r Record) string { return string(r.AgeGroup) })
}

// Genders returns the distinct gender labels in first-seen order.
func (d Dataset) Genders() []string {
	return distinct(d.records, func(r Record) string { return r.Gender.String() })
}

func distinct(records []Record, key func(Record) string) []string {
	seen := make(map[string]bool, len(records))
	var out []string
	for _, r := range records {
		k := key(r)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}
