package model

import "testing"

func TestParseGenderValue(t *testing.T) {
	cases := []struct {
		in      string
		want    Gender
		wantErr bool
	}{
		{"Male", GenderMale, false},
		{"f", GenderFemale, false},
		{" FEMALE ", GenderFemale, false},
		{"unspecified", GenderUnspecified, false},
		{"alien", GenderUnspecified, true},
		{"", GenderUnspecified, true},
	}
	for _, tc := range cases {
		got, err := ParseGenderValue(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseGenderValue(%q): expected an error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseGenderValue(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseGenderValue(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseAgeGroupValue(t *testing.T) {
	cases := []struct {
		in      string
		want    AgeGroup
		wantErr bool
	}{
		{"15-29", AgeGroup15to29, false},
		{"60+", AgeGroup60Plus, false},
		{"60-100+", AgeGroup60Plus, false},
		{"unspecified", AgeGroupUnspecified, false},
		{"teen", AgeGroupUnspecified, true},
		{"", AgeGroupUnspecified, true},
	}
	for _, tc := range cases {
		got, err := ParseAgeGroupValue(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseAgeGroupValue(%q): expected an error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAgeGroupValue(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseAgeGroupValue(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
