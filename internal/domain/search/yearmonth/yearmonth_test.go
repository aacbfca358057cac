package yearmonth

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"2023", 202301, true},
		{"06/2023", 202306, true},
		{"6/2023", 202306, true},
		{"2023-06", 202306, true},
		{"2023/06", 202306, true},
		{"06-2023", 202306, true},
		{"2023-06-15", 202306, true},
		{"since 2020", 202001, true},
		{"about 03/2019", 201903, true},
		{"around 2021-11", 202111, true},
		{"before 12/2022", 202212, true},
		{" 2019 ", 201901, true},

		{"", 0, false},
		{"   ", 0, false},
		{"sometime", 0, false},
		{"13/2023", 0, false},
		{"00/2023", 0, false},
		{"2023-00", 0, false},
		{"2023-13", 0, false},
		{"203", 0, false},
		{"20233", 0, false},
		{"06/23", 0, false},
		{"1/2/3", 0, false},
		{"2023-123", 0, false},
		{"06/15/2023", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := Parse(tc.in)
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("Parse(%q) = (%d, %v), want (%d, %v)", tc.in, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestEncode_SortsByYearThenMonth(t *testing.T) {
	if Encode(2023, 12) >= Encode(2024, 1) {
		t.Error("December must sort before the following January")
	}
	if Encode(2023, 1) >= Encode(2023, 2) {
		t.Error("months within a year must sort ascending")
	}
}
