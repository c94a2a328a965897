package sheet

import "testing"

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func TestFormatSpread(t *testing.T) {
	cases := []struct {
		in   *float64
		want string
	}{
		{nil, ""},
		{fptr(0), "PK"},
		{fptr(-3.5), "-3.5"},
		{fptr(7), "+7"},
	}
	for _, tc := range cases {
		if got := FormatSpread(tc.in); got != tc.want {
			t.Errorf("FormatSpread(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatTotal(t *testing.T) {
	if got := FormatTotal(fptr(47.5)); got != "47.5" {
		t.Errorf("FormatTotal = %q", got)
	}
	if got := FormatTotal(fptr(44)); got != "44" {
		t.Errorf("FormatTotal = %q", got)
	}
	if got := FormatTotal(nil); got != "" {
		t.Errorf("FormatTotal(nil) = %q", got)
	}
}

func TestFormatMoneyline(t *testing.T) {
	if got := FormatMoneyline(iptr(155)); got != "+155" {
		t.Errorf("FormatMoneyline = %q", got)
	}
	if got := FormatMoneyline(iptr(-180)); got != "-180" {
		t.Errorf("FormatMoneyline = %q", got)
	}
	if got := FormatMoneyline(nil); got != "" {
		t.Errorf("FormatMoneyline(nil) = %q", got)
	}
}
