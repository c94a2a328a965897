package sheet

import (
	"fmt"
	"strconv"
)

// FormatSpread renders a home-relative spread ("-3.5", "+7", "PK").
// Nil renders as empty so unknown markets leave cells untouched.
func FormatSpread(v *float64) string {
	if v == nil {
		return ""
	}
	if *v == 0 {
		return "PK"
	}
	return fmt.Sprintf("%+g", *v)
}

// FormatTotal renders a total line ("47.5").
func FormatTotal(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// FormatMoneyline renders American odds with an explicit sign ("+155").
func FormatMoneyline(v *int) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%+d", *v)
}
