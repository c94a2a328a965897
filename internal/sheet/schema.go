package sheet

import (
	"fmt"
	"strings"
)

// Column identifies a sheet column by position. The layout is fixed: tools
// and humans share these tabs, so columns are never reordered at runtime.
type Column int

const (
	ColKey Column = iota
	ColDate
	ColKickoff
	ColAway
	ColHome
	ColStatus
	ColOpenSpread
	ColOpenTotal
	ColAwayML
	ColHomeML
	ColLiveSpread
	ColLiveTotal
	ColHalfAway
	ColHalfHome
	ColFinalAway
	ColFinalHome
	ColUpdated

	colCount
)

// Letter returns the A1-notation column letter.
func (c Column) Letter() string {
	return string(rune('A' + int(c)))
}

// HeaderRow is written to row 1 of every league tab.
func HeaderRow() []any {
	return []any{
		"Key", "Date", "Kickoff", "Away", "Home", "Status",
		"Open Spread", "Open Total", "Away ML", "Home ML",
		"Live Spread", "Live Total",
		"Half Away", "Half Home", "Final Away", "Final Home",
		"Updated",
	}
}

// rangeForTab quotes tab names that need it and renders an A1 range.
func rangeForTab(tab, cells string) string {
	if strings.ContainsAny(tab, " !'") {
		tab = "'" + strings.ReplaceAll(tab, "'", "''") + "'"
	}
	return fmt.Sprintf("%s!%s", tab, cells)
}

// keyColumnRange covers the key column below the header.
func keyColumnRange(tab string) string {
	return rangeForTab(tab, fmt.Sprintf("%s2:%s", ColKey.Letter(), ColKey.Letter()))
}

// headerRange covers row 1 across all columns.
func headerRange(tab string) string {
	return rangeForTab(tab, fmt.Sprintf("A1:%s1", Column(colCount-1).Letter()))
}

// appendRange covers the whole table for append calls.
func appendRange(tab string) string {
	return rangeForTab(tab, fmt.Sprintf("A:%s", Column(colCount-1).Letter()))
}
