package sheet

import (
	"fmt"
	"sort"
)

// RowUpdate is the desired state for one game row: the key that locates the
// row plus the cells a task wants to set. Cells absent from the map are left
// as they are in the sheet.
type RowUpdate struct {
	Key   string
	Cells map[Column]string
	// CreateOnly rows are only ever appended. When the key already exists in
	// the sheet the update is dropped, so opening numbers survive a wipe of
	// the local state store.
	CreateOnly bool
}

// Set records a cell value, allocating the map on first use.
func (u *RowUpdate) Set(col Column, value string) {
	if u.Cells == nil {
		u.Cells = make(map[Column]string)
	}
	u.Cells[col] = value
}

// RangeWrite is one contiguous A1 range with its values, ready for a
// values.batchUpdate call.
type RangeWrite struct {
	Range  string
	Values []any
}

// Plan is the computed set of sheet mutations for one flush: full rows to
// append plus cell-range updates for rows that already exist.
type Plan struct {
	Appends [][]any
	Writes  []RangeWrite
}

// Empty reports whether the plan would touch nothing.
func (p Plan) Empty() bool {
	return len(p.Appends) == 0 && len(p.Writes) == 0
}

// CellCount returns how many cells the plan writes, for metrics.
func (p Plan) CellCount() int {
	n := 0
	for _, row := range p.Appends {
		n += len(row)
	}
	for _, w := range p.Writes {
		n += len(w.Values)
	}
	return n
}

// BuildPlan turns desired row states into a minimal mutation plan against
// the current key index (key -> 1-based sheet row). Updates whose key is
// missing from the index become appended rows; updates for known rows become
// contiguous range writes so one batch call covers a whole column group.
// Create-only updates for known rows are dropped.
func BuildPlan(tab string, index map[string]int, updates []RowUpdate) Plan {
	var plan Plan

	for _, u := range updates {
		if len(u.Cells) == 0 {
			continue
		}
		rowNum, exists := index[u.Key]
		if !exists {
			plan.Appends = append(plan.Appends, fullRow(u))
			continue
		}
		if u.CreateOnly {
			continue
		}
		plan.Writes = append(plan.Writes, rowWrites(tab, rowNum, u)...)
	}

	return plan
}

// fullRow lays the update out as a complete row in column order, with the
// key in its column and empty strings elsewhere.
func fullRow(u RowUpdate) []any {
	row := make([]any, colCount)
	for i := range row {
		row[i] = ""
	}
	row[ColKey] = u.Key
	for col, val := range u.Cells {
		if col >= 0 && col < colCount {
			row[col] = val
		}
	}
	return row
}

// rowWrites groups the update's cells into contiguous column runs.
func rowWrites(tab string, rowNum int, u RowUpdate) []RangeWrite {
	cols := make([]Column, 0, len(u.Cells))
	for col := range u.Cells {
		if col >= 0 && col < colCount {
			cols = append(cols, col)
		}
	}
	sort.Slice(cols, func(i, j int) bool { return cols[i] < cols[j] })

	var writes []RangeWrite
	for start := 0; start < len(cols); {
		end := start
		for end+1 < len(cols) && cols[end+1] == cols[end]+1 {
			end++
		}

		values := make([]any, 0, end-start+1)
		for _, col := range cols[start : end+1] {
			values = append(values, u.Cells[col])
		}
		writes = append(writes, RangeWrite{
			Range:  rangeForRun(tab, rowNum, cols[start], cols[end]),
			Values: values,
		})
		start = end + 1
	}
	return writes
}

func rangeForRun(tab string, rowNum int, first, last Column) string {
	if first == last {
		return rangeForTab(tab, fmt.Sprintf("%s%d", first.Letter(), rowNum))
	}
	return rangeForTab(tab, fmt.Sprintf("%s%d:%s%d", first.Letter(), rowNum, last.Letter(), rowNum))
}
