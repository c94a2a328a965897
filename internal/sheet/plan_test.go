package sheet

import (
	"reflect"
	"testing"
)

func TestBuildPlanAppendsUnknownKeys(t *testing.T) {
	update := RowUpdate{Key: "20240908-BUF-KC"}
	update.Set(ColAway, "BUF")
	update.Set(ColHome, "KC")

	plan := BuildPlan("NFL", map[string]int{}, []RowUpdate{update})

	if len(plan.Appends) != 1 || len(plan.Writes) != 0 {
		t.Fatalf("plan = %+v, want one append", plan)
	}
	row := plan.Appends[0]
	if len(row) != int(colCount) {
		t.Fatalf("appended row has %d cells, want %d", len(row), colCount)
	}
	if row[ColKey] != "20240908-BUF-KC" || row[ColAway] != "BUF" || row[ColHome] != "KC" {
		t.Errorf("row = %v", row)
	}
	if row[ColStatus] != "" {
		t.Errorf("unset cell should be empty, got %v", row[ColStatus])
	}
}

func TestBuildPlanGroupsContiguousColumns(t *testing.T) {
	update := RowUpdate{Key: "20240908-BUF-KC"}
	update.Set(ColLiveSpread, "-3.5")
	update.Set(ColLiveTotal, "47.5")
	update.Set(ColUpdated, "2024-09-08 17:05:00")

	plan := BuildPlan("NFL", map[string]int{"20240908-BUF-KC": 4}, []RowUpdate{update})

	if len(plan.Appends) != 0 {
		t.Fatalf("unexpected appends: %v", plan.Appends)
	}
	if len(plan.Writes) != 2 {
		t.Fatalf("writes = %+v, want contiguous pair plus lone cell", plan.Writes)
	}

	if plan.Writes[0].Range != "NFL!K4:L4" {
		t.Errorf("first range = %q", plan.Writes[0].Range)
	}
	if !reflect.DeepEqual(plan.Writes[0].Values, []any{"-3.5", "47.5"}) {
		t.Errorf("first values = %v", plan.Writes[0].Values)
	}
	if plan.Writes[1].Range != "NFL!Q4" {
		t.Errorf("second range = %q", plan.Writes[1].Range)
	}
}

func TestBuildPlanDropsCreateOnlyForKnownKeys(t *testing.T) {
	update := RowUpdate{Key: "20240908-BUF-KC", CreateOnly: true}
	update.Set(ColOpenSpread, "-10.5")

	plan := BuildPlan("NFL", map[string]int{"20240908-BUF-KC": 4}, []RowUpdate{update})
	if !plan.Empty() {
		t.Fatalf("plan = %+v, want empty for an existing create-only row", plan)
	}

	plan = BuildPlan("NFL", map[string]int{}, []RowUpdate{update})
	if len(plan.Appends) != 1 {
		t.Fatalf("plan = %+v, want append for a new create-only row", plan)
	}
}

func TestBuildPlanSkipsEmptyUpdates(t *testing.T) {
	plan := BuildPlan("NFL", map[string]int{"k": 2}, []RowUpdate{{Key: "k"}})
	if !plan.Empty() {
		t.Errorf("plan = %+v, want empty", plan)
	}
}

func TestPlanCellCount(t *testing.T) {
	plan := Plan{
		Appends: [][]any{make([]any, colCount)},
		Writes:  []RangeWrite{{Values: []any{"a", "b"}}},
	}
	if got := plan.CellCount(); got != int(colCount)+2 {
		t.Errorf("CellCount() = %d", got)
	}
}
