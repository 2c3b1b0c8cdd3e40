package risk

import "testing"

func TestScoreTablePreservesRowsAndAppendsColumns(t *testing.T) {
	in := Table{
		Columns: []string{"patient_id", "age", "inr", "on_anticoagulant"},
		Rows: []Row{
			{"patient_id": "p1", "age": "75", "inr": "4.0", "on_anticoagulant": "1"},
			{"patient_id": "p2", "age": "75", "on_anticoagulant": "1"}, // inr absent
			{"patient_id": "p3", "age": "40", "inr": "1.2", "on_anticoagulant": "0"},
		},
	}

	res := ScoreTable(in)

	if len(res.Table.Rows) != 3 {
		t.Fatalf("row count changed: %d", len(res.Table.Rows))
	}
	if len(res.Flags) != 0 {
		t.Fatalf("unexpected flags: %v", res.Flags)
	}

	wantCols := len(in.Columns) + 4
	if len(res.Table.Columns) != wantCols {
		t.Fatalf("expected %d columns, got %v", wantCols, res.Table.Columns)
	}

	// Original cells unchanged, rows in input order.
	for i, id := range []string{"p1", "p2", "p3"} {
		if res.Table.Rows[i]["patient_id"] != id {
			t.Fatalf("row %d: expected %s, got %s", i, id, res.Table.Rows[i]["patient_id"])
		}
	}
	if res.Table.Rows[0]["inr"] != "4.0" {
		t.Fatalf("input cell mutated: %q", res.Table.Rows[0]["inr"])
	}

	// Row 1: age 75 (+10), inr 4.0 (+40), anticoagulant (+35) = 85.
	if got := res.Table.Rows[0][ColBleedingRisk]; got != "85" {
		t.Fatalf("row 0 bleeding risk = %s, want 85", got)
	}
	// Row 2: missing inr defaults to 1, so just age + anticoagulant = 45.
	if got := res.Table.Rows[1][ColBleedingRisk]; got != "45" {
		t.Fatalf("row 1 bleeding risk = %s, want 45", got)
	}
	// Row 3: nothing triggers.
	if got := res.Table.Rows[2][ColBleedingRisk]; got != "0" {
		t.Fatalf("row 2 bleeding risk = %s, want 0", got)
	}
}

func TestScoreTableUsesBulkDefaults(t *testing.T) {
	res := ScoreTable(Table{Columns: []string{"patient_id"}, Rows: []Row{{"patient_id": "p1"}}})

	// Defaults (age 70, weight 70 kg, inr 1, male) trigger no factor.
	row := res.Table.Rows[0]
	for _, col := range []string{ColBleedingRisk, ColHypoglycemiaRisk, ColAKIRisk, ColComorbidityLoad} {
		if row[col] != "0" {
			t.Errorf("%s = %s, want 0 for an all-defaults row", col, row[col])
		}
	}
}

func TestScoreTableFlagsUnparseableCellsButStillScores(t *testing.T) {
	in := Table{
		Columns: []string{"age", "inr", "on_anticoagulant"},
		Rows: []Row{
			{"age": "75", "inr": "not-a-number", "on_anticoagulant": "1"},
		},
	}

	res := ScoreTable(in)

	if len(res.Flags) != 1 {
		t.Fatalf("expected one flag, got %v", res.Flags)
	}
	flag := res.Flags[0]
	if flag.Row != 0 || flag.Column != "inr" {
		t.Fatalf("unexpected flag %+v", flag)
	}

	// Bad inr falls back to the default of 1: age (+10) + anticoagulant (+35).
	if got := res.Table.Rows[0][ColBleedingRisk]; got != "45" {
		t.Fatalf("flagged row not scored with defaults: %s", got)
	}
}

func TestScoreTableBooleanSpellings(t *testing.T) {
	in := Table{
		Columns: []string{"on_anticoagulant"},
		Rows: []Row{
			{"on_anticoagulant": "true"},
			{"on_anticoagulant": "YES"},
			{"on_anticoagulant": "1"},
			{"on_anticoagulant": "0"},
			{"on_anticoagulant": ""},
			{"on_anticoagulant": "maybe"},
		},
	}

	res := ScoreTable(in)

	for i, want := range []string{"35", "35", "35", "0", "0", "0"} {
		if got := res.Table.Rows[i][ColBleedingRisk]; got != want {
			t.Errorf("row %d: bleeding risk = %s, want %s", i, got, want)
		}
	}
	if len(res.Flags) != 1 || res.Flags[0].Row != 5 {
		t.Fatalf("expected the 'maybe' cell to be flagged, got %v", res.Flags)
	}
}

func TestScoreTableEmptyTable(t *testing.T) {
	res := ScoreTable(Table{Columns: []string{"age"}})
	if len(res.Table.Rows) != 0 || len(res.Flags) != 0 {
		t.Fatalf("empty table should score to an empty table, got %+v", res)
	}
	if len(res.Table.Columns) != 5 {
		t.Fatalf("derived columns should still be appended, got %v", res.Table.Columns)
	}
}

func TestScoreTableManyRowsKeepsOrder(t *testing.T) {
	in := Table{Columns: []string{"patient_id", "age"}}
	for i := 0; i < 500; i++ {
		age := "40"
		if i%2 == 0 {
			age = "80" // +10 bleeding
		}
		in.Rows = append(in.Rows, Row{"patient_id": string(rune('a' + i%26)), "age": age})
	}

	res := ScoreTable(in)
	for i, row := range res.Table.Rows {
		want := "0"
		if i%2 == 0 {
			want = "10"
		}
		if row[ColBleedingRisk] != want {
			t.Fatalf("row %d scored %s, want %s (order not preserved?)", i, row[ColBleedingRisk], want)
		}
	}
}
