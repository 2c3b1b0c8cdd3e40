package server

import (
	"strings"
	"testing"
)

func TestReadTable(t *testing.T) {
	table, err := readTable(strings.NewReader("age,inr\n75,4.0\n40,1.2\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Columns) != 2 || len(table.Rows) != 2 {
		t.Fatalf("unexpected shape: %+v", table)
	}
	if table.Rows[0]["age"] != "75" || table.Rows[1]["inr"] != "1.2" {
		t.Fatalf("cells misread: %+v", table.Rows)
	}
}

func TestReadTableShortRow(t *testing.T) {
	// A row with fewer fields than the header loses the trailing cells; the
	// scorer fills them with defaults.
	table, err := readTable(strings.NewReader("age,inr\n75\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := table.Rows[0]["inr"]; ok {
		t.Fatalf("short row should omit missing columns, got %+v", table.Rows[0])
	}
}

func TestReadTableEmptyInput(t *testing.T) {
	if _, err := readTable(strings.NewReader("")); err == nil {
		t.Fatal("expected an error for a file with no header")
	}
}

func TestReadTableMalformedQuoting(t *testing.T) {
	if _, err := readTable(strings.NewReader("age,inr\n\"75,4.0\n1")); err == nil {
		t.Fatal("expected an error for structurally unreadable CSV")
	}
}
