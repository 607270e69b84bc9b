package repository

import (
	"testing"

	"sales_associate/internal/domain/entities"
)

func sampleRows() [][]string {
	return [][]string{
		{"Client_ID", "First_Name", "Status"},
		{"SM-2025-001", "Aline", "NEW"},
		{"SM-2025-002", "Badr"}, // short row: missing Status cell
	}
}

func TestRowsToRecords(t *testing.T) {
	records := rowsToRecords(sampleRows())
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0][entities.ColClientID] != "SM-2025-001" || records[0]["Status"] != "NEW" {
		t.Fatalf("first record mismatch: %v", records[0])
	}
	if records[1]["Status"] != "" {
		t.Fatalf("short row should read empty Status, got %q", records[1]["Status"])
	}
}

func TestRowsToRecordsEmptySheet(t *testing.T) {
	if got := rowsToRecords(nil); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
	if got := rowsToRecords([][]string{{"Client_ID"}}); len(got) != 0 {
		t.Fatalf("header-only sheet should be empty, got %v", got)
	}
}

func TestLocateRow(t *testing.T) {
	rows := sampleRows()
	if idx := locateRow(rows, "Client_ID", "SM-2025-002"); idx != 2 {
		t.Fatalf("expected index 2, got %d", idx)
	}
	if idx := locateRow(rows, "Client_ID", "SM-2025-099"); idx != -1 {
		t.Fatalf("expected -1 for absent value, got %d", idx)
	}
	if idx := locateRow(rows, "No_Such_Column", "x"); idx != -1 {
		t.Fatalf("expected -1 for missing column, got %d", idx)
	}
}

func TestOverlayRow(t *testing.T) {
	headers := []string{"Client_ID", "First_Name", "Status", "Last_Updated"}
	row := []string{"SM-2025-001", "Aline", "NEW"} // short row

	updated := overlayRow(headers, row, map[string]string{
		"Status":      "PAID",
		"Not_A_Col":   "dropped",
		"Last_Updated": "2025-06-01",
	})

	want := []string{"SM-2025-001", "Aline", "PAID", "2025-06-01"}
	if len(updated) != len(want) {
		t.Fatalf("length %d, want %d", len(updated), len(want))
	}
	for i := range want {
		if updated[i] != want[i] {
			t.Fatalf("cell %d = %q, want %q", i, updated[i], want[i])
		}
	}
}

func TestCellString(t *testing.T) {
	if got := cellString(nil); got != "" {
		t.Fatalf("nil cell = %q", got)
	}
	if got := cellString("  spaced "); got != "  spaced " {
		t.Fatalf("string cell altered: %q", got)
	}
	if got := cellString(42); got != "42" {
		t.Fatalf("numeric cell = %q", got)
	}
}
