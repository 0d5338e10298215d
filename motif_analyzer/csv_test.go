package motif_analyzer

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestFormatFold(t *testing.T) {
	if got := formatFold(math.Inf(1)); got != "inf" {
		t.Errorf("formatFold(+Inf) = %q, want \"inf\"", got)
	}
	if got := formatFold(2.5); got != "2.5000" {
		t.Errorf("formatFold(2.5) = %q, want \"2.5000\"", got)
	}
}

func TestWriteCSVReport(t *testing.T) {
	records := []EnrichmentRecord{
		{
			Motif: "ACGTA", Length: 5, Count: 3, ExpectedCount: 0.5,
			FoldEnrichment: 6, Frequency: 0.3, PValue: 0.001, FDR: 0.002,
			Significant: true, SeqIDs: []string{"S1", "S2", "S3"},
		},
		{
			Motif: "GGGGG", Length: 5, Count: 2, ExpectedCount: 0,
			FoldEnrichment: math.Inf(1), Frequency: 0.2, PValue: 0.2, FDR: 0.2,
			Significant: false, SeqIDs: []string{"S1", "S4"},
		},
	}

	prefix := filepath.Join(t.TempDir(), "report")
	if err := WriteCSVReport(prefix, records, nil); err != nil {
		t.Fatalf("WriteCSVReport: %v", err)
	}

	f, err := os.Open(prefix + ".csv")
	if err != nil {
		t.Fatalf("open report: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read report: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2 records", len(rows))
	}
	wantHeader := []string{
		"Motif", "Length", "Count", "Expected_Count", "Fold_Enrichment",
		"Frequency", "P_value", "FDR", "Significant", "Sequences",
	}
	for i, h := range wantHeader {
		if rows[0][i] != h {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], h)
		}
	}
	if rows[1][0] != "ACGTA" || rows[1][8] != "True" || rows[1][9] != "S1,S2,S3" {
		t.Errorf("first record row = %v", rows[1])
	}
	if rows[2][4] != "inf" || rows[2][8] != "False" {
		t.Errorf("second record row = %v", rows[2])
	}
}

func TestWriteCSVReportGCColumns(t *testing.T) {
	records := []EnrichmentRecord{
		{Motif: "ACGTA", Length: 5, Count: 2, FoldEnrichment: 1, SeqIDs: []string{"S1", "S2"}},
	}
	gcAdj := &GCAdjusted{
		AvgGC:       0.6,
		PValues:     []float64{0.01},
		FDR:         []float64{0.01},
		Significant: []bool{true},
	}

	prefix := filepath.Join(t.TempDir(), "report_gc")
	if err := WriteCSVReport(prefix, records, gcAdj); err != nil {
		t.Fatalf("WriteCSVReport: %v", err)
	}
	f, err := os.Open(prefix + ".csv")
	if err != nil {
		t.Fatalf("open report: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if len(rows[0]) != 12 {
		t.Fatalf("got %d columns, want 12 with GC adjustment", len(rows[0]))
	}
	if rows[0][10] != "P_value_GC_adjusted" || rows[0][11] != "FDR_GC_adjusted" {
		t.Errorf("GC columns = %v", rows[0][10:])
	}
}
