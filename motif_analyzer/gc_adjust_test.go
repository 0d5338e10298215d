package motif_analyzer

import (
	"math"
	"testing"
)

func TestGCContent(t *testing.T) {
	tests := []struct {
		sequence string
		want     float64
	}{
		{"GGCC", 1.0},
		{"AATT", 0.0},
		{"ACGT", 0.5},
		{"", 0.0},
	}
	for _, tt := range tests {
		if got := gcContent(tt.sequence); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("gcContent(%q) = %g, want %g", tt.sequence, got, tt.want)
		}
	}
}

func TestAdjustForGCBiasEmptyPool(t *testing.T) {
	records := []EnrichmentRecord{{Motif: "ACGTA", Length: 5, Count: 2}}
	if _, err := AdjustForGCBias(records, map[string]string{}, testConfig(5, 15, 2, 20)); err == nil {
		t.Fatal("expected insufficient data error for empty pool")
	}
}

// A pool with balanced composition reproduces the uniform model exactly.
func TestAdjustForGCBiasBalancedPool(t *testing.T) {
	cfg := testConfig(5, 15, 2, 20)
	sequences := map[string]string{
		"S1": "GGCCGGCCGGCCGGCCGGCC",
		"S2": "AATTAATTAATTAATTAATT",
	}
	candidates := []Candidate{
		{Motif: "GGCCG", Length: 5, Count: 2, Frequency: 1, SeqIDs: []string{"S1", "S2"}},
	}
	records, err := CalculateEnrichment(candidates, len(sequences), cfg)
	if err != nil {
		t.Fatalf("CalculateEnrichment: %v", err)
	}

	adj, err := AdjustForGCBias(records, sequences, cfg)
	if err != nil {
		t.Fatalf("AdjustForGCBias: %v", err)
	}
	if math.Abs(adj.AvgGC-0.5) > 1e-12 {
		t.Errorf("AvgGC = %g, want 0.5", adj.AvgGC)
	}
	if len(adj.PValues) != len(records) || len(adj.FDR) != len(records) || len(adj.Significant) != len(records) {
		t.Fatalf("adjusted vectors not parallel to records: %d p-values for %d records", len(adj.PValues), len(records))
	}
	// pGC = pAT = 0.25, so the adjusted p-values equal the primary ones.
	for i, rec := range records {
		if math.Abs(adj.PValues[i]-rec.PValue) > 1e-12 {
			t.Errorf("record %d: adjusted p %g differs from uniform p %g", i, adj.PValues[i], rec.PValue)
		}
	}
}

func TestAdjustForGCBiasSkewedPool(t *testing.T) {
	cfg := testConfig(5, 15, 2, 20)
	// 75% GC pool: GC-rich motifs become less surprising, AT-rich more so.
	sequences := map[string]string{
		"S1": "GGCCGGCCGGCCGGCCAATT",
		"S2": "GGGGCCCCGGGGCCCCATAT",
	}
	candidates := []Candidate{
		{Motif: "GGCCG", Length: 5, Count: 2, Frequency: 1, SeqIDs: []string{"S1", "S2"}},
		{Motif: "AATTA", Length: 5, Count: 2, Frequency: 1, SeqIDs: []string{"S1", "S2"}},
	}
	records, err := CalculateEnrichment(candidates, len(sequences), cfg)
	if err != nil {
		t.Fatalf("CalculateEnrichment: %v", err)
	}
	adj, err := AdjustForGCBias(records, sequences, cfg)
	if err != nil {
		t.Fatalf("AdjustForGCBias: %v", err)
	}
	if math.Abs(adj.AvgGC-0.8) > 1e-12 {
		t.Errorf("AvgGC = %g, want 0.8", adj.AvgGC)
	}

	byMotif := make(map[string]int)
	for i, rec := range records {
		byMotif[rec.Motif] = i
	}
	gcRich := byMotif["GGCCG"]
	atRich := byMotif["AATTA"]
	if adj.PValues[gcRich] <= records[gcRich].PValue {
		t.Errorf("GC-rich motif should be less significant under the skewed null: %g vs %g",
			adj.PValues[gcRich], records[gcRich].PValue)
	}
	if adj.PValues[atRich] >= records[atRich].PValue {
		t.Errorf("AT-rich motif should be more significant under the skewed null: %g vs %g",
			adj.PValues[atRich], records[atRich].PValue)
	}
}
