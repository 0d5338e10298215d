package motif_analyzer

import (
	"testing"
)

func TestPermutationTestBounds(t *testing.T) {
	sequences := map[string]string{
		"S1": "ACGTACGTACGTACGT",
		"S2": "TTTTGGGGCCCCAAAA",
	}
	trials := 99
	p, err := PermutationTest(sequences, "ACGT", trials, 1)
	if err != nil {
		t.Fatalf("PermutationTest: %v", err)
	}
	minP := 1.0 / float64(trials+1)
	if p < minP || p > 1 {
		t.Errorf("p = %g, want within [%g, 1]", p, minP)
	}
}

func TestPermutationTestPlantedMotif(t *testing.T) {
	// Every sequence carries the motif; shuffles almost never reproduce it.
	sequences := map[string]string{
		"S1": "TTTTTTTTGGGACGTACGTGGGTTTTTTTT",
		"S2": "AAAAAAAACCCACGTACGTCCCAAAAAAAA",
		"S3": "GGGGGGGGTTTACGTACGTTTTGGGGGGGG",
		"S4": "CCCCCCCCAAAACGTACGTAAACCCCCCCC",
	}
	p, err := PermutationTest(sequences, "ACGTACGT", 200, 7)
	if err != nil {
		t.Fatalf("PermutationTest: %v", err)
	}
	if p > 0.1 {
		t.Errorf("planted motif should look enriched, got p = %g", p)
	}
}

func TestPermutationTestReproducible(t *testing.T) {
	sequences := map[string]string{
		"S1": "ACGTACGTACGTACGTACGT",
		"S2": "GGCCGGCCGGCCGGCCGGCC",
		"S3": "ATATATATATATATATATAT",
	}
	first, err := PermutationTest(sequences, "GGCC", 150, 42)
	if err != nil {
		t.Fatalf("PermutationTest: %v", err)
	}
	second, err := PermutationTest(sequences, "GGCC", 150, 42)
	if err != nil {
		t.Fatalf("PermutationTest: %v", err)
	}
	if first != second {
		t.Errorf("same seed gave different p-values: %g vs %g", first, second)
	}
}

func TestPermutationTestArguments(t *testing.T) {
	sequences := map[string]string{"S1": "ACGT"}
	if _, err := PermutationTest(sequences, "", 100, 1); err == nil {
		t.Error("expected error for empty motif")
	}
	if _, err := PermutationTest(sequences, "ACG", 0, 1); err == nil {
		t.Error("expected error for zero trials")
	}
}
