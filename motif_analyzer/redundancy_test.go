package motif_analyzer

import (
	"reflect"
	"testing"
)

func support(ids ...string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func motifNames(sets map[string]map[string]bool) []string {
	names := make([]string, 0, len(sets))
	for motif := range sets {
		names = append(names, motif)
	}
	return names
}

func TestRemoveRedundant(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]map[string]bool
		want []string
	}{
		{
			name: "substring with identical support is dropped",
			in: map[string]map[string]bool{
				"ACGTA": support("S1", "S2"),
				"ACGT":  support("S1", "S2"),
			},
			want: []string{"ACGTA"},
		},
		{
			name: "substring with wider support survives",
			in: map[string]map[string]bool{
				"ACGTA": support("S1", "S2"),
				"ACGT":  support("S1", "S2", "S3"),
			},
			want: []string{"ACGTA", "ACGT"},
		},
		{
			name: "non-substring of same length kept",
			in: map[string]map[string]bool{
				"AAAA": support("S1", "S2"),
				"TTTT": support("S1", "S2"),
			},
			want: []string{"AAAA", "TTTT"},
		},
		{
			name: "chain collapses to the longest",
			in: map[string]map[string]bool{
				"GATTACA": support("S1", "S4"),
				"ATTAC":   support("S1", "S4"),
				"TTA":     support("S1", "S4"),
			},
			want: []string{"GATTACA"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := removeRedundant(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("kept %v, want %v", motifNames(got), tt.want)
			}
			for _, motif := range tt.want {
				if _, ok := got[motif]; !ok {
					t.Errorf("motif %q missing from %v", motif, motifNames(got))
				}
			}
		})
	}
}

func TestRemoveRedundantIdempotent(t *testing.T) {
	in := map[string]map[string]bool{
		"ACGTACGT": support("S1", "S2"),
		"CGTACG":   support("S1", "S2"),
		"GTAC":     support("S1", "S2", "S3"),
	}
	once := removeRedundant(in)
	twice := removeRedundant(once)
	if !reflect.DeepEqual(motifSetKeys(once), motifSetKeys(twice)) {
		t.Errorf("second pass changed the result: %v vs %v", motifNames(once), motifNames(twice))
	}
}

func motifSetKeys(sets map[string]map[string]bool) map[string]int {
	keys := make(map[string]int, len(sets))
	for motif, set := range sets {
		keys[motif] = len(set)
	}
	return keys
}

func TestSupportEqual(t *testing.T) {
	if !supportEqual(support("S1", "S2"), support("S2", "S1")) {
		t.Error("identical sets reported unequal")
	}
	if supportEqual(support("S1"), support("S1", "S2")) {
		t.Error("subset reported equal to superset")
	}
	if supportEqual(support("S1", "S3"), support("S1", "S2")) {
		t.Error("disjoint tails reported equal")
	}
}
