package motif_analyzer

import (
	"sort"
	"strings"
)

// removeRedundant drops motifs that are substrings of an already-retained
// longer motif with an identical support set. Such nested motifs carry no
// extra information at presence/absence granularity.
//
// Iteration is fully deterministic: length groups are processed longest
// first, and motifs within a group in ascending lexicographic order. Relying
// on map iteration here would make the retained representative of a group of
// equivalent motifs vary between runs.
//
// Worst case O(M^2 * L) over M surviving motifs of average length L.
func removeRedundant(motifSets map[string]map[string]bool) map[string]map[string]bool {
	byLength := make(map[int][]string)
	for motif := range motifSets {
		byLength[len(motif)] = append(byLength[len(motif)], motif)
	}

	lengths := make([]int, 0, len(byLength))
	for length := range byLength {
		lengths = append(lengths, length)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))

	type accepted struct {
		motif string
		set   map[string]bool
	}
	var kept []accepted
	nonRedundant := make(map[string]map[string]bool)

	for _, length := range lengths {
		group := byLength[length]
		sort.Strings(group)
		for _, motif := range group {
			seqSet := motifSets[motif]
			redundant := false
			for _, existing := range kept {
				if len(existing.motif) <= len(motif) {
					continue
				}
				if strings.Contains(existing.motif, motif) && supportEqual(seqSet, existing.set) {
					redundant = true
					break
				}
			}
			if !redundant {
				kept = append(kept, accepted{motif: motif, set: seqSet})
				nonRedundant[motif] = seqSet
			}
		}
	}
	return nonRedundant
}

// supportEqual reports whether two support sets contain exactly the same
// sequence IDs. Supersets do not count.
func supportEqual(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if !b[id] {
			return false
		}
	}
	return true
}
