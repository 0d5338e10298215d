package structure_predictor

import (
	"fmt"
	"sort"
)

// ExtractStems returns the lengths of stem regions: runs of consecutive
// opening pairs of at least minLength.
func ExtractStems(structure string, minLength int) []int {
	var stems []int
	current := 0
	for i := 0; i < len(structure); i++ {
		switch structure[i] {
		case '(':
			current++
		default:
			if current >= minLength {
				stems = append(stems, current)
			}
			current = 0
		}
	}
	if current >= minLength {
		stems = append(stems, current)
	}
	return stems
}

// ExtractLoops returns the sizes of unpaired stretches enclosed by the
// structure (depth > 0).
func ExtractLoops(structure string) []int {
	var loops []int
	inLoop := false
	loopSize := 0
	depth := 0
	for i := 0; i < len(structure); i++ {
		switch structure[i] {
		case '(':
			if inLoop && loopSize > 0 {
				loops = append(loops, loopSize)
			}
			inLoop = false
			loopSize = 0
			depth++
		case ')':
			if inLoop && loopSize > 0 {
				loops = append(loops, loopSize)
			}
			inLoop = false
			loopSize = 0
			depth--
		case '.':
			if depth > 0 {
				inLoop = true
				loopSize++
			}
		}
	}
	return loops
}

// ExtractBulges returns the sizes of short unpaired runs (1-4 bases)
// terminated by a paired position. A trailing unpaired run does not count:
// it is a dangling end, not a bulge.
func ExtractBulges(structure string) []int {
	var bulges []int
	unpaired := 0
	for i := 0; i < len(structure); i++ {
		if structure[i] == '.' {
			unpaired++
			continue
		}
		if unpaired > 0 && unpaired < 5 {
			bulges = append(bulges, unpaired)
		}
		unpaired = 0
	}
	return bulges
}

// SharedElements collects structural elements (stems, loops, bulges keyed
// by kind and size) occurring in at least minOccurrences sequences. Each
// element maps to the sorted list of sequence IDs exhibiting it.
func SharedElements(predictions map[string]Prediction, minOccurrences int) map[string][]string {
	elements := make(map[string]map[string]bool)
	record := func(key, seqID string) {
		if elements[key] == nil {
			elements[key] = make(map[string]bool)
		}
		elements[key][seqID] = true
	}

	for seqID, pred := range predictions {
		if pred.Structure == "" {
			continue
		}
		for _, stem := range ExtractStems(pred.Structure, 3) {
			record(fmt.Sprintf("stem_%d", stem), seqID)
		}
		for _, loop := range ExtractLoops(pred.Structure) {
			record(fmt.Sprintf("loop_%d", loop), seqID)
		}
		for _, bulge := range ExtractBulges(pred.Structure) {
			record(fmt.Sprintf("bulge_%d", bulge), seqID)
		}
	}

	shared := make(map[string][]string)
	for key, seqIDs := range elements {
		if len(seqIDs) < minOccurrences {
			continue
		}
		ids := make([]string, 0, len(seqIDs))
		for id := range seqIDs {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		shared[key] = ids
	}
	return shared
}

// StructureSimilarity scores two dot-bracket structures by positional
// identity over the shorter length (0-1).
func StructureSimilarity(a, b string) float64 {
	if len(a) > len(b) {
		a = a[:len(b)]
	} else if len(b) > len(a) {
		b = b[:len(a)]
	}
	if len(a) == 0 {
		return 0
	}
	matches := 0
	for i := 0; i < len(a); i++ {
		if a[i] == b[i] {
			matches++
		}
	}
	return float64(matches) / float64(len(a))
}

// ConsensusStructure derives a per-position majority structure across all
// predictions, padding shorter structures with unpaired positions. Ties go
// to the lowest byte value so repeated runs agree.
func ConsensusStructure(predictions map[string]Prediction) string {
	var structures []string
	ids := make([]string, 0, len(predictions))
	for id := range predictions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	maxLen := 0
	for _, id := range ids {
		s := predictions[id].Structure
		if s == "" {
			continue
		}
		structures = append(structures, s)
		if len(s) > maxLen {
			maxLen = len(s)
		}
	}
	if len(structures) == 0 {
		return ""
	}

	consensus := make([]byte, maxLen)
	for pos := 0; pos < maxLen; pos++ {
		counts := make(map[byte]int)
		for _, s := range structures {
			c := byte('.')
			if pos < len(s) {
				c = s[pos]
			}
			counts[c]++
		}
		keys := make([]byte, 0, len(counts))
		for c := range counts {
			keys = append(keys, c)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		best := keys[0]
		for _, c := range keys[1:] {
			if counts[c] > counts[best] {
				best = c
			}
		}
		consensus[pos] = best
	}
	return string(consensus)
}
