package motif_analyzer

import (
	"sort"
	"strings"
)

// MotifPositions returns every (overlapping) start position of a motif in
// each sequence that contains it at least once.
func MotifPositions(sequences map[string]string, motif string) map[string][]int {
	positions := make(map[string][]int)
	if motif == "" {
		return positions
	}
	for seqID, sequence := range sequences {
		start := 0
		for {
			pos := strings.Index(sequence[start:], motif)
			if pos == -1 {
				break
			}
			positions[seqID] = append(positions[seqID], start+pos)
			start += pos + 1
		}
	}
	return positions
}

// PresenceMatrix builds a binary presence/absence matrix over the pool:
// one row per sequence (IDs sorted), one column per motif in the given
// order. Consumers (heatmap, exports) read it without mutating it.
func PresenceMatrix(sequences map[string]string, motifs []string) (seqIDs []string, matrix [][]int) {
	seqIDs = make([]string, 0, len(sequences))
	for id := range sequences {
		seqIDs = append(seqIDs, id)
	}
	sort.Strings(seqIDs)

	matrix = make([][]int, len(seqIDs))
	for r, id := range seqIDs {
		row := make([]int, len(motifs))
		for c, motif := range motifs {
			if strings.Contains(sequences[id], motif) {
				row[c] = 1
			}
		}
		matrix[r] = row
	}
	return seqIDs, matrix
}

// Consensus derives a simple majority-vote consensus over a set of
// sequences. Sequences need not have equal length; shorter ones simply stop
// voting past their end. Ties resolve to the alphabetically first base so
// repeated runs agree.
func Consensus(sequences []string) string {
	if len(sequences) == 0 {
		return ""
	}
	maxLen := 0
	for _, seq := range sequences {
		if len(seq) > maxLen {
			maxLen = len(seq)
		}
	}

	var consensus strings.Builder
	for pos := 0; pos < maxLen; pos++ {
		counts := make(map[byte]int)
		for _, seq := range sequences {
			if pos < len(seq) {
				counts[seq[pos]]++
			}
		}
		var best byte
		bestCount := -1
		keys := make([]byte, 0, len(counts))
		for b := range counts {
			keys = append(keys, b)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		for _, b := range keys {
			if counts[b] > bestCount {
				best = b
				bestCount = counts[b]
			}
		}
		consensus.WriteByte(best)
	}
	return consensus.String()
}
