package motif_analyzer

import (
	"fmt"
	"sort"

	"aptamotif_go/config"
)

// Candidate is one mined motif together with the sequences supporting it.
// SeqIDs is always sorted so candidate listings are reproducible.
type Candidate struct {
	Motif     string
	Length    int
	Count     int
	Frequency float64
	SeqIDs    []string
}

// validBase reports whether a character is a standard unambiguous DNA base.
func validBase(b byte) bool {
	switch b {
	case 'A', 'C', 'G', 'T':
		return true
	}
	return false
}

// extractKmers returns the set of valid k-mers of a sequence. Windows
// containing a non-ACGT character are skipped individually; the rest of the
// sequence still contributes. Repeated occurrences within one sequence
// collapse to a single set entry.
func extractKmers(sequence string, k int) map[string]bool {
	kmers := make(map[string]bool)
	if k < 1 || len(sequence) < k {
		return kmers
	}
	// invalid counts the non-ACGT characters inside the current window,
	// so each slide costs O(1) instead of rescanning the window.
	invalid := 0
	for i := 0; i < k-1; i++ {
		if !validBase(sequence[i]) {
			invalid++
		}
	}
	for i := 0; i+k <= len(sequence); i++ {
		if !validBase(sequence[i+k-1]) {
			invalid++
		}
		if invalid == 0 {
			kmers[sequence[i:i+k]] = true
		}
		if !validBase(sequence[i]) {
			invalid--
		}
	}
	return kmers
}

// FindMotifs mines every motif of length MinLength..MaxLength, records which
// sequences contain it, filters by MinOccurrences, collapses redundant nested
// motifs and returns the surviving candidates ordered by Count (desc), then
// Length (desc), then Motif (asc).
func FindMotifs(sequences map[string]string, cfg config.AnalysisConfig) ([]Candidate, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	occurrences := make(map[string]map[string]bool)
	for k := cfg.MinLength; k <= cfg.MaxLength; k++ {
		for seqID, sequence := range sequences {
			for kmer := range extractKmers(sequence, k) {
				set := occurrences[kmer]
				if set == nil {
					set = make(map[string]bool)
					occurrences[kmer] = set
				}
				set[seqID] = true
			}
		}
		if cfg.MaxCandidates > 0 && len(occurrences) > cfg.MaxCandidates {
			return nil, fmt.Errorf("motif candidate cap exceeded: %d candidates after length %d (cap %d)",
				len(occurrences), k, cfg.MaxCandidates)
		}
	}

	filtered := make(map[string]map[string]bool)
	for motif, seqIDs := range occurrences {
		if len(seqIDs) >= cfg.MinOccurrences {
			filtered[motif] = seqIDs
		}
	}

	filtered = removeRedundant(filtered)

	candidates := make([]Candidate, 0, len(filtered))
	total := len(sequences)
	for motif, seqIDs := range filtered {
		ids := make([]string, 0, len(seqIDs))
		for id := range seqIDs {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		candidates = append(candidates, Candidate{
			Motif:     motif,
			Length:    len(motif),
			Count:     len(seqIDs),
			Frequency: float64(len(seqIDs)) / float64(total),
			SeqIDs:    ids,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Count != candidates[j].Count {
			return candidates[i].Count > candidates[j].Count
		}
		if candidates[i].Length != candidates[j].Length {
			return candidates[i].Length > candidates[j].Length
		}
		return candidates[i].Motif < candidates[j].Motif
	})

	return candidates, nil
}
