package motif_analyzer

import (
	"fmt"
	"math"
	"runtime"
	"sort"
	"sync"

	"gonum.org/v1/gonum/stat/distuv"

	"aptamotif_go/config"
)

// EnrichmentRecord is one row of the final ranked result table. Records are
// immutable once assembled; downstream consumers (CSV, HTML, plots) read the
// same slice and must not modify it.
type EnrichmentRecord struct {
	Motif          string
	Length         int
	Count          int
	ExpectedCount  float64
	FoldEnrichment float64
	Frequency      float64
	PValue         float64
	FDR            float64
	Significant    bool
	SeqIDs         []string
}

// motifProbability is the chance of one specific motif at one position under
// the independence null model: the product of the per-base probabilities.
// With uniform composition this is 0.25^k.
func motifProbability(motif string, baseProbs map[byte]float64) float64 {
	p := 1.0
	for i := 0; i < len(motif); i++ {
		p *= baseProbs[motif[i]]
	}
	return p
}

// positionsPerSequence is the number of start positions checked per
// sequence, floored at 1 so motifs longer than the region still get a
// defined (if degenerate) model.
func positionsPerSequence(regionLength, motifLength int) int {
	n := regionLength - motifLength + 1
	if n < 1 {
		return 1
	}
	return n
}

// sequenceHitProbability approximates the chance a motif appears at least
// once in a sequence: 1 - (1-p)^n. Overlapping windows are not truly
// independent, so this is a slight overestimate of the tail.
func sequenceHitProbability(pMotif float64, nPositions int) float64 {
	return 1 - math.Pow(1-pMotif, float64(nPositions))
}

// binomialSurvival is the one-sided exceedance probability P(X >= observed)
// for X ~ Binomial(n, p), the same tail scipy's binom.sf(observed-1, n, p)
// reports.
func binomialSurvival(observed, n int, p float64) float64 {
	if observed <= 0 {
		return 1
	}
	if observed > n {
		return 0
	}
	if p <= 0 {
		// Hits are impossible under the null, yet we observed some.
		return 0
	}
	if p >= 1 {
		return 1
	}
	bin := distuv.Binomial{N: float64(n), P: p}
	return bin.Survival(float64(observed - 1))
}

// scoreCandidate runs the null model and significance test for one motif.
// Pure function of the candidate and the pool size, so callers may fan it
// out freely.
func scoreCandidate(c Candidate, nSequences int, cfg config.AnalysisConfig) EnrichmentRecord {
	pMotif := motifProbability(c.Motif, cfg.BaseProbs)
	nPositions := positionsPerSequence(cfg.RegionLength, c.Length)
	pSeq := sequenceHitProbability(pMotif, nPositions)
	expected := pSeq * float64(nSequences)

	fold := math.Inf(1)
	if expected > 0 {
		fold = float64(c.Count) / expected
	}

	return EnrichmentRecord{
		Motif:          c.Motif,
		Length:         c.Length,
		Count:          c.Count,
		ExpectedCount:  expected,
		FoldEnrichment: fold,
		Frequency:      c.Frequency,
		PValue:         binomialSurvival(c.Count, nSequences, pSeq),
		SeqIDs:         c.SeqIDs,
	}
}

// CalculateEnrichment scores every candidate against the binomial null
// model, applies Benjamini-Hochberg correction over the full p-value vector
// and returns the table ranked by ascending FDR (ties by raw p-value, then
// motif string). An empty candidate list yields an empty table; a pool of
// zero sequences with candidates present is a configuration error since no
// binomial model exists for N = 0.
func CalculateEnrichment(candidates []Candidate, nSequences int, cfg config.AnalysisConfig) ([]EnrichmentRecord, error) {
	if len(candidates) == 0 {
		return []EnrichmentRecord{}, nil
	}
	if nSequences < 1 {
		return nil, fmt.Errorf("invalid configuration: enrichment statistics need at least one sequence (got %d)", nSequences)
	}

	records := make([]EnrichmentRecord, len(candidates))

	// Each motif's statistics depend only on its own count and length, so
	// the scoring stage fans out across a worker pool.
	numWorkers := runtime.NumCPU()
	jobs := make(chan int, numWorkers*2)
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				records[i] = scoreCandidate(candidates[i], nSequences, cfg)
			}
		}()
	}
	for i := range candidates {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	// FDR correction is the global barrier: it must see every p-value.
	pValues := make([]float64, len(records))
	for i, rec := range records {
		pValues[i] = rec.PValue
	}
	adjusted, significant := BenjaminiHochberg(pValues, cfg.FDRThreshold)
	for i := range records {
		records[i].FDR = adjusted[i]
		records[i].Significant = significant[i]
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].FDR != records[j].FDR {
			return records[i].FDR < records[j].FDR
		}
		if records[i].PValue != records[j].PValue {
			return records[i].PValue < records[j].PValue
		}
		return records[i].Motif < records[j].Motif
	})

	return records, nil
}
