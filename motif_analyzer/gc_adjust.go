package motif_analyzer

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"aptamotif_go/config"
)

// GCAdjusted holds the composition-aware re-analysis of a result table.
// It is an alternate null model with its own independent FDR correction,
// never a post-hoc adjustment of the primary columns: values are parallel
// to the record slice they were computed from.
type GCAdjusted struct {
	AvgGC       float64
	PValues     []float64
	FDR         []float64
	Significant []bool
}

// gcContent returns the G+C fraction of a sequence (0-1).
func gcContent(sequence string) float64 {
	if len(sequence) == 0 {
		return 0
	}
	gc := 0
	for i := 0; i < len(sequence); i++ {
		switch sequence[i] {
		case 'G', 'C':
			gc++
		}
	}
	return float64(gc) / float64(len(sequence))
}

// AdjustForGCBias recomputes each motif's p-value using the pool's observed
// average base composition instead of uniform 0.25, then runs a second
// Benjamini-Hochberg pass over the new p-value vector. An empty pool has no
// composition to estimate, so it is an explicit error rather than a silent
// NaN.
func AdjustForGCBias(records []EnrichmentRecord, sequences map[string]string, cfg config.AnalysisConfig) (GCAdjusted, error) {
	if len(sequences) == 0 {
		return GCAdjusted{}, fmt.Errorf("insufficient data: GC-adjusted model needs a non-empty sequence pool")
	}

	gcValues := make([]float64, 0, len(sequences))
	for _, sequence := range sequences {
		gcValues = append(gcValues, gcContent(sequence))
	}
	avgGC := stat.Mean(gcValues, nil)

	pGC := avgGC / 2
	pAT := (1 - avgGC) / 2
	nSequences := len(sequences)

	pValues := make([]float64, len(records))
	for i, rec := range records {
		pMotif := 1.0
		for j := 0; j < len(rec.Motif); j++ {
			switch rec.Motif[j] {
			case 'G', 'C':
				pMotif *= pGC
			default:
				pMotif *= pAT
			}
		}
		nPositions := positionsPerSequence(cfg.RegionLength, rec.Length)
		pSeq := sequenceHitProbability(pMotif, nPositions)
		pValues[i] = binomialSurvival(rec.Count, nSequences, pSeq)
	}

	adjusted, significant := BenjaminiHochberg(pValues, cfg.FDRThreshold)
	return GCAdjusted{
		AvgGC:       avgGC,
		PValues:     pValues,
		FDR:         adjusted,
		Significant: significant,
	}, nil
}
