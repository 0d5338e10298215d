package config      // Analysis configuration shared by the motif tools

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// AnalysisConfig holds every tunable of the motif discovery and enrichment
// pipeline. It is passed by value into each stage; stages never reach for
// package-level state.
type AnalysisConfig struct {
	MinLength      int              // shortest motif length mined
	MaxLength      int              // longest motif length mined
	MinOccurrences int              // minimum sequences sharing a motif
	RegionLength   int              // expected random-region length
	FDRThreshold   float64          // Benjamini-Hochberg alpha
	BaseProbs      map[byte]float64 // per-base null probabilities
	MaxCandidates  int              // hard cap on candidate motifs (0 = off)
}

// DefaultAnalysis returns the standard pipeline settings: motifs of 5-15
// bases shared by at least 2 sequences, N71 pool, FDR 0.05, uniform base
// composition.
func DefaultAnalysis() AnalysisConfig {
	return AnalysisConfig{
		MinLength:      5,
		MaxLength:      15,
		MinOccurrences: 2,
		RegionLength:   71,
		FDRThreshold:   0.05,
		BaseProbs:      UniformBaseProbs(),
	}
}

// UniformBaseProbs returns the equal-composition null model (0.25 per base).
func UniformBaseProbs() map[byte]float64 {
	return map[byte]float64{'A': 0.25, 'C': 0.25, 'G': 0.25, 'T': 0.25}
}

// Validate fails fast on malformed parameters, before any mining begins.
func (c AnalysisConfig) Validate() error {
	if c.MinLength < 1 || c.MaxLength < 1 {
		return fmt.Errorf("invalid configuration: motif lengths must be positive (got %d-%d)", c.MinLength, c.MaxLength)
	}
	if c.MinLength > c.MaxLength {
		return fmt.Errorf("invalid configuration: min_length %d exceeds max_length %d", c.MinLength, c.MaxLength)
	}
	if c.MinOccurrences < 1 {
		return fmt.Errorf("invalid configuration: min_occurrences must be at least 1 (got %d)", c.MinOccurrences)
	}
	if c.RegionLength < 1 {
		return fmt.Errorf("invalid configuration: region_length must be positive (got %d)", c.RegionLength)
	}
	if c.FDRThreshold <= 0 || c.FDRThreshold > 1 {
		return fmt.Errorf("invalid configuration: fdr_threshold must be in (0,1] (got %g)", c.FDRThreshold)
	}
	if c.MaxCandidates < 0 {
		return fmt.Errorf("invalid configuration: max_candidates must be non-negative (got %d)", c.MaxCandidates)
	}
	if len(c.BaseProbs) == 0 {
		return fmt.Errorf("invalid configuration: base probabilities are missing")
	}
	probs := make([]float64, 0, len(c.BaseProbs))
	for base, p := range c.BaseProbs {
		if p < 0 {
			return fmt.Errorf("invalid configuration: negative probability for base %c", base)
		}
		probs = append(probs, p)
	}
	if total := floats.Sum(probs); total < 1-1e-9 || total > 1+1e-9 {
		return fmt.Errorf("invalid configuration: base probabilities sum to %g, want 1", total)
	}
	return nil
}
