package motif_analyzer

import (
	"math"
	"sort"
)

// BenjaminiHochberg applies the step-up false discovery rate procedure.
// For the i-th smallest of m p-values the adjusted value is p(i)*m/i, made
// monotone by a running minimum from the largest rank down and capped at 1.
// Results map back to the input order. A motif is significant when its
// adjusted value is at or below alpha, which is the step-up rule
// p(i) <= (i/m)*alpha expressed through the adjusted values.
//
// m = 0 returns empty outputs without running the correction.
func BenjaminiHochberg(pValues []float64, alpha float64) (adjusted []float64, significant []bool) {
	m := len(pValues)
	if m == 0 {
		return nil, nil
	}

	order := make([]int, m)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return pValues[order[i]] < pValues[order[j]]
	})

	sortedAdj := make([]float64, m)
	for rank, idx := range order {
		sortedAdj[rank] = pValues[idx] * float64(m) / float64(rank+1)
	}

	adjusted = make([]float64, m)
	significant = make([]bool, m)
	running := math.Inf(1)
	for rank := m - 1; rank >= 0; rank-- {
		if sortedAdj[rank] < running {
			running = sortedAdj[rank]
		}
		value := running
		if value > 1 {
			value = 1
		}
		idx := order[rank]
		adjusted[idx] = value
		significant[idx] = value <= alpha
	}
	return adjusted, significant
}
