package structure_predictor

// NussinovPredictor is the built-in fallback folding algorithm: a
// Nussinov-style dynamic program maximizing the number of base pairs, with
// a rough MFE estimate of -2.5 kcal/mol per pair. It is an approximation,
// not a thermodynamic model.
type NussinovPredictor struct{}

func (n *NussinovPredictor) Name() string { return "nussinov" }

// canPair covers Watson-Crick pairs plus the GU wobble.
func canPair(a, b byte) bool {
	switch {
	case a == 'A' && b == 'U', a == 'U' && b == 'A':
		return true
	case a == 'G' && b == 'C', a == 'C' && b == 'G':
		return true
	case a == 'G' && b == 'U', a == 'U' && b == 'G':
		return true
	}
	return false
}

type traceCell struct {
	k      int
	paired bool
	set    bool
}

func (n *NussinovPredictor) Predict(rnaSequence string) (string, float64, error) {
	length := len(rnaSequence)
	if length == 0 {
		return "", 0, nil
	}

	dp := make([][]int, length)
	trace := make([][]traceCell, length)
	for i := range dp {
		dp[i] = make([]int, length)
		trace[i] = make([]traceCell, length)
	}

	for span := 2; span <= length; span++ {
		for i := 0; i+span-1 < length; i++ {
			j := i + span - 1

			// Case 1: j unpaired
			dp[i][j] = dp[i][j-1]
			trace[i][j] = traceCell{k: -1, set: true}

			// Case 2: j pairs with some k
			for k := i; k < j; k++ {
				if !canPair(rnaSequence[k], rnaSequence[j]) {
					continue
				}
				score := 1
				if k > i {
					score += dp[i][k-1]
				}
				if k+1 < j {
					score += dp[k+1][j-1]
				}
				if score > dp[i][j] {
					dp[i][j] = score
					trace[i][j] = traceCell{k: k, paired: true, set: true}
				}
			}
		}
	}

	structure := make([]byte, length)
	for i := range structure {
		structure[i] = '.'
	}
	traceback(trace, structure, 0, length-1)

	mfe := -2.5 * float64(dp[0][length-1])
	return string(structure), mfe, nil
}

func traceback(trace [][]traceCell, structure []byte, i, j int) {
	if i >= j || !trace[i][j].set {
		return
	}
	cell := trace[i][j]
	if !cell.paired {
		traceback(trace, structure, i, j-1)
		return
	}
	structure[cell.k] = '('
	structure[j] = ')'
	if cell.k > i {
		traceback(trace, structure, i, cell.k-1)
	}
	if cell.k+1 < j {
		traceback(trace, structure, cell.k+1, j-1)
	}
}
