package structure_predictor

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Prediction holds one sequence's predicted secondary structure in
// dot-bracket notation together with its (estimated) minimum free energy.
type Prediction struct {
	SeqID     string
	Sequence  string
	Structure string
	MFE       float64
}

// Predictor is the folding strategy. Implementations must be safe for
// concurrent use, since the controller fans predictions out across
// sequences.
type Predictor interface {
	Name() string
	Predict(rnaSequence string) (structure string, mfe float64, err error)
}

// SelectPredictor probes once for the RNAfold executable and returns the
// matching strategy. The probe is explicit and happens at startup; the
// Nussinov fallback is chosen only when the binary is genuinely absent,
// never through a silent feature flag.
func SelectPredictor(temperature float64) Predictor {
	if path, err := exec.LookPath("RNAfold"); err == nil {
		return &ViennaPredictor{Path: path, Temperature: temperature}
	}
	return &NussinovPredictor{}
}

// ViennaPredictor shells out to the ViennaRNA RNAfold binary.
type ViennaPredictor struct {
	Path        string
	Temperature float64
}

func (v *ViennaPredictor) Name() string { return "RNAfold" }

func (v *ViennaPredictor) Predict(rnaSequence string) (string, float64, error) {
	cmd := exec.Command(v.Path, "--noPS", "-T", fmt.Sprintf("%g", v.Temperature))
	cmd.Stdin = strings.NewReader(rnaSequence + "\n")
	out, err := cmd.Output()
	if err != nil {
		return "", 0, fmt.Errorf("RNAfold failed: %w", err)
	}
	return parseRNAfoldOutput(string(out))
}

// parseRNAfoldOutput extracts structure and MFE from RNAfold's two-line
// output, e.g. "GGGAAACCC\n(((...))) ( -1.20)\n".
func parseRNAfoldOutput(out string) (string, float64, error) {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 {
		return "", 0, fmt.Errorf("unexpected RNAfold output: %q", out)
	}
	result := strings.TrimSpace(lines[1])
	open := strings.LastIndex(result, "(")
	if open == -1 || !strings.HasSuffix(result, ")") {
		return "", 0, fmt.Errorf("no MFE in RNAfold output line: %q", result)
	}
	structure := strings.TrimSpace(result[:open])
	mfeText := strings.TrimSpace(strings.Trim(result[open:], "()"))
	mfe, err := strconv.ParseFloat(mfeText, 64)
	if err != nil {
		return "", 0, fmt.Errorf("bad MFE %q: %w", mfeText, err)
	}
	return structure, mfe, nil
}
