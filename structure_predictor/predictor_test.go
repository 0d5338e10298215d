package structure_predictor

import (
	"math"
	"testing"
)

func TestParseRNAfoldOutput(t *testing.T) {
	tests := []struct {
		name          string
		output        string
		wantStructure string
		wantMFE       float64
		wantErr       bool
	}{
		{
			name:          "typical output",
			output:        "GGGAAACCC\n(((...))) ( -1.20)\n",
			wantStructure: "(((...)))",
			wantMFE:       -1.2,
		},
		{
			name:          "no leading space in energy",
			output:        "GGGAAACCC\n(((...))) (-12.40)\n",
			wantStructure: "(((...)))",
			wantMFE:       -12.4,
		},
		{
			name:          "zero energy",
			output:        "AAAA\n.... (  0.00)\n",
			wantStructure: "....",
			wantMFE:       0,
		},
		{
			name:    "missing structure line",
			output:  "GGGAAACCC\n",
			wantErr: true,
		},
		{
			name:    "no energy field",
			output:  "GGGAAACCC\n.........\n",
			wantErr: true,
		},
		{
			name:    "garbage energy",
			output:  "GGGAAACCC\n(((...))) (abc)\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			structure, mfe, err := parseRNAfoldOutput(tt.output)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseRNAfoldOutput(%q) succeeded, want error", tt.output)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseRNAfoldOutput(%q): %v", tt.output, err)
			}
			if structure != tt.wantStructure {
				t.Errorf("structure = %q, want %q", structure, tt.wantStructure)
			}
			if math.Abs(mfe-tt.wantMFE) > 1e-9 {
				t.Errorf("MFE = %g, want %g", mfe, tt.wantMFE)
			}
		})
	}
}

func TestPredictAll(t *testing.T) {
	predictor := &NussinovPredictor{}
	rnaSequences := map[string]string{
		"S1": "GGGAAACCC",
		"S2": "AAAUUU",
		"S3": "",
	}
	predictions, failures := PredictAll(predictor, rnaSequences)
	if len(failures) != 0 {
		t.Fatalf("unexpected failures: %v", failures)
	}
	if len(predictions) != 3 {
		t.Fatalf("got %d predictions, want 3", len(predictions))
	}
	for id, pred := range predictions {
		if pred.SeqID != id {
			t.Errorf("prediction keyed %s carries SeqID %s", id, pred.SeqID)
		}
		if len(pred.Structure) != len(rnaSequences[id]) {
			t.Errorf("%s: structure length %d != sequence length %d", id, len(pred.Structure), len(rnaSequences[id]))
		}
	}
}

func TestFormatPredictions(t *testing.T) {
	predictions := map[string]Prediction{
		"S2": {SeqID: "S2", Sequence: "AAAUUU", Structure: "((..))", MFE: -5},
		"S1": {SeqID: "S1", Sequence: "GGGAAACCC", Structure: "(((...)))", MFE: -7.5},
	}
	got := FormatPredictions(predictions)
	want := ">S1\n" +
		"Sequence: GGGAAACCC\n" +
		"Structure: (((...)))\n" +
		"MFE: -7.50 kcal/mol\n" +
		"\n" +
		">S2\n" +
		"Sequence: AAAUUU\n" +
		"Structure: ((..))\n" +
		"MFE: -5.00 kcal/mol\n" +
		"\n"
	if got != want {
		t.Errorf("FormatPredictions =\n%q\nwant\n%q", got, want)
	}
}
