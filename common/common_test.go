package common

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReverseComplement(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ATCG", "CGAT"},
		{"atcg", "CGAT"},
		{"AAAA", "TTTT"},
		{"ATXG", "CNAT"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ReverseComplement(tt.in); got != tt.want {
			t.Errorf("ReverseComplement(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDNAToRNA(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ATCG", "AUCG"},
		{"ttt", "UUU"},
		{"ACGU", "ACGU"},
	}
	for _, tt := range tests {
		if got := DNAToRNA(tt.in); got != tt.want {
			t.Errorf("DNAToRNA(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseFastaReader(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    map[string]string
		wantErr bool
	}{
		{
			name:  "basic records",
			input: ">S1\nACGT\n>S2\nTTTT\n",
			want:  map[string]string{"S1": "ACGT", "S2": "TTTT"},
		},
		{
			name:  "multiline sequence concatenates",
			input: ">S1\nACGT\nACGT\n",
			want:  map[string]string{"S1": "ACGTACGT"},
		},
		{
			name:  "lowercase is uppercased",
			input: ">S1\nacgt\n",
			want:  map[string]string{"S1": "ACGT"},
		},
		{
			name:  "headerless plain lines get positional names",
			input: "ACGT\nTTTT\n",
			want:  map[string]string{"Sequence_1": "ACGT", "Sequence_2": "TTTT"},
		},
		{
			name:  "empty header gets fallback name",
			input: ">\nACGT\n",
			want:  map[string]string{"Sequence_1": "ACGT"},
		},
		{
			name:  "blank lines skipped",
			input: "\n>S1\n\nACGT\n\n",
			want:  map[string]string{"S1": "ACGT"},
		},
		{
			name:    "duplicate ID rejected",
			input:   ">S1\nACGT\n>S1\nTTTT\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFastaReader(strings.NewReader(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFastaReader: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFastaMapGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pool.fasta.gz")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	gw := gzip.NewWriter(f)
	if _, err := gw.Write([]byte(">S1\nACGTACGT\n>S2\nGGCC\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	gw.Close()
	f.Close()

	got, err := ParseFastaMap(path)
	if err != nil {
		t.Fatalf("ParseFastaMap: %v", err)
	}
	want := map[string]string{"S1": "ACGTACGT", "S2": "GGCC"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseFastaMapPlain(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pool.fasta")
	if err := os.WriteFile(path, []byte(">S1\nACGT\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ParseFastaMap(path)
	if err != nil {
		t.Fatalf("ParseFastaMap: %v", err)
	}
	if got["S1"] != "ACGT" {
		t.Errorf("got %v", got)
	}
}

func TestExtractRandomRegions(t *testing.T) {
	fwd := "TTCTAA"
	rev := "AGATAG"
	sequences := map[string]string{
		"S1": fwd + "ACGTACGT" + rev,
		"S2": fwd + "GGGG" + rev + "TRAILING",
		"S3": "NOPRIMERSHERE",
		"S4": fwd + "MISSINGREVERSE",
	}
	regions, skipped := ExtractRandomRegions(sequences, fwd, rev)

	want := map[string]string{"S1": "ACGTACGT", "S2": "GGGG"}
	if !reflect.DeepEqual(regions, want) {
		t.Errorf("regions = %v, want %v", regions, want)
	}
	if !reflect.DeepEqual(skipped, []string{"S3", "S4"}) {
		t.Errorf("skipped = %v, want sorted [S3 S4]", skipped)
	}
}

func TestExtractRandomRegionsCaseInsensitivePrimers(t *testing.T) {
	sequences := map[string]string{"S1": "TTCTAAACGTAGATAG"}
	regions, skipped := ExtractRandomRegions(sequences, "ttctaa", "agatag")
	if len(skipped) != 0 {
		t.Fatalf("skipped = %v, want none", skipped)
	}
	if regions["S1"] != "ACGT" {
		t.Errorf("region = %q, want ACGT", regions["S1"])
	}
}

func TestSortedIDs(t *testing.T) {
	got := SortedIDs(map[string]string{"b": "", "a": "", "c": ""})
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("SortedIDs = %v", got)
	}
}
