// Common package contains commonly used functions that benefit multiple tools
// Exporting these functions from the Common package reduces redundant code
package common

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ReverseComplement takes a DNA sequence string and returns its reverse complement.
// The function is case-insensitive. Non-standard DNA characters are replaced
// with the ambiguous base 'N'.
func ReverseComplement(seq string) string {
	var rc strings.Builder
	seq = strings.ToUpper(seq)
	for i := len(seq) - 1; i >= 0; i-- {
		switch seq[i] {
		case 'A':
			rc.WriteByte('T')
		case 'T':
			rc.WriteByte('A')
		case 'C':
			rc.WriteByte('G')
		case 'G':
			rc.WriteByte('C')
		default:
			rc.WriteByte('N') // Ambiguous or invalid character
		}
	}
	return rc.String()
}

// DNAToRNA converts a DNA sequence to its RNA form (T -> U), uppercased.
func DNAToRNA(seq string) string {
	return strings.ReplaceAll(strings.ToUpper(seq), "T", "U")
}

// openMaybeGzip opens a file and transparently decompresses it when the
// gzip magic bytes are present.
func openMaybeGzip(file string) (io.ReadCloser, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	buf := make([]byte, 2)
	if _, err := f.Read(buf); err == nil && buf[0] == 0x1F && buf[1] == 0x8B {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			f.Close()
			return nil, err
		}
		gr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to open gzip reader: %w", err)
		}
		return gzipReadCloser{gr: gr, f: f}, nil
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

type gzipReadCloser struct {
	gr *gzip.Reader
	f  *os.File
}

func (g gzipReadCloser) Read(p []byte) (int, error) { return g.gr.Read(p) }

func (g gzipReadCloser) Close() error {
	g.gr.Close()
	return g.f.Close()
}

// ParseFastaMap reads a FASTA file (plain or gzipped) into a map of
// sequence ID -> uppercased sequence. Records with duplicate IDs are
// rejected; unnamed headers get a positional fallback name. Invalid
// characters are kept as-is so downstream window scans can skip them
// individually.
func ParseFastaMap(file string) (map[string]string, error) {
	reader, err := openMaybeGzip(file)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return ParseFastaReader(reader)
}

// ParseFastaReader is the reader-level core of ParseFastaMap.
func ParseFastaReader(r io.Reader) (map[string]string, error) {
	sequences := make(map[string]string)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var currentID string
	var buffer strings.Builder
	record := 0

	flush := func() error {
		if currentID == "" {
			return nil
		}
		if _, dup := sequences[currentID]; dup {
			return fmt.Errorf("duplicate sequence ID %q", currentID)
		}
		sequences[currentID] = buffer.String()
		buffer.Reset()
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if err := flush(); err != nil {
				return nil, err
			}
			record++
			currentID = strings.TrimSpace(strings.TrimPrefix(line, ">"))
			if currentID == "" {
				currentID = fmt.Sprintf("Sequence_%d", record)
			}
		} else {
			if currentID == "" {
				// Plain text input: one sequence per line, no headers
				record++
				currentID = fmt.Sprintf("Sequence_%d", record)
				buffer.WriteString(strings.ToUpper(line))
				if err := flush(); err != nil {
					return nil, err
				}
				currentID = ""
				continue
			}
			buffer.WriteString(strings.ToUpper(line))
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}
	return sequences, nil
}

// ExtractRandomRegions trims each sequence to the stretch between the
// forward primer and the reverse-complement tail. Sequences missing either
// primer are skipped; their IDs are returned so callers can warn about them.
func ExtractRandomRegions(sequences map[string]string, forwardPrimer, reverseComplement string) (map[string]string, []string) {
	regions := make(map[string]string)
	var skipped []string

	forwardPrimer = strings.ToUpper(forwardPrimer)
	reverseComplement = strings.ToUpper(reverseComplement)

	for seqID, seq := range sequences {
		fwdPos := strings.Index(seq, forwardPrimer)
		if fwdPos == -1 {
			skipped = append(skipped, seqID)
			continue
		}
		start := fwdPos + len(forwardPrimer)
		revPos := strings.Index(seq[start:], reverseComplement)
		if revPos == -1 {
			skipped = append(skipped, seqID)
			continue
		}
		regions[seqID] = seq[start : start+revPos]
	}
	sort.Strings(skipped)
	return regions, skipped
}

// SortedIDs returns the sequence IDs of a pool in lexicographic order.
func SortedIDs(sequences map[string]string) []string {
	ids := make([]string, 0, len(sequences))
	for id := range sequences {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
