package motif_analyzer

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// formatFold prints fold enrichment, rendering the expected-count-zero
// case as "inf".
func formatFold(fold float64) string {
	if math.IsInf(fold, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.4f", fold)
}

// formatBool prints booleans with the True/False capitalization the table
// consumers expect.
func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// WriteCSVReport writes the ranked enrichment table with the fixed column
// order downstream consumers rely on. When a GC-adjusted re-analysis is
// supplied its two extra columns are appended; gcAdj must then be parallel
// to records.
func WriteCSVReport(filename string, records []EnrichmentRecord, gcAdj *GCAdjusted) error {
	f, err := os.Create(filename + ".csv")
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	headers := []string{
		"Motif", "Length", "Count", "Expected_Count", "Fold_Enrichment",
		"Frequency", "P_value", "FDR", "Significant", "Sequences",
	}
	if gcAdj != nil {
		headers = append(headers, "P_value_GC_adjusted", "FDR_GC_adjusted")
	}
	if err := writer.Write(headers); err != nil {
		return err
	}

	for i, rec := range records {
		values := []string{
			rec.Motif,
			strconv.Itoa(rec.Length),
			strconv.Itoa(rec.Count),
			fmt.Sprintf("%.6f", rec.ExpectedCount),
			formatFold(rec.FoldEnrichment),
			fmt.Sprintf("%.4f", rec.Frequency),
			fmt.Sprintf("%.6e", rec.PValue),
			fmt.Sprintf("%.6e", rec.FDR),
			formatBool(rec.Significant),
			strings.Join(rec.SeqIDs, ","),
		}
		if gcAdj != nil {
			values = append(values,
				fmt.Sprintf("%.6e", gcAdj.PValues[i]),
				fmt.Sprintf("%.6e", gcAdj.FDR[i]),
			)
		}
		if err := writer.Write(values); err != nil {
			return err
		}
	}
	return nil
}
