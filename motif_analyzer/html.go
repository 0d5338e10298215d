package motif_analyzer

import (
	"fmt"
	"os"
	"strings"
)

// ReportSummary feeds the metrics table at the top of the HTML report.
type ReportSummary struct {
	PoolName          string
	TotalSequences    int
	SkippedSequences  int
	MotifsFound       int
	SignificantMotifs int
	FDRThreshold      float64
	GCAdjusted        bool
	AvgGC             float64
}

// topMotifRows renders the first n table rows of the ranked result set.
func topMotifRows(records []EnrichmentRecord, n int) string {
	if n > len(records) {
		n = len(records)
	}
	var sb strings.Builder
	for _, rec := range records[:n] {
		sb.WriteString(fmt.Sprintf(
			"\t\t<tr><td><code>%s</code></td><td>%d</td><td>%d</td><td>%s</td><td>%.3e</td><td>%.3e</td><td>%s</td></tr>\n",
			rec.Motif, rec.Length, rec.Count, formatFold(rec.FoldEnrichment),
			rec.PValue, rec.FDR, formatBool(rec.Significant)))
	}
	return sb.String()
}

// WriteHTMLReport writes the static analysis report: summary metrics, the
// top of the ranked table, and the four embedded SVG figures.
func WriteHTMLReport(filename string, summary ReportSummary, records []EnrichmentRecord,
	svgVolcano, svgHeatmap, svgLengths, svgEnrichment string) error {

	f, err := os.Create(filename + ".html")
	if err != nil {
		return err
	}
	defer f.Close()

	gcRow := ""
	if summary.GCAdjusted {
		gcRow = fmt.Sprintf("\t\t<tr><td>Average GC Content</td><td>%.1f%%</td></tr>\n", summary.AvgGC*100)
	}

	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<title>AptaMotif Report</title>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; padding: 20px; background-color: #f9f9f9; }
		h1 { color: #333; }
		code { background-color: #eee; padding: 1px 4px; }
		table { border-collapse: collapse; margin-top: 20px; }
		th, td { padding: 8px 12px; border: 1px solid #ccc; text-align: left; }
		th { background-color: #eee; }
	</style>
</head>
<body>
	<h1>AptaMotif Report</h1>
	<table>
		<tr><th>Metric</th><th>Value</th></tr>
		<tr><td>Pool Configuration</td><td>%s</td></tr>
		<tr><td>Total Sequences</td><td>%d</td></tr>
		<tr><td>Sequences Skipped (primer not found)</td><td>%d</td></tr>
		<tr><td>Motifs Found</td><td>%d</td></tr>
		<tr><td>Significant Motifs (FDR &le; %.3f)</td><td>%d</td></tr>
%s	</table>
	<h2>Top Motifs</h2>
	<table>
		<tr><th>Motif</th><th>Length</th><th>Count</th><th>Fold Enrichment</th><th>P-value</th><th>FDR</th><th>Significant</th></tr>
%s	</table>
	<h2>Volcano Plot</h2>
	<div>%s</div>
	<h2>Motif Occurrence Heatmap</h2>
	<div>%s</div>
	<h2>Motif Length Distribution</h2>
	<div>%s</div>
	<h2>Top Enriched Motifs</h2>
	<div>%s</div>
</body>
</html>`,
		summary.PoolName,
		summary.TotalSequences,
		summary.SkippedSequences,
		summary.MotifsFound,
		summary.FDRThreshold,
		summary.SignificantMotifs,
		gcRow,
		topMotifRows(records, 10),
		svgVolcano,
		svgHeatmap,
		svgLengths,
		svgEnrichment,
	)

	_, err = f.WriteString(html)
	return err
}
