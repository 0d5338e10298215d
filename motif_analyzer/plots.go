package motif_analyzer

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Shared figure palette.
var (
	significantColor    = color.RGBA{R: 46, G: 134, B: 171, A: 255}  // blue
	nonSignificantColor = color.RGBA{R: 162, G: 59, B: 114, A: 255}  // magenta
	absentColor         = color.RGBA{R: 240, G: 240, B: 240, A: 255} // light gray
)

type IntegerTicks struct{}

func (IntegerTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i := int(math.Ceil(min)); i <= int(math.Floor(max)); i++ {
		ticks = append(ticks, plot.Tick{
			Value: float64(i),
			Label: fmt.Sprintf("%d", i),
		})
	}
	return ticks
}

// renderSVG writes a finished plot into an SVG string for HTML embedding.
func renderSVG(p *plot.Plot, width, height vg.Length) (string, error) {
	var buf bytes.Buffer
	writer, err := p.WriterTo(width, height, "svg")
	if err != nil {
		return "", err
	}
	if _, err := writer.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// cappedFold makes infinite fold enrichments plottable by pinning them just
// above the largest finite value.
func cappedFold(records []EnrichmentRecord) []float64 {
	maxFinite := 0.0
	for _, rec := range records {
		if !math.IsInf(rec.FoldEnrichment, 1) && rec.FoldEnrichment > maxFinite {
			maxFinite = rec.FoldEnrichment
		}
	}
	cap := maxFinite * 1.2
	if cap == 0 {
		cap = 10
	}
	folds := make([]float64, len(records))
	for i, rec := range records {
		if math.IsInf(rec.FoldEnrichment, 1) {
			folds[i] = cap
		} else {
			folds[i] = rec.FoldEnrichment
		}
	}
	return folds
}

// GenerateVolcanoPlotSVG plots fold enrichment against -log10(FDR), with
// significant motifs in blue and the FDR threshold as a dashed line.
func GenerateVolcanoPlotSVG(records []EnrichmentRecord, alpha float64) (string, error) {
	p := plot.New()
	p.Title.Text = "Volcano Plot: Motif Enrichment"
	p.X.Label.Text = "Fold Enrichment"
	p.Y.Label.Text = "-log10(FDR)"
	p.Add(plotter.NewGrid())

	folds := cappedFold(records)
	var sigXY, nonSigXY plotter.XYs
	maxX := 0.0
	for i, rec := range records {
		// Tiny offset keeps log10 defined when FDR underflows to 0.
		pt := plotter.XY{X: folds[i], Y: -math.Log10(rec.FDR + 1e-300)}
		if pt.X > maxX {
			maxX = pt.X
		}
		if rec.Significant {
			sigXY = append(sigXY, pt)
		} else {
			nonSigXY = append(nonSigXY, pt)
		}
	}

	if len(nonSigXY) > 0 {
		scatter, err := plotter.NewScatter(nonSigXY)
		if err != nil {
			return "", err
		}
		scatter.GlyphStyle.Color = nonSignificantColor
		scatter.GlyphStyle.Radius = vg.Points(3)
		p.Add(scatter)
		p.Legend.Add("Not Significant", scatter)
	}
	if len(sigXY) > 0 {
		scatter, err := plotter.NewScatter(sigXY)
		if err != nil {
			return "", err
		}
		scatter.GlyphStyle.Color = significantColor
		scatter.GlyphStyle.Radius = vg.Points(3)
		p.Add(scatter)
		p.Legend.Add("Significant", scatter)
	}

	threshold := plotter.XYs{
		{X: 0, Y: -math.Log10(alpha)},
		{X: maxX, Y: -math.Log10(alpha)},
	}
	line, err := plotter.NewLine(threshold)
	if err != nil {
		return "", err
	}
	line.LineStyle.Color = color.RGBA{R: 255, A: 255}
	line.LineStyle.Width = vg.Points(1)
	line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(line)
	p.Legend.Add(fmt.Sprintf("FDR = %g", alpha), line)
	p.Legend.Top = true

	return renderSVG(p, 8*vg.Inch, 5*vg.Inch)
}

// presenceGrid adapts a binary presence matrix to the heatmap plotter.
type presenceGrid struct {
	motifs []string
	seqIDs []string
	matrix [][]int
}

func (g presenceGrid) Dims() (c, r int)   { return len(g.motifs), len(g.seqIDs) }
func (g presenceGrid) Z(c, r int) float64 { return float64(g.matrix[r][c]) }
func (g presenceGrid) X(c int) float64    { return float64(c) }
func (g presenceGrid) Y(r int) float64    { return float64(r) }

// binaryPalette colors absent cells light gray and present cells blue.
type binaryPalette struct{}

func (binaryPalette) Colors() []color.Color {
	return []color.Color{absentColor, significantColor}
}

var _ palette.Palette = binaryPalette{}

// GenerateHeatmapSVG draws a presence/absence heatmap of the topN
// lowest-FDR motifs across the pool. Records must already be sorted by FDR,
// which is how the assembler returns them.
func GenerateHeatmapSVG(records []EnrichmentRecord, sequences map[string]string, topN int) (string, error) {
	if topN > len(records) {
		topN = len(records)
	}
	motifs := make([]string, topN)
	for i := 0; i < topN; i++ {
		motifs[i] = records[i].Motif
	}
	seqIDs, matrix := PresenceMatrix(sequences, motifs)

	p := plot.New()
	p.Title.Text = "Motif Occurrence Heatmap"
	p.X.Label.Text = "Motif"
	p.Y.Label.Text = "Sequence ID"

	heatmap := plotter.NewHeatMap(presenceGrid{motifs: motifs, seqIDs: seqIDs, matrix: matrix}, binaryPalette{})
	heatmap.Min = 0
	heatmap.Max = 1
	p.Add(heatmap)
	p.NominalX(motifs...)
	p.NominalY(seqIDs...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = -1

	width := vg.Length(math.Max(8, float64(len(motifs))*0.5)) * vg.Inch / 2
	height := vg.Length(math.Max(6, float64(len(seqIDs))*0.3)) * vg.Inch / 2
	return renderSVG(p, width, height)
}

// GenerateLengthDistributionSVG draws motif counts per length, split by
// significance.
func GenerateLengthDistributionSVG(records []EnrichmentRecord) (string, error) {
	p := plot.New()
	p.Title.Text = "Distribution of Motif Lengths"
	p.X.Label.Text = "Motif Length (bp)"
	p.Y.Label.Text = "Count"
	p.X.Tick.Marker = IntegerTicks{}

	minLen, maxLen := math.MaxInt32, 0
	for _, rec := range records {
		if rec.Length < minLen {
			minLen = rec.Length
		}
		if rec.Length > maxLen {
			maxLen = rec.Length
		}
	}
	if maxLen == 0 {
		return "", fmt.Errorf("no motifs to plot")
	}

	span := maxLen - minLen + 1
	sigCounts := make([]float64, span)
	nonSigCounts := make([]float64, span)
	for _, rec := range records {
		if rec.Significant {
			sigCounts[rec.Length-minLen]++
		} else {
			nonSigCounts[rec.Length-minLen]++
		}
	}

	toXY := func(counts []float64) plotter.XYs {
		pts := make(plotter.XYs, span)
		for i := 0; i < span; i++ {
			pts[i].X = float64(minLen + i)
			pts[i].Y = counts[i]
		}
		return pts
	}

	sigLine, err := plotter.NewLine(toXY(sigCounts))
	if err != nil {
		return "", err
	}
	sigLine.LineStyle.Color = significantColor
	sigLine.LineStyle.Width = vg.Points(2)

	nonSigLine, err := plotter.NewLine(toXY(nonSigCounts))
	if err != nil {
		return "", err
	}
	nonSigLine.LineStyle.Color = nonSignificantColor
	nonSigLine.LineStyle.Width = vg.Points(2)
	nonSigLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}

	p.Add(sigLine, nonSigLine)
	p.Legend.Add("Significant", sigLine)
	p.Legend.Add("Not Significant", nonSigLine)
	p.Legend.Top = true

	return renderSVG(p, 8*vg.Inch, 4*vg.Inch)
}

// GenerateEnrichmentBarSVG draws horizontal fold-enrichment bars for the
// topN lowest-FDR motifs.
func GenerateEnrichmentBarSVG(records []EnrichmentRecord, topN int) (string, error) {
	if topN > len(records) {
		topN = len(records)
	}
	top := records[:topN]
	folds := cappedFold(top)

	// Reverse so the best motif lands on the top row.
	values := make(plotter.Values, topN)
	names := make([]string, topN)
	for i := 0; i < topN; i++ {
		values[i] = folds[topN-1-i]
		names[i] = top[topN-1-i].Motif
	}

	p := plot.New()
	p.Title.Text = "Top Enriched Motifs"
	p.X.Label.Text = "Fold Enrichment"

	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return "", err
	}
	bars.Horizontal = true
	bars.Color = significantColor
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalY(names...)

	height := vg.Length(math.Max(4, float64(topN)*0.35)) * vg.Inch / 2
	return renderSVG(p, 8*vg.Inch, height)
}
