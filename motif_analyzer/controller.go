package motif_analyzer

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"aptamotif_go/common"
	"aptamotif_go/config"
)

func Run_motif_analyzer(args []string) {

	fs := flag.NewFlagSet("motif_analyzer", flag.ExitOnError) // Isolated flag set specifically for "motif_analyzer" subcommand

	inFile := fs.String("in_file", "", "FASTA file input (plain or gzipped)")
	outFile := fs.String("out_file", "motif_report", "Prefix for CSV/HTML output")
	poolName := fs.String("pool", "Default_N71", "Pool configuration to trim with")
	poolFile := fs.String("pool_config", "", "JSON file with additional pool configurations")
	noTrim := fs.Bool("no_trim", false, "Skip primer trimming; analyze sequences as-is")
	minLength := fs.Int("min_length", 5, "Minimum motif length")
	maxLength := fs.Int("max_length", 15, "Maximum motif length")
	minOccurrences := fs.Int("min_occurrences", 2, "Minimum sequences sharing a motif")
	regionLength := fs.Int("region_length", 0, "Expected random-region length (0 = take from pool config)")
	fdr := fs.Float64("fdr", 0.05, "FDR significance threshold")
	maxCandidates := fs.Int("max_candidates", 0, "Hard cap on candidate motifs, 0 disables")
	gcAdjust := fs.Bool("gc_adjust", false, "Also run the GC-composition-aware null model")
	csvOut := fs.Bool("csv_out", false, "Write the result table to CSV")
	htmlOut := fs.Bool("html", false, "Write an HTML report with figures")
	permuteMotif := fs.String("permute_motif", "", "Run a permutation cross-check for this motif")
	permutations := fs.Int("permutations", 1000, "Number of permutation trials")
	seed := fs.Int64("seed", 1, "Seed for the permutation test RNG")

	err := fs.Parse(args) // Parse inputs
	if err != nil {
		fmt.Println("Error parsing flags:", err)
		os.Exit(1)
	}

	if len(fs.Args()) > 0 { // If unparsed arguments remain:
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}

	if *inFile == "" {
		fmt.Println("Error: in_file is required")
		fs.Usage()
		os.Exit(1)
	}

	// Resolve the pool configuration (built-ins, optionally extended from JSON)
	pools := config.DefaultPools()
	if *poolFile != "" {
		extra, err := config.LoadPools(*poolFile)
		if err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		for name, pool := range extra {
			pools[name] = pool
		}
	}
	pool, ok := pools[*poolName]
	if !ok {
		fmt.Printf("Error: unknown pool configuration %q\n", *poolName)
		os.Exit(1)
	}
	if !*noTrim {
		if err := pool.Validate(); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	}

	cfg := config.AnalysisConfig{
		MinLength:      *minLength,
		MaxLength:      *maxLength,
		MinOccurrences: *minOccurrences,
		RegionLength:   *regionLength,
		FDRThreshold:   *fdr,
		BaseProbs:      config.UniformBaseProbs(),
		MaxCandidates:  *maxCandidates,
	}
	if cfg.RegionLength == 0 {
		cfg.RegionLength = pool.RandomRegionLength
	}
	if err := cfg.Validate(); err != nil { // Fail fast, before any mining
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	sequences, err := common.ParseFastaMap(*inFile)
	if err != nil {
		fmt.Println("Failed to parse FASTA:", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d sequences from %s\n", len(sequences), *inFile)

	var skipped []string
	regions := sequences
	if !*noTrim {
		regions, skipped = common.ExtractRandomRegions(sequences, pool.ForwardPrimer, pool.ReverseComplement)
		for _, id := range skipped {
			fmt.Printf("Warning: primers not found in %s, sequence skipped\n", id)
		}
		fmt.Printf("Extracted %d random regions\n", len(regions))
	}

	candidates, err := FindMotifs(regions, cfg)
	if err != nil {
		fmt.Println("Motif discovery failed:", err)
		os.Exit(1)
	}
	fmt.Printf("Found %d motifs after redundancy reduction\n", len(candidates))

	var records []EnrichmentRecord
	if len(regions) > 0 {
		records, err = CalculateEnrichment(candidates, len(regions), cfg)
		if err != nil {
			fmt.Println("Enrichment analysis failed:", err)
			os.Exit(1)
		}
	}

	var gcResult *GCAdjusted
	if *gcAdjust {
		result, err := AdjustForGCBias(records, regions, cfg)
		if err != nil {
			fmt.Println("GC adjustment failed:", err)
			os.Exit(1)
		}
		gcResult = &result
		fmt.Printf("GC-adjusted model: average GC content %.1f%%\n", result.AvgGC*100)
	}

	significant := 0
	for _, rec := range records {
		if rec.Significant {
			significant++
		}
	}
	fmt.Printf("%d significant motifs at FDR <= %g\n", significant, cfg.FDRThreshold)

	if *permuteMotif != "" {
		p, err := PermutationTest(regions, *permuteMotif, *permutations, *seed)
		if err != nil {
			fmt.Println("Permutation test failed:", err)
			os.Exit(1)
		}
		fmt.Printf("Permutation test for %s: empirical p = %.4e (%d trials)\n", *permuteMotif, p, *permutations)
	}

	if *csvOut {
		if err := WriteCSVReport(*outFile, records, gcResult); err != nil {
			fmt.Println("Failed to write CSV:", err)
		} else {
			fmt.Printf("Wrote motif enrichment table to CSV file: %s.csv\n", *outFile)
		}
	}

	if *htmlOut {
		var svgVolcano, svgHeatmap, svgLengths, svgEnrichment string

		if len(records) == 0 {
			placeholder := "<p>No motifs found</p>"
			svgVolcano, svgHeatmap, svgLengths, svgEnrichment = placeholder, placeholder, placeholder, placeholder
		} else {
			var wg sync.WaitGroup
			wg.Add(4) // Number of concurrent graphs

			go func() {
				defer wg.Done()
				if s, err := GenerateVolcanoPlotSVG(records, cfg.FDRThreshold); err == nil {
					svgVolcano = s
				} else {
					fmt.Println("Failed to generate volcano plot:", err)
					svgVolcano = "<p>Graph unavailable</p>"
				}
			}()

			go func() {
				defer wg.Done()
				if s, err := GenerateHeatmapSVG(records, regions, 20); err == nil {
					svgHeatmap = s
				} else {
					fmt.Println("Failed to generate heatmap:", err)
					svgHeatmap = "<p>Graph unavailable</p>"
				}
			}()

			go func() {
				defer wg.Done()
				if s, err := GenerateLengthDistributionSVG(records); err == nil {
					svgLengths = s
				} else {
					fmt.Println("Failed to generate length distribution:", err)
					svgLengths = "<p>Graph unavailable</p>"
				}
			}()

			go func() {
				defer wg.Done()
				if s, err := GenerateEnrichmentBarSVG(records, 15); err == nil {
					svgEnrichment = s
				} else {
					fmt.Println("Failed to generate enrichment plot:", err)
					svgEnrichment = "<p>Graph unavailable</p>"
				}
			}()

			wg.Wait()
		}

		summary := ReportSummary{
			PoolName:          *poolName,
			TotalSequences:    len(sequences),
			SkippedSequences:  len(skipped),
			MotifsFound:       len(records),
			SignificantMotifs: significant,
			FDRThreshold:      cfg.FDRThreshold,
		}
		if gcResult != nil {
			summary.GCAdjusted = true
			summary.AvgGC = gcResult.AvgGC
		}

		if err := WriteHTMLReport(*outFile, summary, records, svgVolcano, svgHeatmap, svgLengths, svgEnrichment); err != nil {
			fmt.Println("Failed to write HTML:", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote HTML report: %s.html\n", *outFile)
	}

	if !*csvOut && !*htmlOut {
		// No file output requested: print the ranked table instead
		fmt.Println("Motif\tLength\tCount\tExpected\tFold\tP_value\tFDR\tSignificant")
		for _, rec := range records {
			fmt.Printf("%s\t%d\t%d\t%.4f\t%s\t%.4e\t%.4e\t%s\n",
				rec.Motif, rec.Length, rec.Count, rec.ExpectedCount,
				formatFold(rec.FoldEnrichment), rec.PValue, rec.FDR, formatBool(rec.Significant))
		}
	}
}
