package structure_predictor

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"

	"aptamotif_go/common"
	"aptamotif_go/config"
)

// PredictAll folds every sequence of the pool through the given strategy,
// fanning out across a worker pool. Sequences that fail to fold are
// reported back by ID; successful predictions are keyed by sequence ID.
func PredictAll(predictor Predictor, rnaSequences map[string]string) (map[string]Prediction, map[string]error) {
	ids := make([]string, 0, len(rnaSequences))
	for id := range rnaSequences {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	type result struct {
		pred Prediction
		err  error
	}
	results := make([]result, len(ids))

	numWorkers := runtime.NumCPU()
	jobs := make(chan int, numWorkers*2)
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				id := ids[i]
				seq := rnaSequences[id]
				structure, mfe, err := predictor.Predict(seq)
				results[i] = result{
					pred: Prediction{SeqID: id, Sequence: seq, Structure: structure, MFE: mfe},
					err:  err,
				}
			}
		}()
	}
	for i := range ids {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	predictions := make(map[string]Prediction, len(ids))
	failures := make(map[string]error)
	for i, id := range ids {
		if results[i].err != nil {
			failures[id] = results[i].err
			continue
		}
		predictions[id] = results[i].pred
	}
	return predictions, failures
}

// FormatPredictions renders predictions for text export, one block per
// sequence in ID order.
func FormatPredictions(predictions map[string]Prediction) string {
	ids := make([]string, 0, len(predictions))
	for id := range predictions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var sb strings.Builder
	for _, id := range ids {
		pred := predictions[id]
		sb.WriteString(fmt.Sprintf(">%s\n", id))
		sb.WriteString(fmt.Sprintf("Sequence: %s\n", pred.Sequence))
		sb.WriteString(fmt.Sprintf("Structure: %s\n", pred.Structure))
		sb.WriteString(fmt.Sprintf("MFE: %.2f kcal/mol\n", pred.MFE))
		sb.WriteString("\n")
	}
	return sb.String()
}

func Run(args []string) {

	fs := flag.NewFlagSet("structure_predictor", flag.ExitOnError)

	inFile := fs.String("in_file", "", "FASTA file input (DNA; converted to RNA)")
	outFile := fs.String("out_file", "structures", "Prefix for the structure text export")
	poolName := fs.String("pool", "Default_N71", "Pool configuration to trim with")
	poolFile := fs.String("pool_config", "", "JSON file with additional pool configurations")
	noTrim := fs.Bool("no_trim", false, "Skip primer trimming; fold sequences as-is")
	temperature := fs.Float64("temperature", 37, "Folding temperature in Celsius (RNAfold only)")
	engine := fs.String("engine", "auto", "Folding engine: auto, vienna or nussinov")
	elements := fs.Bool("elements", false, "Report shared structural elements")
	minOccurrences := fs.Int("min_occurrences", 2, "Minimum sequences sharing a structural element")

	if err := fs.Parse(args); err != nil {
		fmt.Println("Error parsing flags:", err)
		os.Exit(1)
	}

	if *inFile == "" {
		fmt.Println("Error: in_file is required")
		fs.Usage()
		os.Exit(1)
	}

	var predictor Predictor
	switch *engine {
	case "auto":
		predictor = SelectPredictor(*temperature)
	case "vienna":
		p := SelectPredictor(*temperature)
		if p.Name() != "RNAfold" {
			fmt.Println("Error: RNAfold requested but not found on PATH")
			os.Exit(1)
		}
		predictor = p
	case "nussinov":
		predictor = &NussinovPredictor{}
	default:
		fmt.Printf("Error: unknown engine %q\n", *engine)
		os.Exit(1)
	}
	fmt.Printf("Folding engine: %s\n", predictor.Name())

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

	sequences, err := common.ParseFastaMap(*inFile)
	if err != nil {
		fmt.Println("Failed to parse FASTA:", err)
		os.Exit(1)
	}

	regions := sequences
	if !*noTrim {
		var skipped []string
		regions, skipped = common.ExtractRandomRegions(sequences, pool.ForwardPrimer, pool.ReverseComplement)
		for _, id := range skipped {
			fmt.Printf("Warning: primers not found in %s, sequence skipped\n", id)
		}
	}

	// The folding pipeline shares only the trimmed-sequence map with the
	// motif pipeline; it has no dependency on enrichment results.
	rnaSequences := make(map[string]string, len(regions))
	for id, seq := range regions {
		rnaSequences[id] = common.DNAToRNA(seq)
	}

	predictions, failures := PredictAll(predictor, rnaSequences)
	for id, err := range failures {
		fmt.Printf("Error predicting structure for %s: %v\n", id, err)
	}
	fmt.Printf("Predicted structures for %d of %d sequences\n", len(predictions), len(rnaSequences))

	if err := os.WriteFile(*outFile+".txt", []byte(FormatPredictions(predictions)), 0644); err != nil {
		fmt.Println("Failed to write structures:", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote structures to %s.txt\n", *outFile)

	if *elements {
		shared := SharedElements(predictions, *minOccurrences)
		keys := make([]string, 0, len(shared))
		for key := range shared {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		fmt.Printf("Shared structural elements (>= %d sequences):\n", *minOccurrences)
		for _, key := range keys {
			fmt.Printf("  %s\t%d sequences\n", key, len(shared[key]))
		}
		if consensus := ConsensusStructure(predictions); consensus != "" {
			fmt.Printf("Consensus structure: %s\n", consensus)
		}
	}
}
