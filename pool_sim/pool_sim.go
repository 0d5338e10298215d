package pool_sim

import (
	"compress/gzip"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"aptamotif_go/config"
)

// randRegion generates one random region of the given length and GC bias
// (0.0-1.0), drawing each base independently.
func randRegion(length int, gcBias float64, rng *rand.Rand) string {
	cWeight := gcBias / 2
	aWeight := (1 - gcBias) / 2
	tWeight := (1 - gcBias) / 2

	seq := make([]byte, length)
	for i := 0; i < length; i++ {
		r := rng.Float64()
		switch {
		case r < aWeight:
			seq[i] = 'A'
		case r < aWeight+tWeight:
			seq[i] = 'T'
		case r < aWeight+tWeight+cWeight:
			seq[i] = 'C'
		default:
			seq[i] = 'G'
		}
	}
	return string(seq)
}

// plantMotif overwrites a random stretch of the region with the motif.
// Regions shorter than the motif are returned unchanged.
func plantMotif(region, motif string, rng *rand.Rand) string {
	if len(motif) == 0 || len(motif) > len(region) {
		return region
	}
	pos := rng.Intn(len(region) - len(motif) + 1)
	return region[:pos] + motif + region[pos+len(motif):]
}

// wrapFasta wraps a sequence every `width` characters for FASTA formatting.
func wrapFasta(seq string, width int) string {
	var sb strings.Builder
	for i := 0; i < len(seq); i += width {
		end := i + width
		if end > len(seq) {
			end = len(seq)
		}
		sb.WriteString(seq[i:end])
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Generate builds a synthetic SELEX pool: each clone is forward primer +
// random region + reverse-complement tail, with the motif planted into
// roughly plantFraction of the regions.
func Generate(pool config.PoolConfig, count int, gcBias float64, motif string, plantFraction float64, namePrefix string, rng *rand.Rand) string {
	var sb strings.Builder
	for i := 1; i <= count; i++ {
		region := randRegion(pool.RandomRegionLength, gcBias, rng)
		if motif != "" && rng.Float64() < plantFraction {
			region = plantMotif(region, strings.ToUpper(motif), rng)
		}
		full := pool.ForwardPrimer + region + pool.ReverseComplement
		sb.WriteString(fmt.Sprintf(">%s_%d\n", namePrefix, i))
		sb.WriteString(wrapFasta(full, 60))
	}
	return sb.String()
}

func Run(args []string) {

	fs := flag.NewFlagSet("pool_sim", flag.ExitOnError)

	count := fs.Int("count", 50, "Number of clones to generate")
	gcBias := fs.Float64("gc_bias", 0.5, "GC bias of the random region (0.0-0.99)")
	motif := fs.String("motif", "", "Motif to plant into a fraction of the regions")
	plantFraction := fs.Float64("plant_fraction", 0.5, "Fraction of clones receiving the planted motif")
	poolName := fs.String("pool", "Default_N71", "Pool configuration providing primers and region length")
	poolFile := fs.String("pool_config", "", "JSON file with additional pool configurations")
	namePrefix := fs.String("name", "Clone", "Prefix for FASTA headers")
	seed := fs.Int64("seed", 0, "Seed for RNG (0 = time-based)")
	outFile := fs.String("out_file", "", "Output FASTA file")
	gzipOption := fs.Bool("gzip", false, "Compress output using gzip (.gz)")

	if err := fs.Parse(args); err != nil {
		fmt.Println("Error parsing flags:", err)
		os.Exit(1)
	}

	if *gcBias < 0.0 || *gcBias > 0.99 {
		fmt.Println("GC bias must be between 0.0 and 0.99")
		os.Exit(1)
	}
	if *plantFraction < 0.0 || *plantFraction > 1.0 {
		fmt.Println("plant_fraction must be between 0.0 and 1.0")
		os.Exit(1)
	}

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
	if err := pool.Validate(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	if *motif != "" && len(*motif) > pool.RandomRegionLength {
		fmt.Println("Error: motif is longer than the random region")
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	fasta := Generate(pool, *count, *gcBias, *motif, *plantFraction, *namePrefix, rng)

	if *outFile == "" {
		if *gzipOption {
			fmt.Fprintln(os.Stderr, "Cannot gzip to stdout directly. Please specify an output file.")
			os.Exit(1)
		}
		fmt.Print(fasta)
		return
	}

	outputPath := *outFile
	if *gzipOption {
		outputPath += ".gz"
		file, err := os.Create(outputPath)
		if err != nil {
			fmt.Println("Error creating gzip file:", err)
			os.Exit(1)
		}
		defer file.Close()

		writer := gzip.NewWriter(file)
		defer writer.Close()

		if _, err := writer.Write([]byte(fasta)); err != nil {
			fmt.Println("Error writing compressed data:", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d clones to %s\n", *count, outputPath)
	} else {
		if err := os.WriteFile(outputPath, []byte(fasta), 0644); err != nil {
			fmt.Println("Error writing to file:", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d clones to %s\n", *count, outputPath)
	}
}
