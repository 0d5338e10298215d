package motif_analyzer

import (
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"strings"
	"sync"
)

// PermutationTest builds an empirical null for one motif: every trial
// shuffles each sequence's characters independently and counts in how many
// shuffled sequences the motif reappears. The empirical p-value is
// (#{trials with null count >= observed} + 1) / (trials + 1), so it can
// never be exactly zero. Trials run in parallel; each trial derives its RNG
// from the seed and its own index, keeping results reproducible regardless
// of scheduling.
//
// O(trials * total sequence length) - a slow cross-check, not a ranking
// mechanism.
func PermutationTest(sequences map[string]string, motif string, trials int, seed int64) (float64, error) {
	if motif == "" {
		return 0, fmt.Errorf("invalid configuration: permutation test needs a motif")
	}
	if trials < 1 {
		return 0, fmt.Errorf("invalid configuration: permutation trials must be positive (got %d)", trials)
	}

	ordered := make([]string, 0, len(sequences))
	for id := range sequences {
		ordered = append(ordered, id)
	}
	sort.Strings(ordered)

	observed := 0
	for _, id := range ordered {
		if strings.Contains(sequences[id], motif) {
			observed++
		}
	}

	nullCounts := make([]int, trials)
	numWorkers := runtime.NumCPU()
	jobs := make(chan int, numWorkers*2)
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for trial := range jobs {
				rng := rand.New(rand.NewSource(seed + int64(trial)))
				count := 0
				for _, id := range ordered {
					shuffled := []byte(sequences[id])
					rng.Shuffle(len(shuffled), func(i, j int) {
						shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
					})
					if strings.Contains(string(shuffled), motif) {
						count++
					}
				}
				nullCounts[trial] = count
			}
		}()
	}
	for trial := 0; trial < trials; trial++ {
		jobs <- trial
	}
	close(jobs)
	wg.Wait()

	atLeast := 0
	for _, count := range nullCounts {
		if count >= observed {
			atLeast++
		}
	}
	return float64(atLeast+1) / float64(trials+1), nil
}
