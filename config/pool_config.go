package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// PoolConfig describes a SELEX pool layout: the fixed primers flanking the
// random region. Sequences are trimmed to the stretch between ForwardPrimer
// and ReverseComplement before any motif analysis.
type PoolConfig struct {
	ForwardPrimer      string `json:"forward_primer"`
	ReverseComplement  string `json:"reverse_complement"`
	RandomRegionLength int    `json:"random_region_length"`
	Description        string `json:"description"`
}

// DefaultPools returns the built-in pool configurations.
func DefaultPools() map[string]PoolConfig {
	return map[string]PoolConfig{
		"Default_N71": {
			ForwardPrimer:      "TTCTAATACGACTCACTATAGGGAGATACCAGCTTATTCAATT",
			ReverseComplement:  "AGATAGTAAGTGCAATCT",
			RandomRegionLength: 71,
			Description:        "Standard N71 pool",
		},
	}
}

// Validate checks that a pool configuration is usable for trimming.
func (p PoolConfig) Validate() error {
	if p.ForwardPrimer == "" || p.ReverseComplement == "" {
		return fmt.Errorf("invalid configuration: pool primers must be non-empty")
	}
	if p.RandomRegionLength < 1 {
		return fmt.Errorf("invalid configuration: random_region_length must be positive (got %d)", p.RandomRegionLength)
	}
	return nil
}

// LoadPools reads named pool configurations from a JSON file. Primer strings
// are normalized to uppercase on the way in.
func LoadPools(file string) (map[string]PoolConfig, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read pool config: %w", err)
	}
	pools := make(map[string]PoolConfig)
	if err := json.Unmarshal(data, &pools); err != nil {
		return nil, fmt.Errorf("failed to parse pool config: %w", err)
	}
	for name, pool := range pools {
		pool.ForwardPrimer = strings.ToUpper(strings.TrimSpace(pool.ForwardPrimer))
		pool.ReverseComplement = strings.ToUpper(strings.TrimSpace(pool.ReverseComplement))
		pools[name] = pool
	}
	return pools, nil
}

// SavePools writes pool configurations to a JSON file in the same layout
// LoadPools reads.
func SavePools(file string, pools map[string]PoolConfig) error {
	data, err := json.MarshalIndent(pools, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(file, data, 0644)
}
