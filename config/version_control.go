package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v1.1.0"

	// Modular tools
	Benchmark           = "v1.0.0"
	Motif_Analyzer      = "v1.1.0"
	Structure_Predictor = "v1.0.0"
	Pool_Sim            = "v1.0.0"
	Sanity_check        = "v1.0.0"
)
