package main

import (
	"fmt"
	"os"
	"strings"

	"aptamotif_go/benchmark"
	version_control "aptamotif_go/config"
	"aptamotif_go/motif_analyzer"
	"aptamotif_go/pool_sim"
	"aptamotif_go/sanity_check"
	"aptamotif_go/structure_predictor"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`AptaMotif - Custom Help Menu
Usage:
  aptamotif <tool> [options]

Tools:
  motif_analyzer	Mine enriched motifs from a SELEX pool
  structure_predictor	Predict RNA secondary structures
  pool_sim		Generate a synthetic aptamer pool
  check			Run diagnostic test

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information

Benchmarking:
  -benchmark		Must be used in associtation with a tool.
			Displays computational resource usage and
			pertinent operating system information
  `,
	)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("AptaMotif - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tAptaMotif:\t\t%s\n", version_control.Main_version)
	fmt.Printf("\nModular tools:\n")
	fmt.Printf("\tMotif Analyzer:\t\t%s\n", version_control.Motif_Analyzer)
	fmt.Printf("\tStructure Predictor:\t%s\n", version_control.Structure_Predictor)
	fmt.Printf("\tPool Simulator:\t\t%s\n", version_control.Pool_Sim)
	fmt.Printf("\tSanity Check:\t\t%s\n", version_control.Sanity_check)
	fmt.Printf("\tBenchmark:\t\t%s\n", version_control.Benchmark)

	fmt.Println("")

	os.Exit(0)
}

// Main controller
func main() {

	// If no arguments are given, show help
	if len(os.Args) < 2 {
		printCustomHelp()
	}

	// Scan for executible-specific help flags
	for _, arg := range os.Args[1:] {
		if len(os.Args) < 3 {
			if arg == "-h" || arg == "-help" {
				printCustomHelp()
			}
		}
	}

	// Version request
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "-version" {
			printVersion()
		}
	}

	toolName := os.Args[1]
	toolArgs := os.Args[2:]

	// Check for global --benchmark flag
	benchmarking := false
	var cleanedArgs []string
	for _, arg := range toolArgs {
		if arg == "-benchmark" {
			benchmarking = true
		} else {
			cleanedArgs = append(cleanedArgs, arg)
		}
	}

	// Tool execution wrapper
	run := func() {
		switch toolName {
		case "motif_analyzer":
			motif_analyzer.Run_motif_analyzer(cleanedArgs)
		case "structure_predictor":
			structure_predictor.Run(cleanedArgs)
		case "pool_sim":
			pool_sim.Run(cleanedArgs)
		case "check":
			sanity_check.Run(cleanedArgs)
		default:
			fmt.Printf("Unknown tool: %s\n", toolName)
			os.Exit(1)
		}
	}

	if benchmarking {
		label := fmt.Sprintf("aptamotif %s %s", toolName, strings.Join(cleanedArgs, " "))
		benchmark.Run(label, run)
	} else {
		run()
	}
}
