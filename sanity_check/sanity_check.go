package sanity_check

import (
	"fmt"

	"aptamotif_go/config" // Version control file
)

// Run performs a simple sanity check to ensure AptaMotif is
// running properly, printing a helpful message and version number.
func Run(args []string) {
	fmt.Printf("Successfully running AptaMotif! (%s)\n", config.Main_version)
}
