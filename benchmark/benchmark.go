// benchmark.go
// A reusable benchmarking module for AptaMotif
// Measures execution time and memory usage for any wrapped function

package benchmark

import (
	"fmt"
	"os"
	"runtime"
	"time"
)

// Result captures the resource usage of one benchmarked run.
type Result struct {
	Label          string
	Elapsed        time.Duration
	AllocBytes     uint64
	TotalAllocs    uint64
	PeakHeapBytes  uint64
	GCCycles       uint32
	CPUCores       int
	GoroutineDelta int
}

// Run wraps any function to measure its runtime and memory usage,
// printing a report and returning the measurements.
func Run(label string, f func()) Result {
	fmt.Printf("[Benchmark] Running: %s\n", label)

	// Snapshot environment info
	fmt.Println("[Benchmark] Timestamp:", time.Now().Format(time.RFC1123))
	host, err := os.Hostname()
	if err == nil {
		fmt.Println("[Benchmark] Hostname:", host)
	}
	fmt.Println("[Benchmark] Go Version:", runtime.Version())
	fmt.Printf("[Benchmark] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	// Prepare for benchmark
	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	start := time.Now()
	startGoroutines := runtime.NumGoroutine()

	// Run benchmarked function
	f()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&memEnd)
	endGoroutines := runtime.NumGoroutine()

	res := Result{
		Label:          label,
		Elapsed:        elapsed,
		AllocBytes:     memEnd.Alloc - memStart.Alloc,
		TotalAllocs:    memEnd.TotalAlloc - memStart.TotalAlloc,
		PeakHeapBytes:  memEnd.HeapAlloc,
		GCCycles:       memEnd.NumGC - memStart.NumGC,
		CPUCores:       runtime.NumCPU(),
		GoroutineDelta: endGoroutines - startGoroutines,
	}

	// Report resource usage
	fmt.Printf("[Benchmark] Time Elapsed: %v\n", res.Elapsed)
	fmt.Printf("[Benchmark] Memory Used: %.2f MB\n", float64(res.AllocBytes)/1024.0/1024.0)
	fmt.Printf("[Benchmark] Total Allocated: %.2f MB\n", float64(res.TotalAllocs)/1024.0/1024.0)
	fmt.Printf("[Benchmark] Peak Heap: %.2f MB\n", float64(res.PeakHeapBytes)/1024.0/1024.0)
	fmt.Printf("[Benchmark] GC Cycles: %d\n", res.GCCycles)
	fmt.Printf("[Benchmark] CPU Cores: %d\n", res.CPUCores)
	fmt.Printf("[Benchmark] Goroutines: %d -> %d\n", startGoroutines, endGoroutines)
	fmt.Println("[Benchmark] ----------------------------------------")

	return res
}
