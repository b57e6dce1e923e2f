// Package parallel splits element loops across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum elements per goroutine.
}

// DefaultConfig returns defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4096,
	}
}

// Sequential returns a Config that never spawns goroutines.
func Sequential() Config {
	return Config{}
}

// Range calls f(start, end) on disjoint chunks that together cover [0, n).
// It runs f once on the calling goroutine when parallelism is disabled or n
// is below MinChunkSize. Range returns after every call has finished.
func Range(n int, cfg Config, f func(start, end int)) {
	if n <= 0 {
		return
	}
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < cfg.MinChunkSize {
		f(0, n)
		return
	}

	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}

// For executes f(i) for i in [0, n), split as Range splits it.
func For(n int, cfg Config, f func(i int)) {
	Range(n, cfg, func(start, end int) {
		for i := start; i < end; i++ {
			f(i)
		}
	})
}
