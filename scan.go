package acmatch

import (
	"runtime"
	"sync"
)

// ScanResult pairs an input text's index with the Locations found in it,
// preserving the order of the texts slice passed to ScanAll regardless
// of which goroutine finished first.
type ScanResult struct {
	Index     int
	Locations []Location
}

// ScanAll runs All(text, 0) over every text in texts concurrently across
// workers goroutines and returns one ScanResult per text, in input
// order. If workers <= 0, it defaults to runtime.NumCPU()*2. Safe to
// call repeatedly and concurrently with other queries against the same
// Automaton, since no query mutates shared state.
//
// Grounded in the teacher's fixed-size worker pool over a channel
// (internal/scheduler/scheduler.go), generalized from "one job per file"
// to "one job per input text"; at most workers goroutines share the jobs.
func (a *Automaton) ScanAll(texts [][]byte, workers int) []ScanResult {
	if workers <= 0 {
		workers = runtime.NumCPU() * 2
	}
	if workers > len(texts) && len(texts) > 0 {
		workers = len(texts)
	}

	type job struct {
		index int
		text  []byte
	}

	jobs := make(chan job, len(texts))
	for i, t := range texts {
		jobs <- job{index: i, text: t}
	}
	close(jobs)

	results := make([]ScanResult, len(texts))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.index] = ScanResult{Index: j.index, Locations: a.All(j.text, 0)}
			}
		}()
	}
	wg.Wait()

	if a.logger != nil {
		a.logger.Debug("scan batch complete", "id", a.id, "texts", len(texts), "workers", workers)
	}

	return results
}
