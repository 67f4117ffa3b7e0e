// Package batch evaluates the pipeline over many objects at once. Objects
// are independent, so the fan-out needs no shared state and no ordering.
package batch

import (
	"sync"

	"github.com/san-kum/transitlab/internal/transit"
)

// ObjectResult pairs one object's inputs with either its derived outputs or
// the error that stopped its computation. A failed object never aborts the
// rest of the batch; callers decide what to do with its Err.
type ObjectResult struct {
	Inputs  transit.SystemInputs
	Outputs transit.SystemOutputs
	Err     error
}

// Run computes every object concurrently and returns results in input order.
func Run(objects []transit.SystemInputs) []ObjectResult {
	results := make([]ObjectResult, len(objects))

	var wg sync.WaitGroup
	for i, in := range objects {
		wg.Add(1)
		go func(idx int, in transit.SystemInputs) {
			defer wg.Done()
			out, err := transit.ComputeAll(in)
			results[idx] = ObjectResult{Inputs: in, Outputs: out, Err: err}
		}(i, in)
	}
	wg.Wait()

	return results
}

// Failures counts the objects whose computation errored.
func Failures(results []ObjectResult) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
