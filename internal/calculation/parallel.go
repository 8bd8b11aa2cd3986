package calculation

import (
	"context"
	"sync"
)

// parallelMap runs fn over every job with at most workers goroutines in
// flight. Results keep the order of jobs. The first error (by job index) is
// returned; jobs not yet started when ctx is cancelled are skipped.
func parallelMap[J, R any](ctx context.Context, workers int, jobs []J, fn func(int, J) (R, error)) ([]R, error) {
	results := make([]R, len(jobs))
	errs := make([]error, len(jobs))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, max(workers, 1))

	for i, job := range jobs {
		wg.Add(1)
		go func(i int, job J) {
			defer wg.Done()
			semaphore <- struct{}{}        // Acquire semaphore
			defer func() { <-semaphore }() // Release semaphore

			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			results[i], errs[i] = fn(i, job)
		}(i, job)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
