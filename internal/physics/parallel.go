package physics

import "sync"

// minChunk is the smallest number of force rows worth handing to a goroutine.
const minChunk = 32

// parallelFor calls fn over [0, n) split into at most workers contiguous
// chunks and waits for all of them. It runs fn(0, n) inline when splitting
// would not pay off.
func parallelFor(n, workers int, fn func(start, end int)) {
	if workers > n/minChunk {
		workers = n / minChunk
	}
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
