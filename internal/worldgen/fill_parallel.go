//go:build !js

package worldgen

import (
	"runtime"
	"sync"
)

// fillGrid runs fn for every index in [0, total), splitting the range into
// contiguous bands across the available CPUs. fn must not touch any index
// other than its own.
func fillGrid(total int, fn func(idx int)) {
	workers := runtime.GOMAXPROCS(0)
	if workers > total {
		workers = total
	}
	if workers <= 1 {
		for idx := 0; idx < total; idx++ {
			fn(idx)
		}
		return
	}

	band := (total + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < total; start += band {
		end := start + band
		if end > total {
			end = total
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for idx := start; idx < end; idx++ {
				fn(idx)
			}
		}(start, end)
	}
	wg.Wait()
}
