//go:build js

package worldgen

// fillGrid runs fn for every index in [0, total) sequentially. Browser
// builds have no worker threads to fan out to.
func fillGrid(total int, fn func(idx int)) {
	for idx := 0; idx < total; idx++ {
		fn(idx)
	}
}
