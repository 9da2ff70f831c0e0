// Package stream keeps the set of loaded chunks in sync with an observer
// moving through the world: it dispatches missing coordinates to a chunk
// loader, drains completed results, and evicts chunks that fall outside
// the load radius.
package stream

import "github.com/Faultbox/wanderlands/internal/worldgen"

// CoordSet is a set of chunk coordinates.
type CoordSet map[worldgen.ChunkCoord]struct{}

// Contains reports set membership.
func (s CoordSet) Contains(coord worldgen.ChunkCoord) bool {
	_, ok := s[coord]
	return ok
}

// Loader produces chunk data asynchronously relative to the caller. All
// methods are called from the single goroutine that owns the world;
// implementations keep their pending bookkeeping there and never share it
// with generation workers.
type Loader interface {
	// Dispatch queues a coordinate for generation. Dispatching a
	// coordinate that is already pending is a no-op.
	Dispatch(coord worldgen.ChunkCoord)

	// Poll returns completed chunks without blocking. An empty batch
	// means nothing has finished yet.
	Poll() []*worldgen.ChunkData

	// PendingCount returns the number of dispatched, not yet delivered
	// coordinates.
	PendingCount() int

	// CancelOutside abandons every pending coordinate not in required.
	// Cancellation is best-effort: work already running is not
	// interrupted, its result is discarded on arrival.
	CancelOutside(required CoordSet)

	// Close releases loader resources. Results still in flight are
	// dropped.
	Close()
}
