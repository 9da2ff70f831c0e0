package stream

import (
	"runtime"
	"sync"

	"github.com/Faultbox/wanderlands/internal/config"
	"github.com/Faultbox/wanderlands/internal/worldgen"
)

// poolQueueDepth is the minimum job/result queue capacity; larger load
// radii grow it to fit the whole required window.
const poolQueueDepth = 1024

// PoolLoader generates chunks on a fixed-size pool of worker goroutines.
// Dispatch and Poll touch only the channels; the pending set lives on the
// owning goroutine, so generation runs with zero lock contention.
type PoolLoader struct {
	jobs    chan worldgen.ChunkCoord
	results chan *worldgen.ChunkData
	done    chan struct{}
	closing sync.Once

	// Owned by the world goroutine, never touched by workers.
	pending map[worldgen.ChunkCoord]struct{}
}

// NewPoolLoader starts workers goroutines generating with the given seed
// and config. workers <= 0 means one per available CPU.
func NewPoolLoader(seed uint32, cfg *config.Config, workers int) *PoolLoader {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// The queue must hold the full streaming window, or a required
	// coordinate could be dropped at dispatch time.
	depth := poolQueueDepth
	if window := int(cfg.World.LoadRadius)*2 + 1; window*window > depth {
		depth = window * window
	}

	l := &PoolLoader{
		jobs:    make(chan worldgen.ChunkCoord, depth),
		results: make(chan *worldgen.ChunkData, depth),
		done:    make(chan struct{}),
		pending: make(map[worldgen.ChunkCoord]struct{}),
	}

	for i := 0; i < workers; i++ {
		go l.worker(seed, cfg)
	}

	return l
}

// worker owns an independent generator; generation is deterministic, so
// every worker's generator produces identical output for a coordinate.
func (l *PoolLoader) worker(seed uint32, cfg *config.Config) {
	gen := worldgen.NewChunkGenerator(seed, cfg)
	for {
		select {
		case <-l.done:
			return
		case coord := <-l.jobs:
			chunk := gen.GenerateChunk(coord)
			select {
			case l.results <- chunk:
			case <-l.done:
				// Receiver is gone; the chunk is simply discarded.
				return
			}
		}
	}
}

// Dispatch queues a coordinate unless it is already pending.
func (l *PoolLoader) Dispatch(coord worldgen.ChunkCoord) {
	if _, ok := l.pending[coord]; ok {
		return
	}
	select {
	case l.jobs <- coord:
		l.pending[coord] = struct{}{}
	default:
		// Queue full; the coordinate stays unpended and will be
		// redispatched on a later update if still required.
	}
}

// Poll drains every completed chunk without blocking. Results whose
// coordinate was cancelled in the meantime are dropped here.
func (l *PoolLoader) Poll() []*worldgen.ChunkData {
	var batch []*worldgen.ChunkData
	for {
		select {
		case chunk := <-l.results:
			if _, ok := l.pending[chunk.Coord]; !ok {
				continue
			}
			delete(l.pending, chunk.Coord)
			batch = append(batch, chunk)
		default:
			return batch
		}
	}
}

// PendingCount returns the number of in-flight coordinates.
func (l *PoolLoader) PendingCount() int {
	return len(l.pending)
}

// CancelOutside forgets pending coordinates outside the required set.
// Workers already generating them are not interrupted; their results fail
// the pending check in Poll and are dropped.
func (l *PoolLoader) CancelOutside(required CoordSet) {
	for coord := range l.pending {
		if !required.Contains(coord) {
			delete(l.pending, coord)
		}
	}
}

// Close stops the workers. Safe to call more than once.
func (l *PoolLoader) Close() {
	l.closing.Do(func() {
		close(l.done)
	})
}
