package stream

import (
	"github.com/Faultbox/wanderlands/internal/config"
	"github.com/Faultbox/wanderlands/internal/worldgen"
)

// defaultChunksPerPoll bounds how many chunks a SyncLoader generates per
// Poll, so a frame never pays for more than a couple of generations.
const defaultChunksPerPoll = 2

// SyncLoader generates chunks synchronously inside Poll, a fixed number
// per call. It is the cooperative single-threaded counterpart of
// PoolLoader for targets without worker threads.
type SyncLoader struct {
	gen        *worldgen.ChunkGenerator
	queue      []worldgen.ChunkCoord
	queued     map[worldgen.ChunkCoord]struct{}
	maxPerPoll int
}

// NewSyncLoader creates a throttled synchronous loader. maxPerPoll <= 0
// falls back to the default throttle.
func NewSyncLoader(seed uint32, cfg *config.Config, maxPerPoll int) *SyncLoader {
	if maxPerPoll <= 0 {
		maxPerPoll = defaultChunksPerPoll
	}
	return &SyncLoader{
		gen:        worldgen.NewChunkGenerator(seed, cfg),
		queued:     make(map[worldgen.ChunkCoord]struct{}),
		maxPerPoll: maxPerPoll,
	}
}

// Dispatch enqueues a coordinate unless it is already queued.
func (l *SyncLoader) Dispatch(coord worldgen.ChunkCoord) {
	if _, ok := l.queued[coord]; ok {
		return
	}
	l.queued[coord] = struct{}{}
	l.queue = append(l.queue, coord)
}

// Poll generates up to maxPerPoll queued chunks and returns them,
// spreading the remaining work over later calls.
func (l *SyncLoader) Poll() []*worldgen.ChunkData {
	var batch []*worldgen.ChunkData
	for len(l.queue) > 0 && len(batch) < l.maxPerPoll {
		coord := l.queue[0]
		l.queue = l.queue[1:]
		if _, ok := l.queued[coord]; !ok {
			// Cancelled while waiting in the queue.
			continue
		}
		delete(l.queued, coord)
		batch = append(batch, l.gen.GenerateChunk(coord))
	}
	return batch
}

// PendingCount returns the number of queued coordinates.
func (l *SyncLoader) PendingCount() int {
	return len(l.queued)
}

// CancelOutside forgets queued coordinates outside the required set.
func (l *SyncLoader) CancelOutside(required CoordSet) {
	for coord := range l.queued {
		if !required.Contains(coord) {
			delete(l.queued, coord)
		}
	}
}

// Close is a no-op; the loader holds no resources.
func (l *SyncLoader) Close() {}
