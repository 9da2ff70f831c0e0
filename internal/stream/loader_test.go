package stream

import (
	"testing"
	"time"

	"github.com/Faultbox/wanderlands/internal/config"
	"github.com/Faultbox/wanderlands/internal/worldgen"
)

func TestSyncLoaderThrottle(t *testing.T) {
	cfg := config.Default()
	l := NewSyncLoader(42, cfg, 2)
	defer l.Close()

	for i := int32(0); i < 5; i++ {
		l.Dispatch(worldgen.ChunkCoord{X: i, Z: 0})
	}
	if l.PendingCount() != 5 {
		t.Fatalf("pending = %d after 5 dispatches, want 5", l.PendingCount())
	}

	// Re-dispatching a queued coordinate is a no-op.
	l.Dispatch(worldgen.ChunkCoord{X: 0, Z: 0})
	if l.PendingCount() != 5 {
		t.Fatalf("pending = %d after duplicate dispatch, want 5", l.PendingCount())
	}

	for _, want := range []int{2, 2, 1, 0} {
		batch := l.Poll()
		if len(batch) != want {
			t.Fatalf("Poll returned %d chunks, want %d", len(batch), want)
		}
	}
	if l.PendingCount() != 0 {
		t.Errorf("pending = %d after draining, want 0", l.PendingCount())
	}
}

func TestSyncLoaderPreservesDispatchOrder(t *testing.T) {
	cfg := config.Default()
	l := NewSyncLoader(42, cfg, 1)
	defer l.Close()

	coords := []worldgen.ChunkCoord{{X: 2, Z: 2}, {X: -1, Z: 0}, {X: 0, Z: 3}}
	for _, c := range coords {
		l.Dispatch(c)
	}
	for i, want := range coords {
		batch := l.Poll()
		if len(batch) != 1 {
			t.Fatalf("poll %d returned %d chunks, want 1", i, len(batch))
		}
		if batch[0].Coord != want {
			t.Errorf("poll %d returned %s, want %s", i, batch[0].Coord, want)
		}
	}
}

func TestSyncLoaderCancelOutside(t *testing.T) {
	cfg := config.Default()
	l := NewSyncLoader(42, cfg, 10)
	defer l.Close()

	keep := worldgen.ChunkCoord{X: 0, Z: 0}
	drop := worldgen.ChunkCoord{X: 9, Z: 9}
	l.Dispatch(keep)
	l.Dispatch(drop)

	l.CancelOutside(CoordSet{keep: {}})
	if l.PendingCount() != 1 {
		t.Fatalf("pending = %d after cancel, want 1", l.PendingCount())
	}

	batch := l.Poll()
	if len(batch) != 1 {
		t.Fatalf("Poll returned %d chunks, want 1", len(batch))
	}
	if batch[0].Coord != keep {
		t.Errorf("Poll returned %s, want %s", batch[0].Coord, keep)
	}
}

// drainPool polls until at least want chunks arrive or the deadline hits.
func drainPool(t *testing.T, l *PoolLoader, want int, deadline time.Duration) []*worldgen.ChunkData {
	t.Helper()
	stop := time.Now().Add(deadline)
	var got []*worldgen.ChunkData
	for len(got) < want {
		got = append(got, l.Poll()...)
		if time.Now().After(stop) {
			t.Fatalf("received %d chunks of %d before deadline", len(got), want)
		}
		time.Sleep(5 * time.Millisecond)
	}
	return got
}

func TestPoolLoaderGenerates(t *testing.T) {
	cfg := config.Default()
	l := NewPoolLoader(42, cfg, 2)
	defer l.Close()

	coord := worldgen.ChunkCoord{X: 3, Z: -2}
	l.Dispatch(coord)
	if l.PendingCount() != 1 {
		t.Fatalf("pending = %d after dispatch, want 1", l.PendingCount())
	}

	chunks := drainPool(t, l, 1, 30*time.Second)
	if chunks[0].Coord != coord {
		t.Fatalf("received chunk %s, want %s", chunks[0].Coord, coord)
	}
	if l.PendingCount() != 0 {
		t.Errorf("pending = %d after drain, want 0", l.PendingCount())
	}

	// Pool output matches synchronous generation exactly.
	direct := worldgen.NewChunkGenerator(42, cfg).GenerateChunk(coord)
	for i := range direct.Terrain.Heights {
		if chunks[0].Terrain.Heights[i] != direct.Terrain.Heights[i] {
			t.Fatalf("pool and direct heights differ at index %d", i)
		}
	}
}

func TestPoolLoaderCancelledResultDropped(t *testing.T) {
	cfg := config.Default()
	l := NewPoolLoader(42, cfg, 1)
	defer l.Close()

	coord := worldgen.ChunkCoord{X: 5, Z: 5}
	l.Dispatch(coord)
	l.CancelOutside(CoordSet{})
	if l.PendingCount() != 0 {
		t.Fatalf("pending = %d after cancel, want 0", l.PendingCount())
	}

	// The worker still finishes the chunk eventually, but Poll must never
	// surface it.
	stop := time.Now().Add(2 * time.Second)
	for time.Now().Before(stop) {
		if batch := l.Poll(); len(batch) != 0 {
			t.Fatalf("cancelled chunk surfaced: %s", batch[0].Coord)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestPoolLoaderDuplicateDispatch(t *testing.T) {
	cfg := config.Default()
	l := NewPoolLoader(42, cfg, 1)
	defer l.Close()

	coord := worldgen.ChunkCoord{X: 1, Z: 1}
	l.Dispatch(coord)
	l.Dispatch(coord)
	if l.PendingCount() != 1 {
		t.Errorf("pending = %d after duplicate dispatch, want 1", l.PendingCount())
	}

	chunks := drainPool(t, l, 1, 30*time.Second)
	if len(chunks) != 1 || chunks[0].Coord != coord {
		t.Errorf("expected exactly one chunk for %s", coord)
	}
}

func TestPoolLoaderCloseIdempotent(t *testing.T) {
	cfg := config.Default()
	l := NewPoolLoader(42, cfg, 1)
	l.Close()
	l.Close() // must not panic
}

func TestPoolLoaderQueueFitsLoadWindow(t *testing.T) {
	cfg := config.Default()
	l := NewPoolLoader(42, cfg, 1)
	if cap(l.jobs) < poolQueueDepth {
		t.Errorf("jobs capacity %d below minimum %d", cap(l.jobs), poolQueueDepth)
	}
	l.Close()

	// A load radius whose window exceeds the minimum must get a queue
	// big enough to hold every required coordinate at once.
	wide := config.Default()
	wide.World.LoadRadius = 20
	window := int(wide.World.LoadRadius)*2 + 1
	want := window * window

	lw := NewPoolLoader(42, wide, 1)
	defer lw.Close()
	if cap(lw.jobs) < want {
		t.Errorf("jobs capacity %d cannot hold %d required coordinates", cap(lw.jobs), want)
	}
	if cap(lw.results) < want {
		t.Errorf("results capacity %d cannot hold %d required coordinates", cap(lw.results), want)
	}
}
