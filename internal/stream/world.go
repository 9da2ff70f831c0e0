package stream

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/wanderlands/internal/config"
	"github.com/Faultbox/wanderlands/internal/logger"
	"github.com/Faultbox/wanderlands/internal/worldgen"
)

// Stats is a snapshot of the streaming state for telemetry.
type Stats struct {
	LoadedChunks  int
	PendingChunks int
	CenterChunk   worldgen.ChunkCoord
}

// World streams chunks in and out of memory around a moving observer. It
// is single-goroutine: Update, Chunks and Stats must all be called from
// the goroutine that owns the world. Generation itself happens on the
// loader's workers.
type World struct {
	seed       uint32
	cfg        *config.Config
	loadRadius int32
	loader     Loader
	// newLoader rebuilds the loader on config reload, preserving
	// whichever loader kind the world was constructed with.
	newLoader func(seed uint32, cfg *config.Config) Loader
	loaded    map[worldgen.ChunkCoord]*worldgen.ChunkData
	center    worldgen.ChunkCoord
}

// New creates a streaming world and synchronously generates the chunk at
// the origin so the caller has terrain on the very first frame.
func New(cfg *config.Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("streaming world config: %w", err)
	}

	seed := cfg.World.Seed
	center := worldgen.ChunkCoord{}
	initial := worldgen.NewChunkGenerator(seed, cfg).GenerateChunk(center)

	w := &World{
		seed:       seed,
		cfg:        cfg,
		loadRadius: cfg.World.LoadRadius,
		loader:     newDefaultLoader(seed, cfg),
		newLoader:  newDefaultLoader,
		loaded:     map[worldgen.ChunkCoord]*worldgen.ChunkData{center: initial},
		center:     center,
	}

	if logger.Log != nil {
		logger.Log.Info("streaming world created",
			zap.Uint32("seed", seed),
			zap.Int32("load_radius", w.loadRadius))
	}
	return w, nil
}

// Update advances the streaming state for the current observer position:
// completed chunks are merged first, then the required window is
// recomputed, chunks outside it are evicted, in-flight work outside it is
// cancelled, and missing coordinates are dispatched. Draining before the
// window moves guarantees a chunk finishing this tick is never evicted in
// the same tick it arrives.
func (w *World) Update(observerPos mgl32.Vec3) {
	for _, chunk := range w.loader.Poll() {
		w.loaded[chunk.Coord] = chunk
	}

	w.center = WorldToChunk(observerPos)
	required := RequiredCoords(w.center, w.loadRadius)

	evicted := 0
	for coord := range w.loaded {
		if !required.Contains(coord) {
			delete(w.loaded, coord)
			evicted++
		}
	}
	w.loader.CancelOutside(required)

	dispatched := 0
	for coord := range required {
		if _, ok := w.loaded[coord]; ok {
			continue
		}
		w.loader.Dispatch(coord)
		dispatched++
	}

	if logger.Log != nil && (evicted > 0 || dispatched > 0) {
		logger.Log.Debug("streaming window updated",
			zap.String("center", w.center.String()),
			zap.Int("evicted", evicted),
			zap.Int("dispatched", dispatched))
	}
}

// Chunks exposes the loaded map by reference. The view is valid until the
// next Update call; entries may be evicted after that.
func (w *World) Chunks() map[worldgen.ChunkCoord]*worldgen.ChunkData {
	return w.loaded
}

// Stats returns streaming telemetry.
func (w *World) Stats() Stats {
	return Stats{
		LoadedChunks:  len(w.loaded),
		PendingChunks: w.loader.PendingCount(),
		CenterChunk:   w.center,
	}
}

// Seed returns the world seed, for save-state round-tripping.
func (w *World) Seed() uint32 {
	return w.seed
}

// ReloadConfig swaps in a new config wholesale: the loader is replaced
// and every loaded chunk is discarded, to be regenerated under the new
// parameters on the next Update.
func (w *World) ReloadConfig(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("streaming world reload: %w", err)
	}

	w.loader.Close()
	w.seed = cfg.World.Seed
	w.cfg = cfg
	w.loadRadius = cfg.World.LoadRadius
	w.loader = w.newLoader(w.seed, cfg)
	w.loaded = make(map[worldgen.ChunkCoord]*worldgen.ChunkData)

	if logger.Log != nil {
		logger.Log.Info("streaming world config reloaded",
			zap.Uint32("seed", w.seed),
			zap.Int32("load_radius", w.loadRadius))
	}
	return nil
}

// Close stops the loader. The world must not be used afterwards.
func (w *World) Close() {
	w.loader.Close()
}

// WorldToChunk maps a world position to the chunk coordinate containing
// it (floor division per axis).
func WorldToChunk(pos mgl32.Vec3) worldgen.ChunkCoord {
	return worldgen.ChunkCoord{
		X: int32(math.Floor(float64(pos.X() / worldgen.ChunkSizeMeters))),
		Z: int32(math.Floor(float64(pos.Z() / worldgen.ChunkSizeMeters))),
	}
}

// RequiredCoords returns every coordinate within the square window of the
// given radius around center: (2·radius+1)² coordinates, radius 0 being
// just the center chunk.
func RequiredCoords(center worldgen.ChunkCoord, radius int32) CoordSet {
	width := radius*2 + 1
	if width < 1 {
		width = 1
	}
	required := make(CoordSet, width*width)

	for z := -radius; z <= radius; z++ {
		for x := -radius; x <= radius; x++ {
			required[worldgen.ChunkCoord{X: center.X + x, Z: center.Z + z}] = struct{}{}
		}
	}
	return required
}
