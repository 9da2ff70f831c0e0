package worldgen

import "github.com/Faultbox/wanderlands/internal/config"

// TerrainLayer samples a fixed-resolution height/moisture grid for each
// chunk coordinate.
type TerrainLayer struct {
	heightmap *Heightmap
}

// NewTerrainLayer creates a terrain layer for the given seed.
func NewTerrainLayer(seed uint32, cfg config.HeightmapConfig) *TerrainLayer {
	return &TerrainLayer{heightmap: NewHeightmap(seed, cfg)}
}

// Generate samples the full grid for one chunk. Every cell is independent,
// so the fill runs across all CPUs on native builds (see fill_parallel.go)
// and sequentially on single-threaded targets.
func (l *TerrainLayer) Generate(coord ChunkCoord) ChunkTerrain {
	const side = ChunkGridResolution
	const total = side * side
	const cellSize = float32(ChunkSizeMeters) / (side - 1)
	originX := float32(coord.X) * ChunkSizeMeters
	originZ := float32(coord.Z) * ChunkSizeMeters

	heights := make([]float32, total)
	moisture := make([]float32, total)

	fillGrid(total, func(idx int) {
		x := idx % side
		z := idx / side
		worldX := originX + float32(x)*cellSize
		worldZ := originZ + float32(z)*cellSize
		heights[idx] = l.heightmap.SampleHeight(worldX, worldZ)
		moisture[idx] = l.heightmap.SampleMoisture(worldX, worldZ)
	})

	minHeight := heights[0]
	maxHeight := heights[0]
	for _, h := range heights[1:] {
		if h < minHeight {
			minHeight = h
		}
		if h > maxHeight {
			maxHeight = h
		}
	}

	return ChunkTerrain{
		Coord:     coord,
		Heights:   heights,
		Moisture:  moisture,
		MinHeight: minHeight,
		MaxHeight: maxHeight,
	}
}
