// Package worldgen implements deterministic procedural terrain generation:
// layered simplex noise for heights and moisture, threshold-based biome
// classification, and hash-driven placement of trees, ferns and houses.
// All output is a pure function of (seed, config, chunk coordinate).
package worldgen

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// ChunkSizeMeters is the world-space side length of one chunk.
	ChunkSizeMeters = 256.0

	// ChunkGridResolution is the number of height/moisture samples per
	// chunk side. 129 gives a power-of-two cell count per side (128)
	// with shared edge vertices between neighboring chunks.
	ChunkGridResolution = 129
)

// ChunkCoord identifies a chunk on the infinite grid. Comparable, used as
// the key for every chunk map.
type ChunkCoord struct {
	X int32
	Z int32
}

func (c ChunkCoord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Z)
}

// ChunkTerrain holds the sampled height and moisture grids for one chunk.
// Both slices are row-major with index = z*side + x and must have exactly
// ChunkGridResolution² entries; consumers validate the length before
// indexing and treat a mismatch as a chunk with no content.
type ChunkTerrain struct {
	Coord     ChunkCoord
	Heights   []float32
	Moisture  []float32
	MinHeight float32
	MaxHeight float32
}

// HeightAt returns the bilinearly interpolated terrain height at a
// chunk-local position in meters. Positions outside the chunk are clamped
// to its edge.
func (t *ChunkTerrain) HeightAt(localX, localZ float32) float32 {
	return sampleFieldBilinear(t.Heights, localX, localZ)
}

// MoistureAt returns the bilinearly interpolated moisture at a chunk-local
// position in meters.
func (t *ChunkTerrain) MoistureAt(localX, localZ float32) float32 {
	return sampleFieldBilinear(t.Moisture, localX, localZ)
}

// TreeInstance is one placed tree. Position is world-space.
type TreeInstance struct {
	Position     mgl32.Vec3
	TrunkHeight  float32
	CanopyRadius float32
}

// HouseInstance is one placed house. Position is world-space, rotation is
// radians around Y.
type HouseInstance struct {
	Position mgl32.Vec3
	Rotation float32
}

// FernInstance is one placed fern. Position is world-space.
type FernInstance struct {
	Position mgl32.Vec3
	Rotation float32
	Scale    float32
}

// ChunkContent aggregates all placed instances for one chunk.
type ChunkContent struct {
	Trees  []TreeInstance
	Houses []HouseInstance
	Ferns  []FernInstance
}

// ChunkData is the unit of generation and streaming: terrain, biomes and
// content for one coordinate. Immutable once built; ownership moves from
// the generating goroutine to the streaming world's loaded map.
type ChunkData struct {
	Coord    ChunkCoord
	Terrain  ChunkTerrain
	BiomeMap BiomeMap
	Content  ChunkContent
}
