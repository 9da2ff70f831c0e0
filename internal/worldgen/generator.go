package worldgen

import "github.com/Faultbox/wanderlands/internal/config"

// ChunkGenerator runs the full generation pipeline for one coordinate:
// terrain, then biomes, then content. It holds no mutable state, so one
// instance can be shared across goroutines, or fresh instances built per
// dispatch — both produce identical output for the same seed and config.
type ChunkGenerator struct {
	terrainLayer *TerrainLayer
	biomeLayer   *BiomeLayer
	contentLayer *ContentLayer
}

// NewChunkGenerator creates a generator. cfg is shared, not copied, and
// must not be mutated afterwards.
func NewChunkGenerator(seed uint32, cfg *config.Config) *ChunkGenerator {
	return &ChunkGenerator{
		terrainLayer: NewTerrainLayer(seed, cfg.Heightmap),
		biomeLayer:   NewBiomeLayer(cfg.Biome),
		contentLayer: NewContentLayer(seed, cfg),
	}
}

// GenerateChunk produces the immutable chunk data for one coordinate. It
// always succeeds: degenerate intermediate data yields empty biome maps
// and content lists rather than an error.
func (g *ChunkGenerator) GenerateChunk(coord ChunkCoord) *ChunkData {
	terrain := g.terrainLayer.Generate(coord)
	biomeMap := g.biomeLayer.Generate(&terrain)
	content := g.contentLayer.Generate(ContentInput{
		Coord:    coord,
		Terrain:  &terrain,
		BiomeMap: &biomeMap,
	})

	return &ChunkData{
		Coord:    coord,
		Terrain:  terrain,
		BiomeMap: biomeMap,
		Content:  content,
	}
}
