package worldgen

import "github.com/Faultbox/wanderlands/internal/config"

// Biome classifies one terrain cell. Every (height, moisture) pair maps to
// exactly one biome.
type Biome uint8

const (
	BiomeSnow Biome = iota
	BiomeRock
	BiomeDesert
	BiomeForest
	BiomeGrassland
)

func (b Biome) String() string {
	switch b {
	case BiomeSnow:
		return "snow"
	case BiomeRock:
		return "rock"
	case BiomeDesert:
		return "desert"
	case BiomeForest:
		return "forest"
	case BiomeGrassland:
		return "grassland"
	default:
		return "unknown"
	}
}

// Classify maps a height/moisture pair to a biome. Height thresholds are
// checked before moisture thresholds; the branch order is part of the
// contract.
func Classify(height, moisture float32, cfg config.BiomeConfig) Biome {
	if height > cfg.SnowHeight {
		return BiomeSnow
	}
	if height > cfg.RockHeight {
		return BiomeRock
	}
	if moisture < cfg.DesertMoisture {
		return BiomeDesert
	}
	if moisture > cfg.ForestMoisture {
		return BiomeForest
	}
	return BiomeGrassland
}

// BiomeMap holds one biome per terrain grid cell, same indexing as the
// terrain arrays. A zero-length Values signals invalid input.
type BiomeMap struct {
	Values []Biome
}

// BiomeLayer derives a biome map from a chunk's terrain grid.
type BiomeLayer struct {
	cfg config.BiomeConfig
}

// NewBiomeLayer creates a biome layer with the given thresholds.
func NewBiomeLayer(cfg config.BiomeConfig) *BiomeLayer {
	return &BiomeLayer{cfg: cfg}
}

// Generate classifies every cell of the terrain grid. If the terrain
// arrays do not have the expected length the result is empty — callers
// treat that as a chunk without content, not an error.
func (l *BiomeLayer) Generate(terrain *ChunkTerrain) BiomeMap {
	const total = ChunkGridResolution * ChunkGridResolution
	if len(terrain.Heights) != total || len(terrain.Moisture) != total {
		return BiomeMap{}
	}

	values := make([]Biome, total)
	for i := range values {
		values[i] = Classify(terrain.Heights[i], terrain.Moisture[i], l.cfg)
	}
	return BiomeMap{Values: values}
}
