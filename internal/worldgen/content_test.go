package worldgen

import (
	"testing"

	"github.com/Faultbox/wanderlands/internal/config"
)

func TestTreeDensityClamped(t *testing.T) {
	cfg := config.Default()
	layer := NewFloraLayer(42, cfg.Flora, cfg.SeaLevel)

	biomes := []Biome{BiomeSnow, BiomeRock, BiomeDesert, BiomeForest, BiomeGrassland}
	for _, biome := range biomes {
		for m := float32(0); m <= 1; m += 0.01 {
			d := layer.treeDensity(biome, m)
			switch biome {
			case BiomeForest:
				if d < cfg.Flora.ForestDensityMin || d > cfg.Flora.ForestDensityMax {
					t.Fatalf("forest density %f at moisture %f outside [%f, %f]",
						d, m, cfg.Flora.ForestDensityMin, cfg.Flora.ForestDensityMax)
				}
			case BiomeGrassland:
				if d < cfg.Flora.GrasslandDensityMin || d > cfg.Flora.GrasslandDensityMax {
					t.Fatalf("grassland density %f at moisture %f outside [%f, %f]",
						d, m, cfg.Flora.GrasslandDensityMin, cfg.Flora.GrasslandDensityMax)
				}
			default:
				if d != 0 {
					t.Fatalf("%s density %f at moisture %f, want 0", biome, d, m)
				}
			}
		}
	}
}

func TestFernDensityClamped(t *testing.T) {
	cfg := config.Default()
	layer := NewFernsLayer(42, cfg.Ferns, cfg.SeaLevel)

	biomes := []Biome{BiomeSnow, BiomeRock, BiomeDesert, BiomeForest, BiomeGrassland}
	for _, biome := range biomes {
		for m := float32(0); m <= 1; m += 0.01 {
			d := layer.fernDensity(biome, m)
			switch biome {
			case BiomeForest:
				if d < 0 || d > cfg.Ferns.ForestDensityMax {
					t.Fatalf("forest fern density %f at moisture %f outside [0, %f]",
						d, m, cfg.Ferns.ForestDensityMax)
				}
			case BiomeGrassland:
				if d < 0 || d > cfg.Ferns.GrasslandDensityMax {
					t.Fatalf("grassland fern density %f at moisture %f outside [0, %f]",
						d, m, cfg.Ferns.GrasslandDensityMax)
				}
			default:
				if d != 0 {
					t.Fatalf("%s fern density %f at moisture %f, want 0", biome, d, m)
				}
			}
		}
	}
}

func TestContentLayersRejectMalformedInput(t *testing.T) {
	cfg := config.Default()
	content := NewContentLayer(42, cfg)

	terrain := ChunkTerrain{
		Heights:  make([]float32, 4),
		Moisture: make([]float32, 4),
	}
	biomeMap := BiomeMap{}

	got := content.Generate(ContentInput{
		Coord:    ChunkCoord{X: 0, Z: 0},
		Terrain:  &terrain,
		BiomeMap: &biomeMap,
	})

	if len(got.Trees) != 0 || len(got.Houses) != 0 || len(got.Ferns) != 0 {
		t.Errorf("expected no content for malformed grids, got %d trees, %d houses, %d ferns",
			len(got.Trees), len(got.Houses), len(got.Ferns))
	}
}

func TestHousesOnlyInHabitableBand(t *testing.T) {
	cfg := config.Default()
	gen := NewChunkGenerator(42, cfg)

	// Scan a few chunks; every placed house must sit inside the configured
	// height band regardless of where it landed.
	coords := []ChunkCoord{{0, 0}, {3, -2}, {-7, 4}, {10, 10}}
	for _, coord := range coords {
		chunk := gen.GenerateChunk(coord)
		for i, house := range chunk.Content.Houses {
			h := house.Position.Y()
			if h < cfg.Houses.HeightMin || h > cfg.Houses.HeightMax {
				t.Errorf("chunk %s house %d at height %f outside [%f, %f]",
					coord, i, h, cfg.Houses.HeightMin, cfg.Houses.HeightMax)
			}
		}
	}
}

func TestFloraRespectsSeaLevel(t *testing.T) {
	cfg := config.Default()
	gen := NewChunkGenerator(42, cfg)

	coords := []ChunkCoord{{0, 0}, {3, -2}, {-7, 4}}
	for _, coord := range coords {
		chunk := gen.GenerateChunk(coord)
		for i, tree := range chunk.Content.Trees {
			if tree.Position.Y() < cfg.SeaLevel {
				t.Errorf("chunk %s tree %d at height %f below sea level %f",
					coord, i, tree.Position.Y(), cfg.SeaLevel)
			}
		}
		for i, fern := range chunk.Content.Ferns {
			if fern.Position.Y() < cfg.SeaLevel {
				t.Errorf("chunk %s fern %d at height %f below sea level %f",
					coord, i, fern.Position.Y(), cfg.SeaLevel)
			}
		}
	}
}
