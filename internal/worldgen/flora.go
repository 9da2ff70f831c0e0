package worldgen

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/wanderlands/internal/config"
)

// Seed variants for the independent random draws of the flora layer.
const (
	floraAcceptSeed  = 0
	floraJitterXSeed = 71
	floraJitterZSeed = 193
	floraTrunkSeed   = 401
	floraCanopySeed  = 809
)

// FloraLayer places trees on a jittered grid, filtered by biome density,
// slope, elevation and sea level.
type FloraLayer struct {
	seed     uint32
	cfg      config.FloraConfig
	seaLevel float32
}

// NewFloraLayer creates a flora layer.
func NewFloraLayer(seed uint32, cfg config.FloraConfig, seaLevel float32) *FloraLayer {
	return &FloraLayer{seed: seed, cfg: cfg, seaLevel: seaLevel}
}

// Generate returns the tree instances for one chunk in a fixed (gz, gx)
// walk order. Output is byte-for-byte reproducible for a given
// (seed, config, coord).
func (l *FloraLayer) Generate(input ContentInput) []TreeInstance {
	coord := input.Coord
	terrain := input.Terrain
	if !contentGridValid(terrain, input.BiomeMap) {
		return nil
	}

	var trees []TreeInstance
	spacing := l.cfg.GridSpacing
	cellsPerSide := int32(ChunkSizeMeters / spacing)

	for gz := int32(0); gz < cellsPerSide; gz++ {
		for gx := int32(0); gx < cellsPerSide; gx++ {
			cellID := placementCellID(gx, gz)
			rnd := drawUnit(l.seed+floraAcceptSeed, coord, cellID)

			jitterX := drawUnit(l.seed+floraJitterXSeed, coord, cellID)
			jitterZ := drawUnit(l.seed+floraJitterZSeed, coord, cellID)
			localX := (float32(gx) + jitterX) * spacing
			localZ := (float32(gz) + jitterZ) * spacing

			height := sampleFieldBilinear(terrain.Heights, localX, localZ)
			moisture := sampleFieldBilinear(terrain.Moisture, localX, localZ)
			biome := sampleBiomeNearest(input.BiomeMap.Values, localX, localZ)
			if rnd > l.treeDensity(biome, moisture) {
				continue
			}

			slope := estimateSlope(terrain.Heights, localX, localZ)
			if slope > l.cfg.MaxSlope || height < l.cfg.MinHeight || height < l.seaLevel {
				continue
			}

			trunkHeight := l.cfg.TrunkHeightMin +
				drawUnit(l.seed+floraTrunkSeed, coord, cellID)*l.cfg.TrunkHeightRange
			canopyRadius := l.cfg.CanopyRadiusMin +
				drawUnit(l.seed+floraCanopySeed, coord, cellID)*l.cfg.CanopyRadiusRange

			worldX := float32(coord.X)*ChunkSizeMeters + localX
			worldZ := float32(coord.Z)*ChunkSizeMeters + localZ
			trees = append(trees, TreeInstance{
				Position:     mgl32.Vec3{worldX, height, worldZ},
				TrunkHeight:  trunkHeight,
				CanopyRadius: canopyRadius,
			})
		}
	}

	return trees
}

// treeDensity is the acceptance threshold per biome. Forest and grassland
// have linear curves in moisture, every other biome grows nothing.
func (l *FloraLayer) treeDensity(biome Biome, moisture float32) float32 {
	c := &l.cfg
	switch biome {
	case BiomeForest:
		return clamp32(c.ForestDensityBase+(moisture-c.ForestMoistureCenter)*c.ForestDensityScale,
			c.ForestDensityMin, c.ForestDensityMax)
	case BiomeGrassland:
		return clamp32(c.GrasslandDensityBase+moisture*c.GrasslandDensityScale,
			c.GrasslandDensityMin, c.GrasslandDensityMax)
	default:
		return 0
	}
}
