package worldgen

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/wanderlands/internal/config"
)

// Seed variants for the independent random draws of the houses layer.
const (
	housesAcceptSeed   = 1001
	housesJitterXSeed  = 1071
	housesJitterZSeed  = 1193
	housesRotationSeed = 1401
)

// HousesLayer places houses sparsely in flat grassland within a habitable
// elevation band.
type HousesLayer struct {
	seed uint32
	cfg  config.HousesConfig
}

// NewHousesLayer creates a houses layer.
func NewHousesLayer(seed uint32, cfg config.HousesConfig) *HousesLayer {
	return &HousesLayer{seed: seed, cfg: cfg}
}

// Generate returns the house instances for one chunk.
func (l *HousesLayer) Generate(input ContentInput) []HouseInstance {
	coord := input.Coord
	terrain := input.Terrain
	if !contentGridValid(terrain, input.BiomeMap) {
		return nil
	}

	var houses []HouseInstance
	spacing := l.cfg.GridSpacing
	cellsPerSide := int32(ChunkSizeMeters / spacing)

	for gz := int32(0); gz < cellsPerSide; gz++ {
		for gx := int32(0); gx < cellsPerSide; gx++ {
			cellID := placementCellID(gx, gz)
			rnd := drawUnit(l.seed+housesAcceptSeed, coord, cellID)

			jitterX := drawUnit(l.seed+housesJitterXSeed, coord, cellID)
			jitterZ := drawUnit(l.seed+housesJitterZSeed, coord, cellID)
			localX := (float32(gx) + jitterX) * spacing
			localZ := (float32(gz) + jitterZ) * spacing

			height := sampleFieldBilinear(terrain.Heights, localX, localZ)
			biome := sampleBiomeNearest(input.BiomeMap.Values, localX, localZ)

			var density float32
			if biome == BiomeGrassland {
				density = l.cfg.GrasslandDensity
			}
			if rnd > density {
				continue
			}

			slope := estimateSlope(terrain.Heights, localX, localZ)
			if slope > l.cfg.MaxSlope || height < l.cfg.HeightMin || height > l.cfg.HeightMax {
				continue
			}

			rotation := drawUnit(l.seed+housesRotationSeed, coord, cellID) * (2 * math.Pi)

			worldX := float32(coord.X)*ChunkSizeMeters + localX
			worldZ := float32(coord.Z)*ChunkSizeMeters + localZ
			houses = append(houses, HouseInstance{
				Position: mgl32.Vec3{worldX, height, worldZ},
				Rotation: rotation,
			})
		}
	}

	return houses
}
