package worldgen

import "github.com/Faultbox/wanderlands/internal/config"

// drawUnit produces one deterministic uniform float in [0, 1] for a
// placement cell. Each independent draw (acceptance, jitter, rotation,
// size) uses a distinct seed variant so draws do not correlate.
func drawUnit(seedVariant uint32, coord ChunkCoord, cellID uint32) float32 {
	return hashToUnitFloat(hash4(seedVariant, uint32(coord.X), uint32(coord.Z), cellID))
}

// placementCellID derives a stable 32-bit id from a placement grid cell.
func placementCellID(gx, gz int32) uint32 {
	return uint32(gx)<<16 | uint32(gz)
}

// ContentLayer runs the three placement layers for one chunk.
type ContentLayer struct {
	flora  *FloraLayer
	houses *HousesLayer
	ferns  *FernsLayer
}

// ContentInput is the terrain and biome data content placement reads from.
type ContentInput struct {
	Coord    ChunkCoord
	Terrain  *ChunkTerrain
	BiomeMap *BiomeMap
}

// NewContentLayer creates the content layers for one seed and config.
func NewContentLayer(seed uint32, cfg *config.Config) *ContentLayer {
	return &ContentLayer{
		flora:  NewFloraLayer(seed, cfg.Flora, cfg.SeaLevel),
		houses: NewHousesLayer(seed, cfg.Houses),
		ferns:  NewFernsLayer(seed, cfg.Ferns, cfg.SeaLevel),
	}
}

// Generate places all content for one chunk.
func (l *ContentLayer) Generate(input ContentInput) ChunkContent {
	return ChunkContent{
		Trees:  l.flora.Generate(input),
		Houses: l.houses.Generate(input),
		Ferns:  l.ferns.Generate(input),
	}
}

// contentGridValid reports whether the terrain and biome grids have the
// expected cell count. Placement layers return empty lists otherwise.
func contentGridValid(terrain *ChunkTerrain, biomeMap *BiomeMap) bool {
	const total = ChunkGridResolution * ChunkGridResolution
	return len(terrain.Heights) == total &&
		len(terrain.Moisture) == total &&
		len(biomeMap.Values) == total
}
