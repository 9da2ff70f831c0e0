// Package config handles world generation configuration loading and management.
package config

import "fmt"

// Config holds every tunable generation parameter plus logging settings.
// A loaded Config is treated as immutable: generators share one pointer,
// and a parameter change builds a fresh Config (and a fresh generator)
// rather than mutating in place.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	SeaLevel  float32         `yaml:"sea_level"`
	Biome     BiomeConfig     `yaml:"biome"`
	Heightmap HeightmapConfig `yaml:"heightmap"`
	Flora     FloraConfig     `yaml:"flora"`
	Ferns     FernsConfig     `yaml:"ferns"`
	Houses    HousesConfig    `yaml:"houses"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// WorldConfig holds seed, streaming and clock settings.
type WorldConfig struct {
	Seed       uint32  `yaml:"seed"`
	LoadRadius int32   `yaml:"load_radius"`
	Threads    int     `yaml:"threads"` // 0 = use all CPUs
	StartHour  float32 `yaml:"start_hour"`
	DaySpeed   float32 `yaml:"day_speed"`
}

// BiomeConfig holds the classification thresholds. Height thresholds
// dominate moisture thresholds.
type BiomeConfig struct {
	SnowHeight     float32 `yaml:"snow_height"`
	RockHeight     float32 `yaml:"rock_height"`
	DesertMoisture float32 `yaml:"desert_moisture"`
	ForestMoisture float32 `yaml:"forest_moisture"`
}

// NoiseBand is one frequency/amplitude pair of the height field.
type NoiseBand struct {
	Frequency float64 `yaml:"frequency"`
	Amplitude float32 `yaml:"amplitude"`
}

// HeightmapConfig holds the noise band parameters for height and moisture
// sampling.
type HeightmapConfig struct {
	Continental NoiseBand `yaml:"continental"`
	Ridge       NoiseBand `yaml:"ridge"`
	Detail      NoiseBand `yaml:"detail"`

	MoistureBaseFrequency      float64 `yaml:"moisture_base_frequency"`
	MoistureVariationFrequency float64 `yaml:"moisture_variation_frequency"`
	MoistureBaseWeight         float32 `yaml:"moisture_base_weight"`
	MoistureVariationWeight    float32 `yaml:"moisture_variation_weight"`
	MoistureVariationOffsetX   float64 `yaml:"moisture_variation_offset_x"`
	MoistureVariationOffsetZ   float64 `yaml:"moisture_variation_offset_z"`
}

// FloraConfig holds tree placement parameters.
type FloraConfig struct {
	GridSpacing float32 `yaml:"grid_spacing"`

	ForestDensityBase    float32 `yaml:"forest_density_base"`
	ForestDensityScale   float32 `yaml:"forest_density_scale"`
	ForestDensityMin     float32 `yaml:"forest_density_min"`
	ForestDensityMax     float32 `yaml:"forest_density_max"`
	ForestMoistureCenter float32 `yaml:"forest_moisture_center"`

	GrasslandDensityBase  float32 `yaml:"grassland_density_base"`
	GrasslandDensityScale float32 `yaml:"grassland_density_scale"`
	GrasslandDensityMin   float32 `yaml:"grassland_density_min"`
	GrasslandDensityMax   float32 `yaml:"grassland_density_max"`

	TrunkHeightMin    float32 `yaml:"trunk_height_min"`
	TrunkHeightRange  float32 `yaml:"trunk_height_range"`
	CanopyRadiusMin   float32 `yaml:"canopy_radius_min"`
	CanopyRadiusRange float32 `yaml:"canopy_radius_range"`

	MaxSlope  float32 `yaml:"max_slope"`
	MinHeight float32 `yaml:"min_height"`
}

// FernsConfig holds fern placement parameters.
type FernsConfig struct {
	GridSpacing float32 `yaml:"grid_spacing"`

	ForestDensityOffset    float32 `yaml:"forest_density_offset"`
	ForestDensityScale     float32 `yaml:"forest_density_scale"`
	ForestDensityMax       float32 `yaml:"forest_density_max"`
	GrasslandDensityOffset float32 `yaml:"grassland_density_offset"`
	GrasslandDensityScale  float32 `yaml:"grassland_density_scale"`
	GrasslandDensityMax    float32 `yaml:"grassland_density_max"`

	ScaleMin   float32 `yaml:"scale_min"`
	ScaleRange float32 `yaml:"scale_range"`

	MaxSlope  float32 `yaml:"max_slope"`
	MinHeight float32 `yaml:"min_height"`
}

// HousesConfig holds house placement parameters.
type HousesConfig struct {
	GridSpacing      float32 `yaml:"grid_spacing"`
	GrasslandDensity float32 `yaml:"grassland_density"`
	MaxSlope         float32 `yaml:"max_slope"`
	HeightMin        float32 `yaml:"height_min"`
	HeightMax        float32 `yaml:"height_max"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the stock world parameters.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Seed:       42,
			LoadRadius: 1,
			Threads:    0,
			StartHour:  9.5,
			DaySpeed:   0.04,
		},
		SeaLevel: 18.0,
		Biome: BiomeConfig{
			SnowHeight:     165.0,
			RockHeight:     120.0,
			DesertMoisture: 0.3,
			ForestMoisture: 0.62,
		},
		Heightmap: HeightmapConfig{
			Continental: NoiseBand{Frequency: 0.0013, Amplitude: 140.0},
			Ridge:       NoiseBand{Frequency: 0.0032, Amplitude: 65.0},
			Detail:      NoiseBand{Frequency: 0.018, Amplitude: 10.0},

			MoistureBaseFrequency:      0.0019,
			MoistureVariationFrequency: 0.0095,
			MoistureBaseWeight:         0.75,
			MoistureVariationWeight:    0.25,
			MoistureVariationOffsetX:   31.0,
			MoistureVariationOffsetZ:   -11.0,
		},
		Flora: FloraConfig{
			GridSpacing:          11.0,
			ForestDensityBase:    0.42,
			ForestDensityScale:   0.7,
			ForestDensityMin:     0.30,
			ForestDensityMax:     0.72,
			ForestMoistureCenter: 0.62,

			GrasslandDensityBase:  0.02,
			GrasslandDensityScale: 0.08,
			GrasslandDensityMin:   0.01,
			GrasslandDensityMax:   0.11,

			TrunkHeightMin:    4.5,
			TrunkHeightRange:  7.5,
			CanopyRadiusMin:   1.7,
			CanopyRadiusRange: 2.5,

			MaxSlope:  1.0,
			MinHeight: -20.0,
		},
		Ferns: FernsConfig{
			GridSpacing:            5.0,
			ForestDensityOffset:    0.55,
			ForestDensityScale:     1.5,
			ForestDensityMax:       0.6,
			GrasslandDensityOffset: 0.5,
			GrasslandDensityScale:  0.15,
			GrasslandDensityMax:    0.05,

			ScaleMin:   0.7,
			ScaleRange: 0.7,

			MaxSlope:  0.8,
			MinHeight: -20.0,
		},
		Houses: HousesConfig{
			GridSpacing:      40.0,
			GrasslandDensity: 0.04,
			MaxSlope:         0.3,
			HeightMin:        0.0,
			HeightMax:        100.0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks the fields that would make generation or streaming
// misbehave rather than merely look odd.
func (c *Config) Validate() error {
	if c.World.LoadRadius < 0 {
		return fmt.Errorf("world.load_radius must be >= 0, got %d", c.World.LoadRadius)
	}
	if c.World.Threads < 0 {
		return fmt.Errorf("world.threads must be >= 0, got %d", c.World.Threads)
	}
	if c.Flora.GridSpacing <= 0 {
		return fmt.Errorf("flora.grid_spacing must be > 0, got %g", c.Flora.GridSpacing)
	}
	if c.Ferns.GridSpacing <= 0 {
		return fmt.Errorf("ferns.grid_spacing must be > 0, got %g", c.Ferns.GridSpacing)
	}
	if c.Houses.GridSpacing <= 0 {
		return fmt.Errorf("houses.grid_spacing must be > 0, got %g", c.Houses.GridSpacing)
	}
	return nil
}
